package models

// Subject represents a top-level academic category.
//
// MaterialsCount is the catalog's declared figure used for display and
// ranking; it is not derived from the materials actually loaded.
type Subject struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Description    string `json:"description"`
	MaterialsCount int    `json:"materials_count"`
}
