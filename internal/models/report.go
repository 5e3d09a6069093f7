package models

import "time"

// ReportReason classifies a complaint about a material.
type ReportReason string

const (
	ReportInappropriate ReportReason = "inappropriate"
	ReportCopyright     ReportReason = "copyright"
	ReportOther         ReportReason = "other"
)

// ReportRequest holds the complaint dialog.
type ReportRequest struct {
	MaterialID string       `json:"material_id" validate:"required"`
	Reason     ReportReason `json:"reason" validate:"omitempty,oneof=inappropriate copyright other"`
	Details    string       `json:"details"`
}

// MaterialReport is a complaint filed during the session. Nothing reviews it.
type MaterialReport struct {
	MaterialID string       `json:"material_id"`
	Reason     ReportReason `json:"reason,omitempty"`
	Details    string       `json:"details,omitempty"`
	CreatedAt  time.Time    `json:"created_at"`
}
