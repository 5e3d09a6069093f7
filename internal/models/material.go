package models

import "time"

// MaterialKind distinguishes recorded lectures from written notes.
type MaterialKind string

const (
	KindVideo MaterialKind = "video"
	KindNotes MaterialKind = "notes"
	// KindAll is the filter sentinel accepting every kind.
	KindAll MaterialKind = "all"
)

// FilterAll is the sentinel accepted by topic and source filters.
const FilterAll = "all"

// Valid reports whether k names a concrete material kind.
func (k MaterialKind) Valid() bool {
	return k == KindVideo || k == KindNotes
}

// Material is a single learning resource cataloged under a subject.
type Material struct {
	ID         string       `json:"id"`
	Title      string       `json:"title"`
	Kind       MaterialKind `json:"type"`
	Topic      string       `json:"topic"`
	Source     string       `json:"source"`
	Author     string       `json:"author"`
	Views      int          `json:"views"`
	Likes      int          `json:"likes"`
	UploadDate time.Time    `json:"upload_date"`
	Duration   string       `json:"duration,omitempty"`
	Pages      int          `json:"pages,omitempty"`
	SubjectID  string       `json:"subject_id"`
}

// MaterialFilter captures the live search and filter selections of a materials screen.
type MaterialFilter struct {
	Search string
	Topic  string
	Source string
	Kind   MaterialKind
}

// DefaultMaterialFilter matches every material.
func DefaultMaterialFilter() MaterialFilter {
	return MaterialFilter{Topic: FilterAll, Source: FilterAll, Kind: KindAll}
}

// Normalize maps empty selections to their "all" sentinel.
func (f MaterialFilter) Normalize() MaterialFilter {
	if f.Topic == "" {
		f.Topic = FilterAll
	}
	if f.Source == "" {
		f.Source = FilterAll
	}
	if f.Kind == "" {
		f.Kind = KindAll
	}
	return f
}
