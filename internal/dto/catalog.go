package dto

import "github.com/noah-isme/noosflare/internal/models"

// MaterialCard is a material prepared for display.
type MaterialCard struct {
	Material   models.Material `json:"material"`
	ViewsLabel string          `json:"viewsLabel"`
	LikesLabel string          `json:"likesLabel"`
	DateLabel  string          `json:"dateLabel"`
	Badge      string          `json:"badge,omitempty"`
}

// MaterialListing is the rendered state of a materials screen.
type MaterialListing struct {
	SubjectID     string                `json:"subjectId"`
	SubjectName   string                `json:"subjectName"`
	Filter        models.MaterialFilter `json:"filter"`
	Items         []MaterialCard        `json:"items"`
	Total         int                   `json:"total"`
	CountLabel    string                `json:"countLabel"`
	Topics        []string              `json:"topics"`
	Sources       []string              `json:"sources"`
	Empty         bool                  `json:"empty"`
	DeclaredCount int                   `json:"declaredCount"`
	LiveCount     int                   `json:"liveCount"`
}

// SubjectCard is a subject prepared for display.
type SubjectCard struct {
	Subject    models.Subject `json:"subject"`
	CountLabel string         `json:"countLabel"`
	Favorite   bool           `json:"favorite"`
}

// SubjectsOverview is the rendered state of the subjects screen.
type SubjectsOverview struct {
	Query          string        `json:"query"`
	Subjects       []SubjectCard `json:"subjects"`
	Popular        []SubjectCard `json:"popular"`
	Favorites      []SubjectCard `json:"favorites"`
	RecentlyViewed []SubjectCard `json:"recentlyViewed"`
}

// UploadCard is an upload prepared for the profile screen.
type UploadCard struct {
	Upload      models.Upload `json:"upload"`
	SubjectName string        `json:"subjectName"`
	StatusLabel string        `json:"statusLabel"`
	DateLabel   string        `json:"dateLabel"`
	SizeLabel   string        `json:"sizeLabel,omitempty"`
}

// ProfileOverview is the rendered state of the profile screen.
type ProfileOverview struct {
	User       models.User  `json:"user"`
	Handle     string       `json:"handle"`
	Initial    string       `json:"initial"`
	Uploads    []UploadCard `json:"uploads"`
	CountLabel string       `json:"countLabel"`
}

// UploadForm describes the choices offered by the upload screen.
type UploadForm struct {
	Subjects       []models.Subject `json:"subjects"`
	Topics         []string         `json:"topics"`
	AcceptedFormat string           `json:"acceptedFormat"`
}
