package models

import "time"

// UploadStatus tracks a simulated upload.
type UploadStatus string

const (
	UploadStatusUploading UploadStatus = "uploading"
	UploadStatusPending   UploadStatus = "pending"
	UploadStatusApproved  UploadStatus = "approved"
)

// UploadRequest holds the upload form. Only file metadata is carried; contents are never read.
type UploadRequest struct {
	Kind        MaterialKind `json:"type" validate:"required,oneof=video notes"`
	SubjectID   string       `json:"subject_id" validate:"required"`
	Topic       string       `json:"topic" validate:"required"`
	Source      string       `json:"source" validate:"required"`
	Title       string       `json:"title" validate:"required"`
	Description string       `json:"description"`
	FileName    string       `json:"file_name" validate:"required"`
	FileSize    int64        `json:"file_size"`
}

// ValidationMessages overrides the generic missing-field message.
func (UploadRequest) ValidationMessages() map[string]string {
	return map[string]string{"required": "Пожалуйста, заполните все обязательные поля"}
}

// Upload is a material submitted during the session.
type Upload struct {
	ID          string       `json:"id"`
	OwnerID     string       `json:"owner_id"`
	Kind        MaterialKind `json:"type"`
	SubjectID   string       `json:"subject_id"`
	Topic       string       `json:"topic"`
	Source      string       `json:"source"`
	Title       string       `json:"title"`
	Description string       `json:"description,omitempty"`
	FileName    string       `json:"file_name"`
	FileSize    int64        `json:"file_size"`
	Status      UploadStatus `json:"status"`
	CreatedAt   time.Time    `json:"created_at"`
}
