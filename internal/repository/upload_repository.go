package repository

import (
	"sort"
	"sync"

	"github.com/noah-isme/noosflare/internal/models"
	appErrors "github.com/noah-isme/noosflare/pkg/errors"
)

// UploadRepository keeps the uploads submitted during the session in memory.
// The upload worker writes while the shell reads, hence the lock.
type UploadRepository struct {
	mu      sync.RWMutex
	uploads map[string]*models.Upload
	order   []string
}

// NewUploadRepository creates an empty repository.
func NewUploadRepository() *UploadRepository {
	return &UploadRepository{uploads: make(map[string]*models.Upload)}
}

// Create stores a copy of upload.
func (r *UploadRepository) Create(upload models.Upload) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.uploads[upload.ID]; exists {
		return appErrors.Clone(appErrors.ErrInternal, "duplicate upload id")
	}
	stored := upload
	r.uploads[upload.ID] = &stored
	r.order = append(r.order, upload.ID)
	return nil
}

// UpdateStatus changes the status of an existing upload.
func (r *UploadRepository) UpdateStatus(id string, status models.UploadStatus) (models.Upload, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	upload, ok := r.uploads[id]
	if !ok {
		return models.Upload{}, appErrors.Clone(appErrors.ErrNotFound, "upload not found")
	}
	upload.Status = status
	return *upload, nil
}

// FindByID returns a copy of the upload.
func (r *UploadRepository) FindByID(id string) (models.Upload, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	upload, ok := r.uploads[id]
	if !ok {
		return models.Upload{}, appErrors.Clone(appErrors.ErrNotFound, "upload not found")
	}
	return *upload, nil
}

// ListByOwner returns the owner's uploads, newest first; ties keep insertion order reversed.
func (r *UploadRepository) ListByOwner(ownerID string) []models.Upload {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]models.Upload, 0)
	for i := len(r.order) - 1; i >= 0; i-- {
		upload := r.uploads[r.order[i]]
		if upload.OwnerID == ownerID {
			result = append(result, *upload)
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result
}
