package service

import (
	"sort"
	"time"

	"github.com/noah-isme/noosflare/internal/dto"
	"github.com/noah-isme/noosflare/internal/models"
	"github.com/noah-isme/noosflare/internal/repository"
	"github.com/noah-isme/noosflare/pkg/plural"
)

var uploadStatusLabels = map[models.UploadStatus]string{
	models.UploadStatusUploading: "Загружается",
	models.UploadStatusPending:   "На модерации",
	models.UploadStatusApproved:  "Одобрено",
}

// demoUploads are shown on every profile next to the session's own uploads.
var demoUploads = []models.Upload{
	{
		ID:        "demo-1",
		Kind:      models.KindVideo,
		SubjectID: "math",
		Title:     "Производные функций - подробный разбор",
		Status:    models.UploadStatusApproved,
		CreatedAt: time.Date(2025, time.November, 5, 0, 0, 0, 0, time.UTC),
	},
	{
		ID:        "demo-2",
		Kind:      models.KindNotes,
		SubjectID: "math",
		Title:     "Конспект по интегралам",
		Status:    models.UploadStatusPending,
		CreatedAt: time.Date(2025, time.November, 8, 0, 0, 0, 0, time.UTC),
	},
}

// ProfileService assembles the profile screen.
type ProfileService struct {
	catalog *repository.CatalogRepository
	uploads uploadStore
}

// NewProfileService constructs a ProfileService instance.
func NewProfileService(catalog *repository.CatalogRepository, uploads uploadStore) *ProfileService {
	return &ProfileService{catalog: catalog, uploads: uploads}
}

// Overview returns the user card and the user's uploads, newest first.
func (s *ProfileService) Overview(user models.User) dto.ProfileOverview {
	uploads := s.uploads.ListByOwner(user.ID)
	for _, demo := range demoUploads {
		demo.OwnerID = user.ID
		uploads = append(uploads, demo)
	}
	sort.SliceStable(uploads, func(i, j int) bool {
		return uploads[i].CreatedAt.After(uploads[j].CreatedAt)
	})

	cards := make([]dto.UploadCard, 0, len(uploads))
	for _, upload := range uploads {
		card := dto.UploadCard{
			Upload:      upload,
			SubjectName: s.catalog.SubjectDisplayName(upload.SubjectID),
			StatusLabel: uploadStatusLabels[upload.Status],
			DateLabel:   upload.CreatedAt.Format(DateLayout),
		}
		if upload.FileSize > 0 {
			card.SizeLabel = FileSizeLabel(upload.FileSize)
		}
		cards = append(cards, card)
	}

	return dto.ProfileOverview{
		User:       user,
		Handle:     "@" + user.ID,
		Initial:    user.Initial(),
		Uploads:    cards,
		CountLabel: plural.Materials(len(cards)),
	}
}
