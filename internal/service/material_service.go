package service

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/noah-isme/noosflare/internal/dto"
	"github.com/noah-isme/noosflare/internal/models"
	"github.com/noah-isme/noosflare/internal/repository"
	appErrors "github.com/noah-isme/noosflare/pkg/errors"
	"github.com/noah-isme/noosflare/pkg/plural"
	"github.com/noah-isme/noosflare/pkg/validation"
)

// DateLayout renders calendar dates the way the cards show them.
const DateLayout = "02.01.2006"

const msgReportSent = "Материал отправлен на проверку"

// MaterialService opens materials screens over the catalog.
type MaterialService struct {
	catalog   *repository.CatalogRepository
	validator *validation.Validator
	notifier  Notifier
	metrics   *MetricsService
	logger    *zap.Logger
}

// NewMaterialService constructs a MaterialService instance.
func NewMaterialService(catalog *repository.CatalogRepository, validate *validation.Validator, notifier Notifier, metrics *MetricsService, logger *zap.Logger) *MaterialService {
	if validate == nil {
		validate = validation.New()
	}
	if notifier == nil {
		notifier = discardNotifier{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MaterialService{catalog: catalog, validator: validate, notifier: notifier, metrics: metrics, logger: logger}
}

// Open creates a materials screen for subjectID with every filter reset.
// Unknown subjects open an empty screen titled with the fallback name.
func (s *MaterialService) Open(subjectID string) *MaterialsScreen {
	screen := &MaterialsScreen{
		id:        uuid.NewString(),
		subjectID: subjectID,
		filter:    models.DefaultMaterialFilter(),
		materials: s.catalog.MaterialsForSubject(subjectID),
		svc:       s,
	}
	s.logger.Debug("materials screen opened", zap.String("screen_id", screen.id), zap.String("subject_id", subjectID))
	return screen
}

// MaterialsScreen holds the filter selections of one visit to a subject.
type MaterialsScreen struct {
	id        string
	subjectID string
	filter    models.MaterialFilter
	materials []models.Material
	reports   []models.MaterialReport
	svc       *MaterialService
}

// ID identifies this screen instance.
func (m *MaterialsScreen) ID() string { return m.id }

// SubjectID returns the subject shown.
func (m *MaterialsScreen) SubjectID() string { return m.subjectID }

// Filter returns the current selections.
func (m *MaterialsScreen) Filter() models.MaterialFilter { return m.filter }

// SetSearch updates the title search text.
func (m *MaterialsScreen) SetSearch(query string) { m.filter.Search = query }

// SetTopic selects a topic, or every topic for "all".
func (m *MaterialsScreen) SetTopic(topic string) { m.filter.Topic = topic }

// SetSource selects a source, or every source for "all".
func (m *MaterialsScreen) SetSource(source string) { m.filter.Source = source }

// SetKind selects video, notes or all.
func (m *MaterialsScreen) SetKind(kind models.MaterialKind) error {
	if kind != models.KindAll && kind != "" && !kind.Valid() {
		return appErrors.Clone(appErrors.ErrValidation, validation.MsgInvalidChoice)
	}
	m.filter.Kind = kind
	return nil
}

// Results runs the query for the current selections.
func (m *MaterialsScreen) Results() []models.Material {
	start := time.Now()
	result := FilterMaterials(m.materials, m.filter)
	m.svc.metrics.ObserveQuery(len(result), time.Since(start))
	return result
}

// Listing renders the screen.
func (m *MaterialsScreen) Listing() dto.MaterialListing {
	catalog := m.svc.catalog
	results := m.Results()

	items := make([]dto.MaterialCard, 0, len(results))
	for _, material := range results {
		items = append(items, MaterialCardFor(material))
	}

	listing := dto.MaterialListing{
		SubjectID:   m.subjectID,
		SubjectName: catalog.SubjectDisplayName(m.subjectID),
		Filter:      m.filter.Normalize(),
		Items:       items,
		Total:       len(items),
		CountLabel:  plural.Materials(len(items)),
		Topics:      catalog.TopicsForSubject(m.subjectID),
		Sources:     catalog.SourcesForSubject(m.subjectID),
		Empty:       len(items) == 0,
		LiveCount:   catalog.LiveCount(m.subjectID),
	}
	if subject, ok := catalog.FindSubject(m.subjectID); ok {
		listing.DeclaredCount = subject.MaterialsCount
	}
	return listing
}

// Report flags a material shown on this screen.
func (m *MaterialsScreen) Report(req models.ReportRequest) error {
	if err := m.svc.validator.Check(req); err != nil {
		m.svc.metrics.ObserveValidationFailure("report")
		return err
	}
	found := false
	for _, material := range m.materials {
		if material.ID == req.MaterialID {
			found = true
			break
		}
	}
	if !found {
		return appErrors.Clone(appErrors.ErrNotFound, "material not found")
	}

	m.reports = append(m.reports, models.MaterialReport{
		MaterialID: req.MaterialID,
		Reason:     req.Reason,
		Details:    req.Details,
		CreatedAt:  time.Now().UTC(),
	})
	m.svc.notifier.Success(msgReportSent)
	m.svc.logger.Info("material reported", zap.String("material_id", req.MaterialID), zap.String("reason", string(req.Reason)))
	return nil
}

// Reports returns the reports filed from this screen.
func (m *MaterialsScreen) Reports() []models.MaterialReport {
	return append([]models.MaterialReport(nil), m.reports...)
}

// MaterialCardFor formats a material for display.
func MaterialCardFor(material models.Material) dto.MaterialCard {
	card := dto.MaterialCard{
		Material:   material,
		ViewsLabel: plural.Views(material.Views),
		LikesLabel: plural.Likes(material.Likes),
		DateLabel:  material.UploadDate.Format(DateLayout),
	}
	switch {
	case material.Duration != "":
		card.Badge = material.Duration
	case material.Pages > 0:
		card.Badge = fmt.Sprintf("%d стр.", material.Pages)
	}
	return card
}
