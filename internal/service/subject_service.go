package service

import (
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/noah-isme/noosflare/internal/dto"
	"github.com/noah-isme/noosflare/internal/models"
	"github.com/noah-isme/noosflare/internal/repository"
	appErrors "github.com/noah-isme/noosflare/pkg/errors"
	"github.com/noah-isme/noosflare/pkg/plural"
)

// SubjectConfig tunes the subjects screen side panels.
type SubjectConfig struct {
	TopCount         int
	RecentLimit      int
	InitialFavorites []string
}

// SubjectService searches and ranks the catalog's subjects.
type SubjectService struct {
	catalog *repository.CatalogRepository
	config  SubjectConfig
	logger  *zap.Logger
}

// NewSubjectService constructs a SubjectService instance.
func NewSubjectService(catalog *repository.CatalogRepository, config SubjectConfig, logger *zap.Logger) *SubjectService {
	if config.TopCount <= 0 {
		config.TopCount = 5
	}
	if config.RecentLimit <= 0 {
		config.RecentLimit = 3
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SubjectService{catalog: catalog, config: config, logger: logger}
}

// Search returns subjects whose name or description contains query, ignoring case.
func (s *SubjectService) Search(query string) []models.Subject {
	needle := strings.ToLower(query)
	subjects := s.catalog.Subjects()
	result := make([]models.Subject, 0, len(subjects))
	for _, subject := range subjects {
		if strings.Contains(strings.ToLower(subject.Name), needle) ||
			strings.Contains(strings.ToLower(subject.Description), needle) {
			result = append(result, subject)
		}
	}
	return result
}

// Top returns the n subjects with the largest declared material counts.
// Ties keep catalog order.
func (s *SubjectService) Top(n int) []models.Subject {
	subjects := s.catalog.Subjects()
	sort.SliceStable(subjects, func(i, j int) bool {
		return subjects[i].MaterialsCount > subjects[j].MaterialsCount
	})
	if n < 0 {
		n = 0
	}
	if n < len(subjects) {
		subjects = subjects[:n]
	}
	return subjects
}

// NewPreferences returns the session's favourites and history, seeded from config.
func (s *SubjectService) NewPreferences() *SubjectPreferences {
	prefs := &SubjectPreferences{limit: s.config.RecentLimit}
	for _, id := range s.config.InitialFavorites {
		if _, ok := s.catalog.FindSubject(id); ok && !prefs.IsFavorite(id) {
			prefs.favorites = append(prefs.favorites, id)
		}
	}
	return prefs
}

// Open creates a subjects screen with an empty search.
func (s *SubjectService) Open(prefs *SubjectPreferences) *SubjectsScreen {
	if prefs == nil {
		prefs = s.NewPreferences()
	}
	return &SubjectsScreen{svc: s, prefs: prefs}
}

// SubjectPreferences holds favourites and recently viewed subjects for a session.
type SubjectPreferences struct {
	favorites []string
	recent    []string
	limit     int
}

// IsFavorite reports whether id is a favourite.
func (p *SubjectPreferences) IsFavorite(id string) bool {
	for _, fav := range p.favorites {
		if fav == id {
			return true
		}
	}
	return false
}

// Favorites returns favourite ids in the order they were added.
func (p *SubjectPreferences) Favorites() []string {
	return append([]string(nil), p.favorites...)
}

// Recent returns viewed subject ids, newest first.
func (p *SubjectPreferences) Recent() []string {
	return append([]string(nil), p.recent...)
}

// Viewed moves id to the front of the history.
func (p *SubjectPreferences) Viewed(id string) {
	recent := make([]string, 0, len(p.recent)+1)
	recent = append(recent, id)
	for _, existing := range p.recent {
		if existing != id {
			recent = append(recent, existing)
		}
	}
	if p.limit > 0 && len(recent) > p.limit {
		recent = recent[:p.limit]
	}
	p.recent = recent
}

func (p *SubjectPreferences) toggle(id string) bool {
	for i, fav := range p.favorites {
		if fav == id {
			p.favorites = append(p.favorites[:i:i], p.favorites[i+1:]...)
			return false
		}
	}
	p.favorites = append(p.favorites, id)
	return true
}

// SubjectsScreen is one visit to the subjects screen.
type SubjectsScreen struct {
	svc   *SubjectService
	prefs *SubjectPreferences
	query string
}

// SetSearch updates the search text.
func (s *SubjectsScreen) SetSearch(query string) { s.query = query }

// Query returns the search text.
func (s *SubjectsScreen) Query() string { return s.query }

// Results returns the subjects matching the search.
func (s *SubjectsScreen) Results() []models.Subject {
	return s.svc.Search(s.query)
}

// ToggleFavorite adds or removes id from favourites and reports the new state.
func (s *SubjectsScreen) ToggleFavorite(id string) (bool, error) {
	if _, ok := s.svc.catalog.FindSubject(id); !ok {
		return false, appErrors.Clone(appErrors.ErrNotFound, "subject not found")
	}
	favorite := s.prefs.toggle(id)
	s.svc.logger.Debug("favorite toggled", zap.String("subject_id", id), zap.Bool("favorite", favorite))
	return favorite, nil
}

// Overview renders the screen. The side panels ignore the search.
func (s *SubjectsScreen) Overview() dto.SubjectsOverview {
	return dto.SubjectsOverview{
		Query:          s.query,
		Subjects:       s.cards(s.Results()),
		Popular:        s.cards(s.svc.Top(s.svc.config.TopCount)),
		Favorites:      s.cardsFor(s.prefs.Favorites()),
		RecentlyViewed: s.cardsFor(s.prefs.Recent()),
	}
}

func (s *SubjectsScreen) cardsFor(ids []string) []dto.SubjectCard {
	subjects := make([]models.Subject, 0, len(ids))
	for _, id := range ids {
		if subject, ok := s.svc.catalog.FindSubject(id); ok {
			subjects = append(subjects, subject)
		}
	}
	return s.cards(subjects)
}

func (s *SubjectsScreen) cards(subjects []models.Subject) []dto.SubjectCard {
	cards := make([]dto.SubjectCard, 0, len(subjects))
	for _, subject := range subjects {
		cards = append(cards, dto.SubjectCard{
			Subject:    subject,
			CountLabel: plural.Materials(subject.MaterialsCount),
			Favorite:   s.prefs.IsFavorite(subject.ID),
		})
	}
	return cards
}
