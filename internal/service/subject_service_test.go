package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/noosflare/internal/dto"
	"github.com/noah-isme/noosflare/internal/models"
	"github.com/noah-isme/noosflare/internal/repository"
	appErrors "github.com/noah-isme/noosflare/pkg/errors"
)

func newTestSubjectService() *SubjectService {
	return NewSubjectService(repository.NewSeededCatalogRepository(), SubjectConfig{
		TopCount:         5,
		RecentLimit:      3,
		InitialFavorites: []string{"physics"},
	}, nil)
}

func subjectIDs(subjects []models.Subject) []string {
	result := make([]string, 0, len(subjects))
	for _, s := range subjects {
		result = append(result, s.ID)
	}
	return result
}

func cardIDs(cards []dto.SubjectCard) []string {
	result := make([]string, 0, len(cards))
	for _, c := range cards {
		result = append(result, c.Subject.ID)
	}
	return result
}

func TestSubjectServiceSearchMatchesNameOrDescription(t *testing.T) {
	svc := newTestSubjectService()

	assert.Equal(t, []string{"philosophy", "art", "music"}, subjectIDs(svc.Search("ИСТОРИ")))
	assert.Equal(t, []string{"math"}, subjectIDs(svc.Search("интеграл")))
	assert.Len(t, svc.Search(""), 8)
	assert.Empty(t, svc.Search("химия"))
}

func TestSubjectServiceTop(t *testing.T) {
	svc := newTestSubjectService()

	assert.Equal(t, []string{"programming", "math", "physics", "literature", "english"}, subjectIDs(svc.Top(5)))
	assert.Len(t, svc.Top(100), 8)
	assert.Empty(t, svc.Top(-1))
}

func TestSubjectServiceTopIsStableOnTies(t *testing.T) {
	catalog := repository.NewCatalogRepository([]models.Subject{
		{ID: "a", MaterialsCount: 1},
		{ID: "b", MaterialsCount: 5},
		{ID: "c", MaterialsCount: 5},
	}, nil, nil)
	svc := NewSubjectService(catalog, SubjectConfig{}, nil)

	assert.Equal(t, []string{"b", "c", "a"}, subjectIDs(svc.Top(3)))
}

func TestSubjectsScreenFavorites(t *testing.T) {
	svc := newTestSubjectService()
	screen := svc.Open(nil)

	assert.Equal(t, []string{"physics"}, cardIDs(screen.Overview().Favorites))

	favorite, err := screen.ToggleFavorite("math")
	require.NoError(t, err)
	assert.True(t, favorite)

	favorite, err = screen.ToggleFavorite("physics")
	require.NoError(t, err)
	assert.False(t, favorite)

	overview := screen.Overview()
	assert.Equal(t, []string{"math"}, cardIDs(overview.Favorites))
	assert.True(t, overview.Subjects[0].Favorite)

	_, err = screen.ToggleFavorite("alchemy")
	assert.True(t, errors.Is(err, appErrors.ErrNotFound))
}

func TestSubjectPreferencesRecent(t *testing.T) {
	prefs := newTestSubjectService().NewPreferences()

	prefs.Viewed("math")
	prefs.Viewed("programming")
	prefs.Viewed("math")
	assert.Equal(t, []string{"math", "programming"}, prefs.Recent())

	prefs.Viewed("art")
	prefs.Viewed("music")
	assert.Equal(t, []string{"music", "art", "math"}, prefs.Recent())
}

func TestSubjectsScreenOverview(t *testing.T) {
	svc := newTestSubjectService()
	prefs := svc.NewPreferences()
	prefs.Viewed("music")
	screen := svc.Open(prefs)
	screen.SetSearch("физ")

	overview := screen.Overview()
	assert.Equal(t, "физ", overview.Query)
	assert.Equal(t, []string{"physics"}, cardIDs(overview.Subjects))
	assert.Equal(t, "134 материала", overview.Subjects[0].CountLabel)
	assert.Len(t, overview.Popular, 5)
	assert.Equal(t, []string{"music"}, cardIDs(overview.RecentlyViewed))
	assert.Equal(t, "42 материала", overview.RecentlyViewed[0].CountLabel)
}

func TestSubjectServiceIgnoresUnknownInitialFavorites(t *testing.T) {
	svc := NewSubjectService(repository.NewSeededCatalogRepository(), SubjectConfig{
		InitialFavorites: []string{"physics", "alchemy", "physics"},
	}, nil)

	assert.Equal(t, []string{"physics"}, svc.NewPreferences().Favorites())
}
