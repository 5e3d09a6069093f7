package service

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/noosflare/internal/models"
	appErrors "github.com/noah-isme/noosflare/pkg/errors"
)

var testUser = &models.User{ID: "user0042", Nickname: "Student123", Email: "a@b.com"}

func loggedInNavigator(t *testing.T) *Navigator {
	t.Helper()
	nav := NewNavigator(nil, nil)
	_, err := nav.Fire(Event{Kind: EventLogin, User: testUser})
	require.NoError(t, err)
	return nav
}

func TestNavigatorStartsOnLogin(t *testing.T) {
	state := NewNavigator(nil, nil).State()
	assert.Equal(t, models.ScreenLogin, state.Screen)
	assert.Nil(t, state.User)
	assert.Empty(t, state.SelectedSubjectID)
}

func TestNavigatorAuthScreens(t *testing.T) {
	nav := NewNavigator(nil, nil)

	state, err := nav.Fire(Event{Kind: EventSwitchToRegister})
	require.NoError(t, err)
	assert.Equal(t, models.ScreenRegister, state.Screen)

	state, err = nav.Fire(Event{Kind: EventSwitchToLogin})
	require.NoError(t, err)
	assert.Equal(t, models.ScreenLogin, state.Screen)

	state, err = nav.Fire(Event{Kind: EventForgotPassword})
	require.NoError(t, err)
	assert.Equal(t, models.ScreenForgotPassword, state.Screen)

	state, err = nav.Fire(Event{Kind: EventBackToLogin})
	require.NoError(t, err)
	assert.Equal(t, models.ScreenLogin, state.Screen)
}

func TestNavigatorLoginLandsOnSubjects(t *testing.T) {
	state := loggedInNavigator(t).State()
	assert.Equal(t, models.ScreenSubjects, state.Screen)
	require.NotNil(t, state.User)
	assert.Equal(t, "user0042", state.User.ID)
}

func TestNavigatorRegisterLandsOnSubjects(t *testing.T) {
	nav := NewNavigator(nil, nil)
	_, err := nav.Fire(Event{Kind: EventSwitchToRegister})
	require.NoError(t, err)

	state, err := nav.Fire(Event{Kind: EventRegister, User: &models.User{ID: "user0001", Nickname: "neo"}})
	require.NoError(t, err)
	assert.Equal(t, models.ScreenSubjects, state.Screen)
	assert.Equal(t, "neo", state.User.Nickname)
}

func TestNavigatorSelectAndBack(t *testing.T) {
	nav := loggedInNavigator(t)

	state, err := nav.Fire(Event{Kind: EventSelectSubject, SubjectID: "math"})
	require.NoError(t, err)
	assert.Equal(t, models.ScreenMaterials, state.Screen)
	assert.Equal(t, "math", state.SelectedSubjectID)

	state, err = nav.Fire(Event{Kind: EventBack})
	require.NoError(t, err)
	assert.Equal(t, models.ScreenSubjects, state.Screen)
	assert.Empty(t, state.SelectedSubjectID)
}

func TestNavigatorLogoutFromEveryPostAuthScreen(t *testing.T) {
	for _, screen := range []models.Screen{models.ScreenSubjects, models.ScreenMaterials, models.ScreenUpload, models.ScreenProfile} {
		t.Run(string(screen), func(t *testing.T) {
			nav := loggedInNavigator(t)
			_, err := nav.Fire(Event{Kind: EventSelectSubject, SubjectID: "physics"})
			require.NoError(t, err)
			_, err = nav.Fire(Event{Kind: EventNavigate, Target: screen})
			require.NoError(t, err)

			state, err := nav.Fire(Event{Kind: EventLogout})
			require.NoError(t, err)
			assert.Equal(t, models.ScreenLogin, state.Screen)
			assert.Nil(t, state.User)
			assert.Empty(t, state.SelectedSubjectID)
		})
	}
}

func TestNavigatorNavigateKeepsSelection(t *testing.T) {
	nav := loggedInNavigator(t)
	_, err := nav.Fire(Event{Kind: EventSelectSubject, SubjectID: "math"})
	require.NoError(t, err)

	state, err := nav.Fire(Event{Kind: EventNavigate, Target: models.ScreenUpload})
	require.NoError(t, err)
	assert.Equal(t, models.ScreenUpload, state.Screen)
	assert.Equal(t, "math", state.SelectedSubjectID)
	assert.NotNil(t, state.User)
}

func TestNavigatorRejectsInvalidEvents(t *testing.T) {
	cases := []struct {
		name  string
		setup func(t *testing.T) *Navigator
		event Event
	}{
		{"logout without user", func(t *testing.T) *Navigator { return NewNavigator(nil, nil) }, Event{Kind: EventLogout}},
		{"navigate without user", func(t *testing.T) *Navigator { return NewNavigator(nil, nil) }, Event{Kind: EventNavigate, Target: models.ScreenSubjects}},
		{"select from login", func(t *testing.T) *Navigator { return NewNavigator(nil, nil) }, Event{Kind: EventSelectSubject, SubjectID: "math"}},
		{"login without user", func(t *testing.T) *Navigator { return NewNavigator(nil, nil) }, Event{Kind: EventLogin}},
		{"register from login", func(t *testing.T) *Navigator { return NewNavigator(nil, nil) }, Event{Kind: EventRegister, User: testUser}},
		{"login twice", loggedInNavigator, Event{Kind: EventLogin, User: testUser}},
		{"navigate to login", loggedInNavigator, Event{Kind: EventNavigate, Target: models.ScreenLogin}},
		{"navigate to unknown", loggedInNavigator, Event{Kind: EventNavigate, Target: models.Screen("settings")}},
		{"materials without subject", loggedInNavigator, Event{Kind: EventNavigate, Target: models.ScreenMaterials}},
		{"back from subjects", loggedInNavigator, Event{Kind: EventBack}},
		{"select empty subject", loggedInNavigator, Event{Kind: EventSelectSubject}},
		{"unknown event", loggedInNavigator, Event{Kind: EventKind("teleport")}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			nav := tc.setup(t)
			before := nav.State()

			after, err := nav.Fire(tc.event)
			require.Error(t, err)
			assert.True(t, errors.Is(err, appErrors.ErrInvalidTransition))
			assert.Equal(t, before, after)
			assert.Equal(t, before, nav.State())
		})
	}
}

func TestNavigatorStateIsACopy(t *testing.T) {
	nav := loggedInNavigator(t)
	state := nav.State()
	state.User.Nickname = "mutated"

	assert.Equal(t, "Student123", nav.State().User.Nickname)
}

func TestNavigatorRecordsMetrics(t *testing.T) {
	metrics := NewMetricsService()
	nav := NewNavigator(metrics, nil)

	_, err := nav.Fire(Event{Kind: EventLogin, User: testUser})
	require.NoError(t, err)
	_, err = nav.Fire(Event{Kind: EventBack})
	require.Error(t, err)

	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.transitions.WithLabelValues("login", "subjects")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.rejected.WithLabelValues("back")))
	snapshot := metrics.Snapshot()
	assert.Equal(t, uint64(1), snapshot.Transitions)
	assert.Equal(t, uint64(1), snapshot.RejectedTransitions)
}
