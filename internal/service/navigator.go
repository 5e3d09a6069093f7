package service

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/noah-isme/noosflare/internal/models"
	appErrors "github.com/noah-isme/noosflare/pkg/errors"
)

// EventKind names a user action understood by the Navigator.
type EventKind string

const (
	EventLogin            EventKind = "login"
	EventRegister         EventKind = "register"
	EventSwitchToRegister EventKind = "switch_to_register"
	EventSwitchToLogin    EventKind = "switch_to_login"
	EventForgotPassword   EventKind = "forgot_password"
	EventBackToLogin      EventKind = "back_to_login"
	EventLogout           EventKind = "logout"
	EventSelectSubject    EventKind = "select_subject"
	EventBack             EventKind = "back"
	EventNavigate         EventKind = "navigate"
)

// Event is a discrete navigation input. User accompanies login/register,
// SubjectID accompanies select_subject and Target accompanies navigate.
type Event struct {
	Kind      EventKind
	User      *models.User
	SubjectID string
	Target    models.Screen
}

// Navigator is the screen state machine. It never performs validation itself:
// login and register events carry an already fabricated user.
type Navigator struct {
	state   models.NavigationState
	metrics *MetricsService
	logger  *zap.Logger
}

// NewNavigator starts on the login screen with no user.
func NewNavigator(metrics *MetricsService, logger *zap.Logger) *Navigator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Navigator{
		state:   models.NavigationState{Screen: models.ScreenLogin},
		metrics: metrics,
		logger:  logger,
	}
}

// State returns a snapshot of the current state.
func (n *Navigator) State() models.NavigationState {
	return n.state.Clone()
}

// Fire applies ev. On rejection the state is left untouched and an
// INVALID_TRANSITION error is returned.
func (n *Navigator) Fire(ev Event) (models.NavigationState, error) {
	next, err := transition(n.state, ev)
	if err != nil {
		n.metrics.ObserveRejectedTransition(ev.Kind)
		n.logger.Debug("navigation rejected",
			zap.String("event", string(ev.Kind)),
			zap.String("screen", string(n.state.Screen)),
			zap.Error(err))
		return n.State(), err
	}

	from := n.state.Screen
	n.state = next
	n.metrics.ObserveTransition(from, next.Screen)
	n.logger.Debug("navigated",
		zap.String("event", string(ev.Kind)),
		zap.String("from", string(from)),
		zap.String("to", string(next.Screen)))
	return n.State(), nil
}

func transition(state models.NavigationState, ev Event) (models.NavigationState, error) {
	switch ev.Kind {
	case EventLogin, EventRegister:
		want := models.ScreenLogin
		if ev.Kind == EventRegister {
			want = models.ScreenRegister
		}
		if state.Screen != want {
			return state, rejected(ev, state)
		}
		if ev.User == nil {
			return state, appErrors.Clone(appErrors.ErrInvalidTransition, "login requires a user")
		}
		user := *ev.User
		return models.NavigationState{Screen: models.ScreenSubjects, User: &user}, nil

	case EventSwitchToRegister:
		return move(state, ev, models.ScreenLogin, models.ScreenRegister)
	case EventSwitchToLogin:
		return move(state, ev, models.ScreenRegister, models.ScreenLogin)
	case EventForgotPassword:
		return move(state, ev, models.ScreenLogin, models.ScreenForgotPassword)
	case EventBackToLogin:
		return move(state, ev, models.ScreenForgotPassword, models.ScreenLogin)

	case EventLogout:
		if !state.Authenticated() {
			return state, rejected(ev, state)
		}
		return models.NavigationState{Screen: models.ScreenLogin}, nil

	case EventSelectSubject:
		if state.Screen != models.ScreenSubjects || !state.Authenticated() {
			return state, rejected(ev, state)
		}
		if ev.SubjectID == "" {
			return state, appErrors.Clone(appErrors.ErrInvalidTransition, "subject id is required")
		}
		state.Screen = models.ScreenMaterials
		state.SelectedSubjectID = ev.SubjectID
		return state, nil

	case EventBack:
		if state.Screen != models.ScreenMaterials {
			return state, rejected(ev, state)
		}
		state.Screen = models.ScreenSubjects
		state.SelectedSubjectID = ""
		return state, nil

	case EventNavigate:
		if !state.Authenticated() || !ev.Target.RequiresUser() {
			return state, rejected(ev, state)
		}
		if ev.Target == models.ScreenMaterials && state.SelectedSubjectID == "" {
			return state, appErrors.Clone(appErrors.ErrInvalidTransition, "no subject selected")
		}
		state.Screen = ev.Target
		return state, nil
	}

	return state, appErrors.Clone(appErrors.ErrInvalidTransition, fmt.Sprintf("unknown event %q", ev.Kind))
}

func move(state models.NavigationState, ev Event, from, to models.Screen) (models.NavigationState, error) {
	if state.Screen != from {
		return state, rejected(ev, state)
	}
	state.Screen = to
	return state, nil
}

func rejected(ev Event, state models.NavigationState) error {
	return appErrors.Clone(appErrors.ErrInvalidTransition,
		fmt.Sprintf("%s is not available on the %s screen", ev.Kind, state.Screen))
}
