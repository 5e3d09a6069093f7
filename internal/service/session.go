package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/noah-isme/noosflare/internal/dto"
	"github.com/noah-isme/noosflare/internal/models"
	appErrors "github.com/noah-isme/noosflare/pkg/errors"
	"github.com/noah-isme/noosflare/pkg/validation"
)

// SessionDeps wires the services a Session drives.
type SessionDeps struct {
	Auth      *AuthService
	Subjects  *SubjectService
	Materials *MaterialService
	Uploads   *UploadService
	Profile   *ProfileService
	Validator *validation.Validator
	Notifier  Notifier
	Metrics   *MetricsService
	Logger    *zap.Logger
	Reset     PasswordResetConfig
}

// Session binds screen instances to navigation: every accepted transition
// closes the active screen and opens a fresh one for the new state.
type Session struct {
	deps      SessionDeps
	ctx       context.Context
	navigator *Navigator
	logger    *zap.Logger

	prefs     *SubjectPreferences
	subjects  *SubjectsScreen
	materials *MaterialsScreen
	reset     *PasswordReset
}

// NewSession starts a session on the login screen. Timers started by its
// screens are bound to ctx.
func NewSession(ctx context.Context, deps SessionDeps) *Session {
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	if deps.Notifier == nil {
		deps.Notifier = discardNotifier{}
	}
	return &Session{
		deps:      deps,
		ctx:       ctx,
		navigator: NewNavigator(deps.Metrics, deps.Logger.Named("navigator")),
		logger:    deps.Logger,
	}
}

// State returns the navigation state.
func (s *Session) State() models.NavigationState {
	return s.navigator.State()
}

// Login validates the login form and enters the subjects screen.
func (s *Session) Login(req models.LoginRequest) error {
	if err := s.expect(models.ScreenLogin, EventLogin); err != nil {
		return err
	}
	user, err := s.deps.Auth.Login(req)
	if err != nil {
		return err
	}
	return s.Fire(Event{Kind: EventLogin, User: user})
}

// Register validates the registration form and enters the subjects screen.
func (s *Session) Register(req models.RegisterRequest) error {
	if err := s.expect(models.ScreenRegister, EventRegister); err != nil {
		return err
	}
	user, err := s.deps.Auth.Register(req)
	if err != nil {
		return err
	}
	return s.Fire(Event{Kind: EventRegister, User: user})
}

// SelectSubject opens the materials of subjectID.
func (s *Session) SelectSubject(subjectID string) error {
	return s.Fire(Event{Kind: EventSelectSubject, SubjectID: subjectID})
}

// Navigate moves to a post-login screen.
func (s *Session) Navigate(target models.Screen) error {
	return s.Fire(Event{Kind: EventNavigate, Target: target})
}

// Fire applies ev to the navigator and swaps the screen instance on success.
func (s *Session) Fire(ev Event) error {
	before := s.navigator.State()
	state, err := s.navigator.Fire(ev)
	if err != nil {
		return err
	}

	if !before.Authenticated() && state.Authenticated() {
		s.prefs = s.deps.Subjects.NewPreferences()
	}
	if ev.Kind == EventSelectSubject && s.prefs != nil {
		s.prefs.Viewed(state.SelectedSubjectID)
	}
	s.enter(state)
	return nil
}

func (s *Session) enter(state models.NavigationState) {
	s.closeScreen()

	switch state.Screen {
	case models.ScreenSubjects:
		s.subjects = s.deps.Subjects.Open(s.prefs)
	case models.ScreenMaterials:
		s.materials = s.deps.Materials.Open(state.SelectedSubjectID)
	case models.ScreenForgotPassword:
		s.reset = NewPasswordReset(s.ctx, s.deps.Reset, s.deps.Validator, s.deps.Notifier, s.deps.Metrics, s.logger.Named("reset"))
	case models.ScreenLogin:
		s.prefs = nil
	}
}

func (s *Session) closeScreen() {
	if s.reset != nil {
		s.reset.Close()
	}
	s.subjects = nil
	s.materials = nil
	s.reset = nil
}

// Subjects returns the active subjects screen.
func (s *Session) Subjects() (*SubjectsScreen, error) {
	if s.subjects == nil {
		return nil, s.notOn(models.ScreenSubjects)
	}
	return s.subjects, nil
}

// Materials returns the active materials screen.
func (s *Session) Materials() (*MaterialsScreen, error) {
	if s.materials == nil {
		return nil, s.notOn(models.ScreenMaterials)
	}
	return s.materials, nil
}

// PasswordReset returns the active forgot-password screen.
func (s *Session) PasswordReset() (*PasswordReset, error) {
	if s.reset == nil {
		return nil, s.notOn(models.ScreenForgotPassword)
	}
	return s.reset, nil
}

// Profile renders the profile screen.
func (s *Session) Profile() (dto.ProfileOverview, error) {
	state := s.navigator.State()
	if state.Screen != models.ScreenProfile || state.User == nil {
		return dto.ProfileOverview{}, s.notOn(models.ScreenProfile)
	}
	return s.deps.Profile.Overview(*state.User), nil
}

// UploadForm returns the upload screen choices.
func (s *Session) UploadForm(subjectID string, kind models.MaterialKind) (dto.UploadForm, error) {
	if state := s.navigator.State(); state.Screen != models.ScreenUpload {
		return dto.UploadForm{}, s.notOn(models.ScreenUpload)
	}
	return s.deps.Uploads.Form(subjectID, kind), nil
}

// Upload submits the upload form on behalf of the current user.
func (s *Session) Upload(ctx context.Context, req models.UploadRequest) (*models.Upload, error) {
	state := s.navigator.State()
	if state.Screen != models.ScreenUpload || state.User == nil {
		return nil, s.notOn(models.ScreenUpload)
	}
	return s.deps.Uploads.Submit(ctx, *state.User, req)
}

// Preferences returns the favourites and history of the logged-in user, or nil.
func (s *Session) Preferences() *SubjectPreferences {
	return s.prefs
}

// Close releases the active screen.
func (s *Session) Close() {
	s.closeScreen()
}

func (s *Session) expect(screen models.Screen, kind EventKind) error {
	if current := s.navigator.State().Screen; current != screen {
		s.deps.Metrics.ObserveRejectedTransition(kind)
		return appErrors.Clone(appErrors.ErrInvalidTransition,
			fmt.Sprintf("%s is not available on the %s screen", kind, current))
	}
	return nil
}

func (s *Session) notOn(screen models.Screen) error {
	return appErrors.Clone(appErrors.ErrInvalidTransition,
		fmt.Sprintf("the %s screen is not open", screen))
}
