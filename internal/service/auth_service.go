package service

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/noosflare/internal/models"
	"github.com/noah-isme/noosflare/pkg/validation"
)

// DefaultNickname is assigned to users who log in without registering.
const DefaultNickname = "Student123"

// IDGenerator fabricates placeholder user ids.
type IDGenerator func() string

// RandomUserID returns ids of the form user0000..user9999.
func RandomUserID() IDGenerator {
	var mu sync.Mutex
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	return func() string {
		mu.Lock()
		defer mu.Unlock()
		return fmt.Sprintf("user%04d", rng.Intn(10000))
	}
}

// AuthService validates the login and registration forms and fabricates the
// placeholder user. Credentials are never checked against anything.
type AuthService struct {
	validator *validation.Validator
	newID     IDGenerator
	metrics   *MetricsService
	logger    *zap.Logger
}

// NewAuthService constructs an AuthService instance.
func NewAuthService(validate *validation.Validator, newID IDGenerator, metrics *MetricsService, logger *zap.Logger) *AuthService {
	if validate == nil {
		validate = validation.New()
	}
	if newID == nil {
		newID = RandomUserID()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuthService{validator: validate, newID: newID, metrics: metrics, logger: logger}
}

// Login accepts any well-formed credentials.
func (s *AuthService) Login(req models.LoginRequest) (*models.User, error) {
	if err := s.validator.Check(req); err != nil {
		s.metrics.ObserveValidationFailure("login")
		return nil, err
	}

	user := &models.User{ID: s.newID(), Nickname: DefaultNickname, Email: req.Email}
	s.logger.Info("user logged in", zap.String("user_id", user.ID))
	return user, nil
}

// Register accepts a valid registration form and keeps the chosen nickname.
func (s *AuthService) Register(req models.RegisterRequest) (*models.User, error) {
	if err := s.validator.Check(req); err != nil {
		s.metrics.ObserveValidationFailure("register")
		return nil, err
	}

	user := &models.User{ID: s.newID(), Nickname: req.Nickname, Email: req.Email}
	s.logger.Info("user registered", zap.String("user_id", user.ID), zap.String("nickname", user.Nickname))
	return user, nil
}
