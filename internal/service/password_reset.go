package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/noosflare/internal/models"
	appErrors "github.com/noah-isme/noosflare/pkg/errors"
	"github.com/noah-isme/noosflare/pkg/validation"
)

// ResetStep is a step of the forgot-password screen.
type ResetStep string

const (
	ResetStepEmail       ResetStep = "email"
	ResetStepCode        ResetStep = "code"
	ResetStepNewPassword ResetStep = "newPassword"
	ResetStepSuccess     ResetStep = "success"
)

// PasswordResetConfig tunes a PasswordReset instance.
type PasswordResetConfig struct {
	Code          string
	ResendSeconds int
	TickInterval  time.Duration
	Latency       Latency
}

// PasswordReset drives one forgot-password screen instance. The resend
// cooldown runs only while the code step is shown; Close stops it.
type PasswordReset struct {
	cfg       PasswordResetConfig
	validator *validation.Validator
	notifier  Notifier
	metrics   *MetricsService
	logger    *zap.Logger

	ctx      context.Context
	cancel   context.CancelFunc
	cooldown *Cooldown

	step  ResetStep
	email string
	code  string
}

// NewPasswordReset opens the screen on the email step.
func NewPasswordReset(ctx context.Context, cfg PasswordResetConfig, validate *validation.Validator, notifier Notifier, metrics *MetricsService, logger *zap.Logger) *PasswordReset {
	if validate == nil {
		validate = validation.New()
	}
	if notifier == nil {
		notifier = discardNotifier{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.Code == "" {
		cfg.Code = "123456"
	}
	if cfg.ResendSeconds <= 0 {
		cfg.ResendSeconds = 60
	}
	if cfg.Latency == nil {
		cfg.Latency = NoLatency
	}

	ctx, cancel := context.WithCancel(ctx)
	return &PasswordReset{
		cfg:       cfg,
		validator: validate,
		notifier:  notifier,
		metrics:   metrics,
		logger:    logger,
		ctx:       ctx,
		cancel:    cancel,
		cooldown:  NewCooldown(cfg.ResendSeconds, cfg.TickInterval),
		step:      ResetStepEmail,
	}
}

// Step returns the current step.
func (p *PasswordReset) Step() ResetStep { return p.step }

// Email returns the address the code was sent to.
func (p *PasswordReset) Email() string { return p.email }

// Code returns the last code entered; it is cleared on resend.
func (p *PasswordReset) Code() string { return p.code }

// ResendReady reports whether a new code may be requested.
func (p *PasswordReset) ResendReady() bool { return p.cooldown.Ready() }

// ResendRemaining returns the seconds left on the resend cooldown.
func (p *PasswordReset) ResendRemaining() int { return p.cooldown.Remaining() }

// Tick advances the resend cooldown by one second when ticks are driven manually.
func (p *PasswordReset) Tick() {
	if p.step != ResetStepCode {
		return
	}
	p.cooldown.Tick()
}

// SubmitEmail sends the code to email and moves to the code step.
func (p *PasswordReset) SubmitEmail(email string) error {
	if err := p.expect(ResetStepEmail, "submit email"); err != nil {
		return err
	}
	if err := p.check("reset_email", models.ResetEmailRequest{Email: email}); err != nil {
		return err
	}

	p.email = email
	p.step = ResetStepCode
	p.cooldown.Restart(p.ctx)
	p.notifier.Success(fmt.Sprintf("Код восстановления отправлен на %s", email))
	p.logger.Info("reset code sent", zap.String("email", email))
	return nil
}

// SubmitCode checks code against the configured one. A wrong code keeps the step.
func (p *PasswordReset) SubmitCode(code string) error {
	if err := p.expect(ResetStepCode, "submit code"); err != nil {
		return err
	}
	p.code = code
	if err := p.check("reset_code", models.ResetCodeRequest{Code: code}); err != nil {
		return err
	}
	if code != p.cfg.Code {
		p.metrics.ObserveValidationFailure("reset_code")
		return appErrors.Clone(appErrors.ErrIncorrectCode, "")
	}

	p.cooldown.Stop()
	p.step = ResetStepNewPassword
	p.notifier.Success("Код подтвержден")
	return nil
}

// Resend issues a new code once the cooldown has run out.
func (p *PasswordReset) Resend() error {
	if err := p.expect(ResetStepCode, "resend code"); err != nil {
		return err
	}
	if !p.cooldown.Ready() {
		return appErrors.Clone(appErrors.ErrResendLocked,
			fmt.Sprintf("Отправить код повторно можно через %d сек", p.cooldown.Remaining()))
	}

	p.code = ""
	p.cooldown.Restart(p.ctx)
	p.notifier.Success(fmt.Sprintf("Код повторно отправлен на %s", p.email))
	return nil
}

// ChangeEmail returns to the email step.
func (p *PasswordReset) ChangeEmail() error {
	if err := p.expect(ResetStepCode, "change email"); err != nil {
		return err
	}
	p.cooldown.Stop()
	p.step = ResetStepEmail
	return nil
}

// SubmitNewPassword sets the new password after the simulated round trip.
func (p *PasswordReset) SubmitNewPassword(ctx context.Context, password, confirm string) error {
	if err := p.expect(ResetStepNewPassword, "submit new password"); err != nil {
		return err
	}
	if err := p.check("reset_password", models.NewPasswordRequest{Password: password, ConfirmPassword: confirm}); err != nil {
		return err
	}
	if err := p.cfg.Latency(ctx); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, "password change interrupted")
	}

	p.step = ResetStepSuccess
	p.notifier.Success("Пароль успешно изменен")
	p.logger.Info("password changed", zap.String("email", p.email))
	return nil
}

// Close stops the cooldown. The instance must not be used afterwards.
func (p *PasswordReset) Close() {
	p.cancel()
	p.cooldown.Stop()
}

func (p *PasswordReset) expect(step ResetStep, action string) error {
	if p.step != step {
		return appErrors.Clone(appErrors.ErrInvalidTransition,
			fmt.Sprintf("cannot %s on the %s step", action, p.step))
	}
	return nil
}

func (p *PasswordReset) check(form string, payload interface{}) error {
	if err := p.validator.Check(payload); err != nil {
		p.metrics.ObserveValidationFailure(form)
		return err
	}
	return nil
}
