package service

import (
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/noosflare/internal/models"
)

// Notifier receives transient user notifications.
type Notifier interface {
	Success(message string)
	Error(message string)
}

// ToastLog records toasts for the shell to drain and mirrors them to the log.
// Upload workers notify from their own goroutine.
type ToastLog struct {
	mu     sync.Mutex
	toasts []models.Toast
	logger *zap.Logger
	now    func() time.Time
}

// NewToastLog creates an empty toast log.
func NewToastLog(logger *zap.Logger) *ToastLog {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ToastLog{logger: logger, now: time.Now}
}

// Success records a success toast.
func (t *ToastLog) Success(message string) {
	t.add(models.ToastSuccess, message)
}

// Error records an error toast.
func (t *ToastLog) Error(message string) {
	t.add(models.ToastError, message)
}

func (t *ToastLog) add(level models.ToastLevel, message string) {
	t.mu.Lock()
	t.toasts = append(t.toasts, models.Toast{Level: level, Message: message, CreatedAt: t.now().UTC()})
	t.mu.Unlock()
	t.logger.Info("toast", zap.String("level", string(level)), zap.String("message", message))
}

// Drain returns the pending toasts in arrival order and clears them.
func (t *ToastLog) Drain() []models.Toast {
	t.mu.Lock()
	defer t.mu.Unlock()
	drained := t.toasts
	t.toasts = nil
	return drained
}

// Messages returns the pending messages without clearing them.
func (t *ToastLog) Messages() []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	messages := make([]string, 0, len(t.toasts))
	for _, toast := range t.toasts {
		messages = append(messages, toast.Message)
	}
	return messages
}

type discardNotifier struct{}

func (discardNotifier) Success(string) {}
func (discardNotifier) Error(string)   {}
