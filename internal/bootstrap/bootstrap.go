// Package bootstrap wires configuration into the services behind a session.
package bootstrap

import (
	"context"

	"go.uber.org/zap"

	"github.com/noah-isme/noosflare/internal/repository"
	"github.com/noah-isme/noosflare/internal/service"
	"github.com/noah-isme/noosflare/pkg/config"
	"github.com/noah-isme/noosflare/pkg/jobs"
	"github.com/noah-isme/noosflare/pkg/logger"
	"github.com/noah-isme/noosflare/pkg/validation"
)

// App holds the long-lived components of one process.
type App struct {
	Catalog  *repository.CatalogRepository
	Uploads  *repository.UploadRepository
	Metrics  *service.MetricsService
	Toasts   *service.ToastLog
	Subjects  *service.SubjectService
	Materials *service.MaterialService
	Session   *service.Session

	queue  *jobs.Queue
	logger *zap.Logger
}

// New builds the application and starts the upload workers. Call Shutdown when done.
func New(ctx context.Context, cfg *config.Config, log *zap.Logger) *App {
	if log == nil {
		log = zap.NewNop()
	}

	catalog := repository.NewSeededCatalogRepository()
	uploads := repository.NewUploadRepository()
	validate := validation.New()
	metrics := service.NewMetricsService()
	toasts := service.NewToastLog(logger.Named(log, "toast"))

	worker := service.NewUploadWorker(uploads, service.Delay(cfg.Upload.Latency), toasts, metrics, logger.Named(log, "upload"))
	queue := jobs.NewQueue("uploads", worker.Handle, jobs.QueueConfig{
		Workers:    cfg.Upload.Workers,
		BufferSize: cfg.Upload.BufferSize,
		Logger:     logger.Named(log, "queue"),
	})
	queue.Start(ctx)

	subjects := service.NewSubjectService(catalog, service.SubjectConfig{
		TopCount:         cfg.Subjects.TopCount,
		RecentLimit:      cfg.Subjects.RecentLimit,
		InitialFavorites: cfg.Subjects.InitialFavorites,
	}, logger.Named(log, "subjects"))

	materials := service.NewMaterialService(catalog, validate, toasts, metrics, logger.Named(log, "materials"))

	session := service.NewSession(ctx, service.SessionDeps{
		Auth:      service.NewAuthService(validate, nil, metrics, logger.Named(log, "auth")),
		Subjects:  subjects,
		Materials: materials,
		Uploads:   service.NewUploadService(catalog, uploads, queue, worker, validate, toasts, metrics, logger.Named(log, "upload")),
		Profile:   service.NewProfileService(catalog, uploads),
		Validator: validate,
		Notifier:  toasts,
		Metrics:   metrics,
		Logger:    log,
		Reset: service.PasswordResetConfig{
			Code:          cfg.Reset.Code,
			ResendSeconds: cfg.Reset.ResendSeconds,
			TickInterval:  cfg.Reset.TickInterval,
			Latency:       service.Delay(cfg.Reset.ChangeLatency),
		},
	})

	return &App{
		Catalog:   catalog,
		Uploads:   uploads,
		Metrics:   metrics,
		Toasts:    toasts,
		Subjects:  subjects,
		Materials: materials,
		Session:   session,
		queue:     queue,
		logger:    log,
	}
}

// WaitUploads blocks until every scheduled upload has been processed.
func (a *App) WaitUploads() {
	a.queue.Wait()
}

// Shutdown closes the active screen and stops the upload workers.
func (a *App) Shutdown() {
	a.Session.Close()
	a.queue.Stop()
	a.logger.Info("shutdown complete")
}
