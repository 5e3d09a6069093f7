package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/noah-isme/noosflare/internal/dto"
	"github.com/noah-isme/noosflare/internal/models"
	"github.com/noah-isme/noosflare/internal/repository"
	appErrors "github.com/noah-isme/noosflare/pkg/errors"
	"github.com/noah-isme/noosflare/pkg/jobs"
	"github.com/noah-isme/noosflare/pkg/validation"
)

// JobTypeUpload tags upload jobs on the queue.
const JobTypeUpload = "upload"

const msgUploadAccepted = "Материал успешно загружен и отправлен на модерацию!"

type uploadStore interface {
	Create(upload models.Upload) error
	UpdateStatus(id string, status models.UploadStatus) (models.Upload, error)
	FindByID(id string) (models.Upload, error)
	ListByOwner(ownerID string) []models.Upload
}

type jobDispatcher interface {
	Enqueue(job jobs.Job) error
}

// UploadService validates upload forms and hands accepted uploads to the worker.
type UploadService struct {
	catalog   *repository.CatalogRepository
	repo      uploadStore
	queue     jobDispatcher
	worker    *UploadWorker
	validator *validation.Validator
	notifier  Notifier
	metrics   *MetricsService
	logger    *zap.Logger
	now       func() time.Time
}

// NewUploadService constructs an UploadService. Without a queue, uploads are
// processed inline by worker on the caller's goroutine.
func NewUploadService(catalog *repository.CatalogRepository, repo uploadStore, queue jobDispatcher, worker *UploadWorker, validate *validation.Validator, notifier Notifier, metrics *MetricsService, logger *zap.Logger) *UploadService {
	if validate == nil {
		validate = validation.New()
	}
	if notifier == nil {
		notifier = discardNotifier{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if worker == nil {
		worker = NewUploadWorker(repo, NoLatency, notifier, metrics, logger)
	}
	return &UploadService{
		catalog:   catalog,
		repo:      repo,
		queue:     queue,
		worker:    worker,
		validator: validate,
		notifier:  notifier,
		metrics:   metrics,
		logger:    logger,
		now:       time.Now,
	}
}

// Form returns the choices for the upload screen given the current selections.
func (s *UploadService) Form(subjectID string, kind models.MaterialKind) dto.UploadForm {
	topics := s.catalog.UploadTopics(subjectID)
	if topics == nil {
		topics = []string{}
	}
	return dto.UploadForm{
		Subjects:       s.catalog.Subjects(),
		Topics:         topics,
		AcceptedFormat: AcceptedFormats(kind),
	}
}

// Submit records the upload as uploading and schedules its completion.
func (s *UploadService) Submit(ctx context.Context, owner models.User, req models.UploadRequest) (*models.Upload, error) {
	if err := s.validate(req); err != nil {
		s.metrics.ObserveValidationFailure("upload")
		s.notifier.Error(appErrors.Message(err))
		return nil, err
	}

	upload := models.Upload{
		ID:          uuid.NewString(),
		OwnerID:     owner.ID,
		Kind:        req.Kind,
		SubjectID:   req.SubjectID,
		Topic:       req.Topic,
		Source:      req.Source,
		Title:       req.Title,
		Description: req.Description,
		FileName:    req.FileName,
		FileSize:    req.FileSize,
		Status:      models.UploadStatusUploading,
		CreatedAt:   s.now().UTC(),
	}
	if err := s.repo.Create(upload); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to record upload")
	}
	s.metrics.ObserveUpload(models.UploadStatusUploading)

	job := jobs.Job{ID: upload.ID, Type: JobTypeUpload, Payload: upload.Title}
	if s.queue == nil {
		if err := s.worker.Handle(ctx, job); err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, "upload interrupted")
		}
		stored, err := s.repo.FindByID(upload.ID)
		if err != nil {
			return nil, err
		}
		return &stored, nil
	}

	if err := s.queue.Enqueue(job); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to schedule upload")
	}
	s.logger.Info("upload scheduled", zap.String("upload_id", upload.ID), zap.String("owner_id", owner.ID))
	return &upload, nil
}

func (s *UploadService) validate(req models.UploadRequest) error {
	if err := s.validator.Check(req); err != nil {
		return err
	}
	for _, topic := range s.catalog.UploadTopics(req.SubjectID) {
		if topic == req.Topic {
			return nil
		}
	}
	return appErrors.Clone(appErrors.ErrValidation, validation.MsgInvalidChoice)
}

// UploadWorker completes uploads after the simulated transfer.
type UploadWorker struct {
	repo     uploadStore
	latency  Latency
	notifier Notifier
	metrics  *MetricsService
	logger   *zap.Logger
}

// NewUploadWorker constructs a worker.
func NewUploadWorker(repo uploadStore, latency Latency, notifier Notifier, metrics *MetricsService, logger *zap.Logger) *UploadWorker {
	if latency == nil {
		latency = NoLatency
	}
	if notifier == nil {
		notifier = discardNotifier{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UploadWorker{repo: repo, latency: latency, notifier: notifier, metrics: metrics, logger: logger}
}

// Handle processes a queue job.
func (w *UploadWorker) Handle(ctx context.Context, job jobs.Job) error {
	if err := w.latency(ctx); err != nil {
		return err
	}
	upload, err := w.repo.UpdateStatus(job.ID, models.UploadStatusPending)
	if err != nil {
		return err
	}
	w.metrics.ObserveUpload(upload.Status)
	w.notifier.Success(msgUploadAccepted)
	w.logger.Info("upload sent to moderation", zap.String("upload_id", upload.ID), zap.String("title", upload.Title))
	return nil
}

// AcceptedFormats describes the files accepted for kind.
func AcceptedFormats(kind models.MaterialKind) string {
	switch kind {
	case models.KindVideo:
		return "Поддерживаемые форматы: MP4, AVI, MOV (макс. 500 МБ)"
	case models.KindNotes:
		return "Поддерживаемые форматы: PDF (макс. 50 МБ)"
	default:
		return "Формат: Для видео - MP4, для конспектов - PDF"
	}
}

// FileSizeLabel renders a byte count in megabytes.
func FileSizeLabel(size int64) string {
	return fmt.Sprintf("%.2f МБ", float64(size)/1024/1024)
}
