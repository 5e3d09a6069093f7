package bootstrap

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/noosflare/internal/models"
	"github.com/noah-isme/noosflare/internal/service"
	"github.com/noah-isme/noosflare/pkg/config"
)

func testConfig() *config.Config {
	return &config.Config{
		Env:    config.EnvDevelopment,
		Reset:  config.ResetConfig{Code: "654321", ResendSeconds: 5, TickInterval: time.Hour},
		Upload: config.UploadConfig{Latency: time.Millisecond, Workers: 2, BufferSize: 4},
		Subjects: config.SubjectsConfig{
			TopCount:         3,
			RecentLimit:      2,
			InitialFavorites: []string{"music"},
		},
	}
}

func TestAppUploadsThroughQueue(t *testing.T) {
	app := New(context.Background(), testConfig(), nil)
	t.Cleanup(app.Shutdown)

	session := app.Session
	require.NoError(t, session.Login(models.LoginRequest{Email: "a@b.com", Password: "secret"}))
	require.NoError(t, session.Navigate(models.ScreenUpload))

	upload, err := session.Upload(context.Background(), models.UploadRequest{
		Kind:      models.KindVideo,
		SubjectID: "physics",
		Topic:     "Оптика",
		Source:    "Лекции",
		Title:     "Линзы",
		FileName:  "lenses.mp4",
	})
	require.NoError(t, err)
	assert.Equal(t, models.UploadStatusUploading, upload.Status)

	app.WaitUploads()
	stored, err := app.Uploads.FindByID(upload.ID)
	require.NoError(t, err)
	assert.Equal(t, models.UploadStatusPending, stored.Status)
	assert.Equal(t, uint64(1), app.Metrics.Snapshot().UploadsCompleted)
}

func TestAppAppliesConfig(t *testing.T) {
	app := New(context.Background(), testConfig(), nil)
	t.Cleanup(app.Shutdown)

	session := app.Session
	require.NoError(t, session.Login(models.LoginRequest{Email: "a@b.com", Password: "secret"}))
	screen, err := session.Subjects()
	require.NoError(t, err)
	overview := screen.Overview()
	assert.Len(t, overview.Popular, 3)
	require.Len(t, overview.Favorites, 1)
	assert.Equal(t, "music", overview.Favorites[0].Subject.ID)

	require.NoError(t, session.Fire(service.Event{Kind: service.EventLogout}))
	require.NoError(t, session.Fire(service.Event{Kind: service.EventForgotPassword}))
	reset, err := session.PasswordReset()
	require.NoError(t, err)
	require.NoError(t, reset.SubmitEmail("a@b.com"))
	assert.Equal(t, 5, reset.ResendRemaining())
	assert.Error(t, reset.SubmitCode("123456"))
	assert.NoError(t, reset.SubmitCode("654321"))
}
