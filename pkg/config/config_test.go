package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, EnvDevelopment, cfg.Env)
	assert.Equal(t, "123456", cfg.Reset.Code)
	assert.Equal(t, 60, cfg.Reset.ResendSeconds)
	assert.Equal(t, time.Second, cfg.Reset.TickInterval)
	assert.Equal(t, 2*time.Second, cfg.Upload.Latency)
	assert.Equal(t, 5, cfg.Subjects.TopCount)
	assert.Equal(t, []string{"physics"}, cfg.Subjects.InitialFavorites)
}

func TestLoadReadsEnvironment(t *testing.T) {
	t.Setenv("RESET_CODE", "654321")
	t.Setenv("RESET_RESEND_SECONDS", "30")
	t.Setenv("UPLOAD_LATENCY", "150ms")
	t.Setenv("INITIAL_FAVORITES", "math, music ,")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "654321", cfg.Reset.Code)
	assert.Equal(t, 30, cfg.Reset.ResendSeconds)
	assert.Equal(t, 150*time.Millisecond, cfg.Upload.Latency)
	assert.Equal(t, []string{"math", "music"}, cfg.Subjects.InitialFavorites)
}

func TestFromViperFallsBackOnInvalidValues(t *testing.T) {
	v := viper.New()
	setDefaults(v)
	v.Set("RESET_TICK_INTERVAL", "not-a-duration")
	v.Set("UPLOAD_WORKERS", -2)

	cfg := fromViper(v)

	assert.Equal(t, time.Second, cfg.Reset.TickInterval)
	assert.Equal(t, 1, cfg.Upload.Workers)
}
