package config

import (
	"errors"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

type Config struct {
	Env string

	Log      LogConfig
	Reset    ResetConfig
	Upload   UploadConfig
	Subjects SubjectsConfig
}

type LogConfig struct {
	Level  string
	Format string
}

// ResetConfig drives the forgot-password flow.
type ResetConfig struct {
	Code          string
	ResendSeconds int
	TickInterval  time.Duration
	ChangeLatency time.Duration
}

// UploadConfig tunes the simulated upload pipeline.
type UploadConfig struct {
	Latency    time.Duration
	Workers    int
	BufferSize int
}

// SubjectsConfig controls the subjects screen side panels.
type SubjectsConfig struct {
	TopCount         int
	RecentLimit      int
	InitialFavorites []string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	return fromViper(v), nil
}

func fromViper(v *viper.Viper) *Config {
	cfg := &Config{}

	cfg.Env = v.GetString("ENV")

	cfg.Log = LogConfig{
		Level:  v.GetString("LOG_LEVEL"),
		Format: v.GetString("LOG_FORMAT"),
	}

	cfg.Reset = ResetConfig{
		Code:          v.GetString("RESET_CODE"),
		ResendSeconds: positiveOr(v.GetInt("RESET_RESEND_SECONDS"), 60),
		TickInterval:  parseDuration(v.GetString("RESET_TICK_INTERVAL"), time.Second),
		ChangeLatency: parseDuration(v.GetString("PASSWORD_CHANGE_LATENCY"), 0),
	}

	cfg.Upload = UploadConfig{
		Latency:    parseDuration(v.GetString("UPLOAD_LATENCY"), 2*time.Second),
		Workers:    positiveOr(v.GetInt("UPLOAD_WORKERS"), 1),
		BufferSize: positiveOr(v.GetInt("UPLOAD_BUFFER_SIZE"), 8),
	}

	cfg.Subjects = SubjectsConfig{
		TopCount:         positiveOr(v.GetInt("SUBJECTS_TOP_COUNT"), 5),
		RecentLimit:      positiveOr(v.GetInt("RECENT_SUBJECTS_LIMIT"), 3),
		InitialFavorites: splitAndTrim(v.GetString("INITIAL_FAVORITES")),
	}

	return cfg
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", EnvDevelopment)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "console")

	v.SetDefault("RESET_CODE", "123456")
	v.SetDefault("RESET_RESEND_SECONDS", 60)
	v.SetDefault("RESET_TICK_INTERVAL", "1s")
	v.SetDefault("PASSWORD_CHANGE_LATENCY", "0s")

	v.SetDefault("UPLOAD_LATENCY", "2s")
	v.SetDefault("UPLOAD_WORKERS", 1)
	v.SetDefault("UPLOAD_BUFFER_SIZE", 8)

	v.SetDefault("SUBJECTS_TOP_COUNT", 5)
	v.SetDefault("RECENT_SUBJECTS_LIMIT", 3)
	v.SetDefault("INITIAL_FAVORITES", "physics")
}

func parseDuration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}

	d, err := time.ParseDuration(raw)
	if err != nil {
		return fallback
	}

	return d
}

func positiveOr(value, fallback int) int {
	if value <= 0 {
		return fallback
	}
	return value
}

func splitAndTrim(raw string) []string {
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}

	return result
}
