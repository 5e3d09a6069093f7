package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/noah-isme/noosflare/internal/models"
)

func TestToastLogDrain(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	toasts := NewToastLog(zap.New(core))

	toasts.Success("Код подтвержден")
	toasts.Error("Введите email")

	drained := toasts.Drain()
	require.Len(t, drained, 2)
	assert.Equal(t, models.ToastSuccess, drained[0].Level)
	assert.Equal(t, models.ToastError, drained[1].Level)
	assert.Equal(t, "Введите email", drained[1].Message)
	assert.Empty(t, toasts.Drain())

	assert.Equal(t, 2, logs.FilterMessage("toast").Len())
}

func TestDelayLatency(t *testing.T) {
	assert.NoError(t, Delay(time.Millisecond)(context.Background()))
	assert.NoError(t, Delay(0)(context.Background()))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, Delay(time.Hour)(ctx), context.Canceled)
	assert.ErrorIs(t, NoLatency(ctx), context.Canceled)
}
