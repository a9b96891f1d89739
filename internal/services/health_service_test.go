package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/SketchShifter/tag_backend/internal/services"

	"github.com/stretchr/testify/assert"
)

type pingerFunc func(ctx context.Context) error

func (f pingerFunc) PingContext(ctx context.Context) error { return f(ctx) }

func TestHealthService_GetStatus(t *testing.T) {
	ok := services.NewHealthService(pingerFunc(func(context.Context) error { return nil })).GetStatus(context.Background())
	assert.True(t, ok.Healthy())
	assert.Equal(t, services.Version, ok.Version)
	assert.NotEmpty(t, ok.Uptime)

	down := services.NewHealthService(pingerFunc(func(context.Context) error { return errors.New("dial tcp: refused") })).GetStatus(context.Background())
	assert.False(t, down.Healthy())
	assert.Equal(t, "degraded", down.Status)
}

func TestHealthService_NoDatabase(t *testing.T) {
	status := services.NewHealthService(nil).GetStatus(context.Background())
	assert.True(t, status.Healthy())
}
