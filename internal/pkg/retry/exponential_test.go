package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/prasetyadi/temanku/internal/pkg/logger"
)

func fastConfig() Config {
	cfg := DefaultConfig()
	cfg.BaseDelay = time.Millisecond
	cfg.MaxDelay = 5 * time.Millisecond
	cfg.Jitter = false
	return cfg
}

func TestExecute_SucceedsAfterFailures(t *testing.T) {
	// Arrange
	r := New(fastConfig(), logger.GetGlobalLogger())

	calls := 0
	fn := func(ctx context.Context) error {
		calls++
		if calls < 3 {
			return errors.New("relay unavailable")
		}
		return nil
	}

	// Act
	err := r.Execute(context.Background(), fn)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestExecute_ExhaustsBudget(t *testing.T) {
	// Arrange
	cfg := fastConfig()
	cfg.MaxRetries = 2
	r := New(cfg, logger.GetGlobalLogger())

	calls := 0
	fn := func(ctx context.Context) error {
		calls++
		return errors.New("relay unavailable")
	}

	// Act
	err := r.Execute(context.Background(), fn)

	// Assert
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "retry limit exceeded")
	assert.Equal(t, 3, calls)
}

func TestExecute_NonRetryableStopsImmediately(t *testing.T) {
	// Arrange
	cfg := fastConfig()
	permanent := errors.New("bad request")
	cfg.Retryable = func(err error) bool {
		return !errors.Is(err, permanent)
	}
	r := New(cfg, logger.GetGlobalLogger())

	calls := 0
	fn := func(ctx context.Context) error {
		calls++
		return permanent
	}

	// Act
	err := r.Execute(context.Background(), fn)

	// Assert
	assert.ErrorIs(t, err, permanent)
	assert.Equal(t, 1, calls)
}

func TestExecute_ContextCancelled(t *testing.T) {
	// Arrange
	r := New(fastConfig(), logger.GetGlobalLogger())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// Act
	err := r.Execute(ctx, func(ctx context.Context) error {
		return errors.New("never retried")
	})

	// Assert
	assert.ErrorIs(t, err, context.Canceled)
}
