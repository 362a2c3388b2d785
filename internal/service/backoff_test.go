package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBackoff_Duration(t *testing.T) {
	backoff := NewBackoff(100*time.Millisecond, 500*time.Millisecond, 2.0)
	backoff.Jitter = false

	assert.Equal(t, 100*time.Millisecond, backoff.Duration(-1))
	assert.Equal(t, 100*time.Millisecond, backoff.Duration(1))
	assert.Equal(t, 200*time.Millisecond, backoff.Duration(2))
	assert.Equal(t, 400*time.Millisecond, backoff.Duration(3))
	assert.Equal(t, 500*time.Millisecond, backoff.Duration(10))
}

func TestBackoff_Duration_WithJitter(t *testing.T) {
	backoff := NewBackoff(100*time.Millisecond, 5*time.Second, 2.0)

	for i := 0; i < 100; i++ {
		d := backoff.Duration(3)
		assert.GreaterOrEqual(t, d, 200*time.Millisecond)
		assert.LessOrEqual(t, d, 400*time.Millisecond)
	}
}

func TestPow(t *testing.T) {
	tests := []struct {
		name     string
		base     float64
		exp      float64
		expected float64
	}{
		{"2^0", 2.0, 0.0, 1.0},
		{"2^3", 2.0, 3.0, 8.0},
		{"1.5^2", 1.5, 2.0, 2.25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, pow(tt.base, tt.exp), 0.0001)
		})
	}
}

func TestBackoff_Retry(t *testing.T) {
	backoff := NewBackoff(time.Millisecond, 2*time.Millisecond, 2.0)

	t.Run("stops on first success", func(t *testing.T) {
		calls := 0
		err := backoff.Retry(context.Background(), 3, func() error {
			calls++
			if calls < 2 {
				return errors.New("busy")
			}
			return nil
		})

		assert.NoError(t, err)
		assert.Equal(t, 2, calls)
	})

	t.Run("returns last error when exhausted", func(t *testing.T) {
		calls := 0
		err := backoff.Retry(context.Background(), 3, func() error {
			calls++
			return errors.New("still busy")
		})

		assert.EqualError(t, err, "still busy")
		assert.Equal(t, 3, calls)
	})

	t.Run("gives up when context is done", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		slow := NewBackoff(time.Hour, time.Hour, 2.0)
		calls := 0
		err := slow.Retry(ctx, 3, func() error {
			calls++
			return errors.New("busy")
		})

		assert.Error(t, err)
		assert.Equal(t, 1, calls)
	})
}
