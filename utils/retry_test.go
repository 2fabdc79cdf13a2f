package utils

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRetrySucceedsFirstAttempt(t *testing.T) {
	calls := 0
	err := Retry(3, 0, 0, func() error {
		calls++
		return nil
	})

	assert.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestRetrySucceedsWithinBound(t *testing.T) {
	calls := 0
	err := Retry(3, 0, 0, func() error {
		calls++
		if calls < 2 {
			return errors.New("page not rendered")
		}
		return nil
	})

	assert.NoError(t, err)
	assert.Equal(t, 2, calls)
}

func TestRetryExhaustsAttempts(t *testing.T) {
	lastErr := errors.New("timeout")
	calls := 0
	err := Retry(3, 0, 0, func() error {
		calls++
		return lastErr
	})

	assert.Error(t, err)
	assert.ErrorIs(t, err, lastErr)
	assert.Equal(t, 3, calls)
}

func TestRandomDurationBounds(t *testing.T) {
	min := 10 * time.Millisecond
	max := 20 * time.Millisecond

	for i := 0; i < 100; i++ {
		d := randomDuration(min, max)
		assert.GreaterOrEqual(t, d, min)
		assert.Less(t, d, max)
	}
}

func TestRandomDurationDegenerateRange(t *testing.T) {
	assert.Equal(t, 5*time.Millisecond, randomDuration(5*time.Millisecond, 5*time.Millisecond))
	assert.Equal(t, time.Duration(0), randomDuration(0, 0))
}
