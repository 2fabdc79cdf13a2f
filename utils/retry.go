package utils

import (
	"fmt"
	"time"
)

// Retry runs fn up to maxAttempts times, sleeping a randomized delay in
// [minDelay, maxDelay) before every attempt. It returns nil on the first
// success, otherwise the last error after all attempts are exhausted.
func Retry(maxAttempts int, minDelay, maxDelay time.Duration, fn func() error) error {
	var lastErr error

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		RandomDelay(minDelay, maxDelay)

		lastErr = fn()
		if lastErr == nil {
			return nil
		}

		Warn("Attempt %d/%d failed: %v", attempt, maxAttempts, lastErr)
	}

	return fmt.Errorf("all %d attempts failed: %w", maxAttempts, lastErr)
}
