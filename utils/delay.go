package utils

import (
	"math/rand"
	"time"
)

// RandomDelay sleeps for a random duration in [min, max).
// Fixed delays are a detectable pattern; randomized ones read as a human
// pausing between actions.
func RandomDelay(min, max time.Duration) {
	time.Sleep(randomDuration(min, max))
}

func randomDuration(min, max time.Duration) time.Duration {
	if max <= min {
		return min
	}
	return min + time.Duration(rand.Int63n(int64(max-min)))
}
