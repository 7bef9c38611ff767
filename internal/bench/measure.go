package bench

import (
	"fmt"
	"time"
)

// Stats summarizes a measured solver execution.
type Stats struct {
	Runs int
	Mean time.Duration
}

// Measure runs fn n times and returns the mean wall-clock duration.
// The first error aborts the measurement.
func Measure(n int, fn func() error) (Stats, error) {
	if n < 1 {
		return Stats{}, fmt.Errorf("runs must be positive, got %d", n)
	}

	var total time.Duration
	for i := 0; i < n; i++ {
		start := time.Now()
		if err := fn(); err != nil {
			return Stats{}, err
		}
		total += time.Since(start)
	}

	return Stats{Runs: n, Mean: total / time.Duration(n)}, nil
}

// ChangePercent returns the percent change of current against
// baseline: positive means slower, negative means faster.
func ChangePercent(baseline, current time.Duration) float64 {
	return (float64(current) - float64(baseline)) / float64(baseline) * 100
}
