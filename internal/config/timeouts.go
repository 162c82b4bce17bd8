package config

import (
	"os"
	"time"
)

// Timeouts holds the configurable timing values for long-running
// operations. All remote create/update/delete calls block until the
// operation reaches a terminal state; these values bound that wait.
type Timeouts struct {
	PollFrequency time.Duration // How often pollers check operation status
	Delete        time.Duration // Upper bound for delete operations
}

// LoadTimeouts loads timeout configuration from environment variables.
// If an environment variable is not set or invalid, a default value is used.
//
// Environment Variables:
//   - AZVMLAB_POLL_FREQUENCY (default: 10s)
//   - AZVMLAB_TIMEOUT_DELETE (default: 20m)
func LoadTimeouts() *Timeouts {
	return &Timeouts{
		PollFrequency: parseDuration("AZVMLAB_POLL_FREQUENCY", 10*time.Second),
		Delete:        parseDuration("AZVMLAB_TIMEOUT_DELETE", 20*time.Minute),
	}
}

// parseDuration parses a duration from an environment variable.
// If the variable is not set or parsing fails, the default value is returned.
func parseDuration(envVar string, defaultVal time.Duration) time.Duration {
	val := os.Getenv(envVar)
	if val == "" {
		return defaultVal
	}

	d, err := time.ParseDuration(val)
	if err != nil {
		return defaultVal
	}

	return d
}
