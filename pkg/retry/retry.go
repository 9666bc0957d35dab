package retry

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/loopcard/loyalty-backend/pkg/logging"
)

// Config holds the configuration for retry operations
type Config struct {
	MaxRetries      int                   // Maximum number of retry attempts
	InitialDelay    time.Duration         // Initial delay between retries
	MaxDelay        time.Duration         // Maximum delay between retries
	BackoffFactor   float64               // Multiplier for exponential backoff
	JitterFactor    float64               // Factor for adding jitter to delays (% of delay)
	LogRetryAttempt bool                  // Whether to log retry attempts
	ShouldRetry     func(error, int) bool // Custom predicate: (error, attempt number)
}

// DefaultConfig returns a default configuration for retry operations
func DefaultConfig() *Config {
	return &Config{
		MaxRetries:      5,
		InitialDelay:    time.Second,
		MaxDelay:        30 * time.Second,
		BackoffFactor:   2.0,
		JitterFactor:    0.2,
		LogRetryAttempt: true,
	}
}

// Validate checks the configuration for reasonable values
func (c *Config) Validate() error {
	if c.MaxRetries < 0 {
		return errors.New("MaxRetries must be >= 0")
	}
	if c.InitialDelay <= 0 {
		return errors.New("InitialDelay must be positive")
	}
	if c.MaxDelay <= 0 {
		return errors.New("MaxDelay must be positive")
	}
	if c.BackoffFactor < 1.0 {
		return errors.New("BackoffFactor must be >= 1.0")
	}
	if c.JitterFactor < 0 || c.JitterFactor > 1.0 {
		return errors.New("JitterFactor must be between 0.0 and 1.0")
	}
	return nil
}

func withJitter(baseDelay time.Duration, jitterFactor float64) time.Duration {
	if jitterFactor <= 0 {
		return baseDelay
	}
	jitter := time.Duration(jitterFactor * float64(baseDelay) * rand.Float64())
	return baseDelay + jitter
}

func nextDelay(current time.Duration, backoffFactor float64, maxDelay time.Duration) time.Duration {
	next := time.Duration(float64(current) * backoffFactor)
	if next > maxDelay {
		next = maxDelay
	}
	return next
}

// Retry executes the given operation with exponential backoff.
// Returns the result of the operation if successful, or an error once all
// attempts fail or the context is cancelled.
func Retry[T any](ctx context.Context, operation func() (T, error), config *Config, logger logging.Logger) (T, error) {
	var zero T
	var err error

	if config == nil {
		config = DefaultConfig()
	} else if err := config.Validate(); err != nil {
		return zero, fmt.Errorf("invalid retry config: %w", err)
	}

	delay := config.InitialDelay

	for attempt := 0; attempt < config.MaxRetries; attempt++ {
		select {
		case <-ctx.Done():
			return zero, ctx.Err()
		default:
		}

		result, opErr := operation()
		if opErr == nil {
			return result, nil
		}
		err = opErr

		if config.ShouldRetry != nil && !config.ShouldRetry(err, attempt+1) {
			return zero, err
		}

		sleep := withJitter(delay, config.JitterFactor)
		if config.LogRetryAttempt {
			logger.Warnf("Attempt %d/%d failed: %v. Retrying in %v...", attempt+1, config.MaxRetries, err, sleep)
		}

		select {
		case <-time.After(sleep):
			delay = nextDelay(delay, config.BackoffFactor, config.MaxDelay)
		case <-ctx.Done():
			return zero, ctx.Err()
		}
	}

	return zero, fmt.Errorf("operation failed after %d attempts: %w", config.MaxRetries, err)
}

// RetryFunc executes an operation that only returns an error.
// This is a convenience wrapper around Retry.
func RetryFunc(ctx context.Context, operation func() error, config *Config, logger logging.Logger) error {
	opWithValue := func() (struct{}, error) {
		return struct{}{}, operation()
	}
	_, err := Retry(ctx, opWithValue, config, logger)
	return err
}
