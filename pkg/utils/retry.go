// Package utils provides small helpers shared by the survey packages.
package utils

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
)

// RetryConfig defines the configuration for retry logic using backoff/v4
type RetryConfig struct {
	MaxRetries   int
	InitialDelay time.Duration
	MaxDelay     time.Duration
	Multiplier   float64
	Jitter       bool
}

// DefaultRetryConfig is used for reading local data files, where a failure
// is usually a file caught mid-write.
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxRetries:   3,
		InitialDelay: 50 * time.Millisecond,
		MaxDelay:     500 * time.Millisecond,
		Multiplier:   2.0,
		Jitter:       true,
	}
}

// NewExponentialBackOff creates a backoff.ExponentialBackOff from RetryConfig
func (rc RetryConfig) NewExponentialBackOff() *backoff.ExponentialBackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = rc.InitialDelay
	b.MaxInterval = rc.MaxDelay
	if rc.Multiplier > 0 {
		b.Multiplier = rc.Multiplier
	}
	if !rc.Jitter {
		b.RandomizationFactor = 0
	}
	b.MaxElapsedTime = 0
	return b
}

// Permanent marks err as not worth retrying.
func Permanent(err error) error {
	return backoff.Permanent(err)
}

// ExecuteWithRetry runs operation until it succeeds, returns a permanent
// error, or MaxRetries retries have been spent.
func ExecuteWithRetry(operation func() error, config RetryConfig) error {
	return ExecuteWithRetryContext(context.Background(), operation, config)
}

// ExecuteWithRetryContext is ExecuteWithRetry bounded by ctx.
func ExecuteWithRetryContext(ctx context.Context, operation func() error, config RetryConfig) error {
	var b backoff.BackOff = config.NewExponentialBackOff()
	if config.MaxRetries >= 0 {
		b = backoff.WithMaxRetries(b, uint64(config.MaxRetries))
	}
	b = backoff.WithContext(b, ctx)

	err := backoff.Retry(operation, b)
	if err != nil {
		var perm *backoff.PermanentError
		if errors.As(err, &perm) {
			return perm.Err
		}
		return fmt.Errorf("operation failed after retries: %w", err)
	}
	return nil
}
