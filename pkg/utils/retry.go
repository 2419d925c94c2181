package utils

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"
)

// RetryOptions contains configuration for retry behavior.
type RetryOptions struct {
	MaxElapsedTime  time.Duration
	InitialInterval time.Duration
	MaxInterval     time.Duration
	MaxRetries      uint64
	// Notify, when set, is called after every failed attempt that will be
	// retried.
	Notify func(err error, next time.Duration)
}

// GetDeliveryRetryOptions returns retry options for outbound chat messages.
func GetDeliveryRetryOptions(retries uint64) RetryOptions {
	return RetryOptions{
		MaxElapsedTime:  15 * time.Second,
		InitialInterval: 500 * time.Millisecond,
		MaxInterval:     4 * time.Second,
		MaxRetries:      retries,
	}
}

// WithRetry runs operation with exponential backoff until it succeeds, the
// options are exhausted or ctx is done. Errors wrapped with
// backoff.Permanent stop immediately and are returned unwrapped.
func WithRetry[T any](ctx context.Context, operation func() (T, error), opts RetryOptions) (T, error) {
	policy := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(
		backoff.WithMaxElapsedTime(opts.MaxElapsedTime),
		backoff.WithInitialInterval(opts.InitialInterval),
		backoff.WithMaxInterval(opts.MaxInterval),
	), opts.MaxRetries), ctx)

	return backoff.RetryNotifyWithData(operation, policy, opts.Notify)
}
