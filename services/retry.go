package services

import "time"

const (
	DefaultMaxAttempts       = 3
	DefaultInitialDelay      = 1000 * time.Millisecond
	DatabaseInitialDelay     = 500 * time.Millisecond
	DefaultBackoffMultiplier = 2.0
	DefaultMaxDelay          = 10 * time.Second
)

// RetryOptions configures one retry sequence. OnRetry is invoked after each
// failed attempt that will be retried, before the backoff sleep.
type RetryOptions struct {
	MaxAttempts       int
	InitialDelay      time.Duration
	BackoffMultiplier float64
	MaxDelay          time.Duration
	OnRetry           func(attempt int, err error)
}

// DefaultRetryOptions are the general-purpose retry settings
func DefaultRetryOptions() RetryOptions {
	return RetryOptions{
		MaxAttempts:       DefaultMaxAttempts,
		InitialDelay:      DefaultInitialDelay,
		BackoffMultiplier: DefaultBackoffMultiplier,
		MaxDelay:          DefaultMaxDelay,
	}
}

// DatabaseRetryOptions are the retry settings for data-store calls
func DatabaseRetryOptions() RetryOptions {
	opts := DefaultRetryOptions()
	opts.InitialDelay = DatabaseInitialDelay
	return opts
}

// RetryResult carries the operation result plus how many attempts it took,
// so a success after retries stays distinguishable from a first-try success.
type RetryResult[T any] struct {
	Value    T
	Attempts int
}

// ExecuteWithRetry runs operation up to MaxAttempts times with exponential
// backoff between attempts. It knows nothing about what it retries; the
// operation is any fallible call. On exhaustion the error of the final
// attempt is returned unwrapped.
func ExecuteWithRetry[T any](operation func() (T, error), opts RetryOptions) (RetryResult[T], error) {
	if opts.MaxAttempts <= 0 {
		opts.MaxAttempts = DefaultMaxAttempts
	}
	if opts.InitialDelay <= 0 {
		opts.InitialDelay = DefaultInitialDelay
	}
	if opts.BackoffMultiplier <= 0 {
		opts.BackoffMultiplier = DefaultBackoffMultiplier
	}
	if opts.MaxDelay <= 0 {
		opts.MaxDelay = DefaultMaxDelay
	}

	delay := opts.InitialDelay
	var lastErr error

	for attempt := 1; attempt <= opts.MaxAttempts; attempt++ {
		value, err := operation()
		if err == nil {
			return RetryResult[T]{Value: value, Attempts: attempt}, nil
		}
		lastErr = err

		if attempt == opts.MaxAttempts {
			break
		}
		if opts.OnRetry != nil {
			opts.OnRetry(attempt, err)
		}
		time.Sleep(delay)
		delay = time.Duration(float64(delay) * opts.BackoffMultiplier)
		if delay > opts.MaxDelay {
			delay = opts.MaxDelay
		}
	}

	var zero T
	return RetryResult[T]{Value: zero, Attempts: opts.MaxAttempts}, lastErr
}
