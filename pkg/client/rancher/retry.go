package rancher

import (
	"context"
	"time"
)

// backoffBase is the delay before the second attempt; it doubles for each
// further attempt (0.25s, 0.5s, 1s, ...).
const backoffBase = 250 * time.Millisecond

// RetryPolicy names the retry behavior of the client: which statuses are
// retried, how many attempts are made, and how long to wait between them.
// The Sleep function is substitutable so tests can record delays instead of
// waiting them out.
type RetryPolicy struct {
	// MaxAttempts is the total number of attempts, including the first.
	MaxAttempts int

	// RetryableStatusCodes are the HTTP statuses retried alongside
	// transport-level failures.
	RetryableStatusCodes map[int]struct{}

	// Backoff returns the delay after the given failed attempt (1-indexed).
	Backoff func(attempt int) time.Duration

	// Sleep waits for the given duration or until the context is done.
	Sleep func(ctx context.Context, d time.Duration) error
}

// DefaultRetryPolicy returns the standard policy: 429 and the transient 5xx
// statuses retried with exponential backoff.
func DefaultRetryPolicy(maxAttempts int) RetryPolicy {
	return RetryPolicy{
		MaxAttempts: maxAttempts,
		RetryableStatusCodes: map[int]struct{}{
			429: {},
			500: {},
			502: {},
			503: {},
			504: {},
		},
		Backoff: ExponentialBackoff,
		Sleep:   sleepContext,
	}
}

// IsRetryable reports whether the status code is in the retryable set.
func (p RetryPolicy) IsRetryable(statusCode int) bool {
	_, ok := p.RetryableStatusCodes[statusCode]
	return ok
}

// ExponentialBackoff returns backoffBase doubled for each failed attempt
// beyond the first.
func ExponentialBackoff(attempt int) time.Duration {
	return backoffBase << (attempt - 1)
}

// sleepContext waits for d, returning early with the context error if the
// context is cancelled first.
func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
