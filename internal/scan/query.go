package scan

import (
	"context"
	"fmt"
	"log/slog"
	"math/big"
	"time"

	"github.com/tdngo/holdscan/internal/metrics"
)

// RetryPolicy controls how a failed balance query is retried. Every
// retry targets the same worker and the same address.
type RetryPolicy struct {
	// MaxAttempts bounds the number of queries per address. 0 retries
	// until success: an unreachable endpoint then holds its worker and
	// stalls that queue position for as long as the context lives.
	MaxAttempts int

	// Delay is the pause between attempts.
	Delay time.Duration
}

// DefaultRetryPolicy retries forever with no delay.
var DefaultRetryPolicy = RetryPolicy{}

// queryBalance runs one balance lookup on w, retrying per policy. It
// returns a non-nil balance, or an error once the policy's attempt
// budget is spent or the context is cancelled.
func queryBalance(
	ctx context.Context,
	w *Worker,
	address string,
	policy RetryPolicy,
	log *slog.Logger,
) (*big.Int, error) {
	for attempt := 1; ; attempt++ {
		start := time.Now()
		bal, err := w.caller.BalanceOf(ctx, address)
		metrics.BalanceQueriesTotal.WithLabelValues(w.Endpoint()).Inc()
		metrics.QueryLatency.WithLabelValues(w.Endpoint()).Observe(time.Since(start).Seconds())

		if err == nil {
			return bal, nil
		}

		log.Warn("balance query failed",
			"endpoint", w.Endpoint(),
			"address", address,
			"attempt", attempt,
			"error", err,
		)

		if policy.MaxAttempts > 0 && attempt >= policy.MaxAttempts {
			return nil, fmt.Errorf("balance of %s failed after %d attempts: %w", address, attempt, err)
		}
		metrics.QueryRetriesTotal.WithLabelValues(w.Endpoint()).Inc()

		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if policy.Delay > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(policy.Delay):
			}
		}
	}
}
