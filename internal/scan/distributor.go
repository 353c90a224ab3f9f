package scan

import (
	"context"
	"log/slog"
	"math/big"

	"golang.org/x/sync/errgroup"

	"github.com/tdngo/holdscan/internal/metrics"
)

// Distributor assigns a queue of addresses to idle workers, one task
// per worker at a time, until the queue is drained and every launched
// query has completed.
type Distributor struct {
	pool   *Pool
	policy RetryPolicy
	log    *slog.Logger
}

// NewDistributor creates a distributor over pool.
func NewDistributor(pool *Pool, policy RetryPolicy, log *slog.Logger) *Distributor {
	if log == nil {
		log = slog.Default()
	}
	return &Distributor{pool: pool, policy: policy, log: log}
}

// Distribute runs one balance query per address. Addresses are handed
// to workers strictly in input order as workers become idle, so at
// most pool.Size() queries are ever in flight. The returned slice is
// index-aligned with addresses regardless of completion order or which
// worker served each query. With the default unlimited retry policy an
// error is only possible through context cancellation.
func (d *Distributor) Distribute(ctx context.Context, addresses []string) ([]*big.Int, error) {
	results := make([]*big.Int, len(addresses))

	g, gctx := errgroup.WithContext(ctx)
	var acquireErr error
	for i, addr := range addresses {
		w, err := d.pool.acquire(gctx)
		if err != nil {
			// Either the caller cancelled or a launched query failed
			// and cancelled the group; Wait surfaces the latter.
			acquireErr = err
			break
		}
		metrics.InFlightQueries.Inc()
		g.Go(func() error {
			defer func() {
				metrics.InFlightQueries.Dec()
				d.pool.release(w)
			}()
			bal, err := queryBalance(gctx, w, addr, d.policy, d.log)
			if err != nil {
				return err
			}
			results[i] = bal
			return nil
		})
	}

	err := g.Wait()
	if err == nil {
		err = acquireErr
	}
	if err != nil {
		return nil, err
	}
	return results, nil
}
