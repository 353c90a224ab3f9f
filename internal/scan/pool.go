// Package scan implements the concurrent balance-scanning engine: a
// bounded pool of RPC-backed workers fans out per-address balance
// queries, retries failures against the same worker, and aggregates
// the results into a sorted scan report.
package scan

import (
	"context"
	"math/big"
	"sync/atomic"
)

// ContractCaller executes balance lookups for one token contract
// against one RPC endpoint.
type ContractCaller interface {
	BalanceOf(ctx context.Context, holder string) (*big.Int, error)
	Endpoint() string
}

// PoolBuilder constructs the worker pool for one scan of a token
// contract. Pools are built per scan and closed when the scan returns.
type PoolBuilder interface {
	Build(token string) (*Pool, error)
}

// Worker is one unit of query concurrency bound to a single RPC
// endpoint. Its busy flag changes hands only through the pool's idle
// channel, so no two tasks ever use the same worker at once.
type Worker struct {
	caller ContractCaller
	busy   atomic.Bool
}

// Endpoint returns the name of the worker's RPC endpoint.
func (w *Worker) Endpoint() string {
	return w.caller.Endpoint()
}

// Pool is a fixed-size collection of workers. Idle workers are handed
// out through a buffered channel, which blocks acquisition until a
// worker is released instead of polling for a free slot.
type Pool struct {
	workers []*Worker
	idle    chan *Worker
	closer  func() error
}

// NewPool creates a pool with one worker per caller. closer, if not
// nil, is invoked once by Close to release the callers' connections.
func NewPool(callers []ContractCaller, closer func() error) *Pool {
	p := &Pool{
		workers: make([]*Worker, 0, len(callers)),
		idle:    make(chan *Worker, len(callers)),
		closer:  closer,
	}
	for _, c := range callers {
		w := &Worker{caller: c}
		p.workers = append(p.workers, w)
		p.idle <- w
	}
	return p
}

// Size returns the number of workers, the upper bound on queries in
// flight.
func (p *Pool) Size() int {
	return len(p.workers)
}

// InFlight returns how many workers are currently serving a query.
func (p *Pool) InFlight() int {
	n := 0
	for _, w := range p.workers {
		if w.busy.Load() {
			n++
		}
	}
	return n
}

// Close releases the pool's connections.
func (p *Pool) Close() error {
	if p.closer == nil {
		return nil
	}
	return p.closer()
}

// acquire blocks until a worker is idle and transfers ownership of it
// to the caller.
func (p *Pool) acquire(ctx context.Context) (*Worker, error) {
	select {
	case w := <-p.idle:
		w.busy.Store(true)
		return w, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// release marks the worker idle and returns it to the pool.
func (p *Pool) release(w *Worker) {
	w.busy.Store(false)
	p.idle <- w
}
