package eth

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"github.com/tdngo/holdscan/internal/infra/rpc/provider"
	"github.com/tdngo/holdscan/internal/scan"
)

// Endpoint identifies one RPC endpoint.
type Endpoint struct {
	Name string
	URL  string
}

// BoundContract binds a Client to one token contract. It is the
// per-worker caller handed to the scan pool.
type BoundContract struct {
	client *Client
	token  string
}

// Bind binds client to the given token contract.
func Bind(client *Client, token string) *BoundContract {
	return &BoundContract{client: client, token: token}
}

// BalanceOf returns holder's balance of the bound token.
func (b *BoundContract) BalanceOf(ctx context.Context, holder string) (*big.Int, error) {
	return b.client.BalanceOf(ctx, b.token, holder)
}

// Endpoint returns the name of the underlying RPC endpoint.
func (b *BoundContract) Endpoint() string {
	return b.client.Endpoint()
}

// PoolBuilder constructs per-scan worker pools. With multiple
// endpoints every scan gets fresh connections, one worker per
// endpoint, all bound to the scanned token contract. With a single
// endpoint all scans share one connection and the pool holds one
// worker.
type PoolBuilder struct {
	endpoints []Endpoint
	timeout   time.Duration
	shared    *Client
}

// NewPoolBuilder creates a builder over the configured endpoints.
func NewPoolBuilder(endpoints []Endpoint, timeout time.Duration) (*PoolBuilder, error) {
	if len(endpoints) == 0 {
		return nil, fmt.Errorf("no endpoints configured")
	}
	b := &PoolBuilder{endpoints: endpoints, timeout: timeout}
	if len(endpoints) == 1 {
		ep := endpoints[0]
		b.shared = NewClient(provider.NewHTTPProvider(ep.Name, ep.URL, timeout))
	}
	return b, nil
}

// SharedClient returns the shared connection in single-endpoint mode,
// nil otherwise. The metadata resolver reuses it for symbol/decimals
// calls.
func (b *PoolBuilder) SharedClient() *Client {
	return b.shared
}

// Build creates the worker pool for one scan of token.
func (b *PoolBuilder) Build(token string) (*scan.Pool, error) {
	if b.shared != nil {
		// Shared connection: the builder owns its lifecycle.
		return scan.NewPool([]scan.ContractCaller{Bind(b.shared, token)}, nil), nil
	}

	clients := make([]*Client, 0, len(b.endpoints))
	callers := make([]scan.ContractCaller, 0, len(b.endpoints))
	for _, ep := range b.endpoints {
		c := NewClient(provider.NewHTTPProvider(ep.Name, ep.URL, b.timeout))
		clients = append(clients, c)
		callers = append(callers, Bind(c, token))
	}

	closeAll := func() error {
		var firstErr error
		for _, c := range clients {
			if err := c.Close(); err != nil && firstErr == nil {
				firstErr = err
			}
		}
		return firstErr
	}
	return scan.NewPool(callers, closeAll), nil
}

// Close releases the shared connection, if any.
func (b *PoolBuilder) Close() error {
	if b.shared == nil {
		return nil
	}
	return b.shared.Close()
}
