// Package provider implements JSON-RPC endpoint clients.
//
// This package contains:
//   - Provider interface: core abstraction for RPC endpoints
//   - HTTPProvider: JSON-RPC over HTTP implementation
package provider

import (
	"context"
	"time"
)

// Provider defines the core interface for an RPC endpoint.
type Provider interface {
	// GetName returns the provider identifier (e.g., "alchemy", "infura")
	GetName() string

	// Call makes a single JSON-RPC request
	Call(ctx context.Context, method string, params []any) (any, error)

	// GetHealth returns current health metrics
	GetHealth() HealthStatus

	// Close cleans up resources
	Close() error
}

// HealthStatus represents the health state of a provider.
type HealthStatus struct {
	Available     bool
	Latency       time.Duration
	ErrorRate     float64
	LastSuccessAt time.Time
	LastFailureAt time.Time
}
