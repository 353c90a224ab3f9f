package scan

import (
	"context"
	"fmt"
	"log/slog"
	"math/big"
	"time"

	"github.com/google/uuid"

	"github.com/tdngo/holdscan/internal/core/domain"
	"github.com/tdngo/holdscan/internal/metrics"
)

// MetadataResolver resolves a token contract to its display ticker,
// decimal precision and USD unit price. An unknown token is reported
// with Valid=false, never with an error.
type MetadataResolver interface {
	Resolve(ctx context.Context, token string) (domain.TokenMetadata, error)
}

// Scanner orchestrates one token scan: metadata resolution, exclusion
// filtering, pool construction, distribution and aggregation.
type Scanner struct {
	resolver   MetadataResolver
	builder    PoolBuilder
	exclusions domain.ExclusionSet
	policy     RetryPolicy
	log        *slog.Logger
}

// NewScanner creates a scanner. A nil logger falls back to the default.
func NewScanner(
	resolver MetadataResolver,
	builder PoolBuilder,
	exclusions domain.ExclusionSet,
	policy RetryPolicy,
	log *slog.Logger,
) *Scanner {
	if log == nil {
		log = slog.Default()
	}
	return &Scanner{
		resolver:   resolver,
		builder:    builder,
		exclusions: exclusions,
		policy:     policy,
		log:        log,
	}
}

// Scan queries every address for its balance of token and returns the
// completed result. An unresolvable token short-circuits before any
// balance query is issued. Individual query failures never abort the
// scan; they are retried per the scanner's policy.
func (s *Scanner) Scan(ctx context.Context, token string, addresses []string) (*domain.ScanResult, error) {
	token = domain.NormalizeAddress(token)
	log := s.log.With("run", uuid.New().String()[:8], "token", token)

	meta, err := s.resolver.Resolve(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("resolve token %s: %w", token, err)
	}
	if !meta.Valid {
		log.Warn("token could not be resolved, skipping balance queries")
		return &domain.ScanResult{
			Token:    token,
			Decimals: domain.DefaultDecimals,
			PriceUSD: new(big.Rat),
		}, nil
	}

	working := s.exclusions.Apply(token, addresses)
	if skipped := len(addresses) - len(working); skipped > 0 {
		log.Info("excluded configured addresses", "count", skipped)
	}

	pool, err := s.builder.Build(token)
	if err != nil {
		return nil, fmt.Errorf("build worker pool: %w", err)
	}
	defer pool.Close()

	log.Info("scanning balances",
		"ticker", meta.Ticker,
		"addresses", len(working),
		"workers", pool.Size(),
	)

	start := time.Now()
	raws, err := NewDistributor(pool, s.policy, log).Distribute(ctx, working)
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", token, err)
	}

	records := Aggregate(working, raws, meta)

	metrics.ScansTotal.Inc()
	metrics.ScanDuration.Observe(time.Since(start).Seconds())
	log.Info("scan complete", "holders", len(records), "elapsed", time.Since(start))

	return &domain.ScanResult{
		Token:    token,
		Ticker:   meta.Ticker,
		Decimals: meta.Decimals,
		PriceUSD: meta.Price(),
		Valid:    true,
		Records:  records,
	}, nil
}
