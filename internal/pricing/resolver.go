// Package pricing resolves token metadata: on-chain symbol/decimals
// plus an external USD unit price.
package pricing

import (
	"context"
	"log/slog"
	"math/big"

	"github.com/tdngo/holdscan/internal/core/domain"
	"github.com/tdngo/holdscan/internal/metrics"
)

// TokenInfoSource reads token attributes from the chain.
type TokenInfoSource interface {
	Symbol(ctx context.Context, token string) (string, error)
	Decimals(ctx context.Context, token string) (uint8, error)
}

// PriceSource returns the USD unit price for a token contract. A nil
// price with a nil error means the source knows nothing about the
// token.
type PriceSource interface {
	TokenPrice(ctx context.Context, token string) (*big.Rat, error)
}

// Resolver combines a chain info source and a price source into the
// scanner's metadata resolver.
type Resolver struct {
	info   TokenInfoSource
	prices PriceSource
	log    *slog.Logger
}

// NewResolver creates a resolver. prices may be nil to skip valuation.
func NewResolver(info TokenInfoSource, prices PriceSource, log *slog.Logger) *Resolver {
	if log == nil {
		log = slog.Default()
	}
	return &Resolver{info: info, prices: prices, log: log}
}

// Resolve returns the metadata for token. A contract that does not
// answer symbol() is reported with Valid=false rather than an error; a
// missing decimals() defaults to 18 and a failed price lookup defaults
// to zero, so neither aborts a scan.
func (r *Resolver) Resolve(ctx context.Context, token string) (domain.TokenMetadata, error) {
	symbol, err := r.info.Symbol(ctx, token)
	if err != nil || symbol == "" {
		if ctx.Err() != nil {
			return domain.TokenMetadata{}, ctx.Err()
		}
		r.log.Warn("token symbol unresolved", "token", token, "error", err)
		return domain.TokenMetadata{
			Decimals: domain.DefaultDecimals,
			PriceUSD: new(big.Rat),
		}, nil
	}

	decimals, err := r.info.Decimals(ctx, token)
	if err != nil {
		r.log.Warn("token decimals unresolved, assuming default",
			"token", token, "default", domain.DefaultDecimals, "error", err)
		decimals = domain.DefaultDecimals
	}

	price := new(big.Rat)
	if r.prices != nil {
		p, err := r.prices.TokenPrice(ctx, token)
		switch {
		case err != nil:
			metrics.PriceLookupsTotal.WithLabelValues("error").Inc()
			r.log.Warn("price lookup failed, valuing at zero", "token", token, "error", err)
		case p != nil:
			price = p
		}
	}

	return domain.TokenMetadata{
		Ticker:   symbol,
		Decimals: decimals,
		PriceUSD: price,
		Valid:    true,
	}, nil
}
