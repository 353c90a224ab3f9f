package pricing

import (
	"context"
	"log/slog"
	"math/big"
	"time"

	redisclient "github.com/tdngo/holdscan/internal/infra/redis"
	"github.com/tdngo/holdscan/internal/metrics"
)

// CachedPriceSource caches resolved USD prices in Redis so repeated
// scans of the same token within the TTL skip the external lookup.
// Cache failures are logged and fall through to the source.
type CachedPriceSource struct {
	cache *redisclient.Client
	src   PriceSource
	ttl   time.Duration
	log   *slog.Logger
}

// NewCachedPriceSource wraps src with a Redis cache.
func NewCachedPriceSource(
	cache *redisclient.Client,
	src PriceSource,
	ttl time.Duration,
	log *slog.Logger,
) *CachedPriceSource {
	if log == nil {
		log = slog.Default()
	}
	return &CachedPriceSource{cache: cache, src: src, ttl: ttl, log: log}
}

func priceKey(token string) string {
	return "holdscan:price:usd:" + token
}

// TokenPrice returns the cached price when present, consulting the
// wrapped source otherwise. Prices are stored as exact rational
// strings so no precision is lost in the round trip.
func (s *CachedPriceSource) TokenPrice(ctx context.Context, token string) (*big.Rat, error) {
	if cached, err := s.cache.GetString(ctx, priceKey(token)); err == nil {
		if price, ok := new(big.Rat).SetString(cached); ok {
			metrics.PriceLookupsTotal.WithLabelValues("cached").Inc()
			return price, nil
		}
		s.log.Warn("discarding malformed cached price", "token", token, "value", cached)
	} else if err != redisclient.ErrMiss {
		s.log.Warn("price cache read failed", "token", token, "error", err)
	}

	price, err := s.src.TokenPrice(ctx, token)
	if err != nil || price == nil {
		return price, err
	}

	if err := s.cache.SetString(ctx, priceKey(token), price.RatString(), s.ttl); err != nil {
		s.log.Warn("price cache write failed", "token", token, "error", err)
	}
	return price, nil
}
