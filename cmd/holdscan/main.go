package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math/big"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"
	"github.com/vietddude/stylelog"

	"github.com/tdngo/holdscan/internal/core/config"
	"github.com/tdngo/holdscan/internal/core/domain"
	"github.com/tdngo/holdscan/internal/infra/eth"
	redisclient "github.com/tdngo/holdscan/internal/infra/redis"
	"github.com/tdngo/holdscan/internal/infra/rpc/provider"
	"github.com/tdngo/holdscan/internal/metrics"
	"github.com/tdngo/holdscan/internal/pricing"
	"github.com/tdngo/holdscan/internal/report"
	"github.com/tdngo/holdscan/internal/scan"
)

func main() {
	_ = godotenv.Load()

	configPath := flag.String("config", "config.yaml", "Path to configuration file")
	addressPath := flag.String("addresses", "addresses.txt", "Address list file (\"-\" for stdin)")
	isDebug := flag.Bool("debug", false, "Enable debug logging")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		// Fall back to default logger for config load errors
		stylelog.InitDefault()
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	slogLevel := slog.LevelInfo
	if *isDebug || cfg.Logging.Level == "debug" {
		slogLevel = slog.LevelDebug
	}
	stylelog.InitDefault(&tint.Options{
		Level:      slogLevel,
		TimeFormat: time.RFC3339,
	})

	tokens := flag.Args()
	if len(tokens) == 0 {
		slog.Error("No token contracts given; pass one or more as arguments")
		os.Exit(1)
	}
	for _, tok := range tokens {
		if !domain.IsValidAddress(tok) {
			slog.Error("Invalid token contract address", "token", tok)
			os.Exit(1)
		}
	}

	addresses, err := loadAddresses(*addressPath)
	if err != nil {
		slog.Error("Failed to load address list", "path", *addressPath, "error", err)
		os.Exit(1)
	}
	slog.Info("Loaded address list", "count", len(addresses))

	// Signal-driven cancellation is the only way out of a scan stuck
	// retrying an unreachable endpoint.
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if cfg.Server.Port > 0 {
		srv := metrics.NewServer(cfg.Server.Port)
		go func() {
			if err := srv.Start(); err != nil {
				slog.Debug("Metrics server stopped", "error", err)
			}
		}()
		defer func() {
			shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer shutdownCancel()
			_ = srv.Stop(shutdownCtx)
		}()
	}

	endpoints := make([]eth.Endpoint, 0, len(cfg.Chain.Endpoints))
	for _, ep := range cfg.Chain.Endpoints {
		endpoints = append(endpoints, eth.Endpoint{Name: ep.Name, URL: ep.URL})
	}

	builder, err := eth.NewPoolBuilder(endpoints, cfg.Chain.RequestTimeout)
	if err != nil {
		slog.Error("Failed to initialize worker pool builder", "error", err)
		os.Exit(1)
	}
	defer builder.Close()

	// Metadata calls reuse the shared connection when there is one,
	// otherwise they get their own client on the first endpoint.
	infoClient := builder.SharedClient()
	if infoClient == nil {
		infoClient = eth.NewClient(provider.NewHTTPProvider(
			endpoints[0].Name, endpoints[0].URL, cfg.Chain.RequestTimeout))
		defer infoClient.Close()
	}

	var priceSource pricing.PriceSource = pricing.NewCoinGeckoClient(
		cfg.Pricing.BaseURL, cfg.Pricing.Platform, cfg.Chain.RequestTimeout)
	if cfg.Redis.URL != "" {
		cache, err := redisclient.NewClient(redisclient.Config{
			URL:      cfg.Redis.URL,
			Password: cfg.Redis.Password,
		})
		if err != nil {
			slog.Warn("Redis unavailable, price caching disabled", "error", err)
		} else {
			defer cache.Close()
			priceSource = pricing.NewCachedPriceSource(cache, priceSource, cfg.Pricing.CacheTTL, nil)
		}
	}

	scanner := scan.NewScanner(
		pricing.NewResolver(infoClient, priceSource, nil),
		builder,
		domain.NewExclusionSet(cfg.Exclusions),
		scan.RetryPolicy{MaxAttempts: cfg.Retry.MaxAttempts, Delay: cfg.Retry.Delay},
		slog.Default(),
	)

	grandTotal := new(big.Rat)
	for _, token := range tokens {
		res, err := scanner.Scan(ctx, token, addresses)
		if err != nil {
			slog.Error("Scan failed", "token", token, "error", err)
			os.Exit(1)
		}

		text, totalUSD := report.Format(res)
		fmt.Println(text)
		grandTotal.Add(grandTotal, totalUSD)
	}

	fmt.Printf("Total exposure across %d token(s): $%s\n",
		len(tokens), report.FormatFixed(grandTotal, 2))
}

func loadAddresses(path string) ([]string, error) {
	var data []byte
	var err error
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, err
	}
	return domain.ParseAddressList(string(data))
}
