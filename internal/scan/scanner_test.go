package scan

import (
	"context"
	"math/big"
	"testing"

	"github.com/tdngo/holdscan/internal/core/domain"
)

type fakeResolver struct {
	meta domain.TokenMetadata
	err  error
}

func (r *fakeResolver) Resolve(ctx context.Context, token string) (domain.TokenMetadata, error) {
	return r.meta, r.err
}

type fakeBuilder struct {
	caller *fakeCaller
	builds int
}

func (b *fakeBuilder) Build(token string) (*Pool, error) {
	b.builds++
	return buildTestPool(b.caller), nil
}

func validMeta() domain.TokenMetadata {
	return domain.TokenMetadata{Ticker: "TST", Decimals: 0, PriceUSD: ratInt(1), Valid: true}
}

func TestScan_InvalidTokenShortCircuits(t *testing.T) {
	builder := &fakeBuilder{caller: newFakeCaller("w", nil)}
	s := NewScanner(&fakeResolver{}, builder, nil, DefaultRetryPolicy, nil)

	addrs, _ := addressList(3)
	res, err := s.Scan(context.Background(), "0x1111111111111111111111111111111111111111", addrs)
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}

	if res.Valid {
		t.Error("Expected invalid result for unresolvable token")
	}
	if len(res.Records) != 0 {
		t.Errorf("Expected no records, got %d", len(res.Records))
	}
	if res.PriceUSD.Sign() != 0 {
		t.Errorf("Expected zero price, got %v", res.PriceUSD)
	}
	if res.Decimals != domain.DefaultDecimals {
		t.Errorf("Expected default decimals, got %d", res.Decimals)
	}
	if builder.builds != 0 {
		t.Errorf("Expected no pool builds, got %d", builder.builds)
	}
	if builder.caller.callCount.Load() != 0 {
		t.Errorf("Expected no balance queries, got %d", builder.caller.callCount.Load())
	}
}

func TestScan_AppliesExclusionsPerToken(t *testing.T) {
	token := "0xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"
	other := "0xbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb"
	burn := "0x000000000000000000000000000000000000dead"
	holder := "0x1111111111111111111111111111111111111111"

	balances := map[string]int64{burn: 50, holder: 7}
	exclusions := domain.NewExclusionSet(map[string][]string{token: {burn}})

	// The burn address appears twice; exclusion removes one occurrence.
	addrs := []string{burn, holder, burn}

	caller := newFakeCaller("w", balances)
	builder := &fakeBuilder{caller: caller}
	s := NewScanner(&fakeResolver{meta: validMeta()}, builder, exclusions, DefaultRetryPolicy, nil)

	res, err := s.Scan(context.Background(), token, addrs)
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}
	if got := caller.callCount.Load(); got != 2 {
		t.Errorf("Expected 2 balance queries after exclusion, got %d", got)
	}
	if len(res.Records) != 2 {
		t.Errorf("Expected 2 records, got %d", len(res.Records))
	}

	// A different token over the same list is unaffected.
	caller.callCount.Store(0)
	if _, err := s.Scan(context.Background(), other, addrs); err != nil {
		t.Fatalf("Scan failed: %v", err)
	}
	if got := caller.callCount.Load(); got != 3 {
		t.Errorf("Expected 3 balance queries for unexcluded token, got %d", got)
	}
}

func TestScan_ResultFields(t *testing.T) {
	addrs, balances := addressList(5)
	caller := newFakeCaller("w", balances)
	builder := &fakeBuilder{caller: caller}

	meta := domain.TokenMetadata{
		Ticker:   "TST",
		Decimals: 6,
		PriceUSD: new(big.Rat).SetFrac64(1, 4),
		Valid:    true,
	}
	s := NewScanner(&fakeResolver{meta: meta}, builder, nil, DefaultRetryPolicy, nil)

	res, err := s.Scan(context.Background(), "0xCCCCCCCCCCCCCCCCCCCCCCCCCCCCCCCCCCCCCCCC", addrs)
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}

	if res.Token != "0xcccccccccccccccccccccccccccccccccccccccc" {
		t.Errorf("Token not normalized: %s", res.Token)
	}
	if !res.Valid || res.Ticker != "TST" || res.Decimals != 6 {
		t.Errorf("Metadata not propagated: %+v", res)
	}
	if len(res.Records) != len(addrs) {
		t.Fatalf("Expected %d records, got %d", len(addrs), len(res.Records))
	}
	for i := 1; i < len(res.Records); i++ {
		if res.Records[i-1].Raw.Cmp(res.Records[i].Raw) < 0 {
			t.Errorf("Records not sorted descending at index %d", i)
		}
	}
}
