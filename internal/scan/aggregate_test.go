package scan

import (
	"math/big"
	"testing"

	"github.com/tdngo/holdscan/internal/core/domain"
)

func ratInt(n int64) *big.Rat { return new(big.Rat).SetInt64(n) }

func TestAggregate_FiltersAndSorts(t *testing.T) {
	addrs := []string{"0xa", "0xb", "0xc", "0xd"}
	raws := []*big.Int{big.NewInt(5), big.NewInt(0), big.NewInt(100), big.NewInt(3)}
	meta := domain.TokenMetadata{Ticker: "TST", Decimals: 0, PriceUSD: ratInt(1), Valid: true}

	records := Aggregate(addrs, raws, meta)

	wantAmounts := []int64{100, 5, 3}
	wantAddrs := []string{"0xc", "0xa", "0xd"}
	if len(records) != len(wantAmounts) {
		t.Fatalf("Expected %d records, got %d", len(wantAmounts), len(records))
	}
	for i, rec := range records {
		if rec.Raw.Int64() != wantAmounts[i] {
			t.Errorf("records[%d].Raw = %v, want %d", i, rec.Raw, wantAmounts[i])
		}
		if rec.Address != wantAddrs[i] {
			t.Errorf("records[%d].Address = %s, want %s", i, rec.Address, wantAddrs[i])
		}
		if rec.USD.Cmp(rec.Units) != 0 {
			t.Errorf("records[%d]: USD %v != Units %v at price 1", i, rec.USD, rec.Units)
		}
	}
}

func TestAggregate_SkipsNilAndNegative(t *testing.T) {
	addrs := []string{"0xa", "0xb", "0xc"}
	raws := []*big.Int{nil, big.NewInt(-7), big.NewInt(1)}
	meta := domain.TokenMetadata{Decimals: 0, Valid: true}

	records := Aggregate(addrs, raws, meta)
	if len(records) != 1 || records[0].Address != "0xc" {
		t.Fatalf("Expected only 0xc to survive, got %+v", records)
	}
}

func TestAggregate_StableTies(t *testing.T) {
	addrs := []string{"0xa", "0xb", "0xc"}
	raws := []*big.Int{big.NewInt(5), big.NewInt(9), big.NewInt(5)}
	meta := domain.TokenMetadata{Decimals: 0, Valid: true}

	records := Aggregate(addrs, raws, meta)
	wantAddrs := []string{"0xb", "0xa", "0xc"}
	for i, rec := range records {
		if rec.Address != wantAddrs[i] {
			t.Errorf("records[%d].Address = %s, want %s", i, rec.Address, wantAddrs[i])
		}
	}
}

func TestAggregate_ScalesByDecimals(t *testing.T) {
	raw, _ := new(big.Int).SetString("1500000000000000000", 10) // 1.5 at 18 decimals
	meta := domain.TokenMetadata{Decimals: 18, PriceUSD: ratInt(2), Valid: true}

	records := Aggregate([]string{"0xa"}, []*big.Int{raw}, meta)
	if len(records) != 1 {
		t.Fatalf("Expected 1 record, got %d", len(records))
	}

	wantUnits := new(big.Rat).SetFrac64(3, 2)
	if records[0].Units.Cmp(wantUnits) != 0 {
		t.Errorf("Units = %v, want %v", records[0].Units, wantUnits)
	}
	if records[0].USD.Cmp(ratInt(3)) != 0 {
		t.Errorf("USD = %v, want 3", records[0].USD)
	}
}

func TestAggregate_UnknownPriceValuesZero(t *testing.T) {
	meta := domain.TokenMetadata{Decimals: 0, PriceUSD: nil, Valid: true}
	records := Aggregate([]string{"0xa"}, []*big.Int{big.NewInt(42)}, meta)
	if len(records) != 1 {
		t.Fatalf("Expected 1 record, got %d", len(records))
	}
	if records[0].USD.Sign() != 0 {
		t.Errorf("USD = %v, want 0", records[0].USD)
	}
}
