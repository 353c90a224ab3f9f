package scan

import (
	"math/big"
	"sort"

	"github.com/tdngo/holdscan/internal/core/domain"
)

// Aggregate converts raw balances (index-aligned with addresses) into
// balance records: zero and missing balances are dropped, raw amounts
// are scaled by 10^decimals with exact arithmetic, USD values use the
// token's unit price (zero when unknown). Records are sorted by amount
// descending; ties keep their input order.
func Aggregate(addresses []string, raws []*big.Int, meta domain.TokenMetadata) []domain.BalanceRecord {
	scale := domain.DecimalScale(meta.Decimals)
	price := meta.Price()

	records := make([]domain.BalanceRecord, 0, len(raws))
	for i, raw := range raws {
		if raw == nil || raw.Sign() <= 0 {
			continue
		}
		units := new(big.Rat).SetFrac(raw, scale)
		records = append(records, domain.BalanceRecord{
			Address: addresses[i],
			Raw:     raw,
			Units:   units,
			USD:     new(big.Rat).Mul(units, price),
		})
	}

	// Same token, same scale: raw order and scaled order agree, and
	// comparing integers avoids rational normalization.
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Raw.Cmp(records[j].Raw) > 0
	})

	return records
}
