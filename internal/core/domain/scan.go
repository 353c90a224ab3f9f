package domain

import (
	"math/big"
)

// BalanceRecord is one positive holding found during a scan.
// Raw is the exact on-chain integer balance; Units is Raw scaled by
// 10^decimals; USD is Units multiplied by the token's unit price.
type BalanceRecord struct {
	Address string
	Raw     *big.Int
	Units   *big.Rat
	USD     *big.Rat
}

// ScanResult is the complete output of scanning one token contract
// across an address list. Valid=false means the token contract could
// not be resolved; Records is then empty and PriceUSD is zero.
type ScanResult struct {
	Token    string
	Ticker   string
	Decimals uint8
	PriceUSD *big.Rat
	Valid    bool
	Records  []BalanceRecord
}

// RawTotal returns the exact integer sum of raw balances across all
// records. Summing raw amounts and scaling once avoids compounding the
// rounding applied to individual display values.
func (r *ScanResult) RawTotal() *big.Int {
	total := new(big.Int)
	for _, rec := range r.Records {
		total.Add(total, rec.Raw)
	}
	return total
}
