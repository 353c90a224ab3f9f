package domain

import (
	"math/big"
)

// DefaultDecimals is assumed when a contract does not report a usable
// decimals value.
const DefaultDecimals = 18

// TokenMetadata describes a token contract as seen by the metadata
// resolver. Valid=false means symbol/decimals could not be established
// and the token must not be scanned.
type TokenMetadata struct {
	Ticker   string
	Decimals uint8
	PriceUSD *big.Rat
	Valid    bool
}

// Price returns the token's USD unit price, zero when unknown.
func (m TokenMetadata) Price() *big.Rat {
	if m.PriceUSD == nil {
		return new(big.Rat)
	}
	return m.PriceUSD
}

// DecimalScale returns 10^decimals as a big integer.
func DecimalScale(decimals uint8) *big.Int {
	return new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(decimals)), nil)
}
