// Package report renders aggregated scan results into human-readable
// summaries.
package report

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/tdngo/holdscan/internal/core/domain"
)

const divider = "--------------------------------------------------------------------------------"

// Format renders res and returns the report text together with the
// total USD exposure. The header total is computed once from the exact
// integer sum of raw balances, so per-record display rounding never
// accumulates into it.
func Format(res *domain.ScanResult) (string, *big.Rat) {
	if !res.Valid {
		return fmt.Sprintf("Token %s => unknown token\n", res.Token), new(big.Rat)
	}

	price := res.PriceUSD
	if price == nil {
		price = new(big.Rat)
	}
	totalUnits := new(big.Rat).SetFrac(res.RawTotal(), domain.DecimalScale(res.Decimals))
	totalUSD := new(big.Rat).Mul(totalUnits, price)

	var b strings.Builder
	fmt.Fprintf(&b, "Token %s (%s): %s %s ( $%s )\n",
		res.Token,
		res.Ticker,
		FormatAmount(totalUnits, int(res.Decimals)),
		res.Ticker,
		FormatFixed(totalUSD, 2),
	)
	b.WriteString(divider + "\n")

	for _, rec := range res.Records {
		fmt.Fprintf(&b, "Contract %s => %s %s ( $%s )\n",
			rec.Address,
			FormatFixed(rec.Units, 2),
			res.Ticker,
			FormatFixed(rec.USD, 2),
		)
	}

	return b.String(), totalUSD
}

// FormatFixed renders r truncated to exactly places fractional digits,
// with a thousands-grouped integer part.
func FormatFixed(r *big.Rat, places int) string {
	intPart, frac := truncate(r, places)
	if places == 0 {
		return intPart
	}
	return intPart + "." + frac
}

// FormatAmount renders r truncated to at most places fractional
// digits, trimming trailing zeros but keeping at least two digits, so
// exact remainders stay visible without padding round amounts.
func FormatAmount(r *big.Rat, places int) string {
	if places < 2 {
		places = 2
	}
	intPart, frac := truncate(r, places)
	trimmed := strings.TrimRight(frac, "0")
	if len(trimmed) < 2 {
		trimmed = frac[:2]
	}
	return intPart + "." + trimmed
}

// truncate splits r into a grouped integer part and exactly places
// fractional digits, truncating toward zero.
func truncate(r *big.Rat, places int) (intPart, frac string) {
	pow := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(places)), nil)
	scaled := new(big.Int).Quo(new(big.Int).Mul(r.Num(), pow), r.Denom())

	neg := scaled.Sign() < 0
	digits := new(big.Int).Abs(scaled).String()
	if len(digits) <= places {
		digits = strings.Repeat("0", places-len(digits)+1) + digits
	}

	intPart = groupThousands(digits[:len(digits)-places])
	if neg {
		intPart = "-" + intPart
	}
	return intPart, digits[len(digits)-places:]
}

// groupThousands inserts comma separators into a digit string.
func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
