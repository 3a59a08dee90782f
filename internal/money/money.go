// Package money converts amounts held in minor units (cents) to the decimal
// figures used in messages and percentages. Calculations stay in int64
// cents; decimal is only used at the edges.
package money

import (
	"sort"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Decimal returns cents as a decimal currency value (1234 -> 12.34).
func Decimal(cents int64) decimal.Decimal {
	return decimal.New(cents, -2)
}

// Format renders cents with two decimal places and no currency symbol or
// locale grouping: 123456 -> "1234.56", -5 -> "-0.05".
func Format(cents int64) string {
	return Decimal(cents).StringFixed(2)
}

// Percent returns part/whole*100 rounded half-up to the given number of
// places. A zero whole yields zero.
func Percent(part, whole int64, places int32) decimal.Decimal {
	if whole == 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(part).Mul(hundred).
		DivRound(decimal.NewFromInt(whole), places+4).
		Round(places)
}

// Shares splits 100% across parts, one share per part with the given
// number of decimal places. Shares are floored and the leftover units go to
// the parts with the largest remainders (earlier parts win ties), so the
// shares of a positive total add up to exactly 100. Non-positive parts get
// a zero share.
func Shares(parts []int64, places int32) []decimal.Decimal {
	shares := make([]decimal.Decimal, len(parts))
	total := decimal.Zero
	for _, p := range parts {
		if p > 0 {
			total = total.Add(decimal.NewFromInt(p))
		}
	}
	if !total.IsPositive() {
		for i := range shares {
			shares[i] = decimal.Zero
		}
		return shares
	}

	// Work in units of 10^-places percent.
	scale := hundred.Shift(places)
	units := make([]decimal.Decimal, len(parts))
	remainders := make([]decimal.Decimal, len(parts))
	assigned := decimal.Zero
	for i, p := range parts {
		if p <= 0 {
			units[i], remainders[i] = decimal.Zero, decimal.Zero
			continue
		}
		units[i], remainders[i] = decimal.NewFromInt(p).Mul(scale).QuoRem(total, 0)
		assigned = assigned.Add(units[i])
	}

	order := make([]int, len(parts))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return remainders[order[a]].GreaterThan(remainders[order[b]])
	})
	leftover := scale.Sub(assigned).IntPart()
	for k := 0; k < len(order) && int64(k) < leftover; k++ {
		i := order[k]
		units[i] = units[i].Add(decimal.NewFromInt(1))
	}

	for i := range units {
		shares[i] = units[i].Shift(-places)
	}
	return shares
}

// ComparePercent compares amount with pct% of base and returns -1, 0 or +1.
// Products are taken in decimal so large totals cannot wrap.
func ComparePercent(amount, base, pct int64) int {
	return decimal.NewFromInt(amount).Mul(hundred).Cmp(decimal.NewFromInt(base).Mul(decimal.NewFromInt(pct)))
}

// ExceedsPercent reports whether amount > pct% of base.
func ExceedsPercent(amount, base, pct int64) bool {
	return ComparePercent(amount, base, pct) > 0
}

// CeilDiv divides two positive amounts rounding up.
func CeilDiv(a, b int64) int64 {
	if b <= 0 {
		return 0
	}
	return (a + b - 1) / b
}
