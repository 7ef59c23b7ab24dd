package catalog

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Denomination is one of the five coin units a price can be expressed in.
type Denomination string

const (
	Platinum Denomination = "pp"
	Gold     Denomination = "gp"
	Electrum Denomination = "ep"
	Silver   Denomination = "sp"
	Copper   Denomination = "cp"
)

// Denominations lists the units in display order, largest first.
var Denominations = []Denomination{Platinum, Gold, Electrum, Silver, Copper}

// copperFactors is the fixed exchange ladder: copper pieces per unit.
// 1 pp = 10 gp, 1 gp = 2 ep = 10 sp = 100 cp.
var copperFactors = map[Denomination]int64{
	Platinum: 1000,
	Gold:     100,
	Electrum: 50,
	Silver:   10,
	Copper:   1,
}

var ErrInvalidDenomination = fmt.Errorf("invalid denomination")

// ErrFractionalBase reports an amount that does not convert to a whole
// number of copper pieces.
var ErrFractionalBase = fmt.Errorf("amount is not a whole number of copper pieces")

// ParseDenomination normalizes a denomination tag from source data.
func ParseDenomination(tag string) (Denomination, error) {
	d := Denomination(tag)
	if _, ok := copperFactors[d]; !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidDenomination, tag)
	}
	return d, nil
}

// ToBaseUnits converts an amount in the given denomination to integer
// copper pieces. Conversion must be lossless; amounts that land between
// copper pieces are rejected.
func ToBaseUnits(amount decimal.Decimal, d Denomination) (int64, error) {
	factor, ok := copperFactors[d]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrInvalidDenomination, d)
	}

	base := amount.Mul(decimal.NewFromInt(factor))
	if !base.IsInteger() {
		return 0, fmt.Errorf("%w: %s %s", ErrFractionalBase, amount, d)
	}
	return base.IntPart(), nil
}

// FromBaseUnits converts copper pieces back to a display amount in the
// given denomination. Every ladder factor yields a finite decimal, so the
// result is exact.
func FromBaseUnits(base int64, d Denomination) (decimal.Decimal, error) {
	factor, ok := copperFactors[d]
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalidDenomination, d)
	}
	return decimal.NewFromInt(base).Div(decimal.NewFromInt(factor)), nil
}

// Breakdown expresses a copper value in all five denominations at once,
// one entry per table column.
func Breakdown(base int64) map[Denomination]decimal.Decimal {
	out := make(map[Denomination]decimal.Decimal, len(Denominations))
	for _, d := range Denominations {
		v, _ := FromBaseUnits(base, d)
		out[d] = v
	}
	return out
}
