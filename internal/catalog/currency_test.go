package catalog

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToBaseUnitsLadder(t *testing.T) {
	cases := []struct {
		amount string
		unit   Denomination
		copper int64
	}{
		{"1", Platinum, 1000},
		{"1", Gold, 100},
		{"1", Electrum, 50},
		{"1", Silver, 10},
		{"1", Copper, 1},
		{"0.5", Gold, 50},
		{"2.5", Silver, 25},
		{"0", Gold, 0},
		{"15", Gold, 1500},
	}

	for _, tc := range cases {
		amount := decimal.RequireFromString(tc.amount)
		base, err := ToBaseUnits(amount, tc.unit)
		require.NoError(t, err, "%s %s", tc.amount, tc.unit)
		assert.Equal(t, tc.copper, base, "%s %s", tc.amount, tc.unit)
	}
}

func TestToBaseUnitsRejectsUnknownDenomination(t *testing.T) {
	_, err := ToBaseUnits(decimal.NewFromInt(1), Denomination("zp"))
	assert.ErrorIs(t, err, ErrInvalidDenomination)
}

func TestToBaseUnitsRejectsFractionalCopper(t *testing.T) {
	_, err := ToBaseUnits(decimal.RequireFromString("0.001"), Gold)
	assert.ErrorIs(t, err, ErrFractionalBase)

	_, err = ToBaseUnits(decimal.RequireFromString("0.5"), Copper)
	assert.ErrorIs(t, err, ErrFractionalBase)
}

func TestRoundTripAllDenominations(t *testing.T) {
	amounts := []string{"1", "3", "10", "0.5", "2.5", "120", "0"}

	for _, d := range Denominations {
		for _, s := range amounts {
			amount := decimal.RequireFromString(s)
			base, err := ToBaseUnits(amount, d)
			if err != nil {
				// Fractional copper is rejected on the way in, nothing
				// to round-trip.
				continue
			}
			back, err := FromBaseUnits(base, d)
			require.NoError(t, err)
			assert.True(t, amount.Equal(back), "%s %s came back as %s", s, d, back)
		}
	}
}

func TestOrderingIsDenominationIndependent(t *testing.T) {
	// 2 cp in any expression stays below 15 gp in any expression.
	a, err := ToBaseUnits(decimal.RequireFromString("0.2"), Silver)
	require.NoError(t, err)
	b, err := ToBaseUnits(decimal.RequireFromString("1.5"), Platinum)
	require.NoError(t, err)
	assert.Less(t, a, b)

	a2, err := ToBaseUnits(decimal.NewFromInt(2), Copper)
	require.NoError(t, err)
	b2, err := ToBaseUnits(decimal.NewFromInt(15), Gold)
	require.NoError(t, err)
	assert.Equal(t, a, a2)
	assert.Equal(t, b, b2)
	assert.Less(t, a2, b2)
}

func TestBreakdown(t *testing.T) {
	cols := Breakdown(150)

	assert.True(t, cols[Platinum].Equal(decimal.RequireFromString("0.15")))
	assert.True(t, cols[Gold].Equal(decimal.RequireFromString("1.5")))
	assert.True(t, cols[Electrum].Equal(decimal.RequireFromString("3")))
	assert.True(t, cols[Silver].Equal(decimal.RequireFromString("15")))
	assert.True(t, cols[Copper].Equal(decimal.RequireFromString("150")))
}

func TestParseDenomination(t *testing.T) {
	d, err := ParseDenomination("gp")
	require.NoError(t, err)
	assert.Equal(t, Gold, d)

	_, err = ParseDenomination("gold")
	assert.ErrorIs(t, err, ErrInvalidDenomination)
}
