package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func dec(f float64) decimal.Decimal {
	return decimal.NewFromFloat(f)
}

func Test_PerUnitGain(t *testing.T) {
	lot := Lot{
		LotID:            uuid.New(),
		AcquiredDay:      0,
		UnitCost:         dec(100),
		Quantity:         dec(1),
		DiscountEligible: true,
	}

	t.Run("undiscounted gain is price minus cost", func(t *testing.T) {
		require.True(t, dec(50).Equal(lot.PerUnitGain(10, dec(150))))
	})

	t.Run("holding exactly 365 days does not qualify", func(t *testing.T) {
		require.True(t, dec(50).Equal(lot.PerUnitGain(365, dec(150))))
		require.False(t, lot.LongTermAt(365))
	})

	t.Run("holding 366 days halves the gain", func(t *testing.T) {
		require.True(t, dec(25).Equal(lot.PerUnitGain(366, dec(150))))
		require.True(t, lot.LongTermAt(366))
	})

	t.Run("losses are halved too", func(t *testing.T) {
		require.True(t, dec(-25).Equal(lot.PerUnitGain(400, dec(50))))
	})

	t.Run("ineligible lots never discount", func(t *testing.T) {
		ineligible := lot
		ineligible.DiscountEligible = false
		require.True(t, dec(50).Equal(ineligible.PerUnitGain(1000, dec(150))))
		require.False(t, ineligible.LongTermAt(1000))
	})

	t.Run("does not mutate the lot", func(t *testing.T) {
		before := lot
		first := lot.PerUnitGain(400, dec(150))
		second := lot.PerUnitGain(400, dec(150))
		require.True(t, first.Equal(second))
		require.Equal(t, before, lot)
	})
}
