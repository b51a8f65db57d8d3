package domain

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DiscountHoldingDays is the holding period a lot must exceed (strictly)
// before the long-term discount halves its taxable gain.
const DiscountHoldingDays = 365

var two = decimal.NewFromInt(2)

// Lot is a single acquisition of the asset. Quantity is the only mutable
// field; the pool decrements it as disposals consume the lot.
type Lot struct {
	LotID            uuid.UUID
	AcquiredDay      int
	UnitCost         decimal.Decimal
	Quantity         decimal.Decimal
	DiscountEligible bool
}

// PerUnitGain returns the taxable gain per unit if the lot were disposed
// on the given day at the given price. Eligible lots held strictly longer
// than DiscountHoldingDays have the gain halved. Does not mutate the lot.
func (l Lot) PerUnitGain(day int, price decimal.Decimal) decimal.Decimal {
	gain := price.Sub(l.UnitCost)
	if l.LongTermAt(day) {
		gain = gain.Div(two)
	}
	return gain
}

// LongTermAt reports whether a disposal on the given day would qualify for
// the long-term discount. Exactly DiscountHoldingDays does not qualify.
func (l Lot) LongTermAt(day int) bool {
	return l.DiscountEligible && day-l.AcquiredDay > DiscountHoldingDays
}

// ClosedLot records quantity consumed from a single lot by one disposal.
type ClosedLot struct {
	LotID       uuid.UUID
	AcquiredDay int
	UnitCost    decimal.Decimal
	Quantity    decimal.Decimal
	PerUnitGain decimal.Decimal
	Gain        decimal.Decimal
	LongTerm    bool
}
