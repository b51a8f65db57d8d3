package pool

import (
	"fmt"
	gains_errors "gains/internal"
	"gains/internal/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Pool owns every open lot of a single asset and the running total of
// taxable gain realized against it. Lots are never handed out for mutation;
// Acquire and Dispose are the only paths that change pool state.
//
// A Pool is not safe for concurrent use. Callers in concurrent settings
// must serialize Acquire/Dispose on each pool.
type Pool struct {
	lots                  []domain.Lot
	cumulativeTaxableGain decimal.Decimal
}

func New() *Pool {
	return &Pool{
		lots:                  []domain.Lot{},
		cumulativeTaxableGain: decimal.Zero,
	}
}

// Acquire appends a new lot to the pool. New lots are discount eligible.
func (p *Pool) Acquire(day int, price, quantity decimal.Decimal) (*domain.Lot, error) {
	if quantity.LessThanOrEqual(decimal.Zero) {
		return nil, gains_errors.ErrInvalidArgument{
			Message: fmt.Sprintf("acquire quantity must be higher than 0, received %s", quantity.String()),
		}
	}

	lot := domain.Lot{
		LotID:            uuid.New(),
		AcquiredDay:      day,
		UnitCost:         price,
		Quantity:         quantity,
		DiscountEligible: true,
	}
	p.lots = append(p.lots, lot)
	return &lot, nil
}

// DisposalResult describes a single successful disposal. TaxableGain is
// this disposal's total only; the pool-lifetime figure lives on the pool.
type DisposalResult struct {
	TaxableGain decimal.Decimal
	ClosedLots  []domain.ClosedLot
}

// Dispose consumes lots to cover the requested quantity, choosing at each
// step the lot with the strictly smallest per-unit gain at the disposal
// day/price (earliest insertion order wins ties). Lots larger than the
// outstanding quantity survive with their quantity decremented; smaller
// lots are consumed whole and removed.
//
// If the request exceeds the total pooled quantity, Dispose fails with
// ErrInsufficientInventory and the pool is left untouched.
func (p *Pool) Dispose(day int, price, quantity decimal.Decimal) (*DisposalResult, error) {
	if quantity.LessThanOrEqual(decimal.Zero) {
		return nil, gains_errors.ErrInvalidArgument{
			Message: fmt.Sprintf("dispose quantity must be higher than 0, received %s", quantity.String()),
		}
	}
	if available := p.TotalQuantity(); quantity.GreaterThan(available) {
		return nil, gains_errors.ErrInsufficientInventory{
			Requested: quantity,
			Available: available,
		}
	}

	remaining := quantity
	result := &DisposalResult{
		TaxableGain: decimal.Zero,
		ClosedLots:  []domain.ClosedLot{},
	}

	for remaining.GreaterThan(decimal.Zero) {
		// gains are fixed for the duration of the call, but the candidate
		// set shrinks as lots empty out, so re-scan every iteration
		i := p.smallestGainLot(day, price)
		lot := &p.lots[i]
		perUnit := lot.PerUnitGain(day, price)

		consumed := remaining
		if lot.Quantity.LessThan(remaining) {
			consumed = lot.Quantity
		}
		gain := perUnit.Mul(consumed)

		result.ClosedLots = append(result.ClosedLots, domain.ClosedLot{
			LotID:       lot.LotID,
			AcquiredDay: lot.AcquiredDay,
			UnitCost:    lot.UnitCost,
			Quantity:    consumed,
			PerUnitGain: perUnit,
			Gain:        gain,
			LongTerm:    lot.LongTermAt(day),
		})
		result.TaxableGain = result.TaxableGain.Add(gain)

		if lot.Quantity.GreaterThan(remaining) {
			lot.Quantity = lot.Quantity.Sub(consumed)
		} else {
			p.lots = append(p.lots[:i], p.lots[i+1:]...)
		}

		remaining = remaining.Sub(consumed)
	}

	p.cumulativeTaxableGain = p.cumulativeTaxableGain.Add(result.TaxableGain)
	return result, nil
}

// smallestGainLot scans all lots and returns the index of the one with the
// strictly smallest per-unit gain. Must not be called on an empty pool.
func (p *Pool) smallestGainLot(day int, price decimal.Decimal) int {
	minIndex := 0
	minGain := p.lots[0].PerUnitGain(day, price)
	for i := 1; i < len(p.lots); i++ {
		gain := p.lots[i].PerUnitGain(day, price)
		if gain.LessThan(minGain) {
			minIndex = i
			minGain = gain
		}
	}
	return minIndex
}

// Lots returns a copy of the open lots in insertion order.
func (p *Pool) Lots() []domain.Lot {
	out := make([]domain.Lot, len(p.lots))
	copy(out, p.lots)
	return out
}

// TotalQuantity is the total quantity currently held across all lots.
func (p *Pool) TotalQuantity() decimal.Decimal {
	total := decimal.Zero
	for _, lot := range p.lots {
		total = total.Add(lot.Quantity)
	}
	return total
}

// CumulativeTaxableGain is the taxable gain accumulated over every
// successful disposal in the pool's lifetime.
func (p *Pool) CumulativeTaxableGain() decimal.Decimal {
	return p.cumulativeTaxableGain
}
