package gains_errors

import (
	"fmt"

	"github.com/shopspring/decimal"
)

type ErrInsufficientInventory struct {
	Requested decimal.Decimal
	Available decimal.Decimal
}

func (e ErrInsufficientInventory) Error() string {
	return fmt.Sprintf(
		"insufficient inventory: requested %s units but only %s held (short %s)",
		e.Requested.String(),
		e.Available.String(),
		e.Shortfall().String(),
	)
}

// Shortfall is the quantity the pool is missing to cover the request.
func (e ErrInsufficientInventory) Shortfall() decimal.Decimal {
	return e.Requested.Sub(e.Available)
}

type ErrInvalidArgument struct {
	Message string
}

func (e ErrInvalidArgument) Error() string {
	return "invalid argument: " + e.Message
}
