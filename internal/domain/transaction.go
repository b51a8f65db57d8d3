package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type TransactionType string

const (
	TransactionTypeAcquire TransactionType = "ACQUIRE"
	TransactionTypeDispose TransactionType = "DISPOSE"
)

// Transaction is a single ledger entry. Dates are calendar dates here;
// the replay layer converts them to day offsets before the pool sees them.
type Transaction struct {
	TransactionID *int32
	Type          TransactionType
	Date          time.Time
	Price         decimal.Decimal
	Quantity      decimal.Decimal
}

func (t Transaction) GetDate() time.Time { return t.Date }

func (t Transaction) Ptr() *Transaction { return &t }
