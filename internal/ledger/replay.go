package ledger

import (
	"fmt"
	"sort"
	"time"

	"gains/internal/domain"
	"gains/internal/pool"
)

// replay historic transactions into a lot pool. pool state is never
// persisted; it is always rebuilt from the ledger.

// RealizedGain links one consumed lot back to the disposal that closed it.
type RealizedGain struct {
	DisposeTransactionID *int32
	ClosedLot            domain.ClosedLot
}

type ReplayResult struct {
	Pool          *pool.Pool
	Epoch         time.Time
	RealizedGains []RealizedGain
}

// DayOffset converts a calendar date to the integer day offset the pool
// works in, relative to the ledger epoch.
func DayOffset(t, epoch time.Time) int {
	return int(t.Sub(epoch) / (24 * time.Hour))
}

func sortTransactions(transactions []domain.Transaction) []domain.Transaction {
	sorted := make([]domain.Transaction, len(transactions))
	copy(sorted, transactions)
	sort.SliceStable(sorted, func(i, j int) bool {
		if !sorted[i].Date.Equal(sorted[j].Date) {
			return sorted[i].Date.Before(sorted[j].Date)
		}
		// same-day acquisitions settle before disposals
		return sorted[i].Type == domain.TransactionTypeAcquire &&
			sorted[j].Type == domain.TransactionTypeDispose
	})
	return sorted
}

// Replay feeds the ledger through a fresh pool in chronological order.
// The epoch is the earliest transaction date; all day offsets are relative
// to it.
func Replay(transactions []domain.Transaction) (*ReplayResult, error) {
	result := &ReplayResult{
		Pool:          pool.New(),
		RealizedGains: []RealizedGain{},
	}
	if len(transactions) == 0 {
		return result, nil
	}

	sorted := sortTransactions(transactions)
	result.Epoch = sorted[0].Date

	for _, txn := range sorted {
		day := DayOffset(txn.Date, result.Epoch)

		switch txn.Type {
		case domain.TransactionTypeAcquire:
			if _, err := result.Pool.Acquire(day, txn.Price, txn.Quantity); err != nil {
				return nil, fmt.Errorf("failed to replay acquisition on %s: %w", dateStr(txn.Date), err)
			}
		case domain.TransactionTypeDispose:
			disposal, err := result.Pool.Dispose(day, txn.Price, txn.Quantity)
			if err != nil {
				return nil, fmt.Errorf("failed to replay disposal on %s: %w", dateStr(txn.Date), err)
			}
			for _, closed := range disposal.ClosedLots {
				result.RealizedGains = append(result.RealizedGains, RealizedGain{
					DisposeTransactionID: txn.TransactionID,
					ClosedLot:            closed,
				})
			}
		default:
			return nil, fmt.Errorf("unknown transaction type '%s'", txn.Type)
		}
	}

	return result, nil
}

func dateStr(t time.Time) string {
	return t.Format("2006-01-02")
}
