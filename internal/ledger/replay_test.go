package ledger

import (
	"errors"
	gains_errors "gains/internal"
	"gains/internal/domain"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func Test_DayOffset(t *testing.T) {
	epoch := date("2020-01-01")
	require.Equal(t, 0, DayOffset(date("2020-01-01"), epoch))
	require.Equal(t, 10, DayOffset(date("2020-01-11"), epoch))
	require.Equal(t, 400, DayOffset(date("2021-02-04"), epoch))
	require.Equal(t, 401, DayOffset(date("2021-02-05"), epoch))
}

func Test_Replay(t *testing.T) {
	t.Run("reference ledger", func(t *testing.T) {
		transactions, err := ParseTransactionFile("testdata/transactions.csv")
		require.NoError(t, err)

		result, err := Replay(transactions)
		require.NoError(t, err)

		require.Equal(t, date("2020-01-01"), result.Epoch)
		require.True(t, dec(2750).Equal(result.Pool.CumulativeTaxableGain()),
			result.Pool.CumulativeTaxableGain().String())
		require.True(t, dec(1.5).Equal(result.Pool.TotalQuantity()))
		require.Len(t, result.RealizedGains, 3)

		totalConsumed := decimal.Zero
		for _, gain := range result.RealizedGains {
			totalConsumed = totalConsumed.Add(gain.ClosedLot.Quantity)
		}
		require.True(t, dec(2.5).Equal(totalConsumed))
	})

	t.Run("unsorted input is replayed chronologically", func(t *testing.T) {
		transactions := []domain.Transaction{
			{Type: domain.TransactionTypeDispose, Date: date("2023-02-01"), Price: dec(20), Quantity: dec(1)},
			{Type: domain.TransactionTypeAcquire, Date: date("2023-01-01"), Price: dec(10), Quantity: dec(1)},
		}

		result, err := Replay(transactions)
		require.NoError(t, err)
		require.True(t, dec(10).Equal(result.Pool.CumulativeTaxableGain()))
		require.True(t, result.Pool.TotalQuantity().IsZero())
	})

	t.Run("same-day acquisition settles before disposal", func(t *testing.T) {
		transactions := []domain.Transaction{
			{Type: domain.TransactionTypeDispose, Date: date("2023-01-01"), Price: dec(12), Quantity: dec(1)},
			{Type: domain.TransactionTypeAcquire, Date: date("2023-01-01"), Price: dec(10), Quantity: dec(1)},
		}

		result, err := Replay(transactions)
		require.NoError(t, err)
		require.True(t, dec(2).Equal(result.Pool.CumulativeTaxableGain()))
	})

	t.Run("disposal beyond inventory fails with ledger context", func(t *testing.T) {
		transactions := []domain.Transaction{
			{Type: domain.TransactionTypeAcquire, Date: date("2023-01-01"), Price: dec(10), Quantity: dec(1)},
			{Type: domain.TransactionTypeDispose, Date: date("2023-02-01"), Price: dec(20), Quantity: dec(5)},
		}

		_, err := Replay(transactions)
		require.Error(t, err)
		require.Contains(t, err.Error(), "2023-02-01")

		var inventoryErr gains_errors.ErrInsufficientInventory
		require.True(t, errors.As(err, &inventoryErr), err)
	})

	t.Run("empty ledger", func(t *testing.T) {
		result, err := Replay(nil)
		require.NoError(t, err)
		require.True(t, result.Pool.TotalQuantity().IsZero())
		require.Empty(t, result.RealizedGains)
	})

	t.Run("realized gains reference the disposing transaction", func(t *testing.T) {
		disposeID := int32(7)
		transactions := []domain.Transaction{
			{Type: domain.TransactionTypeAcquire, Date: date("2023-01-01"), Price: dec(10), Quantity: dec(2)},
			{TransactionID: &disposeID, Type: domain.TransactionTypeDispose, Date: date("2023-02-01"), Price: dec(15), Quantity: dec(1)},
		}

		result, err := Replay(transactions)
		require.NoError(t, err)
		require.Len(t, result.RealizedGains, 1)
		require.NotNil(t, result.RealizedGains[0].DisposeTransactionID)
		require.Equal(t, int32(7), *result.RealizedGains[0].DisposeTransactionID)
		require.True(t, dec(5).Equal(result.RealizedGains[0].ClosedLot.Gain))
	})
}
