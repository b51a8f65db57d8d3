package db

import (
	"database/sql"
	"testing"
	"time"

	"gains/internal/db/models/postgres/public/model"
	"gains/internal/domain"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func testTx(t *testing.T) *sql.Tx {
	t.Helper()
	dbConn, err := NewTest()
	require.NoError(t, err)
	if err := dbConn.Ping(); err != nil {
		t.Skipf("test database unavailable: %v", err)
	}
	tx, err := dbConn.Begin()
	require.NoError(t, err)
	RollbackAfterTest(t, tx)
	return tx
}

func Test_AddTransactions(t *testing.T) {
	tx := testTx(t)

	existing, err := GetTransactions(tx)
	require.NoError(t, err)

	rows := []*model.Transaction{
		{
			Action:   model.ActionType_Acquire,
			Date:     time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC),
			Price:    decimal.NewFromInt(100),
			Quantity: decimal.NewFromInt(2),
		},
		{
			Action:   model.ActionType_Dispose,
			Date:     time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC),
			Price:    decimal.NewFromInt(150),
			Quantity: decimal.NewFromInt(1),
		},
	}

	inserted, err := AddTransactions(tx, rows)
	require.NoError(t, err)
	require.Len(t, inserted, 2)
	require.NotZero(t, inserted[0].TransactionID)

	// re-ingesting the same ledger rows must not duplicate them
	_, err = AddTransactions(tx, rows)
	require.NoError(t, err)

	all, err := GetTransactions(tx)
	require.NoError(t, err)
	require.Len(t, all, len(existing)+2)
}

func Test_GetTransactions_ordering(t *testing.T) {
	tx := testTx(t)

	rows := []*model.Transaction{
		{
			Action:   model.ActionType_Dispose,
			Date:     time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
			Price:    decimal.NewFromInt(150),
			Quantity: decimal.NewFromInt(1),
		},
		{
			Action:   model.ActionType_Acquire,
			Date:     time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			Price:    decimal.NewFromInt(100),
			Quantity: decimal.NewFromInt(2),
		},
	}
	_, err := AddTransactions(tx, rows)
	require.NoError(t, err)

	all, err := GetTransactions(tx)
	require.NoError(t, err)

	var previous *domain.Transaction
	for i := range all {
		if previous != nil {
			require.False(t, all[i].Date.Before(previous.Date))
		}
		previous = &all[i]
	}
}

func Test_AddRealizedGains(t *testing.T) {
	tx := testTx(t)

	transactions, err := AddTransactions(tx, []*model.Transaction{
		{
			Action:   model.ActionType_Dispose,
			Date:     time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC),
			Price:    decimal.NewFromInt(150),
			Quantity: decimal.NewFromInt(1),
		},
	})
	require.NoError(t, err)
	require.Len(t, transactions, 1)

	gain := RealizedGainToDb(&transactions[0].TransactionID, domain.ClosedLot{
		AcquiredDay: 10,
		UnitCost:    decimal.NewFromInt(100),
		Quantity:    decimal.NewFromInt(1),
		PerUnitGain: decimal.NewFromInt(25),
		Gain:        decimal.NewFromInt(25),
		LongTerm:    true,
	})

	inserted, err := AddRealizedGains(tx, []*model.RealizedGain{&gain})
	require.NoError(t, err)
	require.Len(t, inserted, 1)
	require.NotZero(t, inserted[0].RealizedGainID)
	require.True(t, inserted[0].LongTerm)
	require.True(t, decimal.NewFromInt(25).Equal(inserted[0].Gain))

	all, err := GetRealizedGains(tx)
	require.NoError(t, err)
	require.NotEmpty(t, all)
}

func Test_ReplaceRealizedGains_rerun(t *testing.T) {
	tx := testTx(t)

	transactions, err := AddTransactions(tx, []*model.Transaction{
		{
			Action:   model.ActionType_Dispose,
			Date:     time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC),
			Price:    decimal.NewFromInt(150),
			Quantity: decimal.NewFromInt(2),
		},
	})
	require.NoError(t, err)
	require.Len(t, transactions, 1)

	rows := []*model.RealizedGain{}
	for _, day := range []int{10, 20} {
		gain := RealizedGainToDb(&transactions[0].TransactionID, domain.ClosedLot{
			AcquiredDay: day,
			UnitCost:    decimal.NewFromInt(100),
			Quantity:    decimal.NewFromInt(1),
			PerUnitGain: decimal.NewFromInt(50),
			Gain:        decimal.NewFromInt(50),
		})
		rows = append(rows, &gain)
	}

	_, err = ReplaceRealizedGains(tx, rows)
	require.NoError(t, err)

	// storing the same replay again must not double-count the gains
	_, err = ReplaceRealizedGains(tx, rows)
	require.NoError(t, err)

	all, err := GetRealizedGains(tx)
	require.NoError(t, err)
	require.Len(t, all, 2)
}

func Test_AddRealizedGains_empty(t *testing.T) {
	inserted, err := AddRealizedGains(nil, nil)
	require.NoError(t, err)
	require.Empty(t, inserted)
}
