package db

import (
	"database/sql"
	"fmt"
	"gains/internal/domain"
	"time"

	"gains/internal/db/models/postgres/public/model"
	"gains/internal/db/models/postgres/public/table"

	"github.com/go-jet/jet/v2/postgres"
)

func AddTransactions(tx *sql.Tx, transactions []*model.Transaction) ([]model.Transaction, error) {
	for _, txn := range transactions {
		txn.CreatedAt = time.Now().UTC()
	}

	t := table.Transaction
	stmt := t.INSERT(t.MutableColumns).
		MODELS(transactions).
		ON_CONFLICT(t.Action, t.Date, t.Price, t.Quantity).
		// self-assignment rather than DO_NOTHING so RETURNING still
		// yields the existing row's id on a conflict
		DO_UPDATE(
			postgres.SET(
				t.Action.SET(t.EXCLUDED.Action),
			),
		).
		RETURNING(t.AllColumns)

	result := []model.Transaction{}
	err := stmt.Query(tx, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to add transactions to db: %w", err)
	}

	return result, nil
}

func GetTransactions(tx *sql.Tx) ([]domain.Transaction, error) {
	t := table.Transaction
	query := t.SELECT(t.AllColumns).
		ORDER_BY(t.Date.ASC(), t.TransactionID.ASC())

	result := []model.Transaction{}
	err := query.Query(tx, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to get transactions from db: %w", err)
	}

	out := make([]domain.Transaction, len(result))
	for i, r := range result {
		out[i] = transactionFromDb(r)
	}
	return out, nil
}

func transactionFromDb(t model.Transaction) domain.Transaction {
	txnType := domain.TransactionTypeAcquire
	if t.Action == model.ActionType_Dispose {
		txnType = domain.TransactionTypeDispose
	}
	id := t.TransactionID
	return domain.Transaction{
		TransactionID: &id,
		Type:          txnType,
		Date:          t.Date,
		Price:         t.Price,
		Quantity:      t.Quantity,
	}
}

func TransactionToDb(t domain.Transaction) model.Transaction {
	action := model.ActionType_Acquire
	if t.Type == domain.TransactionTypeDispose {
		action = model.ActionType_Dispose
	}
	out := model.Transaction{
		Action:   action,
		Date:     t.Date,
		Price:    t.Price,
		Quantity: t.Quantity,
	}
	if t.TransactionID != nil {
		out.TransactionID = *t.TransactionID
	}
	return out
}
