package ledger

import (
	"database/sql"
	"fmt"

	"gains/internal/db/models/postgres/public/model"
	db "gains/internal/db/query"
)

type TransactionStore interface {
	AddTransactions(tx *sql.Tx, transactions []*model.Transaction) ([]model.Transaction, error)
}

type transactionStore struct{}

func NewTransactionStore() TransactionStore {
	return transactionStore{}
}

func (transactionStore) AddTransactions(tx *sql.Tx, transactions []*model.Transaction) ([]model.Transaction, error) {
	return db.AddTransactions(tx, transactions)
}

// IngestTransactionFile parses a ledger CSV and upserts its rows into the
// transaction table.
func IngestTransactionFile(tx *sql.Tx, csvFileName string, store TransactionStore) ([]model.Transaction, error) {
	parsed, err := ParseTransactionFile(csvFileName)
	if err != nil {
		return nil, err
	}
	if len(parsed) == 0 {
		return []model.Transaction{}, nil
	}

	rows := make([]*model.Transaction, len(parsed))
	for i, txn := range parsed {
		row := db.TransactionToDb(txn)
		rows[i] = &row
	}

	inserted, err := store.AddTransactions(tx, rows)
	if err != nil {
		return nil, fmt.Errorf("failed to store transactions from %s: %w", csvFileName, err)
	}

	return inserted, nil
}
