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

// ReplaceRealizedGains rewrites the stored gains wholesale. A replay
// regenerates every disposal from the full ledger, so the previous rows
// are cleared first to keep repeated report runs from duplicating them.
func ReplaceRealizedGains(tx *sql.Tx, gains []*model.RealizedGain) ([]model.RealizedGain, error) {
	t := table.RealizedGain
	_, err := t.DELETE().WHERE(postgres.Bool(true)).Exec(tx)
	if err != nil {
		return nil, fmt.Errorf("failed to clear realized gains: %w", err)
	}

	return AddRealizedGains(tx, gains)
}

func AddRealizedGains(tx *sql.Tx, gains []*model.RealizedGain) ([]model.RealizedGain, error) {
	if len(gains) == 0 {
		return []model.RealizedGain{}, nil
	}
	for _, g := range gains {
		g.CreatedAt = time.Now().UTC()
	}

	t := table.RealizedGain
	stmt := t.INSERT(t.MutableColumns).
		MODELS(gains).
		RETURNING(t.AllColumns)

	result := []model.RealizedGain{}
	err := stmt.Query(tx, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to insert realized gains: %w", err)
	}

	return result, nil
}

func GetRealizedGains(tx *sql.Tx) ([]model.RealizedGain, error) {
	t := table.RealizedGain
	query := t.SELECT(t.AllColumns).
		ORDER_BY(t.RealizedGainID.ASC())

	result := []model.RealizedGain{}
	err := query.Query(tx, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to get realized gains from db: %w", err)
	}

	return result, nil
}

func RealizedGainToDb(disposeTransactionID *int32, lot domain.ClosedLot) model.RealizedGain {
	return model.RealizedGain{
		DisposeTransactionID: disposeTransactionID,
		LotAcquiredDay:       int32(lot.AcquiredDay),
		UnitCost:             lot.UnitCost,
		Quantity:             lot.Quantity,
		PerUnitGain:          lot.PerUnitGain,
		Gain:                 lot.Gain,
		LongTerm:             lot.LongTerm,
	}
}
