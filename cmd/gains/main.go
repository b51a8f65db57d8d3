package main

import (
	"fmt"
	"log"

	"gains/internal/db/models/postgres/public/model"
	db "gains/internal/db/query"
	"gains/internal/ledger"
)

func main() {
	dbConn, err := db.New()
	if err != nil {
		log.Fatal(err)
	}

	tx, err := dbConn.Begin()
	if err != nil {
		log.Fatal(err)
	}

	transactions, err := db.GetTransactions(tx)
	if err != nil {
		log.Fatal(err)
	}

	result, err := ledger.Replay(transactions)
	if err != nil {
		log.Fatal(err)
	}

	gainRows := make([]*model.RealizedGain, len(result.RealizedGains))
	for i, g := range result.RealizedGains {
		row := db.RealizedGainToDb(g.DisposeTransactionID, g.ClosedLot)
		gainRows[i] = &row
	}

	// a failed gains insert shouldn't take the replayed report down with it
	savepoint, err := db.AddSavepoint(tx)
	if err != nil {
		log.Fatal(err)
	}
	if _, err := db.ReplaceRealizedGains(tx, gainRows); err != nil {
		log.Printf("could not store realized gains: %v", db.RollbackWithError(tx, savepoint, err))
	}

	err = tx.Commit()
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("replayed %d transactions\n", len(transactions))
	fmt.Printf("cumulative taxable gain: %s\n", result.Pool.CumulativeTaxableGain().StringFixed(2))
	fmt.Printf("open lots (%s units):\n", result.Pool.TotalQuantity().String())
	for _, lot := range result.Pool.Lots() {
		fmt.Printf("  day %4d  unit cost %12s  quantity %s\n",
			lot.AcquiredDay, lot.UnitCost.StringFixed(2), lot.Quantity.String())
	}
}
