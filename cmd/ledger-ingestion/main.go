package main

import (
	"flag"
	"log"

	db "gains/internal/db/query"
	"gains/internal/ledger"
)

func main() {
	csvPath := flag.String("file", "transactions.csv", "transaction ledger csv to ingest")
	flag.Parse()

	dbConn, err := db.New()
	if err != nil {
		log.Fatal(err)
	}

	tx, err := dbConn.Begin()
	if err != nil {
		log.Fatal(err)
	}

	inserted, err := ledger.IngestTransactionFile(tx, *csvPath, ledger.NewTransactionStore())
	if err != nil {
		log.Fatal(err)
	}

	err = tx.Commit()
	if err != nil {
		log.Fatal(err)
	}

	log.Printf("ingested %d transactions from %s", len(inserted), *csvPath)
}
