package ledger

import (
	"fmt"
	"os"
	"strings"
	"time"

	"encoding/csv"

	"gains/internal/domain"

	"github.com/shopspring/decimal"
)

func determineColumnOrder(headerRow []string) (map[string]int, error) {
	requiredColumns := []string{
		"date",
		"action",
		"price",
		"quantity",
	}

	columnIndices := map[string]int{}
	for i, h := range headerRow {
		h = strings.ToLower(h)
		h = strings.ReplaceAll(h, " ", "_")
		for _, rc := range requiredColumns {
			if h == rc {
				columnIndices[h] = i
			}
		}
	}

	for _, rc := range requiredColumns {
		if _, ok := columnIndices[rc]; !ok {
			return nil, fmt.Errorf("missing required column '%s'", rc)
		}
	}

	return columnIndices, nil
}

func numberStrToDecimal(s string) (decimal.Decimal, error) {
	s = strings.ReplaceAll(s, "$", "")
	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimSpace(s)
	return decimal.NewFromString(s)
}

func parseAction(s string) (domain.TransactionType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "acquire", "buy":
		return domain.TransactionTypeAcquire, nil
	case "dispose", "sell":
		return domain.TransactionTypeDispose, nil
	}
	return "", fmt.Errorf("unknown action '%s'", s)
}

// ParseTransactionFile reads a transaction ledger CSV. Column order is
// taken from the header row; date, action, price and quantity are required.
func ParseTransactionFile(csvFileName string) ([]domain.Transaction, error) {
	f, err := os.Open(csvFileName)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	csvFile := csv.NewReader(f)
	records, err := csvFile.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read csv file: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("csv file %s has no header row", csvFileName)
	}

	ordering, err := determineColumnOrder(records[0])
	if err != nil {
		return nil, err
	}

	transactions := []domain.Transaction{}
	for i, record := range records[1:] {
		txnType, err := parseAction(record[ordering["action"]])
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}

		date, err := time.Parse("2006-01-02", record[ordering["date"]])
		if err != nil {
			return nil, fmt.Errorf("row %d: failed to parse date: %w", i+2, err)
		}

		price, err := numberStrToDecimal(record[ordering["price"]])
		if err != nil {
			return nil, fmt.Errorf("row %d: failed to parse price: %w", i+2, err)
		}

		quantity, err := numberStrToDecimal(record[ordering["quantity"]])
		if err != nil {
			return nil, fmt.Errorf("row %d: failed to parse quantity: %w", i+2, err)
		}

		transactions = append(transactions, domain.Transaction{
			Type:     txnType,
			Date:     date,
			Price:    price,
			Quantity: quantity,
		})
	}

	return transactions, nil
}
