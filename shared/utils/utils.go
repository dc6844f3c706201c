package utils

import (
	"fmt"
	"strconv"

	"github.com/eaglebank/transactions/shared/models"
)

// SumAmounts adds up the amounts of txs in order. The sum of no transactions is 0.
func SumAmounts(txs []models.Transaction) float64 {
	var sum float64
	for _, tx := range txs {
		sum += tx.Amount
	}
	return sum
}

// ParseTransactionID parses a base-10, signed 64-bit transaction ID.
func ParseTransactionID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid transaction id %q", raw)
	}
	return id, nil
}
