package models

// NoParent is the parent_id carried by root transactions.
const NoParent int64 = 0

// Transaction is a financial transaction, optionally linked to a parent
// transaction by ID. The parent is never checked for existence.
type Transaction struct {
	Amount   float64 `json:"amount"`
	Type     string  `json:"type"`
	ParentID int64   `json:"parent_id"`
}
