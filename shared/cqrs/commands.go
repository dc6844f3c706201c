package cqrs

// AddTransactionCommand stores a transaction under a caller-chosen ID.
type AddTransactionCommand struct {
	ID       int64
	Amount   float64
	Type     string
	ParentID int64
}
