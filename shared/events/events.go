package events

import "time"

// Event types
const (
	TransactionCreated = "transaction.created"
)

// Stream names
const (
	TransactionEventsStream = "transaction.events"
)

// Base event structure
type Event struct {
	Type      string    `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	Data      any       `json:"data"`
}

// Transaction events
type TransactionCreatedEvent struct {
	TransactionID int64   `json:"transactionId"`
	Amount        float64 `json:"amount"`
	Type          string  `json:"type"`
	ParentID      int64   `json:"parentId"`
}
