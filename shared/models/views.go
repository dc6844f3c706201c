package models

// TransactionView is the projection returned after a create, pairing the
// caller-chosen ID with the stored record.
type TransactionView struct {
	ID       int64   `json:"id"`
	Amount   float64 `json:"amount"`
	Type     string  `json:"type"`
	ParentID int64   `json:"parent_id"`
}

// NewTransactionView builds the view for a stored transaction.
func NewTransactionView(id int64, t Transaction) *TransactionView {
	return &TransactionView{
		ID:       id,
		Amount:   t.Amount,
		Type:     t.Type,
		ParentID: t.ParentID,
	}
}
