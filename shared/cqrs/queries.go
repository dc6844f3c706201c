package cqrs

// GetTransactionQuery fetches a single transaction.
type GetTransactionQuery struct {
	TransactionID int64
}

// ListTransactionIDsByTypeQuery fetches the IDs of all transactions with an exact type.
type ListTransactionIDsByTypeQuery struct {
	Type string
}

// SumByParentQuery sums the amounts of the direct children of ParentID.
// A ParentID of models.NoParent sums all root transactions.
type SumByParentQuery struct {
	ParentID int64
}
