package query

import (
	"github.com/eaglebank/transactions/shared/cqrs"
	"github.com/eaglebank/transactions/shared/models"
	"github.com/eaglebank/transactions/shared/utils"
)

// TransactionReader is the read side of the transaction store.
type TransactionReader interface {
	Get(id int64) (models.Transaction, error)
	ListIDsByType(txType string) []int64
	ListByParent(parentID int64) []models.Transaction
}

// TransactionQueryService serves transaction reads.
type TransactionQueryService struct {
	store TransactionReader
}

func NewTransactionQueryService(store TransactionReader) *TransactionQueryService {
	return &TransactionQueryService{store: store}
}

func (s *TransactionQueryService) GetTransaction(q cqrs.GetTransactionQuery) (*models.Transaction, error) {
	tx, err := s.store.Get(q.TransactionID)
	if err != nil {
		return nil, err
	}
	return &tx, nil
}

// ListTransactionIDsByType returns matching IDs in ascending order.
func (s *TransactionQueryService) ListTransactionIDsByType(q cqrs.ListTransactionIDsByTypeQuery) []int64 {
	return s.store.ListIDsByType(q.Type)
}

// SumByParent sums the direct children of q.ParentID. Grandchildren are not
// followed.
func (s *TransactionQueryService) SumByParent(q cqrs.SumByParentQuery) float64 {
	return utils.SumAmounts(s.store.ListByParent(q.ParentID))
}
