// Package store holds the authoritative in-memory collection of transactions.
//
// A single RWMutex guards the records and the indexes derived from them. Add
// holds the write lock across the existence check and the insert, so two adds
// racing on the same ID yield exactly one success. Readers share the read lock
// and always receive copies.
package store

import (
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/eaglebank/transactions/shared/models"
)

var (
	// ErrDuplicateKey is returned by Add when the ID is already taken.
	ErrDuplicateKey = errors.New("transaction already exists")
	// ErrNotFound is returned by Get when no transaction has the ID.
	ErrNotFound = errors.New("transaction not found")
)

// Store is safe for concurrent use. The zero value is not usable; call New.
type Store struct {
	mu       sync.RWMutex
	records  map[int64]models.Transaction
	byType   map[string][]int64
	byParent map[int64][]int64
}

func New() *Store {
	return &Store{
		records:  make(map[int64]models.Transaction),
		byType:   make(map[string][]int64),
		byParent: make(map[int64][]int64),
	}
}

// Add stores tx under id. It fails with ErrDuplicateKey, leaving the store
// untouched, if id is already present.
func (s *Store) Add(id int64, tx models.Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.records[id]; exists {
		return fmt.Errorf("add transaction %d: %w", id, ErrDuplicateKey)
	}

	s.records[id] = tx
	s.byType[tx.Type] = insertSorted(s.byType[tx.Type], id)
	s.byParent[tx.ParentID] = insertSorted(s.byParent[tx.ParentID], id)
	return nil
}

// Get returns a copy of the transaction stored under id.
func (s *Store) Get(id int64) (models.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tx, ok := s.records[id]
	if !ok {
		return models.Transaction{}, fmt.Errorf("get transaction %d: %w", id, ErrNotFound)
	}
	return tx, nil
}

// ListIDsByType returns, in ascending order, the IDs of every transaction whose
// type equals txType exactly. The result is never nil.
func (s *Store) ListIDsByType(txType string) []int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := s.byType[txType]
	out := make([]int64, len(ids))
	copy(out, ids)
	return out
}

// ListByParent returns, ordered by ID, the transactions whose parent_id equals
// parentID. Only direct children match. The result is never nil.
func (s *Store) ListByParent(parentID int64) []models.Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := s.byParent[parentID]
	out := make([]models.Transaction, 0, len(ids))
	for _, id := range ids {
		out = append(out, s.records[id])
	}
	return out
}

// Len reports the number of stored transactions.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

// insertSorted places id into the ascending slice ids. Callers guarantee id is
// not already present.
func insertSorted(ids []int64, id int64) []int64 {
	i, _ := slices.BinarySearch(ids, id)
	return slices.Insert(ids, i, id)
}
