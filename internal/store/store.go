// Package store holds the single authoritative copy of the transaction view
// state: the fetched list plus the UI-derived parameters (query, sort,
// loading flag, error message).
package store

import (
	"sync"

	"github.com/flipside-id/flipside/internal/model"
	"github.com/flipside-id/flipside/internal/viewmodel"
)

// Snapshot is a point-in-time read of the store. The transaction slice is a
// copy, so holders can never observe later mutations.
type Snapshot struct {
	Err          string
	Query        string
	Transactions []model.Transaction
	Sort         viewmodel.SortOption
	Loading      bool
}

// HasError reports whether the last load attempt failed.
func (s Snapshot) HasError() bool {
	return s.Err != ""
}

// Store is safe for concurrent use. Load results are applied under a token
// issued by BeginLoad: only the most recently issued token may settle the
// store, so a slow response from a superseded fetch can never clobber a
// newer one.
type Store struct {
	index        map[string]model.Transaction
	err          string
	query        string
	transactions []model.Transaction
	attempt      uint64
	sort         viewmodel.SortOption
	loading      bool
	mu           sync.RWMutex
}

// New creates an empty store: no transactions, not loading, no error, empty
// query, no sort applied.
func New() *Store {
	return &Store{
		index: make(map[string]model.Transaction),
	}
}

// BeginLoad marks the store as loading and returns the token the eventual
// LoadSucceeded or LoadFailed call must present. A stale error from a prior
// attempt is cleared here so it cannot outlive the retry that follows it.
func (s *Store) BeginLoad() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.attempt++
	s.loading = true
	s.err = ""
	return s.attempt
}

// LoadSucceeded replaces the transaction list wholesale with the collection
// in arrival order and clears the loading flag. It reports whether the
// result was applied; a stale token leaves the store untouched.
func (s *Store) LoadSucceeded(token uint64, collection model.Collection) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if token != s.attempt {
		return false
	}
	s.transactions = collection.Transactions()
	s.index = make(map[string]model.Transaction, len(s.transactions))
	for _, txn := range s.transactions {
		s.index[txn.ID] = txn
	}
	s.loading = false
	return true
}

// LoadFailed records the failure message and clears the loading flag. The
// previous transaction list is kept; the view decides what to show. Stale
// tokens are discarded.
func (s *Store) LoadFailed(token uint64, message string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if token != s.attempt {
		return false
	}
	s.err = message
	s.loading = false
	return true
}

// SetQuery replaces the search query. Any string is accepted.
func (s *Store) SetQuery(query string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.query = query
}

// SetSortOption replaces the sort option.
func (s *Store) SetSortOption(opt viewmodel.SortOption) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sort = opt
}

// Snapshot returns a consistent read of all view state fields.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	txns := make([]model.Transaction, len(s.transactions))
	copy(txns, s.transactions)
	return Snapshot{
		Transactions: txns,
		Loading:      s.loading,
		Err:          s.err,
		Query:        s.query,
		Sort:         s.sort,
	}
}

// FindByID looks up a transaction from the current snapshot by ID.
func (s *Store) FindByID(id string) (model.Transaction, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	txn, ok := s.index[id]
	return txn, ok
}
