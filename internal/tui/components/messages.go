package components

import "github.com/flipside-id/flipside/internal/viewmodel"

// TransactionSelectedMsg is sent when a transaction is chosen from the list.
type TransactionSelectedMsg struct {
	ID string
}

// BackToListMsg requests to go back to the transaction list.
type BackToListMsg struct{}

// QueryChangedMsg carries a new search query.
type QueryChangedMsg struct {
	Query string
}

// SortChangedMsg carries a newly selected sort option.
type SortChangedMsg struct {
	Option viewmodel.SortOption
}

// RefreshRequestedMsg requests a new fetch of the transaction list.
type RefreshRequestedMsg struct{}
