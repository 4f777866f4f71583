package tui

import "github.com/flipside-id/flipside/internal/model"

// transactionsLoadedMsg carries the outcome of one fetch attempt back onto
// the update loop, tagged with the load token it was issued under.
type transactionsLoadedMsg struct {
	err        error
	collection model.Collection
	token      uint64
}
