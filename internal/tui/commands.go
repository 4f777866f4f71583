package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// fetchTransactions begins a load attempt against the store and returns the
// command that performs the fetch. The token issued by BeginLoad travels
// with the result so a superseded fetch can be discarded on arrival.
func (m Model) fetchTransactions() tea.Cmd {
	token := m.store.BeginLoad()
	return func() tea.Msg {
		collection, err := m.fetcher.Fetch(m.ctx)
		return transactionsLoadedMsg{
			token:      token,
			collection: collection,
			err:        err,
		}
	}
}
