package tui

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/flipside-id/flipside/internal/model"
	"github.com/flipside-id/flipside/internal/store"
	"github.com/flipside-id/flipside/internal/tui/components"
	"github.com/flipside-id/flipside/internal/tui/themes"
	"github.com/flipside-id/flipside/internal/viewmodel"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubFetcher struct {
	collection model.Collection
	err        error
}

func (f stubFetcher) Fetch(_ context.Context) (model.Collection, error) {
	return f.collection, f.err
}

func collectionOf(t *testing.T, payload string) model.Collection {
	t.Helper()
	var c model.Collection
	require.NoError(t, json.Unmarshal([]byte(payload), &c))
	return c
}

const threeTxns = `{
	"FT1": {"id": "FT1", "beneficiary_name": "Citra", "sender_bank": "bni", "beneficiary_bank": "bri", "status": "SUCCESS", "created_at": "2024-11-20 10:00:00"},
	"FT2": {"id": "FT2", "beneficiary_name": "Budi", "sender_bank": "bca", "beneficiary_bank": "mandiri", "status": "PENDING", "created_at": "2024-11-21 10:00:00"},
	"FT3": {"id": "FT3", "beneficiary_name": "Agus", "sender_bank": "mandiri", "beneficiary_bank": "bni", "status": "SUCCESS", "created_at": "2024-11-22 10:00:00"}
}`

func newTestModel(t *testing.T, fetcher Fetcher) Model {
	t.Helper()
	return newModel(context.Background(), Config{
		Fetcher: fetcher,
		Store:   store.New(),
		Theme:   themes.Default,
	})
}

// runFetch executes the fetch command synchronously and feeds its result
// back through Update, the way the Bubble Tea runtime would.
func runFetch(t *testing.T, m Model) Model {
	t.Helper()
	cmd := m.fetchTransactions()
	require.NotNil(t, cmd)
	updated, _ := m.Update(cmd())
	next, ok := updated.(Model)
	require.True(t, ok)
	return next
}

func TestModel_SuccessfulFetchPopulatesStore(t *testing.T) {
	fetcher := stubFetcher{collection: collectionOf(t, threeTxns)}
	m := newTestModel(t, fetcher)

	m = runFetch(t, m)

	snap := m.store.Snapshot()
	assert.False(t, snap.Loading)
	assert.False(t, snap.HasError())
	require.Len(t, snap.Transactions, 3)
	assert.Equal(t, "FT1", snap.Transactions[0].ID)
}

func TestModel_FailedFetchRecordsError(t *testing.T) {
	fetcher := stubFetcher{err: errors.New("Failed to fetch data")}
	m := newTestModel(t, fetcher)

	m = runFetch(t, m)

	snap := m.store.Snapshot()
	assert.False(t, snap.Loading)
	assert.Equal(t, "Failed to fetch data", snap.Err)
	assert.Empty(t, snap.Transactions)

	view := m.View()
	assert.Contains(t, view, "Failed to fetch data")
}

func TestModel_StaleFetchResultDiscarded(t *testing.T) {
	m := newTestModel(t, stubFetcher{collection: collectionOf(t, threeTxns)})

	firstToken := m.store.BeginLoad()
	secondToken := m.store.BeginLoad()

	// Newest attempt settles with three transactions.
	updated, _ := m.Update(transactionsLoadedMsg{
		token:      secondToken,
		collection: collectionOf(t, threeTxns),
	})
	m = updated.(Model)

	// The superseded attempt arrives late with stale data and is dropped.
	updated, _ = m.Update(transactionsLoadedMsg{
		token:      firstToken,
		collection: collectionOf(t, `{"FTX": {"id": "FTX"}}`),
	})
	m = updated.(Model)

	assert.Len(t, m.store.Snapshot().Transactions, 3)
}

func TestModel_QueryAndSortFlowThroughStore(t *testing.T) {
	m := newTestModel(t, stubFetcher{collection: collectionOf(t, threeTxns)})
	m = runFetch(t, m)

	updated, _ := m.Update(components.QueryChangedMsg{Query: "bni"})
	m = updated.(Model)
	assert.Equal(t, "bni", m.store.Snapshot().Query)

	updated, _ = m.Update(components.SortChangedMsg{Option: viewmodel.SortDateNewest})
	m = updated.(Model)
	assert.Equal(t, viewmodel.SortDateNewest, m.store.Snapshot().Sort)
}

func TestModel_DetailNavigation(t *testing.T) {
	m := newTestModel(t, stubFetcher{collection: collectionOf(t, threeTxns)})
	m = runFetch(t, m)

	updated, _ := m.Update(components.TransactionSelectedMsg{ID: "FT2"})
	m = updated.(Model)
	assert.Equal(t, StateDetail, m.state)

	view := m.View()
	assert.Contains(t, view, "FT2")
	assert.Contains(t, view, "BUDI")

	updated, _ = m.Update(components.BackToListMsg{})
	m = updated.(Model)
	assert.Equal(t, StateList, m.state)
}

func TestModel_DetailNotFound(t *testing.T) {
	m := newTestModel(t, stubFetcher{collection: collectionOf(t, threeTxns)})
	m = runFetch(t, m)

	updated, _ := m.Update(components.TransactionSelectedMsg{ID: "FT999"})
	m = updated.(Model)
	assert.Equal(t, StateDetail, m.state)

	view := m.View()
	assert.Contains(t, view, "tidak ditemukan")
}

func TestModel_RefreshIssuesNewFetch(t *testing.T) {
	m := newTestModel(t, stubFetcher{collection: collectionOf(t, threeTxns)})
	m = runFetch(t, m)

	updated, cmd := m.Update(components.RefreshRequestedMsg{})
	m = updated.(Model)
	require.NotNil(t, cmd)
	assert.True(t, m.store.Snapshot().Loading)
}

func TestModel_LoadingView(t *testing.T) {
	m := newTestModel(t, stubFetcher{collection: collectionOf(t, threeTxns)})
	m.store.BeginLoad()

	view := m.View()
	assert.Contains(t, view, "Memuat transaksi")
}

func TestModel_QuitKeys(t *testing.T) {
	m := newTestModel(t, stubFetcher{})

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())

	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}
