// Package tui implements the interactive transaction browser.
package tui

import (
	"context"

	"github.com/flipside-id/flipside/internal/model"
	"github.com/flipside-id/flipside/internal/store"
	"github.com/flipside-id/flipside/internal/tui/components"
	"github.com/flipside-id/flipside/internal/tui/themes"
	"github.com/flipside-id/flipside/internal/viewmodel"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Fetcher is the slice of the fetch client the TUI needs.
type Fetcher interface {
	Fetch(ctx context.Context) (model.Collection, error)
}

// State represents the active screen.
type State int

const (
	// StateList shows the searchable, sortable transaction list.
	StateList State = iota
	// StateDetail shows one transaction.
	StateDetail
)

// Config holds the dependencies for the TUI.
type Config struct {
	Fetcher Fetcher
	Store   *store.Store
	Theme   themes.Theme
}

// Model holds the main TUI state.
type Model struct {
	ctx      context.Context
	fetcher  Fetcher
	store    *store.Store
	theme    themes.Theme
	list     components.TransactionListModel
	detail   components.TransactionDetailModel
	spinner  spinner.Model
	state    State
	width    int
	height   int
	quitting bool
}

// newModel creates a model with the given configuration.
func newModel(ctx context.Context, cfg Config) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = cfg.Theme.Accent

	return Model{
		ctx:     ctx,
		fetcher: cfg.Fetcher,
		store:   cfg.Store,
		theme:   cfg.Theme,
		list:    components.NewTransactionList(cfg.Theme),
		detail:  components.NewTransactionDetail(cfg.Theme),
		spinner: sp,
		state:   StateList,
		width:   80,
		height:  24,
	}
}

// Init starts the spinner and kicks off the initial fetch.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		m.fetchTransactions(),
	)
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if cmd := m.handleGlobalKeys(msg); cmd != nil {
			m.quitting = true
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.Resize(msg.Width, msg.Height)
		m.detail.Resize(msg.Width, msg.Height)
		return m, nil

	case spinner.TickMsg:
		if m.store.Snapshot().Loading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil

	case transactionsLoadedMsg:
		if msg.err != nil {
			m.store.LoadFailed(msg.token, msg.err.Error())
		} else {
			m.store.LoadSucceeded(msg.token, msg.collection)
		}
		m.syncList()
		return m, nil

	case components.QueryChangedMsg:
		m.store.SetQuery(msg.Query)
		m.syncList()

	case components.SortChangedMsg:
		m.store.SetSortOption(msg.Option)
		m.syncList()

	case components.TransactionSelectedMsg:
		txn, found := m.store.FindByID(msg.ID)
		m.detail.SetTransaction(txn, found)
		m.state = StateDetail
		return m, nil

	case components.BackToListMsg:
		m.state = StateList
		return m, nil

	case components.RefreshRequestedMsg:
		cmds = append(cmds, m.fetchTransactions(), m.spinner.Tick)
		return m, tea.Batch(cmds...)
	}

	switch m.state {
	case StateList:
		newList, cmd := m.list.Update(msg)
		m.list = newList
		cmds = append(cmds, cmd)
	case StateDetail:
		newDetail, cmd := m.detail.Update(msg)
		m.detail = newDetail
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// handleGlobalKeys handles keys that work in any state. It returns a quit
// command or nil.
func (m Model) handleGlobalKeys(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "ctrl+c":
		return tea.Quit
	case "q":
		// Plain q only quits outside of text entry.
		if m.state == StateList && m.list.Mode() == components.ModeSearch {
			return nil
		}
		return tea.Quit
	}
	return nil
}

// syncList recomputes the presented slice from the current snapshot and
// pushes it into the list component.
func (m *Model) syncList() {
	snap := m.store.Snapshot()
	presented := viewmodel.Present(snap.Transactions, snap.Query, snap.Sort)
	m.list.SetTransactions(presented, snap.Query, snap.Sort)
}

// View renders the UI.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	snap := m.store.Snapshot()

	if snap.Loading {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			m.spinner.View()+" "+m.theme.MutedText.Render("Memuat transaksi..."))
	}

	if snap.HasError() {
		banner := lipgloss.JoinVertical(
			lipgloss.Left,
			m.theme.ErrorBanner.Render(snap.Err),
			m.theme.MutedText.Render("r coba lagi · q keluar"),
		)
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, banner)
	}

	switch m.state {
	case StateDetail:
		return m.detail.View()
	default:
		return m.list.View()
	}
}
