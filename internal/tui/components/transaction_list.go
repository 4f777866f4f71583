package components

import (
	"fmt"
	"strings"

	"github.com/flipside-id/flipside/internal/format"
	"github.com/flipside-id/flipside/internal/model"
	"github.com/flipside-id/flipside/internal/tui/themes"
	"github.com/flipside-id/flipside/internal/viewmodel"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ListMode represents the current mode of the list.
type ListMode int

// List modes.
const (
	ModeNormal ListMode = iota
	ModeSearch
	ModeSort
)

// cardLines is the number of rendered lines per transaction card,
// including the blank separator.
const cardLines = 3

// TransactionListModel manages the transaction list view. The parent owns
// the store; this component only renders the presented slice it is given
// and emits messages for query, sort, and selection changes.
type TransactionListModel struct {
	theme        themes.Theme
	searchInput  textinput.Model
	query        string
	prevQuery    string
	transactions []model.Transaction
	sort         viewmodel.SortOption
	mode         ListMode
	cursor       int
	offset       int
	sortCursor   int
	width        int
	height       int
}

// NewTransactionList creates the list component.
func NewTransactionList(theme themes.Theme) TransactionListModel {
	searchInput := textinput.New()
	searchInput.Placeholder = "Cari nama, bank, atau nominal"
	searchInput.CharLimit = 50
	searchInput.Prompt = "🔍 "

	return TransactionListModel{
		theme:       theme,
		searchInput: searchInput,
		mode:        ModeNormal,
		width:       80,
		height:      24,
	}
}

// SetTransactions replaces the displayed slice with a freshly presented
// snapshot and clamps the cursor.
func (m *TransactionListModel) SetTransactions(txns []model.Transaction, query string, sort viewmodel.SortOption) {
	m.transactions = txns
	m.query = query
	m.sort = sort
	if m.cursor >= len(txns) {
		m.cursor = len(txns) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	m.clampOffset()
}

// Mode returns the current list mode.
func (m TransactionListModel) Mode() ListMode {
	return m.mode
}

// Resize updates the component dimensions.
func (m *TransactionListModel) Resize(width, height int) {
	m.width = width
	m.height = height
	m.searchInput.Width = width - 8
	m.clampOffset()
}

// Update handles messages.
func (m TransactionListModel) Update(msg tea.Msg) (TransactionListModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch m.mode {
		case ModeNormal:
			cmd := m.handleNormalMode(msg)
			return m, cmd
		case ModeSearch:
			return m.handleSearchMode(msg)
		case ModeSort:
			cmd := m.handleSortMode(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.Resize(msg.Width, msg.Height)
	}

	return m, nil
}

func (m *TransactionListModel) handleNormalMode(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "j", "down":
		if m.cursor < len(m.transactions)-1 {
			m.cursor++
		}
		m.clampOffset()

	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}
		m.clampOffset()

	case "G":
		m.cursor = len(m.transactions) - 1
		if m.cursor < 0 {
			m.cursor = 0
		}
		m.clampOffset()

	case "g":
		m.cursor = 0
		m.clampOffset()

	case "/":
		m.mode = ModeSearch
		m.prevQuery = m.query
		m.searchInput.SetValue(m.query)
		m.searchInput.Focus()
		return textinput.Blink

	case "s":
		m.mode = ModeSort
		m.sortCursor = int(m.sort)

	case "r":
		return func() tea.Msg {
			return RefreshRequestedMsg{}
		}

	case "enter":
		if m.cursor < len(m.transactions) {
			id := m.transactions[m.cursor].ID
			return func() tea.Msg {
				return TransactionSelectedMsg{ID: id}
			}
		}
	}

	return nil
}

// handleSearchMode feeds keystrokes to the input and emits the query live so
// the list filters while typing.
func (m TransactionListModel) handleSearchMode(msg tea.KeyMsg) (TransactionListModel, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.mode = ModeNormal
		m.searchInput.Blur()
		return m, nil

	case "esc":
		m.mode = ModeNormal
		m.searchInput.Blur()
		restored := m.prevQuery
		m.searchInput.SetValue(restored)
		return m, func() tea.Msg {
			return QueryChangedMsg{Query: restored}
		}
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	value := m.searchInput.Value()
	if value != m.query {
		return m, tea.Batch(cmd, func() tea.Msg {
			return QueryChangedMsg{Query: value}
		})
	}
	return m, cmd
}

func (m *TransactionListModel) handleSortMode(msg tea.KeyMsg) tea.Cmd {
	options := viewmodel.Options()

	switch msg.String() {
	case "j", "down":
		if m.sortCursor < len(options)-1 {
			m.sortCursor++
		}

	case "k", "up":
		if m.sortCursor > 0 {
			m.sortCursor--
		}

	case "enter":
		m.mode = ModeNormal
		selected := options[m.sortCursor]
		return func() tea.Msg {
			return SortChangedMsg{Option: selected}
		}

	case "esc", "s":
		m.mode = ModeNormal
	}

	return nil
}

// visibleCards returns how many cards fit under the header.
func (m TransactionListModel) visibleCards() int {
	rows := (m.height - 5) / cardLines
	if rows < 1 {
		rows = 1
	}
	return rows
}

func (m *TransactionListModel) clampOffset() {
	visible := m.visibleCards()
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+visible {
		m.offset = m.cursor - visible + 1
	}
	if m.offset < 0 {
		m.offset = 0
	}
}

// View renders the transaction list.
func (m TransactionListModel) View() string {
	if m.mode == ModeSort {
		return m.renderSortMenu()
	}

	header := m.renderHeader()
	body := m.renderCards()
	footer := m.renderFooter()

	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}

func (m TransactionListModel) renderHeader() string {
	var search string
	if m.mode == ModeSearch {
		search = m.searchInput.View()
	} else if m.query != "" {
		search = "🔍 " + m.theme.Normal.Underline(true).Render(m.query)
	} else {
		search = "🔍 " + m.theme.MutedText.Render("Cari nama, bank, atau nominal")
	}

	sortLabel := m.theme.Accent.Render(m.sort.Label() + " ▾")

	gap := m.width - lipgloss.Width(search) - lipgloss.Width(sortLabel) - 4
	if gap < 1 {
		gap = 1
	}

	bar := lipgloss.JoinHorizontal(lipgloss.Center,
		search,
		strings.Repeat(" ", gap),
		sortLabel,
	)

	return m.theme.SearchBox.Width(m.width - 2).Render(bar)
}

func (m TransactionListModel) renderCards() string {
	if len(m.transactions) == 0 {
		return m.theme.Box.Render(m.theme.MutedText.Render("No transaction data available"))
	}

	visible := m.visibleCards()
	end := m.offset + visible
	if end > len(m.transactions) {
		end = len(m.transactions)
	}

	var cards []string
	for i := m.offset; i < end; i++ {
		cards = append(cards, m.renderCard(m.transactions[i], i == m.cursor))
	}
	return strings.Join(cards, "\n")
}

// renderCard renders one transaction as a two-line card:
//
//	BNI ➔ Mandiri                    Berhasil
//	JAKE CASTILLO · Rp439.863 · 20 November 2024
func (m TransactionListModel) renderCard(txn model.Transaction, selected bool) string {
	route := m.theme.Bold.Render(
		format.BankName(txn.SenderBank) + " ➔ " + format.BankName(txn.BeneficiaryBank),
	)
	badge := m.renderStatusBadge(txn.Status)

	gap := m.width - lipgloss.Width(route) - lipgloss.Width(badge) - 6
	if gap < 1 {
		gap = 1
	}
	top := route + strings.Repeat(" ", gap) + badge

	detail := fmt.Sprintf("%s · %s · %s",
		strings.ToUpper(txn.BeneficiaryName),
		format.Rupiah(txn.Amount),
		format.DateOrRaw(txn.CreatedAt),
	)

	marker := "  "
	style := m.theme.Normal
	if selected {
		marker = m.theme.Accent.Render("❯ ")
		style = m.theme.Bold
	}

	return marker + top + "\n" + marker + style.Render(detail) + "\n"
}

func (m TransactionListModel) renderStatusBadge(status string) string {
	label := format.StatusLabel(status)
	switch model.ParseStatus(status) {
	case model.StatusSuccess:
		return m.theme.StatusSuccess.Render(label)
	case model.StatusPending:
		return m.theme.StatusPending.Render(label)
	default:
		if label == "" {
			label = "?"
		}
		return m.theme.StatusUnknown.Render(label)
	}
}

func (m TransactionListModel) renderFooter() string {
	count := fmt.Sprintf("%d transaksi", len(m.transactions))
	help := "j/k pilih · enter detail · / cari · s urutkan · r muat ulang · q keluar"
	return m.theme.MutedText.Render(count + "  " + help)
}

func (m TransactionListModel) renderSortMenu() string {
	options := viewmodel.Options()

	var lines []string
	for i, opt := range options {
		radio := "○"
		if opt == m.sort {
			radio = m.theme.Accent.Render("●")
		}
		line := fmt.Sprintf("%s %s", radio, opt.Label())
		if i == m.sortCursor {
			line = m.theme.Selected.Render(line)
		} else {
			line = m.theme.Normal.Render(line)
		}
		lines = append(lines, line)
	}

	menu := m.theme.BorderedBox.Render(lipgloss.JoinVertical(
		lipgloss.Left,
		m.theme.Title.Render("Urutkan"),
		strings.Join(lines, "\n"),
		m.theme.MutedText.Render("enter pilih · esc batal"),
	))

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, menu)
}
