package components

import (
	"fmt"
	"strings"

	"github.com/flipside-id/flipside/internal/format"
	"github.com/flipside-id/flipside/internal/model"
	"github.com/flipside-id/flipside/internal/tui/themes"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// TransactionDetailModel renders the detail view of one transaction. A
// lookup miss is a first-class state, not a crash.
type TransactionDetailModel struct {
	theme       themes.Theme
	transaction model.Transaction
	found       bool
	width       int
	height      int
}

type detailKeyMap struct {
	Back key.Binding
}

var detailKeys = detailKeyMap{
	Back: key.NewBinding(
		key.WithKeys("esc", "backspace"),
		key.WithHelp("esc", "kembali"),
	),
}

// NewTransactionDetail creates the detail component.
func NewTransactionDetail(theme themes.Theme) TransactionDetailModel {
	return TransactionDetailModel{theme: theme}
}

// SetTransaction sets the transaction to display. found=false renders the
// not-found state.
func (m *TransactionDetailModel) SetTransaction(txn model.Transaction, found bool) {
	m.transaction = txn
	m.found = found
}

// Resize updates the component dimensions.
func (m *TransactionDetailModel) Resize(width, height int) {
	m.width = width
	m.height = height
}

// Update handles messages.
func (m TransactionDetailModel) Update(msg tea.Msg) (TransactionDetailModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Resize(msg.Width, msg.Height)

	case tea.KeyMsg:
		if key.Matches(msg, detailKeys.Back) {
			return m, func() tea.Msg {
				return BackToListMsg{}
			}
		}
	}

	return m, nil
}

// View renders the transaction detail view.
func (m TransactionDetailModel) View() string {
	if !m.found {
		return m.renderNotFound()
	}

	txn := m.transaction
	labelStyle := m.theme.Bold
	valueStyle := m.theme.Normal
	divider := m.theme.MutedText.Render(strings.Repeat("─", max(m.width-8, 10)))

	route := labelStyle.Render(
		format.BankName(txn.SenderBank) + " ➔ " + format.BankName(txn.BeneficiaryBank),
	)

	sections := []string{
		labelStyle.Render("ID TRANSAKSI: ") + valueStyle.Render("#"+txn.ID),
		divider,
		labelStyle.Render("DETAIL TRANSAKSI") + "    " + m.theme.Accent.Render("Tutup (esc)"),
		divider,
		route,
		"",
		m.renderPair(
			labelStyle.Render(strings.ToUpper(txn.BeneficiaryName))+"\n"+valueStyle.Render(txn.AccountNumber),
			labelStyle.Render("NOMINAL")+"\n"+valueStyle.Render(format.Rupiah(txn.Amount)),
		),
		"",
		m.renderPair(
			labelStyle.Render("BERITA TRANSFER")+"\n"+valueStyle.Render(txn.Remark),
			labelStyle.Render("KODE UNIK")+"\n"+valueStyle.Render(fmt.Sprintf("%d", txn.UniqueCode)),
		),
		"",
		labelStyle.Render("WAKTU DIBUAT") + "\n" + valueStyle.Render(format.DateOrRaw(txn.CreatedAt)),
		"",
		labelStyle.Render("STATUS") + "\n" + m.renderStatus(txn),
	}

	card := m.theme.BorderedBox.Width(max(m.width-4, 40)).Render(
		lipgloss.JoinVertical(lipgloss.Left, sections...),
	)

	return card
}

func (m TransactionDetailModel) renderPair(left, right string) string {
	leftBox := lipgloss.NewStyle().Width(max((m.width-12)/2, 20)).Render(left)
	return lipgloss.JoinHorizontal(lipgloss.Top, leftBox, right)
}

func (m TransactionDetailModel) renderStatus(txn model.Transaction) string {
	label := format.StatusLabel(txn.Status)
	switch model.ParseStatus(txn.Status) {
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

func (m TransactionDetailModel) renderNotFound() string {
	content := lipgloss.JoinVertical(
		lipgloss.Left,
		m.theme.Title.Render("Transaksi tidak ditemukan"),
		m.theme.MutedText.Render("Transaksi ini tidak ada di daftar saat ini."),
		"",
		m.theme.MutedText.Render("esc kembali"),
	)
	return m.theme.BorderedBox.Render(content)
}
