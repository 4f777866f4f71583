package components

import (
	"testing"

	"github.com/flipside-id/flipside/internal/model"
	"github.com/flipside-id/flipside/internal/tui/themes"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransactionDetail_View(t *testing.T) {
	detail := NewTransactionDetail(themes.Default)
	detail.Resize(100, 40)
	detail.SetTransaction(model.Transaction{
		ID:              "FT54105",
		Amount:          439863,
		UniqueCode:      524,
		Status:          "SUCCESS",
		SenderBank:      "bni",
		BeneficiaryBank: "bri",
		BeneficiaryName: "Jake Castillo",
		AccountNumber:   "8949351401",
		Remark:          "sample remark",
		CreatedAt:       "2024-11-20 22:53:15",
	}, true)

	view := detail.View()
	assert.Contains(t, view, "#FT54105")
	assert.Contains(t, view, "BNI")
	assert.Contains(t, view, "BRI")
	assert.Contains(t, view, "JAKE CASTILLO")
	assert.Contains(t, view, "8949351401")
	assert.Contains(t, view, "Rp439.863")
	assert.Contains(t, view, "sample remark")
	assert.Contains(t, view, "524")
	assert.Contains(t, view, "20 November 2024")
	assert.Contains(t, view, "Berhasil")
}

func TestTransactionDetail_NotFound(t *testing.T) {
	detail := NewTransactionDetail(themes.Default)
	detail.Resize(80, 24)
	detail.SetTransaction(model.Transaction{}, false)

	view := detail.View()
	assert.Contains(t, view, "tidak ditemukan")
}

func TestTransactionDetail_EscGoesBack(t *testing.T) {
	detail := NewTransactionDetail(themes.Default)

	_, cmd := detail.Update(keyMsg("esc"))
	require.NotNil(t, cmd)
	_, ok := cmd().(BackToListMsg)
	assert.True(t, ok)
}

func TestTransactionDetail_UnparseableDateFallsBackToRaw(t *testing.T) {
	detail := NewTransactionDetail(themes.Default)
	detail.Resize(100, 40)
	detail.SetTransaction(model.Transaction{
		ID:        "FT1",
		CreatedAt: "not-a-timestamp",
	}, true)

	view := detail.View()
	assert.Contains(t, view, "not-a-timestamp")
}
