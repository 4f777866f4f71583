package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBankName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "short code upper-cased", input: "bni", want: "BNI"},
		{name: "four characters still a code", input: "cimb", want: "CIMB"},
		{name: "long name capitalized only", input: "mandiri", want: "Mandiri"},
		{name: "mixed case tail preserved", input: "permataBank", want: "PermataBank"},
		{name: "empty", input: "", want: ""},
		{name: "already upper", input: "BCA", want: "BCA"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BankName(tt.input))
		})
	}
}

func TestRupiah(t *testing.T) {
	tests := []struct {
		name   string
		amount int64
		want   string
	}{
		{name: "grouped", amount: 439863, want: "Rp439.863"},
		{name: "zero", amount: 0, want: "Rp0"},
		{name: "millions", amount: 1234567, want: "Rp1.234.567"},
		{name: "below grouping threshold", amount: 999, want: "Rp999"},
		{name: "exact thousand", amount: 1000, want: "Rp1.000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Rupiah(tt.amount))
		})
	}
}

func TestDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "rfc3339", input: "2024-11-20T22:53:15Z", want: "20 November 2024"},
		{name: "endpoint layout", input: "2024-11-20 22:53:15", want: "20 November 2024"},
		{name: "date only", input: "2024-01-05", want: "05 January 2024"},
		{name: "day is zero padded", input: "2024-03-01 08:00:00", want: "01 March 2024"},
		{name: "unparseable", input: "bukan tanggal", wantErr: true},
		{name: "empty", input: "", wantErr: true},
		{name: "pending sentinel is not a date", input: "0", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Date(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidDate)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDateOrRaw(t *testing.T) {
	assert.Equal(t, "20 November 2024", DateOrRaw("2024-11-20 22:53:15"))
	assert.Equal(t, "0", DateOrRaw("0"))
	assert.Equal(t, "garbage", DateOrRaw("garbage"))
}

func TestParseDate_Ordering(t *testing.T) {
	early, err := ParseDate("2024-11-20 08:00:00")
	require.NoError(t, err)
	late, err := ParseDate("2024-11-20T22:53:15Z")
	require.NoError(t, err)
	assert.True(t, early.Before(late))
}

func TestStatusLabel(t *testing.T) {
	assert.Equal(t, "Berhasil", StatusLabel("SUCCESS"))
	assert.Equal(t, "Pengecekan", StatusLabel("PENDING"))
	assert.Equal(t, "REFUNDED", StatusLabel("REFUNDED"))
	assert.Equal(t, "", StatusLabel(""))
}
