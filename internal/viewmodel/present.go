// Package viewmodel turns the store's snapshot into the ordered sequence of
// transactions the list view renders. Everything here is pure: same inputs,
// same output, no state.
package viewmodel

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/flipside-id/flipside/internal/format"
	"github.com/flipside-id/flipside/internal/model"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortOption selects the ordering applied to the filtered list.
type SortOption int

const (
	// SortNone keeps arrival order.
	SortNone SortOption = iota
	// SortNameAZ orders by beneficiary name, A to Z.
	SortNameAZ
	// SortNameZA orders by beneficiary name, Z to A.
	SortNameZA
	// SortDateNewest orders by created_at, newest first.
	SortDateNewest
	// SortDateOldest orders by created_at, oldest first.
	SortDateOldest
)

// ParseSortOption maps the wire/flag spelling of a sort option. Anything
// unrecognized falls through to SortNone rather than erroring.
func ParseSortOption(s string) SortOption {
	switch s {
	case "nameAZ":
		return SortNameAZ
	case "nameZA":
		return SortNameZA
	case "dateNewest":
		return SortDateNewest
	case "dateOldest":
		return SortDateOldest
	default:
		return SortNone
	}
}

// String returns the flag spelling of the option.
func (o SortOption) String() string {
	switch o {
	case SortNameAZ:
		return "nameAZ"
	case SortNameZA:
		return "nameZA"
	case SortDateNewest:
		return "dateNewest"
	case SortDateOldest:
		return "dateOldest"
	default:
		return "none"
	}
}

// Label returns the menu text shown for the option, matching the labels of
// the sort dialog.
func (o SortOption) Label() string {
	switch o {
	case SortNameAZ:
		return "Nama A-Z"
	case SortNameZA:
		return "Nama Z-A"
	case SortDateNewest:
		return "Tanggal Terbaru"
	case SortDateOldest:
		return "Tanggal Terlama"
	default:
		return "URUTKAN"
	}
}

// Options lists every selectable option in menu order.
func Options() []SortOption {
	return []SortOption{SortNone, SortNameAZ, SortNameZA, SortDateNewest, SortDateOldest}
}

// Matches reports whether a transaction matches a search query. A non-empty
// query matches on case-insensitive containment in the beneficiary name,
// sender bank, or beneficiary bank, or on plain containment in the decimal
// form of the amount. An empty query matches everything.
func Matches(txn model.Transaction, query string) bool {
	if query == "" {
		return true
	}
	folded := strings.ToLower(query)
	return strings.Contains(strings.ToLower(txn.BeneficiaryName), folded) ||
		strings.Contains(strings.ToLower(txn.SenderBank), folded) ||
		strings.Contains(strings.ToLower(txn.BeneficiaryBank), folded) ||
		strings.Contains(strconv.FormatInt(txn.Amount, 10), query)
}

// Filter returns the transactions matching query, preserving input order.
func Filter(txns []model.Transaction, query string) []model.Transaction {
	out := make([]model.Transaction, 0, len(txns))
	for _, txn := range txns {
		if Matches(txn, query) {
			out = append(out, txn)
		}
	}
	return out
}

// Sort returns a sorted copy of txns. The sort is stable, so ties keep
// their prior relative order and SortNone returns the input order exactly.
func Sort(txns []model.Transaction, opt SortOption) []model.Transaction {
	out := make([]model.Transaction, len(txns))
	copy(out, txns)

	switch opt {
	case SortNameAZ, SortNameZA:
		coll := collate.New(language.Indonesian)
		sort.SliceStable(out, func(i, j int) bool {
			cmp := coll.CompareString(out[i].BeneficiaryName, out[j].BeneficiaryName)
			if opt == SortNameZA {
				return cmp > 0
			}
			return cmp < 0
		})
	case SortDateNewest, SortDateOldest:
		type dated struct {
			at  time.Time
			txn model.Transaction
		}
		items := make([]dated, len(out))
		for i, txn := range out {
			// An unparseable created_at sorts as the zero time instead
			// of failing the whole presentation.
			at, _ := format.ParseDate(txn.CreatedAt)
			items[i] = dated{at: at, txn: txn}
		}
		sort.SliceStable(items, func(i, j int) bool {
			if opt == SortDateNewest {
				return items[i].at.After(items[j].at)
			}
			return items[i].at.Before(items[j].at)
		})
		for i, item := range items {
			out[i] = item.txn
		}
	}

	return out
}

// Present applies the full pipeline: filter by query, then stable sort by
// option. Filtering always happens before sorting.
func Present(txns []model.Transaction, query string, opt SortOption) []model.Transaction {
	return Sort(Filter(txns, query), opt)
}
