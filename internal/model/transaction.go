// Package model defines the transaction types shared across the application.
package model

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Transaction represents a single transfer record as returned by the
// transaction endpoint. Records are immutable once received.
type Transaction struct {
	ID              string `json:"id"`
	Amount          int64  `json:"amount"`
	UniqueCode      int    `json:"unique_code"`
	Status          string `json:"status"`
	SenderBank      string `json:"sender_bank"`
	AccountNumber   string `json:"account_number"`
	BeneficiaryName string `json:"beneficiary_name"`
	BeneficiaryBank string `json:"beneficiary_bank"`
	Remark          string `json:"remark"`
	CreatedAt       string `json:"created_at"`
	CompletedAt     string `json:"completed_at"`
	Fee             int64  `json:"fee"`
}

// CompletedAtSentinel is the completed_at value the endpoint sends while a
// transfer has not settled yet.
const CompletedAtSentinel = "0"

// IsCompleted reports whether the transfer has a real completion timestamp.
func (t Transaction) IsCompleted() bool {
	return t.CompletedAt != "" && t.CompletedAt != CompletedAtSentinel
}

// StatusKind is the closed set of transaction states the UI distinguishes.
// The endpoint sends status as an open string, so anything outside the two
// known values maps to StatusUnknown instead of failing.
type StatusKind int

const (
	// StatusUnknown covers any status value the endpoint may add later.
	StatusUnknown StatusKind = iota
	// StatusSuccess marks a settled transfer.
	StatusSuccess
	// StatusPending marks a transfer still being processed.
	StatusPending
)

// ParseStatus maps a raw status string onto a StatusKind.
func ParseStatus(raw string) StatusKind {
	switch raw {
	case "SUCCESS":
		return StatusSuccess
	case "PENDING":
		return StatusPending
	default:
		return StatusUnknown
	}
}

// String returns the wire representation of the status kind.
func (k StatusKind) String() string {
	switch k {
	case StatusSuccess:
		return "SUCCESS"
	case StatusPending:
		return "PENDING"
	default:
		return fmt.Sprintf("UNKNOWN(%d)", int(k))
	}
}

// Collection holds the transactions of one fetch, keyed by ID, while
// remembering the order the keys appeared on the wire. encoding/json maps
// lose that order, so decoding walks the token stream instead.
type Collection struct {
	byID  map[string]Transaction
	order []string
}

// UnmarshalJSON decodes the endpoint's keyed-object payload. A duplicate key
// keeps its first position but takes the later value.
func (c *Collection) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("failed to decode response: expected object, got %v", tok)
	}

	c.order = nil
	c.byID = make(map[string]Transaction)

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("failed to decode response: expected key, got %v", keyTok)
		}

		var txn Transaction
		if err := dec.Decode(&txn); err != nil {
			return fmt.Errorf("failed to decode transaction %q: %w", key, err)
		}

		if _, seen := c.byID[key]; !seen {
			c.order = append(c.order, key)
		}
		c.byID[key] = txn
	}

	// Consume the closing brace.
	if _, err := dec.Token(); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}

// Transactions returns the collection as an ordered slice in arrival order.
func (c Collection) Transactions() []Transaction {
	txns := make([]Transaction, 0, len(c.order))
	for _, key := range c.order {
		txns = append(txns, c.byID[key])
	}
	return txns
}

// FindByID looks up a transaction by its ID field.
func (c Collection) FindByID(id string) (Transaction, bool) {
	for _, key := range c.order {
		if c.byID[key].ID == id {
			return c.byID[key], true
		}
	}
	return Transaction{}, false
}

// Len returns the number of transactions in the collection.
func (c Collection) Len() int {
	return len(c.order)
}

// FindByID looks up a transaction by ID in a slice, returning false instead
// of panicking when the ID is absent.
func FindByID(txns []Transaction, id string) (Transaction, bool) {
	for _, txn := range txns {
		if txn.ID == id {
			return txn, true
		}
	}
	return Transaction{}, false
}
