package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Persisted values for ReconciliationRecord. The Indonesian terms are kept
// verbatim: downstream reporting tools filter on them.
const (
	StatusUnverified = "BELUM CEK" // not yet re-checked by a supervisor
	KindStockOpname  = "SO"        // transaction tag for stock-count records
)

// ReconciliationEntry is one scanned item paired with the operator-entered
// physical count, as submitted by the client. Quantities arrive as raw text
// and are only coerced to decimals when a batch is built; a bad value fails
// the whole batch, not just the row.
type ReconciliationEntry struct {
	Code          string
	Name          string
	RecordedStock string // on-hand quantity as sent by the client
	CountedStock  string // physical count as typed by the operator
	Department    string
}

// ReconciliationRecord is the persisted, immutable outcome of one entry in a
// submitted batch. Business identity is BatchID+Code; ID is a surrogate row
// key for the store. Corrections are new records, never updates.
type ReconciliationRecord struct {
	ID            string
	BatchID       string // OPN<yyyymmddhhmmss>[-nn], unique per entry
	Code          string // canonical form, trailing ".0" stripped
	Name          string
	RecordedStock decimal.Decimal
	CountedStock  decimal.Decimal
	Variance      decimal.Decimal // CountedStock - RecordedStock, exact
	Status        string          // StatusUnverified at creation
	Kind          string          // KindStockOpname
	Department    string
	Date          time.Time // calendar date of submission
}
