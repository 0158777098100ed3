package entity

import "github.com/shopspring/decimal"

// CatalogItem is one row of the master catalog (tb_barang): the system-of-record
// view of an item prior to physical verification. Read-only from the
// reconciliation core's perspective; exactly one item per canonical code
// within a catalog snapshot.
type CatalogItem struct {
	Code          string          // canonical form, never carries a trailing ".0"
	Name          string
	RecordedStock decimal.Decimal // on-hand quantity per the system of record
	Unit          string
	Department    string
}
