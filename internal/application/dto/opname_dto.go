package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/amalindouser/stok-opname/internal/domain/entity"
)

// ScanRequest body for POST /api/opname/scan. Accepts JSON or form encoding,
// matching the original intake page.
type ScanRequest struct {
	Kode string `json:"kode" form:"kode"`
}

// ScanResponse is the catalog view of a scanned item. Field names follow the
// original wire contract (kode/nama/on_hand/satuan/departemen).
type ScanResponse struct {
	Kode       string          `json:"kode"`
	Nama       string          `json:"nama"`
	OnHand     decimal.Decimal `json:"on_hand"`
	Satuan     string          `json:"satuan"`
	Departemen string          `json:"departemen"`
}

// OpnameItem is one client-side entry: a scan result paired with the
// operator's physical count.
type OpnameItem struct {
	Kode       string   `json:"kode"`
	Nama       string   `json:"nama"`
	OnHand     Quantity `json:"on_hand"`
	Fisik      Quantity `json:"fisik"`
	Departemen string   `json:"departemen"`
}

// SaveOpnameRequest body for POST /api/opname. SubmittedAt lets a client that
// counted while offline backdate the batch (RFC 3339); when absent the server
// clock is used.
type SaveOpnameRequest struct {
	Items       []OpnameItem `json:"items"`
	SubmittedAt *time.Time   `json:"submitted_at,omitempty"`
}

// SaveOpnameResponse reports how many reconciliation records were written.
type SaveOpnameResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Saved   int    `json:"saved"`
}

// ReportRequest body for POST /api/opname/report.
type ReportRequest struct {
	Items []OpnameItem `json:"items"`
}

// ToEntries maps client items to domain reconciliation entries. Quantities
// stay as raw text; the core coerces them.
func ToEntries(items []OpnameItem) []entity.ReconciliationEntry {
	entries := make([]entity.ReconciliationEntry, 0, len(items))
	for _, it := range items {
		entries = append(entries, entity.ReconciliationEntry{
			Code:          it.Kode,
			Name:          it.Nama,
			RecordedStock: it.OnHand.String(),
			CountedStock:  it.Fisik.String(),
			Department:    it.Departemen,
		})
	}
	return entries
}
