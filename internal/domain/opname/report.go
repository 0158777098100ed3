package opname

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/amalindouser/stok-opname/internal/domain"
	"github.com/amalindouser/stok-opname/internal/domain/entity"
)

// ReportTitle is the fixed label on the printed opname report.
const ReportTitle = "LAPORAN STOK OPNAME"

// ReportHeader is the table header row, in print order.
var ReportHeader = []string{"Barcode", "Nama Barang", "Fisik", "On Hand", "Selisih", "Departemen"}

// ReportRow is one item line of the report. All codes are
// display-normalized and Variance uses the same arithmetic as the
// persisted records.
type ReportRow struct {
	Code          string
	Name          string
	CountedStock  decimal.Decimal
	RecordedStock decimal.Decimal
	Variance      decimal.Decimal
	Department    string
}

// ReportDocument is the abstract tabular report. Pagination, page size and
// styling belong to the rendering collaborator, not here.
type ReportDocument struct {
	Title       string
	GeneratedAt time.Time
	Header      []string
	Rows        []ReportRow
}

// BuildReport assembles the document for a submitted item list. An empty
// list yields ErrEmptyReport and no document; a malformed quantity fails
// the whole report, mirroring BuildBatch.
func BuildReport(entries []entity.ReconciliationEntry, generatedAt time.Time) (*ReportDocument, error) {
	if len(entries) == 0 {
		return nil, domain.ErrEmptyReport
	}

	rows := make([]ReportRow, 0, len(entries))
	for _, e := range entries {
		code := StripSuffix(strings.TrimSpace(e.Code))

		recorded, err := ParseQuantity(e.RecordedStock)
		if err != nil {
			return nil, fmt.Errorf("%w: on_hand %q untuk kode %s", domain.ErrMalformedQuantity, e.RecordedStock, code)
		}
		counted, err := ParseQuantity(e.CountedStock)
		if err != nil {
			return nil, fmt.Errorf("%w: fisik %q untuk kode %s", domain.ErrMalformedQuantity, e.CountedStock, code)
		}

		rows = append(rows, ReportRow{
			Code:          code,
			Name:          e.Name,
			CountedStock:  counted,
			RecordedStock: recorded,
			Variance:      Variance(counted, recorded),
			Department:    e.Department,
		})
	}

	return &ReportDocument{
		Title:       ReportTitle,
		GeneratedAt: generatedAt,
		Header:      ReportHeader,
		Rows:        rows,
	}, nil
}
