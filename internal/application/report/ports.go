package report

import (
	"context"

	"github.com/amalindouser/stok-opname/internal/domain/opname"
)

// PDFGenerator renders the abstract report document to a fixed-page-size
// paginated file. Implemented by infrastructure/pdf (Maroto v2).
type PDFGenerator interface {
	Generate(ctx context.Context, doc *opname.ReportDocument) ([]byte, error)
}
