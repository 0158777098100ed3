// Package report turns a submitted item list into the printable opname
// report.
package report

import (
	"context"
	"fmt"
	"time"

	"github.com/amalindouser/stok-opname/internal/application/dto"
	"github.com/amalindouser/stok-opname/internal/domain"
	"github.com/amalindouser/stok-opname/internal/domain/opname"
)

// GenerateUseCase assembles the report document and hands it to the PDF
// collaborator.
type GenerateUseCase struct {
	pdf PDFGenerator
}

// NewGenerateUseCase builds the use case.
func NewGenerateUseCase(pdf PDFGenerator) *GenerateUseCase {
	return &GenerateUseCase{pdf: pdf}
}

// Generate returns the rendered PDF bytes and the download filename.
// Validation failures produce no file; a renderer failure is reported as
// domain.ErrRenderFailure.
func (uc *GenerateUseCase) Generate(ctx context.Context, in dto.ReportRequest, generatedAt time.Time) ([]byte, string, error) {
	doc, err := opname.BuildReport(dto.ToEntries(in.Items), generatedAt)
	if err != nil {
		return nil, "", err
	}

	pdf, err := uc.pdf.Generate(ctx, doc)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", domain.ErrRenderFailure, err)
	}

	filename := fmt.Sprintf("stok_opname_%s.pdf", generatedAt.Format("20060102_150405"))
	return pdf, filename, nil
}
