// Package opname contains the application use cases of the stock-count
// workflow: scanning a code against the catalog and submitting a
// reconciliation batch. Both are synchronous request-per-call units with no
// shared state beyond the storage ports.
package opname

import (
	"context"
	"time"

	"github.com/amalindouser/stok-opname/internal/application/dto"
	"github.com/amalindouser/stok-opname/internal/domain"
	"github.com/amalindouser/stok-opname/internal/domain/opname"
	"github.com/amalindouser/stok-opname/internal/domain/repository"
)

// ScanUseCase resolves a scanned item code against the master catalog.
type ScanUseCase struct {
	catalog repository.CatalogRepository
}

// NewScanUseCase builds the use case. The catalog handle is owned by the
// caller; swapping sources is its concern, not this package's.
func NewScanUseCase(catalog repository.CatalogRepository) *ScanUseCase {
	return &ScanUseCase{catalog: catalog}
}

// Scan normalizes the raw code and returns the single matching catalog item.
// An empty code is domain.ErrEmptyCode; a well-formed code with no row is
// domain.ErrItemNotFound; a dead catalog surfaces the storage error as-is.
func (uc *ScanUseCase) Scan(ctx context.Context, rawCode string) (*dto.ScanResponse, error) {
	code, err := opname.NormalizeCode(rawCode)
	if err != nil {
		return nil, err
	}

	item, err := uc.catalog.FindByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrItemNotFound
	}

	return &dto.ScanResponse{
		Kode:       item.Code,
		Nama:       item.Name,
		OnHand:     item.RecordedStock,
		Satuan:     item.Unit,
		Departemen: item.Department,
	}, nil
}

// SubmitBatchUseCase persists an opname submission as immutable
// reconciliation records.
type SubmitBatchUseCase struct {
	builder *opname.BatchBuilder
	records repository.OpnameRepository
}

// NewSubmitBatchUseCase builds the use case.
func NewSubmitBatchUseCase(builder *opname.BatchBuilder, records repository.OpnameRepository) *SubmitBatchUseCase {
	return &SubmitBatchUseCase{builder: builder, records: records}
}

// Submit builds records for every item and appends them in one atomic write.
// Validation failures (empty batch, malformed quantity) happen before any
// side effect; a persistence failure leaves no partial batch behind.
func (uc *SubmitBatchUseCase) Submit(ctx context.Context, in dto.SaveOpnameRequest, submittedAt time.Time) (*dto.SaveOpnameResponse, error) {
	records, err := uc.builder.Build(dto.ToEntries(in.Items), submittedAt)
	if err != nil {
		return nil, err
	}
	if err := uc.records.AppendRecords(ctx, records); err != nil {
		return nil, err
	}
	return &dto.SaveOpnameResponse{
		Success: true,
		Message: "data opname berhasil disimpan",
		Saved:   len(records),
	}, nil
}
