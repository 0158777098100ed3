package sqlite

import (
	"context"
	"fmt"

	"github.com/amalindouser/stok-opname/internal/domain"
	"github.com/amalindouser/stok-opname/internal/domain/entity"
	"github.com/amalindouser/stok-opname/internal/domain/repository"
)

var _ repository.OpnameRepository = (*OpnameRepo)(nil)

// OpnameRepo appends reconciliation records to the database file.
type OpnameRepo struct {
	s *Storage
}

// NewOpnameRepository builds the adapter.
func NewOpnameRepository(s *Storage) *OpnameRepo {
	return &OpnameRepo{s: s}
}

// AppendRecords writes the whole batch in one transaction; any failure
// rolls everything back.
func (r *OpnameRepo) AppendRecords(ctx context.Context, records []*entity.ReconciliationRecord) error {
	tx, err := r.s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: begin transaction: %v", domain.ErrStorageUnavailable, err)
	}
	defer func() { _ = tx.Rollback() }()

	const query = `
		INSERT INTO stok_opname
		(id, kode_opname, kode, nama, stok_awal, stok_real, selisih, status, jenis, departemen, tanggal)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return fmt.Errorf("%w: prepare insert: %v", domain.ErrStorageUnavailable, err)
	}
	defer func() { _ = stmt.Close() }()

	for _, rec := range records {
		_, err := stmt.ExecContext(ctx,
			rec.ID, rec.BatchID, rec.Code, rec.Name,
			rec.RecordedStock.String(), rec.CountedStock.String(), rec.Variance.String(),
			rec.Status, rec.Kind, rec.Department, rec.Date.Format("2006-01-02"),
		)
		if err != nil {
			return fmt.Errorf("%w: insert stok_opname %s: %v", domain.ErrStorageUnavailable, rec.BatchID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: commit transaction: %v", domain.ErrStorageUnavailable, err)
	}
	return nil
}
