package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/amalindouser/stok-opname/internal/domain"
	"github.com/amalindouser/stok-opname/internal/domain/entity"
	"github.com/amalindouser/stok-opname/internal/domain/repository"
)

var _ repository.OpnameRepository = (*OpnameRepo)(nil)

// OpnameRepo appends reconciliation records to stok_opname. Records are
// immutable: this adapter only ever inserts.
type OpnameRepo struct {
	pool *pgxpool.Pool
}

// NewOpnameRepository builds the adapter on the pool; each append runs in
// its own transaction.
func NewOpnameRepository(pool *pgxpool.Pool) *OpnameRepo {
	return &OpnameRepo{pool: pool}
}

// AppendRecords writes the whole batch in one transaction. On any failure
// the transaction rolls back, so callers never observe a partial batch.
func (r *OpnameRepo) AppendRecords(ctx context.Context, records []*entity.ReconciliationRecord) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("%w: begin transaction: %v", domain.ErrStorageUnavailable, err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	query := `
		INSERT INTO stok_opname
		(id, kode_opname, kode, nama, stok_awal, stok_real, selisih, status, jenis, departemen, tanggal)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	for _, rec := range records {
		_, err := tx.Exec(ctx, query,
			rec.ID, rec.BatchID, rec.Code, rec.Name,
			rec.RecordedStock, rec.CountedStock, rec.Variance,
			rec.Status, rec.Kind, rec.Department, rec.Date,
		)
		if err != nil {
			return fmt.Errorf("%w: insert stok_opname %s: %v", domain.ErrStorageUnavailable, rec.BatchID, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("%w: commit transaction: %v", domain.ErrStorageUnavailable, err)
	}
	return nil
}
