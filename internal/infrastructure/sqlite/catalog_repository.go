package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/amalindouser/stok-opname/internal/domain"
	"github.com/amalindouser/stok-opname/internal/domain/entity"
	"github.com/amalindouser/stok-opname/internal/domain/opname"
	"github.com/amalindouser/stok-opname/internal/domain/repository"
)

var _ repository.CatalogRepository = (*CatalogRepo)(nil)

// CatalogRepo reads the imported catalog from the database file.
type CatalogRepo struct {
	s *Storage
}

// NewCatalogRepository builds the adapter.
func NewCatalogRepository(s *Storage) *CatalogRepo {
	return &CatalogRepo{s: s}
}

// FindByCode returns the single item matching either code form, first row
// by code order when the import produced duplicates, or (nil, nil).
func (r *CatalogRepo) FindByCode(ctx context.Context, code string) (*entity.CatalogItem, error) {
	exact, suffixed := opname.CodeAlternates(code)
	const query = `
		SELECT kode, nama, stok, satuan, departemen
		FROM tb_barang
		WHERE kode = ? OR kode = ?
		ORDER BY kode
		LIMIT 1`

	var item entity.CatalogItem
	var stok string
	err := r.s.db.QueryRowContext(ctx, query, exact, suffixed).Scan(
		&item.Code, &item.Name, &stok, &item.Unit, &item.Department,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: query tb_barang: %v", domain.ErrStorageUnavailable, err)
	}

	qty, err := decimal.NewFromString(stok)
	if err != nil {
		return nil, fmt.Errorf("%w: stok %q untuk kode %s: %v", domain.ErrStorageUnavailable, stok, item.Code, err)
	}

	item.Code = opname.StripSuffix(item.Code)
	item.RecordedStock = qty
	return &item, nil
}
