package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/amalindouser/stok-opname/internal/domain"
	"github.com/amalindouser/stok-opname/internal/domain/entity"
	"github.com/amalindouser/stok-opname/internal/domain/opname"
	"github.com/amalindouser/stok-opname/internal/domain/repository"
)

var _ repository.CatalogRepository = (*CatalogRepo)(nil)

// CatalogRepo reads the master catalog from tb_barang. The catalog was
// imported from spreadsheets where numeric codes sometimes became float
// text, so the lookup compares the code column as text against both forms.
type CatalogRepo struct {
	q Querier
}

// NewCatalogRepository builds the adapter. Pass a pool or a tx (Querier).
func NewCatalogRepository(q Querier) *CatalogRepo {
	return &CatalogRepo{q: q}
}

// FindByCode returns the single item for a canonical code, or (nil, nil)
// when no row matches. When the catalog holds duplicate rows for a code the
// first by code order is chosen deterministically.
func (r *CatalogRepo) FindByCode(ctx context.Context, code string) (*entity.CatalogItem, error) {
	exact, suffixed := opname.CodeAlternates(code)
	query := `
		SELECT kode::text, nama, stok, satuan, departemen
		FROM tb_barang
		WHERE kode::text = $1 OR kode::text = $2
		ORDER BY kode::text
		LIMIT 1`

	var item entity.CatalogItem
	err := r.q.QueryRow(ctx, query, exact, suffixed).Scan(
		&item.Code, &item.Name, &item.RecordedStock, &item.Unit, &item.Department,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: query tb_barang: %v", domain.ErrStorageUnavailable, err)
	}

	item.Code = opname.StripSuffix(item.Code)
	return &item, nil
}
