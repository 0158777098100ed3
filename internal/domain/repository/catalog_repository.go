package repository

import (
	"context"

	"github.com/amalindouser/stok-opname/internal/domain/entity"
)

// CatalogRepository is the lookup port over the master catalog. code is the
// canonical (normalized) form; implementations must match rows stored either
// as the code itself or with a trailing ".0", and return the item with its
// code already canonical. Not found is (nil, nil); errors are infrastructure
// failures wrapped in domain.ErrStorageUnavailable.
type CatalogRepository interface {
	FindByCode(ctx context.Context, code string) (*entity.CatalogItem, error)
}
