// Package excel is the file-backed catalog variant: the master catalog is a
// spreadsheet exported from the head-office system and placed next to the
// service (or uploaded at runtime). The whole sheet is indexed in memory,
// so lookups never touch disk.
package excel

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/amalindouser/stok-opname/internal/domain"
	"github.com/amalindouser/stok-opname/internal/domain/entity"
	"github.com/amalindouser/stok-opname/internal/domain/opname"
	"github.com/amalindouser/stok-opname/internal/domain/repository"
)

var _ repository.CatalogRepository = (*CatalogSource)(nil)

// Expected column order on the first sheet, after a header row.
// kode | nama | stok | satuan | departemen
const minColumns = 5

// CatalogSource serves catalog lookups from an indexed spreadsheet and
// supports swapping the active file at runtime. The swap is atomic: lookups
// see either the old snapshot or the new one, never a half-loaded state.
type CatalogSource struct {
	mu    sync.RWMutex
	path  string
	index map[string]*entity.CatalogItem // keyed by canonical code
}

// Load reads and indexes the spreadsheet at path.
func Load(path string) (*CatalogSource, error) {
	index, err := buildIndex(path)
	if err != nil {
		return nil, err
	}
	return &CatalogSource{path: path, index: index}, nil
}

// Swap replaces the active catalog with the spreadsheet at path. On error
// the previous snapshot stays active.
func (s *CatalogSource) Swap(path string) error {
	index, err := buildIndex(path)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.path = path
	s.index = index
	s.mu.Unlock()
	return nil
}

// Path returns the file backing the active snapshot.
func (s *CatalogSource) Path() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.path
}

// Len returns the number of indexed items.
func (s *CatalogSource) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.index)
}

// FindByCode returns the item for a canonical code or (nil, nil). The index
// is keyed canonically, so float-suffixed source rows and raw scans meet on
// the same key.
func (s *CatalogSource) FindByCode(_ context.Context, code string) (*entity.CatalogItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, ok := s.index[opname.StripSuffix(code)]
	if !ok {
		return nil, nil
	}
	cp := *item
	return &cp, nil
}

func buildIndex(path string) (map[string]*entity.CatalogItem, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: buka file katalog: %v", domain.ErrStorageUnavailable, err)
	}
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("%w: baca sheet %s: %v", domain.ErrStorageUnavailable, sheet, err)
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("%w: file katalog %s kosong", domain.ErrStorageUnavailable, path)
	}

	index := make(map[string]*entity.CatalogItem, len(rows)-1)
	for i, row := range rows[1:] { // skip header
		if len(row) < minColumns {
			continue
		}
		code := opname.StripSuffix(strings.TrimSpace(row[0]))
		if code == "" {
			continue
		}
		stock, err := decimal.NewFromString(strings.TrimSpace(row[2]))
		if err != nil {
			return nil, fmt.Errorf("%w: stok %q pada baris %d: %v", domain.ErrStorageUnavailable, row[2], i+2, err)
		}
		// One item per canonical code; the first occurrence wins, matching
		// the deterministic first-row choice of the database backends.
		if _, exists := index[code]; exists {
			continue
		}
		index[code] = &entity.CatalogItem{
			Code:          code,
			Name:          strings.TrimSpace(row[1]),
			RecordedStock: stock,
			Unit:          strings.TrimSpace(row[3]),
			Department:    strings.TrimSpace(row[4]),
		}
	}
	if len(index) == 0 {
		return nil, fmt.Errorf("%w: file katalog %s tidak memuat barang", domain.ErrStorageUnavailable, path)
	}
	return index, nil
}
