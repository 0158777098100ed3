package excel_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/amalindouser/stok-opname/internal/domain"
	"github.com/amalindouser/stok-opname/internal/infrastructure/excel"
)

// writeCatalogFile builds a spreadsheet in the head-office export shape:
// header row, then kode | nama | stok | satuan | departemen.
func writeCatalogFile(t *testing.T, rows [][]any) string {
	t.Helper()

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(0)
	header := []any{"kode", "nama", "stok", "satuan", "departemen"}
	require.NoError(t, f.SetSheetRow(sheet, "A1", &header))
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}

	path := filepath.Join(t.TempDir(), "katalog.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestLoad_IndexesBothCodeForms(t *testing.T) {
	path := writeCatalogFile(t, [][]any{
		{"22100001.0", "Beras Premium 5kg", "10", "SAK", "SEMBAKO"},
		{"33200002", "Minyak Goreng 1L", "4.5", "BTL", "MINYAK"},
	})

	source, err := excel.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2, source.Len())

	for _, code := range []string{"22100001", "22100001.0"} {
		item, err := source.FindByCode(context.Background(), code)
		require.NoError(t, err, "lookup %q", code)
		require.NotNil(t, item)
		assert.Equal(t, "22100001", item.Code, "indexed code must be canonical")
		assert.True(t, item.RecordedStock.Equal(decimal.NewFromInt(10)))
	}
}

func TestFindByCode_Miss(t *testing.T) {
	path := writeCatalogFile(t, [][]any{
		{"22100001", "Beras Premium 5kg", "10", "SAK", "SEMBAKO"},
	})
	source, err := excel.Load(path)
	require.NoError(t, err)

	item, err := source.FindByCode(context.Background(), "99999999")
	require.NoError(t, err)
	assert.Nil(t, item)
}

// Duplicate codes in the export resolve deterministically to the first row.
func TestLoad_FirstOccurrenceWins(t *testing.T) {
	path := writeCatalogFile(t, [][]any{
		{"22100001", "Beras Premium 5kg", "10", "SAK", "SEMBAKO"},
		{"22100001.0", "Beras Lama", "3", "SAK", "SEMBAKO"},
	})
	source, err := excel.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 1, source.Len())

	item, err := source.FindByCode(context.Background(), "22100001")
	require.NoError(t, err)
	require.NotNil(t, item)
	assert.Equal(t, "Beras Premium 5kg", item.Name)
}

func TestLoad_BadQuantity(t *testing.T) {
	path := writeCatalogFile(t, [][]any{
		{"22100001", "Beras Premium 5kg", "sepuluh", "SAK", "SEMBAKO"},
	})

	_, err := excel.Load(path)
	require.ErrorIs(t, err, domain.ErrStorageUnavailable)
}

func TestSwap_ReplacesActiveCatalog(t *testing.T) {
	first := writeCatalogFile(t, [][]any{
		{"22100001", "Beras Premium 5kg", "10", "SAK", "SEMBAKO"},
	})
	second := writeCatalogFile(t, [][]any{
		{"44300003", "Gula Pasir 1kg", "25", "PAK", "SEMBAKO"},
	})

	source, err := excel.Load(first)
	require.NoError(t, err)
	require.NoError(t, source.Swap(second))
	assert.Equal(t, second, source.Path())

	item, err := source.FindByCode(context.Background(), "22100001")
	require.NoError(t, err)
	assert.Nil(t, item, "old snapshot must be gone after swap")

	item, err = source.FindByCode(context.Background(), "44300003")
	require.NoError(t, err)
	require.NotNil(t, item)
}

// A failed swap keeps the previous snapshot serving lookups.
func TestSwap_FailureKeepsOldSnapshot(t *testing.T) {
	good := writeCatalogFile(t, [][]any{
		{"22100001", "Beras Premium 5kg", "10", "SAK", "SEMBAKO"},
	})
	source, err := excel.Load(good)
	require.NoError(t, err)

	err = source.Swap(filepath.Join(t.TempDir(), "hilang.xlsx"))
	require.ErrorIs(t, err, domain.ErrStorageUnavailable)
	assert.Equal(t, good, source.Path())

	item, err := source.FindByCode(context.Background(), "22100001")
	require.NoError(t, err)
	require.NotNil(t, item)
}
