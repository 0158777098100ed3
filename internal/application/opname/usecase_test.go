package opname_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amalindouser/stok-opname/internal/application/dto"
	appopname "github.com/amalindouser/stok-opname/internal/application/opname"
	"github.com/amalindouser/stok-opname/internal/domain"
	"github.com/amalindouser/stok-opname/internal/domain/entity"
	domopname "github.com/amalindouser/stok-opname/internal/domain/opname"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes for the storage ports
// ──────────────────────────────────────────────────────────────────────────────

// fakeCatalog indexes items by canonical code, like every real source does.
type fakeCatalog struct {
	items map[string]*entity.CatalogItem
	err   error
}

func (f *fakeCatalog) FindByCode(_ context.Context, code string) (*entity.CatalogItem, error) {
	if f.err != nil {
		return nil, f.err
	}
	item, ok := f.items[domopname.StripSuffix(code)]
	if !ok {
		return nil, nil
	}
	return item, nil
}

type fakeOpnameStore struct {
	appended []*entity.ReconciliationRecord
	err      error
}

func (f *fakeOpnameStore) AppendRecords(_ context.Context, records []*entity.ReconciliationRecord) error {
	if f.err != nil {
		return f.err
	}
	f.appended = append(f.appended, records...)
	return nil
}

func catalogWithRice() *fakeCatalog {
	return &fakeCatalog{items: map[string]*entity.CatalogItem{
		"22100001": {
			Code:          "22100001",
			Name:          "Beras Premium 5kg",
			RecordedStock: decimal.NewFromInt(10),
			Unit:          "SAK",
			Department:    "SEMBAKO",
		},
	}}
}

// ──────────────────────────────────────────────────────────────────────────────
// Scan
// ──────────────────────────────────────────────────────────────────────────────

// Both representations of a stored code must resolve to the same item.
func TestScan_BothCodeForms(t *testing.T) {
	uc := appopname.NewScanUseCase(catalogWithRice())

	for _, raw := range []string{"22100001", "22100001.0", "  22100001  "} {
		out, err := uc.Scan(context.Background(), raw)
		require.NoError(t, err, "scan %q", raw)
		assert.Equal(t, "22100001", out.Kode, "returned code must be canonical for input %q", raw)
		assert.Equal(t, "Beras Premium 5kg", out.Nama)
		assert.True(t, out.OnHand.Equal(decimal.NewFromInt(10)))
		assert.Equal(t, "SAK", out.Satuan)
		assert.Equal(t, "SEMBAKO", out.Departemen)
	}
}

func TestScan_EmptyCode(t *testing.T) {
	uc := appopname.NewScanUseCase(catalogWithRice())

	for _, raw := range []string{"", "   "} {
		_, err := uc.Scan(context.Background(), raw)
		require.ErrorIs(t, err, domain.ErrEmptyCode, "input %q", raw)
		assert.NotErrorIs(t, err, domain.ErrItemNotFound)
	}
}

func TestScan_UnknownCode(t *testing.T) {
	uc := appopname.NewScanUseCase(catalogWithRice())

	_, err := uc.Scan(context.Background(), "99999999")
	require.ErrorIs(t, err, domain.ErrItemNotFound)
	assert.NotErrorIs(t, err, domain.ErrStorageUnavailable)
}

func TestScan_StorageFailurePropagates(t *testing.T) {
	uc := appopname.NewScanUseCase(&fakeCatalog{err: domain.ErrStorageUnavailable})

	_, err := uc.Scan(context.Background(), "22100001")
	require.ErrorIs(t, err, domain.ErrStorageUnavailable)
}

// ──────────────────────────────────────────────────────────────────────────────
// Submit
// ──────────────────────────────────────────────────────────────────────────────

func newSubmitUC(store *fakeOpnameStore) *appopname.SubmitBatchUseCase {
	builder := domopname.NewBatchBuilder(domopname.NewBatchIDGenerator())
	return appopname.NewSubmitBatchUseCase(builder, store)
}

func TestSubmit_PersistsWholeBatch(t *testing.T) {
	store := &fakeOpnameStore{}
	uc := newSubmitUC(store)
	submittedAt := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	out, err := uc.Submit(context.Background(), dto.SaveOpnameRequest{Items: []dto.OpnameItem{
		{Kode: "22100001", Nama: "Beras Premium 5kg", OnHand: "10", Fisik: "7", Departemen: "A"},
		{Kode: "33200002.0", Nama: "Minyak Goreng 1L", OnHand: "4", Fisik: "9", Departemen: "B"},
	}}, submittedAt)

	require.NoError(t, err)
	assert.True(t, out.Success)
	assert.Equal(t, 2, out.Saved)
	require.Len(t, store.appended, 2)
	assert.Equal(t, "22100001", store.appended[0].Code)
	assert.Equal(t, "33200002", store.appended[1].Code, "stored code must have the float suffix stripped")
	assert.NotEqual(t, store.appended[0].BatchID, store.appended[1].BatchID)
}

func TestSubmit_EmptyBatchWritesNothing(t *testing.T) {
	store := &fakeOpnameStore{}
	uc := newSubmitUC(store)

	_, err := uc.Submit(context.Background(), dto.SaveOpnameRequest{}, time.Now())
	require.ErrorIs(t, err, domain.ErrEmptyBatch)
	assert.Empty(t, store.appended)
}

func TestSubmit_MalformedQuantityWritesNothing(t *testing.T) {
	store := &fakeOpnameStore{}
	uc := newSubmitUC(store)

	_, err := uc.Submit(context.Background(), dto.SaveOpnameRequest{Items: []dto.OpnameItem{
		{Kode: "A", OnHand: "1", Fisik: "banyak"},
	}}, time.Now())
	require.ErrorIs(t, err, domain.ErrMalformedQuantity)
	assert.Empty(t, store.appended, "validation must happen before any side effect")
}

func TestSubmit_StorageFailurePropagates(t *testing.T) {
	store := &fakeOpnameStore{err: domain.ErrStorageUnavailable}
	uc := newSubmitUC(store)

	_, err := uc.Submit(context.Background(), dto.SaveOpnameRequest{Items: []dto.OpnameItem{
		{Kode: "A", OnHand: "1", Fisik: "1"},
	}}, time.Now())
	require.ErrorIs(t, err, domain.ErrStorageUnavailable)
}
