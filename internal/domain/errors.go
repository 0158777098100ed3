package domain

import "errors"

// Domain errors (no external dependencies). Handlers map these to HTTP
// statuses; callers distinguish them with errors.Is.
var (
	// Validation: caller-correctable, nothing was written.
	ErrEmptyCode         = errors.New("kode barang wajib diisi")
	ErrEmptyBatch        = errors.New("data opname kosong")
	ErrEmptyReport       = errors.New("data laporan kosong")
	ErrMalformedQuantity = errors.New("jumlah stok tidak valid")

	// A well-formed code that simply has no catalog row.
	ErrItemNotFound = errors.New("barang tidak ditemukan di katalog")

	// Infrastructure: catalog or persistence sink unreachable.
	ErrStorageUnavailable = errors.New("penyimpanan tidak tersedia")

	// The PDF collaborator failed; no file was produced.
	ErrRenderFailure = errors.New("gagal membuat dokumen laporan")

	// Catalog swap requested but the active source is not file-backed.
	ErrCatalogSourceFixed = errors.New("sumber katalog aktif tidak dapat diganti")
)
