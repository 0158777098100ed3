package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// EnsureSchema creates the stok_opname table if it does not exist yet.
// tb_barang is not created here: the catalog is imported by the master-data
// pipeline and this service only reads it.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	const ddl = `
		CREATE TABLE IF NOT EXISTS stok_opname (
			id          uuid PRIMARY KEY,
			kode_opname text NOT NULL,
			kode        text NOT NULL,
			nama        text NOT NULL,
			stok_awal   numeric NOT NULL,
			stok_real   numeric NOT NULL,
			selisih     numeric NOT NULL,
			status      text NOT NULL,
			jenis       text NOT NULL,
			departemen  text NOT NULL,
			tanggal     date NOT NULL
		)`
	if _, err := pool.Exec(ctx, ddl); err != nil {
		return fmt.Errorf("create stok_opname: %w", err)
	}
	return nil
}
