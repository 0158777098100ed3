package repository

import (
	"context"

	"github.com/amalindouser/stok-opname/internal/domain/entity"
)

// OpnameRepository is the append-only persistence port for reconciliation
// records. AppendRecords writes the whole batch atomically: on error no
// record of the batch is visible. No update or delete is ever required.
type OpnameRepository interface {
	AppendRecords(ctx context.Context, records []*entity.ReconciliationRecord) error
}
