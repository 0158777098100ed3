package opname

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/amalindouser/stok-opname/internal/domain"
	"github.com/amalindouser/stok-opname/internal/domain/entity"
)

const batchIDPrefix = "OPN"

// BatchIDGenerator issues opname batch identifiers with second resolution
// (OPN20240501100000). Identifiers issued within the same second, or after
// the wall clock stepped backwards, get a monotonic suffix, so every entry
// of a submission, and entries of concurrent submissions in the same
// process, carry distinct IDs.
type BatchIDGenerator struct {
	mu        sync.Mutex
	lastStamp string
	seq       int
}

// NewBatchIDGenerator builds the generator. One instance per process is
// enough; it is safe for concurrent use.
func NewBatchIDGenerator() *BatchIDGenerator {
	return &BatchIDGenerator{}
}

// Next issues the identifier for a record created at t.
func (g *BatchIDGenerator) Next(t time.Time) string {
	g.mu.Lock()
	defer g.mu.Unlock()

	stamp := t.Format("20060102150405")
	// A non-forward stamp (same second, or a wall clock stepped back by an
	// NTP correction) must never resurrect an already-issued bare id; keep
	// suffixing the newest stamp instead.
	if stamp <= g.lastStamp {
		g.seq++
		return fmt.Sprintf("%s%s-%02d", batchIDPrefix, g.lastStamp, g.seq)
	}
	g.lastStamp = stamp
	g.seq = 0
	return batchIDPrefix + stamp
}

// BatchBuilder turns submitted reconciliation entries into persistable
// records: it normalizes codes, coerces quantities, computes variance and
// stamps identity and audit fields.
type BatchBuilder struct {
	ids *BatchIDGenerator
}

// NewBatchBuilder builds the batch builder around an ID generator.
func NewBatchBuilder(ids *BatchIDGenerator) *BatchBuilder {
	return &BatchBuilder{ids: ids}
}

// Build produces one record per entry, preserving the operator's scan order.
// An empty submission yields ErrEmptyBatch. A quantity that does not parse
// as a decimal fails the whole batch with ErrMalformedQuantity: the caller
// observes either a full record set or nothing.
func (b *BatchBuilder) Build(entries []entity.ReconciliationEntry, submittedAt time.Time) ([]*entity.ReconciliationRecord, error) {
	if len(entries) == 0 {
		return nil, domain.ErrEmptyBatch
	}

	y, m, d := submittedAt.Date()
	date := time.Date(y, m, d, 0, 0, 0, 0, submittedAt.Location())
	records := make([]*entity.ReconciliationRecord, 0, len(entries))
	for _, e := range entries {
		// Entries may have been populated from a lookup result or re-typed;
		// strip the float suffix again so the stored code is canonical.
		code := StripSuffix(strings.TrimSpace(e.Code))

		recorded, err := ParseQuantity(e.RecordedStock)
		if err != nil {
			return nil, fmt.Errorf("%w: on_hand %q untuk kode %s", domain.ErrMalformedQuantity, e.RecordedStock, code)
		}
		counted, err := ParseQuantity(e.CountedStock)
		if err != nil {
			return nil, fmt.Errorf("%w: fisik %q untuk kode %s", domain.ErrMalformedQuantity, e.CountedStock, code)
		}

		records = append(records, &entity.ReconciliationRecord{
			ID:            uuid.New().String(),
			BatchID:       b.ids.Next(submittedAt),
			Code:          code,
			Name:          e.Name,
			RecordedStock: recorded,
			CountedStock:  counted,
			Variance:      Variance(counted, recorded),
			Status:        entity.StatusUnverified,
			Kind:          entity.KindStockOpname,
			Department:    e.Department,
			Date:          date,
		})
	}
	return records, nil
}

// ParseQuantity coerces a client-supplied quantity to a decimal. An empty
// value counts as zero, matching how the original intake form omits
// untouched fields.
func ParseQuantity(raw string) (decimal.Decimal, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(s)
}

// Variance is counted minus recorded: positive = surplus, negative =
// shortage. Both the persisted record and the report row go through this
// one function so the two never drift.
func Variance(counted, recorded decimal.Decimal) decimal.Decimal {
	return counted.Sub(recorded)
}
