package memory

import (
	"context"
	"sync"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Transactor implements ports.DBTransactor without a database. Begin takes
// a mutex that is released on the first Commit or Rollback, so units of
// work are serialized exactly as the row lock serializes them in postgres.
// That keeps concurrency tests against the in-memory stack meaningful.
type Transactor struct {
	mu sync.Mutex
}

// NewTransactor creates an in-memory transactor.
func NewTransactor() *Transactor {
	return &Transactor{}
}

// Begin acquires the unit-of-work lock.
func (t *Transactor) Begin(ctx context.Context) (pgx.Tx, error) {
	t.mu.Lock()
	return &memTx{release: &t.mu}, nil
}

// memTx is a pgx.Tx whose only job is releasing the unit-of-work lock once.
// The deferred rollback that follows an explicit commit must be a no-op.
type memTx struct {
	release *sync.Mutex
	once    sync.Once
}

func (t *memTx) finish() {
	t.once.Do(func() { t.release.Unlock() })
}

func (t *memTx) Commit(ctx context.Context) error   { t.finish(); return nil }
func (t *memTx) Rollback(ctx context.Context) error { t.finish(); return nil }

func (t *memTx) Begin(ctx context.Context) (pgx.Tx, error) { return t, nil }
func (t *memTx) CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error) {
	return 0, nil
}
func (t *memTx) SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults { return nil }
func (t *memTx) LargeObjects() pgx.LargeObjects                               { return pgx.LargeObjects{} }
func (t *memTx) Prepare(ctx context.Context, name, sql string) (*pgconn.StatementDescription, error) {
	return nil, nil
}
func (t *memTx) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.NewCommandTag(""), nil
}
func (t *memTx) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}
func (t *memTx) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return nil
}
func (t *memTx) Conn() *pgx.Conn { return nil }
