package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"career-compass/internal/config"
	"career-compass/internal/database"

	_ "modernc.org/sqlite"
)

type Store struct {
	db *sql.DB
}

func Connect(ctx context.Context, cfg config.DatabaseConfig) (database.DB, error) {
	path := strings.TrimSpace(cfg.SQLitePath)
	if path == "" {
		path = "database.db"
	}

	db, err := sql.Open("sqlite", path+"?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)")
	if err != nil {
		return nil, err
	}
	// A single writer connection keeps SQLITE_BUSY out of the request path.
	db.SetMaxOpenConns(1)

	pingCtx := ctx
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		pingCtx, cancel = context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
	}
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Store{db: db}, nil
}

func (s *Store) Dialect() database.Dialect {
	return database.DialectSQLite
}

func (s *Store) Ping(ctx context.Context) error {
	if s == nil || s.db == nil {
		return fmt.Errorf("nil db")
	}
	return s.db.PingContext(ctx)
}

func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *Store) Exec(ctx context.Context, query string, args ...any) (int64, error) {
	if s == nil || s.db == nil {
		return 0, fmt.Errorf("nil db")
	}
	res, err := s.db.ExecContext(ctx, Rebind(query), args...)
	if err != nil {
		return 0, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	return n, nil
}

func (s *Store) Query(ctx context.Context, query string, args ...any) (database.Rows, error) {
	if s == nil || s.db == nil {
		return nil, fmt.Errorf("nil db")
	}
	r, err := s.db.QueryContext(ctx, Rebind(query), args...)
	if err != nil {
		return nil, err
	}
	return sqlRows{rows: r}, nil
}

func (s *Store) QueryRow(ctx context.Context, query string, args ...any) database.Row {
	if s == nil || s.db == nil {
		return nilRow{}
	}
	return s.db.QueryRowContext(ctx, Rebind(query), args...)
}

func (s *Store) Begin(ctx context.Context) (database.Tx, error) {
	if s == nil || s.db == nil {
		return nil, fmt.Errorf("nil db")
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	return sqlTx{tx: tx}, nil
}

func (s *Store) SQLDB() *sql.DB {
	if s == nil {
		return nil
	}
	return s.db
}

// Rebind rewrites $N placeholders to the ?N form SQLite understands, so
// repositories can write one query per statement regardless of backend.
func Rebind(query string) string {
	if !strings.ContainsRune(query, '$') {
		return query
	}

	var b strings.Builder
	b.Grow(len(query))
	for i := 0; i < len(query); i++ {
		c := query[i]
		if c != '$' {
			b.WriteByte(c)
			continue
		}
		j := i + 1
		for j < len(query) && query[j] >= '0' && query[j] <= '9' {
			j++
		}
		if j == i+1 {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('?')
		b.WriteString(query[i+1 : j])
		i = j - 1
	}
	return b.String()
}

type sqlTx struct {
	tx *sql.Tx
}

func (t sqlTx) Exec(ctx context.Context, query string, args ...any) (int64, error) {
	res, err := t.tx.ExecContext(ctx, Rebind(query), args...)
	if err != nil {
		return 0, err
	}
	n, _ := res.RowsAffected()
	return n, nil
}

func (t sqlTx) Query(ctx context.Context, query string, args ...any) (database.Rows, error) {
	r, err := t.tx.QueryContext(ctx, Rebind(query), args...)
	if err != nil {
		return nil, err
	}
	return sqlRows{rows: r}, nil
}

func (t sqlTx) QueryRow(ctx context.Context, query string, args ...any) database.Row {
	return t.tx.QueryRowContext(ctx, Rebind(query), args...)
}

func (t sqlTx) Commit(_ context.Context) error {
	return t.tx.Commit()
}

func (t sqlTx) Rollback(_ context.Context) error {
	return t.tx.Rollback()
}

type sqlRows struct {
	rows *sql.Rows
}

func (r sqlRows) Close() {
	_ = r.rows.Close()
}

func (r sqlRows) Next() bool {
	return r.rows.Next()
}

func (r sqlRows) Scan(dest ...any) error {
	return r.rows.Scan(dest...)
}

func (r sqlRows) Err() error {
	return r.rows.Err()
}

type nilRow struct{}

func (nilRow) Scan(_ ...any) error {
	return fmt.Errorf("nil db")
}
