package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"career-compass/internal/database"

	"github.com/jackc/pgx/v5"
)

// CachedSearch is one job_cache row: the serialized result set for a search
// key plus the time of the last successful refresh. Staleness is judged by
// the caller at read time; rows are only ever replaced, never deleted, short
// of a full reset.
type CachedSearch struct {
	SearchKey string
	Payload   []byte
	FetchedAt time.Time
}

type JobCacheRepository interface {
	Get(ctx context.Context, searchKey string) (CachedSearch, bool, error)
	Upsert(ctx context.Context, searchKey string, payload []byte, fetchedAt time.Time) error
}

type SQLJobCacheRepository struct {
	db database.DB
}

func NewSQLJobCacheRepository(db database.DB) *SQLJobCacheRepository {
	return &SQLJobCacheRepository{db: db}
}

func (r *SQLJobCacheRepository) Get(ctx context.Context, searchKey string) (CachedSearch, bool, error) {
	row := r.db.QueryRow(ctx,
		`SELECT search_key, COALESCE(json_data, ''), COALESCE(updated_at, '') FROM job_cache WHERE search_key = $1`,
		searchKey,
	)

	var entry CachedSearch
	var payload, updatedAt string
	if err := row.Scan(&entry.SearchKey, &payload, &updatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows) {
			return CachedSearch{}, false, nil
		}
		return CachedSearch{}, false, err
	}
	entry.Payload = []byte(payload)
	entry.FetchedAt = parseTime(updatedAt)
	return entry, true, nil
}

// Upsert replaces the row for searchKey; at most one row per key ever exists.
// ON CONFLICT works unchanged on both backends.
func (r *SQLJobCacheRepository) Upsert(ctx context.Context, searchKey string, payload []byte, fetchedAt time.Time) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO job_cache (search_key, json_data, updated_at) VALUES ($1, $2, $3)
		 ON CONFLICT (search_key) DO UPDATE SET json_data = excluded.json_data, updated_at = excluded.updated_at`,
		searchKey, string(payload), formatTime(fetchedAt),
	)
	return err
}
