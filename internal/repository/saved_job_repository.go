package repository

import (
	"context"

	"career-compass/internal/database"
	"career-compass/internal/domain/job"
)

type SavedJobRepository interface {
	Exists(ctx context.Context, email, url string) (bool, error)
	Insert(ctx context.Context, sj job.SavedJob) error
	ListRecentByUser(ctx context.Context, email string, limit int) ([]job.SavedJob, error)
}

type SQLSavedJobRepository struct {
	db database.DB
}

func NewSQLSavedJobRepository(db database.DB) *SQLSavedJobRepository {
	return &SQLSavedJobRepository{db: db}
}

func (r *SQLSavedJobRepository) Exists(ctx context.Context, email, url string) (bool, error) {
	var n int
	row := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM saved_jobs WHERE user_email = $1 AND url = $2`,
		email, url,
	)
	if err := row.Scan(&n); err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *SQLSavedJobRepository) Insert(ctx context.Context, sj job.SavedJob) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO saved_jobs (user_email, title, company, location, url, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		sj.UserEmail, sj.Title, sj.Company, sj.Location, sj.URL, formatTime(sj.CreatedAt),
	)
	return err
}

func (r *SQLSavedJobRepository) ListRecentByUser(ctx context.Context, email string, limit int) ([]job.SavedJob, error) {
	if limit <= 0 {
		limit = 5
	}

	rows, err := r.db.Query(ctx,
		`SELECT id, COALESCE(user_email, ''), COALESCE(title, ''), COALESCE(company, ''), COALESCE(location, ''), COALESCE(url, ''), COALESCE(created_at, '')
		 FROM saved_jobs WHERE user_email = $1 ORDER BY id DESC LIMIT $2`,
		email, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]job.SavedJob, 0)
	for rows.Next() {
		var sj job.SavedJob
		var createdAt string
		if err := rows.Scan(&sj.ID, &sj.UserEmail, &sj.Title, &sj.Company, &sj.Location, &sj.URL, &createdAt); err != nil {
			return nil, err
		}
		sj.CreatedAt = parseTime(createdAt)
		out = append(out, sj)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
