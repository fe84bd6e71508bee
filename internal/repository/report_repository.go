package repository

import (
	"context"
	"database/sql"
	"errors"

	"career-compass/internal/database"
	"career-compass/internal/domain/report"

	"github.com/jackc/pgx/v5"
)

type ReportRepository interface {
	Insert(ctx context.Context, rep report.Report) error
	GetByID(ctx context.Context, id int64) (report.Report, error)
	ListRecentByUser(ctx context.Context, email string, limit int) ([]report.Report, error)
	Count(ctx context.Context) (int, error)
}

type SQLReportRepository struct {
	db database.DB
}

func NewSQLReportRepository(db database.DB) *SQLReportRepository {
	return &SQLReportRepository{db: db}
}

func (r *SQLReportRepository) Insert(ctx context.Context, rep report.Report) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO reports (user_email, role, content, created_at) VALUES ($1, $2, $3, $4)`,
		rep.UserEmail, rep.Role, rep.Content, formatTime(rep.CreatedAt),
	)
	return err
}

func (r *SQLReportRepository) GetByID(ctx context.Context, id int64) (report.Report, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, COALESCE(user_email, ''), COALESCE(role, ''), COALESCE(content, ''), COALESCE(created_at, '')
		 FROM reports WHERE id = $1`,
		id,
	)

	var rep report.Report
	var createdAt string
	if err := row.Scan(&rep.ID, &rep.UserEmail, &rep.Role, &rep.Content, &createdAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows) {
			return report.Report{}, report.ErrNotFound
		}
		return report.Report{}, err
	}
	rep.CreatedAt = parseTime(createdAt)
	return rep, nil
}

func (r *SQLReportRepository) ListRecentByUser(ctx context.Context, email string, limit int) ([]report.Report, error) {
	if limit <= 0 {
		limit = 3
	}

	rows, err := r.db.Query(ctx,
		`SELECT id, COALESCE(user_email, ''), COALESCE(role, ''), COALESCE(content, ''), COALESCE(created_at, '')
		 FROM reports WHERE user_email = $1 ORDER BY id DESC LIMIT $2`,
		email, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]report.Report, 0)
	for rows.Next() {
		var rep report.Report
		var createdAt string
		if err := rows.Scan(&rep.ID, &rep.UserEmail, &rep.Role, &rep.Content, &createdAt); err != nil {
			return nil, err
		}
		rep.CreatedAt = parseTime(createdAt)
		out = append(out, rep)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *SQLReportRepository) Count(ctx context.Context) (int, error) {
	var n int
	row := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM reports`)
	if err := row.Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}
