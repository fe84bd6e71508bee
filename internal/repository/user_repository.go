package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"career-compass/internal/database"
	"career-compass/internal/domain/user"

	"github.com/jackc/pgx/v5"
)

type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (user.User, error)
	Create(ctx context.Context, u user.User) error
	RecordLogin(ctx context.Context, email, picture string, loginCount int, lastLogin time.Time) error
	ListByLastLogin(ctx context.Context) ([]user.User, error)
	Count(ctx context.Context) (int, error)
}

type SQLUserRepository struct {
	db database.DB
}

func NewSQLUserRepository(db database.DB) *SQLUserRepository {
	return &SQLUserRepository{db: db}
}

func (r *SQLUserRepository) GetByEmail(ctx context.Context, email string) (user.User, error) {
	row := r.db.QueryRow(ctx,
		`SELECT email, COALESCE(name, ''), COALESCE(picture, ''), COALESCE(role, ''), COALESCE(last_login, ''), COALESCE(login_count, 0)
		 FROM users WHERE email = $1`,
		email,
	)
	return scanUser(row)
}

func (r *SQLUserRepository) Create(ctx context.Context, u user.User) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO users (email, name, picture, role, last_login, login_count)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		u.Email, u.Name, u.Picture, u.Role, formatTime(u.LastLogin), u.LoginCount,
	)
	return err
}

func (r *SQLUserRepository) RecordLogin(ctx context.Context, email, picture string, loginCount int, lastLogin time.Time) error {
	_, err := r.db.Exec(ctx,
		`UPDATE users SET last_login = $1, login_count = $2, picture = $3 WHERE email = $4`,
		formatTime(lastLogin), loginCount, picture, email,
	)
	return err
}

func (r *SQLUserRepository) ListByLastLogin(ctx context.Context) ([]user.User, error) {
	rows, err := r.db.Query(ctx,
		`SELECT email, COALESCE(name, ''), COALESCE(picture, ''), COALESCE(role, ''), COALESCE(last_login, ''), COALESCE(login_count, 0)
		 FROM users ORDER BY last_login DESC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]user.User, 0)
	for rows.Next() {
		u, err := scanUserFromRows(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *SQLUserRepository) Count(ctx context.Context) (int, error) {
	var n int
	row := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM users`)
	if err := row.Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

func scanUser(row database.Row) (user.User, error) {
	var u user.User
	var lastLogin string
	if err := row.Scan(&u.Email, &u.Name, &u.Picture, &u.Role, &lastLogin, &u.LoginCount); err != nil {
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, user.ErrNotFound
		}
		return user.User{}, err
	}
	u.LastLogin = parseTime(lastLogin)
	return u, nil
}

func scanUserFromRows(rows database.Rows) (user.User, error) {
	var u user.User
	var lastLogin string
	if err := rows.Scan(&u.Email, &u.Name, &u.Picture, &u.Role, &lastLogin, &u.LoginCount); err != nil {
		return user.User{}, err
	}
	u.LastLogin = parseTime(lastLogin)
	return u, nil
}
