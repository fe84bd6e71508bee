package usecase

import (
	"context"
	"log"
	"strings"
	"time"

	"career-compass/internal/database"
	"career-compass/internal/database/schema"
	"career-compass/internal/domain/user"
	"career-compass/internal/repository"
)

const adminStatsCacheKey = "admin:overview"

type AdminOverview struct {
	Users      []user.User `json:"users"`
	TotalUsers int         `json:"total_users"`
	TotalScans int         `json:"total_scans"`
}

type AdminUsecase interface {
	Overview(ctx context.Context, callerEmail string) (AdminOverview, error)
	Reset(ctx context.Context, callerEmail string) error
}

type statsCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

type Admin struct {
	users      repository.UserRepository
	reports    repository.ReportRepository
	db         database.DB
	cache      statsCache
	adminEmail string
	logger     *log.Logger
}

func NewAdminUsecase(users repository.UserRepository, reports repository.ReportRepository, db database.DB, cache statsCache, adminEmail string, logger *log.Logger) *Admin {
	return &Admin{
		users:      users,
		reports:    reports,
		db:         db,
		cache:      cache,
		adminEmail: strings.ToLower(strings.TrimSpace(adminEmail)),
		logger:     logger,
	}
}

func (u *Admin) authorize(callerEmail string) error {
	if u.adminEmail == "" {
		return ErrForbidden
	}
	if strings.ToLower(strings.TrimSpace(callerEmail)) != u.adminEmail {
		return ErrForbidden
	}
	return nil
}

func (u *Admin) Overview(ctx context.Context, callerEmail string) (AdminOverview, error) {
	if err := u.authorize(callerEmail); err != nil {
		return AdminOverview{}, err
	}

	if u.cache != nil {
		var cached AdminOverview
		if hit, err := u.cache.GetJSON(ctx, adminStatsCacheKey, &cached); err == nil && hit {
			return cached, nil
		}
	}

	users, err := u.users.ListByLastLogin(ctx)
	if err != nil {
		return AdminOverview{}, ErrInternal
	}
	scans, err := u.reports.Count(ctx)
	if err != nil {
		return AdminOverview{}, ErrInternal
	}

	out := AdminOverview{Users: users, TotalUsers: len(users), TotalScans: scans}
	if u.cache != nil {
		_ = u.cache.SetJSON(ctx, adminStatsCacheKey, out, 60*time.Second)
	}
	return out, nil
}

// Reset drops and recreates every table. All cache entries return to ABSENT
// and every user must sign in again to get a row.
func (u *Admin) Reset(ctx context.Context, callerEmail string) error {
	if err := u.authorize(callerEmail); err != nil {
		return err
	}

	if err := schema.Reset(ctx, u.db); err != nil {
		if u.logger != nil {
			u.logger.Printf("[Admin] reset failed: %v", err)
		}
		return ErrInternal
	}
	if u.cache != nil {
		_ = u.cache.Delete(ctx, adminStatsCacheKey)
	}
	if u.logger != nil {
		u.logger.Printf("[Admin] full store reset by %s", callerEmail)
	}
	return nil
}
