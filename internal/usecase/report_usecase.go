package usecase

import (
	"context"
	"errors"
	"strings"

	"career-compass/internal/domain/report"
	"career-compass/internal/repository"
)

type ReportUsecase interface {
	Get(ctx context.Context, id int64) (report.Report, error)
	Recent(ctx context.Context, email string, limit int) ([]report.Report, error)
}

type Reports struct {
	repo repository.ReportRepository
}

func NewReportUsecase(repo repository.ReportRepository) *Reports {
	return &Reports{repo: repo}
}

func (u *Reports) Get(ctx context.Context, id int64) (report.Report, error) {
	if id <= 0 {
		return report.Report{}, report.ErrNotFound
	}
	rep, err := u.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, report.ErrNotFound) {
			return report.Report{}, report.ErrNotFound
		}
		return report.Report{}, ErrInternal
	}
	return rep, nil
}

func (u *Reports) Recent(ctx context.Context, email string, limit int) ([]report.Report, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, ErrInvalidInput
	}
	out, err := u.repo.ListRecentByUser(ctx, email, limit)
	if err != nil {
		return nil, ErrInternal
	}
	return out, nil
}
