package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"career-compass/internal/domain/job"
	"career-compass/internal/repository"
)

// ErrAlreadySaved reports a bookmark that already exists; the caller treats
// it as success with no new row.
var ErrAlreadySaved = errors.New("job already saved")

type SaveJobInput struct {
	Title    string
	Company  string
	Location string
	URL      string
}

type SavedJobUsecase interface {
	Save(ctx context.Context, email string, in SaveJobInput) error
	Recent(ctx context.Context, email string, limit int) ([]job.SavedJob, error)
}

type SavedJobs struct {
	repo repository.SavedJobRepository

	now func() time.Time
}

func NewSavedJobUsecase(repo repository.SavedJobRepository) *SavedJobs {
	return &SavedJobs{repo: repo, now: time.Now}
}

func (u *SavedJobs) Save(ctx context.Context, email string, in SaveJobInput) error {
	email = strings.TrimSpace(email)
	url := strings.TrimSpace(in.URL)
	if email == "" || url == "" {
		return ErrInvalidInput
	}

	exists, err := u.repo.Exists(ctx, email, url)
	if err != nil {
		return ErrInternal
	}
	if exists {
		return ErrAlreadySaved
	}

	sj := job.SavedJob{
		UserEmail: email,
		Title:     in.Title,
		Company:   in.Company,
		Location:  in.Location,
		URL:       url,
		CreatedAt: u.now(),
	}
	if err := u.repo.Insert(ctx, sj); err != nil {
		return ErrInternal
	}
	return nil
}

func (u *SavedJobs) Recent(ctx context.Context, email string, limit int) ([]job.SavedJob, error) {
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
