package usecase

import (
	"context"
	"errors"
	"testing"

	"career-compass/internal/domain/job"
)

type memSavedJobRepo struct {
	rows []job.SavedJob
}

func (m *memSavedJobRepo) Exists(_ context.Context, email, url string) (bool, error) {
	for _, r := range m.rows {
		if r.UserEmail == email && r.URL == url {
			return true, nil
		}
	}
	return false, nil
}

func (m *memSavedJobRepo) Insert(_ context.Context, sj job.SavedJob) error {
	sj.ID = int64(len(m.rows) + 1)
	m.rows = append(m.rows, sj)
	return nil
}

func (m *memSavedJobRepo) ListRecentByUser(_ context.Context, email string, limit int) ([]job.SavedJob, error) {
	out := make([]job.SavedJob, 0)
	for i := len(m.rows) - 1; i >= 0 && len(out) < limit; i-- {
		if m.rows[i].UserEmail == email {
			out = append(out, m.rows[i])
		}
	}
	return out, nil
}

func TestSavedJobs_DuplicateSaveIsNoOp(t *testing.T) {
	repo := &memSavedJobRepo{}
	uc := NewSavedJobUsecase(repo)

	in := SaveJobInput{
		Title:    "Backend Engineer",
		Company:  "Acme",
		Location: "Bangalore",
		URL:      "https://jobs.example/1",
	}

	if err := uc.Save(context.Background(), "a@b.com", in); err != nil {
		t.Fatalf("first save: %v", err)
	}
	err := uc.Save(context.Background(), "a@b.com", in)
	if !errors.Is(err, ErrAlreadySaved) {
		t.Fatalf("expected ErrAlreadySaved, got %v", err)
	}
	if len(repo.rows) != 1 {
		t.Fatalf("duplicate save must not add a row, rows=%d", len(repo.rows))
	}
}

func TestSavedJobs_SameURLDifferentUser(t *testing.T) {
	repo := &memSavedJobRepo{}
	uc := NewSavedJobUsecase(repo)

	in := SaveJobInput{URL: "https://jobs.example/1", Title: "Backend Engineer"}
	if err := uc.Save(context.Background(), "a@b.com", in); err != nil {
		t.Fatalf("save user a: %v", err)
	}
	if err := uc.Save(context.Background(), "c@d.com", in); err != nil {
		t.Fatalf("save user c: %v", err)
	}
	if len(repo.rows) != 2 {
		t.Fatalf("uniqueness is per (user, url), rows=%d", len(repo.rows))
	}
}

func TestSavedJobs_SaveRejectsEmptyURL(t *testing.T) {
	uc := NewSavedJobUsecase(&memSavedJobRepo{})
	err := uc.Save(context.Background(), "a@b.com", SaveJobInput{Title: "x"})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
