package repository

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"career-compass/internal/config"
	"career-compass/internal/database"
	"career-compass/internal/database/schema"
	"career-compass/internal/database/sqlite"
	"career-compass/internal/domain/job"
	"career-compass/internal/domain/report"
	"career-compass/internal/domain/user"
)

func openTestDB(t *testing.T) database.DB {
	t.Helper()

	cfg := config.DatabaseConfig{
		Driver:     config.DriverSQLite,
		SQLitePath: filepath.Join(t.TempDir(), "test.db"),
	}
	db, err := sqlite.Connect(context.Background(), cfg)
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	if err := schema.EnsureTables(context.Background(), db); err != nil {
		t.Fatalf("ensure tables: %v", err)
	}
	return db
}

func TestUserRepositoryRoundTrip(t *testing.T) {
	db := openTestDB(t)
	repo := NewSQLUserRepository(db)
	ctx := context.Background()

	if _, err := repo.GetByEmail(ctx, "nobody@example.com"); !errors.Is(err, user.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	lastLogin := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	u := user.User{
		Email:      "ana@example.com",
		Name:       "Ana",
		Picture:    "https://example.com/ana.png",
		Role:       user.DefaultRole,
		LastLogin:  lastLogin,
		LoginCount: 1,
	}
	if err := repo.Create(ctx, u); err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := repo.GetByEmail(ctx, "ana@example.com")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Name != "Ana" || got.LoginCount != 1 || !got.LastLogin.Equal(lastLogin) {
		t.Fatalf("unexpected user %+v", got)
	}

	if err := repo.RecordLogin(ctx, u.Email, "https://example.com/new.png", 2, lastLogin.Add(time.Hour)); err != nil {
		t.Fatalf("record login: %v", err)
	}
	got, err = repo.GetByEmail(ctx, u.Email)
	if err != nil {
		t.Fatalf("get after login: %v", err)
	}
	if got.LoginCount != 2 || got.Picture != "https://example.com/new.png" {
		t.Fatalf("login not recorded: %+v", got)
	}

	n, err := repo.Count(ctx)
	if err != nil || n != 1 {
		t.Fatalf("count = %d, err = %v", n, err)
	}

	users, err := repo.ListByLastLogin(ctx)
	if err != nil || len(users) != 1 {
		t.Fatalf("list = %v, err = %v", users, err)
	}
}

func TestReportRepositoryRoundTrip(t *testing.T) {
	db := openTestDB(t)
	repo := NewSQLReportRepository(db)
	ctx := context.Background()

	if _, err := repo.GetByID(ctx, 99); !errors.Is(err, report.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	createdAt := time.Date(2026, 8, 30, 9, 30, 0, 0, time.UTC)
	for i := 0; i < 4; i++ {
		rep := report.Report{
			UserEmail: "ana@example.com",
			Role:      "Backend Engineer",
			Content:   "<p>analysis</p>",
			CreatedAt: createdAt.Add(time.Duration(i) * time.Minute),
		}
		if err := repo.Insert(ctx, rep); err != nil {
			t.Fatalf("insert %d: %v", i, err)
		}
	}

	got, err := repo.GetByID(ctx, 1)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.UserEmail != "ana@example.com" || !got.CreatedAt.Equal(createdAt) {
		t.Fatalf("unexpected report %+v", got)
	}

	recent, err := repo.ListRecentByUser(ctx, "ana@example.com", 3)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(recent) != 3 {
		t.Fatalf("len = %d, want 3", len(recent))
	}
	if recent[0].ID != 4 {
		t.Fatalf("newest first, got id %d", recent[0].ID)
	}

	if n, err := repo.Count(ctx); err != nil || n != 4 {
		t.Fatalf("count = %d, err = %v", n, err)
	}

	other, err := repo.ListRecentByUser(ctx, "other@example.com", 3)
	if err != nil || len(other) != 0 {
		t.Fatalf("other user sees %d reports, err = %v", len(other), err)
	}
}

func TestSavedJobRepositoryRoundTrip(t *testing.T) {
	db := openTestDB(t)
	repo := NewSQLSavedJobRepository(db)
	ctx := context.Background()

	exists, err := repo.Exists(ctx, "ana@example.com", "https://jobs.example.com/1")
	if err != nil || exists {
		t.Fatalf("exists = %v, err = %v", exists, err)
	}

	sj := job.SavedJob{
		UserEmail: "ana@example.com",
		Title:     "Backend Engineer",
		Company:   "Acme",
		Location:  "Bengaluru",
		URL:       "https://jobs.example.com/1",
		CreatedAt: time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC),
	}
	if err := repo.Insert(ctx, sj); err != nil {
		t.Fatalf("insert: %v", err)
	}

	exists, err = repo.Exists(ctx, sj.UserEmail, sj.URL)
	if err != nil || !exists {
		t.Fatalf("exists after insert = %v, err = %v", exists, err)
	}

	// Same URL for a different user is a separate bookmark.
	sj.UserEmail = "ben@example.com"
	if err := repo.Insert(ctx, sj); err != nil {
		t.Fatalf("insert other user: %v", err)
	}

	jobs, err := repo.ListRecentByUser(ctx, "ana@example.com", 5)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(jobs) != 1 || jobs[0].Company != "Acme" {
		t.Fatalf("unexpected jobs %+v", jobs)
	}
}

func TestJobCacheRepositoryUpsertReplaces(t *testing.T) {
	db := openTestDB(t)
	repo := NewSQLJobCacheRepository(db)
	ctx := context.Background()

	if _, found, err := repo.Get(ctx, "developer_bengaluru_in"); err != nil || found {
		t.Fatalf("found = %v, err = %v", found, err)
	}

	first := time.Date(2026, 8, 29, 8, 0, 0, 0, time.UTC)
	if err := repo.Upsert(ctx, "developer_bengaluru_in", []byte(`[{"title":"a"}]`), first); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	entry, found, err := repo.Get(ctx, "developer_bengaluru_in")
	if err != nil || !found {
		t.Fatalf("get: found = %v, err = %v", found, err)
	}
	if string(entry.Payload) != `[{"title":"a"}]` || !entry.FetchedAt.Equal(first) {
		t.Fatalf("unexpected entry %+v", entry)
	}

	second := first.Add(25 * time.Hour)
	if err := repo.Upsert(ctx, "developer_bengaluru_in", []byte(`[{"title":"b"}]`), second); err != nil {
		t.Fatalf("second upsert: %v", err)
	}

	entry, found, err = repo.Get(ctx, "developer_bengaluru_in")
	if err != nil || !found {
		t.Fatalf("get after replace: found = %v, err = %v", found, err)
	}
	if string(entry.Payload) != `[{"title":"b"}]` || !entry.FetchedAt.Equal(second) {
		t.Fatalf("row not replaced: %+v", entry)
	}

	var n int
	if err := db.QueryRow(ctx, `SELECT COUNT(*) FROM job_cache`).Scan(&n); err != nil || n != 1 {
		t.Fatalf("rows = %d, err = %v", n, err)
	}
}
