package usecase

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"career-compass/internal/infrastructure/jobapi"
	"career-compass/internal/repository"
)

type memJobCache struct {
	rows    map[string]repository.CachedSearch
	upserts int
	getErr  error
}

func newMemJobCache() *memJobCache {
	return &memJobCache{rows: map[string]repository.CachedSearch{}}
}

func (m *memJobCache) Get(_ context.Context, key string) (repository.CachedSearch, bool, error) {
	if m.getErr != nil {
		return repository.CachedSearch{}, false, m.getErr
	}
	e, ok := m.rows[key]
	return e, ok, nil
}

func (m *memJobCache) Upsert(_ context.Context, key string, payload []byte, fetchedAt time.Time) error {
	m.upserts++
	m.rows[key] = repository.CachedSearch{SearchKey: key, Payload: payload, FetchedAt: fetchedAt}
	return nil
}

type fakeJobAPI struct {
	calls    int
	postings []jobapi.Posting
	err      error
}

func (f *fakeJobAPI) Search(_ context.Context, _, _ string) ([]jobapi.Posting, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.postings, nil
}

func tenPostings() []jobapi.Posting {
	out := make([]jobapi.Posting, 0, 10)
	long := bytes.Repeat([]byte("golang services at scale "), 20)
	for i := 0; i < 10; i++ {
		out = append(out, jobapi.Posting{
			Title:       fmt.Sprintf("Developer %d", i),
			Company:     "Acme",
			Location:    "Bangalore",
			Description: string(long),
			RedirectURL: fmt.Sprintf("https://jobs.example/%d", i),
			Created:     "2026-08-30T12:00:00Z",
		})
	}
	return out
}

func newTestJobSearch(cache repository.JobCacheRepository, api jobapi.Client, at time.Time) *JobSearch {
	uc := NewJobSearchUsecase(cache, api, "in", nil)
	uc.now = func() time.Time { return at }
	return uc
}

func TestJobSearch_SecondCallWithinWindowHitsCache(t *testing.T) {
	cache := newMemJobCache()
	api := &fakeJobAPI{postings: tenPostings()}
	start := time.Date(2026, 8, 31, 9, 0, 0, 0, time.UTC)
	uc := newTestJobSearch(cache, api, start)

	first, err := uc.Resolve(context.Background(), "Developer", "Bangalore")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(first) != 10 {
		t.Fatalf("expected 10 postings, got %d", len(first))
	}
	if api.calls != 1 {
		t.Fatalf("expected 1 api call, got %d", api.calls)
	}

	uc.now = func() time.Time { return start.Add(23 * time.Hour) }
	second, err := uc.Resolve(context.Background(), "Developer", "Bangalore")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if api.calls != 1 {
		t.Fatalf("cache hit must not call api, calls=%d", api.calls)
	}
	if len(second) != len(first) {
		t.Fatalf("payload changed on hit: %d vs %d", len(second), len(first))
	}
	for i := range first {
		if second[i] != first[i] {
			t.Fatalf("posting %d differs between first fetch and cache hit", i)
		}
	}
}

func TestJobSearch_StaleEntryTriggersRefetch(t *testing.T) {
	cache := newMemJobCache()
	api := &fakeJobAPI{postings: tenPostings()}
	start := time.Date(2026, 8, 31, 9, 0, 0, 0, time.UTC)
	uc := newTestJobSearch(cache, api, start)

	if _, err := uc.Resolve(context.Background(), "Developer", "Bangalore"); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	uc.now = func() time.Time { return start.Add(24*time.Hour + time.Second) }
	if _, err := uc.Resolve(context.Background(), "Developer", "Bangalore"); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if api.calls != 2 {
		t.Fatalf("stale entry must refetch, calls=%d", api.calls)
	}
}

func TestJobSearch_KeyNormalizationIsCaseInsensitive(t *testing.T) {
	cache := newMemJobCache()
	api := &fakeJobAPI{postings: tenPostings()}
	uc := newTestJobSearch(cache, api, time.Now().UTC())

	if _, err := uc.Resolve(context.Background(), "Engineer", "Delhi"); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if _, err := uc.Resolve(context.Background(), "engineer", "delhi"); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if _, err := uc.Resolve(context.Background(), "  Engineer ", " DELHI "); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if api.calls != 1 {
		t.Fatalf("case/whitespace variants must share one entry, calls=%d", api.calls)
	}
	if len(cache.rows) != 1 {
		t.Fatalf("expected 1 cache row, got %d", len(cache.rows))
	}
}

func TestJobSearch_RepeatedRefreshKeepsOneRow(t *testing.T) {
	cache := newMemJobCache()
	api := &fakeJobAPI{postings: tenPostings()}
	at := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	uc := newTestJobSearch(cache, api, at)

	for i := 0; i < 5; i++ {
		if _, err := uc.Resolve(context.Background(), "Developer", "Bangalore"); err != nil {
			t.Fatalf("refresh %d: %v", i, err)
		}
		at = at.Add(25 * time.Hour)
		now := at
		uc.now = func() time.Time { return now }
	}

	if cache.upserts != 5 {
		t.Fatalf("expected 5 upserts, got %d", cache.upserts)
	}
	if len(cache.rows) != 1 {
		t.Fatalf("upsert must keep exactly one row per key, got %d", len(cache.rows))
	}
}

func TestJobSearch_DescTruncatedWithEllipsis(t *testing.T) {
	cache := newMemJobCache()
	api := &fakeJobAPI{postings: tenPostings()}
	uc := newTestJobSearch(cache, api, time.Now().UTC())

	postings, err := uc.Resolve(context.Background(), "Developer", "Bangalore")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	for i, p := range postings {
		if n := len([]rune(p.Desc)); n > 143 {
			t.Fatalf("posting %d desc too long: %d runes", i, n)
		}
		if !bytes.HasSuffix([]byte(p.Desc), []byte("...")) {
			t.Fatalf("posting %d desc missing ellipsis marker", i)
		}
		if p.Date != "2026-08-30" {
			t.Fatalf("posting %d date = %q, want calendar-date prefix", i, p.Date)
		}
	}
}

func TestJobSearch_APIFailureWithoutCacheSurfacesError(t *testing.T) {
	cache := newMemJobCache()
	api := &fakeJobAPI{err: jobapi.ErrUnavailable}
	uc := newTestJobSearch(cache, api, time.Now().UTC())

	_, err := uc.Resolve(context.Background(), "Developer", "Bangalore")
	if !errors.Is(err, jobapi.ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
	if len(cache.rows) != 0 {
		t.Fatalf("failed fetch must not write cache rows")
	}
}

func TestJobSearch_APIFailureWithStaleEntryFailsClosed(t *testing.T) {
	cache := newMemJobCache()
	api := &fakeJobAPI{postings: tenPostings()}
	start := time.Date(2026, 8, 31, 9, 0, 0, 0, time.UTC)
	uc := newTestJobSearch(cache, api, start)

	if _, err := uc.Resolve(context.Background(), "Developer", "Bangalore"); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	api.err = jobapi.ErrUnavailable
	uc.now = func() time.Time { return start.Add(25 * time.Hour) }

	_, err := uc.Resolve(context.Background(), "Developer", "Bangalore")
	if !errors.Is(err, jobapi.ErrUnavailable) {
		t.Fatalf("stale data must not be served on API failure, got err=%v", err)
	}
	if cache.upserts != 1 {
		t.Fatalf("failed refetch must not overwrite the stale row, upserts=%d", cache.upserts)
	}
}

func TestJobSearch_EmptySuccessfulResultIsNotAnError(t *testing.T) {
	cache := newMemJobCache()
	api := &fakeJobAPI{postings: nil}
	uc := newTestJobSearch(cache, api, time.Now().UTC())

	postings, err := uc.Resolve(context.Background(), "Developer", "Bangalore")
	if err != nil {
		t.Fatalf("empty result set is a success, got err=%v", err)
	}
	if len(postings) != 0 {
		t.Fatalf("expected zero postings, got %d", len(postings))
	}
}

func TestJobSearch_StoreReadFailureDowngradesToMiss(t *testing.T) {
	cache := newMemJobCache()
	cache.getErr = errors.New("connection reset")
	api := &fakeJobAPI{postings: tenPostings()}
	uc := newTestJobSearch(cache, api, time.Now().UTC())

	postings, err := uc.Resolve(context.Background(), "Developer", "Bangalore")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(postings) != 10 {
		t.Fatalf("expected 10 postings, got %d", len(postings))
	}
	if api.calls != 1 {
		t.Fatalf("expected refetch on store failure, calls=%d", api.calls)
	}
}
