package usecase

import (
	"context"
	"encoding/json"
	"log"
	"strings"
	"time"

	"career-compass/internal/domain/job"
	"career-compass/internal/infrastructure/jobapi"
	"career-compass/internal/repository"
)

// FreshnessWindow is how long a cached search result set serves reads before
// a refetch is forced. Expiry is evaluated lazily at read time; no sweeper.
const FreshnessWindow = 24 * time.Hour

const descLimit = 140

type JobSearchUsecase interface {
	Resolve(ctx context.Context, role, location string) ([]job.Posting, error)
}

// JobSearch memoizes job-listing API results per normalized query. One row
// per key (upsert), fresh rows served verbatim with no external call, stale
// or absent rows refetched. A failed refetch is surfaced to the caller even
// when a stale row exists; stale data is never served.
//
// Concurrent callers on the same stale key may both refetch and both upsert;
// last writer wins. The race window is small next to the 24h window and the
// external API is the source of truth either way.
type JobSearch struct {
	cache   repository.JobCacheRepository
	api     jobapi.Client
	country string
	window  time.Duration
	logger  *log.Logger

	now func() time.Time
}

func NewJobSearchUsecase(cache repository.JobCacheRepository, api jobapi.Client, country string, logger *log.Logger) *JobSearch {
	country = strings.ToLower(strings.TrimSpace(country))
	if country == "" {
		country = "in"
	}
	return &JobSearch{
		cache:   cache,
		api:     api,
		country: country,
		window:  FreshnessWindow,
		logger:  logger,
		now:     time.Now,
	}
}

// SearchKey collapses queries differing only by case or surrounding
// whitespace onto one cache entry. The cache is global across users.
func (u *JobSearch) SearchKey(role, location string) string {
	role = strings.ToLower(strings.TrimSpace(role))
	location = strings.ToLower(strings.TrimSpace(location))
	return role + "_" + location + "_" + u.country
}

func (u *JobSearch) Resolve(ctx context.Context, role, location string) ([]job.Posting, error) {
	key := u.SearchKey(role, location)

	entry, found, err := u.cache.Get(ctx, key)
	if err != nil {
		// A store read failure downgrades to a miss; the refetch path still
		// answers the caller.
		if u.logger != nil {
			u.logger.Printf("[Jobs] Cache read failed key=%s err=%v", key, err)
		}
		found = false
	}
	if found && u.now().Sub(entry.FetchedAt) < u.window {
		var postings []job.Posting
		if err := json.Unmarshal(entry.Payload, &postings); err == nil {
			if u.logger != nil {
				u.logger.Printf("[Jobs] Cache HIT key=%s", key)
			}
			return postings, nil
		}
		if u.logger != nil {
			u.logger.Printf("[Jobs] Cache payload corrupt key=%s, refetching", key)
		}
	}
	if u.logger != nil {
		u.logger.Printf("[Jobs] Cache MISS key=%s", key)
	}

	raw, err := u.api.Search(ctx, role, location)
	if err != nil {
		// Fail closed: the stale row, if any, stays in place untouched but is
		// not served.
		return nil, err
	}

	postings := make([]job.Posting, 0, len(raw))
	for _, p := range raw {
		postings = append(postings, mapPosting(p))
	}

	payload, err := json.Marshal(postings)
	if err != nil {
		return nil, ErrInternal
	}
	if err := u.cache.Upsert(ctx, key, payload, u.now()); err != nil {
		// The fetch succeeded; a failed write only loses the memoization.
		if u.logger != nil {
			u.logger.Printf("[Jobs] Cache write failed key=%s err=%v", key, err)
		}
	}

	return postings, nil
}

func mapPosting(p jobapi.Posting) job.Posting {
	return job.Posting{
		Title:    p.Title,
		Company:  p.Company,
		Location: p.Location,
		Desc:     truncateDesc(p.Description),
		FullDesc: p.Description,
		URL:      p.RedirectURL,
		Date:     postingDate(p.Created),
	}
}

func truncateDesc(s string) string {
	r := []rune(s)
	if len(r) > descLimit {
		r = r[:descLimit]
	}
	return string(r) + "..."
}

// postingDate keeps the calendar-date prefix of an RFC3339 timestamp.
func postingDate(created string) string {
	if len(created) > 10 {
		return created[:10]
	}
	return created
}
