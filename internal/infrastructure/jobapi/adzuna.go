package jobapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"career-compass/internal/config"
)

var (
	// ErrUnavailable covers network failures, malformed responses and non-2xx
	// statuses from the listing API.
	ErrUnavailable = errors.New("job listing API unavailable")
	// ErrTimeout is surfaced separately so a slow upstream is distinguishable
	// from a broken one.
	ErrTimeout = errors.New("job listing API timed out")
)

// Posting is one raw result as the listing API returns it, before any
// truncation or date shaping.
type Posting struct {
	Title       string
	Company     string
	Location    string
	Description string
	RedirectURL string
	Created     string
}

type Client interface {
	Search(ctx context.Context, role, location string) ([]Posting, error)
}

type adzunaClient struct {
	baseURL  string
	appID    string
	appKey   string
	country  string
	pageSize int
	timeout  time.Duration
	client   *http.Client
	logger   *log.Logger
}

type searchResponse struct {
	Results []searchResult `json:"results"`
}

// Nested display_name objects may be absent entirely; missing fields decode
// to zero values rather than failing.
type searchResult struct {
	Title   string `json:"title"`
	Company struct {
		DisplayName string `json:"display_name"`
	} `json:"company"`
	Location struct {
		DisplayName string `json:"display_name"`
	} `json:"location"`
	Description string `json:"description"`
	RedirectURL string `json:"redirect_url"`
	Created     string `json:"created"`
}

func NewAdzunaClient(cfg config.JobsConfig, logger *log.Logger) Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	pageSize := cfg.PageSize
	if pageSize <= 0 {
		pageSize = 10
	}
	country := strings.TrimSpace(cfg.Country)
	if country == "" {
		country = "in"
	}
	return &adzunaClient{
		baseURL:  strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/"),
		appID:    cfg.AdzunaAppID,
		appKey:   cfg.AdzunaAppKey,
		country:  country,
		pageSize: pageSize,
		timeout:  timeout,
		client:   &http.Client{Timeout: timeout},
		logger:   logger,
	}
}

func (c *adzunaClient) Search(ctx context.Context, role, location string) ([]Posting, error) {
	if c == nil || c.client == nil {
		return nil, ErrUnavailable
	}

	q := url.Values{}
	q.Set("app_id", c.appID)
	q.Set("app_key", c.appKey)
	q.Set("results_per_page", fmt.Sprintf("%d", c.pageSize))
	q.Set("what", role)
	q.Set("where", location)
	q.Set("content-type", "application/json")

	endpoint := fmt.Sprintf("%s/jobs/%s/search/1?%s", c.baseURL, c.country, q.Encode())

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || ctx.Err() == context.DeadlineExceeded {
			return nil, ErrTimeout
		}
		if c.logger != nil {
			c.logger.Printf("[JobAPI] Search request failed country=%s err=%v", c.country, err)
		}
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		rb, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		if c.logger != nil {
			c.logger.Printf("[JobAPI] Search failed status=%d body=%q", resp.StatusCode, strings.TrimSpace(string(rb)))
		}
		return nil, fmt.Errorf("%w: status=%d", ErrUnavailable, resp.StatusCode)
	}

	var out searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("%w: decode: %v", ErrUnavailable, err)
	}

	postings := make([]Posting, 0, len(out.Results))
	for _, r := range out.Results {
		postings = append(postings, Posting{
			Title:       r.Title,
			Company:     r.Company.DisplayName,
			Location:    r.Location.DisplayName,
			Description: r.Description,
			RedirectURL: r.RedirectURL,
			Created:     r.Created,
		})
	}
	return postings, nil
}

var _ Client = (*adzunaClient)(nil)
