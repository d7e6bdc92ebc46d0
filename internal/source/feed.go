// Package source implements deal feed clients that supply candidate
// deals to the scheduled sweep. A feed is any HTTP endpoint returning
// paginated JSON deal listings, typically an affiliate or aggregator
// export.
package source

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/dealradar/dealradar/pkg/logger"
	domain "github.com/dealradar/dealradar/pkg/types"
)

const (
	defaultPageSize = 100
	defaultMaxPages = 10
)

// Feed is an HTTP JSON deal feed implementing the sweep Source interface.
type Feed struct {
	name     string
	feedURL  string
	apiKey   string
	client   *http.Client
	log      *slog.Logger
	pageSize int
	maxPages int
}

// FeedOption configures a Feed.
type FeedOption func(*Feed)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(hc *http.Client) FeedOption {
	return func(f *Feed) {
		f.client = hc
	}
}

// WithAPIKey sets a bearer token sent with every feed request.
func WithAPIKey(key string) FeedOption {
	return func(f *Feed) {
		f.apiKey = key
	}
}

// WithPageSize overrides the default page size.
func WithPageSize(size int) FeedOption {
	return func(f *Feed) {
		f.pageSize = size
	}
}

// WithMaxPages caps how many pages a single sweep will fetch.
func WithMaxPages(n int) FeedOption {
	return func(f *Feed) {
		f.maxPages = n
	}
}

// WithLogger sets the logger.
func WithLogger(log *slog.Logger) FeedOption {
	return func(f *Feed) {
		f.log = log
	}
}

// NewFeed creates a Feed named name that reads from feedURL.
func NewFeed(name, feedURL string, opts ...FeedOption) *Feed {
	f := &Feed{
		name:     name,
		feedURL:  feedURL,
		client:   &http.Client{Timeout: 30 * time.Second},
		log:      logger.Discard(),
		pageSize: defaultPageSize,
		maxPages: defaultMaxPages,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Name identifies the feed in sweep logs and job runs.
func (f *Feed) Name() string {
	return f.name
}

type feedPage struct {
	Deals  []feedItem `json:"deals"`
	Total  int        `json:"total"`
	Offset int        `json:"offset"`
	Limit  int        `json:"limit"`
}

// Deals fetches the feed page by page and converts every item into a
// candidate deal. Pagination stops at the feed's reported total or at
// the page cap, whichever comes first.
func (f *Feed) Deals(ctx context.Context) ([]domain.CandidateDeal, error) {
	var candidates []domain.CandidateDeal

	offset := 0
	for page := 0; page < f.maxPages; page++ {
		resp, err := f.fetchPage(ctx, offset)
		if err != nil {
			return nil, fmt.Errorf("fetching feed page at offset %d: %w", offset, err)
		}

		observed := time.Now().UTC()
		for i := range resp.Deals {
			c, ok := toCandidate(&resp.Deals[i], f.name, observed)
			if !ok {
				f.log.Debug("skipping feed item without link", "feed", f.name)
				continue
			}
			candidates = append(candidates, c)
		}

		offset += len(resp.Deals)
		if len(resp.Deals) == 0 || (resp.Total > 0 && offset >= resp.Total) {
			break
		}
	}

	f.log.Debug("feed sweep complete", "feed", f.name, "candidates", len(candidates))
	return candidates, nil
}

func (f *Feed) fetchPage(ctx context.Context, offset int) (*feedPage, error) {
	u, err := url.Parse(f.feedURL)
	if err != nil {
		return nil, fmt.Errorf("parsing feed URL: %w", err)
	}
	q := u.Query()
	q.Set("limit", strconv.Itoa(f.pageSize))
	q.Set("offset", strconv.Itoa(offset))
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if f.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+f.apiKey)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("feed returned status %d: %s", resp.StatusCode, body)
	}

	var page feedPage
	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		return nil, fmt.Errorf("decoding feed page: %w", err)
	}
	return &page, nil
}
