// Package main implements a mock deal feed server for local development.
// It serves canned deals from a JSON fixture in the paginated feed format
// the sweep consumes, so the full pipeline can run without a real
// affiliate feed subscription.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"
)

type feedResponse struct {
	Deals  []json.RawMessage `json:"deals"`
	Total  int               `json:"total"`
	Offset int               `json:"offset"`
	Limit  int               `json:"limit"`
}

type feedDeal struct {
	Title string `json:"title"`
}

func main() {
	port := flag.Int("port", 8089, "port to listen on")
	fixtureFile := flag.String("fixture", "tools/mock-server/testdata/feed_response.json", "path to feed fixture")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	fixture, err := loadFixture(*fixtureFile)
	if err != nil {
		logger.Error("failed to load fixture", "path", *fixtureFile, "error", err)
		os.Exit(1)
	}
	logger.Info("loaded fixture", "deals", len(fixture.Deals))

	mux := http.NewServeMux()
	mux.HandleFunc("GET /feed", feedHandler(logger, fixture))

	addr := fmt.Sprintf(":%d", *port)
	logger.Info("starting mock feed server", "addr", addr)

	srv := &http.Server{
		Addr:         addr,
		Handler:      requestLogger(logger, mux),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	if err := srv.ListenAndServe(); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func loadFixture(path string) (*feedResponse, error) {
	data, err := os.ReadFile(path) //nolint:gosec // fixture path from trusted CLI flag
	if err != nil {
		return nil, fmt.Errorf("reading fixture: %w", err)
	}
	var resp feedResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("parsing fixture: %w", err)
	}
	return &resp, nil
}

func requestLogger(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.Debug("request", "method", r.Method, "path", r.URL.Path, "query", r.URL.RawQuery)
		next.ServeHTTP(w, r)
	})
}

func feedHandler(logger *slog.Logger, fixture *feedResponse) http.HandlerFunc {
	// Pre-parse titles for filtering.
	type indexedDeal struct {
		raw   json.RawMessage
		title string
	}
	deals := make([]indexedDeal, 0, len(fixture.Deals))
	for _, raw := range fixture.Deals {
		var d feedDeal
		//nolint:errcheck,gosec // fixture data is trusted; title extraction is best-effort
		json.Unmarshal(raw, &d)
		deals = append(deals, indexedDeal{raw: raw, title: strings.ToLower(d.Title)})
	}

	return func(w http.ResponseWriter, r *http.Request) {
		q := strings.ToLower(r.URL.Query().Get("q"))
		limitStr := r.URL.Query().Get("limit")
		offsetStr := r.URL.Query().Get("offset")

		limit := 100
		if limitStr != "" {
			if v, err := strconv.Atoi(limitStr); err == nil && v > 0 {
				limit = v
			}
		}
		offset := 0
		if offsetStr != "" {
			if v, err := strconv.Atoi(offsetStr); err == nil && v >= 0 {
				offset = v
			}
		}

		// Filter deals by query substring match on title.
		var matched []json.RawMessage
		for _, d := range deals {
			if q == "" || strings.Contains(d.title, q) {
				matched = append(matched, d.raw)
			}
		}

		total := len(matched)

		// Apply pagination.
		if offset >= len(matched) {
			matched = nil
		} else {
			end := min(offset+limit, len(matched))
			matched = matched[offset:end]
		}

		resp := feedResponse{
			Deals:  matched,
			Total:  total,
			Offset: offset,
			Limit:  limit,
		}

		// Return empty array instead of null when no results.
		if resp.Deals == nil {
			resp.Deals = []json.RawMessage{}
		}

		w.Header().Set("Content-Type", "application/json")
		//nolint:errcheck,gosec // best-effort write to HTTP response in mock server
		json.NewEncoder(w).Encode(resp)
		logger.Info("feed", "query", q, "matched", total, "returned", len(matched), "offset", offset, "limit", limit)
	}
}
