package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/dealradar/dealradar/pkg/types"
)

func TestClient_ConnectionRefused(t *testing.T) {
	t.Parallel()

	c := New("http://127.0.0.1:1") // nothing listening
	_, err := c.GetStats(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API server not running")
}

func TestClient_HTTPError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"internal"}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	_, err := c.GetStats(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API error (HTTP 500)")
}

func TestClient_ListDeals(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/deals", r.URL.Path)
		assert.Equal(t, "Amazon", r.URL.Query().Get("store"))
		assert.Equal(t, "80", r.URL.Query().Get("min_score"))
		assert.Equal(t, "true", r.URL.Query().Get("active"))
		assert.Equal(t, "10", r.URL.Query().Get("limit"))

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(DealsResponse{
			Deals: []domain.Deal{{ID: "d1", Title: "boAt Airdopes 141"}},
			Total: 1,
		})
	}))
	defer srv.Close()

	c := New(srv.URL)
	resp, err := c.ListDeals(context.Background(), &ListDealsParams{
		Store:    "Amazon",
		MinScore: 80,
		Active:   true,
		Limit:    10,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Total)
	require.Len(t, resp.Deals, 1)
	assert.Equal(t, "d1", resp.Deals[0].ID)
}

func TestClient_GetDeal(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/deals/d1", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(domain.Deal{ID: "d1", Title: "boAt Airdopes 141"})
	}))
	defer srv.Close()

	c := New(srv.URL)
	deal, err := c.GetDeal(context.Background(), "d1")
	require.NoError(t, err)
	assert.Equal(t, "boAt Airdopes 141", deal.Title)
}

func TestClient_Parse(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/parse", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.NotEmpty(t, body["text"])

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(ParseResult{
			Candidate:  domain.CandidateDeal{Title: "boAt Airdopes 141", Store: domain.StoreAmazon},
			ProductKey: "amazon.in/dp/B09N3ZNHTY",
		})
	}))
	defer srv.Close()

	c := New(srv.URL)
	result, err := c.Parse(context.Background(), "boAt Airdopes 141 @ ₹999 https://www.amazon.in/dp/B09N3ZNHTY")
	require.NoError(t, err)
	assert.Equal(t, domain.StoreAmazon, result.Candidate.Store)
	assert.Equal(t, "amazon.in/dp/B09N3ZNHTY", result.ProductKey)
}

func TestClient_TriggerSweep(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/sweep", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "sweep completed"})
	}))
	defer srv.Close()

	c := New(srv.URL)
	require.NoError(t, c.TriggerSweep(context.Background()))
}

func TestClient_GetQuota(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/quota", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(Quota{DailyLimit: 2000, DailyUsed: 42, Remaining: 1958})
	}))
	defer srv.Close()

	c := New(srv.URL)
	q, err := c.GetQuota(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(2000), q.DailyLimit)
	assert.Equal(t, int64(1958), q.Remaining)
}

func TestWithHTTPClient(t *testing.T) {
	t.Parallel()

	custom := &http.Client{}
	c := New("http://example.com", WithHTTPClient(custom))
	assert.Same(t, custom, c.httpClient)
}
