package main

import (
	"encoding/json"
	"log/slog"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func testFixture(t *testing.T) *feedResponse {
	t.Helper()
	fixture, err := loadFixture("testdata/feed_response.json")
	require.NoError(t, err)
	require.NotEmpty(t, fixture.Deals)
	return fixture
}

func doFeed(t *testing.T, fixture *feedResponse, query string) feedResponse {
	t.Helper()
	handler := feedHandler(quietLogger(), fixture)

	req := httptest.NewRequest("GET", "/feed?"+query, nil)
	rec := httptest.NewRecorder()
	handler(rec, req)

	require.Equal(t, 200, rec.Code)
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var resp feedResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestLoadFixture(t *testing.T) {
	t.Parallel()

	fixture := testFixture(t)
	assert.Len(t, fixture.Deals, 5)
	assert.Equal(t, 5, fixture.Total)
}

func TestLoadFixture_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := loadFixture("testdata/does_not_exist.json")
	assert.Error(t, err)
}

func TestFeedHandler_ReturnsAllDeals(t *testing.T) {
	t.Parallel()

	resp := doFeed(t, testFixture(t), "")
	assert.Equal(t, 5, resp.Total)
	assert.Len(t, resp.Deals, 5)
}

func TestFeedHandler_FiltersByQuery(t *testing.T) {
	t.Parallel()

	resp := doFeed(t, testFixture(t), "q=smartwatch")
	require.Equal(t, 1, resp.Total)

	var d feedDeal
	require.NoError(t, json.Unmarshal(resp.Deals[0], &d))
	assert.Contains(t, d.Title, "ColorFit")
}

func TestFeedHandler_Paginates(t *testing.T) {
	t.Parallel()

	fixture := testFixture(t)

	page1 := doFeed(t, fixture, "limit=2&offset=0")
	assert.Equal(t, 5, page1.Total)
	assert.Len(t, page1.Deals, 2)
	assert.Equal(t, 0, page1.Offset)
	assert.Equal(t, 2, page1.Limit)

	page3 := doFeed(t, fixture, "limit=2&offset=4")
	assert.Len(t, page3.Deals, 1)
	assert.Equal(t, 4, page3.Offset)
}

func TestFeedHandler_OffsetPastEnd(t *testing.T) {
	t.Parallel()

	resp := doFeed(t, testFixture(t), "offset=50")
	assert.Equal(t, 5, resp.Total)
	assert.NotNil(t, resp.Deals)
	assert.Empty(t, resp.Deals)
}

func TestFeedHandler_NoMatches(t *testing.T) {
	t.Parallel()

	resp := doFeed(t, testFixture(t), "q=zzzznomatch")
	assert.Equal(t, 0, resp.Total)
	assert.NotNil(t, resp.Deals)
	assert.Empty(t, resp.Deals)
}
