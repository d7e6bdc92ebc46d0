package handlers_test

import (
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dealradar/dealradar/internal/api/handlers"
	"github.com/dealradar/dealradar/pkg/extract"
)

func TestParse_ExtractsCandidate(t *testing.T) {
	t.Parallel()

	h := handlers.NewParseHandler(extract.New())

	_, api := humatest.New(t)
	handlers.RegisterParseRoutes(api, h)

	resp := api.Post("/api/v1/parse", map[string]any{
		"text": "boAt Airdopes 141 TWS Earbuds\n@ ₹999 (MRP ₹2999)\nhttps://www.amazon.in/dp/B09N3ZNHTY",
	})
	require.Equal(t, http.StatusOK, resp.Code)

	body := resp.Body.String()
	assert.Contains(t, body, `"store":"Amazon"`)
	assert.Contains(t, body, `"discount_price":999`)
	assert.Contains(t, body, `"mrp":2999`)
	assert.Contains(t, body, `"product_key":"amazon.in/dp/B09N3ZNHTY"`)
}

func TestParse_NoLink(t *testing.T) {
	t.Parallel()

	h := handlers.NewParseHandler(extract.New())

	_, api := humatest.New(t)
	handlers.RegisterParseRoutes(api, h)

	resp := api.Post("/api/v1/parse", map[string]any{
		"text": "Mega sale! Everything 80% off today only!",
	})
	require.Equal(t, http.StatusOK, resp.Code)
	assert.NotContains(t, resp.Body.String(), "product_key")
}

func TestParse_EmptyTextRejected(t *testing.T) {
	t.Parallel()

	h := handlers.NewParseHandler(extract.New())

	_, api := humatest.New(t)
	handlers.RegisterParseRoutes(api, h)

	resp := api.Post("/api/v1/parse", map[string]any{"text": ""})
	require.Equal(t, http.StatusUnprocessableEntity, resp.Code)
}
