package handlers_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dealradar/dealradar/internal/api/handlers"
)

type mockSweeper struct {
	err    error
	called bool
}

func (m *mockSweeper) RunSweep(context.Context) error {
	m.called = true
	return m.err
}

type mockCleaner struct {
	err    error
	called bool
}

func (m *mockCleaner) RunCleanup(context.Context) error {
	m.called = true
	return m.err
}

func newTriggerAPI(t *testing.T, sw *mockSweeper, cl *mockCleaner) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	handlers.RegisterTriggerRoutes(api, handlers.NewSweepHandler(sw), handlers.NewCleanupHandler(cl))
	return api
}

func TestTriggerSweep_Success(t *testing.T) {
	t.Parallel()

	sw := &mockSweeper{}
	api := newTriggerAPI(t, sw, &mockCleaner{})

	resp := api.Post("/api/v1/sweep")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), "sweep completed")
	assert.True(t, sw.called)
}

func TestTriggerSweep_Failure(t *testing.T) {
	t.Parallel()

	sw := &mockSweeper{err: errors.New("source unreachable")}
	api := newTriggerAPI(t, sw, &mockCleaner{})

	resp := api.Post("/api/v1/sweep")
	require.Equal(t, http.StatusInternalServerError, resp.Code)
	assert.Contains(t, resp.Body.String(), "sweep failed")
}

func TestTriggerCleanup_Success(t *testing.T) {
	t.Parallel()

	cl := &mockCleaner{}
	api := newTriggerAPI(t, &mockSweeper{}, cl)

	resp := api.Post("/api/v1/deals/cleanup")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), "cleanup completed")
	assert.True(t, cl.called)
}

func TestTriggerCleanup_Failure(t *testing.T) {
	t.Parallel()

	cl := &mockCleaner{err: errors.New("lock timeout")}
	api := newTriggerAPI(t, &mockSweeper{}, cl)

	resp := api.Post("/api/v1/deals/cleanup")
	require.Equal(t, http.StatusInternalServerError, resp.Code)
	assert.Contains(t, resp.Body.String(), "cleanup failed")
}
