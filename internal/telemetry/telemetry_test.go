package telemetry

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dealradar/dealradar/internal/config"
)

func TestSetup_Disabled(t *testing.T) {
	t.Parallel()

	shutdown, err := Setup(context.Background(), config.TelemetryConfig{Enabled: false}, "test")
	require.NoError(t, err)
	require.NotNil(t, shutdown)

	assert.NoError(t, shutdown(context.Background()))
}

func TestSetup_Enabled(t *testing.T) {
	// The gRPC exporter connects lazily, so setup succeeds without a
	// running collector. Not parallel: installs global providers.
	shutdown, err := Setup(context.Background(), config.TelemetryConfig{
		Enabled:     true,
		Endpoint:    "localhost:4317",
		SampleRatio: 0.5,
	}, "test")
	require.NoError(t, err)
	require.NotNil(t, shutdown)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_ = shutdown(ctx)
}
