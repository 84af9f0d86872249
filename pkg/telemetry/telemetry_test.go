package telemetry

import (
	"context"
	"testing"
	"time"

	"github.com/abgdnv/filecommerce/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Setup_Disabled(t *testing.T) {
	// given
	cfg := config.TelemetryConfig{Enabled: false}
	// when
	shutdown, err := Setup(context.Background(), "shop", cfg)
	// then
	require.NoError(t, err)
	require.NotNil(t, shutdown)
	assert.NoError(t, shutdown(context.Background()))
}

func Test_Setup_Enabled(t *testing.T) {
	// given
	var cfg config.TelemetryConfig
	cfg.Enabled = true
	cfg.Traces.OtlpHttp.Endpoint = "localhost:4318"
	cfg.Traces.OtlpHttp.Insecure = true
	cfg.Traces.OtlpHttp.Timeout = 100 * time.Millisecond
	// when
	shutdown, err := Setup(context.Background(), "shop", cfg)
	// then
	require.NoError(t, err)
	require.NotNil(t, shutdown)
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	// nothing was recorded, so shutdown has nothing to export
	assert.NoError(t, shutdown(ctx))
}
