//go:build unit

package telemetry_test

import (
	"context"
	"testing"

	"rentx-api/internal/pkg/config"
	"rentx-api/internal/pkg/telemetry"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetup(t *testing.T) {
	t.Run("success: no endpoint means no-op", func(t *testing.T) {
		shutdown, err := telemetry.Setup(context.Background(), config.TelemetryConfig{ServiceName: "rentx-api-test"})
		require.NoError(t, err)
		assert.NoError(t, shutdown(context.Background()))
	})

	t.Run("exporters are created lazily", func(t *testing.T) {
		shutdown, err := telemetry.Setup(context.Background(), config.TelemetryConfig{
			ServiceName:  "rentx-api-test",
			OTLPEndpoint: "127.0.0.1:4318",
		})
		require.NoError(t, err)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_ = shutdown(ctx)
	})
}
