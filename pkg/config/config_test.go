package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_StorageConfig_Validate(t *testing.T) {
	testCases := []struct {
		name             string
		cfg              StorageConfig
		expectedProducts string
		expectedCarts    string
		expectError      bool
	}{
		{
			name:             "Defaults filled",
			cfg:              StorageConfig{},
			expectedProducts: "productos.json",
			expectedCarts:    "carrito.json",
		},
		{
			name:             "Custom files kept",
			cfg:              StorageConfig{ProductsFile: "/data/p.json", CartsFile: "/data/c.json"},
			expectedProducts: "/data/p.json",
			expectedCarts:    "/data/c.json",
		},
		{
			name:        "Same file rejected",
			cfg:         StorageConfig{ProductsFile: "/data/../data/x.json", CartsFile: "/data/x.json"},
			expectError: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// when
			err := tc.cfg.Validate()
			// then
			if tc.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expectedProducts, tc.cfg.ProductsFile)
			assert.Equal(t, tc.expectedCarts, tc.cfg.CartsFile)
		})
	}
}

func Test_NATSConfig_Validate(t *testing.T) {
	valid := func() NATSConfig {
		return NATSConfig{
			Enabled: true,
			Url:     "nats://localhost:4222",
			Timeout: time.Second,
			Stream:  "SHOP",
			CircuitBreaker: CircuitBreakerConfig{
				ConsecutiveFailures: 3,
				ErrorRatePercent:    50,
				OpenTimeout:         time.Second,
			},
		}
	}
	testCases := []struct {
		name        string
		modify      func(*NATSConfig)
		expectError bool
	}{
		{name: "Valid", modify: func(_ *NATSConfig) {}},
		{name: "Disabled skips validation", modify: func(c *NATSConfig) { *c = NATSConfig{} }},
		{name: "Missing url", modify: func(c *NATSConfig) { c.Url = "" }, expectError: true},
		{name: "Missing stream", modify: func(c *NATSConfig) { c.Stream = "" }, expectError: true},
		{name: "Missing timeout", modify: func(c *NATSConfig) { c.Timeout = 0 }, expectError: true},
		{name: "Invalid breaker", modify: func(c *NATSConfig) { c.CircuitBreaker.ConsecutiveFailures = 0 }, expectError: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			cfg := valid()
			tc.modify(&cfg)
			// when
			err := cfg.Validate()
			// then
			if tc.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func Test_ProbesConfig_Validate(t *testing.T) {
	// given
	cfg := ProbesConfig{Enabled: true}
	// when
	err := cfg.Validate()
	// then
	require.NoError(t, err)
	assert.Equal(t, "/tmp/ready", cfg.ReadinessFileName)
	assert.Equal(t, "/tmp/live", cfg.LivenessFileName)
	assert.Equal(t, 20*time.Second, cfg.LivenessInterval)
}

func Test_ShutdownConfig_Validate(t *testing.T) {
	testCases := []struct {
		name            string
		cfg             ShutdownConfig
		expectedTimeout time.Duration
		expectError     bool
	}{
		{name: "Default filled", cfg: ShutdownConfig{}, expectedTimeout: 15 * time.Second},
		{name: "Custom kept", cfg: ShutdownConfig{Timeout: 3 * time.Second}, expectedTimeout: 3 * time.Second},
		{name: "Negative rejected", cfg: ShutdownConfig{Timeout: -time.Second}, expectError: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// when
			err := tc.cfg.Validate()
			// then
			if tc.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expectedTimeout, tc.cfg.Timeout)
		})
	}
}

func Test_PProfConfig_Validate(t *testing.T) {
	testCases := []struct {
		name        string
		cfg         PProfConfig
		expectError bool
	}{
		{name: "Disabled skips validation", cfg: PProfConfig{Addr: "nonsense"}},
		{name: "Valid address", cfg: PProfConfig{Enabled: true, Addr: "localhost:6060"}},
		{name: "Port only", cfg: PProfConfig{Enabled: true, Addr: ":6060"}},
		{name: "Missing address", cfg: PProfConfig{Enabled: true}, expectError: true},
		{name: "Missing port", cfg: PProfConfig{Enabled: true, Addr: "localhost"}, expectError: true},
		{name: "Empty port", cfg: PProfConfig{Enabled: true, Addr: "localhost:"}, expectError: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// when
			err := tc.cfg.Validate()
			// then
			if tc.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
