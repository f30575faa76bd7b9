package config

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		expected    *Config
		name        string
		args        []string
		expectPanic bool
	}{
		{
			name: "all flags",
			args: []string{
				"-a", "127.0.0.1:9090", "-h", ":9091", "-m", "postgres", "-d", "db", "-s", "secret",
				"-i", "root", "-n", "30000", "-b", "bucket", "-e", "http://endpoint", "-o", "http://otel:4318", "-l", "debug",
			},
			expected: &Config{
				EndpointAddrGRPC: "127.0.0.1:9090",
				EndpointAddrHTTP: ":9091",
				StorageBackend:   "postgres",
				DatabaseDSN:      "db",
				SecretKey:        "secret",
				IssuerIdentity:   "root",
				TotalSupply:      30000,
				S3Bucket:         "bucket",
				S3BaseEndpoint:   "http://endpoint",
				OTLPEndpoint:     "http://otel:4318",
				LogLevel:         "debug",
			},
		},
		{
			name:     "foreign flags are ignored",
			args:     []string{"-config", "cfg.json", "-test.v", "-a", ":1"},
			expected: &Config{EndpointAddrGRPC: ":1"},
		},
		{
			name:        "bad supply",
			args:        []string{"-n", "-5"},
			expectPanic: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := &Config{}

			if tt.expectPanic {
				require.Panics(t, func() { parseFlags(config, tt.args) })
				return
			}
			require.NotPanics(t, func() { parseFlags(config, tt.args) })
			assert.Empty(t, cmp.Diff(tt.expected, config))
		})
	}
}
