package config

import (
	"encoding/json"
	"os"

	"github.com/keysafe-protocol/keysafe/internal/flagx"
	"github.com/keysafe-protocol/keysafe/internal/timex"
)

// JsonConfig is the on-disk shape of the configuration file. Durations use
// timex.Duration so both "5s" and integer nanoseconds are accepted.
// Pointer fields distinguish "absent" from a zero value, so a file only
// overrides what it names.
type JsonConfig struct {
	EndpointAddrGRPC         *string         `json:"endpoint_addr_grpc"`
	EndpointAddrHTTP         *string         `json:"endpoint_addr_http"`
	StorageBackend           *string         `json:"storage_backend"`
	DatabaseDSN              *string         `json:"database_dsn"`
	SecretKey                *string         `json:"secret_key"`
	IssuerIdentity           *string         `json:"issuer_identity"`
	TotalSupply              *uint64         `json:"total_supply"`
	TxRetryAttempts          *uint64         `json:"tx_retry_attempts"`
	S3AccessKey              *string         `json:"s3_access_key"`
	S3SecretKey              *string         `json:"s3_secret_key"`
	S3Bucket                 *string         `json:"s3_bucket"`
	S3Region                 *string         `json:"s3_region"`
	S3BaseEndpoint           *string         `json:"s3_base_endpoint"`
	OTLPEndpoint             *string         `json:"otlp_endpoint"`
	LogLevel                 *string         `json:"log_level"`
	EnablePprof              *bool           `json:"enable_pprof"`
	DrainDuration            *timex.Duration `json:"drain_duration"`
	GracefulShutdownDuration *timex.Duration `json:"graceful_shutdown_duration"`
}

func set[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

// parseJson loads the file named by -c or -config, if any, and overlays its
// fields onto config. An unreadable or malformed file panics.
func parseJson(config *Config, args []string) {
	jsonConfigFile := flagx.ConfigFileFlag(args)
	if jsonConfigFile == "" {
		return
	}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	set(&config.EndpointAddrGRPC, c.EndpointAddrGRPC)
	set(&config.EndpointAddrHTTP, c.EndpointAddrHTTP)
	set(&config.StorageBackend, c.StorageBackend)
	set(&config.DatabaseDSN, c.DatabaseDSN)
	set(&config.SecretKey, c.SecretKey)
	set(&config.IssuerIdentity, c.IssuerIdentity)
	set(&config.TotalSupply, c.TotalSupply)
	set(&config.TxRetryAttempts, c.TxRetryAttempts)
	set(&config.S3AccessKey, c.S3AccessKey)
	set(&config.S3SecretKey, c.S3SecretKey)
	set(&config.S3Bucket, c.S3Bucket)
	set(&config.S3Region, c.S3Region)
	set(&config.S3BaseEndpoint, c.S3BaseEndpoint)
	set(&config.OTLPEndpoint, c.OTLPEndpoint)
	set(&config.LogLevel, c.LogLevel)
	set(&config.EnablePprof, c.EnablePprof)
	if c.DrainDuration != nil {
		config.DrainDuration = c.DrainDuration.Duration
	}
	if c.GracefulShutdownDuration != nil {
		config.GracefulShutdownDuration = c.GracefulShutdownDuration.Duration
	}
}
