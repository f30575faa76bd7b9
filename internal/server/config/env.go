package config

import "github.com/caarlos0/env/v11"

const EnvPrefix = "KEYSAFE_"

// parseEnv overlays KEYSAFE_* variables. Unset variables keep the current
// value. A malformed value panics, like a malformed config file.
func parseEnv(config *Config) {
	if err := env.ParseWithOptions(config, env.Options{Prefix: EnvPrefix}); err != nil {
		panic(err)
	}
}
