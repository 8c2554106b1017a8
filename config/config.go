package config

import "github.com/kelseyhightower/envconfig"

const (
	// defaultHardLimitBytes is the default capacity ceiling beyond which
	// the engine refuses to allocate a DSF: 32 GiB.
	defaultHardLimitBytes int64 = 32 << 30

	// defaultAdvisoryBytes is the default threshold past which a sparse
	// node-ID range triggers a one-time advisory log line rather than a
	// hard failure: 8 GiB.
	defaultAdvisoryBytes int64 = 8 << 30

	defaultLogLevel = "info"
)

// EngineConfig holds the capacity and observability knobs shared by the
// graph and entity packages. Zero value is not meaningful; use Default
// or FromEnv.
type EngineConfig struct {
	// HardLimitBytes is the estimated-memory ceiling above which an
	// operation fails with CapacityExceeded before any large allocation.
	HardLimitBytes int64 `envconfig:"HARD_LIMIT_BYTES" default:"34359738368"`

	// AdvisoryBytes is the estimated-memory threshold above which a
	// one-time advisory is logged; the computation still proceeds.
	AdvisoryBytes int64 `envconfig:"ADVISORY_BYTES" default:"8589934592"`

	// LogLevel is the minimum zap level name ("debug","info","warn","error")
	// an Engine's logger is built with.
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	// MetricsEnabled toggles whether an Engine's operations record to the
	// package-level Prometheus collectors.
	MetricsEnabled bool `envconfig:"METRICS_ENABLED" default:"true"`
}

// Default returns EngineConfig with its documented defaults, independent
// of the environment.
func Default() EngineConfig {
	return EngineConfig{
		HardLimitBytes: defaultHardLimitBytes,
		AdvisoryBytes:  defaultAdvisoryBytes,
		LogLevel:       defaultLogLevel,
		MetricsEnabled: true,
	}
}

// FromEnv loads EngineConfig from environment variables prefixed
// CONEXUS_ (e.g. CONEXUS_HARD_LIMIT_BYTES), falling back to Default's
// values for anything unset.
func FromEnv() (EngineConfig, error) {
	cfg := Default()
	if err := envconfig.Process("conexus", &cfg); err != nil {
		return EngineConfig{}, err
	}
	return cfg, nil
}
