package config

// Config holds runtime configuration for an assignment run. CLI flags layer
// on top: a flag that was set wins over the environment.
type Config struct {
	Depth       int
	StatusAddr  string
	WeightsFile string
	Metrics     MetricsConfig
}

// MetricsConfig controls telemetry export.
type MetricsConfig struct {
	Enabled      bool
	ServiceName  string
	OtlpEndpoint string
	OtlpInsecure bool
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Depth:       intEnvOrDefault(envDepth, defaultDepth),
		StatusAddr:  envOrDefault(envStatusAddr, ""),
		WeightsFile: envOrDefault(envWeightsFile, ""),
		Metrics:     loadMetrics(),
	}
}

func loadMetrics() MetricsConfig {
	return MetricsConfig{
		Enabled:      boolEnvOrDefault(envMetricsOn, false),
		ServiceName:  envOrDefault(envOtelService, defaultServiceName),
		OtlpEndpoint: envOrDefault(envOtelEndpoint, ""),
		OtlpInsecure: boolEnvOrDefault(envOtelInsecure, false),
	}
}
