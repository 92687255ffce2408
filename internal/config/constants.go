package config

const (
	envDepth       = "ASSIGN_DEPTH"
	envStatusAddr  = "ASSIGN_STATUS_ADDR"
	envWeightsFile = "ASSIGN_WEIGHTS_FILE"
	envMetricsOn   = "METRICS_ENABLED"
	envOtelService = "OTEL_SERVICE_NAME"
	envOtelEndpoint = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelInsecure = "OTEL_EXPORTER_OTLP_INSECURE"

	// Two chained moves balances placement quality against the search's
	// branching factor (teams x roster size per extra level).
	defaultDepth = 2

	defaultServiceName = "league-former"
)
