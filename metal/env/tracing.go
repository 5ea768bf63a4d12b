package env

import "strconv"

const DefaultTracingEndpoint = "http://localhost:4318"

type TracingEnvironment struct {
	Enabled     bool
	Endpoint    string  `validate:"required_if=Enabled true,omitempty,url"`
	SampleRatio float64 `validate:"gte=0,lte=1"`
}

// NewTracingEnvironment reads the ENV_TRACING_* variables. A missing or
// unparsable sample ratio keeps every trace.
func NewTracingEnvironment() TracingEnvironment {
	enabled := GetEnvVar("ENV_TRACING_ENABLED") == "true"
	endpoint := GetEnvVar("ENV_TRACING_OTLP_ENDPOINT")

	if enabled && endpoint == "" {
		endpoint = DefaultTracingEndpoint
	}

	ratio, err := strconv.ParseFloat(GetEnvVarOr("ENV_TRACING_SAMPLE_RATIO", "1"), 64)
	if err != nil {
		ratio = 1
	}

	return TracingEnvironment{
		Enabled:     enabled,
		Endpoint:    endpoint,
		SampleRatio: ratio,
	}
}
