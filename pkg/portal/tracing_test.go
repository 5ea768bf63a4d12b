package portal

import (
	"strings"
	"testing"

	"github.com/paragon0107/notive/metal/env"
)

func TestExporterOptions(t *testing.T) {
	testCases := []struct {
		name     string
		endpoint string
		want     int
		fails    bool
	}{
		{name: "local collector", endpoint: "http://localhost:4318", want: 2},
		{name: "tls collector with path", endpoint: "https://otel.example.com/otlp/v1/traces/", want: 2},
		{name: "tls root", endpoint: "https://otel.example.com/", want: 1},
		{name: "host only", endpoint: "localhost:4318", fails: true},
		{name: "empty", endpoint: "", fails: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			opts, err := exporterOptions(tc.endpoint)

			if tc.fails {
				if err == nil {
					t.Fatalf("expected error for %q", tc.endpoint)
				}

				return
			}

			if err != nil || len(opts) != tc.want {
				t.Fatalf("expected %d options, got %d (%v)", tc.want, len(opts), err)
			}
		})
	}
}

func TestSamplerFor(t *testing.T) {
	if got := samplerFor(1).Description(); !strings.Contains(got, "AlwaysOnSampler") {
		t.Fatalf("unexpected sampler %q", got)
	}

	if got := samplerFor(0.25).Description(); !strings.Contains(got, "TraceIDRatioBased{0.25}") {
		t.Fatalf("unexpected sampler %q", got)
	}
}

func TestNewTracerProviderDisabled(t *testing.T) {
	tp, err := NewTracerProvider(&env.Environment{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if tp.Provider != nil {
		t.Fatalf("expected no sdk provider while disabled")
	}

	if err := tp.Shutdown(); err != nil {
		t.Fatalf("shutdown: %v", err)
	}
}
