package observability

import (
	"context"
	"testing"

	"github.com/signalsfoundry/orbital-elements/internal/logging"
)

func TestInitTracing_DisabledReturnsNoopShutdown(t *testing.T) {
	shutdown, err := InitTracing(context.Background(), TracingConfig{Enabled: false}, logging.Noop())
	if err != nil {
		t.Fatalf("InitTracing: %v", err)
	}
	if shutdown == nil {
		t.Fatal("expected non-nil shutdown func")
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("noop shutdown returned error: %v", err)
	}
	// Must tolerate nil and noop shutdown funcs alike.
	ShutdownWithTimeout(context.Background(), shutdown, logging.Noop())
	ShutdownWithTimeout(context.Background(), nil, nil)
}

func TestInitTracing_RejectsUnknownExporter(t *testing.T) {
	cfg := TracingConfig{Enabled: true, Exporter: "carrier-pigeon", ServiceName: "coe-test", SampleRatio: 1}
	if _, err := InitTracing(context.Background(), cfg, logging.Noop()); err == nil {
		t.Fatal("expected error for unknown exporter")
	}
}

func TestTracingConfigFromEnv_Defaults(t *testing.T) {
	t.Setenv("COE_TRACING_ENABLED", "")
	t.Setenv("COE_TRACING_EXPORTER", "")
	t.Setenv("COE_TRACING_SERVICE_NAME", "")
	t.Setenv("COE_TRACING_SAMPLE_RATIO", "")

	cfg := TracingConfigFromEnv()
	if cfg.Enabled {
		t.Error("tracing enabled by default, want disabled")
	}
	if cfg.Exporter != "stdout" {
		t.Errorf("Exporter = %q, want stdout", cfg.Exporter)
	}
	if cfg.ServiceName != "coe-solver" {
		t.Errorf("ServiceName = %q, want coe-solver", cfg.ServiceName)
	}
	if cfg.SampleRatio != 1.0 {
		t.Errorf("SampleRatio = %v, want 1.0", cfg.SampleRatio)
	}
}
