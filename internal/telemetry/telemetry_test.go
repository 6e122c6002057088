package telemetry

import (
	"context"
	"testing"

	"github.com/go-logr/logr"
)

func TestSetupWithoutEndpoint(t *testing.T) {
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "")

	ctx := context.Background()
	shutdown, err := Setup(ctx, logr.Discard())
	if err != nil {
		t.Fatalf("Setup() error: %v", err)
	}
	if err := shutdown(ctx); err != nil {
		t.Errorf("shutdown() error: %v", err)
	}
}

func TestTracerWithoutSetupDoesNotRecord(t *testing.T) {
	ctx, span := Tracer("test").Start(context.Background(), "test.span")
	if ctx == nil {
		t.Fatal("Start() returned nil context")
	}
	if span.IsRecording() {
		t.Error("span should not be recording without a configured provider")
	}
	span.End()
}

func TestNewLoggerVerbosity(t *testing.T) {
	if !NewLogger(true).V(1).Enabled() {
		t.Error("debug logger should enable V(1)")
	}
	if NewLogger(false).V(1).Enabled() {
		t.Error("default logger should not enable V(1)")
	}
}
