package trace

import (
	"context"
	"testing"
	"time"

	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	semconv "go.opentelemetry.io/otel/semconv/v1.37.0"
)

func TestNewProvider_SetsServiceName(t *testing.T) {
	sr := tracetest.NewSpanRecorder()
	tp := NewProvider("kgroup-test", sdktrace.WithSpanProcessor(sr))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	_, span := tp.Tracer("test").Start(context.Background(), "op")
	span.End()

	spans := sr.Ended()
	if len(spans) != 1 {
		t.Fatalf("spans: got %d, want 1", len(spans))
	}
	v, ok := spans[0].Resource().Set().Value(semconv.ServiceNameKey)
	if !ok || v.AsString() != "kgroup-test" {
		t.Fatalf("service.name: got %q (present=%v), want %q", v.AsString(), ok, "kgroup-test")
	}
}

func TestInitTrace_SetsGlobalProvider(t *testing.T) {
	// gRPC 连接是惰性的，不需要真的有 collector
	shutdown, err := InitTrace("127.0.0.1:4317", "kgroup-test")
	if err != nil {
		t.Fatalf("InitTrace: %v", err)
	}
	if _, ok := otel.GetTracerProvider().(*sdktrace.TracerProvider); !ok {
		t.Fatalf("global provider: got %T, want *sdktrace.TracerProvider", otel.GetTracerProvider())
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	_ = shutdown(ctx)
}
