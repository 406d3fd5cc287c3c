package trace

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/sdk/resource"
	"go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.37.0"
)

// InitTrace 创建 OTLP gRPC 导出器并设置全局 TracerProvider，返回 shutdown。
// 导出器是惰性连接的，endpoint 不可达时不会在这里报错。
func InitTrace(endpoint string, serviceName string) (shutdown func(context.Context) error, err error) {
	ctx, stop := context.WithTimeout(context.Background(), 5*time.Second)
	defer stop()

	exporter, err := otlptracegrpc.New(ctx, otlptracegrpc.WithEndpoint(endpoint), otlptracegrpc.WithInsecure())
	if err != nil {
		return nil, fmt.Errorf("otlptracegrpc: %w", err)
	}
	tp := NewProvider(serviceName, trace.WithBatcher(exporter))
	otel.SetTracerProvider(tp)
	return tp.Shutdown, nil
}

// NewProvider 创建带 service.name 资源的 TracerProvider，额外的 opts 用于挂接导出器或 SpanProcessor。
func NewProvider(serviceName string, opts ...trace.TracerProviderOption) *trace.TracerProvider {
	opts = append(opts, trace.WithResource(resource.NewWithAttributes(semconv.SchemaURL, semconv.ServiceName(serviceName))))
	return trace.NewTracerProvider(opts...)
}
