package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	// 日志配置信息
	LogLevel    slog.Level
	LogFormat   string // json / text
	ServiceName string

	GroupSize int // 默认的分组大小 k，命令行 -k 可覆盖

	OtlpGrpcEndpoint string
	OtlpServiceName  string // 未设置时沿用 ServiceName
	TracingEnabled   bool

	MetricsDump bool // 退出前把指标以文本格式写到 stderr
}

func Load() Config {
	cfg := Config{
		LogLevel:    slog.LevelInfo,
		LogFormat:   "json",
		ServiceName: "kgroup",

		GroupSize: 2,

		OtlpGrpcEndpoint: "127.0.0.1:4317",
		TracingEnabled:   false,

		MetricsDump: false,
	}

	_ = godotenv.Load(".env")

	if v, ok := os.LookupEnv("LOG_LEVEL"); ok && v != "" {
		cfg.LogLevel = ParseLevel(v)
	}
	if v, ok := os.LookupEnv("LOG_FORMAT"); ok && v != "" {
		cfg.LogFormat = strings.ToLower(v)
	}
	if v, ok := os.LookupEnv("SERVICE_NAME"); ok && v != "" {
		cfg.ServiceName = v
	}

	if v, ok := os.LookupEnv("GROUP_SIZE"); ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.GroupSize = n
		}
	}

	if v, ok := os.LookupEnv("OTLP_GRPC_ENDPOINT"); ok && v != "" {
		cfg.OtlpGrpcEndpoint = v
	}
	if v, ok := os.LookupEnv("OTLP_SERVICE_NAME"); ok && v != "" {
		cfg.OtlpServiceName = v
	}
	if cfg.OtlpServiceName == "" {
		cfg.OtlpServiceName = cfg.ServiceName
	}
	if v, ok := os.LookupEnv("TRACING_ENABLED"); ok && v != "" {
		cfg.TracingEnabled = strings.ToLower(v) == "true"
	}

	if v, ok := os.LookupEnv("METRICS_DUMP"); ok && v != "" {
		cfg.MetricsDump = strings.ToLower(v) == "true"
	}

	return cfg
}

// ParseLevel 解析日志级别，无法识别时回落到 info。
func ParseLevel(v string) slog.Level {
	switch strings.ToLower(v) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
