package kgroup

import (
	"context"
	"errors"
	"log/slog"

	"kgroup.local/internal/platform/metrics"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

const tracerName = "kgroup.local/internal/app/kgroup"

// Reverser 在 ReverseInGroups 外面包一层日志、指标和 trace，结果语义与 ReverseInGroups 完全一致。
//
// 指标写入 metrics 包的全局 collector，需要暴露时由调用方先执行 metrics.Init()。
type Reverser[T any] struct {
	logger *slog.Logger
}

// NewReverser 创建 Reverser；logger 为 nil 时使用 slog.Default()。
func NewReverser[T any](logger *slog.Logger) *Reverser[T] {
	if logger == nil {
		logger = slog.Default()
	}
	return &Reverser[T]{logger: logger}
}

// Reverse 分组翻转链表并记录 span、指标和日志，k <= 0 时返回 ErrInvalidGroupSize 且不修改链表。
func (r *Reverser[T]) Reverse(ctx context.Context, head *Node[T], k int) (*Node[T], error) {
	_, span := otel.Tracer(tracerName).Start(ctx, "kgroup.ReverseInGroups")
	defer span.End()

	n := Len(head)
	span.SetAttributes(attribute.Int("kgroup.k", k), attribute.Int("kgroup.length", n))
	metrics.ListLength.Observe(float64(n))

	newHead, groups, err := reverseInGroups(head, k)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		result := "error"
		if errors.Is(err, ErrInvalidGroupSize) {
			result = "invalid_argument"
		}
		metrics.ReverseTotal.WithLabelValues(result).Inc()
		r.logger.Warn("reverse in groups rejected", "k", k, "length", n, "err", err)
		return newHead, err
	}

	span.SetAttributes(attribute.Int("kgroup.groups", groups))
	metrics.ReverseTotal.WithLabelValues("ok").Inc()
	metrics.GroupsReversedTotal.Add(float64(groups))
	r.logger.Debug("reverse in groups done", "k", k, "length", n, "groups", groups)
	return newHead, nil
}
