package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	// once 保证指标只注册一次，重复注册同名指标会 panic。
	once sync.Once

	// ReverseTotal：ReverseInGroups 调用次数（Counter）。
	//
	// labels：
	// - result：ok / invalid_argument
	ReverseTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kgroup_reverse_total",
			Help: "分组翻转调用的总数",
		},
		[]string{"result"},
	)

	// GroupsReversedTotal：累计翻转的完整分组数，不足 k 的尾部不计。
	GroupsReversedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "kgroup_groups_reversed_total",
			Help: "Total number of k-sized groups reversed.",
		},
	)

	// ListLength：每次调用输入链表的长度分布（Histogram）。
	ListLength = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "kgroup_list_length",
			Help:    "Length distribution of lists passed to the reverser.",
			Buckets: prometheus.ExponentialBuckets(1, 4, 8),
		},
	)
)

// Init 把 kgroup 的指标注册到默认 registry，多次调用只生效一次。
func Init() {
	once.Do(func() {
		prometheus.MustRegister(
			ReverseTotal,
			GroupsReversedTotal,
			ListLength,
		)
	})
}
