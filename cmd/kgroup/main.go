package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"kgroup.local/internal/app/kgroup"
	"kgroup.local/internal/platform/config"
	"kgroup.local/internal/platform/metrics"
	"kgroup.local/internal/platform/trace"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"
)

var (
	version   = "dev"
	commit    = "none"
	buildTime = "unknown"
)

// initTrace 在测试里替换，用来观察 shutdown 是否被调用
var initTrace = trace.InitTrace

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run 执行一次命令并返回退出码：0 成功，2 组大小不合法，1 其他错误。
// 所有收尾（trace flush）都在返回前完成，main 只负责 os.Exit。
func run(args []string, stdout, stderr io.Writer) int {
	cfg := config.Load()
	slog.SetDefault(newLogger(stderr, cfg))
	metrics.Init()

	if cfg.TracingEnabled {
		shutdown, err := initTrace(cfg.OtlpGrpcEndpoint, cfg.OtlpServiceName)
		if err != nil {
			slog.Error("Trace init failed", "err", err)
		} else {
			defer func() {
				ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
				defer cancel()
				if err := shutdown(ctx); err != nil {
					slog.Error(err.Error())
				}
			}()
		}
	}

	cmd := newRootCmd(cfg, prometheus.DefaultGatherer)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	if err := cmd.Execute(); err != nil {
		if errors.Is(err, kgroup.ErrInvalidGroupSize) {
			return 2
		}
		fmt.Fprintln(stderr, "error:", err)
		return 1
	}
	return 0
}

func newLogger(w io.Writer, cfg config.Config) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.LogLevel}
	if cfg.LogFormat == "text" {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}

func newRootCmd(cfg config.Config, gatherer prometheus.Gatherer) *cobra.Command {
	groupSize := cfg.GroupSize
	dumpMetrics := cfg.MetricsDump

	cmd := &cobra.Command{
		Use:   "kgroup [values...]",
		Short: "Reverse a list in groups of k",
		Long: `Build a singly linked list from the given values, reverse every
run of k consecutive nodes in place and print the result.

A trailing run shorter than k keeps its original order.

Examples:
  # 2 1 4 3 5
  kgroup -k 2 1 2 3 4 5

  # 3 2 1 4 5
  kgroup -k 3 1 2 3 4 5`,
		Version:       fmt.Sprintf("%s (commit %s, built %s)", version, commit, buildTime),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			// 无论成功失败都输出本次运行后的指标
			if dumpMetrics {
				defer func() {
					if werr := writeMetrics(cmd.ErrOrStderr(), gatherer); werr != nil && err == nil {
						err = werr
					}
				}()
			}

			r := kgroup.NewReverser[string](slog.Default())
			head, err := r.Reverse(cmd.Context(), kgroup.FromSlice(args), groupSize)
			if err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), "error:", err)
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), strings.Join(kgroup.Values(head), " "))
			return nil
		},
	}

	cmd.Flags().IntVarP(&groupSize, "group-size", "k", groupSize, "Group size k (must be >= 1)")
	cmd.Flags().BoolVar(&dumpMetrics, "metrics", dumpMetrics, "Write collected metrics to stderr after the run")
	return cmd
}

// writeMetrics 以 Prometheus 文本格式输出 gatherer 中的全部指标。
func writeMetrics(w io.Writer, gatherer prometheus.Gatherer) error {
	mfs, err := gatherer.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	enc := expfmt.NewEncoder(w, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, mf := range mfs {
		if err := enc.Encode(mf); err != nil {
			return fmt.Errorf("encode metrics: %w", err)
		}
	}
	return nil
}
