package cmd

import (
	"context"
	"log/slog"
	"time"

	"github.com/spf13/viper"

	"github.com/linkvet/linkvet/internal/analyzer"
	"github.com/linkvet/linkvet/pkg/blacklist"
)

// buildAnalyzer wires the blacklist sources into an analyzer. The remote
// feed is fetched exactly once here; a failed fetch degrades remote
// coverage for the life of the process and is never retried.
func buildAnalyzer(ctx context.Context, logger *slog.Logger) *analyzer.Analyzer {
	timeout := time.Duration(viper.GetInt("fetch_timeout_seconds")) * time.Second

	remote := blacklist.NewRemote(viper.GetString("feed_url"), timeout, logger)

	fetchCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	// Fail open: the fetch outcome is recorded inside the source.
	_ = remote.Fetch(fetchCtx)

	sources := blacklist.NewRegistry(
		blacklist.NewLocal(viper.GetString("local_list"), logger),
		remote,
	)

	return analyzer.New(sources, analyzer.DefaultConfig(), logger)
}
