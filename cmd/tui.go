package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/matheuskafuri/wikiscroll/internal/config"
	"github.com/matheuskafuri/wikiscroll/internal/feed"
	"github.com/matheuskafuri/wikiscroll/internal/logging"
	"github.com/matheuskafuri/wikiscroll/internal/metrics"
	"github.com/matheuskafuri/wikiscroll/internal/share"
	"github.com/matheuskafuri/wikiscroll/internal/tui"
	"github.com/spf13/cobra"
)

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logPath := flagLogFile
	if logPath == "" {
		logPath = config.LogPath()
	}
	logger, closer, err := logging.Open(logPath, cfg.SlogLevel())
	if err != nil {
		return fmt.Errorf("opening log: %w", err)
	}
	defer closer.Close()
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if flagMetricsAddr != "" {
		metrics.Serve(ctx, flagMetricsAddr, logger)
	}

	client := newClient(cfg, logger)
	fd := feed.New(client, cfg.Lang(),
		feed.WithBatchSize(cfg.GetBatchSize()),
		feed.WithLogger(logger),
	)

	logger.Info("starting wikiscroll",
		slog.String("version", version),
		slog.String("lang", string(cfg.Lang())),
		slog.Int("batch_size", fd.BatchSize()))

	return tui.Run(tui.RunOpts{
		Context:  ctx,
		Feed:     fd,
		Sharer:   share.NewClipboardSharer(),
		Link:     cfg.LinkVariant(),
		Prefetch: cfg.GetPrefetch(),
		Logger:   logger,
	})
}
