package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/matheuskafuri/wikiscroll/internal/config"
	"github.com/matheuskafuri/wikiscroll/internal/update"
	"github.com/matheuskafuri/wikiscroll/internal/wiki"
	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var (
	flagLang        string
	flagConfig      string
	flagLogFile     string
	flagMetricsAddr string
	flagCheck       bool
)

var rootCmd = &cobra.Command{
	Use:   "wikiscroll",
	Short: "Scroll through random Wikipedia articles in your terminal",
	Long:  "wikiscroll shows random Wikipedia article summaries one card at a time and keeps loading more as you scroll.",
	RunE:  runTUI,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagLang, "lang", "", "Wikipedia edition to start with (ko, en)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "path to config file")
	rootCmd.Flags().StringVar(&flagLogFile, "log-file", "", "write logs to this file instead of the default state dir")
	rootCmd.Flags().StringVar(&flagMetricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address (e.g. :9090)")

	versionCmd.Flags().BoolVar(&flagCheck, "check", false, "check GitHub for a newer release")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(randomCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "wikiscroll %s (commit: %s, built: %s)\n", version, commit, date)
		if !flagCheck {
			return
		}
		if res := update.Check(cmd.Context(), version); res != nil {
			fmt.Fprintf(out, "Update available: v%s\n", res.LatestVersion)
		} else {
			fmt.Fprintln(out, "You are up to date.")
		}
	},
}

func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func SetVersionInfo(v, c, d string) {
	version = v
	commit = c
	date = d
}

// loadConfig reads the config file and applies the --lang override.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if flagLang != "" {
		lang, err := wiki.ParseLanguage(flagLang)
		if err != nil {
			return nil, fmt.Errorf("invalid --lang value: %w", err)
		}
		cfg.Language = string(lang)
	}
	return cfg, nil
}

func userAgent(cfg *config.Config) string {
	if cfg.UserAgent != "" {
		return cfg.UserAgent
	}
	return fmt.Sprintf("wikiscroll/%s (https://github.com/matheuskafuri/wikiscroll)", version)
}

func newClient(cfg *config.Config, logger *slog.Logger) *wiki.Client {
	return wiki.NewClient(
		wiki.WithHTTPClient(&http.Client{Timeout: cfg.RequestTimeoutDuration()}),
		wiki.WithEndpoint(cfg.GetEndpoint()),
		wiki.WithUserAgent(userAgent(cfg)),
		wiki.WithRateLimit(cfg.RateLimit, cfg.RateBurst),
		wiki.WithLogger(logger),
	)
}
