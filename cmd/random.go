package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/matheuskafuri/wikiscroll/internal/feed"
	"github.com/matheuskafuri/wikiscroll/internal/logging"
	"github.com/matheuskafuri/wikiscroll/internal/wiki"
	"github.com/spf13/cobra"
)

var (
	flagCount int
	flagJSON  bool
)

var randomCmd = &cobra.Command{
	Use:   "random",
	Short: "Print a batch of random article summaries",
	Long: `Fetch one batch of random summaries and print them without starting the viewer.

The batch size comes from config (default: 5) unless overridden with -n.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		logger := logging.New(os.Stderr, cfg.SlogLevel())

		n := cfg.GetBatchSize()
		if flagCount > 0 {
			n = flagCount
		}

		fd := feed.New(newClient(cfg, logger), cfg.Lang(),
			feed.WithBatchSize(n),
			feed.WithLogger(logger),
		)
		if _, err := fd.LoadMore(cmd.Context()); err != nil {
			return fmt.Errorf("fetching summaries: %w", err)
		}

		if flagJSON {
			return printJSON(cmd.OutOrStdout(), fd.Items())
		}
		printSummaries(cmd.OutOrStdout(), fd.Items(), cfg.LinkVariant())
		return nil
	},
}

func init() {
	randomCmd.Flags().IntVarP(&flagCount, "count", "n", 0, "number of summaries to fetch")
	randomCmd.Flags().BoolVar(&flagJSON, "json", false, "print summaries as JSON")
}

func printJSON(w io.Writer, items []wiki.Summary) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(items)
}

func printSummaries(w io.Writer, items []wiki.Summary, link wiki.LinkVariant) {
	for i, s := range items {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "[%s] %s\n", s.Lang, s.Title)
		if s.Description != "" {
			fmt.Fprintf(w, "    %s\n", s.Description)
		}
		if extract := strings.TrimSpace(s.Extract); extract != "" {
			fmt.Fprintf(w, "    %s\n", truncate(extract, 280))
		}
		fmt.Fprintf(w, "    %s\n", s.Link(link))
	}
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	if n <= 3 {
		return string(runes[:n])
	}
	return string(runes[:n-3]) + "..."
}
