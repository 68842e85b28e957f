package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/naka-gawa/repo-stats/internal/config"
	"github.com/naka-gawa/repo-stats/internal/gateway"
	"github.com/naka-gawa/repo-stats/internal/report"
	"github.com/naka-gawa/repo-stats/internal/usecase"
)

var reposCmd = &cobra.Command{
	Use:   "repos",
	Short: "Aggregates stars and forks for an explicit list of repositories",
	Long: `Reads a JSON array of repository URLs, looks each one up, totals their stars
and forks, and writes one CSV row per repository to
./specific-repos-stats/specific-repos-stats-<yyyy-mm-dd>.csv.
Entries that cannot be parsed or fetched are logged and skipped.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		logger := newLogger(cmd)

		input, _ := cmd.Flags().GetString("input")
		envFile, _ := cmd.Flags().GetString("env-file")

		cfg, err := config.Load(envFile)
		if err != nil {
			return err
		}
		urls, err := config.LoadRepoURLs(input)
		if err != nil {
			return err
		}

		githubGateway, err := gateway.NewGitHubGateway(cfg.Token, cfg.APIBaseURL, logger)
		if err != nil {
			return fmt.Errorf("failed to create GitHub gateway: %w", err)
		}
		result := usecase.NewAggregator(githubGateway, logger).AggregateList(ctx, urls)
		entry := logger.WithFields(logrus.Fields{"listed": len(urls), "skipped": result.Skipped})
		if result.Skipped > 0 {
			entry.Warnf("%d of %d repositories were skipped", result.Skipped, len(urls))
		} else {
			entry.Infof("All %d listed repositories were resolved", len(urls))
		}

		out := cmd.OutOrStdout()
		report.Summarize(out, result)

		writer := report.NewWriter(outDir(cmd, "./specific-repos-stats"), "specific-repos-stats")
		path, err := writer.Write(result)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "CSV file created: %s\n", path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(reposCmd)
	reposCmd.Flags().StringP("input", "i", "specific-repos.json", "JSON file containing an array of repository URLs")
}
