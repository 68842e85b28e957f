package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/naka-gawa/repo-stats/internal/config"
	"github.com/naka-gawa/repo-stats/internal/gateway"
	"github.com/naka-gawa/repo-stats/internal/report"
	"github.com/naka-gawa/repo-stats/internal/usecase"
)

var orgCmd = &cobra.Command{
	Use:   "org",
	Short: "Aggregates stars and forks across an organization's public repositories",
	Long: `Lists every public, non-archived repository of a GitHub organization page by page,
totals their stars and forks, and writes one CSV row per repository to
./<org>-public-repos-stats/<org>-repos-stats-<yyyy-mm-dd>.csv.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		logger := newLogger(cmd)

		org, _ := cmd.Flags().GetString("org")
		perPage, _ := cmd.Flags().GetInt("per-page")
		envFile, _ := cmd.Flags().GetString("env-file")

		cfg, err := config.Load(envFile)
		if err != nil {
			return err
		}

		// Inject dependencies and run the main business logic.
		githubGateway, err := gateway.NewGitHubGateway(cfg.Token, cfg.APIBaseURL, logger)
		if err != nil {
			return fmt.Errorf("failed to create GitHub gateway: %w", err)
		}
		aggregator := usecase.NewAggregator(githubGateway, logger)

		result, err := aggregator.AggregateOrg(ctx, org, perPage)
		if err != nil {
			return fmt.Errorf("failed to aggregate stats: %w", err)
		}

		out := cmd.OutOrStdout()
		report.Summarize(out, result)

		writer := report.NewWriter(outDir(cmd, "./"+org+"-public-repos-stats"), org+"-repos-stats")
		path, err := writer.Write(result)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "CSV file created: %s\n", path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(orgCmd)
	orgCmd.Flags().StringP("org", "o", "hashgraph", "Target GitHub organization name")
	orgCmd.Flags().Int("per-page", 20, fmt.Sprintf("Repositories requested per page (1-%d)", gateway.MaxPageSize))
}
