// Package cmd contains all the CLI commands for the application,
// built using the Cobra library.
package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "repo-stats",
	Short: "A CLI tool to aggregate GitHub repository stars and forks.",
	Long: `repo-stats is a CLI tool that totals stars and forks across either every
public, non-archived repository of a GitHub organization or an explicit list
of repositories, and writes the per-repository numbers to a dated CSV file.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	// Add a persistent flag for verbose output, available to all commands.
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose/debug logging")
	rootCmd.PersistentFlags().String("env-file", ".env", "Optional dotenv file to load before reading the environment")
	rootCmd.PersistentFlags().String("out-dir", "", "Override the output directory for the CSV report")
}

// newLogger builds the stderr logger shared by every subcommand.
func newLogger(cmd *cobra.Command) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(cmd.ErrOrStderr())
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		logger.SetLevel(logrus.DebugLevel)
	}
	return logger
}

// outDir returns the --out-dir override, or def when none was given.
func outDir(cmd *cobra.Command, def string) string {
	if dir, _ := cmd.Flags().GetString("out-dir"); dir != "" {
		return dir
	}
	return def
}
