package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	version    = defaultVersion
	commitHash = defaultCommitHash
	buildDate  = defaultBuildDate
)

// SetVersionInfo sets the build version info from ldflags.
func SetVersionInfo(v, c, d string) {
	version, commitHash, buildDate = resolveVersionInfo(v, c, d, readBuildInfo())
}

var rootCmd = &cobra.Command{
	Use:   "cc-daily-reports",
	Short: "Generate daily work reports from Claude Code session logs",
	Long: `cc-daily-reports reconstructs what you worked on from Claude Code's
session logs: it groups the raw JSONL events into per-project work
sessions for a chosen day and reports time spent, instructions given,
and a cross-project summary.`,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(formatVersionLine(version, commitHash, buildDate))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
