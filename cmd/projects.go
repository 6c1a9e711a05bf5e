package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/spyder1211/cc-daily-reports/config"
	"github.com/spyder1211/cc-daily-reports/history"
)

var projectsCmd = &cobra.Command{
	Use:   "projects",
	Short: "List known projects",
	Long: `List the decoded display names of every project directory found
under the Claude Code projects directory, one per line.`,
	RunE: runProjects,
}

func init() {
	projectsCmd.Flags().String("projects-dir", "", "Override the Claude Code projects directory")
	rootCmd.AddCommand(projectsCmd)
}

func runProjects(cmd *cobra.Command, args []string) error {
	projectsDir, _ := cmd.Flags().GetString("projects-dir")

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	root, err := cfg.ResolveProjectsDir(projectsDir)
	if err != nil {
		return err
	}

	for _, name := range history.NewParser(root).ListProjects() {
		fmt.Fprintln(cmd.OutOrStdout(), name)
	}
	return nil
}
