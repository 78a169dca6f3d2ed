package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/autodidact/internal/config"
	"github.com/abhisek/autodidact/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "autodidact",
	Short: "AI tutor for self-directed learners",
	Long:  "Autodidact — terminal tutor that teaches a curriculum node's learning objectives in a guided conversation and tracks mastery over time.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Layer .env and the YAML config under any explicit env vars.
		_, err := config.Load()
		return err
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return showOverview(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides AUTODIDACT_DB env var)")

	rootCmd.AddCommand(learnCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then AUTODIDACT_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// showOverview lists projects and nodes so the learner can pick one.
func showOverview(cmd *cobra.Command) error {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	ctx := cmd.Context()
	projects, err := st.Curriculum().Projects(ctx)
	if err != nil {
		return fmt.Errorf("list projects: %w", err)
	}

	if len(projects) == 0 {
		fmt.Println("No curriculum yet. Load one with: autodidact seed --sample")
		return nil
	}

	for _, p := range projects {
		fmt.Printf("Project %d: %s (%d nodes)\n", p.ID, p.Topic, p.NodeCount)
		nodes, err := st.Curriculum().NodeSummaries(ctx, p.ID)
		if err != nil {
			return fmt.Errorf("list nodes: %w", err)
		}
		for _, n := range nodes {
			fmt.Printf("  [%d] %-40s  %d objectives  mastery %3.0f%%\n",
				n.ID, n.Label, n.ObjectiveCount, n.AvgMastery*100)
		}
		fmt.Println()
	}
	fmt.Println("Start a lesson with: autodidact learn <node-id>")
	return nil
}
