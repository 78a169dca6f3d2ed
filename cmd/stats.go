package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/autodidact/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show mastery progress and LLM usage",
	RunE: func(cmd *cobra.Command, args []string) error {
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
			fmt.Println("No curriculum loaded yet.")
			return nil
		}

		for _, p := range projects {
			fmt.Printf("\n%s\n", p.Topic)
			fmt.Println(strings.Repeat("─", 72))
			fmt.Printf("%-4s %-36s %10s %10s\n", "ID", "NODE", "OBJECTIVES", "MASTERY")
			nodes, err := st.Curriculum().NodeSummaries(ctx, p.ID)
			if err != nil {
				return fmt.Errorf("list nodes: %w", err)
			}
			for _, n := range nodes {
				fmt.Printf("%-4d %-36s %10d %9.0f%%\n",
					n.ID, truncate(n.Label, 36), n.ObjectiveCount, n.AvgMastery*100)
			}
		}

		events, err := st.Events()
		if err != nil {
			return fmt.Errorf("open event log: %w", err)
		}
		usage, err := events.Usage(ctx)
		if err != nil {
			return fmt.Errorf("aggregate usage: %w", err)
		}
		if len(usage) == 0 {
			return nil
		}

		fmt.Println("\nLLM usage")
		fmt.Println(strings.Repeat("─", 72))
		fmt.Printf("%-12s %-16s %9s %12s %12s\n", "PROVIDER", "PURPOSE", "REQUESTS", "IN TOKENS", "OUT TOKENS")
		var reqs, in, out int
		for _, u := range usage {
			fmt.Printf("%-12s %-16s %9d %12d %12d\n",
				u.Provider, u.Purpose, u.Requests, u.InputTokens, u.OutputTokens)
			reqs += u.Requests
			in += u.InputTokens
			out += u.OutputTokens
		}
		fmt.Println(strings.Repeat("─", 72))
		fmt.Printf("%-12s %-16s %9d %12d %12d\n", "total", "", reqs, in, out)
		return nil
	},
}
