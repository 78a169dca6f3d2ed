package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/abhisek/autodidact/internal/app"
	"github.com/abhisek/autodidact/internal/llm"
	"github.com/abhisek/autodidact/internal/store"
	"github.com/abhisek/autodidact/internal/tutor"
)

var learnCmd = &cobra.Command{
	Use:   "learn <node-id>",
	Short: "Start or resume a tutoring session for a curriculum node",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		nodeID, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("node ID must be a number, got %q", args[0])
		}

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
		events, err := st.Events()
		if err != nil {
			return fmt.Errorf("open event log: %w", err)
		}
		provider, err := llm.NewProviderFromEnv(ctx, events)
		if err != nil {
			return fmt.Errorf("configure LLM provider: %w", err)
		}

		engine := tutor.NewEngine(provider, st.Curriculum(), st.Sessions(),
			tutor.WithLearnerProfile(os.Getenv("AUTODIDACT_LEARNER_PROFILE")))

		// Pick up an interrupted session for this node unless told not to.
		fresh, _ := cmd.Flags().GetBool("fresh")
		sessionID, err := st.Sessions().ActiveSession(ctx, nodeID)
		if err != nil {
			return fmt.Errorf("look up active session: %w", err)
		}
		if sessionID != "" {
			if !fresh {
				return app.ResumeSession(engine, sessionID)
			}
			if err := st.Sessions().AbandonSession(ctx, sessionID); err != nil {
				return fmt.Errorf("abandon previous session: %w", err)
			}
		}

		node, err := st.Curriculum().NodeWithObjectives(ctx, nodeID)
		if err != nil {
			return fmt.Errorf("load node: %w", err)
		}
		if node == nil {
			return fmt.Errorf("no curriculum node with ID %d (run 'autodidact' to list nodes)", nodeID)
		}
		return app.RunSession(engine, node.ProjectID, nodeID)
	},
}

func init() {
	learnCmd.Flags().Bool("fresh", false, "Start a new session even if an interrupted one exists")
}
