package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/abhisek/autodidact/internal/store"
)

// curriculumFile is the YAML shape accepted by the seed command.
type curriculumFile struct {
	Topic     string `yaml:"topic"`
	Resources []struct {
		ID    string `yaml:"id"`
		Title string `yaml:"title"`
		URL   string `yaml:"url"`
	} `yaml:"resources"`
	Nodes []struct {
		Key        string   `yaml:"key"`
		Label      string   `yaml:"label"`
		Objectives []string `yaml:"objectives"`
		Prereqs    []string `yaml:"prereqs"`
	} `yaml:"nodes"`
}

var seedCmd = &cobra.Command{
	Use:   "seed [curriculum.yaml]",
	Short: "Load a curriculum into the database",
	Long:  "Load a curriculum from a YAML file, or a small built-in sample with --sample.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sample, _ := cmd.Flags().GetBool("sample")
		if sample == (len(args) == 1) {
			return fmt.Errorf("pass either a curriculum file or --sample")
		}

		var cur curriculumFile
		if sample {
			cur = sampleCurriculum()
		} else {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read curriculum: %w", err)
			}
			if err := yaml.Unmarshal(data, &cur); err != nil {
				return fmt.Errorf("parse curriculum: %w", err)
			}
		}
		if err := validateCurriculum(&cur); err != nil {
			return err
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
		repo := st.Curriculum()

		resources := make([]store.ResourceInfo, 0, len(cur.Resources))
		for _, r := range cur.Resources {
			resources = append(resources, store.ResourceInfo{
				ResourceID: r.ID,
				Title:      r.Title,
				URL:        r.URL,
			})
		}
		projectID, err := repo.CreateProject(ctx, cur.Topic, resources)
		if err != nil {
			return fmt.Errorf("create project: %w", err)
		}

		for _, n := range cur.Nodes {
			nodeID, err := repo.CreateNode(ctx, projectID, n.Key, n.Label)
			if err != nil {
				return fmt.Errorf("create node %q: %w", n.Key, err)
			}
			for i, desc := range n.Objectives {
				key := fmt.Sprintf("%s/obj-%d", n.Key, i+1)
				if err := repo.CreateObjective(ctx, nodeID, key, desc, i); err != nil {
					return fmt.Errorf("create objective %q: %w", key, err)
				}
			}
		}
		// Edges second so both endpoints exist.
		for _, n := range cur.Nodes {
			for _, src := range n.Prereqs {
				if err := repo.CreatePrereq(ctx, projectID, src, n.Key); err != nil {
					return fmt.Errorf("create prereq %s -> %s: %w", src, n.Key, err)
				}
			}
		}

		fmt.Printf("Loaded %q: %d nodes (project %d)\n", cur.Topic, len(cur.Nodes), projectID)
		fmt.Println("List nodes with: autodidact")
		return nil
	},
}

func init() {
	seedCmd.Flags().Bool("sample", false, "Load the built-in sample curriculum")
}

func validateCurriculum(cur *curriculumFile) error {
	if cur.Topic == "" {
		return fmt.Errorf("curriculum needs a topic")
	}
	if len(cur.Nodes) == 0 {
		return fmt.Errorf("curriculum needs at least one node")
	}
	keys := make(map[string]bool, len(cur.Nodes))
	for _, n := range cur.Nodes {
		if n.Key == "" || n.Label == "" {
			return fmt.Errorf("every node needs a key and a label")
		}
		if keys[n.Key] {
			return fmt.Errorf("duplicate node key %q", n.Key)
		}
		keys[n.Key] = true
		if len(n.Objectives) == 0 {
			return fmt.Errorf("node %q has no objectives", n.Key)
		}
	}
	for _, n := range cur.Nodes {
		for _, src := range n.Prereqs {
			if !keys[src] {
				return fmt.Errorf("node %q lists unknown prereq %q", n.Key, src)
			}
		}
	}
	return nil
}

func sampleCurriculum() curriculumFile {
	var cur curriculumFile
	// Small calculus track for trying the tutor out.
	if err := yaml.Unmarshal([]byte(sampleYAML), &cur); err != nil {
		panic(fmt.Sprintf("built-in sample curriculum is invalid: %v", err))
	}
	return cur
}

const sampleYAML = `
topic: "Single-variable calculus"
resources:
  - id: "stewart-ch2"
    title: "Stewart, Calculus, Chapter 2"
  - id: "3b1b-eoc"
    title: "3Blue1Brown, Essence of Calculus"
    url: "https://www.youtube.com/playlist?list=PLZHQObOWTQDMsr9K-rj53DwVRMYO3t5Yr"
nodes:
  - key: "limits"
    label: "Limits and Continuity"
    objectives:
      - "Explain the intuitive idea of a limit"
      - "Evaluate limits using algebraic simplification"
      - "Determine where a function is continuous"
  - key: "derivatives"
    label: "Derivatives"
    prereqs: ["limits"]
    objectives:
      - "Define the derivative as a limit of difference quotients"
      - "Differentiate polynomials using the power rule"
      - "Apply the product and chain rules"
  - key: "applications"
    label: "Applications of Differentiation"
    prereqs: ["derivatives"]
    objectives:
      - "Find local extrema using the first derivative test"
      - "Solve basic optimization problems"
`
