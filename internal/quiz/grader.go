package quiz

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/abhisek/autodidact/internal/llm"
)

const graderSystemPrompt = "You are a strict but fair examiner. " +
	"Read the question and the learner's answer, then score it. " +
	"Score 1.0 means fully correct; 0.5 partially correct; 0.0 incorrect or blank."

// gradeSchema constrains the grader to a machine-readable verdict.
var gradeSchema = &llm.Schema{
	Name:        "grade",
	Description: "Score and feedback for one test answer.",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"score": map[string]any{
				"type":        "number",
				"minimum":     0,
				"maximum":     1,
				"description": "1.0 fully correct, 0.5 partially correct, 0.0 incorrect or blank.",
			},
			"feedback": map[string]any{
				"type":        "string",
				"description": "One sentence of feedback for the learner.",
			},
		},
		"required":             []any{"score", "feedback"},
		"additionalProperties": false,
	},
}

type gradeResult struct {
	Score    float64 `json:"score"`
	Feedback string  `json:"feedback"`
}

// Grade scores aligned questions and answers. Missing answers score 0.
// Returns per-question scores and their mean; any model failure aborts
// the whole grading run so the caller can apply its fallback policy.
func Grade(ctx context.Context, p llm.Provider, questions, answers []string) ([]float64, float64, error) {
	ctx = llm.WithPurpose(ctx, "grading")

	scores := make([]float64, 0, len(questions))
	for i, q := range questions {
		answer := ""
		if i < len(answers) {
			answer = answers[i]
		}

		score, err := gradeOne(ctx, p, q, answer)
		if err != nil {
			return nil, 0, fmt.Errorf("grade question %d: %w", i+1, err)
		}
		scores = append(scores, score)
	}

	overall := 0.0
	if len(scores) > 0 {
		var sum float64
		for _, s := range scores {
			sum += s
		}
		overall = sum / float64(len(scores))
	}
	return scores, overall, nil
}

func gradeOne(ctx context.Context, p llm.Provider, question, answer string) (float64, error) {
	resp, err := p.Generate(ctx, llm.Request{
		System: graderSystemPrompt,
		Messages: []llm.Message{{
			Role:    llm.RoleUser,
			Content: fmt.Sprintf("Question:\n%s\n\nLearner answer:\n%s", question, answer),
		}},
		Schema:      gradeSchema,
		MaxTokens:   512,
		Temperature: 0, // deterministic scoring
	})
	if err != nil {
		return 0, err
	}

	var result gradeResult
	if err := json.Unmarshal(resp.Content, &result); err != nil {
		return 0, fmt.Errorf("parse grader output: %w", err)
	}

	if result.Score < 0 {
		result.Score = 0
	}
	if result.Score > 1 {
		result.Score = 1
	}
	return result.Score, nil
}
