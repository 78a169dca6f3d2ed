package quiz

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/abhisek/autodidact/internal/llm"
)

func gradeResponse(score float64) llm.MockResponse {
	b, _ := json.Marshal(map[string]any{"score": score, "feedback": "noted"})
	return llm.MockResponse{Content: b}
}

func TestGradeAveragesScores(t *testing.T) {
	mock := llm.NewMockProvider(gradeResponse(1.0), gradeResponse(0.5))

	scores, overall, err := Grade(t.Context(), mock,
		[]string{"Q1?", "Q2?"},
		[]string{"right", "half right"})
	if err != nil {
		t.Fatalf("Grade: %v", err)
	}

	if len(scores) != 2 || scores[0] != 1.0 || scores[1] != 0.5 {
		t.Errorf("unexpected per-question scores: %v", scores)
	}
	if overall != 0.75 {
		t.Errorf("expected overall 0.75, got %v", overall)
	}
}

func TestGradePadsMissingAnswers(t *testing.T) {
	mock := llm.NewMockProvider(gradeResponse(1.0), gradeResponse(0.0))

	scores, _, err := Grade(t.Context(), mock,
		[]string{"Q1?", "Q2?"},
		[]string{"only one answer"})
	if err != nil {
		t.Fatalf("Grade: %v", err)
	}
	if len(scores) != 2 {
		t.Fatalf("expected every question graded, got %d scores", len(scores))
	}

	// The unanswered question is still sent to the grader, with a blank
	// answer.
	second := mock.Calls[1].Messages[0].Content
	if !strings.Contains(second, "Learner answer:\n") || strings.Contains(second, "only one answer") {
		t.Errorf("expected blank answer in second grading request:\n%s", second)
	}
}

func TestGradeClampsOutOfRangeScores(t *testing.T) {
	mock := llm.NewMockProvider(gradeResponse(1.4))

	scores, _, err := Grade(t.Context(), mock, []string{"Q1?"}, []string{"a"})
	if err != nil {
		t.Fatalf("Grade: %v", err)
	}
	if scores[0] != 1.0 {
		t.Errorf("expected score clamped to 1.0, got %v", scores[0])
	}
}

func TestGradeProviderErrorAbortsRun(t *testing.T) {
	// Only one response for two questions: the second grading call fails
	// and the whole run reports an error for the caller's fallback.
	mock := llm.NewMockProvider(gradeResponse(1.0))

	if _, _, err := Grade(t.Context(), mock, []string{"Q1?", "Q2?"}, []string{"a", "b"}); err == nil {
		t.Fatal("expected error when grading aborts midway")
	}
}

func TestGradeMalformedVerdictIsAnError(t *testing.T) {
	mock := llm.NewMockProvider(llm.TextResponse("I'd give that a B+"))

	if _, _, err := Grade(t.Context(), mock, []string{"Q1?"}, []string{"a"}); err == nil {
		t.Fatal("expected error for unparseable grader output")
	}
}
