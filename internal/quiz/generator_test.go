package quiz

import (
	"strings"
	"testing"

	"github.com/abhisek/autodidact/internal/llm"
)

func TestGenerateParsesNumberedQuestions(t *testing.T) {
	mock := llm.NewMockProvider(llm.TextResponse(
		"1. What is a derivative? (answer in short)\n" +
			"2. Paraphrase the limit definition.\n" +
			"3. Which rule applies to x^2?\na) chain rule\nb) power rule\nc) quotient rule",
	))

	questions, err := Generate(t.Context(), mock, []string{"Explain derivatives"}, MaxQuestions)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if len(questions) != 3 {
		t.Fatalf("expected 3 questions, got %d: %v", len(questions), questions)
	}
	if questions[0] != "What is a derivative? (answer in short)" {
		t.Errorf("unexpected first question: %q", questions[0])
	}
	// Option lines belong to their question, not the question list.
	if strings.HasPrefix(questions[2], "a)") {
		t.Errorf("option line parsed as a question: %q", questions[2])
	}
}

func TestGenerateCapsQuestionCount(t *testing.T) {
	mock := llm.NewMockProvider(llm.TextResponse(
		"1. one\n2. two\n3. three\n4. four\n5. five\n6. six\n7. seven\n8. eight",
	))

	questions, err := Generate(t.Context(), mock, []string{"obj"}, MaxQuestions)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(questions) > MaxQuestions {
		t.Errorf("expected at most %d questions, got %d", MaxQuestions, len(questions))
	}
}

func TestGenerateWholeResponseFallback(t *testing.T) {
	mock := llm.NewMockProvider(llm.TextResponse("Describe everything you learned today."))

	questions, err := Generate(t.Context(), mock, []string{"obj"}, 3)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(questions) != 1 || questions[0] != "Describe everything you learned today." {
		t.Errorf("expected whole response kept as single question, got %v", questions)
	}
}

func TestGenerateIncludesObjectivesInPrompt(t *testing.T) {
	mock := llm.NewMockProvider(llm.TextResponse("1. q"))

	_, err := Generate(t.Context(), mock, []string{"Explain limits", "Differentiate polynomials"}, 2)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if len(mock.Calls) != 1 {
		t.Fatalf("expected 1 model call, got %d", len(mock.Calls))
	}
	prompt := mock.Calls[0].Messages[0].Content
	if !strings.Contains(prompt, "- Explain limits") || !strings.Contains(prompt, "- Differentiate polynomials") {
		t.Errorf("objectives missing from prompt:\n%s", prompt)
	}
}

func TestGeneratePropagatesProviderError(t *testing.T) {
	mock := llm.NewMockProvider()

	if _, err := Generate(t.Context(), mock, []string{"obj"}, 3); err == nil {
		t.Fatal("expected provider error to propagate")
	}
}
