// Package quiz generates and grades the final test of a tutoring session.
package quiz

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/abhisek/autodidact/internal/llm"
)

// MaxQuestions caps the size of a generated final test.
const MaxQuestions = 6

// FallbackQuestions replace a failed test generation so the session can
// still finish with a graded assessment.
var FallbackQuestions = []string{
	"Can you explain the main concept we covered today in your own words?",
	"What was the most important thing you learned in this session?",
	"How would you apply what you learned to a real-world scenario?",
}

const generatePromptTemplate = `You are an assessment author.

Write %d stand-alone quiz questions that test the learner's knowledge
of the following learning objectives:

%s

Rules
-----
1. Vary the type:
   - multiple-choice (label options a, b, c on new lines)
   - short-answer (append "(answer in short)" at the end)
   - paraphrase (ask for a paraphrase)
2. One question can reference one or more objectives, but cover all
   objectives at least once in total.
3. Do not show the answers.
4. Output format:
   1. <question one>
   2. <question two>
   ...`

var leadingNumberRe = regexp.MustCompile(`^(\d+)\.\s*(.*)$`)

// Generate asks the model for up to maxQuestions quiz questions over the
// given objective descriptions and returns them as plain strings.
func Generate(ctx context.Context, p llm.Provider, objectives []string, maxQuestions int) ([]string, error) {
	if maxQuestions <= 0 || maxQuestions > MaxQuestions {
		maxQuestions = MaxQuestions
	}

	var objList strings.Builder
	for _, o := range objectives {
		objList.WriteString("- " + o + "\n")
	}

	ctx = llm.WithPurpose(ctx, "test-gen")
	resp, err := p.Generate(ctx, llm.Request{
		Messages: []llm.Message{{
			Role:    llm.RoleUser,
			Content: fmt.Sprintf(generatePromptTemplate, maxQuestions, strings.TrimRight(objList.String(), "\n")),
		}},
		MaxTokens:   2048,
		Temperature: 0.7,
	})
	if err != nil {
		return nil, fmt.Errorf("generate final test: %w", err)
	}

	text := strings.TrimSpace(resp.Text())
	questions := parseNumberedQuestions(text, maxQuestions)

	// Parsing failed: keep the entire response as a single question
	// rather than dropping the test.
	if len(questions) == 0 && text != "" {
		questions = []string{text}
	}
	if len(questions) > maxQuestions {
		questions = questions[:maxQuestions]
	}
	return questions, nil
}

// parseNumberedQuestions splits "1. ..." lines out of the model response.
func parseNumberedQuestions(text string, maxQuestions int) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		m := leadingNumberRe.FindStringSubmatch(strings.TrimSpace(line))
		if m == nil {
			continue
		}
		n, err := strconv.Atoi(m[1])
		if err != nil || n < 1 || n > maxQuestions+1 {
			continue
		}
		if q := strings.TrimSpace(m[2]); q != "" {
			out = append(out, q)
		}
	}
	return out
}
