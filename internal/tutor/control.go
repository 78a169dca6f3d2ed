package tutor

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/abhisek/autodidact/internal/llm"
)

// The model embeds machine-readable fragments like
// <control>{"objective_complete": true}</control> inside its prose.
// They drive phase transitions and are stripped before display.

var (
	controlTagRe     = regexp.MustCompile(`(?s)<control>(.*?)</control>`)
	citationRe       = regexp.MustCompile(`\[([a-zA-Z0-9_-]+)\]`)
	spaceBeforePunct = regexp.MustCompile(`\s+([.,?!:;])`)
	emptyBracketsRe  = regexp.MustCompile(`\(\s*\)|\[\s*\]`)
	spacesTabsRe     = regexp.MustCompile(`[ \t]+`)
	multiNewlineRe   = regexp.MustCompile(`\n\s*\n\s*\n+`)
)

// RecapControlSchema validates the control block the model emits when it
// judges the prerequisite recap finished.
var RecapControlSchema = &llm.Schema{
	Name:        "recap-control",
	Description: "Signal that the prerequisite recap is complete.",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"prereq_complete": map[string]any{
				"type":        "boolean",
				"description": "True when recap questions are answered satisfactorily.",
			},
		},
		"required":             []any{"prereq_complete"},
		"additionalProperties": false,
	},
}

// TeachingControlSchema validates the control block the model emits when
// the learner has mastered the current objective.
var TeachingControlSchema = &llm.Schema{
	Name:        "teaching-control",
	Description: "Signal that the current objective is complete.",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"objective_complete": map[string]any{
				"type":        "boolean",
				"description": "True when the learner has mastered the current objective.",
			},
		},
		"required":             []any{"objective_complete"},
		"additionalProperties": false,
	},
}

// ExtractControl parses the first control block in text and validates it
// against the schema. Absent, malformed, or schema-violating blocks all
// yield nil: a bad control block must never crash a phase, only fail to
// advance it.
func ExtractControl(text string, schema *llm.Schema) map[string]any {
	m := controlTagRe.FindStringSubmatch(text)
	if m == nil {
		return nil
	}

	var ctrl map[string]any
	if err := json.Unmarshal([]byte(m[1]), &ctrl); err != nil {
		return nil
	}

	if schema != nil {
		compiled, err := llm.CompileSchema(schema)
		if err != nil {
			return nil
		}
		var parsed any
		if err := json.Unmarshal([]byte(m[1]), &parsed); err != nil {
			return nil
		}
		if err := compiled.Validate(parsed); err != nil {
			return nil
		}
	}

	return ctrl
}

// controlFlag reads a boolean field from an extracted control block.
func controlFlag(ctrl map[string]any, field string) bool {
	if ctrl == nil {
		return false
	}
	v, ok := ctrl[field].(bool)
	return ok && v
}

// StripControlBlocks removes control fragments from user-facing text,
// tidying up the whitespace they leave behind.
func StripControlBlocks(text string) string {
	if text == "" {
		return text
	}
	cleaned := controlTagRe.ReplaceAllString(text, "")
	return tidyWhitespace(cleaned)
}

// CleanCitations fixes raw resource-ID citations like [linear_algebra_intro]
// that the model emits instead of prose. Known RIDs become a readable
// reference to the resource title; unknown ones are dropped. Bracketed IDs
// already followed by a section marker are left alone.
func CleanCitations(text string, resources []Resource) string {
	if text == "" || len(resources) == 0 {
		return text
	}

	byRID := make(map[string]Resource, len(resources))
	for _, r := range resources {
		byRID[r.RID] = r
	}

	var b strings.Builder
	last := 0
	for _, loc := range citationRe.FindAllStringSubmatchIndex(text, -1) {
		start, end := loc[0], loc[1]
		rid := text[loc[2]:loc[3]]

		// Leave proper citations ("[rid] §3.2") untouched.
		if followedBySection(text[end:]) {
			continue
		}

		b.WriteString(text[last:start])
		if r, ok := byRID[rid]; ok {
			b.WriteString("research on " + r.Title)
		}
		last = end
	}
	b.WriteString(text[last:])

	return tidyWhitespace(b.String())
}

func followedBySection(rest string) bool {
	trimmed := strings.TrimLeft(rest, " \t")
	return strings.HasPrefix(trimmed, "§")
}

// tidyWhitespace collapses artifacts left by removals: spaces before
// punctuation, empty brackets, runs of spaces, and excess blank lines.
func tidyWhitespace(text string) string {
	text = spaceBeforePunct.ReplaceAllString(text, "$1")
	text = emptyBracketsRe.ReplaceAllString(text, "")
	text = spacesTabsRe.ReplaceAllString(text, " ")
	text = multiNewlineRe.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text)
}
