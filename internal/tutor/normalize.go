package tutor

import (
	"regexp"
	"strings"
)

// Single-character answers to multiple-choice questions ("1", "b") are
// rewritten to the full option text before grading, so the grader sees
// the substance of the choice instead of a bare key.

var (
	numberedMarkerRe = regexp.MustCompile(`(\d+)\.\s+`)
	letteredMarkerRe = regexp.MustCompile(`([A-Za-z])[.)]\s+`)
)

type choice struct {
	key  string
	text string
}

// NormalizeAnswer rewrites a single-character answer into the matching
// option text from the question. Multi-character answers pass through
// untouched. A single character that matches no option key is returned
// exactly as the user typed it.
func NormalizeAnswer(userAnswer, question string) string {
	trimmed := strings.TrimSpace(userAnswer)

	if len(trimmed) != 1 {
		return userAnswer
	}

	options := extractChoices(question)
	if len(options) == 0 {
		return trimmed
	}

	for _, opt := range options {
		if strings.EqualFold(trimmed, opt.key) {
			return opt.text
		}
	}

	return userAnswer
}

// extractChoices pulls ordered (key, text) pairs from a question laid out
// as a numbered ("1. Cow") or lettered ("A) Always" / "b. Sometimes")
// choice list. Numbered options win when both patterns appear. Option
// text runs from its marker to the next marker or end of line.
func extractChoices(question string) []choice {
	if opts := choicesForMarker(question, numberedMarkerRe, false); len(opts) > 0 {
		return opts
	}
	return choicesForMarker(question, letteredMarkerRe, true)
}

func choicesForMarker(question string, marker *regexp.Regexp, upperKeys bool) []choice {
	locs := marker.FindAllStringSubmatchIndex(question, -1)

	var out []choice
	for i, loc := range locs {
		key := question[loc[2]:loc[3]]
		if upperKeys {
			key = strings.ToUpper(key)
		}

		textEnd := len(question)
		if i+1 < len(locs) {
			textEnd = locs[i+1][0]
		}
		seg := question[loc[1]:textEnd]
		if nl := strings.IndexByte(seg, '\n'); nl >= 0 {
			seg = seg[:nl]
		}
		seg = strings.TrimSpace(seg)
		if seg == "" {
			continue
		}

		out = append(out, choice{key: key, text: seg})
	}
	return out
}
