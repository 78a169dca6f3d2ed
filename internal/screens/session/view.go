package session

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/autodidact/internal/tutor"
	"github.com/abhisek/autodidact/internal/ui/theme"
)

// View renders the session into the given content area.
func (s *Screen) View(width, height int) string {
	s.width = width
	s.height = height

	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render(fmt.Sprintf("\n\n\n  Error: %s\n\n  Press Ctrl+C to quit.", s.errMsg))
	}
	if !s.ready {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\n\n  Preparing your lesson...")
	}

	var b strings.Builder
	b.WriteString(s.renderStatusLine(width))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-2, 0))))
	b.WriteString("\n")
	b.WriteString(s.renderTranscript(width))
	b.WriteString("\n")
	b.WriteString(s.renderInputLine(width))
	return b.String()
}

// renderStatusLine shows the node, the phase, and teaching progress.
func (s *Screen) renderStatusLine(width int) string {
	left := theme.Title.Render("  " + s.state.NodeTitle)

	progress := ""
	if n := len(s.state.ObjectivesToTeach); n > 0 {
		done := len(s.state.CompletedObjectives)
		progress = fmt.Sprintf("  objectives %d/%d", done, n)
	}
	right := theme.PhaseBadge.Render(s.state.Phase.String()) +
		theme.Subtitle.Render(progress+"  ")

	pad := width - lipgloss.Width(left) - lipgloss.Width(right)
	if pad < 1 {
		pad = 1
	}
	return left + strings.Repeat(" ", pad) + right
}

// renderTranscript renders the visible window of the chat history.
func (s *Screen) renderTranscript(width int) string {
	lines := s.transcriptLines(width)

	h := s.transcriptHeight()
	if h <= 0 {
		return ""
	}

	end := len(lines) - s.scroll
	if end > len(lines) {
		end = len(lines)
	}
	start := end - h
	if start < 0 {
		start = 0
	}
	visible := lines[start:end]

	var b strings.Builder
	for i := 0; i < h; i++ {
		if i < h-len(visible) {
			b.WriteString("\n")
			continue
		}
		b.WriteString(visible[i-(h-len(visible))])
		b.WriteString("\n")
	}
	return strings.TrimSuffix(b.String(), "\n")
}

// transcriptLines lays the full history out as wrapped terminal lines.
func (s *Screen) transcriptLines(width int) []string {
	wrap := lipgloss.NewStyle().Width(max(width-6, 20))

	var lines []string
	add := func(label, body string, labelStyle, bodyStyle lipgloss.Style) {
		lines = append(lines, "  "+labelStyle.Render(label))
		for _, l := range strings.Split(wrap.Render(bodyStyle.Render(body)), "\n") {
			lines = append(lines, "  "+l)
		}
		lines = append(lines, "")
	}

	for _, msg := range s.state.History {
		if msg.Role == tutor.RoleUser {
			add("You", msg.Content, theme.LearnerLabel, theme.LearnerBody)
		} else {
			add("Tutor", msg.Content, theme.TutorLabel, theme.TutorBody)
		}
	}

	if s.busy {
		add("You", s.pending, theme.LearnerLabel, theme.LearnerBody)
		lines = append(lines, "  "+theme.Hint.Render("Tutor is thinking..."))
	}
	if s.notice != "" {
		lines = append(lines, "  "+theme.Notice.Render(s.notice))
	}
	return lines
}

// renderInputLine renders the reply box, or the closing hint once the
// session is over.
func (s *Screen) renderInputLine(width int) string {
	if s.state.Phase == tutor.PhaseCompleted {
		return theme.Hint.Render("  Session complete — press Ctrl+C to leave.")
	}
	if s.busy {
		return theme.Hint.Render("  Waiting for the tutor...")
	}
	return theme.InputFrame.Width(max(width-4, 20)).Render(s.input.View())
}

// transcriptHeight is the number of rows between status line and input.
func (s *Screen) transcriptHeight() int {
	// status + separator + input frame (3 with border) + spacing
	h := s.height - 6
	if h < 3 {
		h = 3
	}
	return h
}

func (s *Screen) clampScroll() {
	if s.scroll < 0 {
		s.scroll = 0
	}
	total := len(s.transcriptLines(s.width))
	limit := total - s.transcriptHeight()
	if limit < 0 {
		limit = 0
	}
	if s.scroll > limit {
		s.scroll = limit
	}
}
