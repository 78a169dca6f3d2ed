package tutor

import (
	"context"
	"fmt"
	"strings"
)

// Slash commands bypass the normal conversation flow for development and
// testing. Forced advancement is injected as a ForcedSignal so the state
// machine handles it on the same path as genuine model signals.

// debugCompletionScore is the mastery written by a forced completion.
const debugCompletionScore = 0.85

const debugHelpMessage = `🔧 **Debug Commands Available:**

• ` + "`/completed`" + ` - Force complete the current session with high score (85%)
• ` + "`/next`" + ` - Force the current recap or teaching step to count as complete
• ` + "`/exit`" + ` - End early: test only what was actually taught
• ` + "`/help`" + ` or ` + "`/debug`" + ` - Show this help message

These commands are intended for developers and testing purposes to quickly progress through lessons without completing the full learning process.`

// IsCommand reports whether a user message is a slash command.
func IsCommand(message string) bool {
	return strings.HasPrefix(strings.TrimSpace(message), "/")
}

// handleCommand executes a slash command against the session.
func (e *Engine) handleCommand(ctx context.Context, st State, message string) (State, error) {
	command := strings.ToLower(strings.TrimSpace(message))

	switch command {
	case "/completed":
		return e.forceComplete(ctx, st)

	case "/next":
		next := st.clone()
		switch next.Phase {
		case PhaseRecap:
			next.Forced = ForcedPrereqComplete
		case PhaseTeaching:
			next.Forced = ForcedObjectiveComplete
		default:
			next.History = append(next.History, Message{
				Role:    RoleAssistant,
				Content: fmt.Sprintf("🔧 DEBUG: Nothing to force-advance in the %s phase.", next.Phase),
			})
			return next, nil
		}
		next.AutoAdvance = true
		return e.run(ctx, next)

	case "/exit":
		return e.RequestExit(ctx, st)

	case "/help", "/debug":
		next := st.clone()
		next.History = append(next.History, Message{Role: RoleAssistant, Content: debugHelpMessage})
		return next, nil
	}

	next := st.clone()
	next.History = append(next.History, Message{
		Role:    RoleAssistant,
		Content: fmt.Sprintf("Unknown debug command: %s", command),
	})
	return next, nil
}

// forceComplete marks every objective mastered at the debug score and
// closes the session immediately.
func (e *Engine) forceComplete(ctx context.Context, st State) (State, error) {
	next := st.clone()

	if len(st.AllObjectives) > 0 {
		mastery := make(map[string]float64, len(st.AllObjectives))
		for _, obj := range st.AllObjectives {
			mastery[obj.Key] = debugCompletionScore
		}
		if err := e.curriculum.UpdateMastery(ctx, mastery); err != nil {
			next.History = append(next.History, Message{
				Role:    RoleAssistant,
				Content: fmt.Sprintf("🔧 DEBUG: Force completion failed: %v", err),
			})
			return next, nil
		}
	}

	if err := e.sessions.CompleteSession(ctx, st.SessionID, debugCompletionScore); err != nil {
		next.History = append(next.History, Message{
			Role:    RoleAssistant,
			Content: fmt.Sprintf("🔧 DEBUG: Force completion failed: %v", err),
		})
		return next, nil
	}

	now := e.now()
	next.ObjectiveScores["session"] = debugCompletionScore
	next.SessionEnd = &now
	next.Phase = PhaseCompleted
	next.AutoAdvance = false
	next.History = append(next.History, Message{
		Role:    RoleAssistant,
		Content: fmt.Sprintf("🔧 DEBUG: Session force-completed with %d%% score", roundPercent(debugCompletionScore)),
	})

	if err := e.checkpoint(ctx, next); err != nil {
		return next, err
	}
	return next, nil
}
