package tutor

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/abhisek/autodidact/internal/llm"
	"github.com/abhisek/autodidact/internal/quiz"
)

const (
	recapFallbackMessage = "I apologize, I'm having some technical difficulties. " +
		"Let's proceed to the main lesson. Type 'ready' when you'd like to continue."

	teachingFallbackTemplate = `I'm experiencing some technical issues, but let me share what I know about %s:

This is an important concept in our learning journey. While I can't provide the full interactive lesson right now,
I encourage you to:
1. Review any available resources
2. Think about how this relates to what we've learned
3. Let me know if you'd like to skip to the next topic

Type 'continue' to move to the next objective, or ask me any questions you have.`

	gradingFallbackSummary = "### Test Results\n" +
		"I encountered an issue while grading your responses, but based on your participation " +
		"throughout the session, I'm giving you credit for your effort.\n\n" +
		"**Estimated score:** 75%"

	wrapFallbackMessage = "Session complete! Thank you for learning with me today."
)

// gradingFallbackScore is the credit-for-participation score substituted
// when grading fails. Grading failures never block session completion.
const gradingFallbackScore = 0.75

// masteryGainFactor scales the overall test score into a mastery bump
// for each taught objective.
const masteryGainFactor = 0.3

// loadContext pulls everything a session needs from the curriculum
// store and partitions objectives by mastery. A missing node is fatal.
func (e *Engine) loadContext(ctx context.Context, st State) (State, error) {
	node, err := e.curriculum.NodeWithObjectives(ctx, st.NodeID)
	if err != nil {
		return st, fmt.Errorf("load node %d: %w", st.NodeID, err)
	}
	if node == nil {
		return st, fmt.Errorf("%w: node %d", ErrNodeNotFound, st.NodeID)
	}

	next := st.clone()
	next.NodeKey = node.Key
	next.NodeTitle = node.Label
	next.ProjectTopic = node.ProjectTopic
	next.LearnerProfile = e.learnerProfile

	next.Resources = nil
	for _, r := range node.Resources {
		next.Resources = append(next.Resources, Resource{RID: r.ResourceID, Title: r.Title, URL: r.URL})
	}

	next.AllObjectives = nil
	next.ObjectivesToTeach = nil
	next.ObjectivesKnown = nil
	for _, o := range node.Objectives {
		obj := Objective{Key: o.Key, Description: o.Description, Mastery: o.Mastery, NodeKey: node.Key}
		next.AllObjectives = append(next.AllObjectives, obj)
		if obj.Mastered() {
			next.ObjectivesKnown = append(next.ObjectivesKnown, obj)
		} else {
			next.ObjectivesToTeach = append(next.ObjectivesToTeach, obj)
		}
	}

	// Prerequisites are nice-to-have: a lookup failure degrades to an
	// empty recap, it does not block the session.
	next.PrereqObjectives = nil
	prereqs, err := e.curriculum.PrerequisiteObjectives(ctx, node.ProjectID, node.Key)
	if err == nil {
		for _, p := range prereqs {
			next.PrereqObjectives = append(next.PrereqObjectives, Objective{
				Key:         p.Key,
				Description: p.Description,
				Mastery:     p.Mastery,
				NodeKey:     p.NodeKey,
			})
		}
	}

	next.Phase = PhaseIntro
	next.AutoAdvance = true
	return next, nil
}

// intro emits the lesson introduction. Pure formatting, no model call.
func (e *Engine) intro(st State) State {
	next := st.clone()

	var content string
	if len(st.ObjectivesToTeach) > 0 {
		var b strings.Builder
		fmt.Fprintf(&b, "# 🎓 **Welcome to: %s**\n\n", st.NodeTitle)
		b.WriteString("## 📚 **In this lesson, you will learn:**\n\n")
		for _, obj := range st.ObjectivesToTeach {
			b.WriteString("• " + obj.Description + "\n")
		}
		b.WriteString("\n**Let's begin your learning journey!** 🚀\n\n")
		b.WriteString("I'm here to guide you through each of these objectives step by step. Are you ready to start?")
		content = b.String()
	} else {
		content = fmt.Sprintf("# 🎓 **Welcome to: %s**\n\nLet's begin this learning session! I'm here to guide you through the material.", st.NodeTitle)
	}

	next.History = append(next.History, Message{Role: RoleAssistant, Content: content})
	next.Phase = PhaseRecap
	next.AutoAdvance = true
	return next
}

// recap runs the prerequisite warm-up loop until the model signals
// prereq_complete. With nothing to recap the phase is skipped without a
// model call.
func (e *Engine) recap(ctx context.Context, st State) State {
	next := st.clone()

	if st.Forced == ForcedPrereqComplete {
		next.Forced = ForcedNone
		next.Phase = PhaseTeaching
		next.AutoAdvance = true
		return next
	}

	recentTopics := append(descriptions(st.PrereqObjectives), descriptions(st.ObjectivesKnown)...)
	if len(recentTopics) == 0 {
		next.Phase = PhaseTeaching
		next.AutoAdvance = true
		return next
	}

	nextObjLabel := "our next topic"
	if len(st.ObjectivesToTeach) > 0 {
		nextObjLabel = st.ObjectivesToTeach[0].Description
	}

	resp, err := e.provider.Generate(llm.WithPurpose(ctx, "recap"), llm.Request{
		System:      recapPrompt(recentTopics, nextObjLabel, st.Resources, st.LearnerProfile),
		Messages:    toLLMMessages(st.History),
		MaxTokens:   2048,
		Temperature: 0.7,
	})
	if err != nil {
		// Degraded fallback: only a literal "ready" from the user moves
		// the session forward after a model failure.
		advance := lastUserContains(st.History, "ready")
		next.History = append(next.History, Message{Role: RoleAssistant, Content: recapFallbackMessage})
		if advance {
			next.Phase = PhaseTeaching
		}
		next.AutoAdvance = advance
		return next
	}

	raw := resp.Text()
	cleaned := StripControlBlocks(CleanCitations(raw, st.Resources))
	next.History = append(next.History, Message{Role: RoleAssistant, Content: cleaned})

	ctrl := ExtractControl(raw, RecapControlSchema)
	if controlFlag(ctrl, "prereq_complete") {
		next.Phase = PhaseTeaching
		next.AutoAdvance = true
	} else {
		next.AutoAdvance = false
	}
	return next
}

// teaching teaches the current objective, advancing the cursor when the
// model (or a forced signal) reports the objective complete. Completion
// pauses for an explicit learner acknowledgment before the next
// objective begins.
func (e *Engine) teaching(ctx context.Context, st State) State {
	next := st.clone()
	idx := st.ObjectiveIdx
	objectives := st.ObjectivesToTeach

	if idx >= len(objectives) {
		next.Phase = PhaseTesting
		next.AutoAdvance = true
		return next
	}
	current := objectives[idx]

	if st.Forced == ForcedObjectiveComplete {
		next.Forced = ForcedNone
		return e.completeObjective(next, idx, "")
	}

	messages := toLLMMessages(st.History)

	// The model always needs a user turn to respond to; synthesize one
	// when the transcript ends with the assistant (or is empty).
	if last, ok := st.LastMessage(); !ok || last.Role != RoleUser {
		switch {
		case len(st.History) >= 2 && last.Role == RoleAssistant && strings.Contains(last.Content, NextObjectivePrefix):
			messages = append(messages, llm.Message{Role: llm.RoleUser, Content: "I'm ready to learn about this new topic."})
		case len(st.History) == 0:
			messages = append(messages, llm.Message{Role: llm.RoleUser, Content: "I'm ready to start learning."})
		default:
			messages = append(messages, llm.Message{Role: llm.RoleUser, Content: "Please continue."})
		}
	}

	resp, err := e.provider.Generate(llm.WithPurpose(ctx, "teaching"), llm.Request{
		System: teachingPrompt(current,
			descriptions(st.ObjectivesKnown),
			descriptions(objectives[idx+1:]),
			st.Resources, st.LearnerProfile),
		Messages:    messages,
		MaxTokens:   2048,
		Temperature: 0.7,
	})
	if err != nil {
		fallback := fmt.Sprintf(teachingFallbackTemplate, current.Description)
		next.History = append(next.History, Message{Role: RoleAssistant, Content: fallback})
		// Degraded fallback: a literal "continue" from the user skips
		// past the failed objective.
		if lastUserContains(st.History, "continue") {
			next.ObjectiveIdx = idx + 1
		}
		next.AutoAdvance = false
		return next
	}

	raw := resp.Text()
	if strings.TrimSpace(raw) == "" {
		raw = fmt.Sprintf("Let me introduce you to: %s. What do you think this concept might involve?", current.Description)
	}

	cleaned := StripControlBlocks(CleanCitations(raw, st.Resources))
	if strings.TrimSpace(cleaned) == "" {
		cleaned = fmt.Sprintf("Let's explore: %s. What questions do you have about this topic?", current.Description)
	}

	ctrl := ExtractControl(raw, TeachingControlSchema)
	if controlFlag(ctrl, "objective_complete") {
		return e.completeObjective(next, idx, cleaned)
	}

	next.History = append(next.History, Message{Role: RoleAssistant, Content: cleaned})
	next.AutoAdvance = false
	return next
}

// completeObjective records a finished objective: it appends the visible
// teaching content (if any) plus a transition message, advances the
// cursor, and adds the objective to the completed set idempotently.
func (e *Engine) completeObjective(next State, idx int, visible string) State {
	objectives := next.ObjectivesToTeach
	current := objectives[idx]

	if visible != "" {
		next.History = append(next.History, Message{Role: RoleAssistant, Content: visible})
	}

	transition := allObjectivesDoneMessage
	if idx+1 < len(objectives) {
		transition = NextObjectivePrefix + " " + objectives[idx+1].Description
	}
	next.History = append(next.History, Message{Role: RoleAssistant, Content: transition})

	completed := false
	for _, id := range next.CompletedObjectives {
		if id == current.Key {
			completed = true
			break
		}
	}
	if !completed {
		next.CompletedObjectives = append(next.CompletedObjectives, current.Key)
	}

	next.ObjectiveIdx = idx + 1
	// Wait for the learner's acknowledgment before the next objective.
	next.AutoAdvance = false
	return next
}

// testing generates the final test on first entry, then alternates
// between collecting normalized answers and asking the next question.
// Capturing an answer and asking the follow-up happen in the same step,
// so a user message is never counted as an answer twice.
func (e *Engine) testing(ctx context.Context, st State) State {
	next := st.clone()

	if len(st.TestQuestions) == 0 {
		eligible := descriptions(st.ObjectivesForTesting())
		questions, err := quiz.Generate(ctx, e.provider, eligible, quiz.MaxQuestions)
		if err != nil || len(questions) == 0 {
			questions = append([]string(nil), quiz.FallbackQuestions...)
		}
		next.TestQuestions = questions
		next.TestAnswers = []string{}
		return askOrGrade(next)
	}

	// A fresh user message while a question is pending is its answer.
	if last, ok := st.LastMessage(); ok && last.Role == RoleUser && len(st.TestAnswers) < len(st.TestQuestions) {
		normalized := NormalizeAnswer(last.Content, st.TestQuestions[len(st.TestAnswers)])
		next.TestAnswers = append(next.TestAnswers, normalized)
	}

	return askOrGrade(next)
}

// askOrGrade asks the next unanswered question, or hands the completed
// test to grading.
func askOrGrade(next State) State {
	if i := len(next.TestAnswers); i < len(next.TestQuestions) {
		next.History = append(next.History, Message{
			Role:    RoleAssistant,
			Content: fmt.Sprintf("**Question %d/%d:**\n\n%s", i+1, len(next.TestQuestions), next.TestQuestions[i]),
		})
		next.AutoAdvance = false
		return next
	}
	next.Phase = PhaseGrading
	next.AutoAdvance = true
	return next
}

// grading scores the completed test and posts a results summary. A
// grading failure substitutes a fixed participation score; it never
// blocks session completion.
func (e *Engine) grading(ctx context.Context, st State) State {
	next := st.clone()
	now := e.now()

	perQuestion, overall, err := quiz.Grade(ctx, e.provider, st.TestQuestions, st.TestAnswers)
	if err != nil {
		next.ObjectiveScores["session"] = gradingFallbackScore
		next.History = append(next.History, Message{Role: RoleAssistant, Content: gradingFallbackSummary})
	} else {
		lines := make([]string, len(perQuestion))
		for i, s := range perQuestion {
			lines[i] = fmt.Sprintf("Q%d: %d%%", i+1, roundPercent(s))
		}
		summary := "### Test Results\n" +
			strings.Join(lines, "\n") +
			fmt.Sprintf("\n\n**Overall score:** %d%%", roundPercent(overall))

		next.ObjectiveScores["session"] = overall
		next.History = append(next.History, Message{Role: RoleAssistant, Content: summary})
	}

	next.SessionEnd = &now
	next.Phase = PhaseWrap
	next.AutoAdvance = true
	return next
}

// wrap persists mastery gains and the session record, then closes the
// conversation. Best-effort: any failure still completes the session
// with a minimal message so it never gets stuck.
func (e *Engine) wrap(ctx context.Context, st State) State {
	next := st.clone()
	overall := st.ObjectiveScores["session"]

	err := func() error {
		if len(st.ObjectivesToTeach) > 0 && overall > 0 {
			mastery := make(map[string]float64, len(st.ObjectivesToTeach))
			for _, obj := range st.ObjectivesToTeach {
				mastery[obj.Key] = math.Min(1.0, obj.Mastery+overall*masteryGainFactor)
			}
			if err := e.curriculum.UpdateMastery(ctx, mastery); err != nil {
				return err
			}
		}
		return e.sessions.CompleteSession(ctx, st.SessionID, overall)
	}()

	next.Phase = PhaseCompleted
	next.AutoAdvance = false

	if err != nil {
		next.History = append(next.History, Message{Role: RoleAssistant, Content: wrapFallbackMessage})
		return next
	}

	encouragement := "Keep practicing! You're making progress."
	if overall >= MasteryThreshold {
		encouragement = "Great job! You've shown solid understanding of the material."
	}

	message := fmt.Sprintf(`## Session Complete! 🎉

**Final Score:** %d%%
**Duration:** %d minutes
**Objectives Covered:** %d

%s

See you next time!`,
		roundPercent(overall),
		int(math.Round(next.Duration().Minutes())),
		len(st.ObjectivesToTeach),
		encouragement,
	)

	next.History = append(next.History, Message{Role: RoleAssistant, Content: message})
	return next
}

func roundPercent(score float64) int {
	return int(math.Round(score * 100))
}
