package tutor

import (
	"encoding/json"
	"fmt"
	"time"
)

// Role identifies who produced a chat message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one entry in the session transcript.
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// Resource is a learning resource the tutor may cite, identified by RID
// in bracket citations like [linear_algebra_intro].
type Resource struct {
	RID   string `json:"rid"`
	Title string `json:"title"`
	URL   string `json:"url,omitempty"`
}

// ForcedSignal lets the caller inject a completion signal that is merged
// at the same point genuine model control blocks are extracted, so the
// state machine has a single signal-handling path.
type ForcedSignal int

const (
	ForcedNone ForcedSignal = iota
	ForcedPrereqComplete
	ForcedObjectiveComplete
)

// State is the complete session state. It is treated as an immutable
// value at phase boundaries: every phase function returns a new State
// built from the old one, which makes checkpointing and replay safe.
type State struct {
	SessionID string `json:"session_id"`
	ProjectID int    `json:"project_id"`
	NodeID    int    `json:"node_id"`

	NodeKey        string     `json:"node_key"`
	NodeTitle      string     `json:"node_title"`
	ProjectTopic   string     `json:"project_topic"`
	Resources      []Resource `json:"resources"`
	LearnerProfile string     `json:"learner_profile,omitempty"`

	AllObjectives       []Objective `json:"all_objectives"`
	ObjectivesToTeach   []Objective `json:"objectives_to_teach"`
	ObjectivesKnown     []Objective `json:"objectives_already_known"`
	PrereqObjectives    []Objective `json:"prerequisite_objectives"`
	CompletedObjectives []string    `json:"completed_objectives"`

	Phase         Phase     `json:"current_phase"`
	ObjectiveIdx  int       `json:"objective_idx"`
	ExitRequested bool      `json:"exit_requested"`
	History       []Message `json:"history"`

	TestQuestions   []string           `json:"final_test_questions"`
	TestAnswers     []string           `json:"final_test_answers"`
	ObjectiveScores map[string]float64 `json:"objective_scores"`

	TurnCount     int        `json:"turn_count"`
	SessionStart  time.Time  `json:"session_start"`
	LastMessageAt *time.Time `json:"last_message_ts,omitempty"`
	SessionEnd    *time.Time `json:"session_end,omitempty"`

	// Set when the session is resumed after a long gap.
	InterruptionDetected bool    `json:"interruption_detected,omitempty"`
	InterruptionMinutes  float64 `json:"interruption_duration_minutes,omitempty"`

	// AutoAdvance signals the runner to invoke the next phase immediately
	// instead of waiting for a new user message. Transient control flag.
	AutoAdvance bool `json:"navigate_without_user_interaction"`

	// Forced carries an injected completion signal for the next phase
	// invocation. Never persisted.
	Forced ForcedSignal `json:"-"`
}

// NewState creates the initial state for a fresh session.
func NewState(sessionID string, projectID, nodeID int) State {
	return State{
		SessionID:           sessionID,
		ProjectID:           projectID,
		NodeID:              nodeID,
		CompletedObjectives: []string{},
		History:             []Message{},
		TestQuestions:       []string{},
		TestAnswers:         []string{},
		ObjectiveScores:     map[string]float64{},
		Phase:               PhaseLoadContext,
		SessionStart:        time.Now(),
	}
}

// clone returns a deep-enough copy: slices and maps are copied so that
// appends on the new state never alias the old one.
func (s State) clone() State {
	out := s
	out.Resources = append([]Resource(nil), s.Resources...)
	out.AllObjectives = append([]Objective(nil), s.AllObjectives...)
	out.ObjectivesToTeach = append([]Objective(nil), s.ObjectivesToTeach...)
	out.ObjectivesKnown = append([]Objective(nil), s.ObjectivesKnown...)
	out.PrereqObjectives = append([]Objective(nil), s.PrereqObjectives...)
	out.CompletedObjectives = append([]string(nil), s.CompletedObjectives...)
	out.History = append([]Message(nil), s.History...)
	out.TestQuestions = append([]string(nil), s.TestQuestions...)
	out.TestAnswers = append([]string(nil), s.TestAnswers...)
	out.ObjectiveScores = make(map[string]float64, len(s.ObjectiveScores))
	for k, v := range s.ObjectiveScores {
		out.ObjectiveScores[k] = v
	}
	return out
}

// CurrentObjective returns the objective under teaching, if any.
func (s State) CurrentObjective() (Objective, bool) {
	if s.ObjectiveIdx >= 0 && s.ObjectiveIdx < len(s.ObjectivesToTeach) {
		return s.ObjectivesToTeach[s.ObjectiveIdx], true
	}
	return Objective{}, false
}

// AllObjectivesCompleted reports whether the teaching cursor has passed
// every objective.
func (s State) AllObjectivesCompleted() bool {
	return s.ObjectiveIdx >= len(s.ObjectivesToTeach)
}

// HasPrerequisites reports whether any prerequisite objectives were loaded.
func (s State) HasPrerequisites() bool {
	return len(s.PrereqObjectives) > 0
}

// ObjectivesForTesting returns the objectives the final test should draw
// from. On early exit only objectives actually taught are tested;
// otherwise every objective that needed teaching is fair game.
func (s State) ObjectivesForTesting() []Objective {
	if !s.ExitRequested {
		return s.ObjectivesToTeach
	}
	completed := make(map[string]bool, len(s.CompletedObjectives))
	for _, id := range s.CompletedObjectives {
		completed[id] = true
	}
	var out []Objective
	for _, o := range s.ObjectivesToTeach {
		if completed[o.Key] {
			out = append(out, o)
		}
	}
	return out
}

// LastMessage returns the newest transcript entry, if any.
func (s State) LastMessage() (Message, bool) {
	if len(s.History) == 0 {
		return Message{}, false
	}
	return s.History[len(s.History)-1], true
}

// Duration reports how long the session ran, zero until the session ends.
func (s State) Duration() time.Duration {
	if s.SessionEnd == nil {
		return 0
	}
	return s.SessionEnd.Sub(s.SessionStart)
}

// DetectInterruption reports whether more than threshold has elapsed
// since the last message, and how long the gap was.
func (s State) DetectInterruption(now time.Time, threshold time.Duration) (bool, time.Duration) {
	if s.LastMessageAt == nil {
		return false, 0
	}
	gap := now.Sub(*s.LastMessageAt)
	return gap >= threshold, gap
}

// Marshal serializes the state for checkpointing.
func (s State) Marshal() (json.RawMessage, error) {
	b, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("marshal session state: %w", err)
	}
	return b, nil
}

// UnmarshalState restores a checkpointed state.
func UnmarshalState(raw json.RawMessage) (State, error) {
	var s State
	if err := json.Unmarshal(raw, &s); err != nil {
		return State{}, fmt.Errorf("unmarshal session state: %w", err)
	}
	return s, nil
}
