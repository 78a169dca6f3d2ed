// Package tutor implements the session phase state machine that drives a
// tutoring conversation: intro, prerequisite recap, per-objective
// teaching, a final test, grading, and mastery write-back.
package tutor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/autodidact/internal/llm"
	"github.com/abhisek/autodidact/internal/store"
)

var (
	// ErrNodeNotFound means the curriculum node a session was started on
	// does not exist. Fatal: no session can proceed without it.
	ErrNodeNotFound = errors.New("curriculum node not found")

	// ErrIterationLimit means the auto-advance loop hit its ceiling
	// without reaching a phase that waits for the user. The state
	// returned alongside it is valid; the session is stuck, not broken.
	ErrIterationLimit = errors.New("auto-advance iteration limit exceeded")

	// ErrNoCheckpoint means a resume was attempted for a session that
	// never saved state.
	ErrNoCheckpoint = errors.New("no checkpoint for session")
)

// DefaultMaxAutoAdvance bounds how many phases may run back-to-back
// within one external turn.
const DefaultMaxAutoAdvance = 12

// InterruptionThreshold is how long a silence counts as an interruption
// when resuming a session.
const InterruptionThreshold = 10 * time.Minute

// CurriculumStore is the slice of the persistence layer the engine reads
// curriculum data from and writes mastery back to.
type CurriculumStore interface {
	NodeWithObjectives(ctx context.Context, nodeID int) (*store.NodeInfo, error)
	PrerequisiteObjectives(ctx context.Context, projectID int, nodeKey string) ([]store.PrereqObjective, error)
	UpdateMastery(ctx context.Context, mastery map[string]float64) error
}

// SessionStore records session lifecycle and checkpoints state after
// every engine step for crash recovery and multi-turn resumption.
type SessionStore interface {
	CreateSession(ctx context.Context, sessionID string, projectID, nodeID int) error
	CompleteSession(ctx context.Context, sessionID string, finalScore float64) error
	SaveCheckpoint(ctx context.Context, sessionID, phase string, state json.RawMessage) error
	LatestCheckpoint(ctx context.Context, sessionID string) (*store.CheckpointData, error)
}

// Engine advances tutoring sessions through the phase state machine.
// One session is advanced by one caller at a time; state is a value
// that is read, transformed, and checkpointed sequentially.
type Engine struct {
	provider       llm.Provider
	curriculum     CurriculumStore
	sessions       SessionStore
	maxAutoAdvance int
	learnerProfile string
	now            func() time.Time
}

// Option configures an Engine.
type Option func(*Engine)

// WithMaxAutoAdvance overrides the auto-advance iteration ceiling.
func WithMaxAutoAdvance(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.maxAutoAdvance = n
		}
	}
}

// WithLearnerProfile injects learner context into every prompt.
func WithLearnerProfile(profile string) Option {
	return func(e *Engine) { e.learnerProfile = profile }
}

// WithClock overrides time.Now, for tests.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// NewEngine creates an engine over the given model provider and stores.
func NewEngine(provider llm.Provider, curriculum CurriculumStore, sessions SessionStore, opts ...Option) *Engine {
	e := &Engine{
		provider:       provider,
		curriculum:     curriculum,
		sessions:       sessions,
		maxAutoAdvance: DefaultMaxAutoAdvance,
		now:            time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// StartSession creates a new session on the given node and advances it
// until it first needs user input. Typically that runs load_context,
// intro, recap (or its skip), and the first teaching turn.
func (e *Engine) StartSession(ctx context.Context, projectID, nodeID int) (State, error) {
	sessionID := uuid.NewString()
	if err := e.sessions.CreateSession(ctx, sessionID, projectID, nodeID); err != nil {
		return State{}, fmt.Errorf("create session: %w", err)
	}

	st := NewState(sessionID, projectID, nodeID)
	st.SessionStart = e.now()
	st.AutoAdvance = true
	return e.run(ctx, st)
}

// Resume restores a session from its latest checkpoint, flagging an
// interruption if the learner has been away past the threshold.
func (e *Engine) Resume(ctx context.Context, sessionID string) (State, error) {
	cp, err := e.sessions.LatestCheckpoint(ctx, sessionID)
	if err != nil {
		return State{}, fmt.Errorf("load checkpoint: %w", err)
	}
	if cp == nil {
		return State{}, fmt.Errorf("%w: %s", ErrNoCheckpoint, sessionID)
	}

	st, err := UnmarshalState(cp.State)
	if err != nil {
		return State{}, err
	}

	if interrupted, gap := st.DetectInterruption(e.now(), InterruptionThreshold); interrupted {
		st.InterruptionDetected = true
		st.InterruptionMinutes = gap.Minutes()
	}
	st.AutoAdvance = false
	st.Forced = ForcedNone
	return st, nil
}

// RunTurn merges one user message into the session and advances phases
// until control must return to the user or the session completes.
// Slash commands are routed to the debug handler instead of the model.
func (e *Engine) RunTurn(ctx context.Context, st State, userMessage string) (State, error) {
	if st.Phase == PhaseCompleted {
		return st, nil
	}

	if IsCommand(userMessage) {
		return e.handleCommand(ctx, st, userMessage)
	}

	next := st.clone()
	now := e.now()
	next.History = append(next.History, Message{Role: RoleUser, Content: userMessage})
	next.TurnCount++
	next.LastMessageAt = &now
	next.InterruptionDetected = false
	next.InterruptionMinutes = 0

	return e.run(ctx, next)
}

// RequestExit marks the session for early exit: the final test will only
// cover objectives that were actually taught.
func (e *Engine) RequestExit(ctx context.Context, st State) (State, error) {
	next := st.clone()
	next.ExitRequested = true
	if next.Phase == PhaseRecap || next.Phase == PhaseTeaching {
		next.Phase = PhaseTesting
		next.AutoAdvance = true
	}
	return e.run(ctx, next)
}

// run is the bounded auto-advance loop. It always executes at least one
// phase, checkpoints after every step, and keeps going while the current
// phase flags that no user interaction is needed.
func (e *Engine) run(ctx context.Context, st State) (State, error) {
	for i := 0; ; i++ {
		if st.Phase == PhaseCompleted {
			return st, nil
		}
		if i >= e.maxAutoAdvance {
			return st, ErrIterationLimit
		}

		next, err := e.Advance(ctx, st)
		if err != nil {
			return st, err
		}
		st = next

		if err := e.checkpoint(ctx, st); err != nil {
			return st, err
		}
		if !st.AutoAdvance {
			return st, nil
		}
	}
}

// Advance executes exactly one phase function for the current phase.
func (e *Engine) Advance(ctx context.Context, st State) (State, error) {
	switch st.Phase {
	case PhaseLoadContext:
		return e.loadContext(ctx, st)
	case PhaseIntro:
		return e.intro(st), nil
	case PhaseRecap:
		return e.recap(ctx, st), nil
	case PhaseTeaching:
		return e.teaching(ctx, st), nil
	case PhaseTesting:
		return e.testing(ctx, st), nil
	case PhaseGrading:
		return e.grading(ctx, st), nil
	case PhaseWrap:
		return e.wrap(ctx, st), nil
	case PhaseCompleted:
		return st, nil
	}
	return st, fmt.Errorf("cannot advance unknown phase %v", st.Phase)
}

func (e *Engine) checkpoint(ctx context.Context, st State) error {
	raw, err := st.Marshal()
	if err != nil {
		return err
	}
	if err := e.sessions.SaveCheckpoint(ctx, st.SessionID, st.Phase.String(), raw); err != nil {
		return fmt.Errorf("save checkpoint: %w", err)
	}
	return nil
}

func toLLMMessages(history []Message) []llm.Message {
	out := make([]llm.Message, len(history))
	for i, m := range history {
		out[i] = llm.Message{Role: llm.Role(m.Role), Content: m.Content}
	}
	return out
}

func lastUserContains(history []Message, keyword string) bool {
	if len(history) == 0 {
		return false
	}
	last := history[len(history)-1]
	return last.Role == RoleUser && strings.Contains(strings.ToLower(last.Content), keyword)
}
