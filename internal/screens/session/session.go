// Package session is the chat screen for a live tutoring session. It
// renders the transcript, forwards learner messages to the engine one
// turn at a time, and keeps typing responsive while the model thinks.
package session

import (
	"context"
	"errors"
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/autodidact/internal/tutor"
)

// Runner is the slice of the tutoring engine the screen drives.
type Runner interface {
	StartSession(ctx context.Context, projectID, nodeID int) (tutor.State, error)
	Resume(ctx context.Context, sessionID string) (tutor.State, error)
	RunTurn(ctx context.Context, st tutor.State, userMessage string) (tutor.State, error)
}

// Screen is the Bubble Tea model for one tutoring session.
type Screen struct {
	runner    Runner
	projectID int
	nodeID    int
	resumeID  string

	state   tutor.State
	ready   bool
	busy    bool
	pending string // learner message in flight, echoed while the model thinks
	notice  string
	errMsg  string

	input  textinput.Model
	scroll int // lines scrolled up from the transcript bottom
	width  int
	height int
}

// New creates a screen that starts a fresh session on the given node.
func New(runner Runner, projectID, nodeID int) *Screen {
	return &Screen{
		runner:    runner,
		projectID: projectID,
		nodeID:    nodeID,
		input:     newInput(),
	}
}

// NewResume creates a screen that resumes an existing session.
func NewResume(runner Runner, sessionID string) *Screen {
	return &Screen{
		runner:   runner,
		resumeID: sessionID,
		input:    newInput(),
	}
}

func newInput() textinput.Model {
	ti := textinput.New()
	ti.Placeholder = "Type your reply (or /help)..."
	ti.CharLimit = 2000
	ti.Focus()
	return ti
}

func (s *Screen) Init() tea.Cmd {
	return tea.Batch(s.startSession(), s.input.Focus())
}

// Title is the node label once loaded.
func (s *Screen) Title() string {
	if !s.ready {
		return "Session"
	}
	return s.state.NodeTitle
}

func (s *Screen) Update(msg tea.Msg) (*Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height
		return s, nil

	case sessionReadyMsg:
		return s.handleReady(msg)

	case turnDoneMsg:
		return s.handleTurnDone(msg)

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	if s.canType() {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *Screen) canType() bool {
	return s.ready && !s.busy && s.errMsg == "" && s.state.Phase != tutor.PhaseCompleted
}

func (s *Screen) handleReady(msg sessionReadyMsg) (*Screen, tea.Cmd) {
	if msg.Err != nil && !errors.Is(msg.Err, tutor.ErrIterationLimit) {
		s.errMsg = msg.Err.Error()
		return s, nil
	}

	s.state = msg.State
	s.ready = true
	s.scroll = 0
	if errors.Is(msg.Err, tutor.ErrIterationLimit) {
		s.notice = "The tutor paused after too many automatic steps. Send a message to continue."
	}
	if s.state.InterruptionDetected {
		s.notice = "Welcome back! Picking up where you left off."
	}
	return s, nil
}

func (s *Screen) handleTurnDone(msg turnDoneMsg) (*Screen, tea.Cmd) {
	s.busy = false
	s.pending = ""

	if msg.Err != nil && !errors.Is(msg.Err, tutor.ErrIterationLimit) {
		s.errMsg = msg.Err.Error()
		return s, nil
	}

	s.state = msg.State
	s.scroll = 0
	s.notice = ""
	if errors.Is(msg.Err, tutor.ErrIterationLimit) {
		s.notice = "The tutor paused after too many automatic steps. Send a message to continue."
	}
	return s, nil
}

func (s *Screen) handleKey(msg tea.KeyMsg) (*Screen, tea.Cmd) {
	switch msg.String() {
	case "enter":
		return s.submit()
	case "pgup":
		s.scroll += s.transcriptHeight() / 2
		s.clampScroll()
		return s, nil
	case "pgdown":
		s.scroll -= s.transcriptHeight() / 2
		s.clampScroll()
		return s, nil
	case "up":
		s.scroll++
		s.clampScroll()
		return s, nil
	case "down":
		s.scroll--
		s.clampScroll()
		return s, nil
	}

	if s.canType() {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *Screen) submit() (*Screen, tea.Cmd) {
	if !s.canType() {
		return s, nil
	}
	text := strings.TrimSpace(s.input.Value())
	if text == "" {
		return s, nil
	}

	s.input.SetValue("")
	s.busy = true
	s.pending = text
	s.scroll = 0
	return s, s.runTurn(text)
}

// startSession starts or resumes the session off the UI goroutine.
func (s *Screen) startSession() tea.Cmd {
	runner := s.runner
	projectID, nodeID, resumeID := s.projectID, s.nodeID, s.resumeID
	return func() tea.Msg {
		ctx := context.Background()
		if resumeID != "" {
			st, err := runner.Resume(ctx, resumeID)
			return sessionReadyMsg{State: st, Err: err}
		}
		st, err := runner.StartSession(ctx, projectID, nodeID)
		return sessionReadyMsg{State: st, Err: err}
	}
}

// runTurn sends one learner message through the engine asynchronously.
func (s *Screen) runTurn(text string) tea.Cmd {
	runner := s.runner
	st := s.state
	return func() tea.Msg {
		next, err := runner.RunTurn(context.Background(), st, text)
		return turnDoneMsg{State: next, Err: err}
	}
}
