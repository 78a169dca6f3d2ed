package session

import (
	"context"
	"errors"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/autodidact/internal/tutor"
)

type fakeRunner struct {
	startState tutor.State
	startErr   error
	turnState  tutor.State
	turnErr    error
	turns      []string
}

func (f *fakeRunner) StartSession(context.Context, int, int) (tutor.State, error) {
	return f.startState, f.startErr
}

func (f *fakeRunner) Resume(context.Context, string) (tutor.State, error) {
	return f.startState, f.startErr
}

func (f *fakeRunner) RunTurn(_ context.Context, _ tutor.State, msg string) (tutor.State, error) {
	f.turns = append(f.turns, msg)
	return f.turnState, f.turnErr
}

func teachingState() tutor.State {
	st := tutor.NewState("s1", 1, 2)
	st.NodeTitle = "Derivatives"
	st.Phase = tutor.PhaseTeaching
	st.History = []tutor.Message{{Role: tutor.RoleAssistant, Content: "Welcome!"}}
	return st
}

func TestSessionReadyPopulatesState(t *testing.T) {
	s := New(&fakeRunner{}, 1, 2)

	s, _ = s.Update(sessionReadyMsg{State: teachingState()})

	if !s.ready {
		t.Fatal("expected screen to be ready")
	}
	if s.Title() != "Derivatives" {
		t.Errorf("expected node title, got %q", s.Title())
	}
}

func TestStartFailureShowsError(t *testing.T) {
	s := New(&fakeRunner{}, 1, 2)

	s, _ = s.Update(sessionReadyMsg{Err: errors.New("no such node")})

	if s.ready {
		t.Error("failed start must not mark the screen ready")
	}
	if s.errMsg == "" {
		t.Error("expected error message to be shown")
	}
}

func TestSubmitSendsTurnToRunner(t *testing.T) {
	runner := &fakeRunner{turnState: teachingState()}
	s := New(runner, 1, 2)
	s, _ = s.Update(sessionReadyMsg{State: teachingState()})

	s.input.SetValue("what is a derivative?")
	s, cmd := s.submit()
	if cmd == nil {
		t.Fatal("expected a turn command")
	}
	if !s.busy {
		t.Error("expected screen busy while the turn runs")
	}

	msg := cmd()
	if _, ok := msg.(turnDoneMsg); !ok {
		t.Fatalf("expected turnDoneMsg, got %T", msg)
	}
	if len(runner.turns) != 1 || runner.turns[0] != "what is a derivative?" {
		t.Errorf("runner got turns %v", runner.turns)
	}

	s, _ = s.Update(msg)
	if s.busy {
		t.Error("expected busy cleared after turn completion")
	}
}

func TestEmptySubmitIsIgnored(t *testing.T) {
	runner := &fakeRunner{}
	s := New(runner, 1, 2)
	s, _ = s.Update(sessionReadyMsg{State: teachingState()})

	s.input.SetValue("   ")
	s, cmd := s.submit()
	if cmd != nil || s.busy {
		t.Error("blank input must not start a turn")
	}
}

func TestIterationLimitShowsNoticeNotError(t *testing.T) {
	st := teachingState()
	s := New(&fakeRunner{}, 1, 2)
	s, _ = s.Update(sessionReadyMsg{State: st})

	s, _ = s.Update(turnDoneMsg{State: st, Err: tutor.ErrIterationLimit})

	if s.errMsg != "" {
		t.Errorf("iteration limit must not be fatal, got error %q", s.errMsg)
	}
	if s.notice == "" {
		t.Error("expected a pause notice")
	}
	if !s.canType() {
		t.Error("learner must still be able to reply")
	}
}

func TestCompletedSessionDisablesInput(t *testing.T) {
	st := teachingState()
	st.Phase = tutor.PhaseCompleted
	s := New(&fakeRunner{}, 1, 2)
	s, _ = s.Update(sessionReadyMsg{State: st})

	if s.canType() {
		t.Error("completed session must not accept input")
	}
}

func TestViewRendersTranscript(t *testing.T) {
	s := New(&fakeRunner{}, 1, 2)
	s, _ = s.Update(sessionReadyMsg{State: teachingState()})
	s, _ = s.Update(tea.WindowSizeMsg{Width: 80, Height: 24})

	out := s.View(80, 24)
	if out == "" {
		t.Fatal("expected rendered output")
	}
}
