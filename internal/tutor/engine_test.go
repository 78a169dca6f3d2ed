package tutor

import (
	"context"
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/abhisek/autodidact/internal/llm"
	"github.com/abhisek/autodidact/internal/store"
)

// fakeCurriculum serves a single in-memory node.
type fakeCurriculum struct {
	node          *store.NodeInfo
	prereqs       []store.PrereqObjective
	masteryWrites []map[string]float64
}

func (f *fakeCurriculum) NodeWithObjectives(_ context.Context, nodeID int) (*store.NodeInfo, error) {
	if f.node == nil || f.node.ID != nodeID {
		return nil, nil
	}
	return f.node, nil
}

func (f *fakeCurriculum) PrerequisiteObjectives(context.Context, int, string) ([]store.PrereqObjective, error) {
	return f.prereqs, nil
}

func (f *fakeCurriculum) UpdateMastery(_ context.Context, mastery map[string]float64) error {
	f.masteryWrites = append(f.masteryWrites, mastery)
	return nil
}

type checkpointRec struct {
	phase string
	state json.RawMessage
}

type fakeSessions struct {
	created     []string
	completed   map[string]float64
	checkpoints map[string][]checkpointRec
}

func newFakeSessions() *fakeSessions {
	return &fakeSessions{
		completed:   map[string]float64{},
		checkpoints: map[string][]checkpointRec{},
	}
}

func (f *fakeSessions) CreateSession(_ context.Context, sessionID string, _, _ int) error {
	f.created = append(f.created, sessionID)
	return nil
}

func (f *fakeSessions) CompleteSession(_ context.Context, sessionID string, finalScore float64) error {
	f.completed[sessionID] = finalScore
	return nil
}

func (f *fakeSessions) SaveCheckpoint(_ context.Context, sessionID, phase string, state json.RawMessage) error {
	f.checkpoints[sessionID] = append(f.checkpoints[sessionID], checkpointRec{phase: phase, state: state})
	return nil
}

func (f *fakeSessions) LatestCheckpoint(_ context.Context, sessionID string) (*store.CheckpointData, error) {
	cps := f.checkpoints[sessionID]
	if len(cps) == 0 {
		return nil, nil
	}
	last := cps[len(cps)-1]
	return &store.CheckpointData{Phase: last.phase, State: last.state}, nil
}

func twoObjectiveNode() *store.NodeInfo {
	return &store.NodeInfo{
		ID:           1,
		Key:          "n1",
		Label:        "Derivatives",
		ProjectID:    10,
		ProjectTopic: "Calculus",
		Objectives: []store.ObjectiveInfo{
			{Key: "obj-a", Description: "Explain the limit definition of a derivative", Mastery: 0.1},
			{Key: "obj-b", Description: "Differentiate polynomial functions", Mastery: 0.2},
		},
	}
}

func newTestEngine(provider llm.Provider, curriculum *fakeCurriculum, sessions *fakeSessions, opts ...Option) *Engine {
	return NewEngine(provider, curriculum, sessions, opts...)
}

func TestStartSession_SkipsRecapWithoutPrereqs(t *testing.T) {
	mock := llm.NewMockProvider(llm.TextResponse("A derivative measures instantaneous change. What do you think happens as the interval shrinks?"))
	curriculum := &fakeCurriculum{node: twoObjectiveNode()}
	sessions := newFakeSessions()
	e := newTestEngine(mock, curriculum, sessions)

	st, err := e.StartSession(t.Context(), 10, 1)
	if err != nil {
		t.Fatalf("StartSession: %v", err)
	}

	if st.Phase != PhaseTeaching {
		t.Fatalf("expected to land in teaching, got %v", st.Phase)
	}

	// No prerequisites and no known objectives: recap must be entered and
	// left without a model call, so the only call is the teaching one.
	if mock.CallCount() != 1 {
		t.Errorf("expected exactly 1 model call, got %d", mock.CallCount())
	}

	if len(st.History) != 2 {
		t.Fatalf("expected intro + teaching messages, got %d messages", len(st.History))
	}
	if !strings.Contains(st.History[0].Content, "Welcome to: Derivatives") {
		t.Errorf("unexpected intro message: %q", st.History[0].Content)
	}
}

func TestMissingNodeIsFatal(t *testing.T) {
	e := newTestEngine(llm.NewMockProvider(), &fakeCurriculum{}, newFakeSessions())

	_, err := e.StartSession(t.Context(), 10, 99)
	if !errors.Is(err, ErrNodeNotFound) {
		t.Fatalf("expected ErrNodeNotFound, got %v", err)
	}
}

func TestTeachingCompletesAllObjectives(t *testing.T) {
	completing := llm.TextResponse(`Well explained! <control>{"objective_complete": true}</control>`)
	mock := llm.NewMockProvider(
		completing,
		completing,
		llm.TextResponse("1. What is a derivative?\n2. Compute the derivative of x^2."),
	)
	curriculum := &fakeCurriculum{node: twoObjectiveNode()}
	sessions := newFakeSessions()
	e := newTestEngine(mock, curriculum, sessions)

	st, err := e.StartSession(t.Context(), 10, 1)
	if err != nil {
		t.Fatalf("StartSession: %v", err)
	}
	if st.ObjectiveIdx != 1 {
		t.Fatalf("expected objective_idx 1 after first completion, got %d", st.ObjectiveIdx)
	}

	st, err = e.RunTurn(t.Context(), st, "The derivative is the limit of the difference quotient.")
	if err != nil {
		t.Fatalf("RunTurn: %v", err)
	}
	if st.ObjectiveIdx != 2 {
		t.Fatalf("expected objective_idx 2 after second completion, got %d", st.ObjectiveIdx)
	}

	st, err = e.RunTurn(t.Context(), st, "Ready for the test.")
	if err != nil {
		t.Fatalf("RunTurn: %v", err)
	}

	if st.Phase != PhaseTesting {
		t.Fatalf("expected testing phase, got %v", st.Phase)
	}
	if len(st.TestQuestions) != 2 {
		t.Errorf("expected 2 generated questions, got %d", len(st.TestQuestions))
	}
	if last, _ := st.LastMessage(); !strings.Contains(last.Content, "Question 1/2") {
		t.Errorf("expected the first question asked, got %q", last.Content)
	}
	want := []string{"obj-a", "obj-b"}
	if !reflect.DeepEqual(st.CompletedObjectives, want) {
		t.Errorf("expected completed objectives %v, got %v", want, st.CompletedObjectives)
	}

	// Control fragments never reach the transcript.
	for _, msg := range st.History {
		if strings.Contains(msg.Content, "<control>") {
			t.Errorf("control block leaked into history: %q", msg.Content)
		}
	}
}

func TestCompletedObjectivesNeverDuplicate(t *testing.T) {
	st := NewState("s", 10, 1)
	st.ObjectivesToTeach = []Objective{
		{Key: "obj-a", Description: "A"},
		{Key: "obj-b", Description: "B"},
	}
	st.CompletedObjectives = []string{"obj-a"}

	e := newTestEngine(llm.NewMockProvider(), &fakeCurriculum{}, newFakeSessions())
	next := e.completeObjective(st.clone(), 0, "recap of A")

	count := 0
	for _, id := range next.CompletedObjectives {
		if id == "obj-a" {
			count++
		}
	}
	if count != 1 {
		t.Errorf("expected obj-a recorded once, got %d entries", count)
	}
}

func TestRecapLoopsUntilSignal(t *testing.T) {
	node := twoObjectiveNode()
	curriculum := &fakeCurriculum{
		node: node,
		prereqs: []store.PrereqObjective{{
			NodeKey:   "n0",
			NodeLabel: "Limits",
			ObjectiveInfo: store.ObjectiveInfo{
				Key: "pre-1", Description: "Evaluate limits of rational functions", Mastery: 0.9,
			},
		}},
	}
	mock := llm.NewMockProvider(
		llm.TextResponse("Quick check: what is the limit of 1/x as x grows?"),
		llm.TextResponse(`Exactly right. <control>{"prereq_complete": true}</control>`),
		llm.TextResponse("Now, the limit definition of a derivative..."),
	)
	sessions := newFakeSessions()
	e := newTestEngine(mock, curriculum, sessions)

	st, err := e.StartSession(t.Context(), 10, 1)
	if err != nil {
		t.Fatalf("StartSession: %v", err)
	}
	if st.Phase != PhaseRecap {
		t.Fatalf("expected recap to wait for the learner, got %v", st.Phase)
	}

	st, err = e.RunTurn(t.Context(), st, "It goes to zero.")
	if err != nil {
		t.Fatalf("RunTurn: %v", err)
	}
	if st.Phase != PhaseTeaching {
		t.Fatalf("expected teaching after prereq_complete, got %v", st.Phase)
	}

	for _, msg := range st.History {
		if strings.Contains(msg.Content, "prereq_complete") {
			t.Errorf("control block leaked into history: %q", msg.Content)
		}
	}
}

func TestModelFailuresNeverPropagate(t *testing.T) {
	node := twoObjectiveNode()
	curriculum := &fakeCurriculum{
		node: node,
		prereqs: []store.PrereqObjective{{
			NodeKey:       "n0",
			NodeLabel:     "Limits",
			ObjectiveInfo: store.ObjectiveInfo{Key: "pre-1", Description: "Limits", Mastery: 0.9},
		}},
	}
	// Empty queue: every Generate call fails.
	mock := llm.NewMockProvider()
	sessions := newFakeSessions()
	e := newTestEngine(mock, curriculum, sessions)

	st, err := e.StartSession(t.Context(), 10, 1)
	if err != nil {
		t.Fatalf("recap failure must not propagate: %v", err)
	}
	if st.Phase != PhaseRecap {
		t.Fatalf("expected to stay in recap, got %v", st.Phase)
	}
	if last, _ := st.LastMessage(); !strings.Contains(last.Content, "technical difficulties") {
		t.Errorf("expected recap fallback message, got %q", last.Content)
	}

	// The literal keyword heuristic is the only way forward after a
	// failure: "ready" advances recap, then teaching fails into its own
	// fallback.
	st, err = e.RunTurn(t.Context(), st, "I am ready")
	if err != nil {
		t.Fatalf("teaching failure must not propagate: %v", err)
	}
	if st.Phase != PhaseTeaching {
		t.Fatalf("expected teaching after 'ready', got %v", st.Phase)
	}
	if last, _ := st.LastMessage(); !strings.Contains(last.Content, "technical issues") {
		t.Errorf("expected teaching fallback message, got %q", last.Content)
	}
}

func TestGradingFallbackScore(t *testing.T) {
	curriculum := &fakeCurriculum{node: twoObjectiveNode()}
	sessions := newFakeSessions()
	e := newTestEngine(llm.NewMockProvider(), curriculum, sessions)

	st := NewState("sess-1", 10, 1)
	st.ObjectivesToTeach = []Objective{{Key: "obj-a", Description: "A", Mastery: 0.1}}
	st.Phase = PhaseGrading
	st.TestQuestions = []string{"Q1?", "Q2?"}
	st.TestAnswers = []string{"A1", "A2"}

	next, err := e.Advance(t.Context(), st)
	if err != nil {
		t.Fatalf("grading failure must not propagate: %v", err)
	}
	if next.Phase != PhaseWrap {
		t.Fatalf("expected wrap after grading fallback, got %v", next.Phase)
	}
	if next.ObjectiveScores["session"] != 0.75 {
		t.Errorf("expected 0.75 fallback score, got %v", next.ObjectiveScores["session"])
	}

	final, err := e.Advance(t.Context(), next)
	if err != nil {
		t.Fatalf("wrap: %v", err)
	}
	if final.Phase != PhaseCompleted {
		t.Fatalf("expected completed, got %v", final.Phase)
	}

	if len(curriculum.masteryWrites) != 1 {
		t.Fatalf("expected one mastery write, got %d", len(curriculum.masteryWrites))
	}
	got := curriculum.masteryWrites[0]["obj-a"]
	want := 0.1 + 0.75*0.3
	if got < want-1e-9 || got > want+1e-9 {
		t.Errorf("expected mastery %.4f, got %.4f", want, got)
	}
	if sessions.completed["sess-1"] != 0.75 {
		t.Errorf("expected session completed with 0.75, got %v", sessions.completed["sess-1"])
	}
}

func TestTestingKeepsAnswersBounded(t *testing.T) {
	curriculum := &fakeCurriculum{node: twoObjectiveNode()}
	sessions := newFakeSessions()
	mock := llm.NewMockProvider()
	mock.Repeat = true
	mock.AddResponse(llm.TextResponse("not a grading payload"))
	e := newTestEngine(mock, curriculum, sessions)

	st := NewState("sess-2", 10, 1)
	st.Phase = PhaseTesting
	st.TestQuestions = []string{"Explain X.", "Pick one:\n1. Cow\n2. Moon"}

	// First advance asks question 1.
	st, err := e.Advance(t.Context(), st)
	if err != nil {
		t.Fatalf("Advance: %v", err)
	}
	if last, _ := st.LastMessage(); !strings.Contains(last.Content, "Question 1/2") {
		t.Errorf("expected Question 1/2 label, got %q", last.Content)
	}

	answers := []string{"X is a thing.", "2", "extra answer"}
	for _, a := range answers {
		st.History = append(st.History, Message{Role: RoleUser, Content: a})
		for {
			next, err := e.Advance(t.Context(), st)
			if err != nil {
				t.Fatalf("Advance: %v", err)
			}
			st = next
			if len(st.TestAnswers) > len(st.TestQuestions) {
				t.Fatalf("answers (%d) exceeded questions (%d)", len(st.TestAnswers), len(st.TestQuestions))
			}
			if !st.AutoAdvance || st.Phase != PhaseTesting {
				break
			}
		}
		if st.Phase != PhaseTesting {
			break
		}
	}

	if st.Phase != PhaseGrading && st.Phase != PhaseWrap {
		t.Fatalf("expected grading to begin once answers were complete, got %v", st.Phase)
	}
	if st.TestAnswers[1] != "Moon" {
		t.Errorf("expected single-character answer normalized to 'Moon', got %q", st.TestAnswers[1])
	}
}

func TestIterationLimitIsReportedNotFatal(t *testing.T) {
	curriculum := &fakeCurriculum{node: twoObjectiveNode()}
	sessions := newFakeSessions()
	e := newTestEngine(llm.NewMockProvider(llm.TextResponse("hi")), curriculum, sessions,
		WithMaxAutoAdvance(2))

	st, err := e.StartSession(t.Context(), 10, 1)
	if !errors.Is(err, ErrIterationLimit) {
		t.Fatalf("expected ErrIterationLimit, got %v", err)
	}
	// The state alongside the error is still usable.
	if st.Phase != PhaseRecap {
		t.Errorf("expected the session paused mid-flow, got %v", st.Phase)
	}
}

func TestForcedSignalAdvancesObjective(t *testing.T) {
	mock := llm.NewMockProvider(llm.TextResponse("Let's talk about derivatives."))
	curriculum := &fakeCurriculum{node: twoObjectiveNode()}
	sessions := newFakeSessions()
	e := newTestEngine(mock, curriculum, sessions)

	st, err := e.StartSession(t.Context(), 10, 1)
	if err != nil {
		t.Fatalf("StartSession: %v", err)
	}
	calls := mock.CallCount()

	st, err = e.RunTurn(t.Context(), st, "/next")
	if err != nil {
		t.Fatalf("RunTurn /next: %v", err)
	}

	if st.ObjectiveIdx != 1 {
		t.Errorf("expected forced signal to advance objective_idx to 1, got %d", st.ObjectiveIdx)
	}
	if len(st.CompletedObjectives) != 1 || st.CompletedObjectives[0] != "obj-a" {
		t.Errorf("expected obj-a completed, got %v", st.CompletedObjectives)
	}
	if mock.CallCount() != calls {
		t.Errorf("forced advancement must not call the model, got %d extra calls", mock.CallCount()-calls)
	}
	if last, _ := st.LastMessage(); !strings.Contains(last.Content, NextObjectivePrefix) {
		t.Errorf("expected transition message, got %q", last.Content)
	}
}

func TestForceCompleteCommand(t *testing.T) {
	mock := llm.NewMockProvider(llm.TextResponse("Teaching content."))
	curriculum := &fakeCurriculum{node: twoObjectiveNode()}
	sessions := newFakeSessions()
	e := newTestEngine(mock, curriculum, sessions)

	st, err := e.StartSession(t.Context(), 10, 1)
	if err != nil {
		t.Fatalf("StartSession: %v", err)
	}

	st, err = e.RunTurn(t.Context(), st, "/completed")
	if err != nil {
		t.Fatalf("RunTurn /completed: %v", err)
	}

	if st.Phase != PhaseCompleted {
		t.Fatalf("expected completed, got %v", st.Phase)
	}
	if len(curriculum.masteryWrites) != 1 {
		t.Fatalf("expected one mastery write, got %d", len(curriculum.masteryWrites))
	}
	for key, v := range curriculum.masteryWrites[0] {
		if v != 0.85 {
			t.Errorf("expected 0.85 for %s, got %v", key, v)
		}
	}
	if sessions.completed[st.SessionID] != 0.85 {
		t.Errorf("expected session completed with 0.85, got %v", sessions.completed[st.SessionID])
	}
	if last, _ := st.LastMessage(); !strings.Contains(last.Content, "85%") {
		t.Errorf("expected debug completion message, got %q", last.Content)
	}
}

func TestPhaseFunctionsArePure(t *testing.T) {
	e := newTestEngine(llm.NewMockProvider(), &fakeCurriculum{}, newFakeSessions())

	st := NewState("s", 10, 1)
	st.NodeTitle = "Derivatives"
	st.ObjectivesToTeach = []Objective{{Key: "obj-a", Description: "A"}}
	st.Phase = PhaseIntro

	first, err := e.Advance(t.Context(), st)
	if err != nil {
		t.Fatalf("Advance: %v", err)
	}
	second, err := e.Advance(t.Context(), st)
	if err != nil {
		t.Fatalf("Advance: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Error("identical input states must produce identical outputs")
	}
	if len(st.History) != 0 {
		t.Error("input state was mutated")
	}
}

func TestCheckpointsTrackPhaseTransitions(t *testing.T) {
	mock := llm.NewMockProvider(llm.TextResponse("Teaching content."))
	curriculum := &fakeCurriculum{node: twoObjectiveNode()}
	sessions := newFakeSessions()
	e := newTestEngine(mock, curriculum, sessions)

	st, err := e.StartSession(t.Context(), 10, 1)
	if err != nil {
		t.Fatalf("StartSession: %v", err)
	}

	cps := sessions.checkpoints[st.SessionID]
	want := []string{"intro", "recap", "teaching", "teaching"}
	if len(cps) != len(want) {
		t.Fatalf("expected %d checkpoints, got %d", len(want), len(cps))
	}
	for i, w := range want {
		if cps[i].phase != w {
			t.Errorf("checkpoint %d: expected phase %s, got %s", i, w, cps[i].phase)
		}
	}

	restored, err := e.Resume(t.Context(), st.SessionID)
	if err != nil {
		t.Fatalf("Resume: %v", err)
	}
	if restored.Phase != st.Phase {
		t.Errorf("expected restored phase %v, got %v", st.Phase, restored.Phase)
	}
	if len(restored.History) != len(st.History) {
		t.Errorf("expected %d history entries after resume, got %d", len(st.History), len(restored.History))
	}
}

func TestObjectiveIdxMonotonic(t *testing.T) {
	completing := llm.TextResponse(`Done. <control>{"objective_complete": true}</control>`)
	mock := llm.NewMockProvider(completing)
	mock.Repeat = true
	curriculum := &fakeCurriculum{node: twoObjectiveNode()}
	e := newTestEngine(mock, curriculum, newFakeSessions())

	st := NewState("s", 10, 1)
	st.ObjectivesToTeach = []Objective{
		{Key: "obj-a", Description: "A"},
		{Key: "obj-b", Description: "B"},
	}
	st.Phase = PhaseTeaching

	prev := st.ObjectiveIdx
	for i := 0; i < 5; i++ {
		next, err := e.Advance(t.Context(), st)
		if err != nil {
			t.Fatalf("Advance: %v", err)
		}
		if next.ObjectiveIdx < prev {
			t.Fatalf("objective_idx decreased: %d -> %d", prev, next.ObjectiveIdx)
		}
		prev = next.ObjectiveIdx
		st = next
		if st.Phase != PhaseTeaching {
			break
		}
	}
}

func TestExitRequestedLimitsTestScope(t *testing.T) {
	st := NewState("s", 10, 1)
	st.ObjectivesToTeach = []Objective{
		{Key: "obj-a", Description: "A"},
		{Key: "obj-b", Description: "B"},
	}
	st.CompletedObjectives = []string{"obj-a"}

	if got := st.ObjectivesForTesting(); len(got) != 2 {
		t.Errorf("without exit, all teach-targets are testable, got %d", len(got))
	}

	st.ExitRequested = true
	got := st.ObjectivesForTesting()
	if len(got) != 1 || got[0].Key != "obj-a" {
		t.Errorf("with exit requested, only taught objectives are testable, got %v", got)
	}
}
