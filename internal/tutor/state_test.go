package tutor

import (
	"strings"
	"testing"
	"time"
)

func TestStateCheckpointRoundTrip(t *testing.T) {
	st := NewState("sess", 1, 2)
	st.Phase = PhaseTeaching
	st.ObjectiveIdx = 1
	st.ObjectivesToTeach = []Objective{{Key: "obj-a", Description: "A", Mastery: 0.2, NodeKey: "n1"}}
	st.CompletedObjectives = []string{"obj-a"}
	st.History = []Message{{Role: RoleAssistant, Content: "hello"}}
	st.Forced = ForcedObjectiveComplete

	raw, err := st.Marshal()
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if !strings.Contains(string(raw), `"current_phase":"teaching"`) {
		t.Errorf("phase not serialized as its name: %s", raw)
	}

	got, err := UnmarshalState(raw)
	if err != nil {
		t.Fatalf("UnmarshalState: %v", err)
	}
	if got.Phase != PhaseTeaching || got.ObjectiveIdx != 1 || got.SessionID != "sess" {
		t.Errorf("round trip lost fields: %+v", got)
	}
	// Forced signals are transient and must not survive a checkpoint.
	if got.Forced != ForcedNone {
		t.Errorf("forced signal leaked through serialization: %v", got.Forced)
	}
}

func TestParsePhase(t *testing.T) {
	for p := PhaseLoadContext; p <= PhaseCompleted; p++ {
		got, err := ParsePhase(p.String())
		if err != nil {
			t.Fatalf("ParsePhase(%q): %v", p.String(), err)
		}
		if got != p {
			t.Errorf("ParsePhase(%q) = %v, want %v", p.String(), got, p)
		}
	}
	if _, err := ParsePhase("daydreaming"); err == nil {
		t.Error("expected error for unknown phase name")
	}
}

func TestDetectInterruption(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	st := NewState("s", 1, 1)
	if interrupted, _ := st.DetectInterruption(now, InterruptionThreshold); interrupted {
		t.Error("no last message means no interruption")
	}

	recent := now.Add(-2 * time.Minute)
	st.LastMessageAt = &recent
	if interrupted, _ := st.DetectInterruption(now, InterruptionThreshold); interrupted {
		t.Error("2 minutes is not an interruption")
	}

	longAgo := now.Add(-25 * time.Minute)
	st.LastMessageAt = &longAgo
	interrupted, gap := st.DetectInterruption(now, InterruptionThreshold)
	if !interrupted {
		t.Error("25 minutes should count as an interruption")
	}
	if gap != 25*time.Minute {
		t.Errorf("expected 25m gap, got %v", gap)
	}
}
