package tutor

import "fmt"

// Phase is one node in the session state machine. A session moves
// load_context → intro → recap → teaching → testing → grading → wrap →
// completed, with recap and teaching looping in place until their
// completion signals arrive.
type Phase int

const (
	PhaseLoadContext Phase = iota
	PhaseIntro
	PhaseRecap
	PhaseTeaching
	PhaseTesting
	PhaseGrading
	PhaseWrap
	PhaseCompleted
)

var phaseNames = map[Phase]string{
	PhaseLoadContext: "load_context",
	PhaseIntro:       "intro",
	PhaseRecap:       "recap",
	PhaseTeaching:    "teaching",
	PhaseTesting:     "testing",
	PhaseGrading:     "grading",
	PhaseWrap:        "wrap",
	PhaseCompleted:   "completed",
}

func (p Phase) String() string {
	if name, ok := phaseNames[p]; ok {
		return name
	}
	return fmt.Sprintf("phase(%d)", int(p))
}

// ParsePhase converts a stored phase name back to a Phase.
func ParsePhase(name string) (Phase, error) {
	for p, n := range phaseNames {
		if n == name {
			return p, nil
		}
	}
	return 0, fmt.Errorf("unknown phase %q", name)
}

// MarshalText serializes the phase as its snake_case name, keeping
// checkpoints readable.
func (p Phase) MarshalText() ([]byte, error) {
	name, ok := phaseNames[p]
	if !ok {
		return nil, fmt.Errorf("invalid phase %d", int(p))
	}
	return []byte(name), nil
}

func (p *Phase) UnmarshalText(b []byte) error {
	parsed, err := ParsePhase(string(b))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
