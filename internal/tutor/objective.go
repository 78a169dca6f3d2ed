package tutor

// MasteryThreshold separates objectives that still need teaching from
// ones the learner already knows.
const MasteryThreshold = 0.7

// Objective is a single learning goal with its mastery estimate.
// Session-local copies are immutable values; only the wrap phase writes
// mastery back to storage.
type Objective struct {
	Key         string  `json:"key"`
	Description string  `json:"description"`
	Mastery     float64 `json:"mastery"`
	NodeKey     string  `json:"node_key,omitempty"`
}

// Mastered reports whether the objective meets the mastery threshold.
func (o Objective) Mastered() bool {
	return o.Mastery >= MasteryThreshold
}

// descriptions extracts the description of each objective, in order.
func descriptions(objs []Objective) []string {
	out := make([]string, len(objs))
	for i, o := range objs {
		out[i] = o.Description
	}
	return out
}
