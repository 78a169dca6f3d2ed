// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Checkpoint is the predicate function for checkpoint builders.
type Checkpoint func(*sql.Selector)

// LLMRequestEvent is the predicate function for llmrequestevent builders.
type LLMRequestEvent func(*sql.Selector)

// LearningObjective is the predicate function for learningobjective builders.
type LearningObjective func(*sql.Selector)

// Node is the predicate function for node builders.
type Node func(*sql.Selector)

// PrereqEdge is the predicate function for prereqedge builders.
type PrereqEdge func(*sql.Selector)

// Project is the predicate function for project builders.
type Project func(*sql.Selector)

// Session is the predicate function for session builders.
type Session func(*sql.Selector)
