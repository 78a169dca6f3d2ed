package store

import (
	"context"
	"encoding/json"
	"time"

	"github.com/abhisek/autodidact/internal/llm"
)

// ResourceInfo is a learning resource attached to a project.
type ResourceInfo struct {
	ResourceID string `json:"resource_id"`
	Title      string `json:"title"`
	URL        string `json:"url,omitempty"`
}

// ObjectiveInfo is a learning objective with its current mastery.
type ObjectiveInfo struct {
	Key         string  `json:"key"`
	Description string  `json:"description"`
	Mastery     float64 `json:"mastery"`
	Position    int     `json:"position"`
}

// NodeInfo is a curriculum node with everything a tutoring session needs.
type NodeInfo struct {
	ID           int
	Key          string
	Label        string
	ProjectID    int
	ProjectTopic string
	Resources    []ResourceInfo
	Objectives   []ObjectiveInfo
}

// PrereqObjective is an objective belonging to a prerequisite node.
type PrereqObjective struct {
	NodeKey   string
	NodeLabel string
	ObjectiveInfo
}

// ProjectInfo summarizes a project for listings.
type ProjectInfo struct {
	ID        int
	Topic     string
	NodeCount int
}

// NodeSummary aggregates a node's mastery for progress reports.
type NodeSummary struct {
	ID             int
	Key            string
	Label          string
	ObjectiveCount int
	AvgMastery     float64
}

// CurriculumRepo provides access to the project/node/objective graph.
type CurriculumRepo interface {
	// NodeWithObjectives loads a node with its project context and
	// objectives in teaching order.
	NodeWithObjectives(ctx context.Context, nodeID int) (*NodeInfo, error)

	// PrerequisiteObjectives returns the objectives of every node that is
	// a direct prerequisite of the given node key within the project.
	PrerequisiteObjectives(ctx context.Context, projectID int, nodeKey string) ([]PrereqObjective, error)

	// UpdateMastery writes new mastery values keyed by objective key.
	UpdateMastery(ctx context.Context, mastery map[string]float64) error

	// Projects lists all projects.
	Projects(ctx context.Context) ([]ProjectInfo, error)

	// NodeSummaries lists per-node mastery aggregates for a project.
	NodeSummaries(ctx context.Context, projectID int) ([]NodeSummary, error)

	// CreateProject inserts a project and returns its ID.
	CreateProject(ctx context.Context, topic string, resources []ResourceInfo) (int, error)

	// CreateNode inserts a node and returns its ID.
	CreateNode(ctx context.Context, projectID int, key, label string) (int, error)

	// CreateObjective inserts a learning objective under a node.
	CreateObjective(ctx context.Context, nodeID int, key, description string, position int) error

	// CreatePrereq inserts a prerequisite edge between two node keys.
	CreatePrereq(ctx context.Context, projectID int, sourceKey, targetKey string) error
}

// CheckpointData is a stored session checkpoint.
type CheckpointData struct {
	Phase     string
	State     json.RawMessage
	CreatedAt time.Time
}

// SessionRepo manages tutoring session records and their checkpoints.
type SessionRepo interface {
	// CreateSession records the start of a session.
	CreateSession(ctx context.Context, sessionID string, projectID, nodeID int) error

	// CompleteSession marks a session finished with its overall score.
	CompleteSession(ctx context.Context, sessionID string, finalScore float64) error

	// AbandonSession marks a session as abandoned.
	AbandonSession(ctx context.Context, sessionID string) error

	// SaveCheckpoint appends a checkpoint for the session.
	SaveCheckpoint(ctx context.Context, sessionID, phase string, state json.RawMessage) error

	// LatestCheckpoint returns the most recent checkpoint, or nil if none.
	LatestCheckpoint(ctx context.Context, sessionID string) (*CheckpointData, error)

	// ActiveSession returns the most recent active session ID for a node,
	// or "" if there is none.
	ActiveSession(ctx context.Context, nodeID int) (string, error)
}

// UsageRow aggregates LLM request events by provider and purpose.
type UsageRow struct {
	Provider     string
	Purpose      string
	Requests     int
	InputTokens  int
	OutputTokens int
}

// EventRow is one recorded LLM request, for inspection tooling.
type EventRow struct {
	ID           int
	Sequence     int64
	Timestamp    time.Time
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	llm.EventSink

	// Usage aggregates recorded LLM requests for cost reporting.
	Usage(ctx context.Context) ([]UsageRow, error)

	// RecentEvents returns the newest recorded LLM requests, bodies
	// omitted.
	RecentEvents(ctx context.Context, limit int) ([]EventRow, error)

	// Event returns one recorded request with full bodies, or nil if the
	// ID is unknown.
	Event(ctx context.Context, id int) (*EventRow, error)
}
