// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// CheckpointsColumns holds the columns for the "checkpoints" table.
	CheckpointsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "session_id", Type: field.TypeString},
		{Name: "phase", Type: field.TypeString},
		{Name: "state", Type: field.TypeJSON},
		{Name: "created_at", Type: field.TypeTime},
	}
	// CheckpointsTable holds the schema information for the "checkpoints" table.
	CheckpointsTable = &schema.Table{
		Name:       "checkpoints",
		Columns:    CheckpointsColumns,
		PrimaryKey: []*schema.Column{CheckpointsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "checkpoint_session_id",
				Unique:  false,
				Columns: []*schema.Column{CheckpointsColumns[1]},
			},
			{
				Name:    "checkpoint_created_at",
				Unique:  false,
				Columns: []*schema.Column{CheckpointsColumns[4]},
			},
		},
	}
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
		{Name: "request_body", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "response_body", Type: field.TypeString, Size: 2147483647, Default: ""},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[1]},
			},
			{
				Name:    "llmrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[2]},
			},
			{
				Name:    "llmrequestevent_provider",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[3]},
			},
			{
				Name:    "llmrequestevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[5]},
			},
			{
				Name:    "llmrequestevent_success",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[9]},
			},
		},
	}
	// LearningObjectivesColumns holds the columns for the "learning_objectives" table.
	LearningObjectivesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "objective_key", Type: field.TypeString, Unique: true},
		{Name: "description", Type: field.TypeString},
		{Name: "mastery", Type: field.TypeFloat64, Default: 0},
		{Name: "position", Type: field.TypeInt, Default: 0},
		{Name: "node_objectives", Type: field.TypeInt},
	}
	// LearningObjectivesTable holds the schema information for the "learning_objectives" table.
	LearningObjectivesTable = &schema.Table{
		Name:       "learning_objectives",
		Columns:    LearningObjectivesColumns,
		PrimaryKey: []*schema.Column{LearningObjectivesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "learning_objectives_nodes_objectives",
				Columns:    []*schema.Column{LearningObjectivesColumns[5]},
				RefColumns: []*schema.Column{NodesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "learningobjective_objective_key",
				Unique:  false,
				Columns: []*schema.Column{LearningObjectivesColumns[1]},
			},
		},
	}
	// NodesColumns holds the columns for the "nodes" table.
	NodesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "node_key", Type: field.TypeString},
		{Name: "label", Type: field.TypeString},
		{Name: "project_nodes", Type: field.TypeInt},
	}
	// NodesTable holds the schema information for the "nodes" table.
	NodesTable = &schema.Table{
		Name:       "nodes",
		Columns:    NodesColumns,
		PrimaryKey: []*schema.Column{NodesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "nodes_projects_nodes",
				Columns:    []*schema.Column{NodesColumns[3]},
				RefColumns: []*schema.Column{ProjectsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "node_node_key_project_nodes",
				Unique:  true,
				Columns: []*schema.Column{NodesColumns[1], NodesColumns[3]},
			},
		},
	}
	// PrereqEdgesColumns holds the columns for the "prereq_edges" table.
	PrereqEdgesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "source_key", Type: field.TypeString},
		{Name: "target_key", Type: field.TypeString},
		{Name: "project_prereq_edges", Type: field.TypeInt},
	}
	// PrereqEdgesTable holds the schema information for the "prereq_edges" table.
	PrereqEdgesTable = &schema.Table{
		Name:       "prereq_edges",
		Columns:    PrereqEdgesColumns,
		PrimaryKey: []*schema.Column{PrereqEdgesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "prereq_edges_projects_prereq_edges",
				Columns:    []*schema.Column{PrereqEdgesColumns[3]},
				RefColumns: []*schema.Column{ProjectsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "prereqedge_target_key",
				Unique:  false,
				Columns: []*schema.Column{PrereqEdgesColumns[2]},
			},
			{
				Name:    "prereqedge_source_key",
				Unique:  false,
				Columns: []*schema.Column{PrereqEdgesColumns[1]},
			},
		},
	}
	// ProjectsColumns holds the columns for the "projects" table.
	ProjectsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "topic", Type: field.TypeString},
		{Name: "resources", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// ProjectsTable holds the schema information for the "projects" table.
	ProjectsTable = &schema.Table{
		Name:       "projects",
		Columns:    ProjectsColumns,
		PrimaryKey: []*schema.Column{ProjectsColumns[0]},
	}
	// SessionsColumns holds the columns for the "sessions" table.
	SessionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "session_id", Type: field.TypeString, Unique: true},
		{Name: "project_id", Type: field.TypeInt},
		{Name: "node_id", Type: field.TypeInt},
		{Name: "status", Type: field.TypeString, Default: "active"},
		{Name: "final_score", Type: field.TypeFloat64, Default: 0},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "ended_at", Type: field.TypeTime, Nullable: true},
	}
	// SessionsTable holds the schema information for the "sessions" table.
	SessionsTable = &schema.Table{
		Name:       "sessions",
		Columns:    SessionsColumns,
		PrimaryKey: []*schema.Column{SessionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "session_session_id",
				Unique:  false,
				Columns: []*schema.Column{SessionsColumns[1]},
			},
			{
				Name:    "session_status",
				Unique:  false,
				Columns: []*schema.Column{SessionsColumns[4]},
			},
			{
				Name:    "session_node_id",
				Unique:  false,
				Columns: []*schema.Column{SessionsColumns[3]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		CheckpointsTable,
		LlmRequestEventsTable,
		LearningObjectivesTable,
		NodesTable,
		PrereqEdgesTable,
		ProjectsTable,
		SessionsTable,
	}
)

func init() {
	LearningObjectivesTable.ForeignKeys[0].RefTable = NodesTable
	NodesTable.ForeignKeys[0].RefTable = ProjectsTable
	PrereqEdgesTable.ForeignKeys[0].RefTable = ProjectsTable
}
