// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhisek/autodidact/ent/checkpoint"
	"github.com/abhisek/autodidact/ent/learningobjective"
	"github.com/abhisek/autodidact/ent/llmrequestevent"
	"github.com/abhisek/autodidact/ent/node"
	"github.com/abhisek/autodidact/ent/prereqedge"
	"github.com/abhisek/autodidact/ent/project"
	"github.com/abhisek/autodidact/ent/schema"
	"github.com/abhisek/autodidact/ent/session"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	checkpointFields := schema.Checkpoint{}.Fields()
	_ = checkpointFields
	// checkpointDescSessionID is the schema descriptor for session_id field.
	checkpointDescSessionID := checkpointFields[0].Descriptor()
	// checkpoint.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	checkpoint.SessionIDValidator = checkpointDescSessionID.Validators[0].(func(string) error)
	// checkpointDescPhase is the schema descriptor for phase field.
	checkpointDescPhase := checkpointFields[1].Descriptor()
	// checkpoint.PhaseValidator is a validator for the "phase" field. It is called by the builders before save.
	checkpoint.PhaseValidator = checkpointDescPhase.Validators[0].(func(string) error)
	// checkpointDescCreatedAt is the schema descriptor for created_at field.
	checkpointDescCreatedAt := checkpointFields[3].Descriptor()
	// checkpoint.DefaultCreatedAt holds the default value on creation for the created_at field.
	checkpoint.DefaultCreatedAt = checkpointDescCreatedAt.Default.(func() time.Time)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescRequestBody is the schema descriptor for request_body field.
	llmrequesteventDescRequestBody := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	llmrequestevent.DefaultRequestBody = llmrequesteventDescRequestBody.Default.(string)
	// llmrequesteventDescResponseBody is the schema descriptor for response_body field.
	llmrequesteventDescResponseBody := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	llmrequestevent.DefaultResponseBody = llmrequesteventDescResponseBody.Default.(string)
	learningobjectiveFields := schema.LearningObjective{}.Fields()
	_ = learningobjectiveFields
	// learningobjectiveDescObjectiveKey is the schema descriptor for objective_key field.
	learningobjectiveDescObjectiveKey := learningobjectiveFields[0].Descriptor()
	// learningobjective.ObjectiveKeyValidator is a validator for the "objective_key" field. It is called by the builders before save.
	learningobjective.ObjectiveKeyValidator = learningobjectiveDescObjectiveKey.Validators[0].(func(string) error)
	// learningobjectiveDescDescription is the schema descriptor for description field.
	learningobjectiveDescDescription := learningobjectiveFields[1].Descriptor()
	// learningobjective.DescriptionValidator is a validator for the "description" field. It is called by the builders before save.
	learningobjective.DescriptionValidator = learningobjectiveDescDescription.Validators[0].(func(string) error)
	// learningobjectiveDescMastery is the schema descriptor for mastery field.
	learningobjectiveDescMastery := learningobjectiveFields[2].Descriptor()
	// learningobjective.DefaultMastery holds the default value on creation for the mastery field.
	learningobjective.DefaultMastery = learningobjectiveDescMastery.Default.(float64)
	// learningobjectiveDescPosition is the schema descriptor for position field.
	learningobjectiveDescPosition := learningobjectiveFields[3].Descriptor()
	// learningobjective.DefaultPosition holds the default value on creation for the position field.
	learningobjective.DefaultPosition = learningobjectiveDescPosition.Default.(int)
	nodeFields := schema.Node{}.Fields()
	_ = nodeFields
	// nodeDescNodeKey is the schema descriptor for node_key field.
	nodeDescNodeKey := nodeFields[0].Descriptor()
	// node.NodeKeyValidator is a validator for the "node_key" field. It is called by the builders before save.
	node.NodeKeyValidator = nodeDescNodeKey.Validators[0].(func(string) error)
	// nodeDescLabel is the schema descriptor for label field.
	nodeDescLabel := nodeFields[1].Descriptor()
	// node.LabelValidator is a validator for the "label" field. It is called by the builders before save.
	node.LabelValidator = nodeDescLabel.Validators[0].(func(string) error)
	prereqedgeFields := schema.PrereqEdge{}.Fields()
	_ = prereqedgeFields
	// prereqedgeDescSourceKey is the schema descriptor for source_key field.
	prereqedgeDescSourceKey := prereqedgeFields[0].Descriptor()
	// prereqedge.SourceKeyValidator is a validator for the "source_key" field. It is called by the builders before save.
	prereqedge.SourceKeyValidator = prereqedgeDescSourceKey.Validators[0].(func(string) error)
	// prereqedgeDescTargetKey is the schema descriptor for target_key field.
	prereqedgeDescTargetKey := prereqedgeFields[1].Descriptor()
	// prereqedge.TargetKeyValidator is a validator for the "target_key" field. It is called by the builders before save.
	prereqedge.TargetKeyValidator = prereqedgeDescTargetKey.Validators[0].(func(string) error)
	projectFields := schema.Project{}.Fields()
	_ = projectFields
	// projectDescTopic is the schema descriptor for topic field.
	projectDescTopic := projectFields[0].Descriptor()
	// project.TopicValidator is a validator for the "topic" field. It is called by the builders before save.
	project.TopicValidator = projectDescTopic.Validators[0].(func(string) error)
	// projectDescCreatedAt is the schema descriptor for created_at field.
	projectDescCreatedAt := projectFields[2].Descriptor()
	// project.DefaultCreatedAt holds the default value on creation for the created_at field.
	project.DefaultCreatedAt = projectDescCreatedAt.Default.(func() time.Time)
	sessionFields := schema.Session{}.Fields()
	_ = sessionFields
	// sessionDescSessionID is the schema descriptor for session_id field.
	sessionDescSessionID := sessionFields[0].Descriptor()
	// session.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	session.SessionIDValidator = sessionDescSessionID.Validators[0].(func(string) error)
	// sessionDescStatus is the schema descriptor for status field.
	sessionDescStatus := sessionFields[3].Descriptor()
	// session.DefaultStatus holds the default value on creation for the status field.
	session.DefaultStatus = sessionDescStatus.Default.(string)
	// sessionDescFinalScore is the schema descriptor for final_score field.
	sessionDescFinalScore := sessionFields[4].Descriptor()
	// session.DefaultFinalScore holds the default value on creation for the final_score field.
	session.DefaultFinalScore = sessionDescFinalScore.Default.(float64)
	// sessionDescStartedAt is the schema descriptor for started_at field.
	sessionDescStartedAt := sessionFields[5].Descriptor()
	// session.DefaultStartedAt holds the default value on creation for the started_at field.
	session.DefaultStartedAt = sessionDescStartedAt.Default.(func() time.Time)
}
