package llm

import (
	"context"
	"encoding/json"
)

// Provider is the abstraction over chat-completion backends. The tutoring
// engine treats it as a black box: a system prompt plus conversation
// history in, assistant text (or schema-validated JSON) out.
type Provider interface {
	// Generate sends the request to the model and returns its reply.
	// When req.Schema is set the provider uses its native structured
	// output mechanism and the response Content is validated JSON.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the configured model identifier.
	ModelID() string
}

// Request describes a single model call.
type Request struct {
	// System is the system prompt framing the tutor's role for this phase.
	System string

	// Messages is the conversation history, oldest first. Tutoring
	// phases send the full session transcript; the quiz grader sends a
	// single user message.
	Messages []Message

	// Schema, when set, constrains the response to JSON conforming to it.
	Schema *Schema

	// MaxTokens bounds the response length.
	MaxTokens int

	// Temperature controls randomness, 0.0 - 1.0. Zero means deterministic.
	Temperature float64
}

// Message is one turn of the conversation.
type Message struct {
	Role    Role
	Content string
}

// Role identifies the message sender.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema names a JSON Schema the response must conform to.
type Schema struct {
	// Name identifies the schema (tool name for Anthropic, schema name
	// for OpenAI). Kebab-case, e.g. "final-test".
	Name string

	// Description tells the model what the schema represents.
	Description string

	// Definition is the JSON Schema definition.
	Definition map[string]any
}

// Response holds the model output.
type Response struct {
	// Content is the reply. Schema-constrained calls get validated JSON;
	// free-text calls get the raw text bytes.
	Content json.RawMessage

	// Usage reports token consumption.
	Usage Usage

	// Model is the model that actually served the request.
	Model string

	// StopReason is normalized to "end", "max_tokens", or "error".
	StopReason string
}

// Usage tracks token counts for one request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

// Text returns the response content as plain text. For free-text calls
// the content is the raw reply; for JSON-quoted strings it unquotes.
func (r *Response) Text() string {
	var s string
	if err := json.Unmarshal(r.Content, &s); err == nil {
		return s
	}
	return string(r.Content)
}
