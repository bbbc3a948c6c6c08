package chatmodel

import (
	"encoding/json"

	"github.com/cockroachdb/errors"
	"github.com/invopop/jsonschema"
)

// ContentProvider provides the payload of a message for the chat history.
type ContentProvider interface {
	// GetContent gets the content of the message for the chat history
	GetContent() string
}

// InputParser lets an input type override how raw assistant or tool input
// is parsed, instead of plain JSON unmarshaling.
type InputParser interface {
	ParseInput(input string) error
}

// IBaseResult is implemented by typed results that can carry
// clarification details back to the caller.
type IBaseResult interface {
	SetConfidence(confidence string)
	SetClarification(clarification string)
	SetReasoning(reasoning string)
}

// MCPInputRequest is an addressed input: the chat session to bind to and the
// message to process.
type MCPInputRequest struct {
	ChatID string `json:"chatID" yaml:"chatID" jsonschema:"title=Chat ID,description=The ID of the chat session."`
	Input  string `json:"input" yaml:"input" jsonschema:"title=Input,description=The message sent by the user to the assistant."`
}

func (r *MCPInputRequest) GetContent() string {
	return r.Input
}

func (r *MCPInputRequest) ParseInput(input string) error {
	if err := json.Unmarshal([]byte(input), r); err != nil {
		return errors.WithStack(ErrFailedUnmarshalInput)
	}
	return nil
}

func (MCPInputRequest) JSONSchemaExtend(s *jsonschema.Schema) {
	s.Title = "MCP Input Request"
}

// InputRequest is the default input type for assistants.
type InputRequest struct {
	Input string `json:"input" yaml:"input" jsonschema:"title=Input,description=The message sent by the user to the assistant."`
}

// NewInputRequest returns an InputRequest with the provided message.
func NewInputRequest(input string) *InputRequest {
	return &InputRequest{Input: input}
}

func (r InputRequest) GetContent() string {
	return r.Input
}

func (r *InputRequest) ParseInput(input string) error {
	if err := json.Unmarshal([]byte(input), r); err != nil {
		return errors.WithStack(ErrFailedUnmarshalInput)
	}
	return nil
}

func (InputRequest) JSONSchemaExtend(s *jsonschema.Schema) {
	s.Title = "Input Request"
}

// OutputResult is the default output type for assistants.
type OutputResult struct {
	Content string `json:"content" yaml:"content" jsonschema:"title=Response Content,description=The content returned by agent or tool."`
}

// NewOutputResult returns an OutputResult with the provided content.
func NewOutputResult(content string) *OutputResult {
	return &OutputResult{Content: content}
}

func (r OutputResult) GetContent() string {
	return r.Content
}

// BaseClarificationResult can be embedded in typed results to let the
// assistant report low confidence and ask the user for clarification.
type BaseClarificationResult struct {
	Confidence    string `json:"confidence,omitempty" yaml:"confidence,omitempty" jsonschema:"title=Confidence,description=The confidence level of the answer: High\\, Medium\\, Low."`
	Clarification string `json:"clarification,omitempty" yaml:"clarification,omitempty" jsonschema:"title=Clarification,description=A clarification question to the user\\, when the request cannot be answered as asked."`
	Reasoning     string `json:"reasoning,omitempty" yaml:"reasoning,omitempty" jsonschema:"title=Reasoning,description=The reasoning behind the answer."`
}

func (r *BaseClarificationResult) SetConfidence(confidence string) {
	r.Confidence = confidence
}

func (r *BaseClarificationResult) SetClarification(clarification string) {
	r.Clarification = clarification
}

func (r *BaseClarificationResult) SetReasoning(reasoning string) {
	r.Reasoning = reasoning
}
