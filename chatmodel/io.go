package chatmodel

import (
	"encoding/json"

	"github.com/cockroachdb/errors"
	"github.com/invopop/jsonschema"
)

// InputRequest is a generic free-text input for an assistant.
type InputRequest struct {
	Input string `json:"input" yaml:"input" jsonschema:"title=Input,description=The input message to process."`
}

var (
	_ ContentProvider = InputRequest{}
	_ InputParser     = (*InputRequest)(nil)
)

// NewInputRequest creates an InputRequest with the given input.
func NewInputRequest(input string) *InputRequest {
	return &InputRequest{Input: input}
}

func (r *InputRequest) ParseInput(raw string) error {
	if err := json.Unmarshal([]byte(raw), r); err != nil {
		return errors.WithMessage(ErrFailedUnmarshalInput, err.Error())
	}
	return nil
}

func (r InputRequest) GetContent() string {
	return r.Input
}

// JSONSchemaExtend sets a friendly title on the reflected schema.
func (InputRequest) JSONSchemaExtend(schema *jsonschema.Schema) {
	schema.Title = "Input Request"
}

// OutputResult is a generic free-text assistant output.
type OutputResult struct {
	Content string `json:"content" yaml:"content" jsonschema:"title=Content,description=The content of the response."`
}

var _ ContentProvider = (*OutputResult)(nil)

// NewOutputResult creates an OutputResult with the given content.
func NewOutputResult(content string) *OutputResult {
	return &OutputResult{Content: content}
}

func (r OutputResult) GetContent() string {
	return r.Content
}

// JSONSchemaExtend sets a friendly title on the reflected schema.
func (OutputResult) JSONSchemaExtend(schema *jsonschema.Schema) {
	schema.Title = "Output Result"
}

// IBaseResult is implemented by results that carry reasoning, confidence
// and clarification alongside the answer.
type IBaseResult interface {
	SetReasoning(string)
	SetConfidence(string)
	SetClarification(string)
}

// BaseClarificationResult can be embedded in typed results to let the model
// report how sure it is and what extra information it needs.
type BaseClarificationResult struct {
	Reasoning     string `json:"Reasoning,omitempty" yaml:"Reasoning,omitempty" jsonschema:"title=Reasoning,description=The reasoning behind the answer."`
	Confidence    string `json:"Confidence,omitempty" yaml:"Confidence,omitempty" jsonschema:"title=Confidence,description=The confidence in the answer: High, Medium or Low."`
	Clarification string `json:"Clarification,omitempty" yaml:"Clarification,omitempty" jsonschema:"title=Clarification,description=A clarifying question when the request cannot be answered as asked."`
}

var _ IBaseResult = (*BaseClarificationResult)(nil)

func (r *BaseClarificationResult) SetReasoning(reasoning string) {
	r.Reasoning = reasoning
}

func (r *BaseClarificationResult) SetConfidence(confidence string) {
	r.Confidence = confidence
}

func (r *BaseClarificationResult) SetClarification(clarification string) {
	r.Clarification = clarification
}
