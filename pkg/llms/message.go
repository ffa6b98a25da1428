package llms

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
)

// ErrUnexpectedRole is returned when a message role is of an unexpected type.
var ErrUnexpectedRole = errors.New("unexpected role")

// Role is the author of a chat message.
type Role string

const (
	// RoleAI is a message produced by the model.
	RoleAI Role = "ai"
	// RoleHuman is a message sent by the user.
	RoleHuman Role = "human"
	// RoleSystem is the system prompt.
	RoleSystem Role = "system"
	// RoleGeneric is a message without a specific author, such as an
	// inter-assistant note.
	RoleGeneric Role = "generic"
	// RoleTool is the result of a tool invocation.
	RoleTool Role = "tool"
)

// Message is a single message sent to or received from a model.
// A message has a role and one or more content parts: plain text, an image,
// binary data, a tool call request, or a tool call response.
type Message struct {
	Role  Role          `json:"role"`
	Parts []ContentPart `json:"parts"`
}

// ContentPart is implemented by all message content parts.
type ContentPart interface {
	isPart()
}

// TextContent is a text part.
type TextContent struct {
	Text string `json:"text"`
}

func (tc TextContent) String() string {
	return tc.Text
}

func (TextContent) isPart() {}

// ImageURLContent is a part pointing to an image by URL.
type ImageURLContent struct {
	URL string `json:"url"`
	// Detail is the requested fidelity, e.g. "low" or "high".
	Detail string `json:"detail,omitempty"`
}

func (iuc ImageURLContent) String() string {
	return iuc.URL
}

func (ImageURLContent) isPart() {}

// BinaryContent is a part with inline binary data and a MIME type.
type BinaryContent struct {
	MIMEType string `json:"mime_type"`
	Data     []byte `json:"data"`
}

func (bc BinaryContent) String() string {
	return "data:" + bc.MIMEType + ";base64," + base64.StdEncoding.EncodeToString(bc.Data)
}

func (BinaryContent) isPart() {}

// FunctionCall is the name and JSON encoded arguments of a function call.
type FunctionCall struct {
	Name      string `json:"name"`
	Arguments string `json:"arguments"`
}

// ToolCall is a tool invocation requested by the model.
type ToolCall struct {
	// ID uniquely identifies the call so the response can be correlated.
	ID string `json:"id"`
	// Type of the call, typically "function".
	Type string `json:"type"`
	// FunctionCall is the requested function and its arguments.
	FunctionCall *FunctionCall `json:"function,omitempty"`
}

func (tc ToolCall) String() string {
	return fmt.Sprintf("ToolCall: %s (%s), input: %s", tc.ID, tc.FunctionCall.Name, tc.FunctionCall.Arguments)
}

func (ToolCall) isPart() {}

// ToolCallResponse is the result of executing a requested tool call.
type ToolCallResponse struct {
	// ToolCallID is the ID of the tool call this response is for.
	ToolCallID string `json:"tool_call_id"`
	// Name of the tool that was called.
	Name string `json:"name"`
	// Content is the textual result of the call.
	Content string `json:"content"`
}

func (tc ToolCallResponse) String() string {
	return fmt.Sprintf("ToolCallResponse: %s (%s), response size: %d", tc.ToolCallID, tc.Name, len(tc.Content))
}

func (ToolCallResponse) isPart() {}

// TextPart creates a TextContent part.
func TextPart(s string) TextContent {
	return TextContent{Text: s}
}

// BinaryPart creates a BinaryContent part from a MIME type and raw data.
func BinaryPart(mime string, data []byte) BinaryContent {
	return BinaryContent{MIMEType: mime, Data: data}
}

// ImageURLPart creates an ImageURLContent part.
func ImageURLPart(url string) ImageURLContent {
	return ImageURLContent{URL: url}
}

// MessageFromParts creates a Message with the given role and parts.
func MessageFromParts(role Role, parts ...ContentPart) Message {
	return Message{
		Role:  role,
		Parts: parts,
	}
}

// MessageFromTextParts creates a Message with the given role and text parts.
func MessageFromTextParts(role Role, parts ...string) Message {
	msg := Message{
		Role:  role,
		Parts: make([]ContentPart, 0, len(parts)),
	}
	for _, part := range parts {
		msg.Parts = append(msg.Parts, TextPart(part))
	}
	return msg
}

// MessageFromToolCalls creates a Message carrying tool call requests.
func MessageFromToolCalls(role Role, toolCalls ...ToolCall) Message {
	msg := Message{
		Role:  role,
		Parts: make([]ContentPart, 0, len(toolCalls)),
	}
	for _, tc := range toolCalls {
		msg.Parts = append(msg.Parts, ToolCall{
			ID:   tc.ID,
			Type: tc.Type,
			FunctionCall: &FunctionCall{
				Name:      tc.FunctionCall.Name,
				Arguments: tc.FunctionCall.Arguments,
			},
		})
	}
	return msg
}

// MessageFromToolResponse creates a Message carrying a tool call response.
func MessageFromToolResponse(role Role, resp ToolCallResponse) Message {
	return MessageFromParts(role, ToolCallResponse{
		ToolCallID: resp.ToolCallID,
		Name:       resp.Name,
		Content:    resp.Content,
	})
}

// GetContent renders all message parts as text.
func (m Message) GetContent() string {
	var buf strings.Builder
	lastNewLine := true
	for _, p := range m.Parts {
		if !lastNewLine {
			buf.WriteString("\n")
		}
		switch typ := p.(type) {
		case TextContent:
			buf.WriteString(typ.Text)
			lastNewLine = strings.HasSuffix(typ.Text, "\n")
		case ImageURLContent:
			buf.WriteString("URL: ")
			buf.WriteString(typ.URL)
			lastNewLine = false
		case BinaryContent:
			buf.WriteString("Binary: ")
			buf.WriteString(typ.MIMEType)
			buf.WriteString("\n")
			buf.WriteString(base64.StdEncoding.EncodeToString(typ.Data))
			lastNewLine = false
		case ToolCall:
			buf.WriteString("Tool Call: ")
			js, _ := json.Marshal(typ)
			buf.Write(js)
			buf.WriteString("\n")
			lastNewLine = true
		case ToolCallResponse:
			buf.WriteString("Response: ")
			js, _ := json.Marshal(typ)
			buf.Write(js)
			buf.WriteString("\n")
			lastNewLine = true
		}
	}
	if !lastNewLine {
		buf.WriteString("\n")
	}
	return buf.String()
}

// GetBufferString renders a chat transcript with a role prefix per line,
// using the given prefixes for human and AI messages.
func GetBufferString(messages []Message, humanPrefix string, aiPrefix string) (string, error) {
	result := make([]string, 0, len(messages))
	for _, m := range messages {
		var role string
		switch m.Role {
		case RoleHuman:
			role = humanPrefix
		case RoleAI:
			role = aiPrefix
		case RoleSystem:
			role = "System"
		case RoleGeneric:
			role = "Generic"
		case RoleTool:
			role = "Tool"
		default:
			return "", errors.WithStack(ErrUnexpectedRole)
		}
		result = append(result, fmt.Sprintf("%s: %s", role, strings.TrimRight(m.GetContent(), "\n")))
	}
	return strings.Join(result, "\n"), nil
}

// ContentResponse is the response returned by a GenerateContent call.
// It can contain multiple content choices.
type ContentResponse struct {
	Choices []*ContentChoice
}

// ContentChoice is one of the response choices returned by GenerateContent.
type ContentChoice struct {
	// Content is the textual content of a response.
	Content string `json:"content"`

	// StopReason is the reason the model stopped generating output.
	StopReason string `json:"stop_reason"`

	// GenerationInfo is arbitrary information the model adds to the
	// response, such as token usage.
	GenerationInfo map[string]any `json:"generation_info"`

	// ToolCalls is the list of tool invocations the model requests.
	// When it is non-empty, Content is usually empty.
	ToolCalls []ToolCall `json:"tool_calls"`
}
