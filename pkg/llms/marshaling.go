package llms

import (
	"encoding/base64"
	"encoding/json"

	"github.com/cockroachdb/errors"
)

// JSON shapes used to persist messages, following the OpenAI schema.

type messageJSON struct {
	Role Role   `json:"role"`
	Text string `json:"text,omitempty"`
}

type messageWithPartsJSON struct {
	Role  Role              `json:"role"`
	Parts []contentPartJSON `json:"parts"`
}

type contentPartJSON struct {
	Type         string            `json:"type"`
	Text         string            `json:"text,omitempty"`
	ImageURL     *imageURLJSON     `json:"image_url,omitempty"`
	Binary       *binaryJSON       `json:"binary,omitempty"`
	ToolCall     *toolCallJSON     `json:"tool_call,omitempty"`
	ToolResponse *toolResponseJSON `json:"tool_response,omitempty"`
}

type imageURLJSON struct {
	URL    string `json:"url"`
	Detail string `json:"detail,omitempty"`
}

type binaryJSON struct {
	Data     string `json:"data"`
	MIMEType string `json:"mime_type"`
}

type toolCallJSON struct {
	ID           string        `json:"id"`
	Type         string        `json:"type"`
	FunctionCall *FunctionCall `json:"function"`
}

type toolResponseJSON struct {
	ToolCallID string `json:"tool_call_id"`
	Name       string `json:"name"`
	Content    string `json:"content"`
}

// MarshalJSON implements json.Marshaler for Message.
// A message with a single text part is simplified to {role, text}.
func (m Message) MarshalJSON() ([]byte, error) {
	if len(m.Parts) == 1 {
		if tp, ok := m.Parts[0].(TextContent); ok {
			return json.Marshal(messageJSON{
				Role: m.Role,
				Text: tp.Text,
			})
		}
	}

	out := messageWithPartsJSON{
		Role:  m.Role,
		Parts: make([]contentPartJSON, 0, len(m.Parts)),
	}
	for _, part := range m.Parts {
		pj, err := marshalContentPart(part)
		if err != nil {
			return nil, err
		}
		out.Parts = append(out.Parts, pj)
	}
	return json.Marshal(out)
}

// UnmarshalJSON implements json.Unmarshaler for Message.
func (m *Message) UnmarshalJSON(data []byte) error {
	var simple messageJSON
	if err := json.Unmarshal(data, &simple); err != nil {
		return err
	}
	m.Role = simple.Role
	m.Parts = nil

	if simple.Text != "" {
		m.Parts = []ContentPart{TextContent{Text: simple.Text}}
		return nil
	}

	var withParts struct {
		Parts []contentPartJSON `json:"parts"`
	}
	if err := json.Unmarshal(data, &withParts); err != nil {
		return err
	}
	for _, pj := range withParts.Parts {
		part, err := unmarshalContentPart(pj)
		if err != nil {
			return err
		}
		m.Parts = append(m.Parts, part)
	}
	return nil
}

func marshalContentPart(part ContentPart) (contentPartJSON, error) {
	switch p := part.(type) {
	case TextContent:
		return contentPartJSON{Type: "text", Text: p.Text}, nil
	case ImageURLContent:
		return contentPartJSON{
			Type:     "image_url",
			ImageURL: &imageURLJSON{URL: p.URL, Detail: p.Detail},
		}, nil
	case BinaryContent:
		return contentPartJSON{
			Type: "binary",
			Binary: &binaryJSON{
				Data:     base64.StdEncoding.EncodeToString(p.Data),
				MIMEType: p.MIMEType,
			},
		}, nil
	case ToolCall:
		return contentPartJSON{
			Type: "tool_call",
			ToolCall: &toolCallJSON{
				ID:           p.ID,
				Type:         p.Type,
				FunctionCall: p.FunctionCall,
			},
		}, nil
	case ToolCallResponse:
		return contentPartJSON{
			Type: "tool_response",
			ToolResponse: &toolResponseJSON{
				ToolCallID: p.ToolCallID,
				Name:       p.Name,
				Content:    p.Content,
			},
		}, nil
	default:
		return contentPartJSON{}, errors.Newf("unsupported content part type %T", part)
	}
}

func unmarshalContentPart(pj contentPartJSON) (ContentPart, error) {
	switch pj.Type {
	case "text", "":
		return TextContent{Text: pj.Text}, nil
	case "image_url":
		if pj.ImageURL == nil {
			return nil, errors.New("image_url field is required for image_url type")
		}
		return ImageURLContent{URL: pj.ImageURL.URL, Detail: pj.ImageURL.Detail}, nil
	case "binary":
		if pj.Binary == nil {
			return nil, errors.New("binary field is required for binary type")
		}
		decoded, err := base64.StdEncoding.DecodeString(pj.Binary.Data)
		if err != nil {
			return nil, errors.Wrap(err, "failed to decode binary data")
		}
		return BinaryContent{MIMEType: pj.Binary.MIMEType, Data: decoded}, nil
	case "tool_call":
		if pj.ToolCall == nil {
			return nil, errors.New("tool_call field is required for tool_call type")
		}
		return ToolCall{
			ID:           pj.ToolCall.ID,
			Type:         pj.ToolCall.Type,
			FunctionCall: pj.ToolCall.FunctionCall,
		}, nil
	case "tool_response":
		if pj.ToolResponse == nil {
			return nil, errors.New("tool_response field is required for tool_response type")
		}
		return ToolCallResponse{
			ToolCallID: pj.ToolResponse.ToolCallID,
			Name:       pj.ToolResponse.Name,
			Content:    pj.ToolResponse.Content,
		}, nil
	default:
		return nil, errors.Newf("unsupported content part type %q", pj.Type)
	}
}
