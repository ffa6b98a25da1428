package openaiclient

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/promptops/agentic/pkg/llms"
	"github.com/promptops/agentic/pkg/schema"
)

// ChatRequest is a request to complete a chat completion.
type ChatRequest struct {
	Model            string         `json:"model"`
	Messages         []*ChatMessage `json:"messages"`
	Temperature      float64        `json:"temperature,omitempty"`
	TopP             float64        `json:"top_p,omitempty"`
	N                int            `json:"n,omitempty"`
	StopWords        []string       `json:"stop,omitempty"`
	Stream           bool           `json:"stream,omitempty"`
	FrequencyPenalty float64        `json:"frequency_penalty,omitempty"`
	PresencePenalty  float64        `json:"presence_penalty,omitempty"`
	Seed             int            `json:"seed,omitempty"`

	MaxCompletionTokens int `json:"max_completion_tokens,omitempty"`

	// PromptCacheKey groups requests sharing a common prompt prefix.
	PromptCacheKey string `json:"prompt_cache_key,omitempty"`
	// PromptCacheRetention is "in_memory" or "24h".
	PromptCacheRetention string `json:"prompt_cache_retention,omitempty"`

	// ResponseFormat is the format of the response.
	ResponseFormat *schema.ResponseFormat `json:"response_format,omitempty"`

	Tools []Tool `json:"tools,omitempty"`
	// ToolChoice is the choice of tool to use: either "none", "auto" or
	// a specific tool as described by the llms.ToolChoice type.
	ToolChoice any `json:"tool_choice,omitempty"`

	Metadata map[string]any `json:"metadata,omitempty"`

	StreamOptions *StreamOptions `json:"stream_options,omitempty"`

	// StreamingFunc is a function to be called for each chunk of a streaming response.
	// Return an error to stop streaming early.
	StreamingFunc func(ctx context.Context, chunk []byte) error `json:"-"`
}

// StreamOptions are the streaming options of a chat request.
type StreamOptions struct {
	// IncludeUsage requests a final chunk with the token usage statistics
	// for the entire request.
	IncludeUsage bool `json:"include_usage"`
}

// Tool is a tool to use in a chat request.
type Tool struct {
	Type     ToolType           `json:"type"`
	Function FunctionDefinition `json:"function,omitempty"`
}

// FunctionDefinition is a definition of a function that can be called by the model.
type FunctionDefinition struct {
	// Name is the name of the function.
	Name string `json:"name"`
	// Description is a description of the function.
	Description string `json:"description,omitempty"`
	// Parameters is a list of parameters for the function.
	Parameters any `json:"parameters"`
	// Strict requests strict argument adherence to the schema.
	Strict bool `json:"strict,omitempty"`
}

// ToolCall is a call to a tool requested by the model.
type ToolCall struct {
	// Index is only used in chunked streaming responses to correlate
	// argument fragments that belong to the same call.
	Index    *int         `json:"index,omitempty"`
	ID       string       `json:"id"`
	Type     ToolType     `json:"type"`
	Function ToolFunction `json:"function,omitempty"`
}

// ToolFunction is a function the model requested to call.
type ToolFunction struct {
	Name      string `json:"name"`
	Arguments string `json:"arguments"`
}

// ChatMessage is a message in a chat request.
type ChatMessage struct {
	// Role is the role of the message author: "system", "assistant",
	// "user" or "tool".
	Role string

	// Content is the text content of the message.
	Content string

	// MultiContent takes precedence over Content when set.
	MultiContent []llms.ContentPart

	// Name of the tool the message is responding for.
	Name string

	// ToolCalls is a list of tools the assistant requested to invoke.
	ToolCalls []ToolCall

	// ToolCallID is the ID of the tool call this message is responding to,
	// required for messages with the "tool" role.
	ToolCallID string
}

// chatMessagePart is the wire form of a single content part.
type chatMessagePart struct {
	Type     string               `json:"type"`
	Text     string               `json:"text,omitempty"`
	ImageURL *chatMessageImageURL `json:"image_url,omitempty"`
}

type chatMessageImageURL struct {
	URL    string `json:"url"`
	Detail string `json:"detail,omitempty"`
}

func (m ChatMessage) MarshalJSON() ([]byte, error) {
	if len(m.MultiContent) > 0 {
		parts := make([]chatMessagePart, 0, len(m.MultiContent))
		for _, part := range m.MultiContent {
			switch p := part.(type) {
			case llms.TextContent:
				parts = append(parts, chatMessagePart{Type: "text", Text: p.Text})
			case llms.ImageURLContent:
				parts = append(parts, chatMessagePart{
					Type:     "image_url",
					ImageURL: &chatMessageImageURL{URL: p.URL, Detail: p.Detail},
				})
			case llms.BinaryContent:
				parts = append(parts, chatMessagePart{
					Type:     "image_url",
					ImageURL: &chatMessageImageURL{URL: p.String()},
				})
			default:
				return nil, errors.Errorf("unsupported content part type %T", part)
			}
		}
		msg := struct {
			Role       string            `json:"role"`
			Content    []chatMessagePart `json:"content"`
			Name       string            `json:"name,omitempty"`
			ToolCalls  []ToolCall        `json:"tool_calls,omitempty"`
			ToolCallID string            `json:"tool_call_id,omitempty"`
		}{
			Role:       m.Role,
			Content:    parts,
			Name:       m.Name,
			ToolCalls:  m.ToolCalls,
			ToolCallID: m.ToolCallID,
		}
		return json.Marshal(msg)
	}

	msg := struct {
		Role       string     `json:"role"`
		Content    string     `json:"content"`
		Name       string     `json:"name,omitempty"`
		ToolCalls  []ToolCall `json:"tool_calls,omitempty"`
		ToolCallID string     `json:"tool_call_id,omitempty"`
	}{
		Role:       m.Role,
		Content:    m.Content,
		Name:       m.Name,
		ToolCalls:  m.ToolCalls,
		ToolCallID: m.ToolCallID,
	}
	return json.Marshal(msg)
}

func (m *ChatMessage) UnmarshalJSON(data []byte) error {
	var msg struct {
		Role       string     `json:"role"`
		Content    string     `json:"content"`
		Name       string     `json:"name"`
		ToolCalls  []ToolCall `json:"tool_calls"`
		ToolCallID string     `json:"tool_call_id"`
	}
	if err := json.Unmarshal(data, &msg); err != nil {
		return errors.WithStack(err)
	}
	m.Role = msg.Role
	m.Content = msg.Content
	m.Name = msg.Name
	m.ToolCalls = msg.ToolCalls
	m.ToolCallID = msg.ToolCallID
	return nil
}

// FinishReason is the reason the model stopped generating tokens.
type FinishReason string

const (
	FinishReasonStop          FinishReason = "stop"
	FinishReasonLength        FinishReason = "length"
	FinishReasonToolCalls     FinishReason = "tool_calls"
	FinishReasonContentFilter FinishReason = "content_filter"
)

// ChatCompletionChoice is a choice in a chat response.
type ChatCompletionChoice struct {
	Index        int          `json:"index"`
	Message      ChatMessage  `json:"message"`
	FinishReason FinishReason `json:"finish_reason"`
}

// ChatUsage is the token accounting of a chat response.
type ChatUsage struct {
	PromptTokens            int `json:"prompt_tokens"`
	CompletionTokens        int `json:"completion_tokens"`
	TotalTokens             int `json:"total_tokens"`
	CompletionTokensDetails struct {
		ReasoningTokens int `json:"reasoning_tokens"`
	} `json:"completion_tokens_details"`
}

// ChatCompletionResponse is a response to a chat request.
type ChatCompletionResponse struct {
	ID      string                  `json:"id,omitempty"`
	Created int64                   `json:"created,omitempty"`
	Choices []*ChatCompletionChoice `json:"choices,omitempty"`
	Model   string                  `json:"model,omitempty"`
	Object  string                  `json:"object,omitempty"`
	Usage   ChatUsage               `json:"usage,omitempty"`
}

// StreamedChatResponsePayload is a chunk from the stream.
type StreamedChatResponsePayload struct {
	ID      string `json:"id,omitempty"`
	Created int64  `json:"created,omitempty"`
	Model   string `json:"model,omitempty"`
	Object  string `json:"object,omitempty"`
	Choices []struct {
		Index int `json:"index"`
		Delta struct {
			Role      string     `json:"role,omitempty"`
			Content   string     `json:"content,omitempty"`
			ToolCalls []ToolCall `json:"tool_calls,omitempty"`
		} `json:"delta"`
		FinishReason FinishReason `json:"finish_reason"`
	} `json:"choices,omitempty"`
	Usage *ChatUsage `json:"usage,omitempty"`
}

func (c *Client) createChat(ctx context.Context, payload *ChatRequest) (*ChatCompletionResponse, error) {
	if payload.StreamingFunc != nil {
		payload.Stream = true
		payload.StreamOptions = &StreamOptions{IncludeUsage: true}
	}

	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return nil, errors.Wrap(err, "marshal payload")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.buildURL("/chat/completions", payload.Model), bytes.NewReader(payloadBytes))
	if err != nil {
		return nil, errors.Wrap(err, "create request")
	}
	c.setHeaders(req)

	r, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "send request")
	}
	defer func() {
		_ = r.Body.Close()
	}()

	if r.StatusCode != http.StatusOK {
		msg := fmt.Sprintf("API returned unexpected status code: %d", r.StatusCode)

		// No need to check the error here: if it fails, we'll just return the
		// status code.
		var errResp errorMessage
		if err := json.NewDecoder(r.Body).Decode(&errResp); err != nil {
			return nil, errors.New(msg) // nolint:goerr113
		}

		return nil, errors.Errorf("%s: %s", msg, errResp.Error.Message) // nolint:goerr113
	}

	if payload.StreamingFunc != nil {
		return parseStreamingChatResponse(ctx, r, payload)
	}

	var response ChatCompletionResponse
	if err := json.NewDecoder(r.Body).Decode(&response); err != nil {
		return nil, errors.Wrap(err, "decode response")
	}
	return &response, nil
}

func parseStreamingChatResponse(ctx context.Context, r *http.Response, payload *ChatRequest) (*ChatCompletionResponse, error) {
	response := ChatCompletionResponse{
		Choices: []*ChatCompletionChoice{{}},
	}
	choice := response.Choices[0]
	toolCalls := map[int]*ToolCall{}

	scanner := bufio.NewScanner(r.Body)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		if !strings.HasPrefix(line, "data:") {
			continue
		}
		data := strings.TrimSpace(strings.TrimPrefix(line, "data:"))
		if data == "[DONE]" {
			break
		}

		var chunk StreamedChatResponsePayload
		if err := json.Unmarshal([]byte(data), &chunk); err != nil {
			return nil, errors.Wrap(err, "decode stream payload")
		}

		response.ID = chunk.ID
		response.Created = chunk.Created
		response.Model = chunk.Model
		if chunk.Usage != nil {
			response.Usage = *chunk.Usage
		}
		if len(chunk.Choices) == 0 {
			continue
		}
		delta := chunk.Choices[0].Delta
		if chunk.Choices[0].FinishReason != "" {
			choice.FinishReason = chunk.Choices[0].FinishReason
		}
		if delta.Role != "" {
			choice.Message.Role = delta.Role
		}
		for _, tc := range delta.ToolCalls {
			idx := 0
			if tc.Index != nil {
				idx = *tc.Index
			}
			cur, ok := toolCalls[idx]
			if !ok {
				tc := tc
				toolCalls[idx] = &tc
				continue
			}
			// subsequent chunks carry argument fragments only
			cur.Function.Arguments += tc.Function.Arguments
		}
		if delta.Content != "" {
			choice.Message.Content += delta.Content
			if err := payload.StreamingFunc(ctx, []byte(delta.Content)); err != nil {
				return nil, errors.Wrap(err, "streaming func returned an error")
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "read stream")
	}

	indexes := make([]int, 0, len(toolCalls))
	for idx := range toolCalls {
		indexes = append(indexes, idx)
	}
	sort.Ints(indexes)
	for _, idx := range indexes {
		tc := toolCalls[idx]
		tc.Index = nil
		choice.Message.ToolCalls = append(choice.Message.ToolCalls, *tc)
	}
	return &response, nil
}
