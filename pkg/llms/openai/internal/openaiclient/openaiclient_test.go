package openaiclient

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/promptops/agentic/pkg/llms"
)

func Test_BuildURL(t *testing.T) {
	c, err := New(ProviderOpenAI, "gpt-4o", "token", "", "", "", nil, "", nil)
	require.NoError(t, err)
	assert.Equal(t, "https://api.openai.com/v1/chat/completions", c.buildURL("/chat/completions", "gpt-4o"))

	c, err = New(ProviderAzure, "gpt-4o", "token", "https://myorg.openai.azure.com/", "", "2023-05-15", nil, "", nil)
	require.NoError(t, err)
	assert.Equal(t,
		"https://myorg.openai.azure.com/openai/deployments/gpt-4o/chat/completions?api-version=2023-05-15",
		c.buildURL("/chat/completions", "gpt-4o"))
}

func Test_ChatMessage_MarshalJSON(t *testing.T) {
	tcases := []struct {
		name string
		msg  ChatMessage
		exp  string
	}{
		{
			name: "text content",
			msg:  ChatMessage{Role: "user", Content: "hello"},
			exp:  `{"role":"user","content":"hello"}`,
		},
		{
			name: "multi content",
			msg: ChatMessage{
				Role: "user",
				MultiContent: []llms.ContentPart{
					llms.TextPart("describe this"),
					llms.ImageURLPart("https://example.com/cat.png"),
				},
			},
			exp: `{"role":"user","content":[{"type":"text","text":"describe this"},{"type":"image_url","image_url":{"url":"https://example.com/cat.png"}}]}`,
		},
		{
			name: "assistant tool calls",
			msg: ChatMessage{
				Role: "assistant",
				ToolCalls: []ToolCall{
					{
						ID:       "call_1",
						Type:     ToolTypeFunction,
						Function: ToolFunction{Name: "get_weather", Arguments: `{"city":"Kyiv"}`},
					},
				},
			},
			exp: `{"role":"assistant","content":"","tool_calls":[{"id":"call_1","type":"function","function":{"name":"get_weather","arguments":"{\"city\":\"Kyiv\"}"}}]}`,
		},
		{
			name: "tool response",
			msg: ChatMessage{
				Role:       "tool",
				Content:    "72F and sunny",
				ToolCallID: "call_1",
			},
			exp: `{"role":"tool","content":"72F and sunny","tool_call_id":"call_1"}`,
		},
	}

	for _, tc := range tcases {
		t.Run(tc.name, func(t *testing.T) {
			js, err := json.Marshal(tc.msg)
			require.NoError(t, err)
			assert.Equal(t, tc.exp, string(js))
		})
	}
}

func Test_ChatMessage_UnmarshalJSON(t *testing.T) {
	var msg ChatMessage
	err := json.Unmarshal([]byte(`{
		"role": "assistant",
		"content": null,
		"tool_calls": [
			{"id":"call_1","type":"function","function":{"name":"search","arguments":"{}"}}
		]
	}`), &msg)
	require.NoError(t, err)
	assert.Equal(t, "assistant", msg.Role)
	assert.Empty(t, msg.Content)
	require.Len(t, msg.ToolCalls, 1)
	assert.Equal(t, "search", msg.ToolCalls[0].Function.Name)
}
