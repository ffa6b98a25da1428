package assistants_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/promptops/agentic/assistants"
	"github.com/promptops/agentic/pkg/llms"
	"github.com/promptops/agentic/pkg/prompts"
	"github.com/stretchr/testify/assert"
)

func TestPrinterCallback(t *testing.T) {
	var buf bytes.Buffer
	cb := assistants.NewPrinterCallback(&buf)

	ast := &fakeAssistant{name: "test-assistant"}
	tool := &fakeTool{name: "test-tool"}
	llm := &fakeModel{name: "test-model"}

	resp := &llms.ContentResponse{
		Choices: []*llms.ContentChoice{
			{
				Content: "test output",
			},
		},
	}

	ctx := context.Background()
	cb.OnAssistantStart(ctx, ast, "test input")
	cb.OnAssistantLLMCallStart(ctx, ast, llm, nil)
	cb.OnAssistantLLMCallEnd(ctx, ast, llm, resp)
	cb.OnAssistantEnd(ctx, ast, "test input", resp, nil)
	cb.OnAssistantError(ctx, ast, "test input", errors.New("test error"), nil)
	cb.OnAssistantLLMParseError(ctx, ast, "test input", "bad output", errors.New("parse error"))
	cb.OnToolNotFound(ctx, ast, "missing-tool")
	cb.OnToolStart(ctx, tool, ast.Name(), "test input")
	cb.OnToolEnd(ctx, tool, ast.Name(), "test input", "test output")
	cb.OnToolError(ctx, tool, ast.Name(), "test input", errors.New("test error"))

	res := buf.String()
	assert.Contains(t, res, "[test-assistant] start: test input")
	assert.Contains(t, res, "[test-assistant] LLM call: model=test-model, messages=0")
	assert.Contains(t, res, "[test-assistant] LLM response: choices=1")
	assert.Contains(t, res, "[test-assistant] end: test output")
	assert.Contains(t, res, "[test-assistant] error: test error")
	assert.Contains(t, res, "[test-assistant] parse error: parse error: bad output")
	assert.Contains(t, res, "[test-assistant] tool not found: missing-tool")
	assert.Contains(t, res, "[test-assistant] tool start: test-tool(test input)")
	assert.Contains(t, res, "[test-assistant] tool end: test-tool => test output")
	assert.Contains(t, res, "[test-assistant] tool error: test-tool: test error")
}

func TestFanoutCallback(t *testing.T) {
	var buf1, buf2 bytes.Buffer
	cb := assistants.NewFanoutCallback(
		assistants.NewPrinterCallback(&buf1),
		assistants.NewPrinterCallback(&buf2),
	)

	ast := &fakeAssistant{name: "test-assistant"}
	cb.OnAssistantStart(context.Background(), ast, "test input")

	assert.Equal(t, buf1.String(), buf2.String())
	assert.Contains(t, buf1.String(), "[test-assistant] start: test input")
}

type fakeAssistant struct {
	name string
}

func (f *fakeAssistant) Name() string {
	return f.name
}
func (f *fakeAssistant) Description() string {
	return "useful assistant"
}
func (f *fakeAssistant) FormatPrompt(values map[string]any) (prompts.PromptValue, error) {
	return prompts.StringPromptValue("useful assistant"), nil
}
func (f *fakeAssistant) GetPromptInputVariables() []string {
	return nil
}
func (f *fakeAssistant) Call(ctx context.Context, input *assistants.CallInput) (*llms.ContentResponse, error) {
	return &llms.ContentResponse{}, nil
}

type fakeTool struct {
	name string
}

func (f *fakeTool) Name() string {
	return f.name
}
func (f *fakeTool) Description() string {
	return "useful tool"
}
func (f *fakeTool) Parameters() any {
	return nil
}
func (f *fakeTool) Call(context.Context, string) (string, error) {
	return "", nil
}

type fakeModel struct {
	name string
}

func (f *fakeModel) GetName() string {
	return f.name
}
func (f *fakeModel) GetProviderType() llms.ProviderType {
	return llms.ProviderOpenAI
}
func (f *fakeModel) GenerateContent(ctx context.Context, messages []llms.Message, options ...llms.CallOption) (*llms.ContentResponse, error) {
	return &llms.ContentResponse{}, nil
}
