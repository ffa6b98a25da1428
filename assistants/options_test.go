package assistants_test

import (
	"context"
	"testing"

	"github.com/promptops/agentic/assistants"
	"github.com/promptops/agentic/chatmodel"
	"github.com/promptops/agentic/pkg/llms"
	"github.com/promptops/agentic/pkg/schema"
	"github.com/stretchr/testify/assert"
)

func Test_ChainCallOptions(t *testing.T) {
	t.Parallel()

	// Test the default values of the Config
	cfg := assistants.NewConfig()
	assert.Equal(t, "", cfg.Model)
	assert.Equal(t, 0, cfg.MaxTokens)
	assert.Equal(t, 0.0, cfg.Temperature)
	assert.Empty(t, cfg.StopWords)
	assert.Nil(t, cfg.StreamingFunc)
	assert.Equal(t, 0, cfg.TopK)
	assert.Equal(t, 0.0, cfg.TopP)
	assert.Equal(t, 0, cfg.Seed)
	assert.Equal(t, 0, cfg.MaxLength)
	assert.Equal(t, assistants.DefaultMaxMessages, cfg.MaxMessages)
	assert.Empty(t, cfg.Tools)
	assert.Nil(t, cfg.ToolChoice)
	assert.Nil(t, cfg.CallbackHandler)

	llmOpts := cfg.GetCallOptions()
	assert.Equal(t, 0, len(llmOpts))

	cfg = assistants.NewConfig(
		assistants.WithModel("gpt-4o-mini"),
		assistants.WithResponseFormat(&schema.ResponseFormat{
			Type: "json_schema",
		}),
		assistants.WithMaxTokens(100),
		assistants.WithTemperature(0.7),
		assistants.WithStopWords([]string{"foo", "bar"}),
		assistants.WithTopK(10),
		assistants.WithTopP(0.9),
		assistants.WithSeed(42),
		assistants.WithMaxLength(200),
		assistants.WithMaxToolCalls(10),
		assistants.WithMaxMessages(100),
		assistants.WithGeneric(true),
		assistants.WithSkipMessageHistory(true),
		assistants.WithSkipToolHistory(true),
		assistants.WithPromptInput(map[string]any{"Input": "input"}),
		assistants.WithStreamingFunc(func(context.Context, []byte) error {
			// Handle streaming response
			return nil
		}),
		assistants.WithTool(llms.Tool{
			Type: "tool2",
		}),
		assistants.WithTool(llms.Tool{
			Type: "tool1",
		}),
		assistants.WithTools([]llms.Tool{
			{
				Type: "tool1",
			},
		}),
		// add again
		assistants.WithTools([]llms.Tool{
			{
				Type: "tool1",
			},
		}),
		assistants.WithToolChoice("tool1"),
		assistants.WithExamples(chatmodel.FewShotExamples{
			{
				Prompt:     "example prompt",
				Completion: "example answer",
			},
		}),
		assistants.WithCallback(nil),
	)
	llmOpts = cfg.GetCallOptions()
	assert.Equal(t, 11, len(llmOpts))
}

func Test_ConfigApply(t *testing.T) {
	t.Parallel()

	cfg := assistants.NewConfig(
		assistants.WithModel("gpt-4o-mini"),
		assistants.WithMaxToolCalls(10),
	)

	// Apply returns a copy, the original config is not changed
	cfg2 := cfg.Apply(
		assistants.WithModel("gpt-4o"),
		assistants.WithMaxMessages(5),
	)
	assert.Equal(t, "gpt-4o-mini", cfg.Model)
	assert.Equal(t, assistants.DefaultMaxMessages, cfg.MaxMessages)
	assert.Equal(t, "gpt-4o", cfg2.Model)
	assert.Equal(t, 5, cfg2.MaxMessages)
	assert.Equal(t, 10, cfg2.MaxToolCalls)

	var got llms.CallOptions
	for _, opt := range cfg2.GetCallOptions() {
		opt(&got)
	}
	assert.Equal(t, "gpt-4o", got.Model)
}
