package llms_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/promptops/agentic/pkg/llms"
	"github.com/promptops/agentic/pkg/schema"
)

func TestOptions(t *testing.T) {
	streamingFunc := func(ctx context.Context, chunk []byte) error {
		return nil
	}
	tools := []llms.Tool{
		{
			Type: "function",
			Function: &llms.FunctionDefinition{
				Name: "test",
			},
		},
	}
	meta := map[string]any{"test": "test"}
	rf := &schema.ResponseFormat{
		Type: "json_object",
	}
	stopWords := []string{"stop"}

	opts := []llms.CallOption{
		llms.WithModel("test"),
		llms.WithMaxTokens(100),
		llms.WithTemperature(0.5),
		llms.WithStopWords(stopWords),
		llms.WithStreamingFunc(streamingFunc),
		llms.WithTopK(10),
		llms.WithTopP(0.5),
		llms.WithSeed(123),
		llms.WithN(1),
		llms.WithFrequencyPenalty(0.5),
		llms.WithPresencePenalty(0.5),
		llms.WithTools(tools),
		llms.WithToolChoice("test"),
		llms.WithMetadata(meta),
		llms.WithResponseFormat(rf),
	}

	var cfg llms.CallOptions
	for _, opt := range opts {
		opt(&cfg)
	}

	assert.Equal(t, "test", cfg.Model)
	assert.Equal(t, 100, cfg.MaxTokens)
	assert.InDelta(t, 0.5, cfg.Temperature, 0)
	assert.Equal(t, stopWords, cfg.StopWords)
	assert.NotNil(t, cfg.StreamingFunc)
	assert.Equal(t, 10, cfg.TopK)
	assert.InDelta(t, 0.5, cfg.TopP, 0)
	assert.Equal(t, 123, cfg.Seed)
	assert.Equal(t, 1, cfg.N)
	assert.InDelta(t, 0.5, cfg.FrequencyPenalty, 0)
	assert.InDelta(t, 0.5, cfg.PresencePenalty, 0)
	assert.Equal(t, tools, cfg.Tools)
	assert.Equal(t, "test", cfg.ToolChoice)
	assert.Equal(t, meta, cfg.Metadata)
	assert.Equal(t, rf, cfg.ResponseFormat)

	// WithOptions replaces the whole config
	var other llms.CallOptions
	llms.WithOptions(cfg)(&other)
	assert.Equal(t, cfg.Model, other.Model)
	assert.Equal(t, cfg.Tools, other.Tools)
}
