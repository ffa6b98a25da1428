package llms

import (
	"context"

	"github.com/invopop/jsonschema"

	"github.com/promptops/agentic/pkg/schema"
)

// CallOption configures a CallOptions.
type CallOption func(*CallOptions)

// CallOptions is a set of options for model calls. Not all providers support
// all options.
type CallOptions struct {
	// Model is the model to use, overriding the client default.
	Model string
	// MaxTokens is the maximum number of tokens to generate.
	MaxTokens int
	// Temperature regulates the randomness of sampling, between 0 and 1.
	Temperature float64
	// StopWords is a list of words generation stops on.
	StopWords []string
	// TopK is the number of tokens to consider for top-k sampling.
	TopK int
	// TopP is the cumulative probability for top-p sampling.
	TopP float64
	// Seed enables deterministic sampling where supported.
	Seed int
	// N is how many chat completion choices to generate for each input.
	N int
	// FrequencyPenalty for sampling.
	FrequencyPenalty float64
	// PresencePenalty for sampling.
	PresencePenalty float64

	// StreamingFunc is called for each chunk of a streaming response.
	// Return an error to stop streaming early.
	StreamingFunc func(ctx context.Context, chunk []byte) error

	// Tools the model may request to invoke.
	Tools []Tool
	// ToolChoice is "none", "auto" (the default), or a specific ToolChoice.
	ToolChoice any

	// Metadata to include in the request; provider specific.
	Metadata map[string]any

	// ResponseFormat is a custom response format. When unset the response
	// is plain text; when set the JSON mode is derived from it.
	ResponseFormat *schema.ResponseFormat

	// PromptCachePolicy requests provider side prompt caching.
	PromptCachePolicy *PromptCachePolicy
}

// PromptCacheTTL selects how long a cached prompt prefix stays warm.
type PromptCacheTTL string

const (
	PromptCacheTTL5m PromptCacheTTL = "5m"
	PromptCacheTTL1h PromptCacheTTL = "1h"
)

// PromptCacheRetention selects the retention class for request level caching.
type PromptCacheRetention string

const (
	PromptCacheRetentionInMemory PromptCacheRetention = "in-memory"
	PromptCacheRetention24h      PromptCacheRetention = "24h"
)

// PromptCachePolicy requests provider side prompt caching. Anthropic uses
// cache_control breakpoints on the system prompt and tool definitions;
// OpenAI compatible providers use request level key and retention fields.
// Providers ignore the fields they do not support.
type PromptCachePolicy struct {
	// CacheSystemPrompt marks the system prompt as a cache breakpoint.
	CacheSystemPrompt bool
	// CacheTools marks the tool definitions as a cache breakpoint.
	CacheTools bool
	// TTL applies to the breakpoints above.
	TTL PromptCacheTTL

	// Key groups requests sharing a common prompt prefix.
	Key string
	// Retention selects the cache retention class.
	Retention PromptCacheRetention
}

// Tool is a tool definition the model may call.
type Tool struct {
	// Type of the tool, typically "function".
	Type string `json:"type"`
	// Function describes the callable function.
	Function *FunctionDefinition `json:"function,omitempty"`
}

// FunctionDefinition describes a function to the model.
type FunctionDefinition struct {
	// Name of the function.
	Name string `json:"name"`
	// Description for the model to decide when to call it.
	Description string `json:"description"`
	// Parameters is the JSON schema of the function arguments.
	Parameters *jsonschema.Schema `json:"parameters,omitempty"`
	// Strict requests strict schema adherence (OpenAI structured outputs).
	Strict bool `json:"strict,omitempty"`
}

// ToolChoice forces a specific tool.
type ToolChoice struct {
	Type     string             `json:"type"`
	Function *FunctionReference `json:"function,omitempty"`
}

// FunctionReference is a reference to a function by name.
type FunctionReference struct {
	Name string `json:"name"`
}

// WithModel specifies which model name to use.
func WithModel(model string) CallOption {
	return func(o *CallOptions) {
		o.Model = model
	}
}

// WithMaxTokens specifies the max number of tokens to generate.
func WithMaxTokens(maxTokens int) CallOption {
	return func(o *CallOptions) {
		o.MaxTokens = maxTokens
	}
}

// WithTemperature specifies the model temperature.
func WithTemperature(temperature float64) CallOption {
	return func(o *CallOptions) {
		o.Temperature = temperature
	}
}

// WithStopWords specifies a list of words to stop generation on.
func WithStopWords(stopWords []string) CallOption {
	return func(o *CallOptions) {
		o.StopWords = stopWords
	}
}

// WithStreamingFunc specifies the streaming function to use.
func WithStreamingFunc(fn func(ctx context.Context, chunk []byte) error) CallOption {
	return func(o *CallOptions) {
		o.StreamingFunc = fn
	}
}

// WithTopK adds an option to use top-k sampling.
func WithTopK(topK int) CallOption {
	return func(o *CallOptions) {
		o.TopK = topK
	}
}

// WithTopP adds an option to use top-p sampling.
func WithTopP(topP float64) CallOption {
	return func(o *CallOptions) {
		o.TopP = topP
	}
}

// WithSeed adds an option to use deterministic sampling.
func WithSeed(seed int) CallOption {
	return func(o *CallOptions) {
		o.Seed = seed
	}
}

// WithN sets how many chat completion choices to generate.
func WithN(n int) CallOption {
	return func(o *CallOptions) {
		o.N = n
	}
}

// WithFrequencyPenalty sets the frequency penalty for sampling.
func WithFrequencyPenalty(frequencyPenalty float64) CallOption {
	return func(o *CallOptions) {
		o.FrequencyPenalty = frequencyPenalty
	}
}

// WithPresencePenalty sets the presence penalty for sampling.
func WithPresencePenalty(presencePenalty float64) CallOption {
	return func(o *CallOptions) {
		o.PresencePenalty = presencePenalty
	}
}

// WithTools sets the tools available to the model.
func WithTools(tools []Tool) CallOption {
	return func(o *CallOptions) {
		o.Tools = tools
	}
}

// WithToolChoice sets the choice of tool to use: "none", "auto", or a
// specific tool as described by the ToolChoice type.
func WithToolChoice(choice any) CallOption {
	return func(o *CallOptions) {
		o.ToolChoice = choice
	}
}

// WithMetadata sets request metadata; the meaning is provider specific.
func WithMetadata(metadata map[string]any) CallOption {
	return func(o *CallOptions) {
		o.Metadata = metadata
	}
}

// WithResponseFormat sets a custom response format.
func WithResponseFormat(responseFormat *schema.ResponseFormat) CallOption {
	return func(o *CallOptions) {
		o.ResponseFormat = responseFormat
	}
}

// WithPromptCachePolicy requests provider side prompt caching.
func WithPromptCachePolicy(policy *PromptCachePolicy) CallOption {
	return func(o *CallOptions) {
		o.PromptCachePolicy = policy
	}
}

// WithOptions replaces all options at once.
func WithOptions(options CallOptions) CallOption {
	return func(o *CallOptions) {
		(*o) = options
	}
}
