package llms

import (
	"context"
)

//go:generate mockgen -source=llms.go -destination=../../mocks/mockllms/llms_mock.gen.go -package mockllms

// ProviderType identifies the hosted model provider behind a Model.
type ProviderType string

const (
	// ProviderAnthropic is the Anthropic messages API.
	ProviderAnthropic ProviderType = "ANTHROPIC"
	// ProviderAzure is the Azure OpenAI API.
	ProviderAzure ProviderType = "AZURE"
	// ProviderAzureAD is the Azure OpenAI API with AD auth.
	ProviderAzureAD ProviderType = "AZURE_AD"
	// ProviderOpenAI is the OpenAI chat completions API.
	ProviderOpenAI ProviderType = "OPENAI"
	// ProviderPerplexity is the Perplexity API (OpenAI compatible).
	ProviderPerplexity ProviderType = "PERPLEXITY"
)

// Model is the interface chat model clients implement.
type Model interface {
	// GetName returns the configured model name, e.g. "gpt-4o-mini".
	GetName() string
	// GetProviderType returns the type of provider.
	GetProviderType() ProviderType
	// GenerateContent asks the model to generate a response for a sequence
	// of messages. The response may contain tool call requests when tools
	// were provided via call options.
	GenerateContent(ctx context.Context, messages []Message, options ...CallOption) (*ContentResponse, error)
}

// Embedder is implemented by models that can produce vector embeddings.
type Embedder interface {
	CreateEmbedding(ctx context.Context, texts []string) ([][]float32, error)
}

// Capability is a bitmask of features an LLM provider supports.
type Capability uint64

const (
	// CapabilityText is basic text or chat generation.
	CapabilityText Capability = 1 << iota

	// Structured response formats.
	CapabilityJSONResponse
	CapabilityJSONSchema
	CapabilityJSONSchemaStrict

	// Function/tool calling.
	CapabilityFunctionCalling
	CapabilityMultiToolCalling

	// CapabilityEmbeddings indicates the provider exposes an embeddings endpoint.
	CapabilityEmbeddings

	// CapabilityVision indicates image inputs are accepted.
	CapabilityVision

	// CapabilitySystemPrompt indicates a dedicated system role.
	CapabilitySystemPrompt
)

var providerCapabilities = map[ProviderType]Capability{
	ProviderOpenAI: CapabilityText |
		CapabilityJSONResponse |
		CapabilityJSONSchema |
		CapabilityJSONSchemaStrict |
		CapabilityFunctionCalling |
		CapabilityMultiToolCalling |
		CapabilityEmbeddings |
		CapabilitySystemPrompt |
		CapabilityVision,

	ProviderAzure: CapabilityText |
		CapabilityJSONResponse |
		CapabilityJSONSchema |
		CapabilityJSONSchemaStrict |
		CapabilityFunctionCalling |
		CapabilityMultiToolCalling |
		CapabilityEmbeddings |
		CapabilitySystemPrompt,

	// AD auth proxies pass requests through unchanged.
	ProviderAzureAD: CapabilityText,

	ProviderAnthropic: CapabilityText |
		CapabilityJSONResponse |
		CapabilityFunctionCalling |
		CapabilityMultiToolCalling |
		CapabilitySystemPrompt |
		CapabilityVision,

	ProviderPerplexity: CapabilityText |
		CapabilitySystemPrompt |
		CapabilityJSONResponse |
		CapabilityJSONSchema,
}

// ProviderCapabilities returns the capability mask for a provider type.
func ProviderCapabilities(pt ProviderType) Capability {
	return providerCapabilities[pt]
}

// Supports reports whether the provider supports the given capability.
func (p ProviderType) Supports(cap Capability) bool {
	return ProviderCapabilities(p)&cap != 0
}
