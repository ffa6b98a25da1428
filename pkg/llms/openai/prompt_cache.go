package openai

import (
	"github.com/promptops/agentic/pkg/llms"
	"github.com/promptops/agentic/pkg/llms/openai/internal/openaiclient"
)

// applyPromptCachePolicy fills the request level prompt cache fields.
// Perplexity and other compatible endpoints do not accept them.
func applyPromptCachePolicy(req *openaiclient.ChatRequest, provider openaiclient.ProviderType, opts *llms.CallOptions) {
	if req == nil || opts == nil || opts.PromptCachePolicy == nil || !supportsPromptCache(provider) {
		return
	}

	policy := opts.PromptCachePolicy
	if policy.Key != "" {
		req.PromptCacheKey = policy.Key
	}
	if policy.Retention != "" {
		req.PromptCacheRetention = wirePromptCacheRetention(policy.Retention)
	}
}

func supportsPromptCache(provider openaiclient.ProviderType) bool {
	return provider == openaiclient.ProviderOpenAI ||
		provider == openaiclient.ProviderAzure ||
		provider == openaiclient.ProviderAzureAD
}

// wirePromptCacheRetention maps the retention constant to the wire value.
// The API accepts "in_memory" (underscore) and "24h"; the constant uses
// "in-memory" (hyphen).
func wirePromptCacheRetention(retention llms.PromptCacheRetention) string {
	if retention == llms.PromptCacheRetentionInMemory {
		return "in_memory"
	}
	return string(retention)
}
