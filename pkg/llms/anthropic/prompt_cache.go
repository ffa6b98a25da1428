package anthropic

import (
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/cockroachdb/errors"

	"github.com/promptops/agentic/pkg/llms"
)

// applyPromptCachePolicy sets cache_control markers on the request params and
// returns per-request options carrying the beta headers the selected TTL
// requires. A nil policy leaves the request untouched.
func applyPromptCachePolicy(o *LLM, params *anthropic.MessageNewParams, opts *llms.CallOptions) ([]option.RequestOption, error) {
	if opts == nil || opts.PromptCachePolicy == nil {
		return nil, nil
	}
	policy := opts.PromptCachePolicy
	if !policy.CacheSystemPrompt && !policy.CacheTools {
		return nil, nil
	}

	cacheControl, needsExtendedTTL, err := newCacheControl(policy.TTL)
	if err != nil {
		return nil, err
	}

	if policy.CacheSystemPrompt {
		if len(params.System) == 0 {
			return nil, errors.New("anthropic: prompt cache requested for an empty system prompt")
		}
		params.System[len(params.System)-1].CacheControl = cacheControl
	}

	if policy.CacheTools {
		if len(params.Tools) == 0 {
			return nil, errors.New("anthropic: prompt cache requested with no tools")
		}
		cacheControlPtr := params.Tools[len(params.Tools)-1].GetCacheControl()
		if cacheControlPtr == nil {
			return nil, errors.New("anthropic: prompt cache unsupported for the last tool")
		}
		*cacheControlPtr = cacheControl
	}

	return promptCacheRequestOptions(o, needsExtendedTTL), nil
}

// newCacheControl maps a TTL to the SDK cache_control param. The bool return
// reports whether the extended-cache-ttl beta header is required.
func newCacheControl(ttl llms.PromptCacheTTL) (anthropic.CacheControlEphemeralParam, bool, error) {
	cacheControl := anthropic.NewCacheControlEphemeralParam()
	switch ttl {
	case "":
		return cacheControl, false, nil
	case llms.PromptCacheTTL5m:
		cacheControl.TTL = anthropic.CacheControlEphemeralTTLTTL5m
		return cacheControl, false, nil
	case llms.PromptCacheTTL1h:
		cacheControl.TTL = anthropic.CacheControlEphemeralTTLTTL1h
		return cacheControl, true, nil
	default:
		return anthropic.CacheControlEphemeralParam{}, false, errors.Errorf("anthropic: unsupported prompt cache TTL: %q", ttl)
	}
}

// promptCacheRequestOptions appends the anthropic-beta header for the
// extended TTL when the client does not already carry it. Request-scoped so
// the client level header configuration stays untouched.
func promptCacheRequestOptions(o *LLM, needsExtendedTTL bool) []option.RequestOption {
	if o == nil || o.Options == nil || !needsExtendedTTL {
		return nil
	}

	betaToken := string(anthropic.AnthropicBetaExtendedCacheTTL2025_04_11)
	if containsBetaHeaderToken(o.Options.AnthropicBetaHeader, betaToken) {
		return nil
	}

	headerValue := betaToken
	if strings.TrimSpace(o.Options.AnthropicBetaHeader) != "" {
		headerValue = strings.TrimSpace(o.Options.AnthropicBetaHeader) + "," + betaToken
	}
	return []option.RequestOption{
		option.WithHeader("anthropic-beta", headerValue),
	}
}

func containsBetaHeaderToken(headerValue, token string) bool {
	for _, part := range strings.Split(headerValue, ",") {
		if strings.TrimSpace(part) == token {
			return true
		}
	}
	return false
}
