package assistants

import (
	"context"
	"fmt"
	"strings"

	"github.com/effective-security/xlog"

	"github.com/promptops/agentic/chatmodel"
	"github.com/promptops/agentic/pkg/llms"
	"github.com/promptops/agentic/pkg/prompts"
	"github.com/promptops/agentic/tools"
)

var logger = xlog.NewPackageLogger("github.com/promptops/agentic", "assistants")

//go:generate mockgen -source=assistants.go -destination=../mocks/mockassistants/assistants_mock.gen.go -package mockassistants

type IAssistant interface {
	// Name returns the name of the Assistant.
	Name() string
	// Description returns the description of the Assistant, to be used in the prompt of other Assistants or LLMs.
	// Should not exceed LLM model limit.
	Description() string
	// FormatPrompt formats the system prompt with the given values.
	FormatPrompt(values map[string]any) (prompts.PromptValue, error)
	GetPromptInputVariables() []string

	Call(ctx context.Context, input *CallInput) (*llms.ContentResponse, error)
}

type TypeableAssistant[O chatmodel.ContentProvider] interface {
	IAssistant
	// Run executes the assistant with the given input.
	// When optionalOutputType is provided, the final response is parsed into it.
	Run(ctx context.Context, input *CallInput, optionalOutputType *O) (*llms.ContentResponse, error)
}

// CallInput describes a single assistant invocation.
type CallInput struct {
	// Input is the user question or request.
	Input string
	// PromptInputs are values for the system prompt template variables.
	PromptInputs map[string]any
	// Messages are extra messages appended after the user input.
	Messages []llms.Message
	// Options override the assistant configuration for this call.
	Options []Option
}

type Callback interface {
	OnAssistantStart(ctx context.Context, assistant IAssistant, input string)
	OnAssistantEnd(ctx context.Context, assistant IAssistant, input string, resp *llms.ContentResponse, messages []llms.Message)
	OnAssistantError(ctx context.Context, assistant IAssistant, input string, err error, messages []llms.Message)
	OnAssistantLLMCallStart(ctx context.Context, assistant IAssistant, llm llms.Model, messages []llms.Message)
	OnAssistantLLMCallEnd(ctx context.Context, assistant IAssistant, llm llms.Model, resp *llms.ContentResponse)
	OnAssistantLLMParseError(ctx context.Context, assistant IAssistant, input string, result string, err error)
	OnToolNotFound(ctx context.Context, assistant IAssistant, tool string)
	OnToolStart(ctx context.Context, tool tools.ITool, assistant string, input string)
	OnToolEnd(ctx context.Context, tool tools.ITool, assistant string, input string, output string)
	OnToolError(ctx context.Context, tool tools.ITool, assistant string, input string, err error)
}

// IAssistantTool is a tool backed by another assistant.
type IAssistantTool interface {
	tools.ITool
	CallAssistant(ctx context.Context, input string, options ...Option) (string, error)
}

func GetDescriptions(list ...IAssistant) string {
	var ts strings.Builder
	for _, item := range list {
		ts.WriteString(fmt.Sprintf("- `%s`: %s\n", item.Name(), item.Description()))
	}
	return ts.String()
}

func MapAssistants(list ...IAssistant) map[string]IAssistant {
	if len(list) == 0 {
		return nil
	}
	m := make(map[string]IAssistant, len(list))
	for _, a := range list {
		m[a.Name()] = a
	}
	return m
}
