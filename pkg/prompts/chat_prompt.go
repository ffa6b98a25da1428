package prompts

import (
	"strings"

	"github.com/promptops/agentic/pkg/llms"
	"github.com/promptops/agentic/pkg/llmutils"
)

var _ PromptValue = ChatPromptValue{}

// ChatPromptValue is a prompt value that is a list of chat messages.
type ChatPromptValue []llms.Message

// String returns the chat message slice as a buffer string.
func (v ChatPromptValue) String() string {
	var buf strings.Builder
	llmutils.PrintMessages(&buf, v)
	return buf.String()
}

// Messages returns the ChatMessage slice.
func (v ChatPromptValue) Messages() []llms.Message {
	return v
}

// MessageFormatter formats template values into chat messages.
type MessageFormatter interface {
	FormatMessages(values map[string]any) ([]llms.Message, error)
	GetInputVariables() []string
}

// MessagePromptTemplate renders a single chat message with a fixed role.
type MessagePromptTemplate struct {
	role   llms.Role
	prompt *PromptTemplate
}

var _ MessageFormatter = (*MessagePromptTemplate)(nil)

// NewSystemMessagePromptTemplate creates a system message template.
func NewSystemMessagePromptTemplate(text string, inputVariables []string) *MessagePromptTemplate {
	return &MessagePromptTemplate{
		role:   llms.RoleSystem,
		prompt: NewPromptTemplate(text, inputVariables),
	}
}

// NewHumanMessagePromptTemplate creates a human message template.
func NewHumanMessagePromptTemplate(text string, inputVariables []string) *MessagePromptTemplate {
	return &MessagePromptTemplate{
		role:   llms.RoleHuman,
		prompt: NewPromptTemplate(text, inputVariables),
	}
}

// NewAIMessagePromptTemplate creates an AI message template.
func NewAIMessagePromptTemplate(text string, inputVariables []string) *MessagePromptTemplate {
	return &MessagePromptTemplate{
		role:   llms.RoleAI,
		prompt: NewPromptTemplate(text, inputVariables),
	}
}

// FormatMessages implements MessageFormatter.
func (p *MessagePromptTemplate) FormatMessages(values map[string]any) ([]llms.Message, error) {
	formatted, err := p.prompt.Format(values)
	if err != nil {
		return nil, err
	}
	return []llms.Message{llms.MessageFromTextParts(p.role, formatted)}, nil
}

// GetInputVariables implements MessageFormatter.
func (p *MessagePromptTemplate) GetInputVariables() []string {
	return p.prompt.GetInputVariables()
}

// ChatPromptTemplate formats a sequence of message templates.
type ChatPromptTemplate struct {
	// Messages is the list of message templates to format, in order.
	Messages []MessageFormatter
}

var _ FormatPrompter = (*ChatPromptTemplate)(nil)

// NewChatPromptTemplate creates a chat prompt template from message formatters.
func NewChatPromptTemplate(messages []MessageFormatter) *ChatPromptTemplate {
	return &ChatPromptTemplate{Messages: messages}
}

// FormatPrompt implements FormatPrompter.
func (p *ChatPromptTemplate) FormatPrompt(values map[string]any) (PromptValue, error) {
	var result ChatPromptValue
	for _, mf := range p.Messages {
		msgs, err := mf.FormatMessages(values)
		if err != nil {
			return nil, err
		}
		result = append(result, msgs...)
	}
	return result, nil
}

// GetInputVariables implements FormatPrompter.
func (p *ChatPromptTemplate) GetInputVariables() []string {
	var vars []string
	seen := make(map[string]bool)
	for _, mf := range p.Messages {
		for _, name := range mf.GetInputVariables() {
			if !seen[name] {
				seen[name] = true
				vars = append(vars, name)
			}
		}
	}
	return vars
}
