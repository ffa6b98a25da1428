// Package prompts renders system and chat prompts from Go text templates.
package prompts

import (
	"strings"
	"text/template"

	"github.com/cockroachdb/errors"

	"github.com/promptops/agentic/pkg/llms"
)

// PromptValue is the formatted result of a prompt template.
type PromptValue interface {
	String() string
	// Messages returns the prompt as chat messages.
	Messages() []llms.Message
}

// FormatPrompter formats a prompt from input values.
type FormatPrompter interface {
	FormatPrompt(values map[string]any) (PromptValue, error)
	GetInputVariables() []string
}

// PromptTemplate is a text template with declared input variables.
type PromptTemplate struct {
	// Template is the prompt text in Go text/template syntax.
	Template string
	// InputVariables are the names the template requires.
	InputVariables []string
	// PartialVariables are default values for template variables.
	PartialVariables map[string]any
}

var _ FormatPrompter = (*PromptTemplate)(nil)

// NewPromptTemplate creates a prompt template.
func NewPromptTemplate(text string, inputVariables []string) *PromptTemplate {
	return &PromptTemplate{
		Template:       text,
		InputVariables: inputVariables,
	}
}

// Format renders the template with the given values.
func (p *PromptTemplate) Format(values map[string]any) (string, error) {
	merged := mergeValues(p.PartialVariables, values)
	if err := checkInputVariables(p.InputVariables, merged); err != nil {
		return "", err
	}
	return renderTemplate(p.Template, merged)
}

// FormatPrompt implements FormatPrompter.
func (p *PromptTemplate) FormatPrompt(values map[string]any) (PromptValue, error) {
	formatted, err := p.Format(values)
	if err != nil {
		return nil, err
	}
	return StringPromptValue(formatted), nil
}

// GetInputVariables implements FormatPrompter.
func (p *PromptTemplate) GetInputVariables() []string {
	return p.InputVariables
}

// StringPromptValue is a prompt value that is a plain string.
type StringPromptValue string

var _ PromptValue = StringPromptValue("")

func (v StringPromptValue) String() string {
	return string(v)
}

// Messages returns the string prompt as a single system message.
func (v StringPromptValue) Messages() []llms.Message {
	return []llms.Message{
		llms.MessageFromTextParts(llms.RoleSystem, string(v)),
	}
}

func renderTemplate(text string, values map[string]any) (string, error) {
	tmpl, err := template.New("prompt").Option("missingkey=error").Parse(text)
	if err != nil {
		return "", errors.Wrap(err, "failed to parse prompt template")
	}
	var sb strings.Builder
	if err := tmpl.Execute(&sb, values); err != nil {
		return "", errors.Wrap(err, "failed to execute prompt template")
	}
	return sb.String(), nil
}

func checkInputVariables(required []string, values map[string]any) error {
	for _, name := range required {
		if _, ok := values[name]; !ok {
			return errors.Newf("missing prompt input variable: %s", name)
		}
	}
	return nil
}

func mergeValues(defaults, values map[string]any) map[string]any {
	if len(defaults) == 0 {
		return values
	}
	merged := make(map[string]any, len(defaults)+len(values))
	for k, v := range defaults {
		merged[k] = v
	}
	for k, v := range values {
		merged[k] = v
	}
	return merged
}
