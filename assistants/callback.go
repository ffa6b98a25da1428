package assistants

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/effective-security/x/slices"
	"github.com/effective-security/xlog"

	"github.com/promptops/agentic/pkg/llms"
	"github.com/promptops/agentic/tools"
)

// NoopCallback is a Callback that does nothing.
type NoopCallback struct{}

var _ Callback = NoopCallback{}

func (NoopCallback) OnAssistantStart(context.Context, IAssistant, string) {}
func (NoopCallback) OnAssistantEnd(context.Context, IAssistant, string, *llms.ContentResponse, []llms.Message) {
}
func (NoopCallback) OnAssistantError(context.Context, IAssistant, string, error, []llms.Message) {}
func (NoopCallback) OnAssistantLLMCallStart(context.Context, IAssistant, llms.Model, []llms.Message) {
}
func (NoopCallback) OnAssistantLLMCallEnd(context.Context, IAssistant, llms.Model, *llms.ContentResponse) {
}
func (NoopCallback) OnAssistantLLMParseError(context.Context, IAssistant, string, string, error) {}
func (NoopCallback) OnToolNotFound(context.Context, IAssistant, string)                          {}
func (NoopCallback) OnToolStart(context.Context, tools.ITool, string, string)                    {}
func (NoopCallback) OnToolEnd(context.Context, tools.ITool, string, string, string)              {}
func (NoopCallback) OnToolError(context.Context, tools.ITool, string, string, error)             {}

// PrinterCallback writes run events to the given writer,
// useful for CLI tools and examples.
type PrinterCallback struct {
	Out io.Writer
}

var _ Callback = (*PrinterCallback)(nil)

// NewPrinterCallback returns a Callback printing events to w.
func NewPrinterCallback(w io.Writer) *PrinterCallback {
	return &PrinterCallback{Out: w}
}

func (p *PrinterCallback) OnAssistantStart(_ context.Context, assistant IAssistant, input string) {
	fmt.Fprintf(p.Out, "[%s] start: %s\n", assistant.Name(), slices.StringUpto(input, 128))
}

func (p *PrinterCallback) OnAssistantEnd(_ context.Context, assistant IAssistant, _ string, resp *llms.ContentResponse, _ []llms.Message) {
	if len(resp.Choices) > 0 {
		fmt.Fprintf(p.Out, "[%s] end: %s\n", assistant.Name(), slices.StringUpto(resp.Choices[0].Content, 256))
	}
}

func (p *PrinterCallback) OnAssistantError(_ context.Context, assistant IAssistant, _ string, err error, _ []llms.Message) {
	fmt.Fprintf(p.Out, "[%s] error: %s\n", assistant.Name(), err.Error())
}

func (p *PrinterCallback) OnAssistantLLMCallStart(_ context.Context, assistant IAssistant, llm llms.Model, messages []llms.Message) {
	fmt.Fprintf(p.Out, "[%s] LLM call: model=%s, messages=%d\n", assistant.Name(), llm.GetName(), len(messages))
}

func (p *PrinterCallback) OnAssistantLLMCallEnd(_ context.Context, assistant IAssistant, _ llms.Model, resp *llms.ContentResponse) {
	fmt.Fprintf(p.Out, "[%s] LLM response: choices=%d\n", assistant.Name(), len(resp.Choices))
}

func (p *PrinterCallback) OnAssistantLLMParseError(_ context.Context, assistant IAssistant, _ string, result string, err error) {
	fmt.Fprintf(p.Out, "[%s] parse error: %s: %s\n", assistant.Name(), err.Error(), slices.StringUpto(result, 128))
}

func (p *PrinterCallback) OnToolNotFound(_ context.Context, assistant IAssistant, tool string) {
	fmt.Fprintf(p.Out, "[%s] tool not found: %s\n", assistant.Name(), tool)
}

func (p *PrinterCallback) OnToolStart(_ context.Context, tool tools.ITool, assistant string, input string) {
	fmt.Fprintf(p.Out, "[%s] tool start: %s(%s)\n", assistant, tool.Name(), slices.StringUpto(strings.TrimSpace(input), 128))
}

func (p *PrinterCallback) OnToolEnd(_ context.Context, tool tools.ITool, assistant string, _ string, output string) {
	fmt.Fprintf(p.Out, "[%s] tool end: %s => %s\n", assistant, tool.Name(), slices.StringUpto(strings.TrimSpace(output), 128))
}

func (p *PrinterCallback) OnToolError(_ context.Context, tool tools.ITool, assistant string, _ string, err error) {
	fmt.Fprintf(p.Out, "[%s] tool error: %s: %s\n", assistant, tool.Name(), err.Error())
}

// PackageLoggerCallback logs run events with the package logger.
type PackageLoggerCallback struct {
	level xlog.LogLevel
}

var _ Callback = (*PackageLoggerCallback)(nil)

// NewLoggerCallback returns a Callback logging events at the given level.
func NewLoggerCallback(level xlog.LogLevel) *PackageLoggerCallback {
	return &PackageLoggerCallback{level: level}
}

func (l *PackageLoggerCallback) OnAssistantStart(ctx context.Context, assistant IAssistant, input string) {
	logger.ContextKV(ctx, l.level,
		"assistant", assistant.Name(),
		"status", "started",
		"input", slices.StringUpto(input, 128),
	)
}

func (l *PackageLoggerCallback) OnAssistantEnd(ctx context.Context, assistant IAssistant, _ string, resp *llms.ContentResponse, messages []llms.Message) {
	logger.ContextKV(ctx, l.level,
		"assistant", assistant.Name(),
		"status", "completed",
		"choices", len(resp.Choices),
		"messages", len(messages),
	)
}

func (l *PackageLoggerCallback) OnAssistantError(ctx context.Context, assistant IAssistant, input string, err error, _ []llms.Message) {
	logger.ContextKV(ctx, xlog.ERROR,
		"assistant", assistant.Name(),
		"status", "failed",
		"input", slices.StringUpto(input, 128),
		"err", err.Error(),
	)
}

func (l *PackageLoggerCallback) OnAssistantLLMCallStart(ctx context.Context, assistant IAssistant, llm llms.Model, messages []llms.Message) {
	logger.ContextKV(ctx, l.level,
		"assistant", assistant.Name(),
		"status", "llm_call",
		"model", llm.GetName(),
		"messages", len(messages),
	)
}

func (l *PackageLoggerCallback) OnAssistantLLMCallEnd(ctx context.Context, assistant IAssistant, _ llms.Model, resp *llms.ContentResponse) {
	logger.ContextKV(ctx, l.level,
		"assistant", assistant.Name(),
		"status", "llm_response",
		"choices", len(resp.Choices),
	)
}

func (l *PackageLoggerCallback) OnAssistantLLMParseError(ctx context.Context, assistant IAssistant, _ string, result string, err error) {
	logger.ContextKV(ctx, xlog.WARNING,
		"assistant", assistant.Name(),
		"status", "parse_error",
		"result", slices.StringUpto(result, 128),
		"err", err.Error(),
	)
}

func (l *PackageLoggerCallback) OnToolNotFound(ctx context.Context, assistant IAssistant, tool string) {
	logger.ContextKV(ctx, xlog.WARNING,
		"assistant", assistant.Name(),
		"status", "tool_not_found",
		"tool", tool,
	)
}

func (l *PackageLoggerCallback) OnToolStart(ctx context.Context, tool tools.ITool, assistant string, input string) {
	logger.ContextKV(ctx, l.level,
		"assistant", assistant,
		"status", "tool_started",
		"tool", tool.Name(),
		"input", slices.StringUpto(input, 128),
	)
}

func (l *PackageLoggerCallback) OnToolEnd(ctx context.Context, tool tools.ITool, assistant string, _ string, output string) {
	logger.ContextKV(ctx, l.level,
		"assistant", assistant,
		"status", "tool_completed",
		"tool", tool.Name(),
		"output", slices.StringUpto(output, 128),
	)
}

func (l *PackageLoggerCallback) OnToolError(ctx context.Context, tool tools.ITool, assistant string, input string, err error) {
	logger.ContextKV(ctx, xlog.WARNING,
		"assistant", assistant,
		"status", "tool_failed",
		"tool", tool.Name(),
		"input", slices.StringUpto(input, 128),
		"err", err.Error(),
	)
}

// FanoutCallback dispatches each event to every registered Callback.
type FanoutCallback struct {
	callbacks []Callback
}

var _ Callback = (*FanoutCallback)(nil)

// NewFanoutCallback combines several callbacks into one.
func NewFanoutCallback(callbacks ...Callback) *FanoutCallback {
	return &FanoutCallback{callbacks: callbacks}
}

func (f *FanoutCallback) OnAssistantStart(ctx context.Context, assistant IAssistant, input string) {
	for _, cb := range f.callbacks {
		cb.OnAssistantStart(ctx, assistant, input)
	}
}

func (f *FanoutCallback) OnAssistantEnd(ctx context.Context, assistant IAssistant, input string, resp *llms.ContentResponse, messages []llms.Message) {
	for _, cb := range f.callbacks {
		cb.OnAssistantEnd(ctx, assistant, input, resp, messages)
	}
}

func (f *FanoutCallback) OnAssistantError(ctx context.Context, assistant IAssistant, input string, err error, messages []llms.Message) {
	for _, cb := range f.callbacks {
		cb.OnAssistantError(ctx, assistant, input, err, messages)
	}
}

func (f *FanoutCallback) OnAssistantLLMCallStart(ctx context.Context, assistant IAssistant, llm llms.Model, messages []llms.Message) {
	for _, cb := range f.callbacks {
		cb.OnAssistantLLMCallStart(ctx, assistant, llm, messages)
	}
}

func (f *FanoutCallback) OnAssistantLLMCallEnd(ctx context.Context, assistant IAssistant, llm llms.Model, resp *llms.ContentResponse) {
	for _, cb := range f.callbacks {
		cb.OnAssistantLLMCallEnd(ctx, assistant, llm, resp)
	}
}

func (f *FanoutCallback) OnAssistantLLMParseError(ctx context.Context, assistant IAssistant, input string, result string, err error) {
	for _, cb := range f.callbacks {
		cb.OnAssistantLLMParseError(ctx, assistant, input, result, err)
	}
}

func (f *FanoutCallback) OnToolNotFound(ctx context.Context, assistant IAssistant, tool string) {
	for _, cb := range f.callbacks {
		cb.OnToolNotFound(ctx, assistant, tool)
	}
}

func (f *FanoutCallback) OnToolStart(ctx context.Context, tool tools.ITool, assistant string, input string) {
	for _, cb := range f.callbacks {
		cb.OnToolStart(ctx, tool, assistant, input)
	}
}

func (f *FanoutCallback) OnToolEnd(ctx context.Context, tool tools.ITool, assistant string, input string, output string) {
	for _, cb := range f.callbacks {
		cb.OnToolEnd(ctx, tool, assistant, input, output)
	}
}

func (f *FanoutCallback) OnToolError(ctx context.Context, tool tools.ITool, assistant string, input string, err error) {
	for _, cb := range f.callbacks {
		cb.OnToolError(ctx, tool, assistant, input, err)
	}
}
