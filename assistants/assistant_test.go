package assistants_test

import (
	"context"
	"testing"

	"github.com/promptops/agentic/assistants"
	"github.com/promptops/agentic/chatmodel"
	"github.com/promptops/agentic/encoding"
	"github.com/promptops/agentic/mocks/mockllms"
	"github.com/promptops/agentic/mocks/mockstore"
	"github.com/promptops/agentic/mocks/mocktools"
	"github.com/promptops/agentic/pkg/llms"
	"github.com/promptops/agentic/pkg/prompts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func Test_Assistant_BuilderMethods(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	systemPrompt := prompts.NewPromptTemplate("You are helpful and friendly AI assistant.", []string{})
	mockLLM := mockllms.NewMockModel(ctrl)
	mockLLM.EXPECT().GetProviderType().Return(llms.ProviderOpenAI).AnyTimes()

	// Test WithOutputParser
	outputParser, err := encoding.NewTypedOutputParser(chatmodel.OutputResult{}, encoding.ModeJSON)
	require.NoError(t, err)
	assistant := assistants.NewAssistant[chatmodel.OutputResult](mockLLM, systemPrompt)
	assistant = assistant.WithOutputParser(outputParser)
	assert.NotNil(t, assistant)

	// Test WithInputParser
	inputParser := func(input string) (string, error) {
		return "parsed: " + input, nil
	}
	assistant.WithInputParser(inputParser)
	assert.NotNil(t, assistant)

	// Test GetCallback
	callback := assistant.GetCallback()
	assert.Nil(t, callback) // Should be nil by default

	// Test WithName
	assistant = assistant.WithName("TestAssistant")
	assert.Equal(t, "TestAssistant", assistant.Name())

	// Test WithDescription
	assistant = assistant.WithDescription("Test Description")
	assert.Equal(t, "Test Description", assistant.Description())

	// Test GetTools
	tools := assistant.GetTools()
	assert.Empty(t, tools) // Should be empty by default

	// Test WithTools
	mockTool := mocktools.NewMockTool[any, any](ctrl)
	mockTool.EXPECT().Name().Return("test_tool").AnyTimes()
	mockTool.EXPECT().Description().Return("Test tool description").AnyTimes()
	mockTool.EXPECT().Parameters().Return(map[string]any{}).AnyTimes()

	assistant = assistant.WithTools(mockTool)
	tools = assistant.GetTools()
	assert.Len(t, tools, 1)
	assert.Equal(t, "test_tool", tools[0].Name())

	// Test LastRunMessages
	messages := assistant.LastRunMessages()
	assert.Empty(t, messages) // Should be empty by default

	// Test GetPromptInputVariables
	variables := assistant.GetPromptInputVariables()
	assert.Empty(t, variables) // Should be empty for our test prompt

	// Test WithPromptInputProvider
	provider := func(ctx context.Context, input string) (map[string]any, error) {
		return map[string]any{"test": "value"}, nil
	}
	assistant.WithPromptInputProvider(provider)
	assert.NotNil(t, assistant)
}

func Test_Assistant_GetSystemPrompt_ErrorCases(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	systemPrompt := prompts.NewPromptTemplate("You are helpful and friendly AI assistant.", []string{"input"})
	mockLLM := mockllms.NewMockModel(ctrl)
	mockLLM.EXPECT().GetProviderType().Return(llms.ProviderOpenAI).AnyTimes()
	assistant := assistants.NewAssistant[chatmodel.OutputResult](mockLLM, systemPrompt)

	// Simulate onPrompt error
	onPromptErr := func(ctx context.Context, input string) (map[string]any, error) {
		return nil, assert.AnError
	}
	assistant.WithPromptInputProvider(onPromptErr)
	_, err := assistant.GetSystemPrompt(context.Background(), "input", nil)
	assert.Error(t, err)

	// Simulate FormatPrompt error
	badPrompt := prompts.NewPromptTemplate("{{missing}}", []string{"input"})
	assistant = assistants.NewAssistant[chatmodel.OutputResult](mockLLM, badPrompt)
	_, err = assistant.GetSystemPrompt(context.Background(), "input", nil)
	assert.Error(t, err)
}

func Test_Assistant_Run_NoChatContext(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	systemPrompt := prompts.NewPromptTemplate("You are helpful and friendly AI assistant.", []string{})
	mockLLM := mockllms.NewMockModel(ctrl)
	mockLLM.EXPECT().GetProviderType().Return(llms.ProviderOpenAI).AnyTimes()
	assistant := assistants.NewAssistant[chatmodel.OutputResult](mockLLM, systemPrompt)

	_, err := assistant.Run(context.Background(), &assistants.CallInput{Input: "input"}, nil)
	require.Error(t, err)
	assert.EqualError(t, err, "invalid chat context")
}

func Test_Assistant_Run_EdgeCases(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	systemPrompt := prompts.NewPromptTemplate("You are helpful and friendly AI assistant.", []string{})
	mockLLM := mockllms.NewMockModel(ctrl)
	mockLLM.EXPECT().GetProviderType().Return(llms.ProviderOpenAI).AnyTimes()
	mockLLM.EXPECT().GetName().Return("test-model").AnyTimes()
	assistant := assistants.NewAssistant[chatmodel.OutputResult](mockLLM, systemPrompt)

	chatCtx := chatmodel.NewChatContext(chatmodel.NewChatID(), chatmodel.NewChatID(), nil)
	ctx := chatmodel.WithChatContext(context.Background(), chatCtx)

	// LLM returns no choices, retried and then failed
	mockLLM.EXPECT().GenerateContent(gomock.Any(), gomock.Any(), gomock.Any()).Return(&llms.ContentResponse{Choices: []*llms.ContentChoice{}}, nil).Times(3)
	_, err := assistant.Run(ctx, &assistants.CallInput{Input: "input"}, nil)
	assert.Error(t, err)

	// LLM returns error
	mockLLM.EXPECT().GenerateContent(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, assert.AnError).Times(1)
	_, err = assistant.Run(ctx, &assistants.CallInput{Input: "input"}, nil)
	assert.Error(t, err)

	// OutputParser returns error
	mockLLM.EXPECT().GenerateContent(gomock.Any(), gomock.Any(), gomock.Any()).Return(&llms.ContentResponse{Choices: []*llms.ContentChoice{{Content: "bad json"}}}, nil).Times(1)
	outputParser, _ := encoding.NewTypedOutputParser(chatmodel.OutputResult{}, encoding.ModeJSONSchema)
	assistant = assistant.WithOutputParser(outputParser)
	_, err = assistant.Run(ctx, &assistants.CallInput{Input: "input"}, new(chatmodel.OutputResult))
	assert.Error(t, err)
}

func Test_Assistant_Run_WithStore(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	systemPrompt := prompts.NewPromptTemplate("You are helpful and friendly AI assistant.", []string{})
	mockLLM := mockllms.NewMockModel(ctrl)
	mockLLM.EXPECT().GetProviderType().Return(llms.ProviderOpenAI).AnyTimes()
	mockLLM.EXPECT().GetName().Return("test-model").AnyTimes()

	history := mockstore.NewMockMessageStore(ctrl)
	prev := []llms.Message{
		llms.MessageFromTextParts(llms.RoleHuman, "What is the capital of France?"),
		llms.MessageFromTextParts(llms.RoleAI, "Paris."),
	}
	history.EXPECT().Messages(gomock.Any()).Return(prev).Times(1)

	var stored []llms.Message
	history.EXPECT().Add(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, msgs ...llms.Message) error {
			stored = append(stored, msgs...)
			return nil
		}).Times(1)

	var payload []llms.Message
	mockLLM.EXPECT().GenerateContent(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, messages []llms.Message, _ ...llms.CallOption) (*llms.ContentResponse, error) {
			payload = messages
			return &llms.ContentResponse{Choices: []*llms.ContentChoice{{Content: "Paris is also home to the Louvre."}}}, nil
		}).Times(1)

	assistant := assistants.NewAssistant[chatmodel.OutputResult](mockLLM, systemPrompt, assistants.WithStore(history))

	chatCtx := chatmodel.NewChatContext(chatmodel.NewChatID(), chatmodel.NewChatID(), nil)
	ctx := chatmodel.WithChatContext(context.Background(), chatCtx)

	_, err := assistant.Run(ctx, &assistants.CallInput{Input: "What else is there?"}, nil)
	require.NoError(t, err)

	// system prompt, two stored messages, then the new question
	require.Len(t, payload, 4)
	assert.Equal(t, llms.RoleSystem, payload[0].Role)
	assert.Equal(t, "What is the capital of France?\n", payload[1].GetContent())
	assert.Equal(t, "Paris.\n", payload[2].GetContent())
	assert.Equal(t, "What else is there?\n", payload[3].GetContent())

	require.Len(t, stored, 2)
	assert.Equal(t, llms.RoleHuman, stored[0].Role)
	assert.Equal(t, "What else is there?\n", stored[0].GetContent())
	assert.Equal(t, llms.RoleAI, stored[1].Role)
	assert.Equal(t, "Paris is also home to the Louvre.\n", stored[1].GetContent())
}

func Test_Assistant_Run_ToolCallEdgeCases(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	systemPrompt := prompts.NewPromptTemplate("You are helpful and friendly AI assistant.", []string{})
	mockLLM := mockllms.NewMockModel(ctrl)
	mockLLM.EXPECT().GetProviderType().Return(llms.ProviderOpenAI).AnyTimes()
	mockLLM.EXPECT().GetName().Return("test-model").AnyTimes()
	assistant := assistants.NewAssistant[chatmodel.OutputResult](mockLLM, systemPrompt)

	chatCtx := chatmodel.NewChatContext(chatmodel.NewChatID(), chatmodel.NewChatID(), nil)
	ctx := chatmodel.WithChatContext(context.Background(), chatCtx)

	// Tool not found case
	mockLLM.EXPECT().GenerateContent(gomock.Any(), gomock.Any(), gomock.Any()).Return(&llms.ContentResponse{
		Choices: []*llms.ContentChoice{{
			ToolCalls: []llms.ToolCall{{
				ID: "1", Type: "function", FunctionCall: &llms.FunctionCall{Name: "not_found", Arguments: "{}"},
			}},
		}},
	}, nil).Times(1)
	// Final response after tool error
	mockLLM.EXPECT().GenerateContent(gomock.Any(), gomock.Any(), gomock.Any()).Return(&llms.ContentResponse{
		Choices: []*llms.ContentChoice{{
			Content: "I apologize, but I couldn't find the requested tool.",
		}},
	}, nil).Times(1)
	_, err := assistant.Run(ctx, &assistants.CallInput{Input: "input"}, nil)
	assert.NoError(t, err)

	// Tool returns error case
	mockTool := mocktools.NewMockTool[any, any](ctrl)
	mockTool.EXPECT().Name().Return("err_tool").Times(1)
	mockTool.EXPECT().Description().Return("desc").Times(1)
	mockTool.EXPECT().Parameters().Return(map[string]any{}).Times(1)
	mockTool.EXPECT().Call(gomock.Any(), gomock.Any()).Return("", assert.AnError).Times(1)
	assistant = assistant.WithTools(mockTool)
	mockLLM.EXPECT().GenerateContent(gomock.Any(), gomock.Any(), gomock.Any()).Return(&llms.ContentResponse{
		Choices: []*llms.ContentChoice{{
			ToolCalls: []llms.ToolCall{{
				ID: "2", Type: "function", FunctionCall: &llms.FunctionCall{Name: "err_tool", Arguments: "{}"},
			}},
		}},
	}, nil).Times(1)
	// Final response after tool error
	mockLLM.EXPECT().GenerateContent(gomock.Any(), gomock.Any(), gomock.Any()).Return(&llms.ContentResponse{
		Choices: []*llms.ContentChoice{{
			Content: "I encountered an error while trying to use the tool.",
		}},
	}, nil).Times(1)
	_, err = assistant.Run(ctx, &assistants.CallInput{Input: "input"}, nil)
	assert.NoError(t, err)

	// Tool returns success case
	mockTool = mocktools.NewMockTool[any, any](ctrl)
	mockTool.EXPECT().Name().Return("success_tool").Times(1)
	mockTool.EXPECT().Description().Return("desc").Times(1)
	mockTool.EXPECT().Parameters().Return(map[string]any{}).Times(1)
	mockTool.EXPECT().Call(gomock.Any(), gomock.Any()).Return("tool result", nil).Times(1)
	assistant = assistant.WithTools(mockTool)
	mockLLM.EXPECT().GenerateContent(gomock.Any(), gomock.Any(), gomock.Any()).Return(&llms.ContentResponse{
		Choices: []*llms.ContentChoice{{
			ToolCalls: []llms.ToolCall{{
				ID: "3", Type: "function", FunctionCall: &llms.FunctionCall{Name: "success_tool", Arguments: "{}"},
			}},
		}},
	}, nil).Times(1)
	// Final response after successful tool execution
	mockLLM.EXPECT().GenerateContent(gomock.Any(), gomock.Any(), gomock.Any()).Return(&llms.ContentResponse{
		Choices: []*llms.ContentChoice{{
			Content: "Based on the tool result, here is my response.",
		}},
	}, nil).Times(1)
	_, err = assistant.Run(ctx, &assistants.CallInput{Input: "input"}, nil)
	assert.NoError(t, err)
}

func Test_Assistant_Run_MaxToolCalls(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	systemPrompt := prompts.NewPromptTemplate("You are helpful and friendly AI assistant.", []string{})
	mockLLM := mockllms.NewMockModel(ctrl)
	mockLLM.EXPECT().GetProviderType().Return(llms.ProviderOpenAI).AnyTimes()
	mockLLM.EXPECT().GetName().Return("test-model").AnyTimes()

	mockTool := mocktools.NewMockTool[any, any](ctrl)
	mockTool.EXPECT().Name().Return("loop_tool").Times(1)
	mockTool.EXPECT().Description().Return("desc").Times(1)
	mockTool.EXPECT().Parameters().Return(map[string]any{}).Times(1)
	mockTool.EXPECT().Call(gomock.Any(), gomock.Any()).Return("again", nil).AnyTimes()

	assistant := assistants.NewAssistant[chatmodel.OutputResult](mockLLM, systemPrompt,
		assistants.WithMaxToolCalls(2)).
		WithTools(mockTool)

	// The model keeps requesting the same tool until the limit aborts the run.
	mockLLM.EXPECT().GenerateContent(gomock.Any(), gomock.Any(), gomock.Any()).Return(&llms.ContentResponse{
		Choices: []*llms.ContentChoice{{
			ToolCalls: []llms.ToolCall{{
				ID: "1", Type: "function", FunctionCall: &llms.FunctionCall{Name: "loop_tool", Arguments: "{}"},
			}},
		}},
	}, nil).AnyTimes()

	chatCtx := chatmodel.NewChatContext(chatmodel.NewChatID(), chatmodel.NewChatID(), nil)
	ctx := chatmodel.WithChatContext(context.Background(), chatCtx)

	_, err := assistant.Run(ctx, &assistants.CallInput{Input: "input"}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tool calls limit is exceeded")
}
