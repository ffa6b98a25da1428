package assistants_test

import (
	"context"
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
	tavilyModels "github.com/diverged/tavily-go/models"
	"github.com/promptops/agentic/assistants"
	"github.com/promptops/agentic/chatmodel"
	"github.com/promptops/agentic/encoding"
	"github.com/promptops/agentic/mocks/mockassistants"
	"github.com/promptops/agentic/mocks/mockllms"
	"github.com/promptops/agentic/mocks/mocktools"
	"github.com/promptops/agentic/pkg/llms"
	"github.com/promptops/agentic/pkg/llmutils"
	"github.com/promptops/agentic/pkg/prompts"
	"github.com/promptops/agentic/store"
	"github.com/promptops/agentic/tools/websearch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func Test_Assistant_Chat(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	systemPrompt := prompts.NewPromptTemplate("You are helpful and friendly AI assistant.\n", []string{})

	t.Setenv("TAVILY_API_KEY", "test-key")
	searchTool, err := websearch.New()
	require.NoError(t, err)

	mockTool := mocktools.NewMockTool[websearch.SearchRequest, websearch.SearchResult](ctrl)
	mockTool.EXPECT().Name().Return(searchTool.Name()).AnyTimes()
	mockTool.EXPECT().Description().Return(searchTool.Description()).AnyTimes()
	mockTool.EXPECT().Parameters().Return(searchTool.Parameters()).AnyTimes()
	mockTool.EXPECT().Call(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, input string) (string, error) {
		if input == "" {
			return "", errors.New("empty query")
		}
		if strings.Contains(input, "weather") {
			return llmutils.ToJSON(websearch.SearchResult{
				Results: []tavilyModels.SearchResult{
					{
						Title: "Weather in Europe",
						URL:   "https://weather.com/europe",
					},
					{
						Title: "Weather in France",
						URL:   "https://weather.com/france",
					},
				},
				Answer: "The weather in Europe is generally mild.",
			}), nil
		}
		return llmutils.ToJSON(websearch.SearchResult{
			Results: []tavilyModels.SearchResult{
				{
					Title: "Search result 1",
					URL:   "https://example.com/1",
				},
			},
			Answer: "This is a test answer.",
		}), nil
	}).AnyTimes()

	searchCalled := false
	mockLLM := mockllms.NewMockModel(ctrl)
	mockLLM.EXPECT().GetProviderType().Return(llms.ProviderOpenAI).AnyTimes()
	mockLLM.EXPECT().GetName().Return("gpt-4o-mini").AnyTimes()
	mockLLM.EXPECT().GenerateContent(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, messages []llms.Message, options ...llms.CallOption) (*llms.ContentResponse, error) {
			input := llmutils.FindLastUserQuestion(messages)
			if !searchCalled && strings.Contains(input, "search") {
				searchCalled = true
				return &llms.ContentResponse{
					Choices: []*llms.ContentChoice{
						{
							ToolCalls: []llms.ToolCall{
								{
									ID:   searchTool.Name(),
									Type: "function",
									FunctionCall: &llms.FunctionCall{
										Name:      searchTool.Name(),
										Arguments: `{"Query":"weather in Europe"}`,
									},
								},
							},
						},
					},
				}, nil
			}
			if strings.Contains(input, "weather") {
				return &llms.ContentResponse{
					Choices: []*llms.ContentChoice{
						{
							Content: `{"content":"The weather in Europe is generally mild."}`,
						},
					},
				}, nil
			}
			if strings.Contains(input, "capital") {
				return &llms.ContentResponse{
					Choices: []*llms.ContentChoice{
						{
							Content: `{"content":"The capital of France is Paris."}`,
						},
					},
				}, nil
			}
			return &llms.ContentResponse{
				Choices: []*llms.ContentChoice{
					{
						Content: `{"content":"This is a test answer."}`,
					},
				},
			}, nil
		}).AnyTimes()

	memstore := store.NewMemoryStore()

	var buf strings.Builder
	acfg := []assistants.Option{
		assistants.WithMode(encoding.ModeJSONSchema),
		assistants.WithStore(memstore),
		assistants.WithSkipToolHistory(true),
		assistants.WithCallback(assistants.NewPrinterCallback(&buf)),
	}

	ag := assistants.NewAssistant[chatmodel.OutputResult](mockLLM, systemPrompt, acfg...).
		WithTools(mockTool)

	chatCtx := chatmodel.NewChatContext(chatmodel.NewChatID(), chatmodel.NewChatID(), nil)
	ctx := chatmodel.WithChatContext(context.Background(), chatCtx)

	sysPrompt, err := ag.GetSystemPrompt(ctx, "", nil)
	require.NoError(t, err)
	expPrompt := `You are helpful and friendly AI assistant.`
	assert.Equal(t, expPrompt, sysPrompt)

	var output chatmodel.OutputResult
	req := &assistants.CallInput{
		Input: "What is a capital of largest country in Europe?",
	}
	apiResp, err := ag.Run(ctx, req, &output)
	require.NoError(t, err)
	assert.NotEmpty(t, output.Content)
	assert.NotEmpty(t, apiResp.Choices)

	req = &assistants.CallInput{
		Input: "search the weather there",
	}
	apiResp, err = ag.Run(ctx, req, &output)
	require.NoError(t, err)
	assert.True(t, searchCalled)
	assert.NotEmpty(t, output.Content)
	assert.NotEmpty(t, apiResp.Choices)

	history := memstore.Messages(ctx)
	assert.NotEmpty(t, history)
	exp := `Human: What is a capital of largest country in Europe?
AI: The capital of France is Paris.
Human: search the weather there
AI: The weather in Europe is generally mild.`
	chat, err := llms.GetBufferString(history, "Human", "AI")
	require.NoError(t, err)
	assert.Equal(t, exp, chat)

	assert.Contains(t, buf.String(), "tool start: WebSearch")
}

func Test_Assistant_Descriptions(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	a1 := mockassistants.NewMockIAssistant(ctrl)
	a1.EXPECT().Name().Return("Researcher").AnyTimes()
	a1.EXPECT().Description().Return("Answers questions using web search.").AnyTimes()
	a2 := mockassistants.NewMockIAssistant(ctrl)
	a2.EXPECT().Name().Return("Librarian").AnyTimes()
	a2.EXPECT().Description().Return("Answers questions from the document index.").AnyTimes()

	exp := "- `Researcher`: Answers questions using web search.\n- `Librarian`: Answers questions from the document index.\n"
	assert.Equal(t, exp, assistants.GetDescriptions(a1, a2))

	m := assistants.MapAssistants(a1, a2)
	require.Len(t, m, 2)
	assert.Same(t, a1, m["Researcher"])
	assert.Same(t, a2, m["Librarian"])

	assert.Nil(t, assistants.MapAssistants())
}
