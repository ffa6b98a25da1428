// Package retrieval provides a tool that searches an embedded document index
// and returns the most relevant passages for a query.
package retrieval

import (
	"context"
	"reflect"

	"github.com/bububa/ljson"
	"github.com/cockroachdb/errors"

	"github.com/promptops/agentic/chatmodel"
	"github.com/promptops/agentic/pkg/llmutils"
	"github.com/promptops/agentic/pkg/schema"
	"github.com/promptops/agentic/tools"
	"github.com/promptops/agentic/vectorstore"
)

const ToolName = "Retrieval"

const defaultTopK = 4

// SearchRequest represents the tool input.
type SearchRequest struct {
	Query string `json:"Query" yaml:"Query" jsonschema:"title=Query,description=The question or phrase to search the document index for."`
}

// Passage is a retrieved document with its similarity score.
type Passage struct {
	Content string  `json:"content" yaml:"Content" jsonschema:"title=content,description=The text of the retrieved passage."`
	Score   float64 `json:"score" yaml:"Score" jsonschema:"title=score,description=The similarity score of the passage."`
	Source  string  `json:"source,omitempty" yaml:"Source" jsonschema:"title=source,description=The source of the passage if known."`
}

// SearchResult represents the retrieved passages.
type SearchResult struct {
	Passages []Passage `json:"passages" yaml:"Passages" jsonschema:"title=passages,description=The retrieved passages ordered by relevance."`
}

func (r *SearchResult) GetContent() string {
	return llmutils.ToJSON(r)
}

// Tool is a tool that retrieves relevant passages from a vector store.
type Tool struct {
	name        string
	description string
	funcParams  any

	store vectorstore.Store
	topK  int
}

var _ tools.Tool[SearchRequest, SearchResult] = (*Tool)(nil)

func New(store vectorstore.Store) (*Tool, error) {
	if store == nil {
		return nil, errors.New("vector store is required")
	}

	sc, err := schema.New(reflect.TypeOf(SearchRequest{}))
	if err != nil {
		return nil, errors.Wrap(err, "failed to create schema")
	}

	return &Tool{
		name:        ToolName,
		description: "A tool that searches the indexed documents and returns the most relevant passages.",
		funcParams:  sc.Parameters,
		store:       store,
		topK:        defaultTopK,
	}, nil
}

// WithTopK sets the number of passages to retrieve.
func (t *Tool) WithTopK(k int) *Tool {
	t.topK = k
	return t
}

func (t *Tool) Name() string {
	return t.name
}

func (t *Tool) Description() string {
	return t.description
}

func (t *Tool) Parameters() any {
	return t.funcParams
}

func (t *Tool) Run(ctx context.Context, req *SearchRequest) (*SearchResult, error) {
	if req.Query == "" {
		return nil, errors.New("invalid request: empty query")
	}

	docs, err := t.store.SimilaritySearch(ctx, req.Query, t.topK)
	if err != nil {
		return nil, errors.WithMessage(err, "failed to search documents")
	}

	res := &SearchResult{
		Passages: make([]Passage, 0, len(docs)),
	}
	for _, doc := range docs {
		res.Passages = append(res.Passages, Passage{
			Content: doc.Content,
			Score:   doc.Score,
			Source:  doc.Metadata.String("source"),
		})
	}
	return res, nil
}

func (t *Tool) Call(ctx context.Context, input string) (string, error) {
	var req SearchRequest
	if err := ljson.Unmarshal(llmutils.CleanJSON([]byte(input)), &req); err != nil {
		return "", chatmodel.ErrFailedUnmarshalInput
	}
	out, err := t.Run(ctx, &req)
	if err != nil {
		return "", err
	}
	return out.GetContent(), nil
}
