// Package sqlquery provides a read-only SQL tool over a database/sql handle.
// Only SELECT statements are accepted and result sets are capped.
package sqlquery

import (
	"context"
	"database/sql"
	"reflect"
	"strings"

	"github.com/bububa/ljson"
	"github.com/cockroachdb/errors"

	"github.com/promptops/agentic/chatmodel"
	"github.com/promptops/agentic/pkg/llmutils"
	"github.com/promptops/agentic/pkg/schema"
	"github.com/promptops/agentic/tools"
)

const ToolName = "SQLQuery"

const defaultMaxRows = 100

// QueryRequest represents the tool input.
type QueryRequest struct {
	Query string `json:"Query" yaml:"Query" jsonschema:"title=Query,description=The SELECT statement to execute."`
}

// QueryResult represents the result set.
type QueryResult struct {
	Columns   []string   `json:"columns" yaml:"Columns" jsonschema:"title=columns,description=The column names of the result set."`
	Rows      [][]string `json:"rows" yaml:"Rows" jsonschema:"title=rows,description=The rows of the result set, values rendered as strings."`
	RowCount  int        `json:"row_count" yaml:"RowCount" jsonschema:"title=row_count,description=The number of rows returned."`
	Truncated bool       `json:"truncated,omitempty" yaml:"Truncated" jsonschema:"title=truncated,description=Whether the result set was truncated."`
}

func (r *QueryResult) GetContent() string {
	return llmutils.ToJSON(r)
}

// Tool is a tool that runs read-only SQL queries.
type Tool struct {
	name        string
	description string
	funcParams  any

	db      *sql.DB
	maxRows int
}

var _ tools.Tool[QueryRequest, QueryResult] = (*Tool)(nil)

func New(db *sql.DB) (*Tool, error) {
	if db == nil {
		return nil, errors.New("database handle is required")
	}

	sc, err := schema.New(reflect.TypeOf(QueryRequest{}))
	if err != nil {
		return nil, errors.Wrap(err, "failed to create schema")
	}

	return &Tool{
		name:        ToolName,
		description: "A tool that executes a read-only SQL SELECT statement and returns the result set.",
		funcParams:  sc.Parameters,
		db:          db,
		maxRows:     defaultMaxRows,
	}, nil
}

// WithMaxRows caps the number of returned rows.
func (t *Tool) WithMaxRows(n int) *Tool {
	t.maxRows = n
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

func (t *Tool) Run(ctx context.Context, req *QueryRequest) (*QueryResult, error) {
	query := strings.TrimSpace(req.Query)
	if query == "" {
		return nil, errors.New("invalid request: empty query")
	}
	if !strings.EqualFold(firstWord(query), "select") {
		return nil, errors.New("invalid request: only SELECT statements are allowed")
	}
	if strings.Contains(strings.TrimRight(query, "; \t\n"), ";") {
		return nil, errors.New("invalid request: multiple statements are not allowed")
	}

	rows, err := t.db.QueryContext(ctx, query)
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute query")
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, errors.Wrap(err, "failed to read columns")
	}

	res := &QueryResult{
		Columns: cols,
		Rows:    [][]string{},
	}

	values := make([]sql.NullString, len(cols))
	scan := make([]any, len(cols))
	for i := range values {
		scan[i] = &values[i]
	}

	for rows.Next() {
		if t.maxRows > 0 && len(res.Rows) >= t.maxRows {
			res.Truncated = true
			break
		}
		if err := rows.Scan(scan...); err != nil {
			return nil, errors.Wrap(err, "failed to scan row")
		}
		row := make([]string, len(cols))
		for i, v := range values {
			if v.Valid {
				row[i] = v.String
			}
		}
		res.Rows = append(res.Rows, row)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to read rows")
	}
	res.RowCount = len(res.Rows)

	return res, nil
}

func (t *Tool) Call(ctx context.Context, input string) (string, error) {
	var req QueryRequest
	if err := ljson.Unmarshal(llmutils.CleanJSON([]byte(input)), &req); err != nil {
		return "", chatmodel.ErrFailedUnmarshalInput
	}
	out, err := t.Run(ctx, &req)
	if err != nil {
		return "", err
	}
	return out.GetContent(), nil
}

func firstWord(s string) string {
	if idx := strings.IndexFunc(s, func(r rune) bool { return r == ' ' || r == '\t' || r == '\n' }); idx > 0 {
		return s[:idx]
	}
	return s
}
