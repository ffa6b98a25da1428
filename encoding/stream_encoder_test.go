package encoding

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func streamChunks(chunks ...string) <-chan string {
	ch := make(chan string)
	go func() {
		defer close(ch)
		for _, chunk := range chunks {
			ch <- chunk
		}
	}()
	return ch
}

func collectStream(t *testing.T, parsed <-chan any) []searchQuery {
	t.Helper()
	var out []searchQuery
	for item := range parsed {
		switch v := item.(type) {
		case *searchQuery:
			out = append(out, *v)
		case string:
			out = append(out, searchQuery{Query: v})
		default:
			t.Fatalf("unexpected stream element type %T", item)
		}
	}
	return out
}

func TestPredefinedStreamSchemaEncoder(t *testing.T) {
	t.Parallel()

	modes := []Mode{ModeJSON, ModeJSONSchema, ModeJSONSchemaStrict, ModeYAML, ModeTOML, ModePlainText}
	for _, mode := range modes {
		enc, err := PredefinedStreamSchemaEncoder(mode, searchQuery{})
		require.NoError(t, err, "mode %s", mode)
		require.NotNil(t, enc, "mode %s", mode)
	}

	_, err := PredefinedStreamSchemaEncoder(ModeCustom, searchQuery{})
	assert.EqualError(t, err, "no predefined stream encoder")
}

func TestStreamEncoder_JSON(t *testing.T) {
	t.Parallel()

	enc, err := PredefinedStreamSchemaEncoder(ModeJSON, searchQuery{})
	require.NoError(t, err)
	assert.Contains(t, enc.GetFormatInstructions(), "JSON array")

	// elements split across chunks, wrapped the way the instructions ask
	parsed := enc.Read(context.Background(), streamChunks(
		`{"items": [{"query":"capital `,
		`of France","limit":1},{"qu`,
		`ery":"population of Paris","limit":2}]}`,
	))

	out := collectStream(t, parsed)
	require.Len(t, out, 2)
	assert.Equal(t, searchQuery{Query: "capital of France", Limit: 1}, out[0])
	assert.Equal(t, searchQuery{Query: "population of Paris", Limit: 2}, out[1])
}

func TestStreamEncoder_YAML(t *testing.T) {
	t.Parallel()

	enc, err := PredefinedStreamSchemaEncoder(ModeYAML, searchQuery{})
	require.NoError(t, err)

	parsed := enc.Read(context.Background(), streamChunks(
		"query: capital of France\nlimit: 1\n",
		"\nquery: population of Paris\nlim",
		"it: 2\n",
	))

	out := collectStream(t, parsed)
	require.Len(t, out, 2)
	assert.Equal(t, searchQuery{Query: "capital of France", Limit: 1}, out[0])
	assert.Equal(t, searchQuery{Query: "population of Paris", Limit: 2}, out[1])
}

func TestStreamEncoder_TOML(t *testing.T) {
	t.Parallel()

	enc, err := PredefinedStreamSchemaEncoder(ModeTOML, searchQuery{})
	require.NoError(t, err)

	parsed := enc.Read(context.Background(), streamChunks(
		"query = \"capital of France\"\nlimit = 1\n",
		"----\nquery = \"population of Paris\"\n",
		"limit = 2\n",
	))

	out := collectStream(t, parsed)
	require.Len(t, out, 2)
	assert.Equal(t, searchQuery{Query: "capital of France", Limit: 1}, out[0])
	assert.Equal(t, searchQuery{Query: "population of Paris", Limit: 2}, out[1])
}

func TestStreamEncoder_PlainText(t *testing.T) {
	t.Parallel()

	enc, err := PredefinedStreamSchemaEncoder(ModePlainText, searchQuery{})
	require.NoError(t, err)
	assert.Empty(t, enc.GetFormatInstructions())

	parsed := enc.Read(context.Background(), streamChunks("hello", "world"))
	out := collectStream(t, parsed)
	require.Len(t, out, 2)
	assert.Equal(t, "hello", out[0].Query)
	assert.Equal(t, "world", out[1].Query)
}
