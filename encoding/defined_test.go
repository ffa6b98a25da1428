package encoding

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/promptops/agentic/encoding/dummy"
)

type cityAnswer struct {
	City    string `json:"city"`
	Country string `json:"country"`
}

func TestNewTypedOutputParser_OK(t *testing.T) {
	t.Parallel()
	parser, err := NewTypedOutputParser(cityAnswer{}, ModeJSON)
	require.NoError(t, err)
	require.NotNil(t, parser)
	// Format instructions should come from the encoder
	assert.NotEmpty(t, parser.GetFormatInstructions())
	// Type should reference the struct type
	assert.Contains(t, parser.Type(), "cityAnswer")
}

func TestTypedOutputParser_Parse(t *testing.T) {
	t.Parallel()
	parser, err := NewTypedOutputParser(cityAnswer{}, ModeJSON)
	require.NoError(t, err)

	input := "```json\n{\"city\": \"Paris\", \"country\": \"France\"}\n```"
	result, err := parser.Parse(input)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, "Paris", result.City)
	assert.Equal(t, "France", result.Country)
}

func TestTypedOutputParser_WithValidation(t *testing.T) {
	t.Parallel()

	parser := &TypedOutputParser[cityAnswer]{
		enc:      &badValidator{},
		name:     "bad",
		validate: true,
	}
	_, err := parser.Parse(`{"city": "Paris"}`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to validate")
}

type badValidator struct{ dummy.Encoder }

func (badValidator) Validate(any) error            { return errors.New("fail validate") }
func (badValidator) GetFormatInstructions() string { return "" }
