package chatmodel

import (
	"encoding/json"

	"github.com/cockroachdb/errors"
)

// ErrFailedUnmarshalInput is returned by tools and parsers when the model
// produced arguments or output that do not match the declared schema. The
// assistant run loop reports it back to the model so it can correct itself.
var ErrFailedUnmarshalInput = errors.New("failed to unmarshal input: check the schema and try again")

// ContentProvider is implemented by typed inputs and outputs that can render
// themselves as chat content.
type ContentProvider interface {
	GetContent() string
}

// InputParser is implemented by typed inputs that can parse a raw request.
type InputParser interface {
	ParseInput(raw string) error
}

// OutputParser parses the output of an LLM call into a typed value.
type OutputParser[T any] interface {
	// Parse parses the output of an LLM call. If the text does not match
	// the schema it returns ErrFailedUnmarshalInput.
	Parse(text string) (*T, error)
	// GetFormatInstructions returns a string describing the expected
	// output format, to be appended to the system prompt.
	GetFormatInstructions() string
	// Type returns a string key identifying this class of parser.
	Type() string
}

type Stringer interface {
	String() string
}

// Stringify renders any value as chat content: Stringer and ContentProvider
// are used when implemented, otherwise the value is JSON encoded.
func Stringify(s any) string {
	if v, ok := s.(Stringer); ok {
		return v.String()
	}
	if v, ok := s.(ContentProvider); ok {
		return v.GetContent()
	}
	bs, _ := json.Marshal(s)
	return string(bs)
}

// ToBytes renders any value as bytes, following the Stringify rules.
func ToBytes(s any) []byte {
	if v, ok := s.(Stringer); ok {
		return []byte(v.String())
	}
	if v, ok := s.(ContentProvider); ok {
		return []byte(v.GetContent())
	}
	bs, _ := json.Marshal(s)
	return bs
}

// FewShotExample is a prompt/completion pair used to prime an assistant.
type FewShotExample struct {
	Prompt     string
	Completion string
}

type FewShotExamples []FewShotExample
