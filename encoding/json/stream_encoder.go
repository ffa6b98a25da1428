package json

import (
	"bytes"
	"context"
	"encoding/json"
	"reflect"

	"github.com/go-playground/validator/v10"

	"github.com/promptops/agentic/pkg/llmutils"
	"github.com/promptops/agentic/pkg/schema"
)

// StreamWrapper is the shape the model is asked to stream: a single array
// field so complete elements can be decoded as they arrive.
type StreamWrapper[T any] struct {
	Items []T `json:"items"`
}

var wrapperItemsStart = []byte(`"items": [`)

// StreamEncoder decodes a streamed JSON array of elements incrementally.
type StreamEncoder struct {
	schema   *schema.Schema
	reqType  reflect.Type
	buffer   *bytes.Buffer
	validate bool
}

func NewStreamEncoder(req any, validate bool) (*StreamEncoder, error) {
	t := reflect.TypeOf(req)
	wrapperType := reflect.StructOf([]reflect.StructField{
		{
			Name: "Items",
			Type: reflect.SliceOf(t),
			Tag:  `json:"items"`,
		},
	})
	s, err := schema.New(wrapperType)
	if err != nil {
		return nil, err
	}
	return &StreamEncoder{
		schema:   s,
		reqType:  t,
		buffer:   new(bytes.Buffer),
		validate: validate,
	}, nil
}

func (e *StreamEncoder) EnableValidate() {
	e.validate = true
}

func (e *StreamEncoder) Schema() *schema.Schema {
	return e.schema
}

func (e *StreamEncoder) Validate(req any) error {
	validate := validator.New()
	return validate.Struct(req)
}

func (e *StreamEncoder) GetFormatInstructions() string {
	var b bytes.Buffer
	b.WriteString("\nRespond with a JSON array where the elements follow this JSON schema:\n")
	b.WriteString("```json\n")
	b.WriteString(e.schema.String())
	b.WriteString("\n```")
	b.WriteString("\nMake sure to return an array with the elements an instance of the JSON, not the schema itself.\n")
	return b.String()
}

// Read consumes streamed text chunks and emits decoded elements as soon as
// each one is complete. The returned channel is closed when the input
// channel closes or the context is done.
func (e *StreamEncoder) Read(ctx context.Context, ch <-chan string) <-chan any {
	parsedChan := make(chan any)
	e.buffer.Reset()
	go func() {
		defer close(parsedChan)

		inArray := false

		for {
			select {
			case <-ctx.Done():
				return
			case text, ok := <-ch:
				if !ok {
					e.processRemainingBuffer(parsedChan)
					return
				}

				e.buffer.WriteString(text)

				// eat the input until the elements array starts
				if !inArray {
					inArray = startArray(e.buffer)
				}

				e.processBuffer(parsedChan)
			}
		}
	}()
	return parsedChan
}

func (e *StreamEncoder) processBuffer(parsedChan chan<- any) {
	data := e.buffer.Bytes()

	data, remaining := firstFullJSONElement(data)

	decoder := json.NewDecoder(bytes.NewReader(data))

	for decoder.More() {
		instance := reflect.New(e.reqType).Interface()
		if err := decoder.Decode(instance); err != nil {
			break
		}

		if e.validate {
			if err := e.Validate(instance); err != nil {
				break
			}
		}

		parsedChan <- instance

		e.buffer.Reset()
		e.buffer.Write(remaining)
	}
}

func (e *StreamEncoder) processRemainingBuffer(parsedChan chan<- any) {
	remaining := llmutils.CleanJSON(e.buffer.Bytes())

	if idx := bytes.LastIndex(remaining, []byte{']'}); idx != -1 {
		remaining = remaining[:idx]
	}
	e.buffer.Reset()
	e.buffer.Write(remaining)

	e.processBuffer(parsedChan)
}

func startArray(buffer *bytes.Buffer) bool {
	data := buffer.Bytes()

	idx := bytes.Index(data, wrapperItemsStart)
	if idx == -1 {
		return false
	}

	trimmed := bytes.TrimSpace(data[idx+len(wrapperItemsStart):])
	buffer.Reset()
	buffer.Write(trimmed)

	return true
}

// findMatchingBrace returns the index of the brace closing the object that
// opens at or after start, or -1 when the object is still incomplete.
func findMatchingBrace(bs []byte, start int) int {
	depth := 0

	for i := start; i < len(bs); i++ {
		switch bs[i] {
		case '{':
			depth++
		case '}':
			if depth == 0 {
				return -1
			}
			depth--
			if depth == 0 {
				return i
			}
		}
	}

	return -1
}

func firstFullJSONElement(bs []byte) (element []byte, remaining []byte) {
	end := findMatchingBrace(bs, 0)
	if end == -1 {
		return nil, bs
	}

	element = bs[:end+1]

	if end+1 < len(bs) {
		remaining = bs[end+1:]
		if bs[end+1] == ',' {
			remaining = bs[end+2:]
		}
	}

	return element, remaining
}
