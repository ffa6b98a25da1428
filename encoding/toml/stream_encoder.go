package toml

import (
	"bufio"
	"bytes"
	"context"
	"reflect"

	"github.com/BurntSushi/toml"
	"github.com/brianvoe/gofakeit/v7"
	"github.com/go-playground/validator/v10"

	"github.com/promptops/agentic/pkg/schema"
)

// StreamEncoder decodes a stream of TOML documents separated by `----`
// lines, emitting each document as soon as it is complete.
type StreamEncoder struct {
	reqType  reflect.Type
	buffer   *bytes.Buffer
	validate bool
}

func NewStreamEncoder(req any) *StreamEncoder {
	t := reflect.TypeOf(req)
	return &StreamEncoder{
		reqType: t,
		buffer:  new(bytes.Buffer),
	}
}

func (e *StreamEncoder) EnableValidate() {
	e.validate = true
}

func (e *StreamEncoder) Validate(req any) error {
	validate := validator.New()
	return validate.Struct(req)
}

func (e *StreamEncoder) Marshal(req any) ([]byte, error) {
	return toml.Marshal(req)
}

func (e *StreamEncoder) GetFormatInstructions() string {
	var b bytes.Buffer
	b.WriteString("\nRespond with a TOML array where the elements follow this TOML schema, separated by `----` for each element:\n\n")
	for i := range 3 {
		if i > 0 {
			b.WriteString("\n----\n")
		}
		instance := reflect.New(e.reqType).Interface()
		if f, ok := instance.(schema.Faker); ok {
			instance = f.Fake()
		} else {
			_ = gofakeit.Struct(instance)
		}
		bs, err := e.Marshal(instance)
		if err != nil {
			return ""
		}
		b.Write(bs)
	}
	b.WriteString("\nMake sure to return an array with the elements an instance of the TOML, not the schema itself.\n")
	return b.String()
}

var (
	fencePrefix = []byte("```toml")
	fenceSuffix = []byte("```")
)

// Read consumes streamed text chunks and emits decoded documents. The
// returned channel is closed when the input channel closes or the context
// is done.
func (e *StreamEncoder) Read(ctx context.Context, ch <-chan string) <-chan any {
	parsedChan := make(chan any)
	e.buffer.Reset()
	go func() {
		defer close(parsedChan)
		defer e.buffer.Reset()
		for {
			select {
			case <-ctx.Done():
				return
			case text, ok := <-ch:
				if !ok {
					if e.buffer.Len() > 0 {
						e.decodeBlock(e.buffer.Bytes(), parsedChan)
					}
					return
				}
				e.buffer.WriteString(text)
				e.processBuffer(parsedChan)
			}
		}
	}()
	return parsedChan
}

func (e *StreamEncoder) decodeBlock(bs []byte, parsedChan chan<- any) {
	in := bytes.TrimSuffix(bytes.TrimPrefix(bytes.TrimSpace(bs), fencePrefix), fenceSuffix)
	instance := reflect.New(e.reqType).Interface()
	if err := toml.Unmarshal(in, instance); err != nil {
		return
	}
	if e.validate {
		if err := e.Validate(instance); err != nil {
			return
		}
	}
	parsedChan <- instance
}

// processBuffer splits the accumulated text on `----` separator lines and
// decodes the complete blocks. The trailing incomplete block stays in the
// buffer.
func (e *StreamEncoder) processBuffer(parsedChan chan<- any) {
	block := new(bytes.Buffer)
	scanner := bufio.NewScanner(e.buffer)
	for scanner.Scan() {
		bs := scanner.Bytes()
		if trimmed := bytes.TrimSpace(bs); bytes.Equal(trimmed, []byte("----")) {
			if block.Len() > 0 {
				e.decodeBlock(block.Bytes(), parsedChan)
			}
			block.Reset()
		} else {
			block.Write(bs)
			block.WriteByte('\n')
		}
	}
	e.buffer.Reset()
	if block.Len() > 0 {
		e.buffer.Write(block.Bytes())
	}
}
