package tool

import (
	"fmt"

	"github.com/viant/mcp-tooldef/mcp/serializer"
)

// Tool describes a callable tool
type Tool struct {
	Name        string
	Description string
	InputSchema *Input
}

// New creates a tool without input schema
func New(name, description string) *Tool {
	return &Tool{Name: name, Description: description}
}

// Input attaches input schema on the first call and passes it to configure.
// Subsequent calls reuse the same instance; typ is then ignored.
func (t *Tool) Input(typ string, configure func(input *Input)) *Tool {
	if t.InputSchema == nil {
		t.InputSchema = NewInput(typ)
	}
	if configure != nil {
		configure(t.InputSchema)
	}
	return t
}

// Validate checks tool name and input schema
func (t *Tool) Validate() error {
	if t.Name == "" {
		return missingArgument("name")
	}
	if t.InputSchema != nil {
		if err := t.InputSchema.Validate(); err != nil {
			return fmt.Errorf("tool %q: %w", t.Name, err)
		}
	}
	return nil
}

// Representation returns {name, description, input_schema}
func (t *Tool) Representation() (serializer.Object, error) {
	var inputSchema interface{}
	if t.InputSchema != nil {
		inputSchema = t.InputSchema
	}
	return serializer.Object{}.
		Add("name", t.Name).
		Add("description", t.Description).
		Add("input_schema", inputSchema), nil
}

// MarshalJSON renders tool with the default naming policy
func (t *Tool) MarshalJSON() ([]byte, error) {
	return serializer.Marshal(t)
}

// Clone returns a deep copy of the tool
func (t *Tool) Clone() *Tool {
	if t == nil {
		return nil
	}
	return &Tool{Name: t.Name, Description: t.Description, InputSchema: t.InputSchema.Clone()}
}
