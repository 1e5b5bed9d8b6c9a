package tool

import (
	"errors"
	"fmt"

	"github.com/viant/jsonrpc"
	"github.com/viant/mcp-tooldef/mcp/serializer"
)

// JSONRPCVersion is the protocol version written to every envelope
const JSONRPCVersion = jsonrpc.Version

// Collection represents a page of tools wrapped in a tools/list response
type Collection struct {
	ID         int
	Tools      []*Tool
	NextCursor *string
}

// CollectionOption customises a collection
type CollectionOption func(*Collection)

// WithID sets response id
func WithID(id int) CollectionOption {
	return func(c *Collection) {
		c.ID = id
	}
}

// WithTools sets initial tools
func WithTools(tools ...*Tool) CollectionOption {
	return func(c *Collection) {
		c.Tools = append(c.Tools, tools...)
	}
}

// WithNextCursor sets next page cursor
func WithNextCursor(cursor string) CollectionOption {
	return func(c *Collection) {
		c.NextCursor = &cursor
	}
}

// NewCollection creates a collection, id defaults to 1
func NewCollection(opts ...CollectionOption) *Collection {
	ret := &Collection{ID: 1, Tools: make([]*Tool, 0)}
	for _, opt := range opts {
		opt(ret)
	}
	return ret
}

// AddTool appends a tool
func (c *Collection) AddTool(tool *Tool) *Collection {
	c.Tools = append(c.Tools, tool)
	return c
}

// Lookup returns tool by name
func (c *Collection) Lookup(name string) *Tool {
	for _, tool := range c.Tools {
		if tool != nil && tool.Name == name {
			return tool
		}
	}
	return nil
}

// Names returns tool names in order
func (c *Collection) Names() []string {
	ret := make([]string, 0, len(c.Tools))
	for _, tool := range c.Tools {
		if tool != nil {
			ret = append(ret, tool.Name)
		}
	}
	return ret
}

// Validate checks every tool and tool name uniqueness
func (c *Collection) Validate() error {
	var errs []error
	seen := make(map[string]bool, len(c.Tools))
	for i, tool := range c.Tools {
		if tool == nil {
			errs = append(errs, fmt.Errorf("tools[%d]: nil", i))
			continue
		}
		if err := tool.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("tools[%d]: %w", i, err))
		}
		if seen[tool.Name] {
			errs = append(errs, fmt.Errorf("tools[%d]: duplicate name %q", i, tool.Name))
		}
		seen[tool.Name] = true
	}
	return errors.Join(errs...)
}

// Result returns the tools/list result: {tools, next_cursor}
func (c *Collection) Result() serializer.Object {
	tools := make([]*Tool, 0, len(c.Tools))
	tools = append(tools, c.Tools...)
	var cursor interface{}
	if c.NextCursor != nil {
		cursor = *c.NextCursor
	}
	return serializer.Object{}.
		Add("tools", tools).
		Add("next_cursor", cursor)
}

// Representation returns the JSON-RPC envelope:
// {jsonrpc, id, result: {tools, next_cursor}}
func (c *Collection) Representation() (serializer.Object, error) {
	return serializer.Object{}.
		AddVerbatim("jsonrpc", JSONRPCVersion).
		Add("id", c.ID).
		Add("result", c.Result()), nil
}

// MarshalJSON renders collection with the default naming policy
func (c *Collection) MarshalJSON() ([]byte, error) {
	return serializer.Marshal(c)
}
