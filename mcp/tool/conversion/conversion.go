package conversion

import (
	"fmt"
	"sort"

	"github.com/viant/jsonrpc"
	mcpschema "github.com/viant/mcp-protocol/schema"
	"github.com/viant/mcp-tooldef/internal/conv"
	"github.com/viant/mcp-tooldef/mcp/naming"
	"github.com/viant/mcp-tooldef/mcp/serializer"
	"github.com/viant/mcp-tooldef/mcp/tool"
)

// ToResponse renders collection result with policy and wraps it in a
// jsonrpc.Response carrying the collection id.
func ToResponse(collection *tool.Collection, policy naming.Policy) (*jsonrpc.Response, error) {
	var opts []serializer.Option
	if policy != nil {
		opts = append(opts, serializer.WithPolicy(policy))
	}
	data, err := serializer.Marshal(collection.Result(), opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to render tools result: %w", err)
	}
	return jsonrpc.NewResponse(collection.ID, data), nil
}

// ToProtocol converts a tool into protocol schema.Tool
func ToProtocol(aTool *tool.Tool) mcpschema.Tool {
	ret := mcpschema.Tool{
		Name:        aTool.Name,
		Description: conv.Pointer(aTool.Description),
	}
	input := aTool.InputSchema
	if input == nil {
		ret.InputSchema = mcpschema.ToolInputSchema{Type: tool.TypeObject}
		return ret
	}
	props := make(map[string]map[string]interface{}, len(input.Properties))
	for _, prop := range input.Properties {
		if prop == nil {
			continue
		}
		props[prop.Name] = map[string]interface{}{
			"type":        prop.Type,
			"description": prop.Description,
		}
	}
	ret.InputSchema = mcpschema.ToolInputSchema{
		Type:       input.Type,
		Properties: props,
		Required:   input.RequiredNames(),
	}
	return ret
}

// ToListToolsResult converts collection into protocol list tools result
func ToListToolsResult(collection *tool.Collection) *mcpschema.ListToolsResult {
	ret := &mcpschema.ListToolsResult{Tools: make([]mcpschema.Tool, 0, len(collection.Tools))}
	for _, aTool := range collection.Tools {
		if aTool == nil {
			continue
		}
		ret.Tools = append(ret.Tools, ToProtocol(aTool))
	}
	if collection.NextCursor != nil {
		ret.NextCursor = conv.Pointer(*collection.NextCursor)
	}
	return ret
}

// FromProtocol converts protocol schema.Tool into a tool. Property order is
// not carried by the protocol type, properties are sorted by name.
func FromProtocol(def mcpschema.Tool) *tool.Tool {
	ret := tool.New(def.Name, conv.Dereference(def.Description))
	if def.InputSchema.Type == "" && len(def.InputSchema.Properties) == 0 {
		return ret
	}
	requiredSet := make(map[string]bool, len(def.InputSchema.Required))
	for _, name := range def.InputSchema.Required {
		requiredSet[name] = true
	}
	names := make([]string, 0, len(def.InputSchema.Properties))
	for name := range def.InputSchema.Properties {
		names = append(names, name)
	}
	sort.Strings(names)

	ret.Input(def.InputSchema.Type, func(input *tool.Input) {
		for _, name := range names {
			propDef := def.InputSchema.Properties[name]
			input.Add(&tool.Property{
				Name:        name,
				Type:        schemaType(propDef),
				Description: stringValue(propDef, "description"),
				Required:    requiredSet[name],
			})
		}
	})
	return ret
}

// FromListToolsResult converts protocol list tools result into a collection
func FromListToolsResult(result *mcpschema.ListToolsResult, id int) *tool.Collection {
	ret := tool.NewCollection(tool.WithID(id))
	if result == nil {
		return ret
	}
	for _, def := range result.Tools {
		ret.AddTool(FromProtocol(def))
	}
	if cursor := conv.Dereference(result.NextCursor); cursor != "" {
		ret.NextCursor = &cursor
	}
	return ret
}

// schemaType returns property type, the first entry is used for type unions
func schemaType(def map[string]interface{}) string {
	switch v := def["type"].(type) {
	case string:
		return v
	case []interface{}:
		if len(v) > 0 {
			if s, ok := v[0].(string); ok {
				return s
			}
		}
	case []string:
		if len(v) > 0 {
			return v[0]
		}
	}
	return ""
}

func stringValue(def map[string]interface{}, key string) string {
	if v, ok := def[key].(string); ok {
		return v
	}
	return ""
}
