package mcp

import (
	"errors"
	"fmt"

	"github.com/viant/jsonrpc"
	"github.com/viant/mcp-tooldef/mcp/matcher"
	"github.com/viant/mcp-tooldef/mcp/serializer"
	"github.com/viant/mcp-tooldef/mcp/tool"
	"github.com/viant/mcp-tooldef/mcp/tool/conversion"
)

// Tools returns catalog tools. The slice is a copy, the tools are shared.
func (s *Service) Tools() []*tool.Tool {
	ret := make([]*tool.Tool, len(s.catalog.Tools))
	copy(ret, s.catalog.Tools)
	return ret
}

// ToolNames returns tool names in catalog order
func (s *Service) ToolNames() []string {
	return s.catalog.Names()
}

// LookupTool returns a tool by name
func (s *Service) LookupTool(name string) (*tool.Tool, error) {
	if aTool := s.catalog.Lookup(name); aTool != nil {
		return aTool, nil
	}
	return nil, fmt.Errorf("unknown tool: %v", name)
}

// MatchTools returns tools whose name matches pattern, see matcher.Match
func (s *Service) MatchTools(pattern string) []*tool.Tool {
	var ret []*tool.Tool
	for _, aTool := range s.catalog.Tools {
		if matcher.Match(pattern, aTool.Name) {
			ret = append(ret, aTool)
		}
	}
	return ret
}

// AddTool appends a tool to the catalog
func (s *Service) AddTool(aTool *tool.Tool) error {
	if aTool == nil {
		return fmt.Errorf("tool was nil")
	}
	if err := aTool.Validate(); err != nil {
		return err
	}
	if s.catalog.Lookup(aTool.Name) != nil {
		return fmt.Errorf("tool %q already exists", aTool.Name)
	}
	s.catalog.AddTool(aTool)
	return nil
}

// ListTools returns a page of tools starting at cursor. The page owns copies
// of the catalog tools; NextCursor is set when more tools remain.
func (s *Service) ListTools(id int, cursor string) (*tool.Collection, error) {
	offset, err := decodeCursor(cursor)
	if err != nil {
		return nil, err
	}
	total := len(s.catalog.Tools)
	if offset > total {
		return nil, fmt.Errorf("%w: offset %d exceeds %d tools", ErrInvalidCursor, offset, total)
	}
	end := total
	if s.pageSize > 0 && offset+s.pageSize < total {
		end = offset + s.pageSize
	}
	page := tool.NewCollection(tool.WithID(id))
	for _, aTool := range s.catalog.Tools[offset:end] {
		page.AddTool(aTool.Clone())
	}
	if end < total {
		page.NextCursor = new(string)
		*page.NextCursor = encodeCursor(end)
	}
	return page, nil
}

// Render serializes value with the service naming policy
func (s *Service) Render(value interface{}, opts ...serializer.Option) ([]byte, error) {
	return serializer.Marshal(value, append([]serializer.Option{serializer.WithPolicy(s.policy)}, opts...)...)
}

// RenderPage lists tools and renders the resulting envelope
func (s *Service) RenderPage(id int, cursor string, opts ...serializer.Option) ([]byte, error) {
	page, err := s.ListTools(id, cursor)
	if err != nil {
		return nil, err
	}
	return s.Render(page, opts...)
}

// ListToolsResponse returns a tools/list page as a jsonrpc.Response. Cursor
// errors are reported as invalid params, other failures as internal errors.
func (s *Service) ListToolsResponse(id int, cursor string) *jsonrpc.Response {
	page, err := s.ListTools(id, cursor)
	if err != nil {
		if errors.Is(err, ErrInvalidCursor) {
			return errorResponse(id, jsonrpc.NewInvalidParamsError(err.Error(), nil))
		}
		return errorResponse(id, jsonrpc.NewInternalError(err.Error(), nil))
	}
	response, err := conversion.ToResponse(page, s.policy)
	if err != nil {
		return errorResponse(id, jsonrpc.NewInternalError(err.Error(), nil))
	}
	return response
}

func errorResponse(id int, err *jsonrpc.Error) *jsonrpc.Response {
	return &jsonrpc.Response{Id: id, Jsonrpc: jsonrpc.Version, Error: err}
}
