package tool

import "github.com/viant/mcp-tooldef/mcp/serializer"

// Property types
const (
	TypeString  = "string"
	TypeNumber  = "number"
	TypeInteger = "integer"
	TypeBoolean = "boolean"
	TypeObject  = "object"
	TypeArray   = "array"
)

// Property describes a single tool input parameter
type Property struct {
	Name        string
	Type        string
	Description string
	Required    bool
}

// PropertyOption customises a property
type PropertyOption func(*Property)

// Required marks property as required
func Required() PropertyOption {
	return RequiredIf(true)
}

// RequiredIf sets required flag
func RequiredIf(required bool) PropertyOption {
	return func(p *Property) {
		p.Required = required
	}
}

// NewProperty creates a property; name and type are mandatory, description
// may be empty.
func NewProperty(name, typ, description string, opts ...PropertyOption) (*Property, error) {
	switch {
	case name == "":
		return nil, missingArgument("name")
	case typ == "":
		return nil, missingArgument("type")
	}
	ret := &Property{Name: name, Type: typ, Description: description}
	for _, opt := range opts {
		opt(ret)
	}
	return ret, nil
}

// Representation returns property schema. Name and required flag are
// promoted to the owning input.
func (p *Property) Representation() (serializer.Object, error) {
	return serializer.Object{}.
		Add("type", p.Type).
		Add("description", p.Description), nil
}

// Clone returns a copy of the property
func (p *Property) Clone() *Property {
	if p == nil {
		return nil
	}
	ret := *p
	return &ret
}
