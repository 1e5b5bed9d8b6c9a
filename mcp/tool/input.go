package tool

import (
	"errors"
	"fmt"

	"github.com/viant/mcp-tooldef/mcp/serializer"
)

// Input represents a tool input schema with an ordered list of properties
type Input struct {
	Type       string
	Properties []*Property
	errs       []error
}

// NewInput creates an input schema, type defaults to "object"
func NewInput(typ string) *Input {
	if typ == "" {
		typ = TypeObject
	}
	return &Input{Type: typ}
}

// Property builds and appends a property. Construction errors are kept and
// reported by Err and during serialization.
func (i *Input) Property(name, typ, description string, opts ...PropertyOption) *Input {
	prop, err := NewProperty(name, typ, description, opts...)
	if err != nil {
		i.errs = append(i.errs, fmt.Errorf("property[%d]: %w", len(i.Properties)+len(i.errs), err))
		return i
	}
	i.Properties = append(i.Properties, prop)
	return i
}

// Add appends already constructed properties
func (i *Input) Add(props ...*Property) *Input {
	i.Properties = append(i.Properties, props...)
	return i
}

// Err returns accumulated property construction errors
func (i *Input) Err() error {
	return errors.Join(i.errs...)
}

// Lookup returns property by name
func (i *Input) Lookup(name string) *Property {
	for _, prop := range i.Properties {
		if prop != nil && prop.Name == name {
			return prop
		}
	}
	return nil
}

// RequiredNames returns names of required properties in insertion order
func (i *Input) RequiredNames() []string {
	ret := make([]string, 0)
	for _, prop := range i.Properties {
		if prop != nil && prop.Required {
			ret = append(ret, prop.Name)
		}
	}
	return ret
}

// Validate checks construction errors and property name uniqueness.
func (i *Input) Validate() error {
	errs := append([]error{}, i.errs...)
	seen := make(map[string]bool, len(i.Properties))
	for idx, prop := range i.Properties {
		if prop == nil {
			errs = append(errs, fmt.Errorf("property[%d]: nil", idx))
			continue
		}
		if seen[prop.Name] {
			errs = append(errs, fmt.Errorf("property[%d]: duplicate name %q", idx, prop.Name))
		}
		seen[prop.Name] = true
	}
	return errors.Join(errs...)
}

// Representation returns the keyed property form:
// {type, properties: {name: {type, description}}, required: [name...]}
// A repeated property name keeps the position of its first occurrence and the
// schema of its last one.
func (i *Input) Representation() (serializer.Object, error) {
	if err := i.Err(); err != nil {
		return nil, err
	}
	properties := serializer.Object{}
	positions := make(map[string]int, len(i.Properties))
	for _, prop := range i.Properties {
		if prop == nil {
			continue
		}
		if pos, ok := positions[prop.Name]; ok {
			properties[pos].Value = prop
			continue
		}
		positions[prop.Name] = len(properties)
		properties = properties.AddVerbatim(prop.Name, prop)
	}
	return serializer.Object{}.
		Add("type", i.Type).
		Add("properties", properties).
		Add("required", i.RequiredNames()), nil
}

// Clone returns a deep copy of the input
func (i *Input) Clone() *Input {
	if i == nil {
		return nil
	}
	ret := &Input{Type: i.Type, errs: append([]error{}, i.errs...)}
	if i.Properties != nil {
		ret.Properties = make([]*Property, len(i.Properties))
		for idx, prop := range i.Properties {
			ret.Properties[idx] = prop.Clone()
		}
	}
	return ret
}
