package serializer

import "bytes"

// Field represents a single object member. Verbatim fields keep their name
// regardless of the active naming policy.
type Field struct {
	Name     string
	Value    interface{}
	Verbatim bool
}

// Object is an ordered JSON object
type Object []Field

// Add returns a new object with a field whose name is subject to the naming
// policy. The receiver is never modified.
func (o Object) Add(name string, value interface{}) Object {
	return append(o[:len(o):len(o)], Field{Name: name, Value: value})
}

// AddVerbatim returns a new object with a field whose name is exempt from
// conversion. The receiver is never modified.
func (o Object) AddVerbatim(name string, value interface{}) Object {
	return append(o[:len(o):len(o)], Field{Name: name, Value: value, Verbatim: true})
}

// Get returns the value of the first field with the given name
func (o Object) Get(name string) (interface{}, bool) {
	for _, f := range o {
		if f.Name == name {
			return f.Value, true
		}
	}
	return nil, false
}

// Names returns field names in order
func (o Object) Names() []string {
	names := make([]string, len(o))
	for i, f := range o {
		names[i] = f.Name
	}
	return names
}

// MarshalJSON encodes the object preserving field order. Names are written
// as stored; use Marshal to apply a naming policy.
func (o Object) MarshalJSON() ([]byte, error) {
	expanded, err := Expand(o, verbatimPolicy{})
	if err != nil {
		return nil, err
	}
	buf := &bytes.Buffer{}
	if err := encode(buf, expanded); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Representer is implemented by types that describe themselves as an
// ordered object.
type Representer interface {
	Representation() (Object, error)
}

type verbatimPolicy struct{}

func (verbatimPolicy) Convert(name string) string { return name }
