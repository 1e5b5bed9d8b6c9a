package serializer

import (
	"fmt"
	"reflect"
)

// UnsupportedValueError reports a value that cannot be represented as JSON
type UnsupportedValueError struct {
	Path string
	Type reflect.Type
	Msg  string
}

func (e *UnsupportedValueError) Error() string {
	path := e.Path
	if path == "" {
		path = "$"
	}
	if e.Msg != "" {
		return fmt.Sprintf("unsupported value type %v at %s: %s", e.Type, path, e.Msg)
	}
	return fmt.Sprintf("unsupported value type %v at %s", e.Type, path)
}
