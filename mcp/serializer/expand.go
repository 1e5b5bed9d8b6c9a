package serializer

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"sort"
	"strconv"

	"github.com/viant/mcp-tooldef/mcp/naming"
)

// Expand walks value and returns a plain structure made of Object, []interface{}
// and scalar leaves. Every object key is converted with policy exactly once,
// verbatim fields excepted.
func Expand(value interface{}, policy naming.Policy) (interface{}, error) {
	if policy == nil {
		policy = naming.Identity{}
	}
	e := &expander{policy: policy}
	return e.expand("", value)
}

type expander struct {
	policy naming.Policy
}

func (e *expander) expand(path string, value interface{}) (interface{}, error) {
	if value == nil {
		return nil, nil
	}
	rv := reflect.ValueOf(value)
	if (rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Map || rv.Kind() == reflect.Slice) && rv.IsNil() {
		return nil, nil
	}

	switch actual := value.(type) {
	case Representer:
		obj, err := actual.Representation()
		if err != nil {
			if path == "" {
				return nil, err
			}
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		return e.expandObject(path, obj)
	case Object:
		return e.expandObject(path, actual)
	case json.RawMessage:
		if !json.Valid(actual) {
			return nil, &UnsupportedValueError{Path: path, Type: rv.Type(), Msg: "invalid raw JSON"}
		}
		return actual, nil
	case json.Number:
		if _, err := actual.Float64(); err != nil {
			return nil, &UnsupportedValueError{Path: path, Type: rv.Type(), Msg: "invalid number"}
		}
		return actual, nil
	case string, bool,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64:
		return actual, nil
	case float32:
		return e.expandFloat(path, rv, float64(actual))
	case float64:
		return e.expandFloat(path, rv, actual)
	}

	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		return e.expand(path, rv.Elem().Interface())
	case reflect.Slice, reflect.Array:
		ret := make([]interface{}, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			item, err := e.expand(path+"["+strconv.Itoa(i)+"]", rv.Index(i).Interface())
			if err != nil {
				return nil, err
			}
			ret[i] = item
		}
		return ret, nil
	case reflect.Map:
		return e.expandMap(path, rv)
	case reflect.String:
		return rv.String(), nil
	case reflect.Bool:
		return rv.Bool(), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int(), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return rv.Uint(), nil
	case reflect.Float32, reflect.Float64:
		return e.expandFloat(path, rv, rv.Float())
	}
	return nil, &UnsupportedValueError{Path: path, Type: rv.Type()}
}

func (e *expander) expandFloat(path string, rv reflect.Value, f float64) (interface{}, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, &UnsupportedValueError{Path: path, Type: rv.Type(), Msg: strconv.FormatFloat(f, 'g', -1, 64)}
	}
	return f, nil
}

func (e *expander) expandObject(path string, obj Object) (interface{}, error) {
	ret := make(Object, 0, len(obj))
	seen := make(map[string]struct{}, len(obj))
	for _, field := range obj {
		name := field.Name
		if !field.Verbatim {
			name = e.policy.Convert(name)
		}
		if _, ok := seen[name]; ok {
			return nil, fmt.Errorf("%s: duplicate key %q", joinPath(path, name), name)
		}
		seen[name] = struct{}{}
		value, err := e.expand(joinPath(path, name), field.Value)
		if err != nil {
			return nil, err
		}
		ret = append(ret, Field{Name: name, Value: value, Verbatim: true})
	}
	return ret, nil
}

func (e *expander) expandMap(path string, rv reflect.Value) (interface{}, error) {
	type entry struct {
		name  string
		value reflect.Value
	}
	entries := make([]entry, 0, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		key := iter.Key()
		var name string
		switch key.Kind() {
		case reflect.String:
			name = e.policy.Convert(key.String())
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			name = strconv.FormatInt(key.Int(), 10)
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			name = strconv.FormatUint(key.Uint(), 10)
		default:
			return nil, &UnsupportedValueError{Path: path, Type: rv.Type(), Msg: "unsupported map key"}
		}
		entries = append(entries, entry{name: name, value: iter.Value()})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].name < entries[j].name })

	ret := make(Object, 0, len(entries))
	for i, item := range entries {
		if i > 0 && entries[i-1].name == item.name {
			return nil, fmt.Errorf("%s: duplicate key %q", joinPath(path, item.name), item.name)
		}
		value, err := e.expand(joinPath(path, item.name), item.value.Interface())
		if err != nil {
			return nil, err
		}
		ret = append(ret, Field{Name: item.name, Value: value, Verbatim: true})
	}
	return ret, nil
}

func joinPath(path, name string) string {
	if path == "" {
		return name
	}
	return path + "." + name
}
