package serializer

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/viant/mcp-tooldef/mcp/naming"
)

type options struct {
	policy naming.Policy
	prefix string
	indent string
}

// Option customises Marshal
type Option func(*options)

// WithPolicy sets naming policy, camelCase is used by default
func WithPolicy(policy naming.Policy) Option {
	return func(o *options) {
		o.policy = policy
	}
}

// WithIndent produces indented output
func WithIndent(prefix, indent string) Option {
	return func(o *options) {
		o.prefix = prefix
		o.indent = indent
	}
}

// Marshal expands value with the naming policy and encodes it as JSON text.
func Marshal(value interface{}, opts ...Option) ([]byte, error) {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	if o.policy == nil {
		o.policy = naming.NewCamelCase()
	}
	expanded, err := Expand(value, o.policy)
	if err != nil {
		return nil, err
	}
	buf := &bytes.Buffer{}
	if err = encode(buf, expanded); err != nil {
		return nil, err
	}
	if o.prefix == "" && o.indent == "" {
		return buf.Bytes(), nil
	}
	out := &bytes.Buffer{}
	if err = json.Indent(out, buf.Bytes(), o.prefix, o.indent); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

// encode writes an expanded value
func encode(buf *bytes.Buffer, value interface{}) error {
	switch actual := value.(type) {
	case nil:
		buf.WriteString("null")
	case Object:
		buf.WriteByte('{')
		for i, field := range actual {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := encodeScalar(buf, field.Name); err != nil {
				return err
			}
			buf.WriteByte(':')
			if err := encode(buf, field.Value); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	case []interface{}:
		buf.WriteByte('[')
		for i, item := range actual {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := encode(buf, item); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case json.RawMessage:
		if err := json.Compact(buf, actual); err != nil {
			return fmt.Errorf("failed to compact raw message: %w", err)
		}
	default:
		return encodeScalar(buf, actual)
	}
	return nil
}

func encodeScalar(buf *bytes.Buffer, value interface{}) error {
	scalar := &bytes.Buffer{}
	encoder := json.NewEncoder(scalar)
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(value); err != nil {
		return err
	}
	buf.Write(bytes.TrimRight(scalar.Bytes(), "\n"))
	return nil
}
