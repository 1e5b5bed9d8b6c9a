package naming

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	// PolicyCamel identifies the CamelCase policy in configuration.
	PolicyCamel = "camel"
	// PolicyNone identifies the Identity policy in configuration.
	PolicyNone = "none"
)

// Policy converts a field name into its wire form.
type Policy interface {
	Convert(name string) string
}

// Identity leaves every name as is.
type Identity struct{}

func (Identity) Convert(name string) string { return name }

// CamelCase converts snake_case names into camelCase.  Exempt names are
// returned unchanged.
type CamelCase struct {
	exempt map[string]struct{}
}

// NewCamelCase creates a camelCase policy with optional exempt names
func NewCamelCase(exempt ...string) *CamelCase {
	ret := &CamelCase{}
	ret.Exempt(exempt...)
	return ret
}

// Exempt marks names that must never be converted.
func (c *CamelCase) Exempt(names ...string) *CamelCase {
	if len(names) == 0 {
		return c
	}
	if c.exempt == nil {
		c.exempt = make(map[string]struct{}, len(names))
	}
	for _, name := range names {
		c.exempt[name] = struct{}{}
	}
	return c
}

// IsExempt reports whether name was marked exempt
func (c *CamelCase) IsExempt(name string) bool {
	if c == nil || c.exempt == nil {
		return false
	}
	_, ok := c.exempt[name]
	return ok
}

func (c *CamelCase) Convert(name string) string {
	if name == "" || c.IsExempt(name) {
		return name
	}
	return Camelize(name)
}

// Camelize keeps the first underscore separated segment and capitalizes the
// first letter of every following one.
func Camelize(name string) string {
	if !strings.Contains(name, "_") {
		return name
	}
	segments := strings.Split(name, "_")
	var b strings.Builder
	b.Grow(len(name))
	b.WriteString(segments[0])
	for _, segment := range segments[1:] {
		if segment == "" {
			continue
		}
		r, size := utf8.DecodeRuneInString(segment)
		b.WriteRune(unicode.ToUpper(r))
		b.WriteString(segment[size:])
	}
	return b.String()
}

// Lookup resolves a policy by its configuration name. An empty name selects
// the camelCase policy.
func Lookup(name string, exempt ...string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", PolicyCamel, "camelcase":
		return NewCamelCase(exempt...), nil
	case PolicyNone, "identity":
		return Identity{}, nil
	}
	return nil, fmt.Errorf("unknown naming policy: %q", name)
}
