package matcher

import "strings"

// Match reports whether a tool name satisfies pattern. "*" matches every
// name, an empty pattern matches none, a trailing "*" is optional and any
// other pattern matches as a name prefix. Comma separated patterns match
// when any of them does.
func Match(pattern, name string) bool {
	for _, candidate := range strings.Split(pattern, ",") {
		if matchOne(strings.TrimSpace(candidate), name) {
			return true
		}
	}
	return false
}

func matchOne(pattern, name string) bool {
	if pattern == "*" {
		return true
	}
	if pattern == "" {
		return false
	}
	return strings.HasPrefix(name, strings.TrimSuffix(pattern, "*"))
}
