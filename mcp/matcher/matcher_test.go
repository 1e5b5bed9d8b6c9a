package matcher

import "testing"

func TestMatch(t *testing.T) {
	var testCases = []struct {
		pattern   string
		candidate string
		matched   bool
	}{
		{"*", "anything", true},
		{"", "anything", false},

		// Exact matches
		{"get_weather", "get_weather", true},
		{"get_weather", "get_weather_forecast", true},

		// Prefix matches
		{"get_", "get_weather", true},
		{"get_*", "get_weather", true},
		{"set_", "get_weather", false},

		// Alternatives
		{"set_*, get_*", "get_weather", true},
		{"set_*,ping", "ping", true},
		{"set_*,", "get_weather", false},
	}

	for i, tc := range testCases {
		if got := Match(tc.pattern, tc.candidate); got != tc.matched {
			t.Fatalf("[%d] Match(%q, %q) = %v; expected %v", i, tc.pattern, tc.candidate, got, tc.matched)
		}
	}
}
