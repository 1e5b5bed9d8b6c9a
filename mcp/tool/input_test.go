package tool

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/mcp-tooldef/mcp/serializer"
)

func TestInput_Property(t *testing.T) {
	input := NewInput("")
	ret := input.Property("location", TypeString, "City name", Required())
	assert.Same(t, input, ret)
	assert.EqualValues(t, TypeObject, input.Type)
	require.Len(t, input.Properties, 1)

	prop := input.Properties[0]
	assert.EqualValues(t, "location", prop.Name)
	assert.EqualValues(t, TypeString, prop.Type)
	assert.EqualValues(t, "City name", prop.Description)
	assert.True(t, prop.Required)
	assert.Same(t, prop, input.Lookup("location"))
	assert.Nil(t, input.Lookup("unknown"))
}

func TestInput_RequiredNames(t *testing.T) {
	input := NewInput(TypeObject).
		Property("b_prop", TypeString, "B", Required()).
		Property("a_prop", TypeInteger, "A").
		Property("c_prop", TypeBoolean, "C", Required())
	assert.EqualValues(t, []string{"b_prop", "c_prop"}, input.RequiredNames())
	assert.NotNil(t, NewInput("").RequiredNames())
}

func TestInput_Marshal(t *testing.T) {
	testCases := []struct {
		name   string
		input  *Input
		expect string
	}{
		{
			name:   "empty",
			input:  NewInput(""),
			expect: `{"type":"object","properties":{},"required":[]}`,
		},
		{
			name: "property names are kept",
			input: NewInput("").
				Property("test_property", TypeString, "A test property", Required()).
				Property("max_count", TypeInteger, "Limit"),
			expect: `{"type":"object","properties":{"test_property":{"type":"string","description":"A test property"},"max_count":{"type":"integer","description":"Limit"}},"required":["test_property"]}`,
		},
		{
			name: "repeated name keeps first position and last schema",
			input: NewInput("").
				Property("location", TypeString, "City name", Required()).
				Property("units", TypeString, "Units").
				Property("location", TypeInteger, "Zip code"),
			expect: `{"type":"object","properties":{"location":{"type":"integer","description":"Zip code"},"units":{"type":"string","description":"Units"}},"required":["location"]}`,
		},
		{
			name:   "nil property is skipped",
			input:  NewInput("").Add(nil).Property("location", TypeString, "City name", Required()),
			expect: `{"type":"object","properties":{"location":{"type":"string","description":"City name"}},"required":["location"]}`,
		},
		{
			name:   "empty description",
			input:  NewInput("").Property("flag", TypeBoolean, ""),
			expect: `{"type":"object","properties":{"flag":{"type":"boolean","description":""}},"required":[]}`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			data, err := serializer.Marshal(tc.input)
			require.NoError(t, err)
			assert.EqualValues(t, tc.expect, string(data))
		})
	}
}

func TestInput_Errors(t *testing.T) {
	input := NewInput("").
		Property("location", TypeString, "City name").
		Property("", TypeString, "missing name")
	require.Len(t, input.Properties, 1)
	err := input.Err()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMissingArgument))

	_, err = serializer.Marshal(New("weather", "desc").Input("", func(in *Input) { *in = *input }))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "inputSchema")
}

func TestInput_Validate(t *testing.T) {
	input := NewInput("").
		Property("location", TypeString, "City name").
		Property("location", TypeString, "Duplicate")
	assert.NoError(t, input.Err())
	err := input.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate name")
}

func TestInput_RepeatedName_Tool(t *testing.T) {
	aTool := New("weather", "desc").Input("", func(in *Input) {
		in.Property("location", TypeString, "City name", Required()).
			Property("location", TypeString, "City or zip")
	})
	data, err := serializer.Marshal(aTool)
	require.NoError(t, err)
	assert.EqualValues(t, `{"name":"weather","description":"desc","inputSchema":{"type":"object","properties":{"location":{"type":"string","description":"City or zip"}},"required":["location"]}}`, string(data))
	assert.Error(t, aTool.Validate())
}

func TestInput_NilProperty(t *testing.T) {
	input := NewInput("").Add(nil)
	assert.NotPanics(t, func() {
		assert.Empty(t, input.RequiredNames())
		assert.Nil(t, input.Lookup("location"))
	})
	data, err := serializer.Marshal(input)
	require.NoError(t, err)
	assert.EqualValues(t, `{"type":"object","properties":{},"required":[]}`, string(data))

	err = input.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "property[0]: nil")
}
