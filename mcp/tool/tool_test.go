package tool

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTool_Input(t *testing.T) {
	aTool := New("test_tool", "A test tool")
	assert.Nil(t, aTool.InputSchema)

	ret := aTool.Input("", func(in *Input) {
		in.Property("test_property", TypeString, "A test property", Required())
	})
	assert.Same(t, aTool, ret)
	require.NotNil(t, aTool.InputSchema)
	first := aTool.InputSchema

	aTool.Input("array", func(in *Input) {
		in.Property("other", TypeNumber, "Another property")
	})
	assert.Same(t, first, aTool.InputSchema)
	assert.EqualValues(t, TypeObject, aTool.InputSchema.Type)
	assert.EqualValues(t, []string{"test_property", "other"}, []string{
		aTool.InputSchema.Properties[0].Name,
		aTool.InputSchema.Properties[1].Name,
	})

	aTool.Input("", nil)
	assert.Same(t, first, aTool.InputSchema)
}

func TestTool_MarshalJSON(t *testing.T) {
	testCases := []struct {
		name   string
		tool   *Tool
		expect string
	}{
		{
			name:   "without schema",
			tool:   New("ping", "Ping & pong"),
			expect: `{"name":"ping","description":"Ping & pong","inputSchema":null}`,
		},
		{
			name: "with schema",
			tool: New("get_weather", "Get weather").Input("", func(in *Input) {
				in.Property("location", TypeString, "City", Required())
			}),
			expect: `{"name":"get_weather","description":"Get weather","inputSchema":{"type":"object","properties":{"location":{"type":"string","description":"City"}},"required":["location"]}}`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			data, err := json.Marshal(tc.tool)
			require.NoError(t, err)
			assert.JSONEq(t, tc.expect, string(data))
		})
	}
}

func TestTool_Serialized(t *testing.T) {
	aTool := New("test_tool", "A test tool").Input("", func(in *Input) {
		in.Property("location", TypeString, "City name", Required())
	})
	data, err := aTool.MarshalJSON()
	require.NoError(t, err)

	var parsed map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &parsed))
	assert.EqualValues(t, "test_tool", parsed["name"])
	assert.EqualValues(t, "A test tool", parsed["description"])

	schema, ok := parsed["inputSchema"].(map[string]interface{})
	require.True(t, ok)
	assert.EqualValues(t, "object", schema["type"])
	properties := schema["properties"].(map[string]interface{})
	location := properties["location"].(map[string]interface{})
	assert.EqualValues(t, "string", location["type"])
	assert.EqualValues(t, "City name", location["description"])
	assert.EqualValues(t, []interface{}{"location"}, schema["required"])
}

func TestTool_Validate(t *testing.T) {
	assert.NoError(t, New("ok", "desc").Validate())
	assert.ErrorIs(t, New("", "desc").Validate(), ErrMissingArgument)
}

func TestTool_Clone(t *testing.T) {
	original := New("get_weather", "Get weather").Input("", func(in *Input) {
		in.Property("location", TypeString, "City", Required())
	})
	clone := original.Clone()
	require.NotNil(t, clone.InputSchema)
	assert.NotSame(t, original.InputSchema, clone.InputSchema)
	assert.NotSame(t, original.InputSchema.Properties[0], clone.InputSchema.Properties[0])

	clone.InputSchema.Property("units", TypeString, "Units")
	clone.InputSchema.Properties[0].Description = "changed"
	assert.Len(t, original.InputSchema.Properties, 1)
	assert.EqualValues(t, "City", original.InputSchema.Properties[0].Description)

	assert.Nil(t, New("ping", "Ping").Clone().InputSchema)
	assert.Nil(t, (*Tool)(nil).Clone())
}
