package schemas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestParseJSONFieldOrder(t *testing.T) {
	spec, err := ParseJSON(`{"zeta": 1, "alpha": "x", "mike": true}`, "Root")
	require.NoError(t, err)

	require.Len(t, spec.Fields, 3)
	assert.Equal(t, "zeta", spec.Fields[0].Name)
	assert.Equal(t, "alpha", spec.Fields[1].Name)
	assert.Equal(t, "mike", spec.Fields[2].Name)
}

func TestParseJSONIntegerBoundary(t *testing.T) {
	spec, err := ParseJSON(`{"a": 2147483647, "b": 2147483648, "c": -2147483649}`, "Root")
	require.NoError(t, err)

	assert.Equal(t, KindInt32, spec.Fields[0].Type.Kind)
	assert.Equal(t, KindInt64, spec.Fields[1].Type.Kind)
	assert.Equal(t, KindInt64, spec.Fields[2].Type.Kind)
}

func TestParseJSONScalars(t *testing.T) {
	spec, err := ParseJSON(`{"s": "x", "b": false, "f": 1.5, "n": null}`, "Root")
	require.NoError(t, err)

	assert.Equal(t, KindString, spec.Fields[0].Type.Kind)
	assert.Equal(t, KindBool, spec.Fields[1].Type.Kind)
	assert.Equal(t, KindFloat64, spec.Fields[2].Type.Kind)
	assert.Equal(t, KindUnknown, spec.Fields[3].Type.Kind)
	assert.True(t, spec.Fields[3].Nullable)
}

func TestParseJSONNestedObject(t *testing.T) {
	spec, err := ParseJSON(`{"address": {"city": "Berlin", "zip": 10115}}`, "User")
	require.NoError(t, err)

	require.Len(t, spec.Nested, 1)
	assert.Equal(t, "UserAddress", spec.Nested[0].Name)
	require.Len(t, spec.Fields, 1)
	assert.Equal(t, KindStruct, spec.Fields[0].Type.Kind)
	assert.Equal(t, "UserAddress", spec.Fields[0].Type.StructName)
}

func TestParseJSONArrays(t *testing.T) {
	spec, err := ParseJSON(`{"empty": [], "same": [1, 2], "mixed": [1, "x"]}`, "Root")
	require.NoError(t, err)

	empty := spec.Fields[0].Type
	assert.True(t, empty.Array)
	assert.Equal(t, KindUnknown, empty.Elem.Kind)

	same := spec.Fields[1].Type
	assert.True(t, same.Array)
	assert.Equal(t, KindInt32, same.Elem.Kind)

	mixed := spec.Fields[2].Type
	assert.True(t, mixed.Array)
	assert.Equal(t, KindUnknown, mixed.Elem.Kind)
}

func TestParseJSONTopLevelArrayOfObjects(t *testing.T) {
	spec, err := ParseJSON(`[{"id": 1}, {"id": 2}]`, "Record")
	require.NoError(t, err)
	assert.Equal(t, "Record", spec.Name)
	require.Len(t, spec.Fields, 1)
	assert.Equal(t, "id", spec.Fields[0].Name)
}

func TestParseJSONScalarRootRejected(t *testing.T) {
	_, err := ParseJSON(`42`, "Root")
	assert.Error(t, err)
}

func TestParseYAMLTimestamp(t *testing.T) {
	spec, err := ParseYAML("joined: 2023-04-01T09:30:00Z\nname: alice\n", "Root")
	require.NoError(t, err)

	assert.Equal(t, KindTime, spec.Fields[0].Type.Kind)
	assert.Equal(t, KindString, spec.Fields[1].Type.Kind)
}

// A cyclic node graph cannot be written as a literal, so it is constructed
// in memory. Inference must terminate and break the cycle with the unknown
// kind.
func TestStructFromValueCyclicGraph(t *testing.T) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	key := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: "self"}
	node.Content = []*yaml.Node{key, node}

	spec, err := StructFromValue("Root", node)
	require.NoError(t, err)

	require.Len(t, spec.Fields, 1)
	assert.Equal(t, "self", spec.Fields[0].Name)
	assert.Equal(t, KindUnknown, spec.Fields[0].Type.Kind)
	assert.Empty(t, spec.Nested)
}

// Sibling branches carry independent visited sets: the same anchored
// mapping may appear under two keys and both get materialized.
func TestParseYAMLSharedAnchor(t *testing.T) {
	input := "a: &x\n  v: 1\nb: *x\n"
	spec, err := ParseYAML(input, "Root")
	require.NoError(t, err)

	require.Len(t, spec.Fields, 2)
	assert.Equal(t, KindStruct, spec.Fields[0].Type.Kind)
	assert.Equal(t, KindStruct, spec.Fields[1].Type.Kind)
	assert.Len(t, spec.Nested, 2)
}

func TestInferLeaf(t *testing.T) {
	tests := []struct {
		value string
		kind  CanonicalKind
	}{
		{"true", KindBool},
		{"false", KindBool},
		{"42", KindInt32},
		{"2147483648", KindInt64},
		{"1.25", KindFloat64},
		{"2023-04-01", KindTime},
		{"2023-04-01T10:00:00Z", KindTime},
		{"alice", KindString},
		{"", KindString},
	}
	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			assert.Equal(t, tt.kind, InferLeaf(tt.value).Kind)
		})
	}
}

func TestBigCamelStyle(t *testing.T) {
	assert.Equal(t, "UserId", BigCamelStyle("user_id"))
	assert.Equal(t, "FirstName", BigCamelStyle("first name"))
	assert.Equal(t, "CreatedAt", BigCamelStyle("created-at"))
	assert.Equal(t, "Id", BigCamelStyle("id"))
}

func TestSnakeStyle(t *testing.T) {
	assert.Equal(t, "user_name", SnakeStyle("userName"))
	assert.Equal(t, "id", SnakeStyle("id"))
}
