package schemas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseProtoSingleMessage(t *testing.T) {
	input := `syntax = "proto3";
package demo;

message User {
  int64 id = 1;
  string name = 2;
  repeated string tags = 3;
  bool active = 4;
  google.protobuf.Timestamp created_at = 5;
}`
	specs, err := ParseProto(input)
	require.NoError(t, err)
	require.Len(t, specs, 1)

	spec := specs[0]
	assert.Equal(t, "User", spec.Name)
	require.Len(t, spec.Fields, 5)

	assert.Equal(t, KindInt64, spec.Fields[0].Type.Kind)
	assert.Equal(t, KindString, spec.Fields[1].Type.Kind)
	assert.True(t, spec.Fields[2].Type.Array)
	assert.Equal(t, KindString, spec.Fields[2].Type.Elem.Kind)
	assert.Equal(t, KindBool, spec.Fields[3].Type.Kind)
	assert.Equal(t, KindTime, spec.Fields[4].Type.Kind)
}

func TestParseProtoMultipleMessages(t *testing.T) {
	input := `message A { int32 x = 1; }
message B {
  uint64 y = 1;
  fixed32 z = 2;
}`
	specs, err := ParseProto(input)
	require.NoError(t, err)
	require.Len(t, specs, 2)

	assert.Equal(t, "A", specs[0].Name)
	assert.Equal(t, "B", specs[1].Name)
	assert.Equal(t, KindUint64, specs[1].Fields[0].Type.Kind)
	assert.Equal(t, KindUint32, specs[1].Fields[1].Type.Kind)
}

func TestParseProtoUnknownTypeDegrades(t *testing.T) {
	specs, err := ParseProto("message M { SomeOther thing = 1; }")
	require.NoError(t, err)
	require.Len(t, specs[0].Fields, 1)
	assert.Equal(t, KindUnknown, specs[0].Fields[0].Type.Kind)
}

func TestParseProtoOptionalLabel(t *testing.T) {
	specs, err := ParseProto("message M {\n  optional string note = 1;\n}")
	require.NoError(t, err)
	f := specs[0].Fields[0]
	assert.Equal(t, "note", f.Name)
	assert.False(t, f.Type.Array)
}

func TestParseProtoNoMessage(t *testing.T) {
	_, err := ParseProto("service S {}")
	assert.Error(t, err)
}
