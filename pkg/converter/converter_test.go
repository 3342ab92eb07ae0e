package converter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tostruct/pkg/modelgen"
	"tostruct/pkg/schemas"
)

func TestValidateEmptyInputAllFormats(t *testing.T) {
	for _, f := range []schemas.Format{
		schemas.FormatJSON, schemas.FormatYAML, schemas.FormatSQL,
		schemas.FormatProto, schemas.FormatXML, schemas.FormatCSV,
	} {
		res := Validate("", f)
		assert.False(t, res.IsValid, "format %s", f)
		assert.NotEmpty(t, res.Error)
	}
}

func TestConvertJSON(t *testing.T) {
	out, err := Convert(`{"id": 1, "name": "alice"}`, schemas.FormatJSON, nil)
	require.NoError(t, err)

	assert.Contains(t, out, "package model")
	assert.Contains(t, out, "type AutoGenerated struct")
	assert.Contains(t, out, "Id int32")
	assert.Contains(t, out, "Name string")
}

func TestConvertSQLRequiresDialect(t *testing.T) {
	input := "CREATE TABLE t (n INT)"

	_, err := Convert(input, schemas.FormatSQL, nil)
	assert.ErrorIs(t, err, ErrMissingDialect)

	out, err := Convert(input, schemas.FormatSQL, &Options{Dialect: schemas.DialectMySQL})
	require.NoError(t, err)
	assert.Contains(t, out, "N int32")
}

func TestConvertSQLUnsignedMySQL(t *testing.T) {
	out, err := Convert("CREATE TABLE t (n INT UNSIGNED)", schemas.FormatSQL,
		&Options{Dialect: schemas.DialectMySQL, TagStyle: modelgen.TagStyleGorm})
	require.NoError(t, err)

	assert.Contains(t, out, "N uint32")
	assert.Contains(t, out, `gorm:"column:n"`)
}

func TestConvertProtoMultipleStructs(t *testing.T) {
	out, err := Convert("message A { int32 x = 1; }\nmessage B { string y = 1; }",
		schemas.FormatProto, nil)
	require.NoError(t, err)

	assert.Contains(t, out, "type A struct")
	assert.Contains(t, out, "type B struct")
}

func TestConvertXML(t *testing.T) {
	out, err := Convert("<user><id>1</id><tag>a</tag><tag>b</tag></user>",
		schemas.FormatXML, nil)
	require.NoError(t, err)

	assert.Contains(t, out, "type User struct")
	assert.Contains(t, out, "Tag []string")
}

func TestConvertCSV(t *testing.T) {
	out, err := Convert("id,name\n1,alice\n", schemas.FormatCSV, &Options{RootName: "Row"})
	require.NoError(t, err)

	assert.Contains(t, out, "type Row struct")
	assert.Contains(t, out, "Id int32")
	assert.Contains(t, out, "Name string")
}

func TestConvertUnsupportedFormat(t *testing.T) {
	_, err := Convert("x", schemas.Format("toml"), nil)
	assert.Error(t, err)
}

func TestConvertDeterministic(t *testing.T) {
	input := Example(schemas.FormatSQL)
	opts := &Options{Dialect: schemas.DialectMySQL, TagStyle: modelgen.TagStyleGorm}

	a, err := Convert(input, schemas.FormatSQL, opts)
	require.NoError(t, err)
	b, err := Convert(input, schemas.FormatSQL, opts)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestRunReportsPosition(t *testing.T) {
	res := Run("{\n  \"a\": oops\n}", schemas.FormatJSON, nil)
	require.False(t, res.Success)
	require.NotNil(t, res.Error)
	assert.Equal(t, 2, res.Error.Line)
}

func TestRunSuccess(t *testing.T) {
	res := Run(`{"a": 1}`, schemas.FormatJSON, nil)
	assert.True(t, res.Success)
	assert.Nil(t, res.Error)
	assert.NotEmpty(t, res.Output)
}

func TestExamplesConvertCleanly(t *testing.T) {
	for _, f := range []schemas.Format{
		schemas.FormatJSON, schemas.FormatYAML, schemas.FormatSQL,
		schemas.FormatProto, schemas.FormatXML, schemas.FormatCSV,
	} {
		t.Run(string(f), func(t *testing.T) {
			sample := Example(f)
			require.NotEmpty(t, sample)

			opts := &Options{Dialect: schemas.DialectMySQL}
			out, err := Convert(sample, f, opts)
			require.NoError(t, err)
			assert.NotEmpty(t, out)
		})
	}
}
