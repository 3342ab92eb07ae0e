package modelgen

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"tostruct/pkg/schemas"
)

func TestFieldTagsPlain(t *testing.T) {
	f := schemas.FieldSpec{Name: "UserName", Comment: "display name", Default: "'anon'"}
	tags, comment := FieldTags(f, TagStylePlain)

	assert.Equal(t, map[string]string{"json": "username"}, tags)
	assert.Equal(t, "display name; default: 'anon'", comment)
}

func TestFieldTagsNullableOmitempty(t *testing.T) {
	f := schemas.FieldSpec{Name: "note", Nullable: true}
	tags, _ := FieldTags(f, TagStylePlain)
	assert.Equal(t, "note,omitempty", tags["json"])
}

func TestFieldTagsDB(t *testing.T) {
	f := schemas.FieldSpec{Name: "id", Default: "0"}
	tags, _ := FieldTags(f, TagStyleDB)

	assert.Equal(t, "id", tags["db"])
	assert.Equal(t, "id", tags["json"])
	assert.Equal(t, "0", tags["default"])
}

func TestFieldTagsGorm(t *testing.T) {
	f := schemas.FieldSpec{Name: "level", Comment: `tier; "gold" or above`, Default: "'basic'"}
	tags, _ := FieldTags(f, TagStyleGorm)

	// Default loses its surrounding quotes, the comment stays tag-safe.
	assert.Equal(t, "column:level;comment:tier, 'gold' or above;default:basic", tags["gorm"])
}

func TestFieldTagsXorm(t *testing.T) {
	f := schemas.FieldSpec{Name: "level", Comment: "user tier", Default: "'basic'"}
	tags, _ := FieldTags(f, TagStyleXorm)

	assert.Equal(t, "'level' comment('user tier') default('basic')", tags["xorm"])
}

func TestFieldTagsEnumComment(t *testing.T) {
	f := schemas.FieldSpec{Name: "level", EnumValues: []string{"basic", "pro"}}
	_, comment := FieldTags(f, TagStylePlain)
	assert.Equal(t, "one of: basic, pro", comment)
}

func TestStripQuotes(t *testing.T) {
	assert.Equal(t, "x", stripQuotes("'x'"))
	assert.Equal(t, "x", stripQuotes(`"x"`))
	assert.Equal(t, "0", stripQuotes("0"))
	assert.Equal(t, "'", stripQuotes("'"))
}
