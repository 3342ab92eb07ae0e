package modelgen

import (
	"fmt"
	"strings"

	"tostruct/pkg/schemas"
)

// TagStyle selects the persistence-tag convention attached to each field.
type TagStyle string

const (
	TagStylePlain TagStyle = "plain"
	TagStyleDB    TagStyle = "db"
	TagStyleGorm  TagStyle = "gorm"
	TagStyleXorm  TagStyle = "xorm"
)

// FieldTags builds the struct-tag map for one field plus the trailing line
// comment. Pure string construction: embedded quotes in comments and
// defaults are rewritten so the tag stays syntactically valid.
func FieldTags(f schemas.FieldSpec, style TagStyle) (map[string]string, string) {
	column := strings.ToLower(f.Name)

	jsonTag := column
	if f.Nullable {
		jsonTag += ",omitempty"
	}
	tags := map[string]string{"json": jsonTag}

	var commentParts []string
	if len(f.EnumValues) > 0 {
		commentParts = append(commentParts, "one of: "+strings.Join(f.EnumValues, ", "))
	}

	switch style {
	case TagStyleDB:
		tags["db"] = column
		if f.Default != "" {
			tags["default"] = escapeTagValue(f.Default)
		}
		if f.Comment != "" {
			commentParts = append([]string{f.Comment}, commentParts...)
		}

	case TagStyleGorm:
		clauses := []string{"column:" + column}
		if f.Comment != "" {
			clauses = append(clauses, "comment:"+escapeGormValue(f.Comment))
		}
		if f.Default != "" {
			clauses = append(clauses, "default:"+stripQuotes(f.Default))
		}
		tags["gorm"] = strings.Join(clauses, ";")

	case TagStyleXorm:
		clauses := []string{"'" + column + "'"}
		if f.Comment != "" {
			clauses = append(clauses, fmt.Sprintf("comment('%s')", escapeTagValue(f.Comment)))
		}
		if f.Default != "" {
			clauses = append(clauses, fmt.Sprintf("default(%s)", f.Default))
		}
		tags["xorm"] = strings.Join(clauses, " ")

	default: // TagStylePlain
		if f.Comment != "" {
			commentParts = append([]string{f.Comment}, commentParts...)
		}
		if f.Default != "" {
			commentParts = append(commentParts, "default: "+f.Default)
		}
	}

	return tags, strings.Join(commentParts, "; ")
}

// escapeTagValue keeps a value usable inside a backtick-quoted struct tag.
func escapeTagValue(v string) string {
	v = strings.ReplaceAll(v, "`", "'")
	return strings.ReplaceAll(v, `"`, "'")
}

// escapeGormValue additionally neutralizes the gorm clause separator.
func escapeGormValue(v string) string {
	return strings.ReplaceAll(escapeTagValue(v), ";", ",")
}

// stripQuotes removes one pair of surrounding quotes from a literal.
func stripQuotes(v string) string {
	if len(v) >= 2 {
		if (v[0] == '\'' && v[len(v)-1] == '\'') || (v[0] == '"' && v[len(v)-1] == '"') {
			return v[1 : len(v)-1]
		}
	}
	return v
}
