package schemas

import (
	"strings"

	"github.com/thorn-jmh/errorst"
)

// Table-level entries whose leading keyword means "not a column".
var tableConstraintKeywords = map[string]bool{
	"PRIMARY":    true,
	"FOREIGN":    true,
	"UNIQUE":     true,
	"CHECK":      true,
	"INDEX":      true,
	"KEY":        true,
	"CONSTRAINT": true,
}

// ParseSQL extracts a StructSpec from a CREATE TABLE statement. The scanner
// tolerates IF NOT EXISTS, quoted identifiers and nested parentheses inside
// type parameters; it covers the flat-to-moderate DDL subset only.
func ParseSQL(input string, dialect Dialect) (*StructSpec, error) {
	tableName, body, err := splitCreateTable(strings.TrimSpace(input))
	if err != nil {
		return nil, err
	}

	spec := &StructSpec{Name: BigCamelStyle(tableName)}
	for _, entry := range splitColumnEntries(body) {
		field, ok := parseColumnEntry(entry, dialect)
		if !ok {
			continue
		}
		spec.AddField(field)
	}
	if len(spec.Fields) == 0 {
		return nil, errorst.Wrap(ErrNoColumns, "table %s has no parseable columns", tableName)
	}
	return spec, nil
}

// splitCreateTable returns the table name and the parenthesized column-list
// body of a CREATE TABLE statement.
func splitCreateTable(stmt string) (name, body string, err error) {
	if !hasPrefixFold(stmt, "CREATE TABLE") {
		return "", "", errorst.Wrap(ErrNoTable, "statement must start with CREATE TABLE")
	}
	rest := strings.TrimSpace(stmt[len("CREATE TABLE"):])
	if hasPrefixFold(rest, "IF NOT EXISTS") {
		rest = strings.TrimSpace(rest[len("IF NOT EXISTS"):])
	}

	name, rest = readQualifiedIdentifier(rest)
	if name == "" {
		return "", "", errorst.Wrap(ErrNoTable, "missing table name")
	}

	open := strings.IndexByte(rest, '(')
	if open < 0 {
		return "", "", errorst.Wrap(ErrNoColumns, "missing column list for table %s", name)
	}
	body, ok := balancedBody(rest[open:])
	if !ok {
		return "", "", errorst.Wrap(ErrNoColumns, "unterminated column list for table %s", name)
	}
	return name, body, nil
}

// readQualifiedIdentifier consumes a possibly schema-qualified, possibly
// quoted identifier and returns its last segment plus the remaining input.
func readQualifiedIdentifier(s string) (string, string) {
	var last string
	for {
		s = strings.TrimLeft(s, " \t\r\n")
		if s == "" {
			return last, s
		}
		var seg string
		switch s[0] {
		case '`', '"':
			quote := s[0]
			end := strings.IndexByte(s[1:], quote)
			if end < 0 {
				return last, s
			}
			seg, s = s[1:1+end], s[2+end:]
		case '[':
			end := strings.IndexByte(s, ']')
			if end < 0 {
				return last, s
			}
			seg, s = s[1:end], s[end+1:]
		default:
			i := 0
			for i < len(s) && !strings.ContainsRune(" \t\r\n(.", rune(s[i])) {
				i++
			}
			seg, s = s[:i], s[i:]
		}
		last = seg
		if strings.HasPrefix(s, ".") {
			s = s[1:]
			continue
		}
		return last, s
	}
}

// balancedBody takes input starting at '(' and returns the inner text of
// the balanced group, honoring quotes and nested parentheses.
func balancedBody(s string) (string, bool) {
	depth := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\'', '"', '`':
			i += quotedSpan(s[i:]) - 1
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return s[1:i], true
			}
		}
	}
	return "", false
}

// quotedSpan returns the length of the quoted literal starting at s[0],
// treating a doubled quote as an escape.
func quotedSpan(s string) int {
	quote := s[0]
	for i := 1; i < len(s); i++ {
		if s[i] == '\\' && quote != '`' {
			i++
			continue
		}
		if s[i] == quote {
			if i+1 < len(s) && s[i+1] == quote {
				i++
				continue
			}
			return i + 1
		}
	}
	return len(s)
}

// splitColumnEntries splits the column-list body on top-level commas.
func splitColumnEntries(body string) []string {
	var entries []string
	depth, start := 0, 0
	for i := 0; i < len(body); i++ {
		switch body[i] {
		case '\'', '"', '`':
			i += quotedSpan(body[i:]) - 1
		case '(':
			depth++
		case ')':
			depth--
		case ',':
			if depth == 0 {
				entries = append(entries, body[start:i])
				start = i + 1
			}
		}
	}
	entries = append(entries, body[start:])

	out := entries[:0]
	for _, e := range entries {
		if strings.TrimSpace(e) != "" {
			out = append(out, e)
		}
	}
	return out
}

// isTableConstraint reports whether an entry's leading token is a
// table-level constraint keyword rather than a column name.
func isTableConstraint(entry string) bool {
	toks := scanSQLTokens(entry)
	if len(toks) == 0 {
		return true
	}
	return !toks[0].quoted && tableConstraintKeywords[strings.ToUpper(toks[0].text)]
}

type sqlToken struct {
	text   string
	quoted bool
	quote  byte
}

// scanSQLTokens splits one column entry into identifier words, quoted
// literals and single-character punctuation.
func scanSQLTokens(s string) []sqlToken {
	var toks []sqlToken
	for i := 0; i < len(s); {
		c := s[i]
		switch {
		case c == ' ' || c == '\t' || c == '\r' || c == '\n':
			i++
		case c == '\'' || c == '"' || c == '`':
			span := quotedSpan(s[i:])
			text := s[i+1 : i+span]
			if span >= 2 && s[i+span-1] == c {
				text = s[i+1 : i+span-1]
			}
			text = strings.ReplaceAll(text, string(c)+string(c), string(c))
			toks = append(toks, sqlToken{text: text, quoted: true, quote: c})
			i += span
		case c == '(' || c == ')' || c == ',':
			toks = append(toks, sqlToken{text: string(c)})
			i++
		case c == '[':
			end := strings.IndexByte(s[i:], ']')
			if end < 0 {
				end = len(s) - i - 1
			}
			toks = append(toks, sqlToken{text: s[i+1 : i+end], quoted: true, quote: '['})
			i += end + 1
		default:
			j := i
			for j < len(s) && !strings.ContainsRune(" \t\r\n(),'\"`[", rune(s[j])) {
				j++
			}
			toks = append(toks, sqlToken{text: s[i:j]})
			i = j
		}
	}
	return toks
}

// parseColumnEntry parses one column definition. ok is false for entries
// that turn out to be table-level constraints.
func parseColumnEntry(entry string, dialect Dialect) (FieldSpec, bool) {
	toks := scanSQLTokens(entry)
	if len(toks) < 2 {
		return FieldSpec{}, false
	}
	if !toks[0].quoted && tableConstraintKeywords[strings.ToUpper(toks[0].text)] {
		return FieldSpec{}, false
	}

	field := FieldSpec{Name: toks[0].text, Nullable: true}
	i := 1

	baseType := strings.ToUpper(toks[i].text)
	rawType := toks[i].text
	i++

	// Type parameters: size/precision, or the ENUM value list.
	var params []sqlToken
	if i < len(toks) && toks[i].text == "(" {
		depth := 1
		i++
		for i < len(toks) && depth > 0 {
			switch toks[i].text {
			case "(":
				depth++
			case ")":
				depth--
			default:
				if depth == 1 && toks[i].text != "," {
					params = append(params, toks[i])
				}
			}
			i++
		}
	}

	// Compound type words such as DOUBLE PRECISION / CHARACTER VARYING.
	for i < len(toks) && !toks[i].quoted {
		w := strings.ToUpper(toks[i].text)
		if w == "PRECISION" || w == "VARYING" {
			baseType += " " + w
			rawType += " " + toks[i].text
			i++
			continue
		}
		break
	}

	var unsigned, notNull bool
	for i < len(toks) {
		tok := toks[i]
		word := strings.ToUpper(tok.text)
		switch {
		case tok.text == "(":
			// Skip a parenthesized tail group, e.g. CHECK (...).
			depth := 1
			i++
			for i < len(toks) && depth > 0 {
				switch toks[i].text {
				case "(":
					depth++
				case ")":
					depth--
				}
				i++
			}
		case word == "UNSIGNED" && !tok.quoted:
			unsigned = true
			i++
		case word == "NOT" && !tok.quoted:
			if i+1 < len(toks) && strings.EqualFold(toks[i+1].text, "NULL") {
				notNull = true
				i++
			}
			i++
		case word == "PRIMARY" && !tok.quoted:
			notNull = true
			i++
		case word == "DEFAULT" && !tok.quoted:
			i++
			if i < len(toks) {
				field.Default = defaultLiteral(toks[i])
				i++
			}
		case word == "COMMENT" && !tok.quoted:
			i++
			if i < len(toks) && toks[i].quoted {
				field.Comment = toks[i].text
				i++
			}
		default:
			i++
		}
	}

	field.RawType = rawType
	field.Nullable = !notNull

	if baseType == "ENUM" || baseType == "SET" {
		field.Type = Scalar(KindString)
		for _, p := range params {
			if p.quoted {
				field.EnumValues = append(field.EnumValues, p.text)
			}
		}
	} else {
		field.Type = Scalar(LookupDialect(dialect, baseType, paramTexts(params), unsigned))
	}
	return field, true
}

func defaultLiteral(tok sqlToken) string {
	if tok.quoted && tok.quote == '\'' {
		return "'" + tok.text + "'"
	}
	return tok.text
}

func paramTexts(params []sqlToken) []string {
	out := make([]string, 0, len(params))
	for _, p := range params {
		out = append(out, p.text)
	}
	return out
}
