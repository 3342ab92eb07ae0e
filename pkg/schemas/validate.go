package schemas

import (
	"encoding/json"
	"encoding/xml"
	"io"
	"strings"

	"github.com/thorn-jmh/errorst"
	"gopkg.in/yaml.v3"
)

// PositionError carries the input position of a structural failure when the
// underlying parser can report one.
type PositionError struct {
	Msg    string
	Line   int
	Column int
}

func (e *PositionError) Error() string {
	return e.Msg
}

// Validate is a cheap structural pre-check, run before the format parsers.
// It is pure: no state is touched, nil means the input may be parsed.
func Validate(input string, format Format) error {
	if strings.TrimSpace(input) == "" {
		return ErrEmptyInput
	}

	switch format {
	case FormatJSON:
		return validateJSON(input)
	case FormatYAML:
		return validateYAML(input)
	case FormatSQL:
		return validateSQL(input)
	case FormatProto:
		return validateProto(input)
	case FormatXML:
		return validateXML(input)
	case FormatCSV:
		return validateCSV(input)
	default:
		return errorst.Wrap(ErrInvalidInput, "unsupported format: %s", format)
	}
}

func validateJSON(input string) error {
	var v any
	err := json.Unmarshal([]byte(input), &v)
	if err == nil {
		return nil
	}
	if syn, ok := err.(*json.SyntaxError); ok {
		line, col := offsetToPosition(input, syn.Offset)
		return &PositionError{Msg: syn.Error(), Line: line, Column: col}
	}
	return errorst.Wrap(ErrInvalidInput, "not valid JSON: %v", err)
}

func validateYAML(input string) error {
	var v any
	if err := yaml.Unmarshal([]byte(input), &v); err != nil {
		return errorst.Wrap(ErrInvalidInput, "not valid YAML: %v", err)
	}
	return nil
}

func validateSQL(input string) error {
	stmt := strings.TrimSpace(input)
	if !hasPrefixFold(stmt, "CREATE TABLE") {
		return errorst.Wrap(ErrNoTable, "statement must start with CREATE TABLE")
	}
	_, body, err := splitCreateTable(stmt)
	if err != nil {
		return err
	}
	for _, entry := range splitColumnEntries(body) {
		if !isTableConstraint(entry) {
			return nil
		}
	}
	return ErrNoColumns
}

func validateProto(input string) error {
	if !strings.Contains(input, "message") {
		return ErrNoMessage
	}
	return nil
}

func validateXML(input string) error {
	trimmed := strings.TrimSpace(input)
	if !strings.HasPrefix(trimmed, "<") {
		return errorst.Wrap(ErrInvalidInput, "XML must start with a declaration or opening tag")
	}

	// The decoder enforces stack discipline on open/close tags for us.
	dec := xml.NewDecoder(strings.NewReader(trimmed))
	for {
		_, err := dec.Token()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return errorst.Wrap(ErrUnbalancedXML, "%v", err)
		}
	}
}

func validateCSV(input string) error {
	var lines int
	for _, line := range strings.Split(input, "\n") {
		if strings.TrimSpace(line) != "" {
			lines++
		}
		if lines >= 2 {
			return nil
		}
	}
	return ErrTooFewCSVLines
}

// offsetToPosition converts a byte offset into a 1-based line/column pair.
func offsetToPosition(input string, offset int64) (line, col int) {
	line, col = 1, 1
	for i := int64(0); i < offset && i < int64(len(input)); i++ {
		if input[i] == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	return line, col
}

func hasPrefixFold(s, prefix string) bool {
	return len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix)
}
