package schemas

import (
	"strings"
)

// protoTypes maps Protocol Buffer scalar types to canonical kinds.
// Read-only after initialization.
var protoTypes = map[string]CanonicalKind{
	"double":                    KindFloat64,
	"float":                     KindFloat32,
	"int32":                     KindInt32,
	"sint32":                    KindInt32,
	"sfixed32":                  KindInt32,
	"int64":                     KindInt64,
	"sint64":                    KindInt64,
	"sfixed64":                  KindInt64,
	"uint32":                    KindUint32,
	"fixed32":                   KindUint32,
	"uint64":                    KindUint64,
	"fixed64":                   KindUint64,
	"bool":                      KindBool,
	"string":                    KindString,
	"bytes":                     KindBytes,
	"google.protobuf.Timestamp": KindTime,
}

// ParseProto extracts message definitions from a proto IDL, line by line.
// Only flat message bodies are handled; a nested message block simply
// opens a new sibling top-level struct.
func ParseProto(input string) ([]*StructSpec, error) {
	var (
		specs []*StructSpec
		open  *StructSpec
	)

	for _, line := range strings.Split(input, "\n") {
		line = strings.TrimSpace(line)
		if i := strings.Index(line, "//"); i >= 0 {
			line = strings.TrimSpace(line[:i])
		}
		if line == "" || strings.Contains(line, "syntax") || strings.Contains(line, "package") {
			continue
		}

		if name, rest, ok := messageName(line); ok {
			if open != nil {
				specs = append(specs, open)
			}
			open = &StructSpec{Name: BigCamelStyle(name)}
			// A one-line message keeps its body on the same line.
			if field, ok := protoField(rest); ok {
				open.AddField(field)
			}
			continue
		}
		if open == nil {
			continue
		}
		if field, ok := protoField(line); ok {
			open.AddField(field)
		}
	}
	if open != nil {
		specs = append(specs, open)
	}

	if len(specs) == 0 {
		return nil, ErrNoMessage
	}
	return specs, nil
}

func messageName(line string) (name, rest string, ok bool) {
	head := line
	if i := strings.Index(line, "{"); i >= 0 {
		head, rest = line[:i], strings.TrimSuffix(strings.TrimSpace(line[i+1:]), "}")
	}
	toks := strings.Fields(head)
	if len(toks) >= 2 && toks[0] == "message" {
		return toks[1], rest, true
	}
	return "", "", false
}

// protoField parses "[repeated] <type> <name> = <tag>;".
func protoField(line string) (FieldSpec, bool) {
	eq := strings.Index(line, "=")
	if eq < 0 {
		return FieldSpec{}, false
	}
	toks := strings.Fields(line[:eq])

	repeated := false
labels:
	for len(toks) > 0 {
		switch toks[0] {
		case "repeated":
			repeated = true
			toks = toks[1:]
		case "optional", "required":
			toks = toks[1:]
		default:
			break labels
		}
	}
	if len(toks) != 2 {
		return FieldSpec{}, false
	}
	rawType, name := toks[0], toks[1]

	kind, ok := protoTypes[rawType]
	if !ok {
		// Unrecognized types degrade to the unknown kind, conversion
		// still completes with best-effort output.
		kind = KindUnknown
	}
	desc := Scalar(kind)
	if repeated {
		desc = ArrayOf(desc)
	}
	return FieldSpec{Name: name, RawType: rawType, Type: desc}, true
}
