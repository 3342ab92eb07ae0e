package schemas

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/thorn-jmh/errorst"
	"gopkg.in/yaml.v3"
)

// StructFromValue builds a StructSpec from a parsed value tree. The root
// must be a mapping, or a sequence whose first element is a mapping (the
// common "list of records" shape).
//
// Cycle safety: inference carries a visited set of node identities down
// each recursive branch. The set is copied, not shared, so sibling branches
// are inferred independently; revisiting a node on the same branch yields
// KindUnknown instead of recursing.
func StructFromValue(rootName string, node *yaml.Node) (*StructSpec, error) {
	node = unwrap(node)
	if node == nil {
		return nil, ErrUnsupportedValue
	}

	switch node.Kind {
	case yaml.MappingNode:
		return structFromMapping(rootName, node, nil), nil
	case yaml.SequenceNode:
		if len(node.Content) > 0 {
			if first := unwrap(node.Content[0]); first != nil && first.Kind == yaml.MappingNode {
				return structFromMapping(rootName, first, nil), nil
			}
		}
	}
	return nil, errorst.Wrap(ErrUnsupportedValue, "top-level value must be an object")
}

// parseValueTree is the shared JSON/YAML entry: yaml.v3 parses both
// grammars and, unlike a map decode, preserves document key order.
func parseValueTree(input, rootName string) (*StructSpec, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal([]byte(input), &doc); err != nil {
		return nil, errorst.Wrap(ErrInvalidInput, "%v", err)
	}
	return StructFromValue(rootName, &doc)
}

func structFromMapping(name string, node *yaml.Node, visited map[*yaml.Node]bool) *StructSpec {
	s := &StructSpec{Name: name}
	for i := 0; i+1 < len(node.Content); i += 2 {
		key := node.Content[i].Value
		val := node.Content[i+1]

		branch := copyVisited(visited)
		branch[node] = true

		desc, nested, nullable := inferNode(name, key, val, branch)
		if nested != nil {
			s.AddNested(nested)
		}
		s.AddField(FieldSpec{
			Name:     key,
			RawType:  strings.TrimPrefix(val.Tag, "!!"),
			Type:     desc,
			Nullable: nullable,
		})
	}
	return s
}

func inferNode(parent, field string, node *yaml.Node, visited map[*yaml.Node]bool) (TypeDescriptor, *StructSpec, bool) {
	if node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}
	if visited[node] {
		// Cycle break: revisiting a node on this branch.
		return Scalar(KindUnknown), nil, false
	}

	switch node.Kind {
	case yaml.MappingNode:
		name := parent + BigCamelStyle(field)
		branch := copyVisited(visited)
		branch[node] = true
		nested := structFromMapping(name, node, branch)
		return StructRef(name), nested, false

	case yaml.SequenceNode:
		return inferSequence(parent, field, node, visited)

	case yaml.ScalarNode:
		d, nullable := inferScalarNode(node)
		return d, nil, nullable
	}
	return Scalar(KindUnknown), nil, false
}

func inferSequence(parent, field string, node *yaml.Node, visited map[*yaml.Node]bool) (TypeDescriptor, *StructSpec, bool) {
	if len(node.Content) == 0 {
		return ArrayOf(Scalar(KindUnknown)), nil, false
	}

	var (
		elem   TypeDescriptor
		nested *StructSpec
		mixed  bool
	)
	for i, child := range node.Content {
		branch := copyVisited(visited)
		branch[node] = true

		d, n, _ := inferNode(parent, field, child, branch)
		if i == 0 {
			elem, nested = d, n
			continue
		}
		// Only the first element materializes a nested struct; later
		// elements just need to agree on the descriptor.
		if !d.Equal(elem) {
			mixed = true
		}
	}
	if mixed {
		return ArrayOf(Scalar(KindUnknown)), nil, false
	}
	return ArrayOf(elem), nested, false
}

func inferScalarNode(node *yaml.Node) (TypeDescriptor, bool) {
	switch node.Tag {
	case "!!null":
		return Scalar(KindUnknown), true
	case "!!bool":
		return Scalar(KindBool), false
	case "!!int":
		return Scalar(integerKind(node.Value)), false
	case "!!float":
		return Scalar(KindFloat64), false
	case "!!timestamp":
		return Scalar(KindTime), false
	case "!!binary":
		return Scalar(KindBytes), false
	default:
		return Scalar(KindString), false
	}
}

// integerKind picks int32 for values within the signed 32-bit range and
// int64 beyond it.
func integerKind(literal string) CanonicalKind {
	n, err := strconv.ParseInt(literal, 0, 64)
	if err != nil {
		return KindInt64
	}
	if n >= math.MinInt32 && n <= math.MaxInt32 {
		return KindInt32
	}
	return KindInt64
}

func unwrap(node *yaml.Node) *yaml.Node {
	for node != nil {
		switch {
		case node.Kind == yaml.DocumentNode && len(node.Content) > 0:
			node = node.Content[0]
		case node.Kind == yaml.AliasNode && node.Alias != nil:
			node = node.Alias
		default:
			return node
		}
	}
	return nil
}

func copyVisited(visited map[*yaml.Node]bool) map[*yaml.Node]bool {
	branch := make(map[*yaml.Node]bool, len(visited)+1)
	for k, v := range visited {
		branch[k] = v
	}
	return branch
}

// InferLeaf infers the canonical type of a bare text value, used by the
// XML and CSV parsers. Order: boolean, integer, decimal, ISO-8601 date
// prefix, string.
func InferLeaf(value string) TypeDescriptor {
	v := strings.TrimSpace(value)
	switch v {
	case "true", "false":
		return Scalar(KindBool)
	}
	if _, err := strconv.ParseInt(v, 10, 64); err == nil {
		return Scalar(integerKind(v))
	}
	if _, err := strconv.ParseFloat(v, 64); err == nil {
		return Scalar(KindFloat64)
	}
	if len(v) >= 10 {
		if _, err := time.Parse("2006-01-02", v[:10]); err == nil {
			return Scalar(KindTime)
		}
	}
	return Scalar(KindString)
}
