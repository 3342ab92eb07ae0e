package schemas

// FieldSpec describes one field extracted from the input. A FieldSpec is
// owned by exactly one StructSpec.
type FieldSpec struct {
	Name       string   // source name, not yet exported-case formatted
	RawType    string   // raw type token as seen in the input, if any
	Type       TypeDescriptor
	Nullable   bool
	EnumValues []string // retained for ENUM columns
	Default    string   // default value literal, if any
	Comment    string   // column/field comment, if any
}

// StructSpec is a named structure extracted from one conversion pass.
// Field order matches source order. Nested structs are rendered before
// their owner.
type StructSpec struct {
	Name   string
	Fields []FieldSpec
	Nested []*StructSpec
}

// AddField appends a field, preserving source order.
func (s *StructSpec) AddField(f FieldSpec) {
	s.Fields = append(s.Fields, f)
}

// AddNested appends a nested struct definition.
func (s *StructSpec) AddNested(n *StructSpec) {
	s.Nested = append(s.Nested, n)
}

// Walk visits s and every nested struct, depth first, nested before owner.
func (s *StructSpec) Walk(fn func(*StructSpec)) {
	for _, n := range s.Nested {
		n.Walk(fn)
	}
	fn(s)
}
