package schemas

// ParseYAML converts a YAML document into a StructSpec. Unquoted ISO-8601
// scalars resolve to the timestamp kind, anchors/aliases are followed and
// cycle-guarded by the shared walker.
func ParseYAML(input, rootName string) (*StructSpec, error) {
	return parseValueTree(input, rootName)
}
