package schemas

// ParseJSON converts a JSON document into a StructSpec. The document is
// walked as a node tree so object key order survives into field order.
func ParseJSON(input, rootName string) (*StructSpec, error) {
	return parseValueTree(input, rootName)
}
