package schemas

// Format names a supported input kind.
type Format string

const (
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
	FormatSQL   Format = "sql"
	FormatProto Format = "proto"
	FormatXML   Format = "xml"
	FormatCSV   Format = "csv"
)

// Dialect names a supported relational type vocabulary.
type Dialect string

const (
	DialectMySQL    Dialect = "mysql"
	DialectPostgres Dialect = "postgres"
	DialectSQLite   Dialect = "sqlite"
	DialectOracle   Dialect = "oracle"
)

// CanonicalKind is the engine's database/format-independent type kind.
type CanonicalKind int

const (
	KindUnknown CanonicalKind = iota
	KindString
	KindBool
	KindInt8
	KindInt16
	KindInt32
	KindInt64
	KindUint8
	KindUint16
	KindUint32
	KindUint64
	KindFloat32
	KindFloat64
	KindTime
	KindBytes
	KindRawJSON
	KindStruct // reference to a named structure
)

var kindNames = map[CanonicalKind]string{
	KindUnknown: "unknown",
	KindString:  "string",
	KindBool:    "bool",
	KindInt8:    "int8",
	KindInt16:   "int16",
	KindInt32:   "int32",
	KindInt64:   "int64",
	KindUint8:   "uint8",
	KindUint16:  "uint16",
	KindUint32:  "uint32",
	KindUint64:  "uint64",
	KindFloat32: "float32",
	KindFloat64: "float64",
	KindTime:    "time.Time",
	KindBytes:   "[]byte",
	KindRawJSON: "json.RawMessage",
	KindStruct:  "struct",
}

func (k CanonicalKind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "unknown"
}

// IsInteger reports whether k is one of the fixed-width integer kinds.
func (k CanonicalKind) IsInteger() bool {
	return k >= KindInt8 && k <= KindUint64
}

// Unsigned returns the unsigned counterpart of a signed integer kind.
// Kinds without a counterpart are returned unchanged.
func (k CanonicalKind) Unsigned() CanonicalKind {
	switch k {
	case KindInt8:
		return KindUint8
	case KindInt16:
		return KindUint16
	case KindInt32:
		return KindUint32
	case KindInt64:
		return KindUint64
	default:
		return k
	}
}

// TypeDescriptor is the canonical shape of one field's type.
type TypeDescriptor struct {
	Kind       CanonicalKind
	StructName string          // set when Kind == KindStruct
	Pointer    bool            // render behind *
	Array      bool            // render behind []
	Elem       *TypeDescriptor // element descriptor when Array
}

// Equal compares two descriptors structurally.
func (d TypeDescriptor) Equal(o TypeDescriptor) bool {
	if d.Kind != o.Kind || d.StructName != o.StructName ||
		d.Pointer != o.Pointer || d.Array != o.Array {
		return false
	}
	if (d.Elem == nil) != (o.Elem == nil) {
		return false
	}
	if d.Elem != nil {
		return d.Elem.Equal(*o.Elem)
	}
	return true
}

// Scalar builds a plain descriptor of the given kind.
func Scalar(k CanonicalKind) TypeDescriptor {
	return TypeDescriptor{Kind: k}
}

// ArrayOf wraps elem into an array descriptor.
func ArrayOf(elem TypeDescriptor) TypeDescriptor {
	e := elem
	return TypeDescriptor{Kind: elem.Kind, StructName: elem.StructName, Array: true, Elem: &e}
}

// StructRef builds a descriptor referencing a named structure.
func StructRef(name string) TypeDescriptor {
	return TypeDescriptor{Kind: KindStruct, StructName: name}
}
