package schemas

import (
	"sort"
	"strings"
)

// Per-dialect lookup from normalized SQL base type to canonical kind.
// The tables are built once and read-only afterwards, so concurrent
// conversions may consult them without coordination.
var dialectTables = map[Dialect]map[string]CanonicalKind{
	DialectMySQL: {
		"TINYINT":          KindInt8,
		"SMALLINT":         KindInt16,
		"MEDIUMINT":        KindInt32,
		"INT":              KindInt32,
		"INTEGER":          KindInt32,
		"BIGINT":           KindInt64,
		"FLOAT":            KindFloat32,
		"DOUBLE":           KindFloat64,
		"DOUBLE PRECISION": KindFloat64,
		"DECIMAL":          KindFloat64,
		"NUMERIC":          KindFloat64,
		"BIT":              KindUint64,
		"BOOL":             KindBool,
		"BOOLEAN":          KindBool,
		"CHAR":             KindString,
		"VARCHAR":          KindString,
		"TINYTEXT":         KindString,
		"TEXT":             KindString,
		"MEDIUMTEXT":       KindString,
		"LONGTEXT":         KindString,
		"DATE":             KindTime,
		"DATETIME":         KindTime,
		"TIMESTAMP":        KindTime,
		"TIME":             KindTime,
		"YEAR":             KindInt32,
		"BINARY":           KindBytes,
		"VARBINARY":        KindBytes,
		"TINYBLOB":         KindBytes,
		"BLOB":             KindBytes,
		"MEDIUMBLOB":       KindBytes,
		"LONGBLOB":         KindBytes,
		"JSON":             KindRawJSON,
	},
	DialectPostgres: {
		"SMALLINT":          KindInt16,
		"INT2":              KindInt16,
		"SMALLSERIAL":       KindInt16,
		"INTEGER":           KindInt32,
		"INT":               KindInt32,
		"INT4":              KindInt32,
		"SERIAL":            KindInt32,
		"BIGINT":            KindInt64,
		"INT8":              KindInt64,
		"BIGSERIAL":         KindInt64,
		"REAL":              KindFloat32,
		"FLOAT4":            KindFloat32,
		"DOUBLE PRECISION":  KindFloat64,
		"FLOAT8":            KindFloat64,
		"NUMERIC":           KindFloat64,
		"DECIMAL":           KindFloat64,
		"MONEY":             KindFloat64,
		"BOOLEAN":           KindBool,
		"BOOL":              KindBool,
		"CHARACTER VARYING": KindString,
		"VARCHAR":           KindString,
		"CHARACTER":         KindString,
		"CHAR":              KindString,
		"TEXT":              KindString,
		"UUID":              KindString,
		"INET":              KindString,
		"CIDR":              KindString,
		"DATE":              KindTime,
		"TIMESTAMP":         KindTime,
		"TIMESTAMPTZ":       KindTime,
		"TIME":              KindTime,
		"INTERVAL":          KindString,
		"BYTEA":             KindBytes,
		"JSON":              KindRawJSON,
		"JSONB":             KindRawJSON,
	},
	DialectSQLite: {
		"INTEGER":  KindInt64,
		"INT":      KindInt64,
		"TINYINT":  KindInt8,
		"SMALLINT": KindInt16,
		"BIGINT":   KindInt64,
		"REAL":     KindFloat64,
		"DOUBLE":   KindFloat64,
		"FLOAT":    KindFloat64,
		"NUMERIC":  KindFloat64,
		"DECIMAL":  KindFloat64,
		"BOOLEAN":  KindBool,
		"TEXT":     KindString,
		"VARCHAR":  KindString,
		"CHAR":     KindString,
		"CLOB":     KindString,
		"DATE":     KindTime,
		"DATETIME": KindTime,
		"BLOB":     KindBytes,
	},
	DialectOracle: {
		"VARCHAR2":      KindString,
		"NVARCHAR2":     KindString,
		"VARCHAR":       KindString,
		"CHAR":          KindString,
		"NCHAR":         KindString,
		"CLOB":          KindString,
		"NCLOB":         KindString,
		"LONG":          KindString,
		"NUMBER":        KindInt64,
		"INTEGER":       KindInt64,
		"INT":           KindInt64,
		"SMALLINT":      KindInt64,
		"FLOAT":         KindFloat64,
		"BINARY_FLOAT":  KindFloat32,
		"BINARY_DOUBLE": KindFloat64,
		"DATE":          KindTime,
		"TIMESTAMP":     KindTime,
		"RAW":           KindBytes,
		"BLOB":          KindBytes,
	},
}

// substringKeys holds, per dialect, the table keys sorted longest first so
// the substring fallback is deterministic and prefers the most specific key.
var substringKeys = func() map[Dialect][]string {
	out := make(map[Dialect][]string, len(dialectTables))
	for d, table := range dialectTables {
		keys := make([]string, 0, len(table))
		for k := range table {
			keys = append(keys, k)
		}
		sort.Slice(keys, func(i, j int) bool {
			if len(keys[i]) != len(keys[j]) {
				return len(keys[i]) > len(keys[j])
			}
			return keys[i] < keys[j]
		})
		out[d] = keys
	}
	return out
}()

// LookupDialect resolves a normalized SQL base type to a canonical kind.
// Resolution order: dialect special cases, exact match, unsigned
// adjustment, substring match against known keys, KindUnknown.
func LookupDialect(dialect Dialect, baseType string, params []string, unsigned bool) CanonicalKind {
	base := normalizeBaseType(baseType)
	table, ok := dialectTables[dialect]
	if !ok {
		return KindUnknown
	}

	switch dialect {
	case DialectMySQL:
		// TINYINT(1) is MySQL's boolean.
		if base == "TINYINT" && len(params) == 1 && params[0] == "1" {
			return KindBool
		}
	case DialectOracle:
		// NUMBER(p,s) with a scale is fractional; without one it is an
		// integer whose sign follows the unsigned flag.
		if base == "NUMBER" {
			if len(params) >= 2 && params[1] != "0" {
				return KindFloat64
			}
			if unsigned {
				return KindUint64
			}
			return KindInt64
		}
	}

	if kind, ok := table[base]; ok {
		return adjustUnsigned(kind, unsigned)
	}
	for _, key := range substringKeys[dialect] {
		if strings.Contains(base, key) {
			return adjustUnsigned(table[key], unsigned)
		}
	}
	return KindUnknown
}

func adjustUnsigned(kind CanonicalKind, unsigned bool) CanonicalKind {
	if unsigned && kind.IsInteger() {
		return kind.Unsigned()
	}
	return kind
}

// normalizeBaseType uppercases and collapses interior whitespace so that
// "double   precision" and "DOUBLE PRECISION" hit the same key.
func normalizeBaseType(baseType string) string {
	return strings.Join(strings.Fields(strings.ToUpper(baseType)), " ")
}
