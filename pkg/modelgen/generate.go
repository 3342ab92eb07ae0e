package modelgen

import (
	"strings"

	"github.com/dave/jennifer/jen"
	"github.com/thorn-jmh/errorst"

	"tostruct/pkg/schemas"
)

// Options control rendering. The zero value renders plain json tags into
// package "model" without pointer-qualified nullables.
type Options struct {
	PackageName           string
	TagStyle              TagStyle
	UsePointerForNullable bool
}

// Generate renders struct declarations for the given specs. Nested structs
// are emitted before their owner, fields in source order; the import block
// (time, encoding/json) follows from the kinds actually used.
func Generate(specs []*schemas.StructSpec, opts Options) (string, error) {
	if len(specs) == 0 {
		return "", ErrNothingToRender
	}
	pkg := opts.PackageName
	if pkg == "" {
		pkg = "model"
	}

	f := jen.NewFile(pkg)
	for _, s := range specs {
		// Walk yields nested structs before their owner.
		s.Walk(func(n *schemas.StructSpec) {
			genStruct(f, n, opts)
		})
	}

	var buf strings.Builder
	if err := f.Render(&buf); err != nil {
		return "", errorst.Wrap(ErrRenderFailed, "%v", err)
	}
	return buf.String(), nil
}

func genStruct(f *jen.File, s *schemas.StructSpec, opts Options) {
	f.Line()
	f.Type().Id(s.Name).StructFunc(func(g *jen.Group) {
		for _, field := range s.Fields {
			stat := g.Id(schemas.BigCamelStyle(field.Name))
			declFieldType(stat, field, opts)

			tags, comment := FieldTags(field, opts.TagStyle)
			if len(tags) > 0 {
				stat.Tag(tags)
			}
			if comment != "" {
				stat.Comment(comment)
			}
		}
	})
}

func declFieldType(s *jen.Statement, field schemas.FieldSpec, opts Options) *jen.Statement {
	d := field.Type
	// Slices are already nilable, no pointer on top.
	if !d.Array && !d.Pointer && field.Nullable && opts.UsePointerForNullable {
		s.Op("*")
	}
	return declType(s, d)
}

func declType(s *jen.Statement, d schemas.TypeDescriptor) *jen.Statement {
	if d.Pointer && !d.Array {
		s.Op("*")
	}
	if d.Array {
		s.Index()
		if d.Elem != nil {
			return declType(s, *d.Elem)
		}
		return s.Interface()
	}

	switch d.Kind {
	case schemas.KindString:
		return s.String()
	case schemas.KindBool:
		return s.Bool()
	case schemas.KindInt8:
		return s.Int8()
	case schemas.KindInt16:
		return s.Int16()
	case schemas.KindInt32:
		return s.Int32()
	case schemas.KindInt64:
		return s.Int64()
	case schemas.KindUint8:
		return s.Uint8()
	case schemas.KindUint16:
		return s.Uint16()
	case schemas.KindUint32:
		return s.Uint32()
	case schemas.KindUint64:
		return s.Uint64()
	case schemas.KindFloat32:
		return s.Float32()
	case schemas.KindFloat64:
		return s.Float64()
	case schemas.KindTime:
		return s.Qual("time", "Time")
	case schemas.KindBytes:
		return s.Index().Byte()
	case schemas.KindRawJSON:
		return s.Qual("encoding/json", "RawMessage")
	case schemas.KindStruct:
		return s.Id(d.StructName)
	default:
		return s.Interface()
	}
}
