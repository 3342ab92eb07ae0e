// Package converter is the boundary of the conversion core: a pure
// validate/convert pair over raw text, a format kind and options. No call
// shares state with another, so concurrent callers need no coordination.
package converter

import (
	"errors"

	"github.com/thorn-jmh/errorst"

	"tostruct/pkg/modelgen"
	"tostruct/pkg/schemas"
)

var (
	ErrMissingDialect    = errorst.NewError("sql conversion requires a dialect option")
	ErrUnsupportedFormat = errorst.NewError("unsupported format kind")
)

// DefaultRootName names the top-level struct for formats that carry no
// name of their own (JSON, YAML, CSV).
const DefaultRootName = "AutoGenerated"

// Options select the dialect vocabulary, tag convention and rendering
// behavior of one conversion.
type Options struct {
	Dialect               schemas.Dialect
	TagStyle              modelgen.TagStyle
	UsePointerForNullable bool
	PackageName           string
	RootName              string
}

// ValidationResult is the outcome of the structural pre-check.
type ValidationResult struct {
	IsValid bool
	Error   string
}

// Result is the UI-facing outcome of one conversion.
type Result struct {
	Success bool
	Output  string
	Error   *ConvertError
}

// ConvertError carries a human-readable message plus the input position
// when the underlying parser reported one.
type ConvertError struct {
	Message string
	Line    int
	Column  int
}

// Validate runs the cheap structural pre-check for the given format.
func Validate(input string, format schemas.Format) ValidationResult {
	if err := schemas.Validate(input, format); err != nil {
		return ValidationResult{Error: err.Error()}
	}
	return ValidationResult{IsValid: true}
}

// Convert turns raw input text into rendered struct declarations. It fails
// when validation or parsing cannot proceed; unrecognized raw types inside
// an otherwise well-formed input degrade to the unknown kind instead.
func Convert(input string, format schemas.Format, opts *Options) (string, error) {
	if opts == nil {
		opts = &Options{}
	}
	specs, err := Parse(input, format, opts)
	if err != nil {
		return "", err
	}
	return modelgen.Generate(specs, modelgen.Options{
		PackageName:           opts.PackageName,
		TagStyle:              opts.TagStyle,
		UsePointerForNullable: opts.UsePointerForNullable,
	})
}

// Parse validates the input and runs the format parser, returning the
// canonical specs before rendering.
func Parse(input string, format schemas.Format, opts *Options) ([]*schemas.StructSpec, error) {
	if err := schemas.Validate(input, format); err != nil {
		return nil, err
	}
	if opts == nil {
		opts = &Options{}
	}
	rootName := opts.RootName
	if rootName == "" {
		rootName = DefaultRootName
	}

	switch format {
	case schemas.FormatJSON:
		return one(schemas.ParseJSON(input, rootName))
	case schemas.FormatYAML:
		return one(schemas.ParseYAML(input, rootName))
	case schemas.FormatSQL:
		if opts.Dialect == "" {
			return nil, ErrMissingDialect
		}
		return one(schemas.ParseSQL(input, opts.Dialect))
	case schemas.FormatProto:
		return schemas.ParseProto(input)
	case schemas.FormatXML:
		return one(schemas.ParseXML(input))
	case schemas.FormatCSV:
		return one(schemas.ParseCSV(input, rootName))
	default:
		return nil, errorst.Wrap(ErrUnsupportedFormat, "%s", format)
	}
}

// Run wraps Convert into a Result the excluded UI can display directly.
func Run(input string, format schemas.Format, opts *Options) Result {
	output, err := Convert(input, format, opts)
	if err != nil {
		ce := &ConvertError{Message: err.Error()}
		var pos *schemas.PositionError
		if errors.As(err, &pos) {
			ce.Line, ce.Column = pos.Line, pos.Column
		}
		return Result{Error: ce}
	}
	return Result{Success: true, Output: output}
}

func one(spec *schemas.StructSpec, err error) ([]*schemas.StructSpec, error) {
	if err != nil {
		return nil, err
	}
	return []*schemas.StructSpec{spec}, nil
}
