package schemas

import (
	"encoding/csv"
	"strings"

	"github.com/thorn-jmh/errorst"
)

// ParseCSV infers a StructSpec from the header line and the first data
// line. One sample row decides the column types; extra rows are ignored.
func ParseCSV(input, rootName string) (*StructSpec, error) {
	r := csv.NewReader(strings.NewReader(strings.TrimSpace(input)))
	r.TrimLeadingSpace = true
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err != nil {
		return nil, errorst.Wrap(ErrTooFewCSVLines, "%v", err)
	}
	row, err := r.Read()
	if err != nil {
		return nil, errorst.Wrap(ErrTooFewCSVLines, "%v", err)
	}

	n := len(header)
	if len(row) < n {
		n = len(row)
	}

	spec := &StructSpec{Name: rootName}
	for i := 0; i < n; i++ {
		name := strings.TrimSpace(header[i])
		if name == "" {
			continue
		}
		spec.AddField(FieldSpec{
			Name:    name,
			RawType: strings.TrimSpace(row[i]),
			Type:    InferLeaf(row[i]),
		})
	}
	if len(spec.Fields) == 0 {
		return nil, ErrTooFewCSVLines
	}
	return spec, nil
}
