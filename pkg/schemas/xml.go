package schemas

import (
	"encoding/xml"
	"io"
	"strings"
)

// ParseXML extracts a flat StructSpec from an XML document. The root
// element names the struct; every distinct tag of a simple paired element
// (<tag>value</tag>) becomes one field. A repeated tag name marks its
// field as an array — occurrence count, not content, drives array-ness.
// The first occurrence fixes the inferred leaf type.
func ParseXML(input string) (*StructSpec, error) {
	dec := xml.NewDecoder(strings.NewReader(strings.TrimSpace(input)))

	var (
		root  string
		cur   string
		text  strings.Builder
		spec  = &StructSpec{}
		index = map[string]int{}
	)

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errWrapXML(err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if root == "" {
				root = t.Name.Local
				continue
			}
			cur = t.Name.Local
			text.Reset()
		case xml.CharData:
			if cur != "" {
				text.Write(t)
			}
		case xml.EndElement:
			if cur != "" && t.Name.Local == cur {
				recordXMLField(spec, index, cur, text.String())
			}
			cur = ""
		}
	}

	if root == "" {
		return nil, ErrNoRootElement
	}
	spec.Name = BigCamelStyle(root)
	return spec, nil
}

func recordXMLField(spec *StructSpec, index map[string]int, tag, value string) {
	if i, seen := index[tag]; seen {
		f := &spec.Fields[i]
		if !f.Type.Array {
			f.Type = ArrayOf(f.Type)
		}
		return
	}
	index[tag] = len(spec.Fields)
	spec.AddField(FieldSpec{
		Name:    tag,
		RawType: strings.TrimSpace(value),
		Type:    InferLeaf(value),
	})
}

func errWrapXML(err error) error {
	if syn, ok := err.(*xml.SyntaxError); ok {
		return &PositionError{Msg: syn.Msg, Line: syn.Line}
	}
	return &PositionError{Msg: err.Error()}
}
