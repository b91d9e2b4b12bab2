package rst

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

// Record is one flat segment or group entry from an RS3 body, before
// tree construction. ParentID and Relation are empty when the
// corresponding attribute is absent.
type Record struct {
	ID       string
	Kind     Kind
	Text     string
	Subtype  string
	ParentID string
	Relation string
}

// RelationSchema lists the relation labels declared in the document
// header, in declaration order.
type RelationSchema struct {
	Mononuclear  []string
	Multinuclear []string
}

// Document is the flat parse result of a single RS3 file. Records
// appear exactly in document order.
type Document struct {
	Records []Record
	Schema  RelationSchema

	byID map[string]int
}

// Record returns the first record carrying the given identifier.
func (d *Document) Record(id string) (Record, bool) {
	i, ok := d.byID[id]
	if !ok {
		return Record{}, false
	}
	return d.Records[i], true
}

// ParseDocument reads one RS3 document from r and extracts its segment
// and group records together with the header's relation declarations.
func ParseDocument(r io.Reader) (*Document, error) {
	doc := &Document{byID: make(map[string]int)}

	decoder := xml.NewDecoder(r)

	// Index of the currently open segment, -1 outside of any segment.
	// Character data arrives as separate tokens between the segment's
	// start and end elements, so text is accumulated here.
	openSegment := -1
	var text strings.Builder

	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("malformed document: %w", err)
		}

		switch se := token.(type) {
		case xml.StartElement:
			switch se.Name.Local {
			case "rel":
				name := attrValue(se, "name")
				switch attrValue(se, "type") {
				case "rst":
					doc.Schema.Mononuclear = append(doc.Schema.Mononuclear, name)
				case "multinuc":
					doc.Schema.Multinuclear = append(doc.Schema.Multinuclear, name)
				}
			case "segment":
				doc.append(Record{
					ID:       attrValue(se, "id"),
					Kind:     KindSegment,
					ParentID: attrValue(se, "parent"),
					Relation: attrValue(se, "relname"),
				})
				openSegment = len(doc.Records) - 1
				text.Reset()
			case "group":
				doc.append(Record{
					ID:       attrValue(se, "id"),
					Kind:     KindGroup,
					Subtype:  attrValue(se, "type"),
					ParentID: attrValue(se, "parent"),
					Relation: attrValue(se, "relname"),
				})
			}
		case xml.EndElement:
			if se.Name.Local == "segment" && openSegment >= 0 {
				doc.Records[openSegment].Text = strings.TrimSpace(text.String())
				openSegment = -1
			}
		case xml.CharData:
			if openSegment >= 0 {
				text.Write(se)
			}
		}
	}

	return doc, nil
}

func (d *Document) append(rec Record) {
	d.Records = append(d.Records, rec)
	if _, ok := d.byID[rec.ID]; !ok {
		d.byID[rec.ID] = len(d.Records) - 1
	}
}

func attrValue(se xml.StartElement, name string) string {
	for _, attr := range se.Attr {
		if attr.Name.Local == name {
			return attr.Value
		}
	}
	return ""
}
