package rst

import (
	"bytes"
	"testing"
)

func TestWriteTree_Rendering(t *testing.T) {
	root := &Node{
		ID: "10", Kind: KindGroup, Subtype: "span",
		Children: []*Node{
			{ID: "1", Kind: KindSegment, Text: "These .", Relation: "span",
				Children: []*Node{
					{ID: "2", Kind: KindSegment, Text: "Begründung .", Relation: "reason-N"},
				}},
			{ID: "11", Kind: KindGroup, Subtype: "multinuc", Relation: "elaboration",
				Children: []*Node{
					{ID: "3", Kind: KindSegment, Text: "Erstens .", Relation: "conjunction"},
					{ID: "4", Kind: KindSegment, Text: "Zweitens .", Relation: "conjunction"},
				}},
		},
	}

	var buf bytes.Buffer
	WriteTree(&buf, root)

	expected := `10: No text (type: span)
├── 1: These . (relname: span)
│   └── 2: Begründung . (relname: reason-N)
└── 11: No text (relname: elaboration) (type: multinuc)
    ├── 3: Erstens . (relname: conjunction)
    └── 4: Zweitens . (relname: conjunction)
`
	if got := buf.String(); got != expected {
		t.Errorf("WriteTree() mismatch:\nExpected:\n%s\nGot:\n%s", expected, got)
	}
}

func TestWriteTree_SingleNode(t *testing.T) {
	var buf bytes.Buffer
	WriteTree(&buf, &Node{ID: "1", Kind: KindSegment, Text: "Nur ein Satz ."})

	expected := "1: Nur ein Satz .\n"
	if got := buf.String(); got != expected {
		t.Errorf("Expected %q, got %q", expected, got)
	}
}

func TestWriteTree_DocumentOrderPreserved(t *testing.T) {
	root, err := BuildTree(parseString(t, `<rst><body>
		<segment id="3" parent="10" relname="conjunction">Zuerst notiert .</segment>
		<segment id="1" parent="10" relname="conjunction">Danach notiert .</segment>
		<group id="10" type="multinuc" />
	</body></rst>`))
	if err != nil {
		t.Fatalf("BuildTree failed: %v", err)
	}

	var buf bytes.Buffer
	WriteTree(&buf, root)

	expected := `10: No text (type: multinuc)
├── 3: Zuerst notiert . (relname: conjunction)
└── 1: Danach notiert . (relname: conjunction)
`
	if got := buf.String(); got != expected {
		t.Errorf("WriteTree() mismatch:\nExpected:\n%s\nGot:\n%s", expected, got)
	}
}
