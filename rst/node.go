package rst

// Kind distinguishes the two unit flavours an RS3 body declares.
type Kind int

const (
	// KindSegment is a leaf unit carrying literal source text.
	KindSegment Kind = iota
	// KindGroup is an internal unit spanning segments or other groups.
	KindGroup
)

// Node is one unit of the discourse tree. Segments carry Text, groups
// carry Subtype. Children are kept in document order.
type Node struct {
	ID       string
	Kind     Kind
	Text     string
	Subtype  string
	ParentID string
	Relation string
	Children []*Node
}
