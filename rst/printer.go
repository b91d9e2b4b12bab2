package rst

import (
	"fmt"
	"io"
)

// WriteTree renders the tree below root as indented text, one node per
// line in depth-first order. The root line carries no branch marker;
// every other line is prefixed with the usual box-drawing connectors.
func WriteTree(w io.Writer, root *Node) {
	fmt.Fprintln(w, nodeLine(root))
	writeChildren(w, root, "")
}

func writeChildren(w io.Writer, n *Node, prefix string) {
	for i, child := range n.Children {
		connector, continuation := "├── ", "│   "
		if i == len(n.Children)-1 {
			connector, continuation = "└── ", "    "
		}
		fmt.Fprintln(w, prefix+connector+nodeLine(child))
		writeChildren(w, child, prefix+continuation)
	}
}

// nodeLine formats a single node: identifier, text or the "No text"
// placeholder, then the relation and the group subtype when present.
func nodeLine(n *Node) string {
	text := n.Text
	if text == "" {
		text = "No text"
	}
	line := n.ID + ": " + text
	if n.Relation != "" {
		line += " (relname: " + n.Relation + ")"
	}
	if n.Subtype != "" {
		line += " (type: " + n.Subtype + ")"
	}
	return line
}
