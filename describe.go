package tasktree

import (
	"fmt"
	"io"
	"strings"
)

// backtraceDepth is how many frames PrintHierarchy requests per node.
const backtraceDepth = 32

// Description returns a stable one-line identifier for the node: its kind
// and short ID, a transient marker if applicable, and the current
// annotation or, when there is none, the innermost backtrace line.
func (n *Node) Description() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s:%s", n.kind, shortID(n))
	if n.transient {
		b.WriteString(" transient")
	}
	if n.annotation != "" {
		b.WriteByte(' ')
		b.WriteString(n.annotation)
	} else if bt := n.Backtrace(0, 1); len(bt) > 0 {
		b.WriteByte(' ')
		b.WriteString(bt[0])
	}
	return b.String()
}

// String wraps [Node.Description] for display.
func (n *Node) String() string {
	return "#<" + n.Description() + ">"
}

func shortID(n *Node) string {
	return n.id.String()[:8]
}

// PrintHierarchy writes the subtree rooted at the node to w, one line per
// node, indented by a tab per level of depth. When withBacktrace is set,
// each node's backtrace lines follow its own line, the innermost frame
// marked with an arrow.
func (n *Node) PrintHierarchy(w io.Writer, withBacktrace bool) error {
	var err error
	for node, depth := range n.Walk() {
		indent := strings.Repeat("\t", depth)
		if _, err = fmt.Fprintf(w, "%s%s\n", indent, node); err != nil {
			return err
		}
		if !withBacktrace {
			continue
		}
		for i, line := range node.Backtrace(0, backtraceDepth) {
			marker := "  "
			if i == 0 {
				marker = "→ "
			}
			if _, err = fmt.Fprintf(w, "%s%s%s\n", indent, marker, line); err != nil {
				return err
			}
		}
	}
	return err
}
