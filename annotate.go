package tasktree

// Annotation returns the node's current diagnostic annotation, "" if unset.
func (n *Node) Annotation() string { return n.annotation }

// Annotate sets the diagnostic annotation shown by [Node.Description].
func (n *Node) Annotate(annotation string) {
	n.annotation = annotation
}

// AnnotateDuring overrides the annotation for the duration of body and
// restores the previous value afterward, on normal return and on panic
// alike. Useful for labelling a phase of work:
//
//	n.AnnotateDuring("flushing buffers", func() {
//	    flush()
//	})
func (n *Node) AnnotateDuring(annotation string, body func()) {
	previous := n.annotation
	n.annotation = annotation
	defer func() {
		n.annotation = previous
	}()
	body()
}
