package tasktree_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baxromumarov/tasktree"
)

func TestAnnotate(t *testing.T) {
	n := tasktree.New(tasktree.WithAnnotation("initial"))
	assert.Equal(t, "initial", n.Annotation())

	n.Annotate("updated")
	assert.Equal(t, "updated", n.Annotation())

	n.Annotate("")
	assert.Empty(t, n.Annotation())
}

func TestAnnotateDuringRestoresOnReturn(t *testing.T) {
	n := tasktree.New(tasktree.WithAnnotation("outer"))

	n.AnnotateDuring("inner", func() {
		assert.Equal(t, "inner", n.Annotation())
	})

	assert.Equal(t, "outer", n.Annotation())
}

func TestAnnotateDuringRestoresOnPanic(t *testing.T) {
	n := tasktree.New(tasktree.WithAnnotation("outer"))

	require.PanicsWithValue(t, "boom", func() {
		n.AnnotateDuring("inner", func() {
			panic("boom")
		})
	})

	assert.Equal(t, "outer", n.Annotation())
}

func TestAnnotateDuringNests(t *testing.T) {
	n := tasktree.New()

	n.AnnotateDuring("first", func() {
		n.AnnotateDuring("second", func() {
			assert.Equal(t, "second", n.Annotation())
		})
		assert.Equal(t, "first", n.Annotation())
	})

	assert.Empty(t, n.Annotation())
}

func TestAnnotateDuringKeepsExplicitOverride(t *testing.T) {
	n := tasktree.New(tasktree.WithAnnotation("outer"))

	n.AnnotateDuring("inner", func() {
		// An explicit Annotate inside the body still loses to the restore:
		// the scoped override owns the field for the duration of the body.
		n.Annotate("explicit")
	})

	assert.Equal(t, "outer", n.Annotation())
}
