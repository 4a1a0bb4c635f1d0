package tasktree_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/baxromumarov/tasktree"
)

func TestChildListTransientCount(t *testing.T) {
	parent := tasktree.New()
	regular := tasktree.New(tasktree.WithParent(parent))
	background := tasktree.New(tasktree.WithParent(parent), tasktree.WithTransient())

	children := parent.Children()
	assert.Equal(t, 2, children.Len())
	assert.Equal(t, 1, children.TransientCount())
	assert.False(t, children.Finished())

	regular.SetParent(nil)
	assert.Equal(t, 1, children.Len())
	assert.Equal(t, 1, children.TransientCount())
	assert.True(t, children.Finished(), "only transient children remain")

	background.SetParent(nil)
	assert.Equal(t, 0, children.Len())
	assert.Equal(t, 0, children.TransientCount())
	assert.True(t, children.Finished(), "vacuously finished when empty")
}

func TestChildListTransientCountAfterInterleaving(t *testing.T) {
	parent := tasktree.New()

	var transients []*tasktree.Node
	var regulars []*tasktree.Node
	for i := 0; i < 3; i++ {
		transients = append(transients,
			tasktree.New(tasktree.WithParent(parent), tasktree.WithTransient()))
		regulars = append(regulars,
			tasktree.New(tasktree.WithParent(parent)))
	}

	count := func() int {
		n := 0
		for child := range parent.Children().Each() {
			if child.Transient() {
				n++
			}
		}
		return n
	}

	assert.Equal(t, count(), parent.Children().TransientCount())

	transients[1].SetParent(nil)
	regulars[0].SetParent(nil)
	assert.Equal(t, count(), parent.Children().TransientCount())
	assert.Equal(t, 2, parent.Children().TransientCount())

	regulars[1].SetParent(nil)
	regulars[2].SetParent(nil)
	assert.True(t, parent.Children().Finished())
	assert.Equal(t, parent.Children().Len(), parent.Children().TransientCount())
}

func TestChildListOrderAndMembership(t *testing.T) {
	parent := tasktree.New()
	a := tasktree.New(tasktree.WithParent(parent), tasktree.WithAnnotation("a"))
	b := tasktree.New(tasktree.WithParent(parent), tasktree.WithAnnotation("b"))
	c := tasktree.New(tasktree.WithParent(parent), tasktree.WithAnnotation("c"))

	children := parent.Children()
	assert.Same(t, a, children.First())
	assert.Same(t, c, children.Last())
	assert.True(t, children.Contains(b))

	var order []string
	for child := range children.Each() {
		order = append(order, child.Annotation())
	}
	assert.Equal(t, []string{"a", "b", "c"}, order)

	b.SetParent(nil)
	assert.False(t, children.Contains(b))
	assert.False(t, children.Empty())
}
