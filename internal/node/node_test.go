package node

import (
	"errors"
	"testing"

	"github.com/specialistvlad/nodegraph/internal/path"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// names returns the names of the direct children of n, in order.
func names(n *Node) []string {
	out := make([]string, 0, n.Len())
	for _, c := range n.Children() {
		out = append(out, c.Name())
	}
	return out
}

// build creates a hierarchy from a parent -> children map, starting at root.
func build(t *testing.T, root string, edges map[string][]string) *Node {
	t.Helper()
	r := New(root)
	var grow func(n *Node)
	grow = func(n *Node) {
		for _, name := range edges[n.Name()] {
			require.NoError(t, n.AddChild(name))
			child, err := n.FindChild(name)
			require.NoError(t, err)
			grow(child)
		}
	}
	grow(r)
	return r
}

// demo builds A{B, C{I, J}, D{E, F{G, H}}} without the back edge.
func demo(t *testing.T) *Node {
	t.Helper()
	return build(t, "A", map[string][]string{
		"A": {"B", "C", "D"},
		"C": {"I", "J"},
		"D": {"E", "F"},
		"F": {"G", "H"},
	})
}

func TestNew(t *testing.T) {
	n := New("A")
	require.NotNil(t, n)
	assert.Equal(t, "A", n.Name())
	assert.Equal(t, "A", n.String())
	assert.Equal(t, 0, n.Len())
	assert.Empty(t, n.Children())
}

func TestAddChild(t *testing.T) {
	t.Run("added child is found by name", func(t *testing.T) {
		for _, name := range []string{"B", "x", "", "with space"} {
			n := New("A")
			require.NoError(t, n.AddChild(name))

			child, err := n.FindChild(name)
			require.NoError(t, err)
			assert.Equal(t, name, child.Name())
			assert.Equal(t, 0, child.Len())
		}
	})

	t.Run("keeps insertion order", func(t *testing.T) {
		n := New("A")
		require.NoError(t, n.AddChild("C"))
		require.NoError(t, n.AddChild("B"))
		require.NoError(t, n.AddChild("D"))
		assert.Equal(t, []string{"C", "B", "D"}, names(n))
	})

	t.Run("duplicate name fails and leaves children unchanged", func(t *testing.T) {
		n := New("A")
		require.NoError(t, n.AddChild("B"))
		first, _ := n.FindChild("B")

		err := n.AddChild("B")
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrAlreadyExists))
		assert.ErrorContains(t, err, `"B"`)

		assert.Equal(t, []string{"B"}, names(n))
		again, _ := n.FindChild("B")
		assert.Same(t, first, again)
	})

	t.Run("only direct children are checked", func(t *testing.T) {
		n := demo(t)
		d, err := n.FindChild("D")
		require.NoError(t, err)
		require.NoError(t, d.AddChild("B"), "B is a sibling of D, not a child")
	})
}

func TestAddChildNode(t *testing.T) {
	t.Run("allows duplicate names", func(t *testing.T) {
		n := New("A")
		require.NoError(t, n.AddChild("B"))
		other := New("B")
		n.AddChildNode(other)
		assert.Equal(t, []string{"B", "B"}, names(n))

		first, _ := n.FindChild("B")
		assert.NotSame(t, other, first, "first match wins")
	})

	t.Run("allows shared references", func(t *testing.T) {
		shared := New("S")
		p1, p2 := New("P1"), New("P2")
		p1.AddChildNode(shared)
		p2.AddChildNode(shared)

		c1, _ := p1.FindChild("S")
		c2, _ := p2.FindChild("S")
		assert.Same(t, c1, c2)
	})

	t.Run("allows self reference", func(t *testing.T) {
		n := New("A")
		n.AddChildNode(n)
		child, err := n.FindChild("A")
		require.NoError(t, err)
		assert.Same(t, n, child)
	})
}

func TestFindChild(t *testing.T) {
	n := demo(t)

	t.Run("direct child", func(t *testing.T) {
		c, err := n.FindChild("C")
		require.NoError(t, err)
		assert.Equal(t, "C", c.Name())

		c2, ok := n.FindChildOrDefault("C")
		require.True(t, ok)
		assert.Same(t, c, c2)
	})

	t.Run("descendant is not a direct child", func(t *testing.T) {
		_, ok := n.FindChildOrDefault("I")
		assert.False(t, ok)

		c, err := n.FindChild("I")
		assert.Nil(t, c)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("receiver is not its own child", func(t *testing.T) {
		_, err := n.FindChild("A")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestFind(t *testing.T) {
	n := demo(t)

	tests := []struct {
		name  string
		found bool
	}{
		{name: "B", found: true},
		{name: "I", found: true},
		{name: "J", found: true},
		{name: "H", found: true},
		{name: "G", found: true},
		{name: "A", found: false},
		{name: "Z", found: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := n.FindOrDefault(tt.name)
			assert.Equal(t, tt.found, ok)

			got2, err := n.Find(tt.name)
			if tt.found {
				require.NoError(t, err)
				assert.Equal(t, tt.name, got.Name())
				assert.Same(t, got, got2)
			} else {
				assert.Nil(t, got)
				assert.ErrorIs(t, err, ErrNotFound)
			}
		})
	}

	t.Run("pre-order, first match wins", func(t *testing.T) {
		// A{X{Y}, Y}: the Y under X is reached before the sibling Y.
		a := New("A")
		x := New("X")
		deep := New("Y")
		shallow := New("Y")
		x.AddChildNode(deep)
		a.AddChildNode(x)
		a.AddChildNode(shallow)

		got, ok := a.FindOrDefault("Y")
		require.True(t, ok)
		assert.Same(t, deep, got)
	})

	t.Run("child compared before its subtree", func(t *testing.T) {
		// A{Y{Y}}: the outer Y matches before recursing.
		a := New("A")
		outer := New("Y")
		inner := New("Y")
		outer.AddChildNode(inner)
		a.AddChildNode(outer)

		got, err := a.Find("Y")
		require.NoError(t, err)
		assert.Same(t, outer, got)
	})
}

func TestRemoveChild(t *testing.T) {
	t.Run("by name", func(t *testing.T) {
		n := demo(t)
		require.NoError(t, n.RemoveChild("C"))
		assert.Equal(t, []string{"B", "D"}, names(n))
		_, ok := n.FindOrDefault("I")
		assert.False(t, ok, "removing C detaches its subtree from A")
	})

	t.Run("by name removes only the first match", func(t *testing.T) {
		n := New("A")
		require.NoError(t, n.AddChild("B"))
		second := New("B")
		n.AddChildNode(second)

		require.NoError(t, n.RemoveChild("B"))
		require.Equal(t, 1, n.Len())
		assert.Same(t, second, n.Children()[0])
	})

	t.Run("by missing name fails", func(t *testing.T) {
		n := demo(t)
		err := n.RemoveChild("I")
		assert.ErrorIs(t, err, ErrNotFound)
		assert.Equal(t, []string{"B", "C", "D"}, names(n))
	})

	t.Run("by reference", func(t *testing.T) {
		n := demo(t)
		d, _ := n.FindChild("D")
		n.RemoveChildNode(d)
		assert.Equal(t, []string{"B", "C"}, names(n))
	})

	t.Run("by reference compares identity, not name", func(t *testing.T) {
		n := demo(t)
		n.RemoveChildNode(New("D"))
		assert.Equal(t, []string{"B", "C", "D"}, names(n))
	})

	t.Run("by missing reference is a no-op", func(t *testing.T) {
		n := demo(t)
		i, err := n.Find("I")
		require.NoError(t, err)
		n.RemoveChildNode(i)
		assert.Equal(t, []string{"B", "C", "D"}, names(n))
	})

	t.Run("add then remove restores the list", func(t *testing.T) {
		n := demo(t)
		before := n.Children()

		require.NoError(t, n.AddChild("K"))
		require.NoError(t, n.RemoveChild("K"))

		after := n.Children()
		require.Len(t, after, len(before))
		for i := range before {
			assert.Same(t, before[i], after[i])
		}
	})
}

func TestChildrenReturnsCopy(t *testing.T) {
	n := demo(t)
	children := n.Children()
	children[0] = New("Z")
	assert.Equal(t, []string{"B", "C", "D"}, names(n))
}

func TestTrace(t *testing.T) {
	n := demo(t)

	tests := []struct {
		target string
		want   []string
	}{
		{target: "B", want: []string{"A", "B"}},
		{target: "I", want: []string{"A", "C", "I"}},
		{target: "E", want: []string{"A", "D", "E"}},
		{target: "H", want: []string{"A", "D", "F", "H"}},
	}
	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			p := path.New()
			require.True(t, n.Trace(tt.target, p))
			assert.Equal(t, tt.want, p.Names())
		})
	}

	t.Run("missing target leaves the path empty", func(t *testing.T) {
		p := path.New()
		assert.False(t, n.Trace("Z", p))
		assert.Equal(t, 0, p.Len())
	})

	t.Run("missing target leaves a seeded path untouched", func(t *testing.T) {
		p := path.New("X", "Y")
		assert.False(t, n.Trace("Z", p))
		assert.Equal(t, []string{"X", "Y"}, p.Names())
	})

	t.Run("receiver name alone is not a match", func(t *testing.T) {
		p := path.New()
		assert.False(t, n.Trace("A", p))
		assert.Equal(t, 0, p.Len())
	})

	t.Run("from an inner node", func(t *testing.T) {
		d, err := n.Find("D")
		require.NoError(t, err)
		p := path.New()
		require.True(t, d.Trace("G", p))
		assert.Equal(t, []string{"D", "F", "G"}, p.Names())
	})
}

func TestFindCycle(t *testing.T) {
	t.Run("acyclic hierarchy", func(t *testing.T) {
		p := path.New()
		assert.False(t, demo(t).FindCycle(p))
		assert.Equal(t, 0, p.Len())
	})

	t.Run("single node", func(t *testing.T) {
		p := path.New()
		assert.False(t, New("A").FindCycle(p))
		assert.Equal(t, 0, p.Len())
	})

	t.Run("back edge to the root", func(t *testing.T) {
		root := demo(t)
		h, err := root.Find("H")
		require.NoError(t, err)
		h.AddChildNode(root)

		p := path.New()
		require.True(t, root.FindCycle(p))
		assert.Equal(t, []string{"A", "D", "F", "H", "A"}, p.Names())
	})

	t.Run("back edge to an inner ancestor", func(t *testing.T) {
		root := demo(t)
		j, err := root.Find("J")
		require.NoError(t, err)
		c, err := root.Find("C")
		require.NoError(t, err)
		j.AddChildNode(c)

		p := path.New()
		require.True(t, root.FindCycle(p))
		assert.Equal(t, []string{"A", "C", "J", "C"}, p.Names())
	})

	t.Run("self loop", func(t *testing.T) {
		n := New("A")
		n.AddChildNode(n)
		p := path.New()
		require.True(t, n.FindCycle(p))
		assert.Equal(t, []string{"A", "A"}, p.Names())
	})

	t.Run("shared node is not a cycle", func(t *testing.T) {
		// A{B{S}, C{S}}: S is reached twice but never through itself.
		a := New("A")
		shared := New("S")
		require.NoError(t, a.AddChild("B"))
		require.NoError(t, a.AddChild("C"))
		b, _ := a.FindChild("B")
		c, _ := a.FindChild("C")
		b.AddChildNode(shared)
		c.AddChildNode(shared)

		p := path.New()
		assert.False(t, a.FindCycle(p))
		assert.Equal(t, 0, p.Len())
	})

	t.Run("same name on one path counts as a cycle", func(t *testing.T) {
		// A{B{A'}} where A' is a distinct node named A.
		a := New("A")
		require.NoError(t, a.AddChild("B"))
		b, _ := a.FindChild("B")
		require.NoError(t, b.AddChild("A"))

		p := path.New()
		require.True(t, a.FindCycle(p))
		assert.Equal(t, []string{"A", "B", "A"}, p.Names())
	})
}
