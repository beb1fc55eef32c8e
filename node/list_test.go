package node_test

import (
	"testing"

	"github.com/lestrrat-go/xenon/node"
	"github.com/stretchr/testify/require"
)

// buildTree produces
//
//	root
//	├── a (x="1")
//	│   └── a1
//	├── b
//	└── c
//	    ├── c1
//	    └── c2
func buildTree(t *testing.T) (*node.Document, *node.Element) {
	t.Helper()
	doc := node.NewDocument()
	root := doc.CreateElement("root")
	require.NoError(t, doc.AppendChild(root))

	a := doc.CreateElement("a")
	a.SetAttribute("x", "1")
	require.NoError(t, root.AppendChild(a))
	require.NoError(t, a.AppendChild(doc.CreateElement("a1")))

	require.NoError(t, root.AppendChild(doc.CreateElement("b")))

	c := doc.CreateElement("c")
	require.NoError(t, root.AppendChild(c))
	require.NoError(t, c.AppendChild(doc.CreateElement("c1")))
	require.NoError(t, c.AppendChild(doc.CreateElement("c2")))
	return doc, root
}

func names(l *node.List) []string {
	var out []string
	for n := l.PopFront(); n != nil; n = l.PopFront() {
		out = append(out, n.Name())
	}
	return out
}

func TestListChildNodes(t *testing.T) {
	_, root := buildTree(t)
	l := root.GetChildNodes(false)

	require.False(t, l.Empty())
	require.Equal(t, 3, l.Length())
	require.Equal(t, []string{"a", "b", "c"}, names(l))
	require.True(t, l.Empty())

	l.Reset()
	require.Equal(t, "a", l.Front().Name(), "Reset rewinds to the beginning")
}

func TestListChildNodesDeep(t *testing.T) {
	_, root := buildTree(t)
	l := root.GetChildNodes(true)

	require.Equal(t, []string{"a", "a1", "b", "c", "c1", "c2"}, names(l),
		"deep traversal is preorder")
}

func TestListAttributes(t *testing.T) {
	doc := node.NewDocument()
	e := doc.CreateElement("e")
	e.SetAttribute("one", "1")
	e.SetAttribute("two", "2")

	l := e.GetAttributes()
	require.Equal(t, node.ListModeAttributes, l.Mode())
	require.Equal(t, 2, l.Length())
	require.Equal(t, []string{"one", "two"}, names(l))
}

func TestListFlat(t *testing.T) {
	doc := node.NewDocument()
	nodes := []node.Node{
		doc.CreateElement("x"),
		doc.CreateElement("y"),
	}
	l := node.NewFlatList(nodes, nil)
	require.Equal(t, 2, l.Length())
	require.Equal(t, []string{"x", "y"}, names(l))
}

func TestListFilter(t *testing.T) {
	doc := node.NewDocument()
	root := doc.CreateElement("root")
	require.NoError(t, root.AppendChild(doc.CreateText("t1")))
	require.NoError(t, root.AppendChild(doc.CreateElement("e1")))
	require.NoError(t, root.AppendChild(doc.CreateText("t2")))
	require.NoError(t, root.AppendChild(doc.CreateElement("e2")))

	l := root.GetElements()
	require.Equal(t, []string{"e1", "e2"}, names(l),
		"the filter skips non-matching candidates")
}

func TestListRandomAccess(t *testing.T) {
	_, root := buildTree(t)
	l := root.GetChildNodes(false)

	require.Equal(t, "b", l.Item(1).Name())
	require.Nil(t, l.Item(7))
	require.Equal(t, "c", l.Back().Name())
	require.Equal(t, 2, l.IndexOf(l.Item(2)))
	require.Equal(t, -1, l.IndexOf(nil))

	// random access must not disturb the head
	require.Equal(t, "a", l.Front().Name())
}

func TestListSave(t *testing.T) {
	_, root := buildTree(t)
	l := root.GetChildNodes(false)
	l.MoveFront()

	saved := l.Save()
	require.Equal(t, []string{"b", "c"}, names(l))
	require.Equal(t, []string{"b", "c"}, names(saved),
		"a saved copy iterates independently")
}

func TestListRemoveAll(t *testing.T) {
	_, root := buildTree(t)
	l := root.GetChildNodes(false)
	require.NoError(t, l.RemoveAll())
	require.Nil(t, root.FirstChild(), "RemoveAll detaches every listed node")
	require.True(t, l.Empty())
}

func TestListChangeDetection(t *testing.T) {
	t.Run("SiblingList", func(t *testing.T) {
		doc, root := buildTree(t)
		l := root.GetChildNodes(false)
		require.NotNil(t, l.PopFront())

		require.NoError(t, root.AppendChild(doc.CreateElement("late")))

		require.Nil(t, l.PopFront(), "a mutated list must stop yielding nodes")
		require.ErrorIs(t, l.Err(), node.ErrListChanged)
	})

	t.Run("DeepList", func(t *testing.T) {
		doc, root := buildTree(t)
		l := root.GetChildNodes(true)
		require.NotNil(t, l.PopFront())

		// mutate a grandchild: the change propagates to the anchor
		c := root.FindElement("c")
		require.NoError(t, c.AppendChild(doc.CreateElement("late")))

		l.MoveFront()
		require.ErrorIs(t, l.Err(), node.ErrListChanged)
	})

	t.Run("ResetRecovers", func(t *testing.T) {
		doc, root := buildTree(t)
		l := root.GetChildNodes(false)
		require.NoError(t, root.AppendChild(doc.CreateElement("late")))
		l.MoveFront()
		require.ErrorIs(t, l.Err(), node.ErrListChanged)

		l.Reset()
		require.NoError(t, l.Err())
		require.Equal(t, 4, l.Length(), "Reset resynchronizes with the new shape")
	})
}

func TestListDeepTotality(t *testing.T) {
	doc := node.NewDocument()
	root := doc.CreateElement("root")
	require.NoError(t, doc.AppendChild(root))

	// a comb-shaped tree deeper than it is wide
	cur := root
	total := 0
	for i := 0; i < 40; i++ {
		child := doc.CreateElement("d")
		require.NoError(t, cur.AppendChild(child))
		leaf := doc.CreateText("leaf")
		require.NoError(t, child.AppendChild(leaf))
		cur = child
		total += 2
	}

	require.Equal(t, total, root.GetChildNodes(true).Length())
}
