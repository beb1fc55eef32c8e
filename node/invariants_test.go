package node_test

import (
	"testing"

	"github.com/lestrrat-go/xenon/node"
	"github.com/stretchr/testify/require"
)

func TestAppendSelfRejected(t *testing.T) {
	doc := node.NewDocument()
	e := doc.CreateElement("e")
	require.ErrorIs(t, e.AppendChild(e), node.ErrInvalidOperation)
}

func TestAppendAncestorRejected(t *testing.T) {
	doc := node.NewDocument()
	a := doc.CreateElement("a")
	b := doc.CreateElement("b")
	c := doc.CreateElement("c")
	require.NoError(t, a.AppendChild(b))
	require.NoError(t, b.AppendChild(c))

	require.ErrorIs(t, c.AppendChild(a), node.ErrInvalidOperation,
		"a node cannot become a descendant of itself")
}

func TestCrossDocumentRejected(t *testing.T) {
	d1 := node.NewDocument()
	d2 := node.NewDocument()

	stray := d1.CreateElement("stray")
	host := d2.CreateElement("host")
	require.NoError(t, d2.AppendChild(host))

	require.ErrorIs(t, host.AppendChild(stray), node.ErrInvalidOperation,
		"cross-document moves are rejected outside of loading")

	// the tree is left unchanged on failure
	require.Nil(t, host.FirstChild())
	require.Nil(t, stray.Parent())
}

func TestDocumentSingletonChildren(t *testing.T) {
	doc := node.NewDocument()

	r1 := doc.CreateElement("r1")
	require.NoError(t, doc.AppendChild(r1))
	r2 := doc.CreateElement("r2")
	require.ErrorIs(t, doc.AppendChild(r2), node.ErrInvalidOperation,
		"a document holds at most one element")

	d1, err := doc.CreateDeclaration("1.0", "", "")
	require.NoError(t, err)
	require.NoError(t, doc.AppendChild(d1))
	d2, err := doc.CreateDeclaration("1.0", "", "")
	require.NoError(t, err)
	require.ErrorIs(t, doc.AppendChild(d2), node.ErrInvalidOperation,
		"a document holds at most one declaration")
}

func TestPermittedChildren(t *testing.T) {
	doc := node.NewDocument()

	t.Run("TextUnderDocument", func(t *testing.T) {
		require.ErrorIs(t, doc.AppendChild(doc.CreateText("x")), node.ErrInvalidOperation)
	})

	t.Run("ChildUnderText", func(t *testing.T) {
		text := doc.CreateText("x")
		require.ErrorIs(t, text.AppendChild(doc.CreateElement("e")), node.ErrInvalidOperation)
	})

	t.Run("DeclUnderElement", func(t *testing.T) {
		e := doc.CreateElement("e")
		decl := doc.CreateElementDecl("d")
		require.ErrorIs(t, e.AppendChild(decl), node.ErrInvalidOperation)
	})

	t.Run("DeclUnderDocumentType", func(t *testing.T) {
		dt := doc.CreateDocumentType("d", node.ExternalIDNone, "", "")
		require.NoError(t, dt.AppendChild(doc.CreateElementDecl("d")))
	})
}

func TestDocumentFragment(t *testing.T) {
	doc := node.NewDocument()
	frag := doc.CreateDocumentFragment()
	require.NoError(t, frag.AppendChild(doc.CreateElement("a")))
	require.NoError(t, frag.AppendChild(doc.CreateElement("b")))

	host := doc.CreateElement("host")
	require.NoError(t, host.AppendChild(frag))

	require.Nil(t, frag.FirstChild(), "appending a fragment moves its children")
	require.Equal(t, "a", host.FirstChild().Name())
	require.Equal(t, "b", host.LastChild().Name())
}

func TestWhitespaceNodes(t *testing.T) {
	doc := node.NewDocument()

	ws, err := doc.CreateWhitespace(" \t\r\n")
	require.NoError(t, err)
	require.Equal(t, " \t\r\n", ws.Value())

	_, err = doc.CreateWhitespace(" x ")
	require.ErrorIs(t, err, node.ErrNotAllWhitespace)

	sig, err := doc.CreateSignificantWhitespace("  ")
	require.NoError(t, err)
	require.ErrorIs(t, sig.SetValue("nope"), node.ErrNotAllWhitespace)
}

func TestCDATATerminatorRejected(t *testing.T) {
	doc := node.NewDocument()
	_, err := doc.CreateCDATASection("a ]]> b")
	require.ErrorIs(t, err, node.ErrInvalidCDATAContent,
		"CDATA content containing the terminator cannot be represented")
}

func TestDeclarationValidation(t *testing.T) {
	doc := node.NewDocument()

	_, err := doc.CreateDeclaration("not/valid", "", "")
	require.ErrorIs(t, err, node.ErrInvalidVersion)

	_, err = doc.CreateDeclaration("1.0", "", "perhaps")
	require.ErrorIs(t, err, node.ErrInvalidStandalone)

	decl, err := doc.CreateDeclaration("1.0", "UTF-8", "yes")
	require.NoError(t, err)
	require.Equal(t, "yes", decl.Standalone())
	require.ErrorIs(t, decl.SetStandalone("YES"), node.ErrInvalidStandalone)
}
