package s11n_test

import (
	"strings"
	"testing"

	"github.com/lestrrat-go/xenon/node"
	"github.com/lestrrat-go/xenon/s11n"
	"github.com/stretchr/testify/require"
)

func dump(t *testing.T, d *s11n.Dumper, doc *node.Document) string {
	t.Helper()
	var sb strings.Builder
	require.NoError(t, d.DumpDoc(&sb, doc))
	return sb.String()
}

func buildDoc(t *testing.T) *node.Document {
	t.Helper()
	doc := node.NewDocument()
	root := doc.CreateElement("root")
	require.NoError(t, doc.AppendChild(root))

	title := doc.CreateElement("title")
	require.NoError(t, title.AppendChild(doc.CreateText("hello")))
	require.NoError(t, root.AppendChild(title))

	item := doc.CreateElement("item")
	item.SetAttribute("n", "1")
	require.NoError(t, root.AppendChild(item))
	return doc
}

func TestDumpCompact(t *testing.T) {
	doc := buildDoc(t)
	d := &s11n.Dumper{}
	require.Equal(t, `<root><title>hello</title><item n="1"/></root>`, dump(t, d, doc),
		"compact output adds no whitespace")
}

func TestDumpPretty(t *testing.T) {
	doc := buildDoc(t)
	d := &s11n.Dumper{Pretty: true}
	const expected = `<root>
  <title>hello</title>
  <item n="1"/>
</root>
`
	require.Equal(t, expected, dump(t, d, doc),
		"a lone text child stays on the element's line")
}

func TestDumpPrettyDeclaration(t *testing.T) {
	doc := buildDoc(t)
	decl, err := doc.CreateDeclaration("1.0", "UTF-8", "")
	require.NoError(t, err)
	require.NoError(t, doc.InsertChildBefore(decl, doc.DocumentElement()))

	out := dump(t, &s11n.Dumper{Pretty: true}, doc)
	require.True(t, strings.HasPrefix(out, "<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n<root>"),
		"the declaration gets its own line")
}

func TestDumpAttributeEscaping(t *testing.T) {
	doc := node.NewDocument()
	root := doc.CreateElement("r")
	root.SetAttribute("a", `1 < 2 "sure"`)
	require.NoError(t, doc.AppendChild(root))

	require.Equal(t, `<r a="1 &lt; 2 &quot;sure&quot;"/>`, dump(t, &s11n.Dumper{}, doc))
}

func TestDumpTextEscaping(t *testing.T) {
	doc := node.NewDocument()
	root := doc.CreateElement("r")
	require.NoError(t, root.AppendChild(doc.CreateText("a & b < c")))
	require.NoError(t, doc.AppendChild(root))

	require.Equal(t, `<r>a &amp; b &lt; c</r>`, dump(t, &s11n.Dumper{}, doc))
}

func TestDumpDocumentType(t *testing.T) {
	doc := node.NewDocument()
	dt := doc.CreateDocumentType("catalog", node.ExternalIDPublic, "-//X//DTD//EN", "http://x/cat.dtd")
	require.NoError(t, doc.AppendChild(dt))

	decl := doc.CreateElementDecl("book")
	decl.SetContent(&node.ElementContent{
		Sep: ',',
		Children: []*node.ElementContent{
			{Name: "title"},
			{Name: "author", Occur: node.OccurPlus},
		},
	})
	require.NoError(t, dt.AppendChild(decl))

	attlist := doc.CreateAttributeDecl("book")
	attlist.AddDef(node.AttDef{
		Name:    "lang",
		Default: node.AttrDefaultImplied,
		Enumeration: []string{"en", "fr"},
	})
	require.NoError(t, dt.AppendChild(attlist))

	require.NoError(t, doc.AppendChild(doc.CreateElement("catalog")))

	out := dump(t, &s11n.Dumper{}, doc)
	require.Equal(t,
		`<!DOCTYPE catalog PUBLIC "-//X//DTD//EN" "http://x/cat.dtd" [`+
			`<!ELEMENT book (title,author+)>`+
			`<!ATTLIST book lang (en|fr) #IMPLIED>`+
			`]><catalog/>`,
		out)
}

func TestDumpEntityAndNotation(t *testing.T) {
	doc := node.NewDocument()
	dt := doc.CreateDocumentType("d", node.ExternalIDNone, "", "")
	require.NoError(t, doc.AppendChild(dt))

	ent := doc.CreateEntity("pic", "")
	ent.SetExternalID(node.ExternalIDSystem, "", "pic.gif")
	ent.SetNotation("gif")
	require.NoError(t, dt.AppendChild(ent))

	n := doc.CreateNotation("gif", node.ExternalIDPublic, "image/gif", "")
	require.NoError(t, dt.AppendChild(n))

	require.NoError(t, doc.AppendChild(doc.CreateElement("d")))

	out := dump(t, &s11n.Dumper{}, doc)
	require.Contains(t, out, `<!ENTITY pic SYSTEM "pic.gif" NDATA gif>`)
	require.Contains(t, out, `<!NOTATION gif PUBLIC "image/gif">`)
}

func TestWriterQuoteChoice(t *testing.T) {
	var sb strings.Builder
	w := s11n.NewWriter(&sb, false)
	w.PutQuoted(`plain`)
	w.PutQuoted(`has "quotes"`)
	require.NoError(t, w.Err())
	require.Equal(t, `"plain"'has "quotes"'`, sb.String(),
		"the single quote is the fallback delimiter")
}
