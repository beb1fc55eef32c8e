package xenon_test

import (
	"strings"
	"testing"

	"github.com/lestrrat-go/xenon"
	"github.com/lestrrat-go/xenon/node"
	"github.com/stretchr/testify/require"
)

// reparsing compact output must be a fixed point: parse, serialize,
// parse again, serialize again, and the two renderings agree
func roundtrip(t *testing.T, input string) string {
	t.Helper()

	doc, err := xenon.ParseString(input)
	require.NoError(t, err, "Parse should succeed for '%s'", input)

	first, err := xenon.Serialize(doc, false)
	require.NoError(t, err, "Serialize should succeed")

	doc2, err := xenon.ParseString(first)
	require.NoError(t, err, "reparse should succeed for '%s'", first)

	second, err := xenon.Serialize(doc2, false)
	require.NoError(t, err)
	require.Equal(t, first, second, "serialization should be stable across a reparse")
	return first
}

func TestRoundTripMinimal(t *testing.T) {
	require.Equal(t, `<r/>`, roundtrip(t, `<r/>`))
}

func TestRoundTripVerbatim(t *testing.T) {
	inputs := []string{
		`<r/>`,
		`<r a="v"/>`,
		`<r><c/><c/></r>`,
		`<r>text</r>`,
		`<r>a&gt;b</r>`,
		`<?xml version="1.0" encoding="UTF-8"?><r/>`,
		`<r><!-- c --><?pi data?><![CDATA[x]]></r>`,
		`<x:r xmlns:x="urn:x"><x:c/></x:r>`,
	}
	for _, input := range inputs {
		roundtrip(t, input)
	}
}

func TestRoundTripEscapedTree(t *testing.T) {
	// tree built through the factories, serialized with every kind of
	// escaping in play
	doc := node.NewDocument()
	root := doc.CreateElement("root")
	require.NoError(t, doc.AppendChild(root))

	require.NoError(t, root.AppendChild(doc.CreateElement("prefix:localname")))

	a := doc.CreateElement("a")
	a.SetAttribute("a", "value")
	require.NoError(t, root.AppendChild(a))

	a2 := doc.CreateElement("a2")
	a2.SetAttribute("a2", `&<>'"`)
	require.NoError(t, root.AppendChild(a2))

	c := doc.CreateElement("c")
	c.AppendChild(doc.CreateComment("--comment--"))
	require.NoError(t, root.AppendChild(c))

	te := doc.CreateElement("t")
	require.NoError(t, te.AppendChild(doc.CreateText("text")))
	require.NoError(t, root.AppendChild(te))

	cdata, err := doc.CreateCDATASection("data &<>")
	require.NoError(t, err)
	require.NoError(t, root.AppendChild(cdata))

	const expected = `<root><prefix:localname/><a a="value"/>` +
		`<a2 a2="&amp;&lt;&gt;&apos;&quot;"/>` +
		`<c><!----comment----></c><t>text</t><![CDATA[data &<>]]></root>`

	out, err := xenon.Serialize(doc, false)
	require.NoError(t, err)
	require.Equal(t, expected, out)

	// and the rendering itself parses back to an equivalent tree
	require.Equal(t, expected, roundtrip(t, expected))

	doc2, err := xenon.ParseString(expected)
	require.NoError(t, err)
	attr := doc2.DocumentElement().FindElement("a2").FindAttribute("a2")
	require.NotNil(t, attr)
	require.Equal(t, `&<>'"`, attr.Value(), "escapes should decode on read")
}

func TestRoundTripDeclaration(t *testing.T) {
	const input = `<?xml version="1.0" encoding="UTF-8"?><r/>`
	doc, err := xenon.ParseString(input)
	require.NoError(t, err)

	decl := doc.Declaration()
	require.NotNil(t, decl)
	require.Equal(t, "1.0", decl.Version())
	require.Equal(t, "UTF-8", decl.Encoding())

	out, err := xenon.Serialize(doc, false)
	require.NoError(t, err)
	require.Equal(t, input, out)
}

func TestRoundTripDocType(t *testing.T) {
	const input = `<!DOCTYPE myDoc SYSTEM "http://x/y" [
  <!ELEMENT e ANY>
  <!ENTITY r "replacement">
  <!ATTLIST f g CDATA #REQUIRED>
]>
<r/>`
	out := roundtrip(t, input)
	require.Contains(t, out, `<!DOCTYPE myDoc SYSTEM "http://x/y" [`)
	require.Contains(t, out, `<!ELEMENT e ANY>`)
	require.Contains(t, out, `<!ENTITY r "replacement">`)
	require.Contains(t, out, `<!ATTLIST f g CDATA #REQUIRED>`)
}

func TestPredefinedEntityEncoding(t *testing.T) {
	require.Equal(t, "plain text", node.EncodeSpecials("plain text"),
		"text without specials should be untouched")
	require.Equal(t, "&amp;&lt;&gt;&apos;&quot;", node.EncodeSpecials(`&<>'"`))

	tbl := node.NewEntityTable()
	decoded, err := tbl.Decode("&amp;&lt;&gt;&apos;&quot;")
	require.NoError(t, err)
	require.Equal(t, `&<>'"`, decoded, "decode should invert encode")
}

// buildCatalog produces the books sample: a catalog of 12 book
// elements, each with 7 element children holding one text node each
func buildCatalog() string {
	var sb strings.Builder
	sb.WriteString(`<?xml version="1.0"?><catalog>`)
	fields := []string{"author", "title", "genre", "price", "publish_date", "description", "isbn"}
	for i := 0; i < 12; i++ {
		sb.WriteString("<book>")
		for _, f := range fields {
			sb.WriteString("<" + f + ">v</" + f + ">")
		}
		sb.WriteString("</book>")
	}
	sb.WriteString(`</catalog>`)
	return sb.String()
}

func countDescendants(n node.Node) int {
	total := 0
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		total += 1 + countDescendants(c)
	}
	return total
}

func TestDeepIterationCount(t *testing.T) {
	doc, err := xenon.ParseString(buildCatalog())
	require.NoError(t, err, "Parse should succeed")

	root := doc.DocumentElement()
	deep := root.GetChildNodes(true)

	// 12 books + 12*7 field elements + 12*7 text nodes
	require.Equal(t, 12+12*7+12*7, countDescendants(root))
	require.Equal(t, countDescendants(root), deep.Length(),
		"deep list length should equal the descendant count")
}
