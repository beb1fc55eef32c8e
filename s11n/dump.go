package s11n

import (
	"io"

	"github.com/lestrrat-go/xenon/node"
)

// Dumper serializes a tree. The zero value produces compact output
// that adds no whitespace of its own; set Pretty for indented form.
type Dumper struct {
	Pretty bool
	Indent string
}

func (d *Dumper) newWriter(out io.Writer) *Writer {
	w := NewWriter(out, d.Pretty)
	if d.Indent != "" {
		w.SetIndent(d.Indent)
	}
	return w
}

func (d *Dumper) DumpDoc(out io.Writer, doc *node.Document) error {
	w := d.newWriter(out)
	for e := doc.FirstChild(); e != nil; e = e.NextSibling() {
		w.OpenLine()
		dumpNode(w, e)
	}
	if d.Pretty && w.Err() == nil {
		w.PutString("\n")
	}
	return w.Err()
}

func (d *Dumper) DumpNode(out io.Writer, n node.Node) error {
	w := d.newWriter(out)
	dumpNode(w, n)
	return w.Err()
}

func dumpNode(w *Writer, n node.Node) {
	switch n.Type() {
	case node.DocumentNodeType:
		for e := n.FirstChild(); e != nil; e = e.NextSibling() {
			w.OpenLine()
			dumpNode(w, e)
		}
	case node.DeclarationNodeType:
		dumpDeclaration(w, n.(*node.Declaration))
	case node.DocumentTypeNodeType:
		dumpDocumentType(w, n.(*node.DocumentType))
	case node.ElementNodeType:
		dumpElement(w, n.(*node.Element))
	case node.AttributeNodeType:
		a := n.(*node.Attribute)
		w.PutAttribute(a.Name(), a.EncodedValue())
	case node.TextNodeType:
		w.PutString(n.(*node.Text).EncodedValue())
	case node.CDATASectionNodeType:
		w.PutCDATA(n.(*node.CDATASection).Value())
	case node.CommentNodeType:
		w.PutComment(n.(*node.Comment).Value())
	case node.ProcessingInstructionNodeType:
		pi := n.(*node.ProcessingInstruction)
		w.PutProcessingInstruction(pi.Target(), pi.Value())
	case node.WhitespaceNodeType:
		w.PutString(n.(*node.Whitespace).Value())
	case node.SignificantWhitespaceNodeType:
		w.PutString(n.(*node.SignificantWhitespace).Value())
	case node.EntityNodeType:
		w.PutEntityGeneral(n.(*node.Entity))
	case node.EntityRefNodeType:
		w.PutEntityReference(n.Name())
	case node.NotationNodeType:
		w.PutNotation(n.(*node.Notation))
	case node.AttributeDeclNodeType:
		dumpAttributeDecl(w, n.(*node.AttributeDecl))
	case node.ElementDeclNodeType:
		dumpElementDecl(w, n.(*node.ElementDecl))
	case node.DocumentFragNodeType:
		for e := n.FirstChild(); e != nil; e = e.NextSibling() {
			w.OpenLine()
			dumpNode(w, e)
		}
	}
}

func dumpDeclaration(w *Writer, decl *node.Declaration) {
	w.PutString("<?xml")
	for a := decl.FirstAttribute(); a != nil; a = a.NextAttribute() {
		w.PutAttribute(a.Name(), a.EncodedValue())
	}
	w.PutString("?>")
}

func dumpElement(w *Writer, e *node.Element) {
	w.PutElementNameBegin(e.Name())
	for a := e.FirstAttribute(); a != nil; a = a.NextAttribute() {
		w.PutAttribute(a.Name(), a.EncodedValue())
	}

	child := e.FirstChild()
	if child == nil {
		w.PutElementEmpty()
		return
	}
	w.PutElementNameEnd()

	// a lone text-ish child stays on the element's own line
	inline := child.NextSibling() == nil && isTextish(child)
	if inline {
		w.IncOnlyOneNodeText()
	} else {
		w.IncNodeLevel()
	}
	for ; child != nil; child = child.NextSibling() {
		w.OpenLine()
		dumpNode(w, child)
	}
	if inline {
		w.DecOnlyOneNodeText()
	} else {
		w.DecNodeLevel()
		w.OpenLine()
	}
	w.PutElementEnd(e.Name())
}

func isTextish(n node.Node) bool {
	switch n.Type() {
	case node.TextNodeType, node.CDATASectionNodeType, node.EntityRefNodeType,
		node.WhitespaceNodeType, node.SignificantWhitespaceNodeType:
		return true
	}
	return false
}

func dumpDocumentType(w *Writer, dt *node.DocumentType) {
	w.PutDocumentTypeBegin(dt.Name())
	w.PutExternalID(dt.ExternalID(), dt.PublicID(), dt.SystemID())

	if dt.FirstChild() != nil {
		w.PutString(" [")
		w.IncNodeLevel()
		for c := dt.FirstChild(); c != nil; c = c.NextSibling() {
			w.OpenLine()
			dumpNode(w, c)
		}
		w.DecNodeLevel()
		w.OpenLine()
		w.PutString("]")
	}
	w.PutDocumentTypeEnd()
}

func dumpElementDecl(w *Writer, decl *node.ElementDecl) {
	w.PutDocumentTypeElementBegin(decl.Name())
	switch decl.ContentSpec() {
	case node.ContentSpecEmpty:
		w.PutWithPreSpace("EMPTY")
	case node.ContentSpecAny:
		w.PutWithPreSpace("ANY")
	case node.ContentSpecChildren:
		w.PutString(" ")
		dumpElementContent(w, decl.Content())
	}
	w.PutDocumentTypeElementEnd()
}

func dumpElementContent(w *Writer, c *node.ElementContent) {
	if c == nil {
		return
	}
	if c.Name != "" {
		w.PutString(c.Name)
		w.PutString(c.Occur.Token())
		return
	}
	w.PutString("(")
	for i, child := range c.Children {
		if i > 0 {
			w.Put(rune(c.Sep))
		}
		dumpElementContent(w, child)
	}
	w.PutString(")")
	w.PutString(c.Occur.Token())
}

func dumpAttributeDecl(w *Writer, decl *node.AttributeDecl) {
	w.PutDocumentTypeAttributeListBegin(decl.Name())
	for _, def := range decl.Defs() {
		w.PutWithPreSpace(def.Name)
		if def.Type != "" {
			w.PutWithPreSpace(def.Type)
		}
		if len(def.Enumeration) > 0 {
			w.PutString(" (")
			for i, item := range def.Enumeration {
				if i > 0 {
					w.PutString("|")
				}
				w.PutString(item)
			}
			w.PutString(")")
		}
		if def.Default != node.AttrDefaultNone {
			w.PutWithPreSpace(def.Default.String())
		}
		if def.HasDefault {
			w.PutString(" ")
			w.PutQuoted(def.DefaultValue.String())
		}
	}
	w.PutDocumentTypeAttributeListEnd()
}
