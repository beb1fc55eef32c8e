// Package s11n renders a document tree back to XML text. The Writer
// holds the low-level put surface; Dumper walks the tree and drives
// it.
package s11n

import (
	"io"
	"strings"

	"github.com/lestrrat-go/xenon/node"
)

// Writer emits XML text to an io.Writer. When pretty output is on it
// tracks the nesting level and opens a fresh indented line before
// each node, except while an only-one-node-text section is active so
// that <a>text</a> stays on one line.
type Writer struct {
	out             io.Writer
	pretty          bool
	indent          string
	nodeLevel       int
	onlyOneNodeText int
	wrote           bool
	err             error
}

func NewWriter(out io.Writer, pretty bool) *Writer {
	return &Writer{
		out:    out,
		pretty: pretty,
		indent: "  ",
	}
}

func (w *Writer) SetIndent(s string) {
	w.indent = s
}

// Err reports the first write error; once set, every Put is a no-op
func (w *Writer) Err() error {
	return w.err
}

func (w *Writer) Put(r rune) {
	w.PutString(string(r))
}

func (w *Writer) PutString(s string) {
	if w.err != nil || s == "" {
		return
	}
	if _, err := io.WriteString(w.out, s); err != nil {
		w.err = err
		return
	}
	w.wrote = true
}

func (w *Writer) PutWithPreSpace(s string) {
	w.PutString(" ")
	w.PutString(s)
}

// PutQuoted writes a literal surrounded by '"', falling back to "'"
// when the value itself contains a double quote
func (w *Writer) PutQuoted(s string) {
	q := `"`
	if strings.Contains(s, `"`) {
		q = `'`
	}
	w.PutString(q)
	w.PutString(s)
	w.PutString(q)
}

func (w *Writer) IncNodeLevel() {
	w.nodeLevel++
}

func (w *Writer) DecNodeLevel() {
	w.nodeLevel--
}

func (w *Writer) IncOnlyOneNodeText() {
	w.onlyOneNodeText++
}

func (w *Writer) DecOnlyOneNodeText() {
	w.onlyOneNodeText--
}

// OpenLine starts a new indented line for the next node. It is a
// no-op in non-pretty mode, while only-one-node-text is active, and
// before the very first output.
func (w *Writer) OpenLine() {
	if !w.pretty || w.onlyOneNodeText > 0 {
		return
	}
	if !w.wrote {
		return
	}
	w.PutString("\n")
	for range w.nodeLevel {
		w.PutString(w.indent)
	}
}

// Structural helpers

func (w *Writer) PutElementNameBegin(name string) {
	w.PutString("<")
	w.PutString(name)
}

func (w *Writer) PutElementNameEnd() {
	w.PutString(">")
}

func (w *Writer) PutElementEnd(name string) {
	w.PutString("</")
	w.PutString(name)
	w.PutString(">")
}

func (w *Writer) PutElementEmpty() {
	w.PutString("/>")
}

// PutAttribute writes one attribute; the value must already carry
// its escapes
func (w *Writer) PutAttribute(name, encoded string) {
	w.PutWithPreSpace(name)
	w.PutString(`="`)
	w.PutString(encoded)
	w.PutString(`"`)
}

func (w *Writer) PutCDATA(raw string) {
	w.PutString("<![CDATA[")
	w.PutString(raw)
	w.PutString("]]>")
}

func (w *Writer) PutComment(content string) {
	w.PutString("<!--")
	w.PutString(content)
	w.PutString("-->")
}

func (w *Writer) PutProcessingInstruction(target, data string) {
	w.PutString("<?")
	w.PutString(target)
	if data != "" {
		w.PutWithPreSpace(data)
	}
	w.PutString("?>")
}

func (w *Writer) PutDocumentTypeBegin(name string) {
	w.PutString("<!DOCTYPE ")
	w.PutString(name)
}

func (w *Writer) PutDocumentTypeEnd() {
	w.PutString(">")
}

func (w *Writer) PutExternalID(extID node.ExternalIDType, publicID, systemID string) {
	switch extID {
	case node.ExternalIDSystem:
		w.PutWithPreSpace("SYSTEM")
		w.PutString(" ")
		w.PutQuoted(systemID)
	case node.ExternalIDPublic:
		w.PutWithPreSpace("PUBLIC")
		w.PutString(" ")
		w.PutQuoted(publicID)
		if systemID != "" {
			w.PutString(" ")
			w.PutQuoted(systemID)
		}
	}
}

func (w *Writer) PutDocumentTypeElementBegin(name string) {
	w.PutString("<!ELEMENT ")
	w.PutString(name)
}

func (w *Writer) PutDocumentTypeElementEnd() {
	w.PutString(">")
}

func (w *Writer) PutDocumentTypeAttributeListBegin(name string) {
	w.PutString("<!ATTLIST ")
	w.PutString(name)
}

func (w *Writer) PutDocumentTypeAttributeListEnd() {
	w.PutString(">")
}

func (w *Writer) PutNotation(n *node.Notation) {
	w.PutString("<!NOTATION ")
	w.PutString(n.Name())
	w.PutExternalID(n.ExternalID(), n.PublicID(), n.SystemID())
	w.PutString(">")
}

func (w *Writer) PutEntityGeneral(e *node.Entity) {
	w.PutString("<!ENTITY ")
	if e.IsParameter() {
		w.PutString("% ")
	}
	w.PutString(e.Name())
	if e.ExternalID() == node.ExternalIDNone {
		w.PutString(" ")
		w.PutQuoted(e.Value())
	} else {
		w.PutExternalID(e.ExternalID(), e.PublicID(), e.SystemID())
		if e.Notation() != "" {
			w.PutWithPreSpace("NDATA")
			w.PutWithPreSpace(e.Notation())
		}
	}
	w.PutString(">")
}

func (w *Writer) PutEntityReference(name string) {
	w.PutString("&")
	w.PutString(name)
	w.PutString(";")
}
