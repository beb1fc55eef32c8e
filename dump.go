package xenon

import (
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"

	"github.com/lestrrat-go/xenon/node"
	"github.com/lestrrat-go/xenon/s11n"
)

// Dumper is re-exported from s11n for convenience
type Dumper = s11n.Dumper

// DumpDoc writes the document as compact XML, adding no whitespace
// of its own
func DumpDoc(out io.Writer, doc *node.Document) error {
	d := Dumper{}
	return d.DumpDoc(out, doc)
}

// DumpDocFormatted writes the document with newlines and indentation
// per nesting level
func DumpDocFormatted(out io.Writer, doc *node.Document) error {
	d := Dumper{Pretty: true}
	return d.DumpDoc(out, doc)
}

// Serialize renders the document to a string
func Serialize(doc *node.Document, pretty bool) (string, error) {
	var sb strings.Builder
	d := Dumper{Pretty: pretty}
	if err := d.DumpDoc(&sb, doc); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// SaveFile writes the document to the file at path. The underlying
// writer flushes raw bytes without inserting extra line endings.
func SaveFile(path string, doc *node.Document, pretty bool) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "failed to create file")
	}

	d := Dumper{Pretty: pretty}
	if err := d.DumpDoc(f, doc); err != nil {
		_ = f.Close()
		return errors.Wrap(err, "failed to serialize document")
	}
	return f.Close()
}
