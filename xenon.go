// Package xenon implements an XML 1.0 document engine: a streaming
// tokenizing parser coupled to an in-memory document tree, with a
// serializer that can render the tree back to XML text.
package xenon

import (
	"io"
	"os"

	"github.com/pkg/errors"

	"github.com/lestrrat-go/xenon/node"
)

// Parse parses b and returns the resulting document. The first error
// aborts the parse; the partial document is discarded.
func (p *Parser) Parse(b []byte) (*node.Document, error) {
	ctx := &parserCtx{}
	if err := ctx.init(p, b); err != nil {
		return nil, err
	}
	defer func() { _ = ctx.release() }()

	if err := ctx.parseDocument(); err != nil {
		return nil, errors.Wrap(err, "failed to parse document")
	}
	return ctx.doc, nil
}

func (p *Parser) ParseString(s string) (*node.Document, error) {
	return p.Parse([]byte(s))
}

func (p *Parser) ParseReader(in io.Reader) (*node.Document, error) {
	b, err := io.ReadAll(in)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read input")
	}
	return p.Parse(b)
}

// ParseFile reads and parses the file at path. Byte order marks are
// resolved before the bytes reach the tokenizer.
func (p *Parser) ParseFile(path string) (*node.Document, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read file")
	}
	return p.Parse(b)
}

// Parse is the pseudo-constructor form: a fresh parser over b
func Parse(b []byte, options ...Option) (*node.Document, error) {
	return NewParser(options...).Parse(b)
}

func ParseString(s string, options ...Option) (*node.Document, error) {
	return NewParser(options...).ParseString(s)
}

func ParseFile(path string, options ...Option) (*node.Document, error) {
	return NewParser(options...).ParseFile(path)
}
