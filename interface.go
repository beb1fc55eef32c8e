package xenon

import (
	"errors"

	"github.com/lestrrat-go/xenon/node"
	"github.com/lestrrat-go/xenon/sax"
)

const Version = "0.9.0"

type parserState int

const (
	psEOF parserState = iota - 1
	psStart
	psProlog
	psContent
	psCDATA
	psDTD
	psEpilogue
)

const MaxNameLength = 50000

var (
	ErrAttributeValueRequired = errors.New("attribute value required")
	ErrDocTypeNameRequired    = errors.New("doctype name required")
	ErrDocTypeNotFinished     = errors.New("doctype not finished")
	ErrDocumentEnd            = errors.New("extra content at document end")
	ErrEmptyDocument          = errors.New("start tag expected, '<' not found")
	ErrEqualSignRequired      = errors.New("'=' was required here")
	ErrGtRequired             = errors.New("'>' was required here")
	ErrInvalidDTD             = errors.New("invalid DTD section")
	ErrInvalidElementDecl     = errors.New("invalid element declaration")
	ErrInvalidName            = errors.New("invalid xml name")
	ErrInvalidXMLDecl         = errors.New("invalid XML declaration")
	ErrNameRequired           = errors.New("name is required")
	ErrNameTooLong            = errors.New("name is too long")
	ErrOpenParenRequired      = errors.New("'(' is required")
	ErrPercentRequired        = errors.New("'%' is required")
	ErrPrematureEOF           = errors.New("end of document reached")
	ErrQuoteRequired          = errors.New("quoted literal required")
	ErrSemicolonRequired      = errors.New("';' is required")
	ErrSpaceRequired          = errors.New("space required")
	ErrStartTagRequired       = errors.New("start tag expected, '<' not found")
	ErrXMLDeclNotFirst        = errors.New("XML declaration allowed only at the start of the document")
)

// Aliases for the DOM-side error kinds so callers matching on the
// parser surface do not have to import node for them
var (
	ErrUnknownEntity       = node.ErrUnknownEntity
	ErrInvalidVersion      = node.ErrInvalidVersion
	ErrInvalidStandalone   = node.ErrInvalidStandalone
	ErrAttributeDuplicated = node.ErrAttributeDuplicated
	ErrInvalidOperation    = node.ErrInvalidOperation
)

// Parser drives the tokenizer over a byte stream and builds the
// document tree. A Parser is cheap and stateless between calls; all
// per-parse state lives in the parser context.
type Parser struct {
	sax      *sax.Handler
	options  node.ParseOption
	encoding string
	userData interface{}
}

func NewParser(options ...Option) *Parser {
	p := &Parser{}
	for _, option := range options {
		switch option.Ident() {
		case identSAX{}:
			p.sax = option.Value().(*sax.Handler)
			p.options |= node.ParseOptionUseSAX
		case identParseFlags{}:
			p.options |= option.Value().(node.ParseOption)
		case identEncoding{}:
			p.encoding = option.Value().(string)
		case identUserData{}:
			p.userData = option.Value()
		}
	}
	return p
}
