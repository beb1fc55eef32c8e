package node

import (
	"strings"

	"github.com/lestrrat-go/xenon/internal/pool"
)

// ParseOption is the bit set of options honored while loading a
// document
type ParseOption int

const (
	// ParseOptionPreserveWhitespace retains whitespace between markup
	// as (Significant)Whitespace nodes instead of dropping it
	ParseOptionPreserveWhitespace ParseOption = 1 << iota
	// ParseOptionUseSAX enables the per-node callbacks during parse
	ParseOptionUseSAX
	// ParseOptionUseSymbolTable interns names and URIs into the
	// document symbol table
	ParseOptionUseSymbolTable
	// ParseOptionValidate enforces the name production, attribute
	// uniqueness, end tag match and keyword legality
	ParseOptionValidate
)

func (o ParseOption) Has(flag ParseOption) bool {
	return o&flag != 0
}

// Document is the root node and the factory for every node variant.
// It owns the buffer pool, the symbol table, the entity table, the
// parse options and the default namespace URI.
type Document struct {
	treeNode
	options     ParseOption
	entities    *EntityTable
	symbols     *symbolTable
	buffers     *pool.ByteSlicePool
	defaultURI  string
	nameCompare func(a, b string) bool

	// loading is non-zero while a parse is feeding this document;
	// it relaxes the cross-document and duplicate-attribute checks
	// unless validation was requested
	loading int
}

func NewDocument() *Document {
	doc := &Document{
		entities:    NewEntityTable(),
		symbols:     newSymbolTable(),
		buffers:     pool.ByteSlice(),
		nameCompare: cmpExact,
	}
	doc.treeNode.doc = doc
	return doc
}

func (d *Document) Type() NodeType {
	return DocumentNodeType
}

func (d *Document) Name() string {
	return "#document"
}

func (d *Document) LocalName() string {
	return "#document"
}

func (d *Document) ParseOptions() ParseOption {
	return d.options
}

func (d *Document) SetParseOptions(o ParseOption) {
	d.options = o
}

func (d *Document) Entities() *EntityTable {
	return d.entities
}

func (d *Document) Buffers() *pool.ByteSlicePool {
	return d.buffers
}

func (d *Document) DefaultURI() string {
	return d.defaultURI
}

func (d *Document) SetDefaultURI(uri string) {
	d.defaultURI = uri
}

// SetNameComparator substitutes the function used to compare node and
// attribute names. The default is an exact match.
func (d *Document) SetNameComparator(cmp func(a, b string) bool) {
	if cmp == nil {
		cmp = cmpExact
	}
	d.nameCompare = cmp
}

func (d *Document) NameComparator() func(a, b string) bool {
	return d.nameCompare
}

// BeginLoad marks the document as being fed by a parser. Calls nest.
func (d *Document) BeginLoad() {
	d.loading++
}

func (d *Document) EndLoad() {
	if d.loading > 0 {
		d.loading--
	}
}

func (d *Document) IsLoading() bool {
	return d.loading > 0
}

func (d *Document) relaxed() bool {
	return d.loading > 0 && !d.options.Has(ParseOptionValidate)
}

// intern runs a name through the symbol table when interning is on
func (d *Document) intern(s string) string {
	if !d.options.Has(ParseOptionUseSymbolTable) {
		return s
	}
	return d.symbols.Intern(s)
}

// newQName builds the qualified name for a raw (possibly prefixed)
// name, resolving the reserved xml/xmlns URIs
func (d *Document) newQName(name string) QName {
	prefix, local := splitName(name)
	return QName{
		prefix: d.intern(prefix),
		local:  d.intern(local),
		uri:    d.intern(resolveURI(d, prefix, local)),
	}
}

// Tree accessors

// Declaration returns the XML declaration child, if present
func (d *Document) Declaration() *Declaration {
	for c := d.firstChild; c != nil; c = c.NextSibling() {
		if c.Type() == DeclarationNodeType {
			return c.(*Declaration)
		}
	}
	return nil
}

// DocumentType returns the DOCTYPE child, if present
func (d *Document) DocumentType() *DocumentType {
	for c := d.firstChild; c != nil; c = c.NextSibling() {
		if c.Type() == DocumentTypeNodeType {
			return c.(*DocumentType)
		}
	}
	return nil
}

// DocumentElement returns the single element child, if present
func (d *Document) DocumentElement() *Element {
	for c := d.firstChild; c != nil; c = c.NextSibling() {
		if c.Type() == ElementNodeType {
			return c.(*Element)
		}
	}
	return nil
}

// Mutators

func (d *Document) AppendChild(c Node) error {
	return appendChild(d, c)
}

func (d *Document) InsertChildBefore(c Node, ref Node) error {
	return insertChildBefore(d, c, ref)
}

func (d *Document) InsertChildAfter(c Node, ref Node) error {
	return insertChildAfter(d, c, ref)
}

func (d *Document) RemoveChild(c Node) error {
	return removeChild(d, c)
}

func (d *Document) ReplaceChild(c Node, old Node) error {
	return replaceChild(d, c, old)
}

func (d *Document) RemoveChildNodes(deep bool) error {
	return removeChildNodes(d, deep)
}

// Queries

func (d *Document) GetChildNodes(deep bool) *List {
	if deep {
		return NewChildNodesDeepList(d, nil)
	}
	return NewChildNodesList(d, nil)
}

// GetElementByID searches the whole tree for an element carrying an
// attribute named "id" (compared case-insensitively) with the given
// value
func (d *Document) GetElementByID(id string) *Element {
	if root := d.DocumentElement(); root != nil {
		return root.GetElementByID(id)
	}
	return nil
}

// Factories. Nodes are created exclusively through these; a node is
// detached until appended to a parent.

func (d *Document) CreateElement(name string) *Element {
	e := &Element{}
	e.qname = d.newQName(name)
	e.doc = d
	return e
}

func (d *Document) CreateAttribute(name, value string) *Attribute {
	a := &Attribute{value: DecodedValue(value)}
	a.qname = d.newQName(name)
	a.doc = d
	return a
}

func (d *Document) CreateText(value string) *Text {
	t := &Text{value: DecodedValue(value)}
	t.qname = QName{local: "#text"}
	t.doc = d
	return t
}

// CreateTextValue is used by the parser, which knows the encoding
// state of the content it hands over
func (d *Document) CreateTextValue(value Value) *Text {
	t := &Text{value: value}
	t.qname = QName{local: "#text"}
	t.doc = d
	return t
}

// CreateCDATASection creates a CDATA node. Content containing the
// section terminator "]]>" cannot be represented and is rejected.
func (d *Document) CreateCDATASection(value string) (*CDATASection, error) {
	if strings.Contains(value, "]]>") {
		return nil, ErrInvalidCDATAContent
	}
	c := &CDATASection{value: RawValue(value)}
	c.qname = QName{local: "#cdata-section"}
	c.doc = d
	return c, nil
}

func (d *Document) CreateComment(value string) *Comment {
	c := &Comment{value: DecodedValue(value)}
	c.qname = QName{local: "#comment"}
	c.doc = d
	return c
}

func (d *Document) CreateProcessingInstruction(target, data string) *ProcessingInstruction {
	pi := &ProcessingInstruction{data: RawValue(data)}
	pi.qname = d.newQName(target)
	pi.doc = d
	return pi
}

// CreateWhitespace creates a whitespace node; every character of the
// value must satisfy the XML whitespace predicate
func (d *Document) CreateWhitespace(value string) (*Whitespace, error) {
	if !isAllSpace(value) {
		return nil, ErrNotAllWhitespace
	}
	w := &Whitespace{value: RawValue(value)}
	w.qname = QName{local: "#whitespace"}
	w.doc = d
	return w, nil
}

func (d *Document) CreateSignificantWhitespace(value string) (*SignificantWhitespace, error) {
	if !isAllSpace(value) {
		return nil, ErrNotAllWhitespace
	}
	w := &SignificantWhitespace{value: RawValue(value)}
	w.qname = QName{local: "#significant-whitespace"}
	w.doc = d
	return w, nil
}

// CreateDeclaration creates the <?xml ...?> declaration node. The
// version must match the version-string grammar and standalone, when
// given, must be exactly "yes" or "no".
func (d *Document) CreateDeclaration(version, encoding, standalone string) (*Declaration, error) {
	decl := &Declaration{}
	decl.qname = QName{local: "xml"}
	decl.doc = d
	if version == "" {
		version = "1.0"
	}
	if err := decl.SetVersion(version); err != nil {
		return nil, err
	}
	if encoding != "" {
		decl.SetEncoding(encoding)
	}
	if standalone != "" {
		if err := decl.SetStandalone(standalone); err != nil {
			return nil, err
		}
	}
	return decl, nil
}

func (d *Document) CreateDocumentType(name string, externalID ExternalIDType, publicID, systemID string) *DocumentType {
	dt := &DocumentType{
		externalID: externalID,
		publicID:   NewValue(publicID),
		systemID:   NewValue(systemID),
	}
	dt.qname = d.newQName(name)
	dt.doc = d
	return dt
}

func (d *Document) CreateEntity(name, value string) *Entity {
	e := &Entity{value: DecodedValue(value)}
	e.qname = d.newQName(name)
	e.doc = d
	return e
}

func (d *Document) CreateEntityReference(name string) *EntityRef {
	e := &EntityRef{}
	e.qname = d.newQName(name)
	e.doc = d
	return e
}

func (d *Document) CreateNotation(name string, externalID ExternalIDType, publicID, systemID string) *Notation {
	n := &Notation{
		externalID: externalID,
		publicID:   NewValue(publicID),
		systemID:   NewValue(systemID),
	}
	n.qname = d.newQName(name)
	n.doc = d
	return n
}

func (d *Document) CreateAttributeDecl(elem string) *AttributeDecl {
	a := &AttributeDecl{}
	a.qname = d.newQName(elem)
	a.doc = d
	return a
}

func (d *Document) CreateElementDecl(name string) *ElementDecl {
	e := &ElementDecl{}
	e.qname = d.newQName(name)
	e.doc = d
	return e
}

func (d *Document) CreateDocumentFragment() *DocumentFragment {
	f := &DocumentFragment{}
	f.qname = QName{local: "#document-fragment"}
	f.doc = d
	return f
}
