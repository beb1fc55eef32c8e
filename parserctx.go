package xenon

import (
	"errors"
	"unicode/utf8"

	"github.com/lestrrat-go/pdebug"
	"github.com/lestrrat-go/strcursor"
	"github.com/lestrrat-go/xenon/encoding"
	"github.com/lestrrat-go/xenon/node"
	"github.com/lestrrat-go/xenon/sax"
)

// parserCtx carries all per-parse state: the cursor over the decoded
// source, the document being built, and the stack of currently open
// parent nodes (the document always sits at the bottom).
type parserCtx struct {
	options  node.ParseOption
	sax      *sax.Handler
	userData interface{}
	cursor   *strcursor.Cursor
	doc      *node.Document
	encoding string

	// encodingFixed is set once the encoding is beyond doubt (BOM,
	// caller override, or a consumed XML declaration)
	encodingFixed bool
	instate       parserState
	nodes         []node.Node
}

func (ctx *parserCtx) init(p *Parser, b []byte) error {
	ctx.options = p.options
	ctx.userData = p.userData
	if ctx.options.Has(node.ParseOptionUseSAX) {
		ctx.sax = p.sax
	}
	if ctx.userData == nil {
		ctx.userData = ctx
	}

	// A byte order mark (or an explicit override) pins the encoding;
	// otherwise the source is assumed UTF-8 until the XML declaration
	// says otherwise, and the bytes stay untouched so a later switch
	// can re-decode them.
	enc := p.encoding
	skip := 0
	if enc == "" {
		enc, skip = encoding.DetectBOM(b)
	} else {
		ctx.encodingFixed = true
	}
	if skip > 0 {
		b = b[skip:]
		ctx.encodingFixed = true
	}
	ctx.encoding = enc

	if ctx.encodingFixed {
		e := encoding.Load(enc)
		if e == nil {
			return errors.New("encoding '" + enc + "' not supported")
		}
		decoded, err := e.NewDecoder().Bytes(b)
		if err != nil {
			return err
		}
		b = decoded
	}

	ctx.cursor = strcursor.New(b)
	ctx.doc = node.NewDocument()
	ctx.doc.SetParseOptions(ctx.options)
	ctx.nodes = []node.Node{ctx.doc}
	ctx.instate = psStart
	return nil
}

func (ctx *parserCtx) release() error {
	ctx.sax = nil
	ctx.userData = nil
	ctx.nodes = nil
	return nil
}

// switchEncoding re-decodes the unread remainder of the source once
// the XML declaration names an encoding other than the assumed
// UTF-8. An encoding already pinned by a byte order mark or by the
// caller is kept.
func (ctx *parserCtx) switchEncoding(name string) error {
	if ctx.encodingFixed || name == "" || name == ctx.encoding {
		ctx.encodingFixed = true
		return nil
	}
	ctx.encodingFixed = true

	e := encoding.Load(name)
	if e == nil {
		return errors.New("encoding '" + name + "' not supported")
	}
	b, err := e.NewDecoder().Bytes(ctx.cursor.Bytes())
	if err != nil {
		return ctx.error(err)
	}
	ctx.encoding = name
	ctx.cursor = strcursor.New(b)
	return nil
}

func (ctx *parserCtx) error(err error) error {
	// If it's wrapped, just return as is
	if _, ok := err.(ErrParseError); ok {
		return err
	}

	return ErrParseError{
		Column:     ctx.cursor.Column(),
		Err:        err,
		Line:       ctx.cursor.CurrentLine(),
		LineNumber: ctx.cursor.LineNumber(),
		Location:   ctx.cursor.OffsetBytes(),
	}
}

// cursor wrappers

func (ctx *parserCtx) curHasChars(n int) bool {
	return ctx.cursor.HasChars(n)
}

func (ctx *parserCtx) curDone() bool {
	return ctx.cursor.Done()
}

func (ctx *parserCtx) markEOF() {
	if ctx.cursor.Done() {
		ctx.instate = psEOF
	}
}

func (ctx *parserCtx) curAdvance(n int) {
	defer ctx.markEOF()
	ctx.cursor.Advance(n)
}

func (ctx *parserCtx) curPeek(n int) rune {
	return ctx.cursor.Peek(n)
}

func (ctx *parserCtx) curConsume(n int) string {
	defer ctx.markEOF()
	return ctx.cursor.Consume(n)
}

func (ctx *parserCtx) curConsumePrefix(s string) bool {
	defer ctx.markEOF()
	return ctx.cursor.ConsumePrefix(s)
}

func (ctx *parserCtx) curHasPrefix(s string) bool {
	return ctx.cursor.HasPrefix(s)
}

// open-node stack

func (ctx *parserCtx) pushNode(n node.Node) {
	if pdebug.Enabled {
		pdebug.Printf(" --> push node %s", n.Name())
	}
	ctx.nodes = append(ctx.nodes, n)
}

func (ctx *parserCtx) popNode() node.Node {
	n := ctx.nodes[len(ctx.nodes)-1]
	if pdebug.Enabled {
		pdebug.Printf(" <-- pop node %s", n.Name())
	}
	ctx.nodes = ctx.nodes[:len(ctx.nodes)-1]
	return n
}

func (ctx *parserCtx) topNode() node.Node {
	return ctx.nodes[len(ctx.nodes)-1]
}

// appendNode appends a non-element node to the currently open parent
// and runs the other-node callback; a false return drops the node
// again
func (ctx *parserCtx) appendNode(n node.Node) error {
	p := ctx.topNode()
	if err := p.AppendChild(n); err != nil {
		return ctx.error(err)
	}
	if ctx.sax != nil && !ctx.sax.OnOtherNode(ctx.userData, n) {
		_ = p.RemoveChild(n)
	}
	return nil
}

func (ctx *parserCtx) skipBlanks() {
	i := 1
	for ; ctx.curHasChars(i); i++ {
		if !node.IsSpace(ctx.curPeek(i)) {
			break
		}
	}
	i--
	if i > 0 {
		ctx.curAdvance(i)
	}
}

// parseDocument is the top-level loop: whitespace is either dropped
// or kept as Whitespace nodes, anything else must open a construct
// with '<'
func (ctx *parserCtx) parseDocument() error {
	if pdebug.Enabled {
		g := pdebug.Marker("parserCtx.parseDocument")
		defer g.End()
	}

	ctx.doc.BeginLoad()
	defer ctx.doc.EndLoad()

	if ctx.curDone() {
		return ctx.error(ErrEmptyDocument)
	}

	for !ctx.curDone() {
		if node.IsSpace(ctx.curPeek(1)) {
			if err := ctx.parseDocumentWhitespace(); err != nil {
				return err
			}
			continue
		}
		if ctx.curPeek(1) != '<' {
			return ctx.error(ErrStartTagRequired)
		}
		if err := ctx.parseNode(); err != nil {
			return err
		}
		if ctx.instate == psStart {
			ctx.instate = psProlog
		}
	}

	if ctx.doc.DocumentElement() == nil {
		return ctx.error(ErrEmptyDocument)
	}
	ctx.instate = psEOF
	return nil
}

// parseDocumentWhitespace consumes a whitespace run at document
// level; preserve-whitespace keeps it as a Whitespace node
func (ctx *parserCtx) parseDocumentWhitespace() error {
	buf := ctx.doc.Buffers().Get()
	defer func() { ctx.doc.Buffers().Put(buf) }()

	for !ctx.curDone() && node.IsSpace(ctx.curPeek(1)) {
		buf = utf8.AppendRune(buf, ctx.curPeek(1))
		ctx.curAdvance(1)
	}

	if !ctx.options.Has(node.ParseOptionPreserveWhitespace) {
		return nil
	}
	ws, err := ctx.doc.CreateWhitespace(string(buf))
	if err != nil {
		return ctx.error(err)
	}
	return ctx.appendNode(ws)
}

// parseNode dispatches on the token following '<'
func (ctx *parserCtx) parseNode() error {
	switch {
	case ctx.curHasPrefix("<?"):
		return ctx.parsePI()
	case ctx.curHasPrefix("<!--"):
		return ctx.parseComment()
	case ctx.curHasPrefix("<![CDATA["):
		return ctx.parseCDSect()
	case ctx.curHasPrefix("<!DOCTYPE"):
		return ctx.parseDocTypeDecl()
	case ctx.curHasPrefix("<!ATTLIST"):
		return ctx.parseAttlistDecl()
	case ctx.curHasPrefix("<!ELEMENT"):
		return ctx.parseElementDecl()
	case ctx.curHasPrefix("<!ENTITY"):
		return ctx.parseEntityDecl()
	case ctx.curHasPrefix("<!NOTATION"):
		return ctx.parseNotationDecl()
	case ctx.curHasPrefix("<!"):
		return ctx.error(ErrUnexpectedString{Token: "<!"})
	default:
		return ctx.parseElement()
	}
}

/*
 * parse an XML name.
 *
 * [4] NameStartChar ::= ":" | [A-Z] | "_" | [a-z] | ...
 * [5] Name ::= NameStartChar (NameChar)*
 */
func (ctx *parserCtx) parseName() (string, error) {
	if ctx.instate == psEOF || ctx.curDone() {
		return "", ctx.error(ErrPrematureEOF)
	}

	if !node.IsNameStartChar(ctx.curPeek(1)) {
		return "", ctx.error(ErrInvalidName)
	}

	i := 1
	for ctx.curHasChars(i+1) && node.IsNameChar(ctx.curPeek(i+1)) {
		i++
	}
	if i > MaxNameLength {
		return "", ctx.error(ErrNameTooLong)
	}

	return ctx.curConsume(i), nil
}

/*
 * parse an XML Nmtoken.
 *
 * [7] Nmtoken ::= (NameChar)+
 */
func (ctx *parserCtx) parseNmtoken() (string, error) {
	if ctx.curDone() || !node.IsNameChar(ctx.curPeek(1)) {
		return "", ctx.error(ErrNameRequired)
	}
	i := 1
	for ctx.curHasChars(i+1) && node.IsNameChar(ctx.curPeek(i+1)) {
		i++
	}
	return ctx.curConsume(i), nil
}

// readUntil copies code units into a pooled buffer until the
// delimiter is matched; the delimiter itself is consumed. Hitting
// EOF first is an error.
func (ctx *parserCtx) readUntil(delim string) (string, error) {
	buf := ctx.doc.Buffers().Get()
	defer func() { ctx.doc.Buffers().Put(buf) }()

	for {
		if ctx.curDone() {
			return "", ctx.error(ErrUnexpectedString{Token: delim})
		}
		if ctx.curConsumePrefix(delim) {
			return string(buf), nil
		}
		buf = utf8.AppendRune(buf, ctx.curPeek(1))
		ctx.curAdvance(1)
	}
}

// parseQuotedRaw reads a quoted literal without touching escapes
// (used for system literals, public IDs and entity replacement text)
func (ctx *parserCtx) parseQuotedRaw() (string, error) {
	q := ctx.curPeek(1)
	if q != '"' && q != '\'' {
		return "", ctx.error(ErrQuoteRequired)
	}
	ctx.curAdvance(1)
	return ctx.readUntil(string(q))
}

/*
 * parse a character or entity reference at '&'
 *
 * [66] CharRef ::= '&#' [0-9]+ ';' | '&#x' [0-9a-fA-F]+ ';'
 * [68] EntityRef ::= '&' Name ';'
 */
func (ctx *parserCtx) parseReference() (string, error) {
	// cursor is on '&'
	ctx.curAdvance(1)

	i := 1
	for ; ctx.curHasChars(i); i++ {
		if ctx.curPeek(i) == ';' {
			break
		}
	}
	if !ctx.curHasChars(i) {
		return "", ctx.error(ErrSemicolonRequired)
	}

	ref := ctx.curConsume(i - 1)
	ctx.curAdvance(1) // ';'

	v, err := ctx.doc.Entities().ResolveReference(ref)
	if err != nil {
		return "", ctx.error(err)
	}
	return v, nil
}

// parseElement parses one element: start tag, attributes, optional
// content, end tag
func (ctx *parserCtx) parseElement() error {
	if pdebug.Enabled {
		g := pdebug.Marker("parserCtx.parseElement")
		defer g.End()
	}

	if ctx.curPeek(1) != '<' {
		return ctx.error(ErrStartTagRequired)
	}
	ctx.curAdvance(1)

	name, err := ctx.parseName()
	if err != nil {
		return ctx.error(err)
	}

	elem := ctx.doc.CreateElement(name)

	for {
		ctx.skipBlanks()
		if ctx.curDone() {
			return ctx.error(ErrUnexpectedEOF{Parsing: "element"})
		}
		if c := ctx.curPeek(1); c == '/' || c == '>' {
			break
		}
		if err := ctx.parseAttribute(elem); err != nil {
			return err
		}
	}

	parent := ctx.topNode()
	if err := parent.AppendChild(elem); err != nil {
		return ctx.error(err)
	}
	if ctx.sax != nil && !ctx.sax.OnElementBegin(ctx.userData, elem) {
		_ = parent.RemoveChild(elem)
	}

	if ctx.curConsumePrefix("/>") {
		ctx.endElement(parent, elem)
		return nil
	}
	if !ctx.curConsumePrefix(">") {
		return ctx.error(ErrGtRequired)
	}

	ctx.pushNode(elem)
	if err := ctx.parseContent(elem); err != nil {
		return err
	}
	if err := ctx.parseEndTag(elem); err != nil {
		return err
	}
	ctx.popNode()
	ctx.endElement(parent, elem)
	return nil
}

func (ctx *parserCtx) endElement(parent, elem node.Node) {
	if ctx.sax != nil && !ctx.sax.OnElementEnd(ctx.userData, elem.(*node.Element)) {
		if elem.Parent() == parent {
			_ = parent.RemoveChild(elem)
		}
	}
}

// parseContent parses the body of an open element up to (but not
// including) its end tag
func (ctx *parserCtx) parseContent(elem *node.Element) error {
	for {
		if ctx.curDone() {
			return ctx.error(ErrUnexpectedEOF{Parsing: elem.Name()})
		}
		if ctx.curHasPrefix("</") {
			return nil
		}
		if ctx.curPeek(1) == '<' {
			if err := ctx.parseNode(); err != nil {
				return err
			}
			continue
		}
		if err := ctx.parseCharData(); err != nil {
			return err
		}
	}
}

/*
 * parse an end of tag
 *
 * [42] ETag ::= '</' Name S? '>'
 */
func (ctx *parserCtx) parseEndTag(elem *node.Element) error {
	if !ctx.curConsumePrefix("</") {
		return ctx.error(ErrUnexpectedString{Token: "</"})
	}
	name, err := ctx.parseName()
	if err != nil {
		return ctx.error(err)
	}
	ctx.skipBlanks()
	if !ctx.curConsumePrefix(">") {
		return ctx.error(ErrGtRequired)
	}
	if name != elem.Name() {
		return ctx.error(ErrMismatchedEndTag{Open: elem.Name(), Close: name})
	}
	return nil
}

/*
 * parse a CharData section up to the next '<', decoding character
 * and entity references on the way.
 *
 * [14] CharData ::= [^<&]* - ([^<&]* ']]>' [^<&]*)
 */
func (ctx *parserCtx) parseCharData() error {
	buf := ctx.doc.Buffers().Get()
	defer func() { ctx.doc.Buffers().Put(buf) }()

	allSpace := true
	decoded := false
	for !ctx.curDone() {
		c := ctx.curPeek(1)
		if c == '<' {
			break
		}
		if c == '&' {
			s, err := ctx.parseReference()
			if err != nil {
				return err
			}
			for _, r := range s {
				if !node.IsSpace(r) {
					allSpace = false
				}
			}
			buf = append(buf, s...)
			decoded = true
			continue
		}
		if !node.IsSpace(c) {
			allSpace = false
		}
		buf = utf8.AppendRune(buf, c)
		ctx.curAdvance(1)
	}

	if len(buf) == 0 {
		return nil
	}

	if allSpace {
		// all-whitespace runs inside elements are dropped unless
		// preservation is on
		if !ctx.options.Has(node.ParseOptionPreserveWhitespace) {
			return nil
		}
		ws, err := ctx.doc.CreateSignificantWhitespace(string(buf))
		if err != nil {
			return ctx.error(err)
		}
		return ctx.appendNode(ws)
	}

	var v node.Value
	if decoded {
		v = node.DecodedValue(string(buf))
	} else {
		v = node.RawValue(string(buf))
	}
	return ctx.appendNode(ctx.doc.CreateTextValue(v))
}

/*
 * parse an attribute
 *
 * [41] Attribute ::= Name Eq AttValue
 */
func (ctx *parserCtx) parseAttribute(elem *node.Element) error {
	name, err := ctx.parseName()
	if err != nil {
		return ctx.error(err)
	}

	ctx.skipBlanks()
	if ctx.curPeek(1) != '=' {
		return ctx.error(ErrEqualSignRequired)
	}
	ctx.curAdvance(1)
	ctx.skipBlanks()

	value, _, err := ctx.parseAttributeValue()
	if err != nil {
		return err
	}

	// the stored value is fully decoded; quotes and specials are
	// re-applied on output
	attr := ctx.doc.CreateAttribute(name, "")
	attr.SetValue(value)
	if err := elem.AppendAttribute(attr); err != nil {
		return ctx.error(err)
	}
	if ctx.sax != nil && !ctx.sax.OnAttribute(ctx.userData, attr) {
		_ = elem.RemoveAttribute(attr)
	}
	return nil
}

/*
 * parse a quoted attribute value, resolving references
 *
 * [10] AttValue ::= '"' ([^<&"] | Reference)* '"' |
 *                   "'" ([^<&'] | Reference)* "'"
 */
func (ctx *parserCtx) parseAttributeValue() (string, bool, error) {
	q := ctx.curPeek(1)
	if q != '"' && q != '\'' {
		return "", false, ctx.error(ErrAttributeValueRequired)
	}
	ctx.curAdvance(1)

	buf := ctx.doc.Buffers().Get()
	defer func() { ctx.doc.Buffers().Put(buf) }()

	decoded := false
	for {
		if ctx.curDone() {
			return "", false, ctx.error(ErrUnexpectedEOF{Parsing: "attribute value"})
		}
		c := ctx.curPeek(1)
		if c == q {
			ctx.curAdvance(1)
			return string(buf), decoded, nil
		}
		if c == '<' {
			return "", false, ctx.error(ErrUnexpectedChar{Expected: "attribute value character", Got: c})
		}
		if c == '&' {
			s, err := ctx.parseReference()
			if err != nil {
				return "", false, err
			}
			buf = append(buf, s...)
			decoded = true
			continue
		}
		buf = utf8.AppendRune(buf, c)
		ctx.curAdvance(1)
	}
}

/*
 * parse an XML Processing Instruction (or the XML declaration, which
 * shares its framing)
 *
 * [16] PI ::= '<?' PITarget (S (Char* - (Char* '?>' Char*)))? '?>'
 */
func (ctx *parserCtx) parsePI() error {
	if !ctx.curConsumePrefix("<?") {
		return ctx.error(ErrUnexpectedString{Token: "<?"})
	}

	target, err := ctx.parseName()
	if err != nil {
		return ctx.error(err)
	}

	if target == "xml" {
		return ctx.parseXMLDecl()
	}

	if !ctx.curDone() && !node.IsSpace(ctx.curPeek(1)) && !ctx.curHasPrefix("?>") {
		return ctx.error(ErrSpaceRequired)
	}
	ctx.skipBlanks()

	data, err := ctx.readUntil("?>")
	if err != nil {
		return err
	}

	return ctx.appendNode(ctx.doc.CreateProcessingInstruction(target, data))
}

/*
 * parse the XML declaration
 *
 * [23] XMLDecl ::= '<?xml' VersionInfo EncodingDecl? SDDecl? S? '?>'
 */
func (ctx *parserCtx) parseXMLDecl() error {
	if pdebug.Enabled {
		g := pdebug.Marker("parserCtx.parseXMLDecl")
		defer g.End()
	}

	// "<?xml" has been consumed by parsePI
	if ctx.instate != psStart || ctx.topNode() != node.Node(ctx.doc) || ctx.doc.FirstChild() != nil {
		return ctx.error(ErrXMLDeclNotFirst)
	}
	if !node.IsSpace(ctx.curPeek(1)) {
		return ctx.error(ErrSpaceRequired)
	}

	version, ok, err := ctx.parsePseudoAttribute("version")
	if err != nil {
		return err
	}
	if !ok {
		return ctx.error(ErrInvalidXMLDecl)
	}
	for _, r := range version {
		if !node.IsVersionChar(r) {
			return ctx.error(ErrInvalidVersion)
		}
	}

	encName, _, err := ctx.parsePseudoAttribute("encoding")
	if err != nil {
		return err
	}

	standalone, hasStandalone, err := ctx.parsePseudoAttribute("standalone")
	if err != nil {
		return err
	}
	if hasStandalone && standalone != "yes" && standalone != "no" {
		return ctx.error(ErrInvalidStandalone)
	}

	ctx.skipBlanks()
	if !ctx.curConsumePrefix("?>") {
		return ctx.error(ErrUnexpectedString{Token: "?>"})
	}

	decl, err := ctx.doc.CreateDeclaration(version, encName, standalone)
	if err != nil {
		return ctx.error(err)
	}
	if err := ctx.appendNode(decl); err != nil {
		return err
	}

	return ctx.switchEncoding(encName)
}

// parsePseudoAttribute reads a name="value" pair in the XML
// declaration. The value is returned raw; the middle return reports
// whether the attribute was present at all.
func (ctx *parserCtx) parsePseudoAttribute(name string) (string, bool, error) {
	ctx.skipBlanks()
	if !ctx.curHasPrefix(name) {
		return "", false, nil
	}
	ctx.curAdvance(len(name))
	ctx.skipBlanks()
	if ctx.curPeek(1) != '=' {
		return "", false, ctx.error(ErrEqualSignRequired)
	}
	ctx.curAdvance(1)
	ctx.skipBlanks()

	v, err := ctx.parseQuotedRaw()
	if err != nil {
		return "", false, err
	}
	return v, true, nil
}

/*
 * parse an XML comment. The engine is deliberately lenient about
 * '--' runs inside the body: everything up to the first '-->' is the
 * content, which lets <!----comment----> round-trip.
 *
 * [15] Comment ::= '<!--' ... '-->'
 */
func (ctx *parserCtx) parseComment() error {
	if !ctx.curConsumePrefix("<!--") {
		return ctx.error(ErrUnexpectedString{Token: "<!--"})
	}
	content, err := ctx.readUntil("-->")
	if err != nil {
		return err
	}
	return ctx.appendNode(ctx.doc.CreateComment(content))
}

/*
 * parse a CDATA section; contents are verbatim
 *
 * [18] CDSect ::= '<![CDATA[' CData ']]>'
 */
func (ctx *parserCtx) parseCDSect() error {
	if !ctx.curConsumePrefix("<![CDATA[") {
		return ctx.error(ErrUnexpectedString{Token: "<![CDATA["})
	}
	ctx.instate = psCDATA
	defer func() { ctx.instate = psContent }()

	content, err := ctx.readUntil("]]>")
	if err != nil {
		return err
	}
	cdata, err := ctx.doc.CreateCDATASection(content)
	if err != nil {
		return ctx.error(err)
	}
	return ctx.appendNode(cdata)
}
