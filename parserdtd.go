package xenon

import (
	"github.com/lestrrat-go/pdebug"
	"github.com/lestrrat-go/xenon/node"
)

/*
 * parse a DOCTYPE declaration
 *
 * [28] doctypedecl ::= '<!DOCTYPE' S Name (S ExternalID)? S?
 *                      ('[' intSubset ']' S?)? '>'
 */
func (ctx *parserCtx) parseDocTypeDecl() error {
	if pdebug.Enabled {
		g := pdebug.Marker("parserCtx.parseDocTypeDecl")
		defer g.End()
	}

	if !ctx.curConsumePrefix("<!DOCTYPE") {
		return ctx.error(ErrInvalidDTD)
	}
	if !node.IsSpace(ctx.curPeek(1)) {
		return ctx.error(ErrSpaceRequired)
	}
	ctx.skipBlanks()

	name, err := ctx.parseName()
	if err != nil {
		return ctx.error(ErrDocTypeNameRequired)
	}

	ctx.skipBlanks()
	extID, publicID, systemID, err := ctx.parseExternalID(true)
	if err != nil {
		return err
	}
	ctx.skipBlanks()

	dt := ctx.doc.CreateDocumentType(name, extID, publicID, systemID)
	if err := ctx.topNode().AppendChild(dt); err != nil {
		return ctx.error(err)
	}

	if ctx.curPeek(1) == '[' {
		ctx.curAdvance(1)
		ctx.pushNode(dt)
		ctx.instate = psDTD
		err := ctx.parseInternalSubset()
		ctx.popNode()
		ctx.instate = psProlog
		if err != nil {
			return err
		}
		ctx.skipBlanks()
	}

	if !ctx.curConsumePrefix(">") {
		return ctx.error(ErrDocTypeNotFinished)
	}

	if ctx.sax != nil && !ctx.sax.OnOtherNode(ctx.userData, dt) {
		_ = ctx.doc.RemoveChild(dt)
	}
	return nil
}

/*
 * parse an optional external identifier
 *
 * [75] ExternalID ::= 'SYSTEM' S SystemLiteral |
 *                     'PUBLIC' S PubidLiteral S SystemLiteral
 *
 * NOTATION declarations allow the public form without a system
 * literal, so the second literal is optional when strict is false.
 */
func (ctx *parserCtx) parseExternalID(strict bool) (node.ExternalIDType, string, string, error) {
	switch {
	case ctx.curHasPrefix("SYSTEM"):
		ctx.curAdvance(6)
		if !node.IsSpace(ctx.curPeek(1)) {
			return node.ExternalIDNone, "", "", ctx.error(ErrSpaceRequired)
		}
		ctx.skipBlanks()
		system, err := ctx.parseQuotedRaw()
		if err != nil {
			return node.ExternalIDNone, "", "", err
		}
		return node.ExternalIDSystem, "", system, nil

	case ctx.curHasPrefix("PUBLIC"):
		ctx.curAdvance(6)
		if !node.IsSpace(ctx.curPeek(1)) {
			return node.ExternalIDNone, "", "", ctx.error(ErrSpaceRequired)
		}
		ctx.skipBlanks()
		public, err := ctx.parseQuotedRaw()
		if err != nil {
			return node.ExternalIDNone, "", "", err
		}
		ctx.skipBlanks()
		if c := ctx.curPeek(1); c == '"' || c == '\'' {
			system, err := ctx.parseQuotedRaw()
			if err != nil {
				return node.ExternalIDNone, "", "", err
			}
			return node.ExternalIDPublic, public, system, nil
		}
		if strict {
			return node.ExternalIDNone, "", "", ctx.error(ErrQuoteRequired)
		}
		return node.ExternalIDPublic, public, "", nil
	}
	return node.ExternalIDNone, "", "", nil
}

// parseInternalSubset consumes markup declarations and parameter
// entity reference tokens up to the closing ']'. The DocumentType
// node sits at the top of the stack, so every declaration lands in
// its child list with the usual checks applied.
func (ctx *parserCtx) parseInternalSubset() error {
	if pdebug.Enabled {
		g := pdebug.Marker("parserCtx.parseInternalSubset")
		defer g.End()
	}

	for {
		ctx.skipBlanks()
		if ctx.curDone() {
			return ctx.error(ErrUnexpectedEOF{Parsing: "internal subset"})
		}
		switch {
		case ctx.curPeek(1) == ']':
			ctx.curAdvance(1)
			return nil
		case ctx.curPeek(1) == '%':
			if err := ctx.parsePEReference(); err != nil {
				return err
			}
		case ctx.curHasPrefix("<!"), ctx.curHasPrefix("<?"):
			if err := ctx.parseNode(); err != nil {
				return err
			}
		default:
			return ctx.error(ErrInvalidDTD)
		}
	}
}

/*
 * parse a parameter entity reference token. Expansion is not
 * performed; the token is kept as a Text child of the DOCTYPE so it
 * survives a round trip.
 *
 * [69] PEReference ::= '%' Name ';'
 */
func (ctx *parserCtx) parsePEReference() error {
	if !ctx.curConsumePrefix("%") {
		return ctx.error(ErrPercentRequired)
	}
	name, err := ctx.parseName()
	if err != nil {
		return ctx.error(err)
	}
	if !ctx.curConsumePrefix(";") {
		return ctx.error(ErrSemicolonRequired)
	}
	return ctx.appendNode(ctx.doc.CreateTextValue(node.RawValue("%" + name + ";")))
}

/*
 * parse an entity declaration; internal general entities also enter
 * the document's entity table
 *
 * [70] EntityDecl ::= GEDecl | PEDecl
 * [71] GEDecl ::= '<!ENTITY' S Name S EntityDef S? '>'
 * [72] PEDecl ::= '<!ENTITY' S '%' S Name S PEDef S? '>'
 */
func (ctx *parserCtx) parseEntityDecl() error {
	if pdebug.Enabled {
		g := pdebug.Marker("parserCtx.parseEntityDecl")
		defer g.End()
	}

	if !ctx.curConsumePrefix("<!ENTITY") {
		return ctx.error(ErrUnexpectedString{Token: "<!ENTITY"})
	}
	if !node.IsSpace(ctx.curPeek(1)) {
		return ctx.error(ErrSpaceRequired)
	}
	ctx.skipBlanks()

	isParam := false
	if ctx.curPeek(1) == '%' {
		ctx.curAdvance(1)
		if !node.IsSpace(ctx.curPeek(1)) {
			return ctx.error(ErrSpaceRequired)
		}
		ctx.skipBlanks()
		isParam = true
	}

	name, err := ctx.parseName()
	if err != nil {
		return ctx.error(err)
	}
	if !node.IsSpace(ctx.curPeek(1)) {
		return ctx.error(ErrSpaceRequired)
	}
	ctx.skipBlanks()

	var ent *node.Entity
	if c := ctx.curPeek(1); c == '"' || c == '\'' {
		value, err := ctx.parseQuotedRaw()
		if err != nil {
			return err
		}
		ent = ctx.doc.CreateEntity(name, value)
		if !isParam {
			ctx.doc.Entities().Add(name, value)
		}
	} else {
		extID, publicID, systemID, err := ctx.parseExternalID(true)
		if err != nil {
			return err
		}
		if extID == node.ExternalIDNone {
			return ctx.error(ErrQuoteRequired)
		}
		ent = ctx.doc.CreateEntity(name, "")
		ent.SetExternalID(extID, publicID, systemID)

		ctx.skipBlanks()
		if ctx.curHasPrefix("NDATA") {
			ctx.curAdvance(5)
			if !node.IsSpace(ctx.curPeek(1)) {
				return ctx.error(ErrSpaceRequired)
			}
			ctx.skipBlanks()
			notation, err := ctx.parseName()
			if err != nil {
				return ctx.error(err)
			}
			ent.SetNotation(notation)
		}
	}
	ent.SetParameter(isParam)

	ctx.skipBlanks()
	if !ctx.curConsumePrefix(">") {
		return ctx.error(ErrGtRequired)
	}
	return ctx.appendNode(ent)
}

/*
 * parse a notation declaration
 *
 * [82] NotationDecl ::= '<!NOTATION' S Name S (ExternalID | PublicID) S? '>'
 */
func (ctx *parserCtx) parseNotationDecl() error {
	if !ctx.curConsumePrefix("<!NOTATION") {
		return ctx.error(ErrUnexpectedString{Token: "<!NOTATION"})
	}
	if !node.IsSpace(ctx.curPeek(1)) {
		return ctx.error(ErrSpaceRequired)
	}
	ctx.skipBlanks()

	name, err := ctx.parseName()
	if err != nil {
		return ctx.error(err)
	}
	if !node.IsSpace(ctx.curPeek(1)) {
		return ctx.error(ErrSpaceRequired)
	}
	ctx.skipBlanks()

	extID, publicID, systemID, err := ctx.parseExternalID(false)
	if err != nil {
		return err
	}
	if extID == node.ExternalIDNone {
		return ctx.error(ErrQuoteRequired)
	}

	ctx.skipBlanks()
	if !ctx.curConsumePrefix(">") {
		return ctx.error(ErrGtRequired)
	}
	return ctx.appendNode(ctx.doc.CreateNotation(name, extID, publicID, systemID))
}

/*
 * parse an element declaration
 *
 * [45] elementdecl ::= '<!ELEMENT' S Name S contentspec S? '>'
 * [46] contentspec ::= 'EMPTY' | 'ANY' | Mixed | children
 */
func (ctx *parserCtx) parseElementDecl() error {
	if pdebug.Enabled {
		g := pdebug.Marker("parserCtx.parseElementDecl")
		defer g.End()
	}

	if !ctx.curConsumePrefix("<!ELEMENT") {
		return ctx.error(ErrUnexpectedString{Token: "<!ELEMENT"})
	}
	if !node.IsSpace(ctx.curPeek(1)) {
		return ctx.error(ErrSpaceRequired)
	}
	ctx.skipBlanks()

	name, err := ctx.parseName()
	if err != nil {
		return ctx.error(err)
	}
	if !node.IsSpace(ctx.curPeek(1)) {
		return ctx.error(ErrSpaceRequired)
	}
	ctx.skipBlanks()

	decl := ctx.doc.CreateElementDecl(name)
	switch {
	case ctx.curConsumePrefix("EMPTY"):
		decl.SetContentSpec(node.ContentSpecEmpty)
	case ctx.curConsumePrefix("ANY"):
		decl.SetContentSpec(node.ContentSpecAny)
	case ctx.curPeek(1) == '(':
		content, err := ctx.parseElementContent()
		if err != nil {
			return err
		}
		decl.SetContent(content)
	default:
		return ctx.error(ErrInvalidElementDecl)
	}

	ctx.skipBlanks()
	if !ctx.curConsumePrefix(">") {
		return ctx.error(ErrGtRequired)
	}
	return ctx.appendNode(decl)
}

/*
 * parse one parenthesized group of a content model. Atoms are names
 * ('#PCDATA' included), separated uniformly by '|' (alternatives) or
 * ',' (sequences); any atom or group may trail a multiplicity
 * indicator. Nesting is unbounded.
 *
 * [47] children ::= (choice | seq) ('?' | '*' | '+')?
 * [49] choice ::= '(' S? cp ( S? '|' S? cp )+ S? ')'
 * [50] seq ::= '(' S? cp ( S? ',' S? cp )* S? ')'
 */
func (ctx *parserCtx) parseElementContent() (*node.ElementContent, error) {
	if ctx.curPeek(1) != '(' {
		return nil, ctx.error(ErrOpenParenRequired)
	}
	ctx.curAdvance(1)

	group := &node.ElementContent{}
	for {
		ctx.skipBlanks()
		if ctx.curDone() {
			return nil, ctx.error(ErrUnexpectedEOF{Parsing: "element content"})
		}

		var child *node.ElementContent
		if ctx.curPeek(1) == '(' {
			c, err := ctx.parseElementContent()
			if err != nil {
				return nil, err
			}
			child = c
		} else {
			name, err := ctx.parseContentName()
			if err != nil {
				return nil, err
			}
			child = &node.ElementContent{Name: name}
			child.Occur = ctx.parseOccur()
		}
		group.Children = append(group.Children, child)

		ctx.skipBlanks()
		switch c := ctx.curPeek(1); c {
		case '|', ',':
			if group.Sep != 0 && group.Sep != byte(c) {
				return nil, ctx.error(ErrUnexpectedChar{Expected: "consistent separator", Got: c})
			}
			group.Sep = byte(c)
			ctx.curAdvance(1)
		case ')':
			ctx.curAdvance(1)
			group.Occur = ctx.parseOccur()
			return group, nil
		default:
			return nil, ctx.error(ErrUnexpectedChar{Expected: "'|', ',' or ')'", Got: c})
		}
	}
}

// parseContentName reads a content model atom, which unlike a plain
// name may begin with '#' (for #PCDATA)
func (ctx *parserCtx) parseContentName() (string, error) {
	if ctx.curPeek(1) == '#' {
		ctx.curAdvance(1)
		name, err := ctx.parseName()
		if err != nil {
			return "", err
		}
		return "#" + name, nil
	}
	return ctx.parseName()
}

func (ctx *parserCtx) parseOccur() node.ContentOccur {
	switch ctx.curPeek(1) {
	case '?':
		ctx.curAdvance(1)
		return node.OccurOpt
	case '*':
		ctx.curAdvance(1)
		return node.OccurMult
	case '+':
		ctx.curAdvance(1)
		return node.OccurPlus
	}
	return node.OccurOnce
}

/*
 * parse an attribute-list declaration
 *
 * [52] AttlistDecl ::= '<!ATTLIST' S Name AttDef* S? '>'
 */
func (ctx *parserCtx) parseAttlistDecl() error {
	if pdebug.Enabled {
		g := pdebug.Marker("parserCtx.parseAttlistDecl")
		defer g.End()
	}

	if !ctx.curConsumePrefix("<!ATTLIST") {
		return ctx.error(ErrUnexpectedString{Token: "<!ATTLIST"})
	}
	if !node.IsSpace(ctx.curPeek(1)) {
		return ctx.error(ErrSpaceRequired)
	}
	ctx.skipBlanks()

	elem, err := ctx.parseName()
	if err != nil {
		return ctx.error(err)
	}

	decl := ctx.doc.CreateAttributeDecl(elem)
	for {
		ctx.skipBlanks()
		if ctx.curDone() {
			return ctx.error(ErrUnexpectedEOF{Parsing: "attribute list"})
		}
		if ctx.curConsumePrefix(">") {
			break
		}
		def, err := ctx.parseAttlistItem()
		if err != nil {
			return err
		}
		decl.AddDef(def)
	}
	return ctx.appendNode(decl)
}

// attlistTypeNames are the attribute types an ATTLIST item may name
var attlistTypeNames = map[string]struct{}{
	"CDATA":    {},
	"ID":       {},
	"IDREF":    {},
	"IDREFS":   {},
	"ENTITY":   {},
	"ENTITIES": {},
	"NMTOKEN":  {},
	"NMTOKENS": {},
	"NOTATION": {},
}

/*
 * parse one attribute definition of an ATTLIST declaration: name,
 * then an enumerated type or a type name (possibly NOTATION (...)),
 * then an optional default keyword and default value
 *
 * [53] AttDef ::= S Name S AttType S DefaultDecl
 */
func (ctx *parserCtx) parseAttlistItem() (node.AttDef, error) {
	var def node.AttDef

	name, err := ctx.parseName()
	if err != nil {
		return def, ctx.error(err)
	}
	def.Name = name

	if !node.IsSpace(ctx.curPeek(1)) {
		return def, ctx.error(ErrSpaceRequired)
	}
	ctx.skipBlanks()

	if ctx.curPeek(1) == '(' {
		enum, err := ctx.parseEnumeration()
		if err != nil {
			return def, err
		}
		def.Enumeration = enum
	} else {
		typ, err := ctx.parseName()
		if err != nil {
			return def, ctx.error(err)
		}
		if ctx.options.Has(node.ParseOptionValidate) {
			if _, ok := attlistTypeNames[typ]; !ok {
				return def, ctx.error(ErrUnexpectedString{Token: typ})
			}
		}
		def.Type = typ
		if typ == "NOTATION" {
			ctx.skipBlanks()
			enum, err := ctx.parseEnumeration()
			if err != nil {
				return def, err
			}
			def.Enumeration = enum
		}
	}

	ctx.skipBlanks()
	if ctx.curPeek(1) == '#' {
		ctx.curAdvance(1)
		kw, err := ctx.parseName()
		if err != nil {
			return def, ctx.error(err)
		}
		switch kw {
		case "REQUIRED":
			def.Default = node.AttrDefaultRequired
		case "IMPLIED":
			def.Default = node.AttrDefaultImplied
		case "FIXED":
			def.Default = node.AttrDefaultFixed
		default:
			return def, ctx.error(ErrUnexpectedString{Token: "#" + kw})
		}
	}

	ctx.skipBlanks()
	if c := ctx.curPeek(1); c == '"' || c == '\'' {
		v, err := ctx.parseQuotedRaw()
		if err != nil {
			return def, err
		}
		def.DefaultValue = node.NewValue(v)
		def.HasDefault = true
	}
	return def, nil
}

/*
 * parse an enumerated type
 *
 * [59] Enumeration ::= '(' S? Nmtoken (S? '|' S? Nmtoken)* S? ')'
 */
func (ctx *parserCtx) parseEnumeration() ([]string, error) {
	if ctx.curPeek(1) != '(' {
		return nil, ctx.error(ErrOpenParenRequired)
	}
	ctx.curAdvance(1)

	var items []string
	for {
		ctx.skipBlanks()
		item, err := ctx.parseNmtoken()
		if err != nil {
			return nil, err
		}
		items = append(items, item)
		ctx.skipBlanks()
		switch c := ctx.curPeek(1); c {
		case '|':
			ctx.curAdvance(1)
		case ')':
			ctx.curAdvance(1)
			return items, nil
		default:
			return nil, ctx.error(ErrUnexpectedChar{Expected: "'|' or ')'", Got: c})
		}
	}
}
