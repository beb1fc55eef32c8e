package node

// AttributeDefault represents the default-declaration keyword of an
// ATTLIST item
type AttributeDefault int

const (
	AttrDefaultNone AttributeDefault = iota
	AttrDefaultRequired
	AttrDefaultImplied
	AttrDefaultFixed
)

func (d AttributeDefault) String() string {
	switch d {
	case AttrDefaultRequired:
		return "#REQUIRED"
	case AttrDefaultImplied:
		return "#IMPLIED"
	case AttrDefaultFixed:
		return "#FIXED"
	}
	return ""
}

// AttDef is one attribute definition inside an <!ATTLIST ...>
// declaration
type AttDef struct {
	Name        string
	Type        string
	Enumeration []string
	Default     AttributeDefault
	DefaultValue Value
	HasDefault  bool
}

// AttributeDecl represents a whole <!ATTLIST elem ...> declaration.
// The node's name is the element name; the attribute definitions are
// held in a private list.
type AttributeDecl struct {
	treeNode
	defs []AttDef
}

var _ Node = (*AttributeDecl)(nil)

func (*AttributeDecl) Type() NodeType {
	return AttributeDeclNodeType
}

func (a *AttributeDecl) AddDef(def AttDef) {
	a.defs = append(a.defs, def)
}

func (a *AttributeDecl) Defs() []AttDef {
	return a.defs
}

// ContentOccur is the multiplicity indicator trailing an atom or
// group in an element content model
type ContentOccur int

const (
	OccurOnce ContentOccur = iota
	OccurOpt
	OccurMult
	OccurPlus
)

func (o ContentOccur) Token() string {
	switch o {
	case OccurOpt:
		return "?"
	case OccurMult:
		return "*"
	case OccurPlus:
		return "+"
	}
	return ""
}

// ContentSpecType distinguishes the three forms the content
// specification of an element declaration can take
type ContentSpecType int

const (
	ContentSpecUndefined ContentSpecType = iota
	ContentSpecEmpty
	ContentSpecAny
	ContentSpecChildren
)

// ElementContent is a node of the content model choice tree. A leaf
// carries a name; an interior node carries its separator ('|' for
// alternatives, ',' for sequences) and children. Nesting is
// unbounded.
type ElementContent struct {
	Name     string
	Sep      byte
	Occur    ContentOccur
	Children []*ElementContent
}

// ElementDecl represents an <!ELEMENT name ...> declaration. The
// content choice tree is held privately; it is not part of the
// node's child list.
type ElementDecl struct {
	treeNode
	spec    ContentSpecType
	content *ElementContent
}

var _ Node = (*ElementDecl)(nil)

func (*ElementDecl) Type() NodeType {
	return ElementDeclNodeType
}

func (e *ElementDecl) ContentSpec() ContentSpecType {
	return e.spec
}

func (e *ElementDecl) SetContentSpec(spec ContentSpecType) {
	e.spec = spec
}

func (e *ElementDecl) Content() *ElementContent {
	return e.content
}

func (e *ElementDecl) SetContent(c *ElementContent) {
	e.spec = ContentSpecChildren
	e.content = c
}
