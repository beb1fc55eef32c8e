package node

// Entity represents an <!ENTITY name "replacement"> declaration
// inside a DOCTYPE. Parsing an internal general entity also inserts
// the replacement text into the owning document's entity table;
// parameter and external entities are not added.
type Entity struct {
	treeNode
	value      Value
	externalID ExternalIDType
	publicID   Value
	systemID   Value
	notation   string
	param      bool
}

var _ Node = (*Entity)(nil)

func (*Entity) Type() NodeType {
	return EntityNodeType
}

func (e *Entity) Value() string {
	return e.value.String()
}

func (e *Entity) SetExternalID(typ ExternalIDType, publicID, systemID string) {
	e.externalID = typ
	e.publicID = NewValue(publicID)
	e.systemID = NewValue(systemID)
}

func (e *Entity) ExternalID() ExternalIDType {
	return e.externalID
}

func (e *Entity) PublicID() string {
	return e.publicID.String()
}

func (e *Entity) SystemID() string {
	return e.systemID.String()
}

// SetNotation records the NDATA notation name of an unparsed entity
func (e *Entity) SetNotation(name string) {
	e.notation = name
}

func (e *Entity) Notation() string {
	return e.notation
}

// SetParameter marks the entity as a parameter entity (declared as
// <!ENTITY % name ...>)
func (e *Entity) SetParameter(b bool) {
	e.param = b
}

func (e *Entity) IsParameter() bool {
	return e.param
}

// EntityRef represents an unexpanded &name; reference kept in the
// tree
type EntityRef struct {
	treeNode
}

var _ Node = (*EntityRef)(nil)

func (*EntityRef) Type() NodeType {
	return EntityRefNodeType
}
