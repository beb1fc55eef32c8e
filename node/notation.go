package node

// Notation represents a <!NOTATION name ...> declaration inside a
// DOCTYPE
type Notation struct {
	treeNode
	externalID ExternalIDType
	publicID   Value
	systemID   Value
}

var _ Node = (*Notation)(nil)

func (*Notation) Type() NodeType {
	return NotationNodeType
}

func (n *Notation) ExternalID() ExternalIDType {
	return n.externalID
}

func (n *Notation) PublicID() string {
	return n.publicID.String()
}

func (n *Notation) SystemID() string {
	return n.systemID.String()
}
