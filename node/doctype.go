package node

// ExternalIDType is the keyword tag of a DOCTYPE or NOTATION external
// identifier
type ExternalIDType int

const (
	ExternalIDNone ExternalIDType = iota
	ExternalIDSystem
	ExternalIDPublic
)

func (t ExternalIDType) String() string {
	switch t {
	case ExternalIDSystem:
		return "SYSTEM"
	case ExternalIDPublic:
		return "PUBLIC"
	}
	return ""
}

// DocumentType represents the <!DOCTYPE name ...> node. Its children
// are the declarations of the internal subset.
type DocumentType struct {
	treeNode
	externalID ExternalIDType
	publicID   Value
	systemID   Value
}

var _ Node = (*DocumentType)(nil)

func (*DocumentType) Type() NodeType {
	return DocumentTypeNodeType
}

func (dt *DocumentType) ExternalID() ExternalIDType {
	return dt.externalID
}

func (dt *DocumentType) PublicID() string {
	return dt.publicID.String()
}

func (dt *DocumentType) SystemID() string {
	return dt.systemID.String()
}

func (dt *DocumentType) AppendChild(c Node) error {
	return appendChild(dt, c)
}

func (dt *DocumentType) InsertChildBefore(c Node, ref Node) error {
	return insertChildBefore(dt, c, ref)
}

func (dt *DocumentType) InsertChildAfter(c Node, ref Node) error {
	return insertChildAfter(dt, c, ref)
}

func (dt *DocumentType) RemoveChild(c Node) error {
	return removeChild(dt, c)
}

func (dt *DocumentType) ReplaceChild(c Node, old Node) error {
	return replaceChild(dt, c, old)
}

func (dt *DocumentType) RemoveChildNodes(deep bool) error {
	return removeChildNodes(dt, deep)
}
