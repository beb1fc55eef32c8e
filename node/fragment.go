package node

// DocumentFragment is a container for building subtrees. Appending a
// fragment to a parent moves the fragment's children, never the
// fragment itself.
type DocumentFragment struct {
	treeNode
}

var _ Node = (*DocumentFragment)(nil)

func (*DocumentFragment) Type() NodeType {
	return DocumentFragNodeType
}

func (f *DocumentFragment) AppendChild(c Node) error {
	return appendChild(f, c)
}

func (f *DocumentFragment) InsertChildBefore(c Node, ref Node) error {
	return insertChildBefore(f, c, ref)
}

func (f *DocumentFragment) InsertChildAfter(c Node, ref Node) error {
	return insertChildAfter(f, c, ref)
}

func (f *DocumentFragment) RemoveChild(c Node) error {
	return removeChild(f, c)
}

func (f *DocumentFragment) ReplaceChild(c Node, old Node) error {
	return replaceChild(f, c, old)
}

func (f *DocumentFragment) RemoveChildNodes(deep bool) error {
	return removeChildNodes(f, deep)
}
