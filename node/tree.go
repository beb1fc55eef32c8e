package node

// treeNode is the part of a Node that handles the tree structure.
// Child and attribute lists are kept as separate doubly-linked chains
// anchored at the parent; insertion order is significant and preserved.
type treeNode struct {
	qname      QName
	doc        *Document
	parent     Node
	firstChild Node
	lastChild  Node
	next       Node
	prev       Node
	firstAttr  *Attribute
	lastAttr   *Attribute

	// mutations counts structural changes to this node's child and
	// attribute lists. Every change also bumps the counters of all
	// ancestors so that a deep iterator anchored anywhere above can
	// detect it.
	mutations uint32
}

func (n *treeNode) getTreeNode() *treeNode {
	return n
}

func (n *treeNode) OwnerDocument() *Document {
	return n.doc
}

func (n *treeNode) Parent() Node {
	return n.parent
}

func (n *treeNode) FirstChild() Node {
	return n.firstChild
}

func (n *treeNode) LastChild() Node {
	return n.lastChild
}

func (n *treeNode) NextSibling() Node {
	return n.next
}

func (n *treeNode) PrevSibling() Node {
	return n.prev
}

func (n *treeNode) FirstAttribute() *Attribute {
	return n.firstAttr
}

func (n *treeNode) LastAttribute() *Attribute {
	return n.lastAttr
}

func (n *treeNode) Prefix() string {
	return n.qname.Prefix()
}

func (n *treeNode) LocalName() string {
	return n.qname.LocalName()
}

func (n *treeNode) URI() string {
	return n.qname.URI()
}

func (n *treeNode) Name() string {
	return n.qname.Name()
}

func (n *treeNode) Level() int {
	l := 0
	for p := n.parent; p != nil; p = p.Parent() {
		l++
	}
	return l
}

// Default mutators: most variants are leaves, so the shared
// implementation rejects everything. Container kinds override these.

func (n *treeNode) AppendChild(Node) error {
	return ErrInvalidOperation
}

func (n *treeNode) InsertChildBefore(Node, Node) error {
	return ErrInvalidOperation
}

func (n *treeNode) InsertChildAfter(Node, Node) error {
	return ErrInvalidOperation
}

func (n *treeNode) RemoveChild(Node) error {
	return ErrInvalidOperation
}

func (n *treeNode) ReplaceChild(Node, Node) error {
	return ErrInvalidOperation
}

func (n *treeNode) RemoveChildNodes(bool) error {
	return ErrInvalidOperation
}

func bumpMutations(n Node) {
	for a := n; a != nil; a = a.Parent() {
		a.getTreeNode().mutations++
	}
}

// allowedChild checks the permitted-children matrix for a parent kind
func allowedChild(p Node, c Node) bool {
	ct := c.Type()
	switch p.Type() {
	case DocumentNodeType:
		switch ct {
		case DeclarationNodeType, DocumentTypeNodeType, ElementNodeType,
			CommentNodeType, ProcessingInstructionNodeType,
			WhitespaceNodeType, SignificantWhitespaceNodeType:
			return true
		}
	case DocumentTypeNodeType:
		switch ct {
		case CommentNodeType, ProcessingInstructionNodeType,
			EntityNodeType, EntityRefNodeType, NotationNodeType,
			AttributeDeclNodeType, ElementDeclNodeType, TextNodeType,
			WhitespaceNodeType, SignificantWhitespaceNodeType:
			return true
		}
	case ElementNodeType:
		switch ct {
		case ElementNodeType, TextNodeType, CDATASectionNodeType,
			CommentNodeType, ProcessingInstructionNodeType, EntityRefNodeType,
			WhitespaceNodeType, SignificantWhitespaceNodeType:
			return true
		}
	case DocumentFragNodeType:
		switch ct {
		case DocumentNodeType, DeclarationNodeType, DocumentTypeNodeType:
			return false
		}
		return true
	}
	return false
}

// checkInsert validates the invariants common to every child
// insertion: permitted child kind, no self or ancestor as child, no
// cross-document move outside of the loading phase, and the
// at-most-one rules on the Document node.
func checkInsert(p Node, c Node) error {
	if c == nil {
		return ErrInvalidOperation
	}

	if !allowedChild(p, c) {
		return ErrInvalidOperation
	}

	for a := p; a != nil; a = a.Parent() {
		if a == c {
			return ErrInvalidOperation
		}
	}

	pdoc := p.OwnerDocument()
	if cdoc := c.OwnerDocument(); cdoc != pdoc {
		if pdoc == nil || !pdoc.relaxed() {
			return ErrInvalidOperation
		}
	}

	if p.Type() == DocumentNodeType {
		doc := p.(*Document)
		switch c.Type() {
		case DeclarationNodeType:
			if d := doc.Declaration(); d != nil && d != c {
				return ErrInvalidOperation
			}
		case DocumentTypeNodeType:
			if d := doc.DocumentType(); d != nil && d != c {
				return ErrInvalidOperation
			}
		case ElementNodeType:
			if d := doc.DocumentElement(); d != nil && d != c {
				return ErrInvalidOperation
			}
		}
	}
	return nil
}

// detach removes n from its current parent's child list, if any.
// The node stays alive, merely orphaned.
func detach(n Node) {
	t := n.getTreeNode()
	p := t.parent
	if p == nil {
		return
	}
	pt := p.getTreeNode()
	if pt.firstChild == n {
		pt.firstChild = t.next
	}
	if pt.lastChild == n {
		pt.lastChild = t.prev
	}
	if t.prev != nil {
		t.prev.getTreeNode().next = t.next
	}
	if t.next != nil {
		t.next.getTreeNode().prev = t.prev
	}
	t.parent = nil
	t.prev = nil
	t.next = nil
	bumpMutations(p)
}

// appendChild links c as the last child of p. A child that currently
// sits in another list is detached first. A DocumentFragment is not
// inserted itself; its children move instead.
func appendChild(p Node, c Node) error {
	if c != nil && c.Type() == DocumentFragNodeType {
		return appendFragment(p, c)
	}
	if err := checkInsert(p, c); err != nil {
		return err
	}

	detach(c)

	pt := p.getTreeNode()
	ct := c.getTreeNode()
	if last := pt.lastChild; last != nil {
		last.getTreeNode().next = c
		ct.prev = last
	} else {
		pt.firstChild = c
	}
	pt.lastChild = c
	ct.parent = p
	bumpMutations(p)
	return nil
}

func appendFragment(p Node, frag Node) error {
	for c := frag.FirstChild(); c != nil; c = frag.FirstChild() {
		if err := appendChild(p, c); err != nil {
			return err
		}
	}
	return nil
}

func insertChildBefore(p Node, c Node, ref Node) error {
	if ref == nil || ref.Parent() != p {
		return ErrInvalidOperation
	}
	if err := checkInsert(p, c); err != nil {
		return err
	}

	detach(c)

	pt := p.getTreeNode()
	ct := c.getTreeNode()
	rt := ref.getTreeNode()

	ct.next = ref
	ct.prev = rt.prev
	if rt.prev != nil {
		rt.prev.getTreeNode().next = c
	} else {
		pt.firstChild = c
	}
	rt.prev = c
	ct.parent = p
	bumpMutations(p)
	return nil
}

func insertChildAfter(p Node, c Node, ref Node) error {
	if ref == nil || ref.Parent() != p {
		return ErrInvalidOperation
	}
	if err := checkInsert(p, c); err != nil {
		return err
	}

	detach(c)

	pt := p.getTreeNode()
	ct := c.getTreeNode()
	rt := ref.getTreeNode()

	ct.prev = ref
	ct.next = rt.next
	if rt.next != nil {
		rt.next.getTreeNode().prev = c
	} else {
		pt.lastChild = c
	}
	rt.next = c
	ct.parent = p
	bumpMutations(p)
	return nil
}

func removeChild(p Node, c Node) error {
	if c == nil || c.Parent() != p {
		return ErrInvalidOperation
	}
	detach(c)
	return nil
}

// replaceChild removes old and inserts c in its former position
func replaceChild(p Node, c Node, old Node) error {
	if old == nil || old.Parent() != p {
		return ErrInvalidOperation
	}
	next := old.NextSibling()
	detach(old)
	var err error
	if next != nil {
		err = insertChildBefore(p, c, next)
	} else {
		err = appendChild(p, c)
	}
	if err != nil {
		// put old back so a failed replacement leaves the tree as it was
		if next != nil {
			_ = insertChildBefore(p, old, next)
		} else {
			_ = appendChild(p, old)
		}
	}
	return err
}

func removeChildNodes(p Node, deep bool) error {
	for c := p.FirstChild(); c != nil; c = p.FirstChild() {
		if deep {
			_ = c.RemoveChildNodes(true)
		}
		detach(c)
	}
	return nil
}

// Attribute list management. Attributes reuse the sibling links of
// their treeNode but live in a chain of their own, anchored at the
// owning element (or declaration).

func findAttribute(p Node, name string, cmp func(string, string) bool) *Attribute {
	for a := p.FirstAttribute(); a != nil; a = a.NextAttribute() {
		if cmp(a.Name(), name) {
			return a
		}
	}
	return nil
}

func appendAttribute(p Node, a *Attribute) error {
	if a == nil {
		return ErrInvalidOperation
	}
	if a.owner != nil && a.owner == p {
		return nil
	}

	pdoc := p.OwnerDocument()
	if adoc := a.OwnerDocument(); adoc != pdoc {
		if pdoc == nil || !pdoc.relaxed() {
			return ErrInvalidOperation
		}
	}

	if pdoc == nil || !pdoc.relaxed() {
		cmp := cmpExact
		if pdoc != nil {
			cmp = pdoc.nameCompare
		}
		if findAttribute(p, a.Name(), cmp) != nil {
			return ErrAttributeDuplicated
		}
	}

	if a.owner != nil {
		removeAttribute(a.owner, a)
	}

	pt := p.getTreeNode()
	at := a.getTreeNode()
	if last := pt.lastAttr; last != nil {
		last.getTreeNode().next = a
		at.prev = last
	} else {
		pt.firstAttr = a
	}
	pt.lastAttr = a
	a.owner = p
	bumpMutations(p)
	return nil
}

func removeAttribute(p Node, a *Attribute) error {
	if a == nil || a.owner != p {
		return ErrInvalidOperation
	}
	pt := p.getTreeNode()
	at := a.getTreeNode()
	if pt.firstAttr == a {
		if at.next == nil {
			pt.firstAttr = nil
		} else {
			pt.firstAttr = at.next.(*Attribute)
		}
	}
	if pt.lastAttr == a {
		if at.prev == nil {
			pt.lastAttr = nil
		} else {
			pt.lastAttr = at.prev.(*Attribute)
		}
	}
	if at.prev != nil {
		at.prev.getTreeNode().next = at.next
	}
	if at.next != nil {
		at.next.getTreeNode().prev = at.prev
	}
	a.owner = nil
	at.prev = nil
	at.next = nil
	bumpMutations(p)
	return nil
}

func removeAttributes(p Node) {
	for a := p.FirstAttribute(); a != nil; a = p.FirstAttribute() {
		_ = removeAttribute(p, a)
	}
}

func cmpExact(a, b string) bool {
	return a == b
}
