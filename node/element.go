package node

import "strings"

// Element is a named node carrying both an attribute list and a child
// list
type Element struct {
	treeNode
}

var _ Node = (*Element)(nil)

func (*Element) Type() NodeType {
	return ElementNodeType
}

// Mutators

func (e *Element) AppendChild(c Node) error {
	return appendChild(e, c)
}

func (e *Element) InsertChildBefore(c Node, ref Node) error {
	return insertChildBefore(e, c, ref)
}

func (e *Element) InsertChildAfter(c Node, ref Node) error {
	return insertChildAfter(e, c, ref)
}

func (e *Element) RemoveChild(c Node) error {
	return removeChild(e, c)
}

func (e *Element) ReplaceChild(c Node, old Node) error {
	return replaceChild(e, c, old)
}

func (e *Element) RemoveChildNodes(deep bool) error {
	return removeChildNodes(e, deep)
}

// AddContent appends character data to the element. A trailing Text
// child absorbs the new content; otherwise a fresh Text node is
// appended, so repeated calls coalesce instead of piling up sibling
// text nodes.
func (e *Element) AddContent(s string) error {
	if s == "" {
		return nil
	}
	if last, ok := e.LastChild().(*Text); ok {
		last.AddContent(s)
		return nil
	}
	return appendChild(e, e.doc.CreateText(s))
}

// AppendAttribute appends an existing attribute node. Appending a
// second attribute with the same name is rejected, except while the
// document is loading without validation.
func (e *Element) AppendAttribute(a *Attribute) error {
	return appendAttribute(e, a)
}

// AppendAttributeName ensures an attribute with the given name exists
// on the element and returns it
func (e *Element) AppendAttributeName(name string) *Attribute {
	if a := e.FindAttribute(name); a != nil {
		return a
	}
	a := e.doc.CreateAttribute(name, "")
	_ = appendAttribute(e, a)
	return a
}

// SetAttribute ensures an attribute with the given name exists and
// sets its value
func (e *Element) SetAttribute(name, value string) *Attribute {
	a := e.AppendAttributeName(name)
	a.SetValue(value)
	return a
}

func (e *Element) RemoveAttribute(a *Attribute) error {
	return removeAttribute(e, a)
}

func (e *Element) RemoveAttributeName(name string) error {
	a := e.FindAttribute(name)
	if a == nil {
		return ErrInvalidOperation
	}
	return removeAttribute(e, a)
}

func (e *Element) RemoveAttributes() {
	removeAttributes(e)
}

// RemoveAll removes every attribute and every child of the element
func (e *Element) RemoveAll() {
	removeAttributes(e)
	_ = removeChildNodes(e, true)
}

// Queries

func (e *Element) FindAttribute(name string) *Attribute {
	return findAttribute(e, name, e.doc.nameCompare)
}

// FindAttributeNS matches on local name and namespace URI. A local
// name of "*" matches any attribute in the namespace.
func (e *Element) FindAttributeNS(local, uri string) *Attribute {
	cmp := e.doc.nameCompare
	for a := e.FirstAttribute(); a != nil; a = a.NextAttribute() {
		if (local == "*" || cmp(a.LocalName(), local)) && cmp(a.URI(), uri) {
			return a
		}
	}
	return nil
}

// FindAttributeByID returns the attribute whose name is "id",
// compared case-insensitively
func (e *Element) FindAttributeByID() *Attribute {
	for a := e.FirstAttribute(); a != nil; a = a.NextAttribute() {
		if strings.EqualFold(a.Name(), "id") {
			return a
		}
	}
	return nil
}

// FindElement returns the first child element with the given name.
// "*" matches any element.
func (e *Element) FindElement(name string) *Element {
	cmp := e.doc.nameCompare
	for c := e.firstChild; c != nil; c = c.NextSibling() {
		if c.Type() != ElementNodeType {
			continue
		}
		if name == "*" || cmp(c.Name(), name) {
			return c.(*Element)
		}
	}
	return nil
}

func (e *Element) FindElementNS(local, uri string) *Element {
	cmp := e.doc.nameCompare
	for c := e.firstChild; c != nil; c = c.NextSibling() {
		if c.Type() != ElementNodeType {
			continue
		}
		if (local == "*" || cmp(c.LocalName(), local)) && cmp(c.URI(), uri) {
			return c.(*Element)
		}
	}
	return nil
}

// GetElementByID recursively searches the subtree rooted at e for an
// element whose "id" attribute (matched case-insensitively) has the
// given value
func (e *Element) GetElementByID(id string) *Element {
	if a := e.FindAttributeByID(); a != nil && a.Value() == id {
		return e
	}
	for c := e.firstChild; c != nil; c = c.NextSibling() {
		if c.Type() != ElementNodeType {
			continue
		}
		if found := c.(*Element).GetElementByID(id); found != nil {
			return found
		}
	}
	return nil
}

func (e *Element) GetAttributes() *List {
	return NewAttributesList(e)
}

func (e *Element) GetChildNodes(deep bool) *List {
	if deep {
		return NewChildNodesDeepList(e, nil)
	}
	return NewChildNodesList(e, nil)
}

// GetElements returns the child elements as a lazy list
func (e *Element) GetElements() *List {
	return NewChildNodesList(e, filterElements)
}

// GetElementsByTagName returns elements in the subtree whose name
// matches. "*" matches any element.
func (e *Element) GetElementsByTagName(name string) *List {
	return NewChildNodesDeepList(e, func(l *List, n Node) bool {
		if n.Type() != ElementNodeType {
			return false
		}
		return name == "*" || e.doc.nameCompare(n.Name(), name)
	})
}

// GetElementsByTagNameNS matches on local name and namespace URI;
// "*" as the local name matches any local name
func (e *Element) GetElementsByTagNameNS(local, uri string) *List {
	return NewChildNodesDeepList(e, func(l *List, n Node) bool {
		if n.Type() != ElementNodeType {
			return false
		}
		cmp := e.doc.nameCompare
		return (local == "*" || cmp(n.LocalName(), local)) && cmp(n.URI(), uri)
	})
}

func filterElements(_ *List, n Node) bool {
	return n.Type() == ElementNodeType
}
