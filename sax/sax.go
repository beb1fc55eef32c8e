// Package sax defines the callback surface invoked by the parser
// while it builds the document tree. Each hook is optional; a hook
// that returns false tells the parser to drop the node it was just
// handed from its parent.
package sax

import "github.com/lestrrat-go/xenon/node"

// AttributeFunc is invoked after an attribute has been appended to
// its element
type AttributeFunc func(userData interface{}, attr *node.Attribute) bool

// ElementBeginFunc is invoked after an element has been opened and
// its attributes parsed
type ElementBeginFunc func(userData interface{}, elem *node.Element) bool

// ElementEndFunc is invoked when the element is closed
type ElementEndFunc func(userData interface{}, elem *node.Element) bool

// NodeFunc is invoked after any non-element, non-attribute node has
// been inserted
type NodeFunc func(userData interface{}, n node.Node) bool

// Handler bundles the four hooks. The first argument passed to every
// hook is an opaque user data value registered with the parser.
type Handler struct {
	Attribute    AttributeFunc
	ElementBegin ElementBeginFunc
	ElementEnd   ElementEndFunc
	OtherNode    NodeFunc
}

// OnAttribute dispatches to the Attribute hook, defaulting to keep
func (h *Handler) OnAttribute(userData interface{}, attr *node.Attribute) bool {
	if h == nil || h.Attribute == nil {
		return true
	}
	return h.Attribute(userData, attr)
}

func (h *Handler) OnElementBegin(userData interface{}, elem *node.Element) bool {
	if h == nil || h.ElementBegin == nil {
		return true
	}
	return h.ElementBegin(userData, elem)
}

func (h *Handler) OnElementEnd(userData interface{}, elem *node.Element) bool {
	if h == nil || h.ElementEnd == nil {
		return true
	}
	return h.ElementEnd(userData, elem)
}

func (h *Handler) OnOtherNode(userData interface{}, n node.Node) bool {
	if h == nil || h.OtherNode == nil {
		return true
	}
	return h.OtherNode(userData, n)
}
