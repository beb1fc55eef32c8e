package node

// Attribute is a name/value pair owned by an element (or by the XML
// declaration, for its pseudo attributes). Attributes have no
// children of their own; the value is stored directly.
type Attribute struct {
	treeNode
	owner Node
	value Value
}

var _ Node = (*Attribute)(nil)

func (*Attribute) Type() NodeType {
	return AttributeNodeType
}

// Parent returns the element (or declaration) that holds the
// attribute
func (a *Attribute) Parent() Node {
	return a.owner
}

func (a *Attribute) Level() int {
	if a.owner == nil {
		return 0
	}
	return a.owner.Level() + 1
}

// NextAttribute is a thin wrapper around NextSibling() so that the
// caller does not have to constantly type assert
func (a *Attribute) NextAttribute() *Attribute {
	next := a.NextSibling()
	if next == nil {
		return nil
	}
	return next.(*Attribute)
}

func (a *Attribute) PrevAttribute() *Attribute {
	prev := a.PrevSibling()
	if prev == nil {
		return nil
	}
	return prev.(*Attribute)
}

func (a *Attribute) Value() string {
	return a.value.String()
}

func (a *Attribute) SetValue(v string) {
	a.value = DecodedValue(v)
}

// SetRawValue stores a value known to contain no escapes
func (a *Attribute) SetRawValue(v string) {
	a.value = RawValue(v)
}

func (a *Attribute) setValue(v Value) {
	a.value = v
}

// EncodedValue returns the value with the predefined specials
// escaped, ready for output
func (a *Attribute) EncodedValue() string {
	return a.value.Encoded()
}
