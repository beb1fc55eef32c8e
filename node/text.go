package node

// Text holds character data appearing between markup
type Text struct {
	treeNode
	value Value
}

var _ Node = (*Text)(nil)
var _ Textual = (*Text)(nil)

func (*Text) Type() NodeType {
	return TextNodeType
}

func (t *Text) Value() string {
	return t.value.String()
}

func (t *Text) SetValue(v string) {
	t.value = DecodedValue(v)
}

// AddContent appends to the node's character data
func (t *Text) AddContent(s string) {
	t.value = DecodedValue(t.value.String() + s)
}

// AddChild concatenates another text node into this one; any other
// kind is rejected
func (t *Text) AddChild(c Node) error {
	other, ok := c.(*Text)
	if !ok {
		return ErrInvalidOperation
	}
	t.AddContent(other.Value())
	return nil
}

// EncodedValue returns the content with the predefined specials
// escaped, ready for output
func (t *Text) EncodedValue() string {
	return t.value.Encoded()
}

// CDATASection holds verbatim character data; its contents are never
// escaped on output
type CDATASection struct {
	treeNode
	value Value
}

var _ Node = (*CDATASection)(nil)
var _ Textual = (*CDATASection)(nil)

func (*CDATASection) Type() NodeType {
	return CDATASectionNodeType
}

func (c *CDATASection) Value() string {
	return c.value.String()
}

// Whitespace is insignificant whitespace between markup, retained
// only when whitespace preservation is on
type Whitespace struct {
	treeNode
	value Value
}

var _ Node = (*Whitespace)(nil)
var _ Textual = (*Whitespace)(nil)

func (*Whitespace) Type() NodeType {
	return WhitespaceNodeType
}

func (w *Whitespace) Value() string {
	return w.value.String()
}

// SetValue replaces the whitespace run; a value containing anything
// but XML whitespace is rejected
func (w *Whitespace) SetValue(v string) error {
	if !isAllSpace(v) {
		return ErrNotAllWhitespace
	}
	w.value = RawValue(v)
	return nil
}

// SignificantWhitespace is an all-whitespace text run inside an
// element, preserved when the preserve-whitespace option is on
type SignificantWhitespace struct {
	treeNode
	value Value
}

var _ Node = (*SignificantWhitespace)(nil)
var _ Textual = (*SignificantWhitespace)(nil)

func (*SignificantWhitespace) Type() NodeType {
	return SignificantWhitespaceNodeType
}

func (w *SignificantWhitespace) Value() string {
	return w.value.String()
}

func (w *SignificantWhitespace) SetValue(v string) error {
	if !isAllSpace(v) {
		return ErrNotAllWhitespace
	}
	w.value = RawValue(v)
	return nil
}
