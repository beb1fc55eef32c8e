package node

// Comment represents a <!-- ... --> node
type Comment struct {
	treeNode
	value Value
}

var _ Node = (*Comment)(nil)
var _ Textual = (*Comment)(nil)

func (*Comment) Type() NodeType {
	return CommentNodeType
}

func (c *Comment) Value() string {
	return c.value.String()
}

func (c *Comment) SetValue(v string) {
	c.value = DecodedValue(v)
}

