package node

// ProcessingInstruction represents a <?target data?> node. The
// target is the node's name.
type ProcessingInstruction struct {
	treeNode
	data Value
}

var _ Node = (*ProcessingInstruction)(nil)
var _ Textual = (*ProcessingInstruction)(nil)

func (*ProcessingInstruction) Type() NodeType {
	return ProcessingInstructionNodeType
}

func (pi *ProcessingInstruction) Target() string {
	return pi.Name()
}

func (pi *ProcessingInstruction) Value() string {
	return pi.data.String()
}

func (pi *ProcessingInstruction) SetValue(v string) {
	pi.data = RawValue(v)
}
