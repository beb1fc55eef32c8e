package node

// ListMode selects what a List iterates over
type ListMode int

const (
	// ListModeAttributes iterates the attribute chain of one node
	ListModeAttributes ListMode = iota
	// ListModeChildNodes iterates direct children only
	ListModeChildNodes
	// ListModeChildNodesDeep iterates the whole subtree in preorder
	ListModeChildNodesDeep
	// ListModeFlat iterates an explicit array of nodes
	ListModeFlat
)

// DefaultXMLLevels is the nesting depth the deep-traversal resume
// stack is expected to stay within for normal documents; deeper
// nesting simply grows the stack
const DefaultXMLLevels = 200

// Filter decides whether a candidate node is part of the list. It
// receives the list itself so a predicate can stop on context.
type Filter func(l *List, n Node) bool

// resumePoint remembers where to pick up in the parent once a deep
// traversal exhausts the children of the current node
type resumePoint struct {
	parent Node
	next   Node
}

// List is a lazy iterator over attributes, siblings, a full subtree
// or a flat array. It detects structural changes to the underlying
// lists: a mutation of the origin (or, for deep traversal, anything
// below it) causes the next operation to fail with ErrListChanged,
// observable through Err.
type List struct {
	mode     ListMode
	origin   Node
	filter   Filter
	current  Node
	flat     []Node
	flatIdx  int
	stack    []resumePoint
	length   int
	hasLen   bool
	snapshot uint32
	err      error
}

func NewAttributesList(owner Node) *List {
	l := &List{
		mode:   ListModeAttributes,
		origin: owner,
	}
	l.Reset()
	return l
}

func NewChildNodesList(parent Node, filter Filter) *List {
	l := &List{
		mode:   ListModeChildNodes,
		origin: parent,
		filter: filter,
	}
	l.Reset()
	return l
}

func NewChildNodesDeepList(parent Node, filter Filter) *List {
	l := &List{
		mode:   ListModeChildNodesDeep,
		origin: parent,
		filter: filter,
	}
	l.Reset()
	return l
}

func NewFlatList(nodes []Node, filter Filter) *List {
	l := &List{
		mode:   ListModeFlat,
		flat:   nodes,
		filter: filter,
	}
	l.Reset()
	return l
}

// Err reports whether the iterator has failed; once set, every other
// operation is a no-op until Reset clears it
func (l *List) Err() error {
	return l.err
}

func (l *List) Mode() ListMode {
	return l.mode
}

// Reset rewinds the list to its beginning and resynchronizes the
// structural-change snapshot
func (l *List) Reset() {
	l.err = nil
	l.stack = l.stack[:0]
	l.flatIdx = 0
	l.hasLen = false
	if l.origin != nil {
		l.snapshot = l.origin.getTreeNode().mutations
	}

	switch l.mode {
	case ListModeAttributes:
		if a := l.origin.FirstAttribute(); a != nil {
			l.current = a
		} else {
			l.current = nil
		}
	case ListModeChildNodes, ListModeChildNodesDeep:
		l.current = l.origin.FirstChild()
	case ListModeFlat:
		if len(l.flat) > 0 {
			l.current = l.flat[0]
		} else {
			l.current = nil
		}
	}
	l.skipFiltered()
}

func (l *List) check() bool {
	if l.err != nil {
		return false
	}
	if l.origin != nil && l.origin.getTreeNode().mutations != l.snapshot {
		l.err = ErrListChanged
		l.current = nil
		return false
	}
	return true
}

// advance moves to the next candidate, ignoring the filter
func (l *List) advance() {
	switch l.mode {
	case ListModeAttributes, ListModeChildNodes:
		if l.current != nil {
			l.current = l.current.NextSibling()
		}
	case ListModeChildNodesDeep:
		l.advanceDeep()
	case ListModeFlat:
		l.flatIdx++
		if l.flatIdx < len(l.flat) {
			l.current = l.flat[l.flatIdx]
		} else {
			l.current = nil
		}
	}
}

// advanceDeep steps a preorder traversal: entering a node with
// children pushes a resume point (parent, next sibling) and
// descends; when children exhaust, the most recent resume point is
// popped
func (l *List) advanceDeep() {
	cur := l.current
	if cur == nil {
		return
	}
	if fc := cur.FirstChild(); fc != nil {
		l.stack = append(l.stack, resumePoint{parent: cur, next: cur.NextSibling()})
		l.current = fc
		return
	}

	next := cur.NextSibling()
	for next == nil && len(l.stack) > 0 {
		rp := l.stack[len(l.stack)-1]
		l.stack = l.stack[:len(l.stack)-1]
		next = rp.next
	}
	l.current = next
}

func (l *List) skipFiltered() {
	if l.filter == nil {
		return
	}
	for l.current != nil && !l.filter(l, l.current) {
		l.advance()
	}
}

func (l *List) Empty() bool {
	return l.current == nil
}

// Front returns the node at the head of the list without advancing
func (l *List) Front() Node {
	if !l.check() {
		return nil
	}
	return l.current
}

// MoveFront advances the head by one node
func (l *List) MoveFront() {
	if !l.check() {
		return
	}
	l.advance()
	l.skipFiltered()
	l.hasLen = false
}

// PopFront returns the head and advances past it
func (l *List) PopFront() Node {
	if !l.check() {
		return nil
	}
	n := l.current
	l.advance()
	l.skipFiltered()
	l.hasLen = false
	return n
}

// fresh returns a rewound copy used by the random-access helpers so
// they do not disturb the iteration state
func (l *List) fresh() *List {
	c := l.Save()
	c.Reset()
	return c
}

// Item returns the i-th node of the list, counted from its beginning
func (l *List) Item(i int) Node {
	if !l.check() || i < 0 {
		return nil
	}
	w := l.fresh()
	for ; i > 0; i-- {
		if w.PopFront() == nil {
			return nil
		}
	}
	return w.Front()
}

// Length walks a snapshot of the list and reports how many nodes it
// holds. The value is memoized until the head moves.
func (l *List) Length() int {
	if !l.check() {
		return 0
	}
	if l.hasLen {
		return l.length
	}
	w := l.fresh()
	n := 0
	for w.PopFront() != nil {
		n++
	}
	l.length = n
	l.hasLen = true
	return n
}

// IndexOf reports the position of n counted from the beginning of
// the list, or -1
func (l *List) IndexOf(n Node) int {
	if !l.check() || n == nil {
		return -1
	}
	w := l.fresh()
	for i := 0; ; i++ {
		c := w.PopFront()
		if c == nil {
			return -1
		}
		if c == n {
			return i
		}
	}
}

// Back returns the last node of the list
func (l *List) Back() Node {
	if !l.check() {
		return nil
	}
	w := l.fresh()
	var last Node
	for c := w.PopFront(); c != nil; c = w.PopFront() {
		last = c
	}
	return last
}

// RemoveAll detaches every node in the list from its parent, then
// rewinds
func (l *List) RemoveAll() error {
	if !l.check() {
		return l.err
	}
	w := l.fresh()
	var nodes []Node
	for c := w.PopFront(); c != nil; c = w.PopFront() {
		nodes = append(nodes, c)
	}
	for _, c := range nodes {
		p := c.Parent()
		if p == nil {
			continue
		}
		if a, ok := c.(*Attribute); ok {
			_ = removeAttribute(p, a)
			continue
		}
		_ = removeChild(p, c)
	}
	l.Reset()
	return nil
}

// Save returns an independent copy of the iterator so the caller can
// re-iterate from the current position
func (l *List) Save() *List {
	c := *l
	c.stack = append([]resumePoint(nil), l.stack...)
	return &c
}
