package css

// nodeItem is a link in a nodeList chain.
type nodeItem struct {
	node Node
	next *nodeItem
}

// nodeList assembles the nodes of one sub-parse before they are drained one
// node per pull. Prepend, append and concat are O(1); compound wrapping
// relies on that.
type nodeList struct {
	head *nodeItem
	tail *nodeItem
	size int
}

// add appends a node to the tail.
func (l *nodeList) add(n Node) {
	item := &nodeItem{node: n}
	if l.tail == nil {
		l.head, l.tail = item, item
	} else {
		l.tail.next = item
		l.tail = item
	}
	l.size++
}

// unshift prepends a node to the head.
func (l *nodeList) unshift(n Node) {
	item := &nodeItem{node: n, next: l.head}
	l.head = item
	if l.tail == nil {
		l.tail = item
	}
	l.size++
}

// take removes and returns the head node.
func (l *nodeList) take() (Node, bool) {
	if l.head == nil {
		return Node{}, false
	}
	item := l.head
	l.head = item.next
	if l.head == nil {
		l.tail = nil
	}
	l.size--
	return item.node, true
}

// concat moves all nodes of b onto the tail of l, leaving b empty.
func (l *nodeList) concat(b *nodeList) {
	if b.head == nil {
		return
	}
	if l.tail == nil {
		l.head, l.tail = b.head, b.tail
	} else {
		l.tail.next = b.head
		l.tail = b.tail
	}
	l.size += b.size
	b.head, b.tail, b.size = nil, nil, 0
}
