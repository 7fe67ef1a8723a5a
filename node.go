package list

// node is a list element.
type node[T any] struct {
	next, prev *node[T]
	value      T
}

// link inserts s after this node.
func (n *node[T]) link(s *node[T]) {
	next := n.next
	n.next = s
	s.prev = n
	s.next = next
	if next != nil {
		next.prev = s
	}
}

// unlink joins the neighbors of this node and detaches it.
func (n *node[T]) unlink() {
	if n.prev != nil {
		n.prev.next = n.next
	}
	if n.next != nil {
		n.next.prev = n.prev
	}
	n.next = nil
	n.prev = nil
}

// chain is a detached run of linked nodes.
type chain[T any] struct {
	head, tail *node[T]
	len        int
}

// push appends a new node holding v to the chain.
func (c *chain[T]) push(v T) {
	n := &node[T]{value: v}
	if c.tail == nil {
		c.head = n
	} else {
		c.tail.link(n)
	}
	c.tail = n
	c.len++
}
