package avl

// cursor steps through the nodes of a tree in key order, following parent
// links. It is used for ordered extraction starting at either end of a tree.
type cursor[K, T any] struct {
	node *Node[K, T]
}

func (c *cursor[K, T]) valid() bool {
	return c.node != nil
}

// next moves to the in-order successor.
func (c *cursor[K, T]) next() {
	n := c.node
	if n.right != nil {
		c.node = leftmost(n.right)
		return
	}
	for n.parent != nil && n.parent.right == n {
		n = n.parent
	}
	c.node = n.parent
}

// prev moves to the in-order predecessor.
func (c *cursor[K, T]) prev() {
	n := c.node
	if n.left != nil {
		c.node = rightmost(n.left)
		return
	}
	for n.parent != nil && n.parent.left == n {
		n = n.parent
	}
	c.node = n.parent
}
