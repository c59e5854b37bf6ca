package avl

import "fmt"

// Delete removes the node holding key. It returns ErrDoesNotExist if key is
// not present.
func (t *Tree[K, T]) Delete(key K) error {
	n, found := t.Search(key)
	if !found {
		return ErrDoesNotExist
	}
	_, err := t.DeleteNode(n)
	return err
}

// DeleteNode removes node n from the tree. It is the entry point for clients
// already holding a node handle, saving a search.
//
// A node with two children is not unlinked itself: its payload is swapped with
// the payload of its in-order successor, and the successor's node is unlinked
// instead. In this case DeleteNode returns n as relocated, as n now holds the
// successor's payload. Clients keeping node handles for payloads have to
// re-point the handle of relocated.Value() to relocated. If no payload moved,
// relocated is nil.
func (t *Tree[K, T]) DeleteNode(n *Node[K, T]) (relocated *Node[K, T], err error) {
	if n == nil {
		return nil, ErrNullArgument
	}
	if n.tree != t {
		return nil, fmt.Errorf("%w: node is not part of this tree", ErrDoesNotExist)
	}
	victim := n
	if n.shape == BothChildren {
		succ := leftmost(n.right)
		n.value, succ.value = succ.value, n.value
		victim, relocated = succ, n
	}
	parent := victim.parent
	t.unlink(victim)
	t.count--
	t.rebalance(parent)
	t.refreshMax(nil)
	var zero T
	victim.value = zero
	victim.detach()
	return relocated, nil
}

// unlink removes node n, which has at most one child, by splicing its child
// into n's slot.
func (t *Tree[K, T]) unlink(n *Node[K, T]) {
	assert(n.shape != BothChildren, "unlink called for node with two children")
	child := n.left
	if child == nil {
		child = n.right
	}
	if n.parent == nil {
		t.root = child
		if child != nil {
			child.parent = nil
		}
		return
	}
	n.parent.replaceChild(n, child)
}
