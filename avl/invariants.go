package avl

import "fmt"

// Check validates structural tree invariants:
//
//   - parent links mirror child links and every node is owned by t,
//   - stored height, balance factor and shape match a recomputation,
//   - every balance factor is in [-1, 1],
//   - the in-order key sequence is strictly ascending,
//   - the node count is correct,
//   - the maximum-key cache points to the rightmost node.
//
// Check is intended to be used in tests.
func (t *Tree[K, T]) Check() error {
	if t == nil {
		return fmt.Errorf("%w: nil tree", ErrCorruptTree)
	}
	if t.root == nil {
		if t.count != 0 || t.max != nil {
			return fmt.Errorf("%w: empty tree with count=%d and max set=%v",
				ErrCorruptTree, t.count, t.max != nil)
		}
		return nil
	}
	if t.root.parent != nil {
		return fmt.Errorf("%w: root has a parent", ErrCorruptTree)
	}
	count, _, err := t.checkNode(t.root)
	if err != nil {
		return err
	}
	if count != t.count {
		return fmt.Errorf("%w: count mismatch (%d != %d)", ErrCorruptTree, count, t.count)
	}
	if t.max != rightmost(t.root) {
		return fmt.Errorf("%w: max cache is not the rightmost node", ErrCorruptTree)
	}
	c := cursor[K, T]{node: leftmost(t.root)}
	prev := c.node
	for c.next(); c.valid(); c.next() {
		if prev.compareTo(t.cfg.Key(c.node.value)) >= 0 {
			return fmt.Errorf("%w: keys not strictly ascending", ErrCorruptTree)
		}
		prev = c.node
	}
	return nil
}

func (t *Tree[K, T]) checkNode(n *Node[K, T]) (items int, h int, err error) {
	if n.tree != t {
		return 0, 0, fmt.Errorf("%w: node owned by another tree", ErrCorruptTree)
	}
	var lc, lh, rc, rh int
	if n.left != nil {
		if n.left.parent != n {
			return 0, 0, fmt.Errorf("%w: broken parent link of left child", ErrCorruptTree)
		}
		if lc, lh, err = t.checkNode(n.left); err != nil {
			return 0, 0, err
		}
	}
	if n.right != nil {
		if n.right.parent != n {
			return 0, 0, fmt.Errorf("%w: broken parent link of right child", ErrCorruptTree)
		}
		if rc, rh, err = t.checkNode(n.right); err != nil {
			return 0, 0, err
		}
	}
	h = 1 + max(lh, rh)
	if n.height != h {
		return 0, 0, fmt.Errorf("%w: stale height %d, should be %d", ErrCorruptTree, n.height, h)
	}
	if n.bf != lh-rh {
		return 0, 0, fmt.Errorf("%w: stale balance factor %d, should be %d", ErrCorruptTree, n.bf, lh-rh)
	}
	if n.bf < -1 || n.bf > 1 {
		return 0, 0, fmt.Errorf("%w: unbalanced node (bf=%d)", ErrCorruptTree, n.bf)
	}
	if shape := shapeOf(n.left != nil, n.right != nil); shape != n.shape {
		return 0, 0, fmt.Errorf("%w: stale shape %s, should be %s", ErrCorruptTree, n.shape, shape)
	}
	return lc + rc + 1, h, nil
}
