package avl

// rebalance walks from n up to the root, recomputing node statistics and
// rotating every node whose balance factor has left [-1, 1].
func (t *Tree[K, T]) rebalance(n *Node[K, T]) {
	for n != nil {
		n.recompute()
		switch {
		case n.bf > 1: // left heavy
			if n.left.bf >= 0 {
				n = t.rotateRight(n)
				t.stats.LL++
			} else {
				t.rotateLeft(n.left)
				n = t.rotateRight(n)
				t.stats.LR++
			}
		case n.bf < -1: // right heavy
			if n.right.bf <= 0 {
				n = t.rotateLeft(n)
				t.stats.RR++
			} else {
				t.rotateRight(n.right)
				n = t.rotateLeft(n)
				t.stats.RL++
			}
		}
		n = n.parent
	}
}

// rotateRight promotes the left child of n and demotes n to its right child
// slot. The former right subtree of the promoted node becomes n's left subtree.
// Returns the new subtree root.
//
//	      n            p
//	     / \          / \
//	    p   c   =>   a   n
//	   / \              / \
//	  a   b            b   c
func (t *Tree[K, T]) rotateRight(n *Node[K, T]) *Node[K, T] {
	p := n.left
	assert(p != nil, "rotateRight called without left child")
	up := n.parent
	n.setLeft(p.right)
	p.setRight(n)
	t.relink(up, n, p)
	return p
}

// rotateLeft is the mirror image of rotateRight.
//
//	    n                p
//	   / \              / \
//	  a   p     =>     n   c
//	     / \          / \
//	    b   c        a   b
func (t *Tree[K, T]) rotateLeft(n *Node[K, T]) *Node[K, T] {
	p := n.right
	assert(p != nil, "rotateLeft called without right child")
	up := n.parent
	n.setRight(p.left)
	p.setLeft(n)
	t.relink(up, n, p)
	return p
}

// relink puts sub, the new root of a rotated subtree, into the slot old had in
// parent up. If old was the tree root, sub becomes the new root.
func (t *Tree[K, T]) relink(up, old, sub *Node[K, T]) {
	if up == nil {
		assert(t.root == old, "relink: rotated node without parent is not the root")
		t.root = sub
		sub.parent = nil
		return
	}
	up.replaceChild(old, sub)
}
