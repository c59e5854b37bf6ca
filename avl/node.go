package avl

// Shape classifies a node by the children it has.
type Shape uint8

// Node shapes.
const (
	Leaf Shape = iota
	LeftOnly
	RightOnly
	BothChildren
)

func (s Shape) String() string {
	switch s {
	case Leaf:
		return "leaf"
	case LeftOnly:
		return "left-only"
	case RightOnly:
		return "right-only"
	}
	return "both-children"
}

// Node is a vertex of a tree. It owns exactly one payload and its children.
//
// Clients may hold on to nodes as handles (e.g., for DeleteNode), but they
// never mutate them. A node handle remains valid until the node is removed
// from its tree; see DeleteNode for payload relocation.
type Node[K, T any] struct {
	value  T
	left   *Node[K, T] // owned
	right  *Node[K, T] // owned
	parent *Node[K, T] // back-reference, non-owning
	tree   *Tree[K, T] // owner, non-owning; nil after removal
	height int
	bf     int
	shape  Shape
}

func newNode[K, T any](tree *Tree[K, T], value T) *Node[K, T] {
	return &Node[K, T]{
		value:  value,
		tree:   tree,
		height: 1,
	}
}

// Value returns the payload of the node.
func (n *Node[K, T]) Value() T {
	return n.value
}

// Key returns the key of the payload, as extracted by the tree's config.
func (n *Node[K, T]) Key() K {
	assert(n.tree != nil, "Key called on detached node")
	return n.tree.cfg.Key(n.value)
}

// Left returns the left child or nil.
func (n *Node[K, T]) Left() *Node[K, T] { return n.left }

// Right returns the right child or nil.
func (n *Node[K, T]) Right() *Node[K, T] { return n.right }

// Parent returns the parent node or nil for the root.
func (n *Node[K, T]) Parent() *Node[K, T] { return n.parent }

// Height returns the height of the subtree rooted at n. A leaf has height 1.
func (n *Node[K, T]) Height() int { return n.height }

// Balance returns the balance factor, i.e. left height minus right height.
func (n *Node[K, T]) Balance() int { return n.bf }

// Shape returns the shape classification of n.
func (n *Node[K, T]) Shape() Shape { return n.shape }

// Attached reports whether n still belongs to a tree.
func (n *Node[K, T]) Attached() bool {
	return n != nil && n.tree != nil
}

// compareTo compares the key of n's payload to key.
func (n *Node[K, T]) compareTo(key K) int {
	return n.tree.cfg.Compare(n.tree.cfg.Key(n.value), key)
}

func shapeOf(hasLeft, hasRight bool) Shape {
	switch {
	case hasLeft && hasRight:
		return BothChildren
	case hasLeft:
		return LeftOnly
	case hasRight:
		return RightOnly
	}
	return Leaf
}

func height[K, T any](n *Node[K, T]) int {
	if n == nil {
		return 0
	}
	return n.height
}

// recompute classifies the shape of n and computes height and balance factor
// from its children. It has to be called after every change of a child link.
func (n *Node[K, T]) recompute() {
	n.shape = shapeOf(n.left != nil, n.right != nil)
	l, r := height(n.left), height(n.right)
	n.height = 1 + max(l, r)
	n.bf = l - r
}

func (n *Node[K, T]) setLeft(child *Node[K, T]) {
	n.left = child
	if child != nil {
		child.parent = n
	}
	n.recompute()
}

func (n *Node[K, T]) setRight(child *Node[K, T]) {
	n.right = child
	if child != nil {
		child.parent = n
	}
	n.recompute()
}

// removeChild unlinks child from n and reports whether it was the left child.
func (n *Node[K, T]) removeChild(child *Node[K, T]) (wasLeft bool) {
	switch child {
	case n.left:
		n.left = nil
		wasLeft = true
	case n.right:
		n.right = nil
	default:
		assert(false, "removeChild called with a node which is not a child")
	}
	n.recompute()
	return
}

// replaceChild puts repl into the slot of old. repl may be nil.
func (n *Node[K, T]) replaceChild(old, repl *Node[K, T]) {
	if n.removeChild(old) {
		n.setLeft(repl)
	} else {
		n.setRight(repl)
	}
}

// detach clears all links of a node which has been removed from its tree.
func (n *Node[K, T]) detach() {
	n.left, n.right, n.parent, n.tree = nil, nil, nil, nil
	n.height, n.bf, n.shape = 1, 0, Leaf
}
