package avl

import (
	"fmt"
	"reflect"
)

// Tree is an AVL tree with unique keys.
//
// K is the key type, T the payload type. Payloads are stored by value; for
// entities shared between several trees, T usually is a pointer type.
//
// Besides the usual operations, a tree tracks the node holding the maximum key,
// which is available in O(1) through Max and MaxNode.
type Tree[K, T any] struct {
	cfg   Config[K, T]
	root  *Node[K, T]
	max   *Node[K, T] // rightmost node, non-owning
	count int
	stats Stats
}

// Stats counts rotations performed by a tree since its creation.
//
// LL and RR are single rotations for left-left and right-right heavy subtrees,
// LR and RL are double rotations.
type Stats struct {
	LL, RR, LR, RL int
}

// Rotations returns the total number of rebalancing steps.
func (s Stats) Rotations() int {
	return s.LL + s.RR + s.LR + s.RL
}

// New creates an empty tree with validated configuration.
func New[K, T any](cfg Config[K, T]) (*Tree[K, T], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &Tree[K, T]{cfg: cfg.normalized()}, nil
}

// Config returns a copy of the effective tree configuration.
func (t *Tree[K, T]) Config() Config[K, T] {
	return t.cfg
}

// Len returns the number of nodes in the tree.
func (t *Tree[K, T]) Len() int {
	if t == nil {
		return 0
	}
	return t.count
}

// IsEmpty reports whether the tree has no nodes.
func (t *Tree[K, T]) IsEmpty() bool {
	return t == nil || t.root == nil
}

// Height returns the tree height, where 0 means empty and 1 means a leaf root.
func (t *Tree[K, T]) Height() int {
	if t == nil {
		return 0
	}
	return height(t.root)
}

// Root returns the root node or nil.
func (t *Tree[K, T]) Root() *Node[K, T] {
	return t.root
}

// Stats returns the rotation statistics of the tree.
func (t *Tree[K, T]) Stats() Stats {
	return t.stats
}

// Max returns the payload with the maximum key. ok is false for an empty tree.
func (t *Tree[K, T]) Max() (value T, ok bool) {
	if t == nil || t.max == nil {
		return value, false
	}
	return t.max.value, true
}

// MaxNode returns the node holding the maximum key, or nil.
func (t *Tree[K, T]) MaxNode() *Node[K, T] {
	return t.max
}

// Free returns the number of nodes the tree may still allocate, or -1 if the
// tree's capacity is unlimited.
func (t *Tree[K, T]) Free() int {
	if t.cfg.Capacity == 0 {
		return -1
	}
	return t.cfg.Capacity - t.count
}

func (t *Tree[K, T]) full() bool {
	return t.cfg.Capacity > 0 && t.count >= t.cfg.Capacity
}

// Search descends from the root looking for key. If key is found, the node
// holding it is returned together with found=true. Otherwise the last node
// visited is returned, which is the parent a new node for key would be
// attached to. For an empty tree Search returns nil.
func (t *Tree[K, T]) Search(key K) (node *Node[K, T], found bool) {
	n := t.root
	for n != nil {
		c := n.compareTo(key)
		switch {
		case c == 0:
			return n, true
		case c > 0:
			if n.left == nil {
				return n, false
			}
			n = n.left
		default:
			if n.right == nil {
				return n, false
			}
			n = n.right
		}
	}
	return nil, false
}

// Locate is Search for the key of a payload. It fails with ErrNullArgument
// for a nil payload.
func (t *Tree[K, T]) Locate(value T) (*Node[K, T], bool, error) {
	if isNil(value) {
		return nil, false, ErrNullArgument
	}
	n, found := t.Search(t.cfg.Key(value))
	return n, found, nil
}

// Find returns the payload stored for key.
func (t *Tree[K, T]) Find(key K) (value T, ok bool) {
	if n, found := t.Search(key); found {
		return n.value, true
	}
	return value, false
}

// Contains reports whether key is present in the tree.
func (t *Tree[K, T]) Contains(key K) bool {
	_, found := t.Search(key)
	return found
}

// Insert adds a payload to the tree and returns the node holding it.
//
// If the key of value is already present, Insert returns the existing node and
// ErrAlreadyExists, leaving the tree unchanged. If the tree is at capacity,
// Insert returns ErrOutOfMemory, again leaving the tree unchanged.
func (t *Tree[K, T]) Insert(value T) (*Node[K, T], error) {
	if isNil(value) {
		return nil, ErrNullArgument
	}
	key := t.cfg.Key(value)
	parent, found := t.Search(key)
	if found {
		return parent, ErrAlreadyExists
	}
	if t.full() {
		return nil, fmt.Errorf("%w: capacity of %d nodes exhausted", ErrOutOfMemory, t.cfg.Capacity)
	}
	n := newNode(t, value)
	if parent == nil {
		t.root = n
	} else if parent.compareTo(key) < 0 {
		parent.setRight(n)
	} else {
		parent.setLeft(n)
	}
	t.count++
	t.rebalance(parent)
	t.refreshMax(n)
	return n, nil
}

// refreshMax re-establishes the maximum-key cache after a structural mutation.
// If the mutation was the insert of node inserted, the cache is updated by a
// single comparison; otherwise the rightmost path is walked.
func (t *Tree[K, T]) refreshMax(inserted *Node[K, T]) {
	if inserted != nil && t.max != nil {
		if inserted.compareTo(t.cfg.Key(t.max.value)) > 0 {
			t.max = inserted
		}
		return
	}
	t.max = rightmost(t.root)
}

func rightmost[K, T any](n *Node[K, T]) *Node[K, T] {
	if n == nil {
		return nil
	}
	for n.right != nil {
		n = n.right
	}
	return n
}

func leftmost[K, T any](n *Node[K, T]) *Node[K, T] {
	if n == nil {
		return nil
	}
	for n.left != nil {
		n = n.left
	}
	return n
}

// Clear releases all nodes of the tree in post-order. Node handles held by
// clients become detached.
func (t *Tree[K, T]) Clear() {
	var release func(*Node[K, T])
	release = func(n *Node[K, T]) {
		if n == nil {
			return
		}
		release(n.left)
		release(n.right)
		var zero T
		n.value = zero
		n.detach()
	}
	release(t.root)
	t.root, t.max, t.count = nil, nil, 0
}

// isNil reports whether v is a nil pointer, interface, map, slice, func or
// channel. Values of other kinds are never nil.
func isNil[T any](v T) bool {
	a := any(v)
	if a == nil {
		return true
	}
	rv := reflect.ValueOf(a)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}
