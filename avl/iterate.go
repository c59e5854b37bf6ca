package avl

// ForEach walks payloads in ascending key order.
//
// Iteration stops early if callback returns false.
func (t *Tree[K, T]) ForEach(fn func(value T) bool) {
	if t == nil || fn == nil {
		return
	}
	t.ForEachNode(func(n *Node[K, T]) bool {
		return fn(n.value)
	})
}

// ForEachNode walks nodes in ascending key order. Clients must not modify the
// tree during iteration.
//
// Iteration stops early if callback returns false.
func (t *Tree[K, T]) ForEachNode(fn func(n *Node[K, T]) bool) {
	if t == nil || t.root == nil || fn == nil {
		return
	}
	t.forEachNode(t.root, fn)
}

func (t *Tree[K, T]) forEachNode(n *Node[K, T], fn func(*Node[K, T]) bool) bool {
	if n == nil {
		return true
	}
	if !t.forEachNode(n.left, fn) {
		return false
	}
	if !fn(n) {
		return false
	}
	return t.forEachNode(n.right, fn)
}

// Items returns all payloads in ascending key order. The slice is owned by
// the caller. An empty tree yields an empty slice.
func (t *Tree[K, T]) Items() []T {
	return t.Take(t.Len())
}

// Take returns the first n payloads in ascending key order. If the tree holds
// fewer than n payloads, all of them are returned.
func (t *Tree[K, T]) Take(n int) []T {
	items := make([]T, 0, min(max(n, 0), t.Len()))
	if n <= 0 {
		return items
	}
	t.ForEach(func(v T) bool {
		items = append(items, v)
		return len(items) < n
	})
	return items
}

// ItemsDesc returns all payloads in descending key order.
func (t *Tree[K, T]) ItemsDesc() []T {
	return t.TakeDesc(t.Len())
}

// TakeDesc returns the last n payloads in descending key order, i.e.,
// starting with the maximum. If the tree holds fewer than n payloads, all of
// them are returned.
func (t *Tree[K, T]) TakeDesc(n int) []T {
	items := make([]T, 0, min(max(n, 0), t.Len()))
	if t == nil {
		return items
	}
	for c := (cursor[K, T]{node: t.max}); c.valid() && len(items) < n; c.prev() {
		items = append(items, c.node.value)
	}
	return items
}
