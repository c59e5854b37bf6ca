package avl

import "fmt"

// FromSorted builds a balanced tree from a sequence of payloads in strictly
// ascending key order.
//
// The tree is built bottom-up by repeated midpoint selection: the middle
// element becomes the root of a subtree, the halves left and right of it
// become its subtrees. No rotations are necessary, the resulting height is
// ⌈log2(n+1)⌉ and the build takes O(n).
func FromSorted[K, T any](cfg Config[K, T], items []T) (*Tree[K, T], error) {
	t, err := New(cfg)
	if err != nil {
		return nil, err
	}
	if t.cfg.Capacity > 0 && len(items) > t.cfg.Capacity {
		return nil, fmt.Errorf("%w: %d items exceed capacity of %d nodes",
			ErrOutOfMemory, len(items), t.cfg.Capacity)
	}
	for i, item := range items {
		if isNil(item) {
			return nil, fmt.Errorf("%w: item at index %d", ErrNullArgument, i)
		}
		if i > 0 && t.cfg.Compare(t.cfg.Key(items[i-1]), t.cfg.Key(item)) >= 0 {
			return nil, fmt.Errorf("%w: at index %d", ErrNotSorted, i)
		}
	}
	t.root = t.build(items)
	t.count = len(items)
	t.refreshMax(nil)
	return t, nil
}

func (t *Tree[K, T]) build(items []T) *Node[K, T] {
	if len(items) == 0 {
		return nil
	}
	mid := (len(items) - 1) / 2
	n := newNode(t, items[mid])
	n.setLeft(t.build(items[:mid]))
	n.setRight(t.build(items[mid+1:]))
	return n
}

// Merge combines the payloads of trees a and b, which have to share the same
// ordering, into a new balanced tree configured like a.
//
// Both trees are extracted to sorted sequences, which are merged like in the
// merge step of merge-sort, and the result is handed to FromSorted. Merge runs
// in O(m+n) for trees of sizes m and n. Keys present in both trees are an
// error (ErrAlreadyExists). a and b are left untouched; clients usually Clear
// them afterwards. New nodes are created for all payloads, so clients holding
// node handles into a or b have to re-acquire them from the merged tree.
func Merge[K, T any](a, b *Tree[K, T]) (*Tree[K, T], error) {
	if a == nil || b == nil {
		return nil, ErrNullArgument
	}
	xs, ys := a.Items(), b.Items()
	merged := make([]T, 0, len(xs)+len(ys))
	key, compare := a.cfg.Key, a.cfg.Compare
	i, j := 0, 0
	for i < len(xs) && j < len(ys) {
		c := compare(key(xs[i]), key(ys[j]))
		switch {
		case c < 0:
			merged = append(merged, xs[i])
			i++
		case c > 0:
			merged = append(merged, ys[j])
			j++
		default:
			return nil, fmt.Errorf("%w: duplicate key while merging", ErrAlreadyExists)
		}
	}
	merged = append(merged, xs[i:]...)
	merged = append(merged, ys[j:]...)
	tracer().Debugf("avl: merging trees of sizes %d and %d", len(xs), len(ys))
	return FromSorted(a.cfg, merged)
}
