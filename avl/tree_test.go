package avl

import (
	"cmp"
	"errors"
	"slices"
	"testing"
)

func intConfig() Config[int, int] {
	return Config[int, int]{
		Key:     func(v int) int { return v },
		Compare: cmp.Compare[int],
	}
}

func newIntTree(t testing.TB, keys ...int) *Tree[int, int] {
	t.Helper()
	tree, err := New(intConfig())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	for _, k := range keys {
		if _, err := tree.Insert(k); err != nil {
			t.Fatalf("Insert(%d) failed: %v", k, err)
		}
	}
	return tree
}

func mustCheck(t *testing.T, tree *Tree[int, int]) {
	t.Helper()
	if err := tree.Check(); err != nil {
		t.Fatalf("tree invariants violated: %v", err)
	}
}

type entry struct {
	key  int
	node *Node[int, *entry]
}

func entryConfig() Config[int, *entry] {
	return Config[int, *entry]{
		Key:     func(e *entry) int { return e.key },
		Compare: cmp.Compare[int],
	}
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	if _, err := New(Config[int, int]{Compare: cmp.Compare[int]}); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig for missing key extraction, got %v", err)
	}
	if _, err := New(Config[int, int]{Key: func(v int) int { return v }}); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig for missing compare, got %v", err)
	}
	cfg := intConfig()
	cfg.Capacity = -1
	if _, err := New(cfg); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig for negative capacity, got %v", err)
	}
}

func TestEmptyTree(t *testing.T) {
	tree := newIntTree(t)
	mustCheck(t, tree)
	if tree.Len() != 0 || tree.Height() != 0 || !tree.IsEmpty() {
		t.Fatalf("unexpected empty tree state len=%d height=%d", tree.Len(), tree.Height())
	}
	if _, ok := tree.Max(); ok {
		t.Fatalf("empty tree should not report a maximum")
	}
	if n, found := tree.Search(1); n != nil || found {
		t.Fatalf("search in empty tree should return nil, got %v/%v", n, found)
	}
	items := tree.Items()
	if items == nil || len(items) != 0 {
		t.Fatalf("expected empty, non-nil extraction, got %v", items)
	}
}

func TestSearchReturnsAttachmentPoint(t *testing.T) {
	tree := newIntTree(t, 20, 10, 30)
	n, found := tree.Search(35)
	if found || n.Value() != 30 {
		t.Fatalf("expected attachment at 30, got %d (found=%v)", n.Value(), found)
	}
	n, found = tree.Search(15)
	if found || n.Value() != 10 {
		t.Fatalf("expected attachment at 10, got %d (found=%v)", n.Value(), found)
	}
	n, found = tree.Search(20)
	if !found || n != tree.Root() {
		t.Fatalf("expected to find root")
	}
}

func TestInsertDuplicate(t *testing.T) {
	tree := newIntTree(t, 5, 3, 8)
	existing, _ := tree.Search(3)
	n, err := tree.Insert(3)
	if !errors.Is(err, ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}
	if n != existing {
		t.Fatalf("expected Insert to return the existing node")
	}
	if tree.Len() != 3 {
		t.Fatalf("size changed by duplicate insert: %d", tree.Len())
	}
	mustCheck(t, tree)
}

func TestInsertNullArgument(t *testing.T) {
	tree, err := New(entryConfig())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if _, err := tree.Insert(nil); !errors.Is(err, ErrNullArgument) {
		t.Fatalf("expected ErrNullArgument, got %v", err)
	}
	if _, _, err := tree.Locate(nil); !errors.Is(err, ErrNullArgument) {
		t.Fatalf("expected ErrNullArgument from Locate, got %v", err)
	}
	if _, err := tree.DeleteNode(nil); !errors.Is(err, ErrNullArgument) {
		t.Fatalf("expected ErrNullArgument from DeleteNode, got %v", err)
	}
}

func TestInsertAtCapacity(t *testing.T) {
	cfg := intConfig()
	cfg.Capacity = 3
	tree, err := New(cfg)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	for _, k := range []int{1, 2, 3} {
		if _, err := tree.Insert(k); err != nil {
			t.Fatalf("Insert(%d) failed: %v", k, err)
		}
	}
	if tree.Free() != 0 {
		t.Fatalf("expected no free capacity, have %d", tree.Free())
	}
	if _, err := tree.Insert(4); !errors.Is(err, ErrOutOfMemory) {
		t.Fatalf("expected ErrOutOfMemory, got %v", err)
	}
	if tree.Len() != 3 || tree.Contains(4) {
		t.Fatalf("failed insert changed the tree")
	}
	mustCheck(t, tree)
	if err := tree.Delete(2); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := tree.Insert(4); err != nil {
		t.Fatalf("Insert after delete should fit, got %v", err)
	}
}

func TestRotationsAscending(t *testing.T) {
	tree := newIntTree(t, 1, 2, 3, 4, 5, 6, 7)
	mustCheck(t, tree)
	if tree.Height() != 3 {
		t.Fatalf("expected height 3, is %d", tree.Height())
	}
	if !slices.Equal(tree.Items(), []int{1, 2, 3, 4, 5, 6, 7}) {
		t.Fatalf("unexpected in-order sequence %v", tree.Items())
	}
	if tree.Root().Value() != 4 {
		t.Fatalf("expected root 4, is %d", tree.Root().Value())
	}
	stats := tree.Stats()
	if stats.RR != 4 || stats.LL != 0 || stats.LR != 0 || stats.RL != 0 {
		t.Fatalf("unexpected rotations: %+v", stats)
	}
}

func TestRotationsDescending(t *testing.T) {
	tree := newIntTree(t, 7, 6, 5, 4, 3, 2, 1)
	mustCheck(t, tree)
	if tree.Height() != 3 {
		t.Fatalf("expected height 3, is %d", tree.Height())
	}
	if stats := tree.Stats(); stats.LL != 4 || stats.Rotations() != 4 {
		t.Fatalf("unexpected rotations: %+v", stats)
	}
}

func TestDoubleRotations(t *testing.T) {
	lr := newIntTree(t, 3, 1, 2)
	mustCheck(t, lr)
	if lr.Root().Value() != 2 || lr.Stats().LR != 1 {
		t.Fatalf("expected left-right rotation, root=%d stats=%+v", lr.Root().Value(), lr.Stats())
	}
	rl := newIntTree(t, 1, 3, 2)
	mustCheck(t, rl)
	if rl.Root().Value() != 2 || rl.Stats().RL != 1 {
		t.Fatalf("expected right-left rotation, root=%d stats=%+v", rl.Root().Value(), rl.Stats())
	}
}

func TestNodeStatistics(t *testing.T) {
	tree := newIntTree(t, 2, 1)
	root := tree.Root()
	if root.Shape() != LeftOnly || root.Height() != 2 || root.Balance() != 1 {
		t.Fatalf("unexpected root stats: shape=%s h=%d bf=%d", root.Shape(), root.Height(), root.Balance())
	}
	if _, err := tree.Insert(3); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}
	if root.Shape() != BothChildren || root.Balance() != 0 {
		t.Fatalf("unexpected root stats: shape=%s bf=%d", root.Shape(), root.Balance())
	}
	if root.Left().Shape() != Leaf || root.Left().Height() != 1 || root.Left().Parent() != root {
		t.Fatalf("unexpected leaf stats")
	}
}

func TestRoundTripInsertDelete(t *testing.T) {
	keys := []int{5, 3, 8, 1, 4, 7, 9, 2, 6}
	tree := newIntTree(t, keys...)
	mustCheck(t, tree)
	for i := len(keys) - 1; i >= 0; i-- {
		if err := tree.Delete(keys[i]); err != nil {
			t.Fatalf("Delete(%d) failed: %v", keys[i], err)
		}
		mustCheck(t, tree)
		if tree.Len() != i {
			t.Fatalf("expected count %d after deleting %d, is %d", i, keys[i], tree.Len())
		}
	}
	if !tree.IsEmpty() || tree.MaxNode() != nil {
		t.Fatalf("expected empty tree after round trip")
	}
}

func TestDeleteMissing(t *testing.T) {
	tree := newIntTree(t, 1, 2, 3)
	if err := tree.Delete(4); !errors.Is(err, ErrDoesNotExist) {
		t.Fatalf("expected ErrDoesNotExist, got %v", err)
	}
	if tree.Len() != 3 {
		t.Fatalf("failed delete changed the tree")
	}
}

func TestDeleteRootShapes(t *testing.T) {
	tree := newIntTree(t, 1)
	if err := tree.Delete(1); err != nil || !tree.IsEmpty() {
		t.Fatalf("deleting leaf root failed: %v", err)
	}
	tree = newIntTree(t, 2, 1)
	if err := tree.Delete(2); err != nil {
		t.Fatalf("deleting root with left child failed: %v", err)
	}
	mustCheck(t, tree)
	if tree.Root().Value() != 1 || tree.Root().Parent() != nil {
		t.Fatalf("child did not become root")
	}
	tree = newIntTree(t, 1, 2)
	if err := tree.Delete(1); err != nil {
		t.Fatalf("deleting root with right child failed: %v", err)
	}
	mustCheck(t, tree)
	if v, _ := tree.Max(); v != 2 || tree.Root().Value() != 2 {
		t.Fatalf("child did not become root")
	}
}

func TestDeleteNodeRelocatesPayload(t *testing.T) {
	tree, err := New(entryConfig())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	entries := map[int]*entry{}
	for _, k := range []int{50, 30, 70, 20, 40, 60, 80, 65} {
		e := &entry{key: k}
		if e.node, err = tree.Insert(e); err != nil {
			t.Fatalf("Insert(%d) failed: %v", k, err)
		}
		entries[k] = e
	}
	victim := entries[50].node // has two children, successor is 60
	relocated, err := tree.DeleteNode(victim)
	if err != nil {
		t.Fatalf("DeleteNode failed: %v", err)
	}
	if relocated != victim {
		t.Fatalf("expected the deleted handle to be reported as relocated")
	}
	moved := relocated.Value()
	if moved.key != 60 {
		t.Fatalf("expected successor 60 to move, got %d", moved.key)
	}
	if moved.node.Attached() {
		t.Fatalf("successor's former node should be detached")
	}
	moved.node = relocated
	delete(entries, 50)
	if err := tree.Check(); err != nil {
		t.Fatal(err)
	}
	for k, e := range entries {
		if e.node.Value() != e {
			t.Fatalf("back-reference of %d is stale", k)
		}
	}
	// deleting a leaf relocates nothing
	relocated, err = tree.DeleteNode(entries[20].node)
	if err != nil || relocated != nil {
		t.Fatalf("unexpected leaf delete result %v / %v", relocated, err)
	}
}

func TestDeleteNodeOfOtherTree(t *testing.T) {
	a := newIntTree(t, 1, 2, 3)
	b := newIntTree(t, 1, 2, 3)
	if _, err := a.DeleteNode(b.Root()); !errors.Is(err, ErrDoesNotExist) {
		t.Fatalf("expected ErrDoesNotExist for foreign node, got %v", err)
	}
	left := a.Root().Left()
	if _, err := a.DeleteNode(left); err != nil {
		t.Fatalf("DeleteNode failed: %v", err)
	}
	if _, err := a.DeleteNode(left); !errors.Is(err, ErrDoesNotExist) {
		t.Fatalf("expected ErrDoesNotExist for removed node, got %v", err)
	}
}

func TestMaxCache(t *testing.T) {
	tree := newIntTree(t, 10, 5, 15, 12)
	if v, _ := tree.Max(); v != 15 {
		t.Fatalf("expected max 15, is %d", v)
	}
	if _, err := tree.Insert(20); err != nil {
		t.Fatal(err)
	}
	if v, _ := tree.Max(); v != 20 {
		t.Fatalf("expected max 20, is %d", v)
	}
	for _, k := range []int{20, 15} {
		if err := tree.Delete(k); err != nil {
			t.Fatal(err)
		}
		mustCheck(t, tree)
	}
	if v, _ := tree.Max(); v != 12 {
		t.Fatalf("expected max 12, is %d", v)
	}
}

func TestOrderedExtraction(t *testing.T) {
	tree := newIntTree(t, 4, 2, 6, 1, 3, 5, 7)
	if got := tree.Take(3); !slices.Equal(got, []int{1, 2, 3}) {
		t.Fatalf("unexpected Take(3): %v", got)
	}
	if got := tree.TakeDesc(3); !slices.Equal(got, []int{7, 6, 5}) {
		t.Fatalf("unexpected TakeDesc(3): %v", got)
	}
	if got := tree.ItemsDesc(); !slices.Equal(got, []int{7, 6, 5, 4, 3, 2, 1}) {
		t.Fatalf("unexpected ItemsDesc: %v", got)
	}
	if got := tree.Take(100); len(got) != 7 {
		t.Fatalf("Take beyond size should return all items, got %v", got)
	}
	if got := tree.Take(0); len(got) != 0 {
		t.Fatalf("Take(0) should be empty, got %v", got)
	}
}

func TestClearDetachesNodes(t *testing.T) {
	tree := newIntTree(t, 1, 2, 3)
	root := tree.Root()
	tree.Clear()
	mustCheck(t, tree)
	if !tree.IsEmpty() || root.Attached() || root.Left() != nil {
		t.Fatalf("Clear left nodes attached")
	}
}
