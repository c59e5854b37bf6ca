package avl

import "testing"

func BenchmarkInsert(b *testing.B) {
	for i := 0; i < b.N; i++ {
		tree := newIntTree(b)
		for k := 0; k < 1024; k++ {
			_, _ = tree.Insert((k * 7919) % 1024)
		}
	}
}

func BenchmarkMerge(b *testing.B) {
	x, y := newIntTree(b), newIntTree(b)
	for k := 0; k < 4096; k++ {
		_, _ = x.Insert(2 * k)
		_, _ = y.Insert(2*k + 1)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Merge(x, y); err != nil {
			b.Fatal(err)
		}
	}
}
