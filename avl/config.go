package avl

import "fmt"

// Config configures the ordering of a tree.
//
// Key extracts the search key from a payload, Compare orders keys and has to
// return a negative number if a < b, zero if a == b and a positive number if
// a > b. Compare must be a total order, as keys in a tree are unique.
type Config[K, T any] struct {
	// Key extracts the key from a payload.
	Key func(T) K
	// Compare orders two keys.
	Compare func(a, b K) int
	// Capacity is the maximum number of nodes a tree may allocate.
	// 0 means unlimited.
	Capacity int
}

func (cfg Config[K, T]) normalized() Config[K, T] {
	if cfg.Capacity < 0 {
		cfg.Capacity = 0
	}
	return cfg
}

func (cfg Config[K, T]) validate() error {
	if cfg.Key == nil {
		return fmt.Errorf("%w: key extraction is required", ErrInvalidConfig)
	}
	if cfg.Compare == nil {
		return fmt.Errorf("%w: compare function is required", ErrInvalidConfig)
	}
	if cfg.Capacity < 0 {
		return fmt.Errorf("%w: negative capacity %d", ErrInvalidConfig, cfg.Capacity)
	}
	return nil
}
