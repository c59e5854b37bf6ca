package avl

import "errors"

var (
	// ErrInvalidConfig signals an invalid tree configuration.
	ErrInvalidConfig = errors.New("avl: invalid configuration")
	// ErrNullArgument signals a nil payload or node handle.
	ErrNullArgument = errors.New("avl: null argument")
	// ErrAlreadyExists signals an insert of a key already present in the tree.
	ErrAlreadyExists = errors.New("avl: key already exists")
	// ErrDoesNotExist signals a delete of a key (or node) not present in the tree.
	ErrDoesNotExist = errors.New("avl: key does not exist")
	// ErrOutOfMemory signals that the tree cannot allocate another node.
	// The tree is left untouched.
	ErrOutOfMemory = errors.New("avl: out of memory")
	// ErrNotSorted signals input to FromSorted which is not strictly ordered.
	ErrNotSorted = errors.New("avl: sequence not strictly ordered")
	// ErrCorruptTree signals a violated structural invariant (see Check).
	ErrCorruptTree = errors.New("avl: tree invariant violated")
)
