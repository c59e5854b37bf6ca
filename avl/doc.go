/*
Package avl provides a generic, augmented AVL tree used as the indexing
primitive of avlidx.

The package is intentionally not a general purpose map. It is specialized for
the needs of a small set of indices over shared entities:

  - keys are unique; inserting an existing key is an error, never a replace,
  - every index is configured once with key extraction and ordering (`Config`),
  - the node holding the maximum key is tracked and available in O(1),
  - deletion by node handle reports which node had its payload relocated, so
    that clients holding node handles can repair their back-references,
  - two trees over the same ordering can be merged in linear time
    (`Merge`), by flattening both to sorted sequences and rebuilding a
    balanced tree bottom-up (`FromSorted`).

Node ownership is strictly top-down: a parent owns its children, parent links
are non-owning and only used for upward traversal while rebalancing.

Trees are not safe for concurrent use.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package avl

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to the global core-tracer.
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
