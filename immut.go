// Package immut provides a family of immutable, cheap-to-duplicate
// container types: Array (a sequence), Map (an insertion-ordered
// key-value association) and String (immutable text). They are built
// for code that hands the same logical value to many independent
// consumers (component trees, fan-out pipelines) where duplication
// must stay O(1) no matter how large the value is.
//
// Each container stores its content in one of a few modes: static
// caller-supplied storage, a reference-counted shared heap buffer, or a small
// inline payload. Reads are uniform across modes. Mutation goes
// through a copy-on-write path that materializes an exclusively owned
// buffer only when another holder could observe the write.
//
// One particularity carried throughout: iteration and lookup yield
// clones of elements, not references into the container.
//
// Because Go has no destructors, holder accounting is explicit:
// Clone registers a holder and Release deregisters one. Release is
// never required for memory safety, since the garbage collector reclaims
// buffers regardless, but it is what allows a remaining holder to
// regain exclusivity and mutate in place.
//
// The types in this package use atomic reference counts and may be
// shared across goroutines. The unsync subpackage provides the same
// API with plain counters for single-goroutine use.
package immut

import "github.com/deepnoodle-ai/immut/internal/rep"

// CheapCloner marks types whose duplication is O(1): a pointer or
// handle copy, never proportional to content size. It is a capability
// tag: implementing it asserts the type is safe to duplicate
// implicitly and liberally, not merely that it can be cloned.
//
// All containers in this package implement it. Scalars, pointers,
// short fixed arrays and small structs of cheap-clone fields need no
// declaration; Clone covers them by plain value copy.
type CheapCloner[T any] interface {
	CheapClone() T
}

// Clone duplicates v cheaply: through its CheapClone method when it
// has one, by value copy otherwise. The value-copy path is the blanket
// coverage for Go's built-in cheap-to-copy set: numeric and boolean
// scalars, strings, pointers and other shared-ownership handles, short
// fixed-size arrays, and small structs composed of the same.
func Clone[T any](v T) T {
	return rep.CloneValue(v)
}
