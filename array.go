package immut

import (
	"iter"

	"github.com/deepnoodle-ai/immut/internal/rep"
)

// Array is an immutable, cheaply clonable sequence of elements with an
// atomic reference count, safe to share across goroutines. See the
// package documentation for the storage and copy-on-write model.
//
// The zero value is an empty array.
type Array[T any] = rep.Array[T, rep.Atomic, *rep.Atomic]

// ArrayIter is a restartable double-ended iterator over an Array,
// yielding element clones from either end until the cursors meet.
type ArrayIter[T any] = rep.ArrayIter[T, rep.Atomic, *rep.Atomic]

// NewArray builds an array that owns items. No items produce the
// allocation-free empty array, one item the inline form, more a fresh
// shared buffer.
func NewArray[T any](items ...T) Array[T] {
	return rep.MakeArray[T, rep.Atomic, *rep.Atomic](items)
}

// StaticArray wraps items without copying. The slice is treated as
// immutable storage with unbounded lifetime, such as package-level
// literals. The array never writes to it.
func StaticArray[T any](items []T) Array[T] {
	return rep.MakeStaticArray[T, rep.Atomic, *rep.Atomic](items)
}

// ArrayOf builds a one-element array carried inline, with no heap
// allocation.
func ArrayOf[T any](item T) Array[T] {
	return rep.MakeInlineArray[T, rep.Atomic, *rep.Atomic](item)
}

// CollectArray drains seq and picks the storage mode from the number
// of elements actually produced: empty, inline single, or shared.
func CollectArray[T any](seq iter.Seq[T]) Array[T] {
	return rep.CollectArray[T, rep.Atomic, *rep.Atomic](seq)
}

// ArrayEqual reports element-wise equality in index order, independent
// of the storage mode on either side. For element types that are not
// comparable, or whose == is narrower than their content equality, use
// ArrayEqualFunc. String elements compare by content.
func ArrayEqual[T comparable](a, b Array[T]) bool {
	return rep.ArrayEqual(a, b)
}

// ArrayEqualSlice compares an array's content against a plain slice.
func ArrayEqualSlice[T comparable](a Array[T], s []T) bool {
	return rep.ArrayEqualSlice(a, s)
}

// ArrayEqualFunc compares element-wise using eq, for element types
// such as nested containers.
func ArrayEqualFunc[T, U any](a Array[T], b Array[U], eq func(T, U) bool) bool {
	return rep.ArrayEqualFunc(a, b, eq)
}
