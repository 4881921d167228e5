// Package rep holds the storage representations behind the immut
// container types. Each container is a small value struct over a
// closed set of modes: static (caller-supplied storage with unbounded
// lifetime, never written), shared (a reference-counted heap buffer,
// written in place only under proven exclusivity), and inline (a
// small payload carried by value, sequences and strings only).
//
// Everything here is generic over the reference-count primitive so the
// public packages can expose a goroutine-safe flavor and a plain
// single-goroutine flavor from one implementation.
package rep

import (
	"fmt"
	"iter"
	"strings"
)

// Storage modes. The zero value of every container is the empty
// static form, so modeStatic must stay zero.
const (
	modeStatic uint8 = iota
	modeInline
	modeShared
)

// sharedSlice is a reference-counted immutable backing buffer for
// Array. The items slice is never written after construction except
// through a mutable view handed out under exclusivity.
type sharedSlice[T any, C any, RC counter[C]] struct {
	refs  C
	items []T
}

func newSharedSlice[T any, C any, RC counter[C]](items []T) *sharedSlice[T, C, RC] {
	b := &sharedSlice[T, C, RC]{items: items}
	RC(&b.refs).init()
	return b
}

func (b *sharedSlice[T, C, RC]) retain()       { RC(&b.refs).retain() }
func (b *sharedSlice[T, C, RC]) unique() bool  { return RC(&b.refs).unique() }
func (b *sharedSlice[T, C, RC]) release() bool { return RC(&b.refs).release() }

// Array is an immutable, cheaply clonable sequence of elements.
// Cloning is O(1) regardless of length; iteration and Get yield
// element clones rather than references into the container.
//
// The zero value is an empty array and is ready to use.
type Array[T any, C any, RC counter[C]] struct {
	mode   uint8
	single [1]T
	static []T
	shared *sharedSlice[T, C, RC]
}

// MakeArray takes ownership of items and wraps it. Zero items produce
// the allocation-free empty array, one item the inline form, anything
// longer a fresh shared buffer. The caller must not use items again.
func MakeArray[T any, C any, RC counter[C]](items []T) Array[T, C, RC] {
	switch len(items) {
	case 0:
		return Array[T, C, RC]{}
	case 1:
		return MakeInlineArray[T, C, RC](items[0])
	default:
		return Array[T, C, RC]{mode: modeShared, shared: newSharedSlice[T, C, RC](items)}
	}
}

// MakeStaticArray wraps items without copying. The slice is treated as
// static storage: the array never writes to it and assumes it outlives
// every holder. Intended for package-level literals.
func MakeStaticArray[T any, C any, RC counter[C]](items []T) Array[T, C, RC] {
	return Array[T, C, RC]{static: items}
}

// MakeInlineArray builds a one-element array carried by value, with no
// heap allocation.
func MakeInlineArray[T any, C any, RC counter[C]](item T) Array[T, C, RC] {
	a := Array[T, C, RC]{mode: modeInline}
	a.single[0] = item
	return a
}

// CollectArray drains seq and classifies the result by the number of
// elements actually produced: empty, inline single, or shared.
func CollectArray[T any, C any, RC counter[C]](seq iter.Seq[T]) Array[T, C, RC] {
	var items []T
	for v := range seq {
		items = append(items, v)
	}
	return MakeArray[T, C, RC](items)
}

// Len reports the number of elements.
func (a Array[T, C, RC]) Len() int {
	switch a.mode {
	case modeInline:
		return 1
	case modeShared:
		return len(a.shared.items)
	default:
		return len(a.static)
	}
}

// IsEmpty reports whether the array has no elements.
func (a Array[T, C, RC]) IsEmpty() bool { return a.Len() == 0 }

// View returns the current content as a slice without copying.
// The view is read-only and is invalidated by any mutating call.
func (a Array[T, C, RC]) View() []T {
	switch a.mode {
	case modeInline:
		return a.single[:]
	case modeShared:
		return a.shared.items
	default:
		return a.static
	}
}

// Get returns a clone of the element at index i, or false if i is out
// of bounds.
func (a Array[T, C, RC]) Get(i int) (T, bool) {
	items := a.View()
	if i < 0 || i >= len(items) {
		var zero T
		return zero, false
	}
	return CloneValue(items[i]), true
}

// Clone registers a new holder. For the shared form this retains the
// backing buffer; static and inline forms copy freely.
func (a Array[T, C, RC]) Clone() Array[T, C, RC] {
	if a.mode == modeShared && a.shared != nil {
		a.shared.retain()
	}
	return a
}

// CheapClone implements the cheap-clone capability.
func (a Array[T, C, RC]) CheapClone() Array[T, C, RC] { return a.Clone() }

// Release drops this handle's hold on the backing buffer and resets
// the array to empty. Releasing is what lets a remaining holder regain
// exclusivity; memory itself is reclaimed by the garbage collector
// either way. Releasing a static or inline array only resets it.
func (a *Array[T, C, RC]) Release() {
	if a.mode == modeShared && a.shared != nil {
		if a.shared.release() {
			a.shared.items = nil
		}
	}
	*a = Array[T, C, RC]{}
}

// MakeMut returns a mutable view over content this handle exclusively
// owns, materializing an owned copy first if anything else could
// observe the writes:
//
//   - inline: the payload is exclusively owned already, returned as is
//   - static: elements are cloned into a fresh shared buffer
//   - shared: reused in place when the refcount proves this is the
//     only holder, otherwise cloned into a fresh buffer
func (a *Array[T, C, RC]) MakeMut() []T {
	switch a.mode {
	case modeInline:
		return a.single[:]
	case modeShared:
		if a.shared.unique() {
			return a.shared.items
		}
		items := cloneItems(a.shared.items)
		a.shared.release()
		a.shared = newSharedSlice[T, C, RC](items)
		return items
	default:
		items := cloneItems(a.static)
		*a = Array[T, C, RC]{mode: modeShared, shared: newSharedSlice[T, C, RC](items)}
		return items
	}
}

// TryMut is the non-cloning variant of MakeMut. It succeeds only for
// the inline form and for a shared buffer held exclusively; otherwise
// it reports no access and leaves the array untouched.
func (a *Array[T, C, RC]) TryMut() ([]T, bool) {
	switch a.mode {
	case modeInline:
		return a.single[:], true
	case modeShared:
		if a.shared.unique() {
			return a.shared.items, true
		}
		return nil, false
	default:
		return nil, false
	}
}

// Insert places v at index i, shifting later elements. i may equal
// Len. An out-of-range index is a precondition violation and panics.
func (a *Array[T, C, RC]) Insert(i int, v T) {
	a.InsertSlice(i, []T{v})
}

// InsertSlice places all of vs at index i, preserving their order.
// i may equal Len. An out-of-range index panics.
func (a *Array[T, C, RC]) InsertSlice(i int, vs []T) {
	n := a.Len()
	if i < 0 || i > n {
		panic(fmt.Sprintf("immut: insert index %d out of range with length %d", i, n))
	}
	a.splice(i, 0, vs)
}

// Push appends v.
func (a *Array[T, C, RC]) Push(v T) {
	a.splice(a.Len(), 0, []T{v})
}

// Extend appends clones of every element of other.
func (a *Array[T, C, RC]) Extend(other Array[T, C, RC]) {
	a.splice(a.Len(), 0, other.View())
}

// Remove deletes the element at index i and returns it. An
// out-of-range index panics.
func (a *Array[T, C, RC]) Remove(i int) T {
	n := a.Len()
	if i < 0 || i >= n {
		panic(fmt.Sprintf("immut: remove index %d out of range with length %d", i, n))
	}
	removed := CloneValue(a.View()[i])
	a.splice(i, 1, nil)
	return removed
}

// RemoveRange deletes the half-open range [i, j). Out-of-range bounds
// panic.
func (a *Array[T, C, RC]) RemoveRange(i, j int) {
	n := a.Len()
	if i < 0 || j < i || j > n {
		panic(fmt.Sprintf("immut: remove range [%d, %d) out of range with length %d", i, j, n))
	}
	a.splice(i, j-i, nil)
}

// splice rebuilds the content as head + add + tail in a fresh shared
// buffer and swaps it in. Bounds are the caller's responsibility.
func (a *Array[T, C, RC]) splice(i, del int, add []T) {
	items := a.View()
	out := make([]T, 0, len(items)-del+len(add))
	for _, v := range items[:i] {
		out = append(out, CloneValue(v))
	}
	for _, v := range add {
		out = append(out, CloneValue(v))
	}
	for _, v := range items[i+del:] {
		out = append(out, CloneValue(v))
	}
	if a.mode == modeShared && a.shared != nil {
		if a.shared.release() {
			a.shared.items = nil
		}
	}
	*a = Array[T, C, RC]{mode: modeShared, shared: newSharedSlice[T, C, RC](out)}
}

// String renders the content in index order.
func (a Array[T, C, RC]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, v := range a.View() {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%v", v)
	}
	sb.WriteByte(']')
	return sb.String()
}

func cloneItems[T any](items []T) []T {
	out := make([]T, len(items))
	for i, v := range items {
		out[i] = CloneValue(v)
	}
	return out
}

// CloneValue duplicates v through its cheap-clone capability when it
// has one, and by plain value copy otherwise. The value-copy path is
// what covers Go's built-in cheap-to-copy set: scalars, pointers and
// other handles, short fixed arrays, and small structs of the same.
func CloneValue[T any](v T) T {
	if c, ok := any(v).(interface{ CheapClone() T }); ok {
		return c.CheapClone()
	}
	return v
}

// ArrayEqual reports whether a and b hold equal elements in the same
// order, regardless of storage mode on either side. Element types
// carrying their own content equality (such as String) are compared
// through their canonical form.
func ArrayEqual[T comparable, C any, RC counter[C]](a, b Array[T, C, RC]) bool {
	return sliceEqual(a.View(), b.View())
}

// ArrayEqualSlice compares an array's content against a plain slice.
func ArrayEqualSlice[T comparable, C any, RC counter[C]](a Array[T, C, RC], s []T) bool {
	return sliceEqual(a.View(), s)
}

// ArrayEqualFunc compares element-wise using eq. This is the form to
// use for element types that are not comparable, such as nested
// containers.
func ArrayEqualFunc[T any, U any, CA any, RCA counter[CA], CB any, RCB counter[CB]](
	a Array[T, CA, RCA], b Array[U, CB, RCB], eq func(T, U) bool,
) bool {
	av, bv := a.View(), b.View()
	if len(av) != len(bv) {
		return false
	}
	for i := range av {
		if !eq(av[i], bv[i]) {
			return false
		}
	}
	return true
}

func sliceEqual[T comparable](a, b []T) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if canonical(a[i]) != canonical(b[i]) {
			return false
		}
	}
	return true
}

// canonical collapses values whose == would otherwise observe storage
// mode rather than content. String implements the hook; everything
// else passes through unchanged.
func canonical[T comparable](v T) T {
	if c, ok := any(v).(interface{ canonical() T }); ok {
		return c.canonical()
	}
	return v
}
