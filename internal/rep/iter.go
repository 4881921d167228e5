package rep

import "iter"

// ArrayIter walks an array from either end, yielding element clones.
// A fresh iterator starts at both extremes; the two cursors advance
// independently and both report exhaustion once they meet. Obtain a
// new iterator to restart.
type ArrayIter[T any, C any, RC counter[C]] struct {
	items []T
	head  int
	tail  int
}

// Iter returns a new double-ended iterator over the current content.
// The iterator snapshots the content at creation time and keeps the
// backing storage alive for its own lifetime.
func (a Array[T, C, RC]) Iter() *ArrayIter[T, C, RC] {
	items := a.View()
	return &ArrayIter[T, C, RC]{items: items, tail: len(items)}
}

// Next yields a clone of the next element from the front, or false
// once the front cursor meets the back cursor.
func (it *ArrayIter[T, C, RC]) Next() (T, bool) {
	if it.head >= it.tail {
		var zero T
		return zero, false
	}
	v := CloneValue(it.items[it.head])
	it.head++
	return v, true
}

// NextBack yields a clone of the next element from the back, or false
// once the cursors meet.
func (it *ArrayIter[T, C, RC]) NextBack() (T, bool) {
	if it.head >= it.tail {
		var zero T
		return zero, false
	}
	it.tail--
	return CloneValue(it.items[it.tail]), true
}

// Remaining reports how many elements are left between the cursors.
func (it *ArrayIter[T, C, RC]) Remaining() int { return it.tail - it.head }

// All returns an index/element-clone sequence in index order for use
// with range-over-func.
func (a Array[T, C, RC]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, v := range a.View() {
			if !yield(i, CloneValue(v)) {
				return
			}
		}
	}
}

// Values returns an element-clone sequence in index order.
func (a Array[T, C, RC]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range a.View() {
			if !yield(CloneValue(v)) {
				return
			}
		}
	}
}

// MapIter walks a map's entries in insertion order from either end,
// yielding pair clones.
type MapIter[K comparable, V any, C any, RC counter[C]] struct {
	pairs []Pair[K, V]
	head  int
	tail  int
}

// Iter returns a new double-ended iterator over the entries in
// insertion order.
func (m Map[K, V, C, RC]) Iter() *MapIter[K, V, C, RC] {
	pairs := m.pairs()
	return &MapIter[K, V, C, RC]{pairs: pairs, tail: len(pairs)}
}

// Next yields a clone of the next entry from the front.
func (it *MapIter[K, V, C, RC]) Next() (Pair[K, V], bool) {
	if it.head >= it.tail {
		return Pair[K, V]{}, false
	}
	p := it.pairs[it.head].clone()
	it.head++
	return p, true
}

// NextBack yields a clone of the next entry from the back.
func (it *MapIter[K, V, C, RC]) NextBack() (Pair[K, V], bool) {
	if it.head >= it.tail {
		return Pair[K, V]{}, false
	}
	it.tail--
	return it.pairs[it.tail].clone(), true
}

// Remaining reports how many entries are left between the cursors.
func (it *MapIter[K, V, C, RC]) Remaining() int { return it.tail - it.head }

// All returns a key/value-clone sequence in insertion order.
func (m Map[K, V, C, RC]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, p := range m.pairs() {
			if !yield(CloneValue(p.Key), CloneValue(p.Value)) {
				return
			}
		}
	}
}

// Keys returns a key-clone sequence in insertion order.
func (m Map[K, V, C, RC]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for _, p := range m.pairs() {
			if !yield(CloneValue(p.Key)) {
				return
			}
		}
	}
}

// Values returns a value-clone sequence in insertion order.
func (m Map[K, V, C, RC]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, p := range m.pairs() {
			if !yield(CloneValue(p.Value)) {
				return
			}
		}
	}
}
