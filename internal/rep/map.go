package rep

import (
	"fmt"
	"iter"
	"strings"
)

// Pair is a single map entry.
type Pair[K comparable, V any] struct {
	Key   K
	Value V
}

func (p Pair[K, V]) clone() Pair[K, V] {
	return Pair[K, V]{Key: CloneValue(p.Key), Value: CloneValue(p.Value)}
}

// CheapClone implements the cheap-clone capability for pairs of
// cheap-clone parts.
func (p Pair[K, V]) CheapClone() Pair[K, V] { return p.clone() }

// sharedMap is a reference-counted insertion-ordered backing store:
// the entry list in insertion order plus a hash index from canonical
// key to position.
type sharedMap[K comparable, V any, C any, RC counter[C]] struct {
	refs  C
	pairs []Pair[K, V]
	index map[K]int
}

func newSharedMap[K comparable, V any, C any, RC counter[C]](pairs []Pair[K, V]) *sharedMap[K, V, C, RC] {
	m := &sharedMap[K, V, C, RC]{
		pairs: pairs,
		index: make(map[K]int, len(pairs)),
	}
	for i, p := range pairs {
		m.index[canonical(p.Key)] = i
	}
	RC(&m.refs).init()
	return m
}

func (m *sharedMap[K, V, C, RC]) retain()       { RC(&m.refs).retain() }
func (m *sharedMap[K, V, C, RC]) release() bool { return RC(&m.refs).release() }

// Map is an immutable, cheaply clonable association of unique keys to
// values that preserves insertion order. The static form is a plain
// entry list searched linearly, suited to short literals; the shared
// form carries a hash index for near-constant lookup. There is no
// inline form and no copy-on-write mutation surface: maps are
// read-mostly, and a modified map is rebuilt through CollectMap.
//
// The zero value is an empty map and is ready to use.
type Map[K comparable, V any, C any, RC counter[C]] struct {
	mode   uint8
	static []Pair[K, V]
	shared *sharedMap[K, V, C, RC]
}

// MakeMap takes ownership of pairs, de-duplicates keys (first
// occurrence keeps its position, the latest value wins) and builds the
// shared indexed form. An empty input stays allocation free.
func MakeMap[K comparable, V any, C any, RC counter[C]](pairs []Pair[K, V]) Map[K, V, C, RC] {
	if len(pairs) == 0 {
		return Map[K, V, C, RC]{}
	}
	return Map[K, V, C, RC]{
		mode:   modeShared,
		shared: newSharedMap[K, V, C, RC](dedupPairs(pairs)),
	}
}

// MakeStaticMap wraps a literal entry list without copying or
// indexing it. Lookups scan linearly; the caller is responsible for
// key uniqueness, and the slice must outlive every holder.
func MakeStaticMap[K comparable, V any, C any, RC counter[C]](pairs []Pair[K, V]) Map[K, V, C, RC] {
	return Map[K, V, C, RC]{static: pairs}
}

// CollectMap drains seq into the shared indexed form. A key seen again
// keeps its first insertion position and takes the latest value.
func CollectMap[K comparable, V any, C any, RC counter[C]](seq iter.Seq2[K, V]) Map[K, V, C, RC] {
	var pairs []Pair[K, V]
	for k, v := range seq {
		pairs = append(pairs, Pair[K, V]{Key: k, Value: v})
	}
	return MakeMap[K, V, C, RC](pairs)
}

func dedupPairs[K comparable, V any](pairs []Pair[K, V]) []Pair[K, V] {
	pos := make(map[K]int, len(pairs))
	out := pairs[:0]
	for _, p := range pairs {
		k := canonical(p.Key)
		if i, seen := pos[k]; seen {
			out[i].Value = p.Value
			continue
		}
		pos[k] = len(out)
		out = append(out, p)
	}
	return out
}

// pairs returns the entry list for the current mode.
func (m Map[K, V, C, RC]) pairs() []Pair[K, V] {
	if m.mode == modeShared && m.shared != nil {
		return m.shared.pairs
	}
	return m.static
}

// Len reports the number of entries.
func (m Map[K, V, C, RC]) Len() int { return len(m.pairs()) }

// IsEmpty reports whether the map has no entries.
func (m Map[K, V, C, RC]) IsEmpty() bool { return m.Len() == 0 }

// indexOf resolves a key to its entry position for the current mode.
func (m Map[K, V, C, RC]) indexOf(key K) (int, bool) {
	k := canonical(key)
	if m.mode == modeShared {
		if m.shared == nil {
			return 0, false
		}
		i, ok := m.shared.index[k]
		return i, ok
	}
	for i, p := range m.static {
		if canonical(p.Key) == k {
			return i, true
		}
	}
	return 0, false
}

// Get returns a clone of the value for key, or false when the key is
// absent. Absence is an ordinary result, never a failure.
func (m Map[K, V, C, RC]) Get(key K) (V, bool) {
	if i, ok := m.indexOf(key); ok {
		return CloneValue(m.pairs()[i].Value), true
	}
	var zero V
	return zero, false
}

// GetKeyValue returns clones of the stored key and value for key.
func (m Map[K, V, C, RC]) GetKeyValue(key K) (K, V, bool) {
	if i, ok := m.indexOf(key); ok {
		p := m.pairs()[i].clone()
		return p.Key, p.Value, true
	}
	var zeroK K
	var zeroV V
	return zeroK, zeroV, false
}

// GetFull returns the entry position together with clones of the
// stored key and value.
func (m Map[K, V, C, RC]) GetFull(key K) (int, K, V, bool) {
	if i, ok := m.indexOf(key); ok {
		p := m.pairs()[i].clone()
		return i, p.Key, p.Value, true
	}
	var zeroK K
	var zeroV V
	return 0, zeroK, zeroV, false
}

// GetIndex returns clones of the entry at position i in insertion
// order, or false when i is out of bounds.
func (m Map[K, V, C, RC]) GetIndex(i int) (K, V, bool) {
	pairs := m.pairs()
	if i < 0 || i >= len(pairs) {
		var zeroK K
		var zeroV V
		return zeroK, zeroV, false
	}
	p := pairs[i].clone()
	return p.Key, p.Value, true
}

// GetIndexOf returns the insertion-order position of key.
func (m Map[K, V, C, RC]) GetIndexOf(key K) (int, bool) {
	return m.indexOf(key)
}

// ContainsKey reports whether key is present.
func (m Map[K, V, C, RC]) ContainsKey(key K) bool {
	_, ok := m.indexOf(key)
	return ok
}

// Last returns clones of the most recently inserted entry.
func (m Map[K, V, C, RC]) Last() (K, V, bool) {
	return m.GetIndex(m.Len() - 1)
}

// Clone registers a new holder; O(1) in the entry count.
func (m Map[K, V, C, RC]) Clone() Map[K, V, C, RC] {
	if m.mode == modeShared && m.shared != nil {
		m.shared.retain()
	}
	return m
}

// CheapClone implements the cheap-clone capability.
func (m Map[K, V, C, RC]) CheapClone() Map[K, V, C, RC] { return m.Clone() }

// Release drops this handle's hold on the backing store and resets the
// map to empty.
func (m *Map[K, V, C, RC]) Release() {
	if m.mode == modeShared && m.shared != nil {
		if m.shared.release() {
			m.shared.pairs = nil
			m.shared.index = nil
		}
	}
	*m = Map[K, V, C, RC]{}
}

// String renders the entries in insertion order.
func (m Map[K, V, C, RC]) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, p := range m.pairs() {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%v: %v", p.Key, p.Value)
	}
	sb.WriteByte('}')
	return sb.String()
}

// MapEqual reports whether a and b hold equal entries in the same
// insertion order, regardless of storage mode.
func MapEqual[K, V comparable, C any, RC counter[C]](a, b Map[K, V, C, RC]) bool {
	ap, bp := a.pairs(), b.pairs()
	if len(ap) != len(bp) {
		return false
	}
	for i := range ap {
		if canonical(ap[i].Key) != canonical(bp[i].Key) || canonical(ap[i].Value) != canonical(bp[i].Value) {
			return false
		}
	}
	return true
}

// MapEqualFunc compares entries in insertion order using eq for
// values; keys compare through their canonical form.
func MapEqualFunc[K comparable, V any, C any, RC counter[C]](a, b Map[K, V, C, RC], eq func(V, V) bool) bool {
	ap, bp := a.pairs(), b.pairs()
	if len(ap) != len(bp) {
		return false
	}
	for i := range ap {
		if canonical(ap[i].Key) != canonical(bp[i].Key) || !eq(ap[i].Value, bp[i].Value) {
			return false
		}
	}
	return true
}
