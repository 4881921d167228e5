package immut

import (
	"iter"

	"github.com/deepnoodle-ai/immut/internal/rep"
)

// Pair is a single Map entry.
type Pair[K comparable, V any] = rep.Pair[K, V]

// Map is an immutable, cheaply clonable association of unique keys to
// values preserving insertion order, with an atomic reference count.
// Maps are read-mostly and expose no copy-on-write mutation: rebuild a
// modified map with CollectMap.
//
// The zero value is an empty map.
type Map[K comparable, V any] = rep.Map[K, V, rep.Atomic, *rep.Atomic]

// MapIter is a restartable double-ended iterator over a Map's entries
// in insertion order, yielding pair clones.
type MapIter[K comparable, V any] = rep.MapIter[K, V, rep.Atomic, *rep.Atomic]

// NewMap builds a map that owns pairs, de-duplicating keys: the first
// occurrence keeps its insertion position, the latest value wins.
func NewMap[K comparable, V any](pairs ...Pair[K, V]) Map[K, V] {
	return rep.MakeMap[K, V, rep.Atomic, *rep.Atomic](pairs)
}

// StaticMap wraps a literal entry list without copying or indexing.
// Lookups scan linearly, which is the accepted trade-off for short
// constant literals; the caller keeps keys unique and the slice alive.
func StaticMap[K comparable, V any](pairs []Pair[K, V]) Map[K, V] {
	return rep.MakeStaticMap[K, V, rep.Atomic, *rep.Atomic](pairs)
}

// CollectMap drains seq into an indexed shared map. A key seen twice
// keeps its first insertion position and takes the latest value.
func CollectMap[K comparable, V any](seq iter.Seq2[K, V]) Map[K, V] {
	return rep.CollectMap[K, V, rep.Atomic, *rep.Atomic](seq)
}

// GetStr looks up a String-keyed map by a literal name, sparing the
// caller the Str boxing. Semantics are exactly Get's.
func GetStr[V any](m Map[String, V], name string) (V, bool) {
	return m.Get(Str(name))
}

// MapEqual reports entry-wise equality in insertion order, independent
// of storage mode. String keys and values compare by content.
func MapEqual[K, V comparable](a, b Map[K, V]) bool {
	return rep.MapEqual(a, b)
}

// MapEqualFunc compares entries in insertion order using eq for
// values.
func MapEqualFunc[K comparable, V any](a, b Map[K, V], eq func(V, V) bool) bool {
	return rep.MapEqualFunc(a, b, eq)
}
