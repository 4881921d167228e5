// Package unsync provides the same immutable container family as the
// parent package with plain, non-atomic reference counts. Use it when
// a value and all of its clones live on a single goroutine and the
// atomic counter traffic is worth avoiding; the API and semantics are
// otherwise identical.
package unsync

import (
	"iter"
	"strings"

	"github.com/deepnoodle-ai/immut/internal/rep"
)

// Array is the single-goroutine flavor of the immutable sequence.
// The zero value is an empty array.
type Array[T any] = rep.Array[T, rep.Plain, *rep.Plain]

// ArrayIter is a restartable double-ended iterator over an Array.
type ArrayIter[T any] = rep.ArrayIter[T, rep.Plain, *rep.Plain]

// Pair is a single Map entry.
type Pair[K comparable, V any] = rep.Pair[K, V]

// Map is the single-goroutine flavor of the insertion-ordered
// immutable map. The zero value is an empty map.
type Map[K comparable, V any] = rep.Map[K, V, rep.Plain, *rep.Plain]

// MapIter is a restartable double-ended iterator over a Map's entries.
type MapIter[K comparable, V any] = rep.MapIter[K, V, rep.Plain, *rep.Plain]

// String is the single-goroutine flavor of the immutable text value.
// The zero value is the empty string.
type String = rep.String[rep.Plain, *rep.Plain]

// NewArray builds an array that owns items: empty, inline single, or
// shared by element count.
func NewArray[T any](items ...T) Array[T] {
	return rep.MakeArray[T, rep.Plain, *rep.Plain](items)
}

// StaticArray wraps items as immutable static storage without copying.
func StaticArray[T any](items []T) Array[T] {
	return rep.MakeStaticArray[T, rep.Plain, *rep.Plain](items)
}

// ArrayOf builds a one-element array carried inline.
func ArrayOf[T any](item T) Array[T] {
	return rep.MakeInlineArray[T, rep.Plain, *rep.Plain](item)
}

// CollectArray drains seq and picks the storage mode from the drained
// length.
func CollectArray[T any](seq iter.Seq[T]) Array[T] {
	return rep.CollectArray[T, rep.Plain, *rep.Plain](seq)
}

// ArrayEqual reports element-wise equality independent of storage
// mode.
func ArrayEqual[T comparable](a, b Array[T]) bool {
	return rep.ArrayEqual(a, b)
}

// ArrayEqualSlice compares an array's content against a plain slice.
func ArrayEqualSlice[T comparable](a Array[T], s []T) bool {
	return rep.ArrayEqualSlice(a, s)
}

// ArrayEqualFunc compares element-wise using eq.
func ArrayEqualFunc[T, U any](a Array[T], b Array[U], eq func(T, U) bool) bool {
	return rep.ArrayEqualFunc(a, b, eq)
}

// NewMap builds a map that owns pairs, de-duplicating keys.
func NewMap[K comparable, V any](pairs ...Pair[K, V]) Map[K, V] {
	return rep.MakeMap[K, V, rep.Plain, *rep.Plain](pairs)
}

// StaticMap wraps a literal entry list, searched linearly.
func StaticMap[K comparable, V any](pairs []Pair[K, V]) Map[K, V] {
	return rep.MakeStaticMap[K, V, rep.Plain, *rep.Plain](pairs)
}

// CollectMap drains seq into an indexed shared map.
func CollectMap[K comparable, V any](seq iter.Seq2[K, V]) Map[K, V] {
	return rep.CollectMap[K, V, rep.Plain, *rep.Plain](seq)
}

// GetStr looks up a String-keyed map by a literal name.
func GetStr[V any](m Map[String, V], name string) (V, bool) {
	return m.Get(Str(name))
}

// MapEqual reports entry-wise equality in insertion order.
func MapEqual[K, V comparable](a, b Map[K, V]) bool {
	return rep.MapEqual(a, b)
}

// MapEqualFunc compares entries using eq for values.
func MapEqualFunc[K comparable, V any](a, b Map[K, V], eq func(V, V) bool) bool {
	return rep.MapEqualFunc(a, b, eq)
}

// Str wraps s as static text.
func Str(s string) String {
	return rep.MakeStaticString[rep.Plain, *rep.Plain](s)
}

// StringFromBytes copies b into owned text.
func StringFromBytes(b []byte) String {
	return rep.MakeOwnedString[rep.Plain, *rep.Plain](string(b))
}

// StringFromBuilder takes the built text as owned content.
func StringFromBuilder(b *strings.Builder) String {
	return rep.MakeOwnedString[rep.Plain, *rep.Plain](b.String())
}

// Sprintf formats like fmt.Sprintf, staying static when there is
// nothing to interpolate.
func Sprintf(format string, args ...any) String {
	return rep.MakeSprintf[rep.Plain, *rep.Plain](format, args...)
}

// Binding is one name's deconstruction result.
type Binding[V any] struct {
	Name  string
	Value V
	OK    bool
}

// Deconstruct looks up each literal name and returns the bindings in
// argument order; absent names bind with OK == false.
func Deconstruct[V any](m Map[String, V], names ...string) []Binding[V] {
	out := make([]Binding[V], len(names))
	for i, name := range names {
		v, ok := GetStr(m, name)
		out[i] = Binding[V]{Name: name, Value: v, OK: ok}
	}
	return out
}
