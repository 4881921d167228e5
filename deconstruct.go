package immut

// Binding is one name's deconstruction result: the value found under
// the name, or OK == false when the map has no such key.
type Binding[V any] struct {
	Name  string
	Value V
	OK    bool
}

// Deconstruct looks up each literal name in a String-keyed map and
// returns the bindings in argument order. Absent names bind with
// OK == false; absence is never an error. Pure sugar over GetStr.
//
//	b := immut.Deconstruct(m, "foo", "bar", "baz")
//	foo, bar, baz := b[0], b[1], b[2]
func Deconstruct[V any](m Map[String, V], names ...string) []Binding[V] {
	out := make([]Binding[V], len(names))
	for i, name := range names {
		v, ok := GetStr(m, name)
		out[i] = Binding[V]{Name: name, Value: v, OK: ok}
	}
	return out
}
