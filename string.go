package immut

import (
	"strings"

	"github.com/deepnoodle-ai/immut/internal/rep"
)

// String is an immutable, cheaply clonable text value with an atomic
// reference count. Equality, ordering and hashing are defined over the
// content through the single canonical Str view, so two values with
// the same text agree under every comparison regardless of how each
// stores it.
//
// The zero value is the empty string.
type String = rep.String[rep.Atomic, *rep.Atomic]

// Str wraps s as static text. Go strings are immutable, so any string
// value qualifies; this is the zero-allocation constructor for
// literals.
func Str(s string) String {
	return rep.MakeStaticString[rep.Atomic, *rep.Atomic](s)
}

// StringFromBytes copies b into owned text: inline when short, a
// shared refcounted cell otherwise.
func StringFromBytes(b []byte) String {
	return rep.MakeOwnedString[rep.Atomic, *rep.Atomic](string(b))
}

// StringFromBuilder takes the built text as owned content.
func StringFromBuilder(b *strings.Builder) String {
	return rep.MakeOwnedString[rep.Atomic, *rep.Atomic](b.String())
}

// Sprintf formats like fmt.Sprintf. A call with no arguments to
// interpolate skips formatting entirely and wraps the format string
// as static text.
func Sprintf(format string, args ...any) String {
	return rep.MakeSprintf[rep.Atomic, *rep.Atomic](format, args...)
}
