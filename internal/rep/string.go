package rep

import (
	"fmt"
	"hash/maphash"
	"strings"
)

// inlineStrCap is the largest owned text payload carried by value.
// Copying it out is bounded by the cap, so views stay O(1).
const inlineStrCap = 16

// sharedStr is a reference-counted cell for owned text.
type sharedStr[C any, RC counter[C]] struct {
	refs C
	s    string
}

func newSharedStr[C any, RC counter[C]](s string) *sharedStr[C, RC] {
	cell := &sharedStr[C, RC]{s: s}
	RC(&cell.refs).init()
	return cell
}

// String is an immutable, cheaply clonable text value. Go string
// literals already have static storage, so the static form wraps a
// string directly; owned text built at runtime lands in the inline
// form when short and in a refcounted shared cell otherwise.
//
// All equality, ordering and hashing go through the single canonical
// Str view, so values with identical content agree under every
// comparison regardless of storage mode. The zero value is the empty
// string.
type String[C any, RC counter[C]] struct {
	mode   uint8
	n      uint8
	inline [inlineStrCap]byte
	static string
	shared *sharedStr[C, RC]
}

// MakeStaticString wraps s as static text. This is the right
// constructor for literals and any other string whose backing storage
// is immutable for the life of the program, which in Go is every
// string value.
func MakeStaticString[C any, RC counter[C]](s string) String[C, RC] {
	return String[C, RC]{static: s}
}

// MakeOwnedString stores text that was just built from a mutable
// buffer: inline when it fits, in a fresh shared cell otherwise.
func MakeOwnedString[C any, RC counter[C]](s string) String[C, RC] {
	if len(s) <= inlineStrCap {
		v := String[C, RC]{mode: modeInline, n: uint8(len(s))}
		copy(v.inline[:], s)
		return v
	}
	return String[C, RC]{mode: modeShared, shared: newSharedStr[C, RC](s)}
}

// Str returns the text content. This is the canonical view every
// comparison is defined over.
func (s String[C, RC]) Str() string {
	switch s.mode {
	case modeInline:
		return string(s.inline[:s.n])
	case modeShared:
		if s.shared == nil {
			return ""
		}
		return s.shared.s
	default:
		return s.static
	}
}

// Len reports the content length in bytes.
func (s String[C, RC]) Len() int {
	switch s.mode {
	case modeInline:
		return int(s.n)
	case modeShared:
		if s.shared == nil {
			return 0
		}
		return len(s.shared.s)
	default:
		return len(s.static)
	}
}

// IsEmpty reports whether the content is empty.
func (s String[C, RC]) IsEmpty() bool { return s.Len() == 0 }

// String implements fmt.Stringer with the raw content.
func (s String[C, RC]) String() string { return s.Str() }

// Clone registers a new holder; O(1) regardless of length.
func (s String[C, RC]) Clone() String[C, RC] {
	if s.mode == modeShared && s.shared != nil {
		RC(&s.shared.refs).retain()
	}
	return s
}

// CheapClone implements the cheap-clone capability.
func (s String[C, RC]) CheapClone() String[C, RC] { return s.Clone() }

// Release drops this handle's hold on a shared cell and resets the
// value to the empty string.
func (s *String[C, RC]) Release() {
	if s.mode == modeShared && s.shared != nil {
		if RC(&s.shared.refs).release() {
			s.shared.s = ""
		}
	}
	*s = String[C, RC]{}
}

// Equal reports content equality with other.
func (s String[C, RC]) Equal(other String[C, RC]) bool { return s.Str() == other.Str() }

// EqualStr reports content equality with a plain string.
func (s String[C, RC]) EqualStr(v string) bool { return s.Str() == v }

// EqualBytes reports content equality with a byte buffer.
func (s String[C, RC]) EqualBytes(b []byte) bool { return s.Str() == string(b) }

// Compare orders by content, byte-wise, like strings.Compare.
func (s String[C, RC]) Compare(other String[C, RC]) int {
	return strings.Compare(s.Str(), other.Str())
}

// CompareStr orders against a plain string.
func (s String[C, RC]) CompareStr(v string) int { return strings.Compare(s.Str(), v) }

// Less reports whether s orders before other.
func (s String[C, RC]) Less(other String[C, RC]) bool { return s.Str() < other.Str() }

// Hash hashes the content under seed. Values that compare Equal hash
// identically.
func (s String[C, RC]) Hash(seed maphash.Seed) uint64 {
	return maphash.String(seed, s.Str())
}

// canonical collapses the value to the static form over its content so
// that == agrees with Equal. Used by map indexing and the generic
// equality helpers.
func (s String[C, RC]) canonical() String[C, RC] {
	if s.mode == modeStatic {
		return s
	}
	return String[C, RC]{static: s.Str()}
}

// MakeSprintf formats like fmt.Sprintf, but a format with nothing to
// interpolate stays a static wrap of the format string itself, with no
// formatting pass and no allocation.
func MakeSprintf[C any, RC counter[C]](format string, args ...any) String[C, RC] {
	if len(args) == 0 {
		return MakeStaticString[C, RC](format)
	}
	return MakeOwnedString[C, RC](fmt.Sprintf(format, args...))
}
