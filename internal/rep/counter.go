package rep

import "sync/atomic"

// Plain is a reference count for values shared within a single
// goroutine. It trades goroutine safety for counter updates that
// compile down to plain integer arithmetic.
type Plain struct {
	n int64
}

func (p *Plain) init()   { p.n = 1 }
func (p *Plain) retain() { p.n++ }

func (p *Plain) release() bool {
	p.n--
	return p.n == 0
}

func (p *Plain) unique() bool { return p.n == 1 }

// Atomic is a reference count safe to update from multiple goroutines.
type Atomic struct {
	n atomic.Int64
}

func (a *Atomic) init()   { a.n.Store(1) }
func (a *Atomic) retain() { a.n.Add(1) }

func (a *Atomic) release() bool {
	return a.n.Add(-1) == 0
}

func (a *Atomic) unique() bool { return a.n.Load() == 1 }

// counter ties a count value type C to the pointer method set used to
// manage it. The exclusivity test behind copy-on-write is unique(): a
// single read-compare against 1, never a multi-step check.
type counter[C any] interface {
	*C
	init()
	retain()
	release() bool
	unique() bool
}
