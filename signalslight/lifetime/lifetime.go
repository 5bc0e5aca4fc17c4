// Package lifetime lets a callback learn that an arbitrary object is gone
// without that object knowing about the callback.
//
// A Lifetime owns a private sentinel. Observers hold only a weak reference
// to it, so they stay valid (and report expired) after the Lifetime has been
// ended or garbage collected.
//
// Go ends a local variable's liveness at its last use, not at the end of its
// block. A Lifetime that is no longer referenced may be collected at any GC,
// and its observers expire with it. The owner must keep the Lifetime
// reachable for as long as the scope is open, typically by embedding it in
// the owning struct or by pairing New with a deferred End:
//
//	life := lifetime.New()
//	defer life.End()
//
// An object captured by a slot function stays reachable through the signal
// holding that slot, so garbage collection never ends its Lifetime; call End.
package lifetime

// sentinel is padded past the runtime's 16-byte tiny-allocation class so
// that each one is collected on its own.
type sentinel struct {
	ended bool
	_     [16]byte
}

// noCopy may be embedded into structs which must not be copied after first use.
// See https://golang.org/issues/8005#issuecomment-190753527.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Lifetime marks "this scope is alive". The zero value is alive and ready to
// use, so a Lifetime can be embedded into the struct whose lifetime it marks.
//
// A Lifetime must not be copied after first use: use Clone for a new
// independent scope and MoveTo to hand the current scope over.
//
// A Lifetime is alive until End is called or until it becomes unreachable,
// whichever comes first.
type Lifetime struct {
	noCopy noCopy

	s *sentinel
}

// New returns an alive Lifetime. The caller keeps it alive by keeping it
// reachable; see the package documentation.
func New() *Lifetime {
	return &Lifetime{s: &sentinel{}}
}

func (l *Lifetime) current() *sentinel {
	if l.s == nil {
		l.s = &sentinel{}
	}
	return l.s
}

// Observe returns an Observer of l. The Observer remains usable after l has
// ended. Observing an ended Lifetime returns an already expired Observer.
func (l *Lifetime) Observe() Observer {
	return Observer{h: newSentinelHandle(l.current())}
}

// End closes the scope. Every Observer of l reports expired from now on.
// Calling End more than once has no further effect.
func (l *Lifetime) End() {
	l.current().ended = true
}

func (l *Lifetime) Ended() bool {
	return l.current().ended
}

// Clone returns a new, alive Lifetime. Observers of l never observe the clone.
func (l *Lifetime) Clone() *Lifetime {
	return New()
}

// MoveTo transfers the scope tracked by l to dst. Observers of l observe dst
// afterwards, observers of dst's previous scope expire, and l is left ended.
func (l *Lifetime) MoveTo(dst *Lifetime) {
	if l == dst {
		return
	}
	if dst.s != nil {
		dst.s.ended = true
	}
	dst.s = l.current()
	l.s = &sentinel{ended: true}
}
