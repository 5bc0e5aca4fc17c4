package slot

import (
	"slices"

	"github.com/pkg/errors"

	"github.com/krew-solutions/signals-light-go/signalslight/lifetime"
)

// FromFunc adapts a function that cannot fail. A nil f yields a nil Func.
func FromFunc[A, R any](f func(A) R) Func[A, R] {
	if f == nil {
		return nil
	}
	return func(arg A) (R, error) {
		return f(arg), nil
	}
}

// SlotImp is a callable bound to zero or more lifetimes. It always holds a
// non-nil function.
//
// A SlotImp is not safe for concurrent use.
type SlotImp[A, R any] struct {
	fn        Func[A, R]
	observers []lifetime.Observer
}

// NewSlot returns ErrInvalidArgument if fn is nil.
func NewSlot[A, R any](fn Func[A, R]) (*SlotImp[A, R], error) {
	if fn == nil {
		return nil, errors.Wrap(ErrInvalidArgument, "slot must be initialized with a valid function")
	}
	return &SlotImp[A, R]{fn: fn}, nil
}

func MustNewSlot[A, R any](fn Func[A, R]) *SlotImp[A, R] {
	s, err := NewSlot(fn)
	if err != nil {
		panic(err)
	}
	return s
}

// NewVoidSlot builds a Slot for signatures without a result.
func NewVoidSlot[A any](fn func(A) error) (*SlotImp[A, Void], error) {
	if fn == nil {
		return nil, errors.Wrap(ErrInvalidArgument, "slot must be initialized with a valid function")
	}
	return NewSlot(func(arg A) (Void, error) {
		return Void{}, fn(arg)
	})
}

func MustNewVoidSlot[A any](fn func(A) error) *SlotImp[A, Void] {
	s, err := NewVoidSlot(fn)
	if err != nil {
		panic(err)
	}
	return s
}

// Track binds s to the lifetime of t and returns s. Tracking the same object
// twice is not checked.
func (s *SlotImp[A, R]) Track(t lifetime.Trackable) *SlotImp[A, R] {
	s.observers = append(s.observers, t.Observe())
	return s
}

// Untrack removes the first tracked observer with the identity of t.
//
// Identities are reset once an object is gone, so an expired t never matches
// and Untrack returns ErrNotFound for it.
func (s *SlotImp[A, R]) Untrack(t lifetime.Trackable) error {
	id := t.Observe().Identity()
	if id != lifetime.NoIdentity {
		for i, o := range s.observers {
			if o.Identity() == id {
				s.observers = slices.Delete(s.observers, i, i+1)
				return nil
			}
		}
	}
	return errors.Wrapf(ErrNotFound, "untrack %v", id)
}

// IsExpired reports whether any tracked object is gone. A Slot tracking
// nothing never expires.
func (s *SlotImp[A, R]) IsExpired() bool {
	for _, o := range s.observers {
		if o.IsExpired() {
			return true
		}
	}
	return false
}

func (s *SlotImp[A, R]) TrackedCount() int {
	return len(s.observers)
}

// Invoke calls the slot function, or returns ErrExpired without calling it.
func (s *SlotImp[A, R]) Invoke(arg A) (R, error) {
	if s.IsExpired() {
		var zero R
		return zero, ErrExpired
	}
	return s.fn(arg)
}

func (s *SlotImp[A, R]) Function() Func[A, R] {
	return s.fn
}

// Clone copies the function and the tracked list. Tracking on the clone does
// not affect s.
func (s *SlotImp[A, R]) Clone() *SlotImp[A, R] {
	return &SlotImp[A, R]{
		fn:        s.fn,
		observers: slices.Clone(s.observers),
	}
}
