package signals

import (
	"github.com/krew-solutions/signals-light-go/signalslight/lifetime"
	"github.com/krew-solutions/signals-light-go/signalslight/option"
	"github.com/krew-solutions/signals-light-go/signalslight/slot"
)

// SignalImp is a Signal with a result type. Several parameters are passed as
// one struct argument A.
//
// A SignalImp is not safe for concurrent use. Slots may connect, disconnect or
// emit on the same SignalImp while it is emitting: the running emission keeps
// invoking the slots that were connected when it started.
type SignalImp[A, R any] struct {
	registry[A, R]
}

func NewSignal[A, R any](opts ...Option) *SignalImp[A, R] {
	return &SignalImp[A, R]{registry: newRegistry[A, R](opts)}
}

// ConnectFunc wraps f in a Slot tracking the given objects and connects it.
func (s *SignalImp[A, R]) ConnectFunc(f slot.Func[A, R], track ...lifetime.Trackable) (Identifier, error) {
	sl, err := slot.NewSlot(f)
	if err != nil {
		return Identifier{}, err
	}
	for _, t := range track {
		sl.Track(t)
	}
	return s.Connect(sl), nil
}

// Emit invokes every non-expired slot in registration order and returns the
// result of the last of them, or Nothing if no slot is alive. Expired slots
// are skipped silently. The first error returned by a slot function stops the
// emission and is returned as is.
func (s *SignalImp[A, R]) Emit(arg A) (option.Option[R], error) {
	entries := s.snapshot()

	last := -1
	for i := len(entries) - 1; i >= 0; i-- {
		if !entries[i].slot.IsExpired() {
			last = i
			break
		}
		s.cfg.trace("expired slot skipped", entries[i].id)
	}
	if last < 0 {
		return option.Nothing[R](), nil
	}

	for i, e := range entries {
		if e.slot.IsExpired() {
			s.cfg.trace("expired slot skipped", e.id)
			continue
		}
		result, err := e.slot.Function()(arg)
		if err != nil {
			return option.Nothing[R](), err
		}
		if i == last {
			return option.Some(result), nil
		}
	}
	// The last live slot expired while earlier slots ran.
	return option.Nothing[R](), nil
}

// Clone returns a Signal with copies of the connected slots under the same
// identifiers.
func (s *SignalImp[A, R]) Clone() *SignalImp[A, R] {
	return &SignalImp[A, R]{registry: s.registry.clone()}
}
