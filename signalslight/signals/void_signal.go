package signals

import (
	"github.com/krew-solutions/signals-light-go/signalslight/lifetime"
	"github.com/krew-solutions/signals-light-go/signalslight/slot"
)

// VoidSignalImp is a Signal whose slots return nothing.
type VoidSignalImp[A any] struct {
	registry[A, slot.Void]
}

func NewVoidSignal[A any](opts ...Option) *VoidSignalImp[A] {
	return &VoidSignalImp[A]{registry: newRegistry[A, slot.Void](opts)}
}

func (s *VoidSignalImp[A]) ConnectFunc(f func(A) error, track ...lifetime.Trackable) (Identifier, error) {
	sl, err := slot.NewVoidSlot(f)
	if err != nil {
		return Identifier{}, err
	}
	for _, t := range track {
		sl.Track(t)
	}
	return s.Connect(sl), nil
}

// Emit invokes every non-expired slot in registration order. It returns only
// the first error raised by a slot function, which also stops the emission.
func (s *VoidSignalImp[A]) Emit(arg A) error {
	for _, e := range s.snapshot() {
		if e.slot.IsExpired() {
			s.cfg.trace("expired slot skipped", e.id)
			continue
		}
		if _, err := e.slot.Function()(arg); err != nil {
			return err
		}
	}
	return nil
}

func (s *VoidSignalImp[A]) Clone() *VoidSignalImp[A] {
	return &VoidSignalImp[A]{registry: s.registry.clone()}
}
