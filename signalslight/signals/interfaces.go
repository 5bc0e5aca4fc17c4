package signals

import (
	"github.com/krew-solutions/signals-light-go/signalslight/disposable"
	"github.com/krew-solutions/signals-light-go/signalslight/option"
	"github.com/krew-solutions/signals-light-go/signalslight/slot"
)

// Signal invokes its connected slots in registration order and returns the
// result of the last one that was still alive.
type Signal[A, R any] interface {
	Connect(s *slot.SlotImp[A, R]) Identifier
	Disconnect(id Identifier) (*slot.SlotImp[A, R], error)
	Attach(s *slot.SlotImp[A, R]) disposable.Disposable
	Emit(arg A) (option.Option[R], error)
	SlotCount() int
	IsEmpty() bool
}

// VoidSignal is a Signal whose slots return nothing.
type VoidSignal[A any] interface {
	Connect(s *slot.SlotImp[A, slot.Void]) Identifier
	Disconnect(id Identifier) (*slot.SlotImp[A, slot.Void], error)
	Attach(s *slot.SlotImp[A, slot.Void]) disposable.Disposable
	Emit(arg A) error
	SlotCount() int
	IsEmpty() bool
}
