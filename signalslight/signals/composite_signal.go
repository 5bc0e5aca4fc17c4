package signals

import (
	"github.com/krew-solutions/signals-light-go/signalslight/disposable"
	"github.com/krew-solutions/signals-light-go/signalslight/option"
	"github.com/krew-solutions/signals-light-go/signalslight/slot"
)

// CompositeSignalImp fans connections and emissions out to several signals.
type CompositeSignalImp[A, R any] struct {
	delegates []Signal[A, R]
}

func NewCompositeSignal[A, R any](delegates ...Signal[A, R]) *CompositeSignalImp[A, R] {
	return &CompositeSignalImp[A, R]{delegates: delegates}
}

// Attach connects s to every delegate. The delegates share s, so objects
// tracked by s later on apply to all of them.
func (c *CompositeSignalImp[A, R]) Attach(s *slot.SlotImp[A, R]) disposable.Disposable {
	disposables := make([]disposable.Disposable, 0, len(c.delegates))
	for _, delegate := range c.delegates {
		disposables = append(disposables, delegate.Attach(s))
	}
	return disposable.NewCompositeDisposable(disposables...)
}

// Emit emits on every delegate in order and returns the last result that was
// Some.
func (c *CompositeSignalImp[A, R]) Emit(arg A) (option.Option[R], error) {
	result := option.Nothing[R]()
	for _, delegate := range c.delegates {
		r, err := delegate.Emit(arg)
		if err != nil {
			return option.Nothing[R](), err
		}
		result = r.Or(result)
	}
	return result, nil
}

func (c *CompositeSignalImp[A, R]) SlotCount() int {
	n := 0
	for _, delegate := range c.delegates {
		n += delegate.SlotCount()
	}
	return n
}
