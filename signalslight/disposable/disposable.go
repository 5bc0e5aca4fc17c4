package disposable

import "github.com/hashicorp/go-multierror"

type Disposable interface {
	Dispose() error
}

// DisposableImp runs its callback on the first Dispose only.
type DisposableImp struct {
	callback func() error
	disposed bool
}

func NewDisposable(callback func() error) *DisposableImp {
	return &DisposableImp{callback: callback}
}

func (d *DisposableImp) Dispose() error {
	if d.disposed {
		return nil
	}
	d.disposed = true
	if d.callback == nil {
		return nil
	}
	return d.callback()
}

func (d *DisposableImp) Disposed() bool {
	return d.disposed
}

type CompositeDisposableImp struct {
	delegates []Disposable
}

func NewCompositeDisposable(delegates ...Disposable) *CompositeDisposableImp {
	return &CompositeDisposableImp{delegates: delegates}
}

func (d *CompositeDisposableImp) Add(delegate Disposable) {
	d.delegates = append(d.delegates, delegate)
}

// Dispose disposes every delegate, even after a failure, and returns the
// collected errors.
func (d *CompositeDisposableImp) Dispose() error {
	var result *multierror.Error
	for _, delegate := range d.delegates {
		if err := delegate.Dispose(); err != nil {
			result = multierror.Append(result, err)
		}
	}
	return result.ErrorOrNil()
}
