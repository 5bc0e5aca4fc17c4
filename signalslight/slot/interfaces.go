package slot

import "github.com/krew-solutions/signals-light-go/signalslight/lifetime"

// Void is the argument or result type of signatures that carry no value.
type Void = struct{}

// Func is the fixed call signature of a Slot. Several parameters are passed
// as one struct; errors returned by the function reach the caller unchanged.
type Func[A, R any] func(A) (R, error)

type Slot[A, R any] interface {
	Track(t lifetime.Trackable) *SlotImp[A, R]
	Untrack(t lifetime.Trackable) error
	IsExpired() bool
	Invoke(arg A) (R, error)
	Function() Func[A, R]
	Clone() *SlotImp[A, R]
	TrackedCount() int
}
