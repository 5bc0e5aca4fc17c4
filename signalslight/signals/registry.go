package signals

import (
	"slices"

	"github.com/krew-solutions/signals-light-go/signalslight/disposable"
	"github.com/krew-solutions/signals-light-go/signalslight/slot"
)

type entry[A, R any] struct {
	id   Identifier
	slot *slot.SlotImp[A, R]
}

// registry holds the (Identifier, Slot) pairs of one Signal, sorted by id.
//
// entries is never written below its current length: removals build a new
// backing array and connections only append. An emission can therefore
// iterate a copy of the slice header while slots connect or disconnect.
type registry[A, R any] struct {
	cfg     config
	entries []entry[A, R]
	nextID  Identifier
}

func newRegistry[A, R any](opts []Option) registry[A, R] {
	return registry[A, R]{cfg: newConfig(opts)}
}

// Connect registers s and returns its id. The Signal takes ownership of s;
// objects tracked by s later on are honoured by the following emissions.
// Panics if s is nil.
func (r *registry[A, R]) Connect(s *slot.SlotImp[A, R]) Identifier {
	if s == nil {
		panic("signals: connect of a nil slot")
	}
	id := r.nextID
	r.nextID = id.Next()
	r.entries = append(r.entries, entry[A, R]{id: id, slot: s})
	r.cfg.trace("slot connected", id)
	return id
}

// Disconnect removes and returns the slot connected under id.
func (r *registry[A, R]) Disconnect(id Identifier) (*slot.SlotImp[A, R], error) {
	i, ok := r.index(id)
	if !ok {
		return nil, r.cfg.wrapf(ErrNotFound, "disconnect %v", id)
	}
	s := r.entries[i].slot
	entries := make([]entry[A, R], 0, len(r.entries)-1)
	entries = append(entries, r.entries[:i]...)
	r.entries = append(entries, r.entries[i+1:]...)
	r.cfg.trace("slot disconnected", id)
	return s, nil
}

// Slot returns the slot connected under id without removing it.
func (r *registry[A, R]) Slot(id Identifier) (*slot.SlotImp[A, R], error) {
	i, ok := r.index(id)
	if !ok {
		return nil, r.cfg.wrapf(ErrNotFound, "lookup %v", id)
	}
	return r.entries[i].slot, nil
}

// Attach connects s and returns a Disposable that disconnects it again.
func (r *registry[A, R]) Attach(s *slot.SlotImp[A, R]) disposable.Disposable {
	id := r.Connect(s)
	return disposable.NewDisposable(func() error {
		_, err := r.Disconnect(id)
		return err
	})
}

// DisconnectExpired drops every expired slot and returns how many were dropped.
func (r *registry[A, R]) DisconnectExpired() int {
	kept := make([]entry[A, R], 0, len(r.entries))
	for _, e := range r.entries {
		if e.slot.IsExpired() {
			r.cfg.trace("expired slot disconnected", e.id)
			continue
		}
		kept = append(kept, e)
	}
	removed := len(r.entries) - len(kept)
	if removed > 0 {
		r.entries = kept
	}
	return removed
}

// Clear disconnects every slot. Identifiers keep increasing afterwards.
func (r *registry[A, R]) Clear() {
	r.entries = nil
}

func (r *registry[A, R]) SlotCount() int {
	return len(r.entries)
}

func (r *registry[A, R]) IsEmpty() bool {
	return len(r.entries) == 0
}

func (r *registry[A, R]) index(id Identifier) (int, bool) {
	return slices.BinarySearchFunc(r.entries, id, func(e entry[A, R], id Identifier) int {
		return e.id.Compare(id)
	})
}

func (r *registry[A, R]) snapshot() []entry[A, R] {
	return r.entries
}

func (r *registry[A, R]) clone() registry[A, R] {
	entries := make([]entry[A, R], len(r.entries))
	for i, e := range r.entries {
		entries[i] = entry[A, R]{id: e.id, slot: e.slot.Clone()}
	}
	return registry[A, R]{cfg: r.cfg, entries: entries, nextID: r.nextID}
}
