package lifetime

import (
	"reflect"
	"strconv"
	"weak"

	"github.com/pkg/errors"
)

// Identity names the object behind an Observer while it is alive. It is only
// meant for equality checks and is never turned back into a pointer.
type Identity uintptr

// NoIdentity is reported by expired observers.
const NoIdentity Identity = 0

func (id Identity) String() string {
	if id == NoIdentity {
		return "<none>"
	}
	return "0x" + strconv.FormatUint(uint64(id), 16)
}

// Trackable is anything an Observer can be derived from.
type Trackable interface {
	Observe() Observer
}

type handle interface {
	expired() bool
	identity() Identity
}

// Observer is a non-owning liveness query for a Lifetime or a heap object.
// The zero value is expired.
type Observer struct {
	h handle
}

// ObservePointer returns an Observer that expires once the object p points to
// has been garbage collected.
//
// Objects smaller than 16 bytes without pointers may share an allocation with
// their neighbours and then expire only when all of them are collected.
// Zero-size objects share one address and are never collected, so they are
// rejected with ErrInvalidArgument.
func ObservePointer[T any](p *T) (Observer, error) {
	if p == nil {
		return Observer{}, errors.Wrap(ErrInvalidArgument, "can't observe a nil pointer")
	}
	if t := reflect.TypeFor[T](); t.Size() == 0 {
		return Observer{}, errors.Wrapf(ErrInvalidArgument, "can't observe zero-size %v", t)
	}
	return Observer{h: pointerHandle[T]{p: weak.Make(p)}}, nil
}

// MustObservePointer is like ObservePointer but panics on an invalid p.
func MustObservePointer[T any](p *T) Observer {
	o, err := ObservePointer(p)
	if err != nil {
		panic(err)
	}
	return o
}

func (o Observer) IsExpired() bool {
	return o.h == nil || o.h.expired()
}

// Identity returns NoIdentity once the observed object is gone.
func (o Observer) Identity() Identity {
	if o.h == nil {
		return NoIdentity
	}
	return o.h.identity()
}

func (o Observer) Observe() Observer {
	return o
}

type sentinelHandle struct {
	p weak.Pointer[sentinel]
}

func newSentinelHandle(s *sentinel) sentinelHandle {
	return sentinelHandle{p: weak.Make(s)}
}

func (h sentinelHandle) expired() bool {
	s := h.p.Value()
	return s == nil || s.ended
}

func (h sentinelHandle) identity() Identity {
	s := h.p.Value()
	if s == nil || s.ended {
		return NoIdentity
	}
	return makeIdentity(s)
}

type pointerHandle[T any] struct {
	p weak.Pointer[T]
}

func (h pointerHandle[T]) expired() bool {
	return h.p.Value() == nil
}

func (h pointerHandle[T]) identity() Identity {
	v := h.p.Value()
	if v == nil {
		return NoIdentity
	}
	return makeIdentity(v)
}

func makeIdentity[T any](p *T) Identity {
	return Identity(reflect.ValueOf(p).Pointer())
}
