package slot

import (
	"errors"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/krew-solutions/signals-light-go/signalslight/lifetime"
)

type triple struct {
	c byte
	i int
	b bool
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func sum(a triple) int {
	return int(a.c) + a.i + boolToInt(a.b)
}

func TestSlot_NewWithNilFunction(t *testing.T) {
	_, err := NewSlot[int, int](nil)
	assert.True(t, errors.Is(err, ErrInvalidArgument))

	_, err = NewSlot(FromFunc[int, int](nil))
	assert.True(t, errors.Is(err, ErrInvalidArgument))

	_, err = NewVoidSlot[int](nil)
	assert.True(t, errors.Is(err, ErrInvalidArgument))

	assert.Panics(t, func() { MustNewSlot[int, int](nil) })
	assert.Panics(t, func() { MustNewVoidSlot[int](nil) })
}

func TestSlot_Invoke(t *testing.T) {
	s := MustNewSlot(FromFunc(sum))
	result, err := s.Invoke(triple{5, 5, false})
	require.NoError(t, err)
	assert.Equal(t, 10, result)
}

func TestSlot_InvokePropagatesFunctionError(t *testing.T) {
	expectedErr := errors.New("fail")
	s := MustNewSlot(func(int) (int, error) { return 0, expectedErr })
	_, err := s.Invoke(1)
	assert.Same(t, expectedErr, err)
}

func TestSlot_InvokeVoid(t *testing.T) {
	var got int
	s := MustNewVoidSlot(func(v int) error { got = v; return nil })
	_, err := s.Invoke(7)
	require.NoError(t, err)
	assert.Equal(t, 7, got)
}

func TestSlot_NoTrackedObjectsNeverExpires(t *testing.T) {
	s := MustNewSlot(FromFunc(sum))
	assert.False(t, s.IsExpired())
	assert.Equal(t, 0, s.TrackedCount())
}

func TestSlot_InvokeExpired(t *testing.T) {
	called := false
	s := MustNewSlot(func(int) (int, error) { called = true; return 1, nil })
	l := lifetime.New()
	s.Track(l)
	l.End()

	result, err := s.Invoke(1)
	assert.True(t, errors.Is(err, ErrExpired))
	assert.Equal(t, 0, result)
	assert.False(t, called)
}

func TestSlot_ExpiresWhenAnyTrackedObjectEnds(t *testing.T) {
	for _, endFirst := range []bool{true, false} {
		l1 := lifetime.New()
		l2 := lifetime.New()
		s := MustNewSlot(FromFunc(sum)).Track(l1).Track(l2)
		assert.False(t, s.IsExpired())

		if endFirst {
			l1.End()
		} else {
			l2.End()
		}
		assert.True(t, s.IsExpired())

		l1.End()
		l2.End()
		assert.True(t, s.IsExpired())
	}
}

func TestSlot_TrackObserverAndPointer(t *testing.T) {
	l := lifetime.New()
	target := &triple{c: 1}
	s := MustNewSlot(FromFunc(sum)).
		Track(l.Observe()).
		Track(lifetime.MustObservePointer(target))
	assert.Equal(t, 2, s.TrackedCount())
	assert.False(t, s.IsExpired())
	runtime.KeepAlive(target)
	l.End()
	assert.True(t, s.IsExpired())
}

func TestSlot_TrackSameObjectTwice(t *testing.T) {
	l := lifetime.New()
	s := MustNewSlot(FromFunc(sum)).Track(l).Track(l)
	assert.Equal(t, 2, s.TrackedCount())

	require.NoError(t, s.Untrack(l))
	assert.Equal(t, 1, s.TrackedCount())
	l.End()
	assert.True(t, s.IsExpired())
}

func TestSlot_Untrack(t *testing.T) {
	l1 := lifetime.New()
	l2 := lifetime.New()
	s := MustNewSlot(FromFunc(sum)).Track(l1).Track(l2)

	require.NoError(t, s.Untrack(l1.Observe()))
	assert.Equal(t, 1, s.TrackedCount())
	l1.End()
	assert.False(t, s.IsExpired())
	runtime.KeepAlive(l2)
}

func TestSlot_UntrackNotTracked(t *testing.T) {
	s := MustNewSlot(FromFunc(sum)).Track(lifetime.New())
	err := s.Untrack(lifetime.New())
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.Equal(t, 1, s.TrackedCount())
}

func TestSlot_UntrackExpiredFails(t *testing.T) {
	l := lifetime.New()
	s := MustNewSlot(FromFunc(sum)).Track(l)
	l.End()
	err := s.Untrack(l)
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.Equal(t, 1, s.TrackedCount())
}

func TestSlot_CloneIsIndependent(t *testing.T) {
	l1 := lifetime.New()
	s := MustNewSlot(FromFunc(sum)).Track(l1)
	c := s.Clone()

	l2 := lifetime.New()
	c.Track(l2)
	assert.Equal(t, 1, s.TrackedCount())
	assert.Equal(t, 2, c.TrackedCount())

	l2.End()
	assert.False(t, s.IsExpired())
	assert.True(t, c.IsExpired())

	result, err := s.Invoke(triple{1, 2, true})
	require.NoError(t, err)
	assert.Equal(t, 4, result)
	runtime.KeepAlive(l1)
}

func TestSlot_CloneSharesTrackedObjects(t *testing.T) {
	l := lifetime.New()
	s := MustNewSlot(FromFunc(sum)).Track(l)
	c := s.Clone()
	l.End()
	assert.True(t, s.IsExpired())
	assert.True(t, c.IsExpired())
}

func TestSlot_FunctionIgnoresExpiry(t *testing.T) {
	l := lifetime.New()
	s := MustNewSlot(FromFunc(sum)).Track(l)
	l.End()
	result, err := s.Function()(triple{1, 1, false})
	require.NoError(t, err)
	assert.Equal(t, 2, result)
}

var _ Slot[int, int] = (*SlotImp[int, int])(nil)
