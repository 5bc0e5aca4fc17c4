package slot

import (
	"github.com/pkg/errors"

	"github.com/krew-solutions/signals-light-go/signalslight/lifetime"
)

var (
	ErrInvalidArgument = lifetime.ErrInvalidArgument
	ErrNotFound        = errors.New("slot: not found")
	// ErrExpired is returned by Invoke once any tracked object is gone.
	ErrExpired = errors.New("slot: expired")
)
