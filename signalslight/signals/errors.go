package signals

import "github.com/pkg/errors"

var ErrNotFound = errors.New("signals: no matching id")
