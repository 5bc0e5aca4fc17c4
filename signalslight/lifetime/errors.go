package lifetime

import "github.com/pkg/errors"

var ErrInvalidArgument = errors.New("lifetime: invalid argument")
