package boundary

import "errors"

// ErrNilHandler is returned by Wrap when the inner handler is nil.
var ErrNilHandler = errors.New("boundary: inner handler must not be nil")
