package async

import "errors"

// ErrAwaitAbandoned is returned by AwaitContext when the caller's context ends first.
var ErrAwaitAbandoned = errors.New("async: stopped waiting before the future completed")
