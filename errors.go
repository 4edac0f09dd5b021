package emit

import (
	"github.com/pkg/errors"
)

var (
	// ErrListenerPanic marks the rejection produced when an asynchronous
	// listener panicked instead of returning.
	ErrListenerPanic = errors.New("listener panicked")
)
