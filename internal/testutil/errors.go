package testutil

import "errors"

// ErrSimulated is returned by fakes that exercise error paths.
var ErrSimulated = errors.New("simulated error for testing")
