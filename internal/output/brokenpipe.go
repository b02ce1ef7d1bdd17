package output

import (
	"errors"
	"io"
	"syscall"
)

// IsBrokenPipe is true when err, at any depth, is EPIPE or io.ErrClosedPipe.
// The CLI treats that as a normal end of output.
func IsBrokenPipe(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, syscall.EPIPE) || errors.Is(err, io.ErrClosedPipe)
}
