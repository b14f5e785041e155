package download

import (
	"errors"
	"fmt"
)

var (
	ErrSizeMismatch      = errors.New("file size mismatch")
	ErrChecksumMismatch  = errors.New("checksum mismatch")
	ErrDownloadCancelled = errors.New("download cancelled")
	ErrEmptyDestination  = errors.New("destination path must not be empty")
)

// Error carries detail about a failed integrity check.
type Error struct {
	Detail string
	Err    error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%v: %s", e.Err, e.Detail)
}

func (e *Error) Unwrap() error {
	return e.Err
}
