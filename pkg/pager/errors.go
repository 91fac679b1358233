package pager

import (
	"errors"
	"fmt"
)

var (
	ErrOpenFailed          = errors.New("unable to open file")
	ErrSeekFailed          = errors.New("error seeking")
	ErrWriteFailed         = errors.New("error writing")
	ErrReadFailed          = errors.New("error reading")
	ErrSyncFailed          = errors.New("error syncing")
	ErrCloseFailed         = errors.New("error closing")
	ErrPageIndexOutOfRange = errors.New("page number out of bounds")
	ErrFlushOfUnloadedPage = errors.New("tried to flush unloaded page")
	ErrInvalidFlushSize    = errors.New("invalid flush size")
	ErrPageNotLoaded       = errors.New("page is not loaded")
	ErrPagerClosed         = errors.New("pager is closed")
)

// Error is returned by every pager operation that fails. Kind is one of the
// Err* sentinels and Err is the underlying cause, if any. Both match with
// errors.Is.
type Error struct {
	Op   string
	Path string
	Page int64
	Kind error
	Err  error
}

func newError(op, path string, page int64, kind, err error) *Error {
	return &Error{
		Op:   op,
		Path: path,
		Page: page,
		Kind: kind,
		Err:  err,
	}
}

func (e *Error) Error() string {
	message := fmt.Sprintf("pager %s %s", e.Op, e.Path)

	if e.Page >= 0 {
		message = fmt.Sprintf("%s page %d", message, e.Page)
	}

	message = fmt.Sprintf("%s: %s", message, e.Kind)

	if e.Err != nil {
		message = fmt.Sprintf("%s: %s", message, e.Err)
	}

	return message
}

func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}

	return []error{e.Kind, e.Err}
}
