package pager

import (
	"errors"
	"io"
	"testing"
)

func TestErrorMessage(t *testing.T) {
	cases := []struct {
		err  *Error
		want string
	}{
		{
			newError("load", "pages.db", 100, ErrPageIndexOutOfRange, nil),
			"pager load pages.db page 100: page number out of bounds",
		},
		{
			newError("flush", "pages.db", 3, ErrWriteFailed, io.ErrShortWrite),
			"pager flush pages.db page 3: error writing: short write",
		},
		{
			newError("open", "pages.db", noPage, ErrOpenFailed, errors.New("permission denied")),
			"pager open pages.db: unable to open file: permission denied",
		},
	}

	for _, tc := range cases {
		if got := tc.err.Error(); got != tc.want {
			t.Errorf("Error() = %q, want %q", got, tc.want)
		}
	}
}

func TestErrorIs(t *testing.T) {
	err := error(newError("flush", "pages.db", 3, ErrWriteFailed, io.ErrShortWrite))

	if !errors.Is(err, ErrWriteFailed) {
		t.Error("expected the error to match its kind")
	}

	if !errors.Is(err, io.ErrShortWrite) {
		t.Error("expected the error to match its cause")
	}

	if errors.Is(err, ErrSeekFailed) {
		t.Error("expected the error not to match another kind")
	}

	var pagerError *Error

	if !errors.As(err, &pagerError) || pagerError.Page != 3 || pagerError.Op != "flush" {
		t.Errorf("expected errors.As to expose the page and op, got %+v", pagerError)
	}

	withoutCause := newError("mark dirty", "pages.db", 0, ErrPageNotLoaded, nil)

	if len(withoutCause.Unwrap()) != 1 || !errors.Is(withoutCause, ErrPageNotLoaded) {
		t.Errorf("expected a single unwrapped kind, got %v", withoutCause.Unwrap())
	}
}
