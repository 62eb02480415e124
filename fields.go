package scerr

import (
	"errors"

	"golang.org/x/sys/unix"
)

// fields is the logged view of an error chain, shared by the slog, zap and
// logr integrations.
type fields struct {
	msg    string
	domain string
	code   int
	errno  string
	caller Frame
}

func fieldsOf(err error) fields {
	f := fields{msg: err.Error()}
	if c := coderOf(err); c != nil {
		f.domain = c.Domain()
		f.code = c.Code()
		if f.domain == ErrnoDomain {
			f.errno = unix.ErrnoName(unix.Errno(f.code))
		}
	}
	var e *Error
	if errors.As(err, &e) && e != nil {
		f.caller = e.Caller()
	}
	return f
}
