package scerr

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// ErrnoDomain is the reserved domain of errors derived from a failed system call.
// The code of such an error is the errno value captured at the failure site.
const ErrnoDomain = "errno"

// Coder is implemented by errors that carry a domain-scoped code.
// Both [*Error] and [*Sentinel] implement it.
type Coder interface {
	error
	Domain() string
	Code() int
}

// compile-time checks
var (
	_ Coder = (*Error)(nil)
	_ Coder = (*Sentinel)(nil)
)

// Error is an error object carrying a domain, a code scoped by that domain,
// and a message rendered once at construction.
//
// An Error has exactly one owner. The owner either releases it, hands it to
// a caller with [Forward] or [Move], or passes it to [Die]. A nil *Error means
// "no error"; a code of zero means the error carries no structured code.
type Error struct {
	domain   string
	code     int
	msg      string
	caller   Frame
	released bool
}

// New creates an Error in the given domain.
// The message is rendered with fmt.Sprintf semantics.
//
// The domain is usually a package-level constant and must not be empty.
func New(domain string, code int, format string, args ...any) *Error {
	if domain == "" {
		panic("scerr: New called with an empty domain")
	}
	return &Error{
		domain: domain,
		code:   code,
		msg:    fmt.Sprintf(format, args...),
		caller: callerFrame(1),
	}
}

// FromErrno creates an Error in [ErrnoDomain] carrying errno as its code.
// Capture errno at the failure site, before anything else can replace it:
//
//	fd, err := unix.Open(path, unix.O_RDONLY|unix.O_CLOEXEC, 0)
//	if err != nil {
//	    return scerr.FromErrno(err.(unix.Errno), "cannot open %s", path)
//	}
func FromErrno(errno unix.Errno, format string, args ...any) *Error {
	return &Error{
		domain: ErrnoDomain,
		code:   int(errno),
		msg:    fmt.Sprintf(format, args...),
		caller: callerFrame(1),
	}
}

// Domain returns the namespace of the error code.
func (e *Error) Domain() string {
	e.mustBeLive("Domain")
	return e.domain
}

// Code returns the error code, scoped by [Error.Domain].
// Zero means no particular code was assigned.
func (e *Error) Code() int {
	e.mustBeLive("Code")
	return e.code
}

// Msg returns the message rendered at construction.
func (e *Error) Msg() string {
	e.mustBeLive("Msg")
	return e.msg
}

// Caller returns the frame that constructed the error.
func (e *Error) Caller() Frame {
	e.mustBeLive("Caller")
	return e.caller
}

// Errno returns the captured errno of an [ErrnoDomain] error.
func (e *Error) Errno() (unix.Errno, bool) {
	e.mustBeLive("Errno")
	if e.domain != ErrnoDomain {
		return 0, false
	}
	return unix.Errno(e.code), true
}

// Error implements the error interface. It returns the same text [Die] prints.
func (e *Error) Error() string {
	return Render(e)
}

// Unwrap exposes the captured errno of an [ErrnoDomain] error,
// so errors.Is(err, fs.ErrNotExist) works as it does for *os.PathError.
func (e *Error) Unwrap() error {
	if errno, ok := e.Errno(); ok {
		return errno
	}
	return nil
}

// Is reports whether target is a [*Sentinel] with the same domain and code.
func (e *Error) Is(target error) bool {
	s, ok := target.(*Sentinel)
	if !ok || s == nil {
		return false
	}
	e.mustBeLive("Is")
	return e.domain == s.domain && e.code == s.code
}
