package scerr

import "strconv"

// Sentinel is an immutable domain and code pair intended for package-level
// variables. An [*Error] matches a Sentinel under errors.Is when both domain
// and code are equal:
//
//	var ErrLockHeld = scerr.NewSentinel("sc-probe", 1)
//
//	if errors.Is(err, ErrLockHeld) { ... }
//
// Sentinels are never released.
type Sentinel struct {
	domain string
	code   int
}

// NewSentinel creates a new sentinel for the given domain and code.
func NewSentinel(domain string, code int) *Sentinel {
	if domain == "" {
		panic("scerr: NewSentinel called with an empty domain")
	}
	return &Sentinel{domain: domain, code: code}
}

// Error implements the error interface.
func (s *Sentinel) Error() string {
	return s.domain + " error " + strconv.Itoa(s.code)
}

// Domain implements the Coder interface.
func (s *Sentinel) Domain() string { return s.domain }

// Code implements the Coder interface.
func (s *Sentinel) Code() int { return s.code }

// New creates an [*Error] with the sentinel's domain and code.
func (s *Sentinel) New(format string, args ...any) *Error {
	e := New(s.domain, s.code, format, args...)
	e.caller = callerFrame(1)
	return e
}
