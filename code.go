package scerr

import "errors"

// DomainOf returns the domain of the first [Coder] in the error chain.
// Returns "" if there is none.
func DomainOf(err error) string {
	if c := coderOf(err); c != nil {
		return c.Domain()
	}
	return ""
}

// CodeOf returns the code of the first [Coder] in the error chain.
// Returns 0 if there is none; 0 is also the code of message-only errors.
func CodeOf(err error) int {
	if c := coderOf(err); c != nil {
		return c.Code()
	}
	return 0
}

// Match reports whether the first [Coder] in the error chain has the given
// domain and code. A nil error never matches.
func Match(err error, domain string, code int) bool {
	c := coderOf(err)
	if c == nil {
		return false
	}
	return c.Domain() == domain && c.Code() == code
}

func coderOf(err error) Coder {
	var c Coder
	if !errors.As(err, &c) {
		return nil
	}
	if e, ok := c.(*Error); ok && e == nil {
		return nil
	}
	if s, ok := c.(*Sentinel); ok && s == nil {
		return nil
	}
	return c
}
