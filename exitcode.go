package scerr

// DefaultExitCode is the process exit status used by [Die] for errors without
// a registered mapping.
const DefaultExitCode = 1

type exitKey struct {
	domain string
	code   int
}

var exitCodes = map[exitKey]int{}

// RegisterExitCode makes [Die] exit with status when it reports an error with
// the given domain and code.
// Must be called at program initialization (e.g. in init()), before any error is reported.
func RegisterExitCode(domain string, code int, status int) {
	if status <= 0 || status > 255 {
		panic("scerr: exit status out of range")
	}
	exitCodes[exitKey{domain: domain, code: code}] = status
}

// ExitCodeOf returns the exit status [Die] uses for err.
// Unregistered or plain errors map to [DefaultExitCode].
func ExitCodeOf(err error) int {
	c := coderOf(err)
	if c == nil {
		return DefaultExitCode
	}
	if s, ok := exitCodes[exitKey{domain: c.Domain(), code: c.Code()}]; ok {
		return s
	}
	return DefaultExitCode
}
