package scerr

import (
	"strconv"
	"unicode"

	"golang.org/x/sys/unix"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// Render returns the diagnostic text of an error.
//
// For [ErrnoDomain] errors the message is followed by the description of the
// captured errno ("open failed: No such file or directory"). Errors with a
// non-zero code in another domain are annotated with domain and code.
// Message-only errors render as the message alone.
func Render(e *Error) string {
	if e == nil {
		return "<nil>"
	}
	msg := e.Msg()
	switch {
	case e.domain == ErrnoDomain:
		return msg + ": " + unix.Errno(e.code).Error()
	case e.code != 0:
		return msg + " (domain: " + e.domain + ", code: " + strconv.Itoa(e.code) + ")"
	default:
		return msg
	}
}

// sanitize replaces control characters and ill-formed UTF-8 so a diagnostic
// cannot move the cursor or inject escape sequences into the terminal.
// Messages often embed paths the invoking user controls.
func sanitize(s string) string {
	t := transform.Chain(
		runes.ReplaceIllFormed(),
		runes.Map(func(r rune) rune {
			if r != '\t' && unicode.IsControl(r) {
				return unicode.ReplacementChar
			}
			return r
		}),
	)
	out, _, err := transform.String(t, s)
	if err != nil {
		return strconv.QuoteToGraphic(s)
	}
	return out
}
