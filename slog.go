package scerr

import "log/slog"

// LogValue implements slog.LogValuer, allowing *Error to be logged directly as a structured value.
func (e *Error) LogValue() slog.Value {
	return slog.GroupValue(fieldsOf(e).slogAttrs()...)
}

// SlogAttr builds an "error" slog.Attr from err. Domain and code are taken
// from the first *Error or *Sentinel in the chain.
func SlogAttr(err error) slog.Attr {
	if isNil(err) {
		return slog.Attr{}
	}
	return slog.Attr{Key: "error", Value: slog.GroupValue(fieldsOf(err).slogAttrs()...)}
}

func (f fields) slogAttrs() []slog.Attr {
	attrs := make([]slog.Attr, 0, 5)
	attrs = append(attrs, slog.String("msg", f.msg))
	if f.domain != "" {
		attrs = append(attrs, slog.String("domain", f.domain), slog.Int("code", f.code))
	}
	if f.errno != "" {
		attrs = append(attrs, slog.String("errno", f.errno))
	}
	if !f.caller.IsZero() {
		attrs = append(attrs, slog.Group("caller",
			slog.String("function", f.caller.Function),
			slog.String("file", f.caller.File),
			slog.Int("line", f.caller.Line),
		))
	}
	return attrs
}

// Ensure *Error implements slog.LogValuer at compile time.
var _ slog.LogValuer = (*Error)(nil)
