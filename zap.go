package scerr

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// MarshalLogObject implements zapcore.ObjectMarshaler.
func (e *Error) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	return fieldsOf(e).MarshalLogObject(enc)
}

// ZapField builds an "error" zap.Field from err.
// A nil err yields zap.Skip().
func ZapField(err error) zap.Field {
	if isNil(err) {
		return zap.Skip()
	}
	return zap.Object("error", fieldsOf(err))
}

func (f fields) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("msg", f.msg)
	if f.domain != "" {
		enc.AddString("domain", f.domain)
		enc.AddInt("code", f.code)
	}
	if f.errno != "" {
		enc.AddString("errno", f.errno)
	}
	if f.caller.IsZero() {
		return nil
	}
	return enc.AddObject("caller", zapcore.ObjectMarshalerFunc(func(enc zapcore.ObjectEncoder) error {
		enc.AddString("function", f.caller.Function)
		enc.AddString("file", f.caller.File)
		enc.AddInt("line", f.caller.Line)
		return nil
	}))
}

var (
	_ zapcore.ObjectMarshaler = (*Error)(nil)
	_ zapcore.ObjectMarshaler = fields{}
)
