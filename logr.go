package scerr

import "github.com/go-logr/logr"

// MarshalLog implements logr.Marshaler.
func (e *Error) MarshalLog() any {
	f := fieldsOf(e)
	m := map[string]any{"msg": f.msg}
	if f.domain != "" {
		m["domain"] = f.domain
		m["code"] = f.code
	}
	if f.errno != "" {
		m["errno"] = f.errno
	}
	return m
}

// logrKeysAndValues returns the key/value pairs passed alongside err to logr.Logger.Error.
func logrKeysAndValues(err error) []any {
	f := fieldsOf(err)
	if f.domain == "" {
		return nil
	}
	kv := []any{"domain", f.domain, "code", f.code}
	if f.errno != "" {
		kv = append(kv, "errno", f.errno)
	}
	return kv
}

var _ logr.Marshaler = (*Error)(nil)
