package scerr

import "runtime"

// Frame is the source location that constructed an [Error].
type Frame struct {
	Function string
	File     string
	Line     int
}

// IsZero reports whether the frame is unset.
func (f Frame) IsZero() bool {
	return f.Function == "" && f.File == "" && f.Line == 0
}

// callerFrame returns the frame skip levels above its caller.
func callerFrame(skip int) Frame {
	var pcs [1]uintptr
	// +2 skips runtime.Callers and callerFrame itself.
	if runtime.Callers(skip+2, pcs[:]) == 0 {
		return Frame{}
	}
	f, _ := runtime.CallersFrames(pcs[:]).Next()
	return Frame{
		Function: f.Function,
		File:     f.File,
		Line:     f.Line,
	}
}
