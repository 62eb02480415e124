package scerr

// Release ends the life of the error. Calling it on a nil *Error does nothing.
//
// Releasing the same Error twice, or reading it after release, is a
// violation of the ownership contract and panics.
func (e *Error) Release() {
	if e == nil {
		return
	}
	if e.released {
		panic("scerr: Error released twice (" + e.domain + ")")
	}
	e.released = true
	e.msg = ""
}

// Cleanup releases *ptr and clears it. It is meant to be deferred on a
// local error variable so that every exit path releases what is still owned:
//
//	var err *scerr.Error
//	defer scerr.Cleanup(&err)
//
// Errors handed to a caller with [Move] are not released, since Move clears
// the source.
func Cleanup(ptr **Error) {
	if ptr == nil || *ptr == nil {
		return
	}
	(*ptr).Release()
	*ptr = nil
}

// Released reports whether the error has been released.
// A nil *Error is never considered released.
func (e *Error) Released() bool {
	return e != nil && e.released
}

func (e *Error) mustBeLive(op string) {
	if e == nil {
		panic("scerr: " + op + " called on a nil Error")
	}
	if e.released {
		panic("scerr: " + op + " called on a released Error")
	}
}
