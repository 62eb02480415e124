package scerr_test

import (
	"strings"
	"testing"

	"github.com/mickamy/scerr"
)

// mustPanic runs fn and returns the recovered panic message.
func mustPanic(t *testing.T, fn func()) string {
	t.Helper()
	var msg string
	func() {
		defer func() {
			r := recover()
			if r == nil {
				t.Fatal("expected a panic")
			}
			msg, _ = r.(string)
		}()
		fn()
	}()
	return msg
}

func TestRelease_Nil(t *testing.T) {
	t.Parallel()

	var err *scerr.Error
	err.Release()
	err.Release()
	if err.Released() {
		t.Error("nil *Error should not report Released")
	}
}

func TestRelease(t *testing.T) {
	t.Parallel()

	err := scerr.New("ns", 1, "boom")
	if err.Released() {
		t.Fatal("new error should not be released")
	}
	err.Release()
	if !err.Released() {
		t.Error("Released() should be true after Release")
	}
}

func TestRelease_Twice(t *testing.T) {
	t.Parallel()

	err := scerr.New("ns", 1, "boom")
	err.Release()
	msg := mustPanic(t, err.Release)
	if !strings.Contains(msg, "released twice") {
		t.Errorf("panic = %q, want containing %q", msg, "released twice")
	}
}

func TestRelease_UseAfterRelease(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		use  func(*scerr.Error)
	}{
		{name: "Domain", use: func(e *scerr.Error) { _ = e.Domain() }},
		{name: "Code", use: func(e *scerr.Error) { _ = e.Code() }},
		{name: "Msg", use: func(e *scerr.Error) { _ = e.Msg() }},
		{name: "Error", use: func(e *scerr.Error) { _ = e.Error() }},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := scerr.New("ns", 1, "boom")
			err.Release()
			msg := mustPanic(t, func() { tt.use(err) })
			if !strings.Contains(msg, "released Error") {
				t.Errorf("panic = %q, want containing %q", msg, "released Error")
			}
		})
	}
}

func TestCleanup(t *testing.T) {
	t.Parallel()

	t.Run("nil pointer", func(t *testing.T) {
		t.Parallel()
		scerr.Cleanup(nil)
	})

	t.Run("nil error", func(t *testing.T) {
		t.Parallel()
		var err *scerr.Error
		scerr.Cleanup(&err)
		if err != nil {
			t.Error("Cleanup should leave a nil error nil")
		}
	})

	t.Run("releases and clears", func(t *testing.T) {
		t.Parallel()
		err := scerr.New("ns", 1, "boom")
		held := err
		scerr.Cleanup(&err)
		if err != nil {
			t.Error("Cleanup should clear the pointer")
		}
		if !held.Released() {
			t.Error("Cleanup should release the error")
		}
		scerr.Cleanup(&err)
	})
}

func TestCleanup_Deferred(t *testing.T) {
	t.Parallel()

	var seen *scerr.Error
	work := func(early bool) {
		var err *scerr.Error
		defer scerr.Cleanup(&err)

		err = scerr.New("ns", 3, "failed")
		seen = err
		if early {
			return
		}
		_ = err.Msg()
	}

	for _, early := range []bool{true, false} {
		work(early)
		if !seen.Released() {
			t.Errorf("early=%v: deferred Cleanup should release the error", early)
		}
	}
}
