package scerr

import (
	"io"
	"log/slog"
	"os"
	"sync/atomic"

	"github.com/go-logr/logr"
	"go.uber.org/zap"
)

// Reporter owns the terminal path: it renders an unhandled error, writes it
// out and terminates the process.
type Reporter struct {
	out     io.Writer
	exit    func(int)
	program string
	slog    *slog.Logger
	zap     *zap.Logger
	logr    logr.Logger
}

// ReporterOption configures a [Reporter] built by [NewReporter].
type ReporterOption func(*Reporter)

// WithOutput sets where diagnostics are written. Defaults to os.Stderr.
func WithOutput(w io.Writer) ReporterOption {
	return func(r *Reporter) {
		r.out = w
	}
}

// WithExit sets the function terminating the process. Defaults to os.Exit.
// If it returns, [Reporter.Die] panics.
func WithExit(exit func(int)) ReporterOption {
	return func(r *Reporter) {
		r.exit = exit
	}
}

// WithProgram prefixes every diagnostic with "name: ".
func WithProgram(name string) ReporterOption {
	return func(r *Reporter) {
		r.program = name
	}
}

// WithLogger logs fatal errors to l before exiting.
func WithLogger(l *slog.Logger) ReporterOption {
	return func(r *Reporter) {
		r.slog = l
	}
}

// WithZapLogger logs fatal errors to l before exiting. The logger is synced
// since the process does not get another chance.
func WithZapLogger(l *zap.Logger) ReporterOption {
	return func(r *Reporter) {
		r.zap = l
	}
}

// WithLogr logs fatal errors to l before exiting.
func WithLogr(l logr.Logger) ReporterOption {
	return func(r *Reporter) {
		r.logr = l
	}
}

// NewReporter creates a Reporter writing to os.Stderr and exiting with os.Exit.
func NewReporter(opts ...ReporterOption) *Reporter {
	r := &Reporter{
		out:  os.Stderr,
		exit: os.Exit,
	}
	for _, o := range opts {
		o(r)
	}
	return r
}

var defaultReporter atomic.Pointer[Reporter]

func init() {
	defaultReporter.Store(NewReporter())
}

// Default returns the Reporter used by the package-level [Die], [Forward] and [Move].
func Default() *Reporter {
	return defaultReporter.Load()
}

// SetDefault replaces the Reporter used by the package-level functions.
func SetDefault(r *Reporter) {
	if r == nil {
		panic("scerr: SetDefault called with a nil Reporter")
	}
	defaultReporter.Store(r)
}

// Die reports err and terminates the process. It does nothing if err is nil,
// including a nil *Error stored in an error interface.
//
// The diagnostic follows [Render] for *Error values and err.Error() otherwise.
// The exit status is [ExitCodeOf](err). An *Error passed directly is released.
func (r *Reporter) Die(err error) {
	if isNil(err) {
		return
	}
	line := sanitize(err.Error())
	if r.program != "" {
		line = r.program + ": " + line
	}
	status := ExitCodeOf(err)
	r.log(err)
	_, _ = io.WriteString(r.out, line+"\n")
	if e, ok := err.(*Error); ok {
		e.Release()
	}
	r.exit(status)
	panic("scerr: exit function returned")
}

// Forward hands err to the caller through slot.
//
// A nil err is a no-op. When slot is nil the caller cannot receive the
// error, so it goes to [Reporter.Die] instead. Either way the caller of
// Forward no longer owns err.
//
// Forwarding into a slot that already holds an error panics: one of the
// two errors would otherwise be lost.
func (r *Reporter) Forward(slot **Error, err *Error) {
	if err == nil {
		return
	}
	err.mustBeLive("Forward")
	if slot == nil {
		r.Die(err)
		return
	}
	if *slot != nil {
		panic("scerr: Forward into a slot that already holds an error")
	}
	*slot = err
}

// Move is [Reporter.Forward] of *src that also clears *src, so a deferred
// [Cleanup](src) leaves the forwarded error alone.
func (r *Reporter) Move(slot **Error, src **Error) {
	if src == nil || *src == nil {
		return
	}
	err := *src
	*src = nil
	r.Forward(slot, err)
}

func (r *Reporter) log(err error) {
	const msg = "fatal error"
	if r.slog != nil {
		r.slog.Error(msg, SlogAttr(err))
	}
	if r.zap != nil {
		r.zap.Error(msg, ZapField(err))
		_ = r.zap.Sync()
	}
	if r.logr.GetSink() != nil {
		r.logr.Error(err, msg, logrKeysAndValues(err)...)
	}
}

// Die reports err with the default [Reporter] and terminates the process.
// See [Reporter.Die].
func Die(err error) {
	Default().Die(err)
}

// Forward hands err to the caller through slot using the default [Reporter].
// See [Reporter.Forward].
func Forward(slot **Error, err *Error) {
	Default().Forward(slot, err)
}

// Move forwards *src and clears it using the default [Reporter].
// See [Reporter.Move].
func Move(slot **Error, src **Error) {
	Default().Move(slot, src)
}

func isNil(err error) bool {
	switch v := err.(type) {
	case nil:
		return true
	case *Error:
		return v == nil
	case *Sentinel:
		return v == nil
	}
	return false
}
