package scerr_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/go-logr/logr/funcr"
	"github.com/google/go-cmp/cmp"
	"golang.org/x/sys/unix"

	"github.com/mickamy/scerr"
)

func TestMarshalLog(t *testing.T) {
	t.Parallel()

	got := scerr.FromErrno(unix.EACCES, "cannot open").MarshalLog()
	want := map[string]any{
		"msg":    "cannot open: " + unix.EACCES.Error(),
		"domain": scerr.ErrnoDomain,
		"code":   int(unix.EACCES),
		"errno":  "EACCES",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("MarshalLog() mismatch (-want +got):\n%s", diff)
	}
}

func TestReporter_Logr(t *testing.T) {
	t.Parallel()

	var lines []string
	logger := funcr.New(func(prefix, args string) {
		lines = append(lines, args)
	}, funcr.Options{})

	var out bytes.Buffer
	r := newReporter(&out, scerr.WithLogr(logger))
	catchExit(func() { r.Die(scerr.New("ns", 6, "boom")) })

	if len(lines) != 1 {
		t.Fatalf("logged %d lines, want 1", len(lines))
	}
	for _, want := range []string{`"msg"="fatal error"`, `"domain"="ns"`, `"code"=6`} {
		if !strings.Contains(lines[0], want) {
			t.Errorf("log line %q, want containing %q", lines[0], want)
		}
	}
}
