// Package probe holds the checks behind sc-probe. Each one reports failure
// through an error slot: a nil slot makes the failure fatal.
package probe

import (
	"errors"

	"golang.org/x/sys/unix"

	"github.com/mickamy/scerr"
)

// Domain is the error domain of the checks that are not plain system call failures.
const Domain = "sc-probe"

// Error codes in [Domain].
const (
	CodeLockHeld     = 1
	CodeNotDirectory = 2
	CodeNotRootOwned = 3
)

// ExitLockHeld is the exit status when a lock is held elsewhere, so scripts
// can tell a busy lock from a broken one.
const ExitLockHeld = 3

// ErrLockHeld matches errors reporting a lock held by another process.
var ErrLockHeld = scerr.NewSentinel(Domain, CodeLockHeld)

func init() {
	scerr.RegisterExitCode(Domain, CodeLockHeld, ExitLockHeld)
}

// Open opens path read-only without following a trailing symlink.
// It returns -1 and reports through errp on failure.
func Open(path string, errp **scerr.Error) int {
	fd, err := unix.Open(path, unix.O_RDONLY|unix.O_CLOEXEC|unix.O_NOFOLLOW, 0)
	if err != nil {
		scerr.Forward(errp, scerr.FromErrno(errnoOf(err), "cannot open %s", path))
		return -1
	}
	return fd
}

// Lock opens path and takes an exclusive, non-blocking flock on it.
// The returned descriptor holds the lock until closed.
func Lock(path string, errp **scerr.Error) int {
	var err *scerr.Error
	defer scerr.Cleanup(&err)

	fd := Open(path, &err)
	if err != nil {
		scerr.Move(errp, &err)
		return -1
	}
	if e := unix.Flock(fd, unix.LOCK_EX|unix.LOCK_NB); e != nil {
		_ = unix.Close(fd)
		if errors.Is(e, unix.EWOULDBLOCK) {
			err = ErrLockHeld.New("%s is locked by another process", path)
		} else {
			err = scerr.FromErrno(errnoOf(e), "cannot lock %s", path)
		}
		scerr.Move(errp, &err)
		return -1
	}
	return fd
}

// CheckDir verifies that path is a directory owned by root, without
// following a trailing symlink.
func CheckDir(path string, errp **scerr.Error) {
	var st unix.Stat_t
	if e := unix.Lstat(path, &st); e != nil {
		scerr.Forward(errp, scerr.FromErrno(errnoOf(e), "cannot stat %s", path))
		return
	}
	if st.Mode&unix.S_IFMT != unix.S_IFDIR {
		scerr.Forward(errp, scerr.New(Domain, CodeNotDirectory, "%s is not a directory", path))
		return
	}
	if st.Uid != 0 {
		scerr.Forward(errp, scerr.New(Domain, CodeNotRootOwned, "%s is owned by uid %d, not root", path, st.Uid))
	}
}

// errnoOf extracts the errno of a failed system call.
func errnoOf(err error) unix.Errno {
	var errno unix.Errno
	if errors.As(err, &errno) {
		return errno
	}
	return unix.EIO
}
