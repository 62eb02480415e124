// Package scerr provides error objects for a privileged system utility.
//
// An [Error] carries a domain, a code scoped by that domain and a message
// rendered once at construction. Errors derived from failed system calls use
// [ErrnoDomain] and carry the captured errno as their code.
//
// Every Error has one owner at a time. A function that fails either returns
// the error, hands it to its caller through an error slot with [Forward] or
// [Move], or reports it with [Die], which terminates the process:
//
//	func setupMounts(errp **scerr.Error) {
//	    var err *scerr.Error
//	    defer scerr.Cleanup(&err)
//
//	    if e := unix.Mount("none", "/", "", unix.MS_REC|unix.MS_SLAVE, ""); e != nil {
//	        err = scerr.FromErrno(e.(unix.Errno), "cannot change propagation of /")
//	        scerr.Move(errp, &err)
//	        return
//	    }
//	}
//
// Passing a nil slot means the caller cannot handle the error, in which case
// Forward and Move report it with Die. No error is ever dropped silently.
package scerr
