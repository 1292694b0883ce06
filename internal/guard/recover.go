// Package guard runs a function in its own goroutine and turns any abnormal
// exit -- a panic, or a runtime.Goexit -- into a returned error, so that a
// caller driving a long inner interpreter loop sees one error value instead
// of a crashed process.
package guard

import (
	"errors"
	"fmt"
	"runtime/debug"
)

// Recover runs f on a new goroutine and reports its outcome as an error:
// f's own return value if it returns normally, or a panicError/exitError if
// it panics or calls runtime.Goexit. name is attached to the error for
// logging and is typically the component invoking Recover.
func Recover(name string, f func() error) error {
	errch := make(chan error, 1)
	go func() {
		defer close(errch)
		defer recoverExit(name, errch)
		defer recoverPanic(name, errch)
		errch <- f()
	}()
	return <-errch
}

type panicError struct {
	name  string
	val   interface{}
	stack []byte
}

func recoverPanic(name string, errch chan<- error) {
	if val := recover(); val != nil {
		pe := panicError{name: name, val: val, stack: debug.Stack()}
		select {
		case errch <- pe:
		default:
		}
	}
}

func (pe panicError) Error() string { return fmt.Sprint(pe) }

func (pe panicError) Format(f fmt.State, c rune) {
	if pe.name == "" {
		fmt.Fprintf(f, "panicked: %v", pe.val)
	} else {
		fmt.Fprintf(f, "%v panicked: %v", pe.name, pe.val)
	}
	if c == 'v' && f.Flag('+') {
		fmt.Fprintf(f, "\nstack:\n%s", pe.stack)
	}
}

func (pe panicError) Unwrap() error {
	err, _ := pe.val.(error)
	return err
}

// IsPanic reports whether err wraps a recovered panic.
func IsPanic(err error) bool {
	var pe panicError
	return errors.As(err, &pe)
}

// PanicStack returns the stack trace captured at a recovered panic, or ""
// if err does not wrap one.
func PanicStack(err error) string {
	var pe panicError
	if errors.As(err, &pe) {
		return string(pe.stack)
	}
	return ""
}

type exitError string

func recoverExit(name string, errch chan<- error) {
	select {
	case errch <- exitError(name):
	default:
		// the happy path already sent a (possibly nil) error
	}
}

func (name exitError) Error() string {
	if name == "" {
		return "runtime.Goexit called"
	}
	return fmt.Sprintf("%v called runtime.Goexit", string(name))
}

// IsExit reports whether err wraps a recovered runtime.Goexit.
func IsExit(err error) bool {
	var xe exitError
	return errors.As(err, &xe)
}
