package argv

import (
	"errors"
	"fmt"
)

// Process exit codes matching the classifier's three outcomes. ExitCode maps
// a Classify error to one of them.
const (
	ExitOK    = 0
	ExitUser  = 1
	ExitFatal = 2
)

// DoubleDashError reports a double dash scanned after at least one positional
// argument was already recorded. It is a user error: the caller should report
// it and exit non-zero, not crash.
type DoubleDashError struct {
	// Token is the offending double-dash token.
	Token string
	// LastArg is the most recently recorded positional argument.
	LastArg string
}

func (e *DoubleDashError) Error() string {
	return fmt.Sprintf("double dash (%q) cannot be specified after the positional argument (%q)", e.Token, e.LastArg)
}

// AllocError reports that one of the backing token lists could not accept a
// token, which only happens with fixed-capacity lists. It is fatal from the
// classifier's point of view: the scan stops at the first failure.
type AllocError struct {
	// List names the affected token class.
	List string
	Err  error
}

func (e *AllocError) Error() string {
	return fmt.Sprintf("unable to store token in the %s list: %v", e.List, e.Err)
}

func (e *AllocError) Unwrap() error { return e.Err }

// ExitCode maps a Classify result to a process exit code: 0 for success, 1
// for a user error, 2 for anything fatal.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	var userErr *DoubleDashError
	if errors.As(err, &userErr) {
		return ExitUser
	}
	return ExitFatal
}
