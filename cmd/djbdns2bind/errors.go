package main

import (
	"fmt"
)

// Process exit codes
const (
	exitOK    = 0
	exitUsage = 1
	exitData  = 2
)

// ExitCodeError carries the process exit status for a failed run.
type ExitCodeError struct {
	Code int
	Err  error
}

func (e ExitCodeError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit status %d", e.Code)
	}
	return e.Err.Error()
}

func (e ExitCodeError) Unwrap() error { return e.Err }

func usageError(err error) error { return ExitCodeError{Code: exitUsage, Err: err} }

func dataError(err error) error { return ExitCodeError{Code: exitData, Err: err} }
