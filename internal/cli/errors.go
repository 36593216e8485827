// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package cli holds what the extractor and itinerary-parser commands share:
// exit codes, configuration loading, logging, and result rendering.
package cli

import (
	"errors"
	"fmt"
	"io"
)

// Process exit codes.
const (
	ExitOK       = 0
	ExitFailure  = 1
	ExitUsage    = 2
	ExitNotFound = 3
)

// ErrMissingArgument is returned when the required positional argument is absent.
var ErrMissingArgument = errors.New("missing argument")

// ExitError pairs an error with the exit code and the short diagnostic tag
// printed on standard error.
type ExitError struct {
	Code int
	Tag  string
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err == nil {
		return e.Tag
	}
	return fmt.Sprintf("%s: %v", e.Tag, e.Err)
}

func (e *ExitError) Unwrap() error { return e.Err }

// Classifier maps a command error to an ExitError, or returns nil to fall
// back to ExitFailure.
type Classifier func(err error) *ExitError

// Exit reports err on stderr and returns the process exit code. The
// diagnostic tag (or usage line) goes on its own line so scripts can grep
// for it; the wrapped detail follows on a second line.
func Exit(err error, stderr io.Writer, classify Classifier) int {
	if err == nil {
		return ExitOK
	}

	var ee *ExitError
	if !errors.As(err, &ee) && classify != nil {
		ee = classify(err)
	}
	if ee == nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return ExitFailure
	}

	fmt.Fprintln(stderr, ee.Tag)
	if ee.Err != nil {
		fmt.Fprintf(stderr, "  %v\n", ee.Err)
	}
	return ee.Code
}

// Usage wraps a usage problem (missing argument, bad flag) as exit code 2.
func Usage(usageLine string, err error) *ExitError {
	return &ExitError{Code: ExitUsage, Tag: usageLine, Err: err}
}
