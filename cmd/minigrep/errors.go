package main

import (
	"errors"
	"fmt"
)

// errUsage is reported for bad command-line arguments.
var errUsage = errors.New("usage error")

// errInvalidEncoding is reported for files that are not valid UTF-8.
var errInvalidEncoding = errors.New("file is not valid UTF-8")

type readErrorKind int

const (
	readErrorOther readErrorKind = iota
	readErrorNotFound
	readErrorPermission
	readErrorEncoding
)

func (k readErrorKind) String() string {
	switch k {
	case readErrorNotFound:
		return "not found"
	case readErrorPermission:
		return "permission denied"
	case readErrorEncoding:
		return "invalid encoding"
	default:
		return "read failed"
	}
}

// readError is returned when the input file can't be turned into a text.
type readError struct {
	kind     readErrorKind
	filename string
	err      error
}

func (e *readError) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.filename, e.kind, e.err)
}

func (e *readError) Unwrap() error { return e.err }
