package main

import (
	"errors"
	"io/fs"
	"os"
	"unicode/utf8"
)

// readTextFile reads the whole file and checks that it's a valid UTF-8 text.
// All errors are *readError.
func readTextFile(filename string) (string, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return "", &readError{
			kind:     classifyReadError(err),
			filename: filename,
			err:      err,
		}
	}
	if !utf8.Valid(data) {
		return "", &readError{
			kind:     readErrorEncoding,
			filename: filename,
			err:      errInvalidEncoding,
		}
	}
	return string(data), nil
}

func classifyReadError(err error) readErrorKind {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return readErrorNotFound
	case errors.Is(err, fs.ErrPermission):
		return readErrorPermission
	default:
		return readErrorOther
	}
}
