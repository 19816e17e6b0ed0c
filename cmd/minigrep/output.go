package main

import (
	"bufio"
	"io"
)

// lineWriter writes every line as is, followed by a newline.
type lineWriter struct {
	w *bufio.Writer
}

func newLineWriter(w io.Writer) *lineWriter {
	return &lineWriter{w: bufio.NewWriter(w)}
}

func (w *lineWriter) WriteLine(s string) error {
	if _, err := w.w.WriteString(s); err != nil {
		return err
	}
	return w.w.WriteByte('\n')
}

func (w *lineWriter) Flush() error { return w.w.Flush() }
