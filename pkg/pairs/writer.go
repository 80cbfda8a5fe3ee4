package pairs

import (
	"bufio"
	"fmt"
	"io"
)

// Writer encodes a connection stream, one record per line.
type Writer struct {
	w *bufio.Writer
}

// NewWriter returns a buffered Writer over w. Call Flush when done.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: bufio.NewWriter(w)}
}

// WriteHeader writes the site count.
func (w *Writer) WriteHeader(n int) error {
	_, err := fmt.Fprintln(w.w, n)
	return err
}

// Write writes one pair.
func (w *Writer) Write(p Pair) error {
	_, err := fmt.Fprintln(w.w, p.P, p.Q)
	return err
}

// WriteAll writes the header followed by every pair and flushes.
func (w *Writer) WriteAll(n int, ps []Pair) error {
	if err := w.WriteHeader(n); err != nil {
		return err
	}
	for _, p := range ps {
		if err := w.Write(p); err != nil {
			return err
		}
	}
	return w.Flush()
}

// Flush writes any buffered data to the underlying writer.
func (w *Writer) Flush() error {
	return w.w.Flush()
}
