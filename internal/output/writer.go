// Package output writes the combined artifact: one stream holding a
// header line and the verbatim contents of every surviving file, plus
// the cross-process lock guarding its generation.
package output

import (
	"bufio"
	"fmt"
	"io"
)

// FileHeaderPrefix introduces each file section in the artifact.
const FileHeaderPrefix = "# File: "

// DefaultFileName is the artifact written when no output path is
// configured.
const DefaultFileName = "combined.txt"

// Writer emits file sections to a single destination stream.
type Writer struct {
	w     *bufio.Writer
	files int
	bytes int64
}

// NewWriter creates a Writer over dst. Call Flush before closing dst.
func NewWriter(dst io.Writer) *Writer {
	return &Writer{w: bufio.NewWriter(dst)}
}

// WriteFile appends one file section: the header line with displayPath,
// a blank line, the verbatim bytes of r, and a closing blank line. When
// copying fails partway the section is still closed, so a read error in
// one file cannot run its neighbors together; the copy error is
// returned for diagnostics.
func (w *Writer) WriteFile(displayPath string, r io.Reader) error {
	if _, err := fmt.Fprintf(w.w, "%s%s\n\n", FileHeaderPrefix, displayPath); err != nil {
		return err
	}
	n, copyErr := io.Copy(w.w, r)
	w.bytes += n
	if _, err := w.w.WriteString("\n\n"); err != nil {
		return err
	}
	w.files++
	return copyErr
}

// Flush drains buffered output to the destination.
func (w *Writer) Flush() error {
	return w.w.Flush()
}

// Files returns the number of sections written.
func (w *Writer) Files() int {
	return w.files
}

// Bytes returns the total content bytes copied, headers excluded.
func (w *Writer) Bytes() int64 {
	return w.bytes
}
