package cli

import (
	"bufio"
	"io"
)

// defaultLineBuffer is sdis-stream.h's BUFFER: the maximum line length the
// reader is prepared to buffer for a single tuple.
const defaultLineBuffer = 4096

// LineReader pulls whitespace-delimited tuple lines off an underlying
// stream, one at a time.
type LineReader struct {
	scanner *bufio.Scanner
}

// NewLineReader wraps r with a buffered line scanner sized for bufSize-byte
// lines. A non-positive bufSize uses defaultLineBuffer.
func NewLineReader(r io.Reader, bufSize int) *LineReader {
	if bufSize <= 0 {
		bufSize = defaultLineBuffer
	}
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, bufSize), bufSize)
	return &LineReader{scanner: scanner}
}

// Next returns the next line, or ok=false on EOF or a read error.
func (l *LineReader) Next() (string, bool) {
	if !l.scanner.Scan() {
		return "", false
	}
	return l.scanner.Text(), true
}

// Err returns the first non-EOF error encountered, if any.
func (l *LineReader) Err() error {
	return l.scanner.Err()
}
