package converter

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"os"
	"strings"
)

// StdStream is the path argument selecting standard input or output.
const StdStream = "-"

// UnknownTotal is returned by CountLines for streamed input.
const UnknownTotal = -1

// Keeps `\\` intact and turns `\'` into `''`. The replacer tries the patterns
// in order at each position, so an escaped backslash is never split.
var escapeNormalizer = strings.NewReplacer(`\\`, `\\`, `\'`, `''`)

// NormalizeLine trims the line and converts escaped single quotes.
func NormalizeLine(line string) string {
	return escapeNormalizer.Replace(strings.TrimSpace(line))
}

// LineSource supplies normalized lines one at a time.
type LineSource struct {
	r    *bufio.Reader
	path string
	n    int
	done bool
}

func NewLineSource(r io.Reader, path string) *LineSource {
	return &LineSource{r: bufio.NewReaderSize(r, 64*1024), path: path}
}

// Next returns the next normalized line. ok is false at end of input.
// Lines of any length are supported.
func (s *LineSource) Next() (line string, ok bool, err error) {
	if s.done {
		return "", false, nil
	}
	raw, err := s.r.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", false, &ResourceError{Op: "read", Path: s.path, Err: err}
		}
		s.done = true
		if raw == "" {
			return "", false, nil
		}
	}
	s.n++
	return NormalizeLine(raw), true, nil
}

// LineNo is the 1-based number of the line last returned by Next.
func (s *LineSource) LineNo() int {
	return s.n
}

// OpenInput opens path, or standard input for "-".
func OpenInput(path string) (io.ReadCloser, error) {
	if path == StdStream {
		return io.NopCloser(os.Stdin), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, &ResourceError{Op: "open", Path: path, Err: err}
	}
	return f, nil
}

// OpenOutput creates path, or wraps standard output for "-".
func OpenOutput(path string) (io.WriteCloser, error) {
	if path == StdStream {
		return nopWriteCloser{os.Stdout}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, &ResourceError{Op: "open", Path: path, Err: err}
	}
	return f, nil
}

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }

// CountLines counts the lines of a seekable file. Streamed input yields
// UnknownTotal. The result only feeds progress estimation.
func CountLines(path string) int {
	if path == StdStream {
		return UnknownTotal
	}
	f, err := os.Open(path)
	if err != nil {
		return UnknownTotal
	}
	defer f.Close()
	return countLines(f)
}

func countLines(r io.Reader) int {
	buf := make([]byte, 64*1024)
	count := 0
	var last byte = '\n'
	for {
		n, err := r.Read(buf)
		if n > 0 {
			count += bytes.Count(buf[:n], []byte{'\n'})
			last = buf[n-1]
		}
		if err != nil {
			if !errors.Is(err, io.EOF) {
				return UnknownTotal
			}
			break
		}
	}
	if last != '\n' {
		count++
	}
	return count
}
