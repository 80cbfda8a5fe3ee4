package pairs

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"
)

// Reader decodes a connection stream token by token. Pairs may span lines,
// and a line may hold any number of pairs.
type Reader struct {
	scanner *bufio.Scanner
	line    int // line of the last token returned
	pending int // newlines consumed after the last token
	header  bool
	sites   int
}

// NewReader returns a Reader over r.
func NewReader(r io.Reader) *Reader {
	rd := &Reader{scanner: bufio.NewScanner(r), line: 1}
	rd.scanner.Split(rd.scanWords)
	return rd
}

// Sites reads the leading site count. Later calls return the same value.
func (r *Reader) Sites() (int, error) {
	if r.header {
		return r.sites, nil
	}
	n, ok, err := r.next()
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, &ParseError{Line: r.line, Err: ErrMissingHeader}
	}
	r.header = true
	r.sites = n
	return n, nil
}

// Next returns the following pair, or io.EOF once the stream is exhausted.
// The site count is consumed first if Sites was never called.
func (r *Reader) Next() (Pair, error) {
	if _, err := r.Sites(); err != nil {
		return Pair{}, err
	}

	p, ok, err := r.next()
	if err != nil {
		return Pair{}, err
	}
	if !ok {
		return Pair{}, io.EOF
	}
	q, ok, err := r.next()
	if err != nil {
		return Pair{}, err
	}
	if !ok {
		return Pair{}, &ParseError{Line: r.line, Err: ErrTruncated}
	}
	return Pair{P: p, Q: q}, nil
}

// ReadAll reads the site count and every remaining pair.
func (r *Reader) ReadAll() (int, []Pair, error) {
	n, err := r.Sites()
	if err != nil {
		return 0, nil, err
	}
	var out []Pair
	for {
		p, err := r.Next()
		if err == io.EOF {
			return n, out, nil
		}
		if err != nil {
			return 0, nil, err
		}
		out = append(out, p)
	}
}

func (r *Reader) next() (int, bool, error) {
	if !r.scanner.Scan() {
		err := r.scanner.Err()
		if err == nil {
			return 0, false, nil
		}
		if errors.Is(err, bufio.ErrTooLong) {
			err = fmt.Errorf("%w: %w", ErrMalformed, err)
		}
		return 0, false, &ParseError{Line: r.line + r.pending, Err: err}
	}
	tok := r.scanner.Text()

	n, err := strconv.Atoi(tok)
	if err != nil {
		return 0, false, &ParseError{Line: r.line, Token: tok, Err: ErrMalformed}
	}
	return n, true, nil
}

// scanWords splits on whitespace like bufio.ScanWords and keeps r.line on the
// line of the token it returns.
func (r *Reader) scanWords(data []byte, atEOF bool) (int, []byte, error) {
	advance, token, err := bufio.ScanWords(data, atEOF)
	if advance == 0 {
		return advance, token, err
	}

	consumed := data[:advance]
	if token == nil {
		// Leading whitespace only.
		r.pending += bytes.Count(consumed, []byte{'\n'})
		return advance, token, err
	}

	// Only whitespace precedes the token, so its first match is the token itself.
	start := bytes.Index(consumed, token)
	r.line += r.pending + bytes.Count(consumed[:start], []byte{'\n'})
	r.pending = bytes.Count(consumed[start+len(token):], []byte{'\n'})
	return advance, token, err
}
