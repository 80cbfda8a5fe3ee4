// Package pairs reads and writes connection streams: a site count N followed
// by whitespace-separated integer pairs, as consumed by the connectivity
// driver.
package pairs

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingHeader is returned when the stream holds no site count.
	ErrMissingHeader = errors.New("missing site count")

	// ErrMalformed is returned for a token that is not an integer.
	ErrMalformed = errors.New("malformed integer")

	// ErrTruncated is returned when the stream ends in the middle of a pair.
	ErrTruncated = errors.New("truncated pair")
)

// Pair is one connection between sites P and Q.
type Pair struct {
	P int `json:"p"`
	Q int `json:"q"`
}

func (p Pair) String() string {
	return fmt.Sprintf("%d %d", p.P, p.Q)
}

// ParseError reports where a stream stopped being readable.
type ParseError struct {
	Line  int
	Token string
	Err   error
}

func (e *ParseError) Error() string {
	if e.Token == "" {
		return fmt.Sprintf("line %d: %v", e.Line, e.Err)
	}
	return fmt.Sprintf("line %d: %v %q", e.Line, e.Err, e.Token)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
