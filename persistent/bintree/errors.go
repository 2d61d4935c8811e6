package bintree

import (
	"errors"
	"fmt"
)

// ErrEmptyTree is returned if the root value or a subtree of an empty tree is
// requested.
var ErrEmptyTree = errors.New("operation undefined for empty tree")

// ParseFormatError is returned by the tree readers if the input does not follow
// the expected format. Parsing stops at the first error; no partial tree is
// returned.
type ParseFormatError struct {
	Pos      int    // index of the offending token, counting from 0
	Expected string // description of what the parser was looking for
	Found    string // offending token, empty at end of input
	Err      error  // underlying cause, if any
}

func (e *ParseFormatError) Error() string {
	found := e.Found
	if found == "" {
		found = "end of input"
	} else {
		found = fmt.Sprintf("%q", found)
	}
	msg := fmt.Sprintf("bintree: token %d: expected %s, found %s", e.Pos, e.Expected, found)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ParseFormatError) Unwrap() error {
	return e.Err
}
