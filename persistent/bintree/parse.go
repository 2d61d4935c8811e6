package bintree

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// --- Tokens ----------------------------------------------------------------

// Tokens reads tokens from an input stream. Tokens are separated by white
// space; parentheses are tokens of their own, even when not surrounded by
// white space.
type Tokens struct {
	scanner *bufio.Scanner
	pos     int
}

// NewTokens creates a token source reading from r.
func NewTokens(r io.Reader) *Tokens {
	scanner := bufio.NewScanner(r)
	scanner.Split(scanTokens)
	return &Tokens{scanner: scanner}
}

// NewRuneTokens creates a token source reading from r, where every rune
// which is not white space is a token of its own. This is the format of trees
// of single characters, which are often written without separators:
//
//    ((.a.)b.)
func NewRuneTokens(r io.Reader) *Tokens {
	scanner := bufio.NewScanner(r)
	scanner.Split(scanRunes)
	return &Tokens{scanner: scanner}
}

// Next returns the next token. At the end of input it returns io.EOF.
func (toks *Tokens) Next() (string, error) {
	if !toks.scanner.Scan() {
		if err := toks.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	toks.pos++
	return toks.scanner.Text(), nil
}

// Pos returns the number of tokens read so far.
func (toks *Tokens) Pos() int {
	return toks.pos
}

func isParen(r rune) bool {
	return r == '(' || r == ')'
}

// scanTokens is a split function for bufio.Scanner, similar to
// bufio.ScanWords, but splitting off parentheses.
func scanTokens(data []byte, atEOF bool) (advance int, token []byte, err error) {
	start := 0
	for start < len(data) {
		r, width := utf8.DecodeRune(data[start:])
		if !unicode.IsSpace(r) {
			break
		}
		start += width
	}
	if start < len(data) && isParen(rune(data[start])) {
		return start + 1, data[start : start+1], nil
	}
	for i := start; i < len(data); {
		r, width := utf8.DecodeRune(data[i:])
		if unicode.IsSpace(r) || isParen(r) {
			return i, data[start:i], nil
		}
		i += width
	}
	if atEOF && len(data) > start {
		return len(data), data[start:], nil
	}
	return start, nil, nil
}

func scanRunes(data []byte, atEOF bool) (advance int, token []byte, err error) {
	start := 0
	for start < len(data) {
		if !utf8.FullRune(data[start:]) && !atEOF {
			return start, nil, nil
		}
		r, width := utf8.DecodeRune(data[start:])
		if !unicode.IsSpace(r) {
			return start + width, data[start : start+width], nil
		}
		start += width
	}
	return start, nil, nil
}

// --- Codecs ----------------------------------------------------------------

// Codec converts between tree values and tokens.
type Codec[T comparable] struct {
	Decode func(token string) (T, error)
	Encode func(value T) string
}

// Ints is a codec for trees of integers.
var Ints = Codec[int]{
	Decode: strconv.Atoi,
	Encode: strconv.Itoa,
}

// Strings is a codec for trees of string tokens.
var Strings = Codec[string]{
	Decode: func(token string) (string, error) { return token, nil },
	Encode: func(value string) string { return value },
}

// --- Readers ---------------------------------------------------------------

// ReadPreorder reads a tree in preorder. Every node is given by its value,
// followed by its left and right subtree; the sentinel value stands for an
// empty subtree:
//
//    5 3 1 . . . 4 . .
//
// is the tree with root 5, left subtree (1) 3 () and right leaf 4.
func ReadPreorder[T comparable](toks *Tokens, sentinel T, codec Codec[T]) (*Tree[T], error) {
	token, err := toks.Next()
	if err != nil {
		return nil, parseError(toks, "tree value", "", err)
	}
	value, err := codec.Decode(token)
	if err != nil {
		return nil, parseError(toks, "tree value", token, err)
	}
	if value == sentinel {
		return Empty[T](), nil
	}
	tracer().Debugf("preorder: read value %v at token %d", value, toks.Pos())
	left, err := ReadPreorder(toks, sentinel, codec)
	if err != nil {
		return nil, err
	}
	defer left.Release()
	right, err := ReadPreorder(toks, sentinel, codec)
	if err != nil {
		return nil, err
	}
	defer right.Release()
	return Cons(left, value, right), nil
}

// ReadInorder reads a tree in parenthesized inorder notation. A non-empty tree
// is written as '(' left value right ')', an empty tree as the sentinel:
//
//    (((. 1 .) 3 .) 5 (. 4 .))
//
// A missing parenthesis results in a *ParseFormatError.
func ReadInorder[T comparable](toks *Tokens, sentinel T, codec Codec[T]) (*Tree[T], error) {
	token, err := toks.Next()
	if err != nil {
		return nil, parseError(toks, "'(' or empty tree", "", err)
	}
	if token != "(" {
		value, err := codec.Decode(token)
		if err != nil || value != sentinel {
			return nil, parseError(toks, "'(' or empty tree", token, err)
		}
		return Empty[T](), nil
	}
	left, err := ReadInorder(toks, sentinel, codec)
	if err != nil {
		return nil, err
	}
	defer left.Release()
	if token, err = toks.Next(); err != nil {
		return nil, parseError(toks, "tree value", "", err)
	}
	if token == "(" || token == ")" {
		return nil, parseError(toks, "tree value", token, nil)
	}
	value, err := codec.Decode(token)
	if err != nil {
		return nil, parseError(toks, "tree value", token, err)
	}
	tracer().Debugf("inorder: read value %v at token %d", value, toks.Pos())
	right, err := ReadInorder(toks, sentinel, codec)
	if err != nil {
		return nil, err
	}
	defer right.Release()
	if token, err = toks.Next(); err != nil || token != ")" {
		return nil, parseError(toks, "')'", token, err)
	}
	return Cons(left, value, right), nil
}

func parseError(toks *Tokens, expected, found string, err error) error {
	if errors.Is(err, io.EOF) {
		err = io.ErrUnexpectedEOF
	}
	e := &ParseFormatError{
		Pos:      toks.Pos() - 1,
		Expected: expected,
		Found:    found,
		Err:      err,
	}
	if found == "" {
		e.Pos = toks.Pos()
	}
	tracer().Debugf("parse error: %v", e)
	return e
}

// --- Writers ---------------------------------------------------------------

// EncodePreorder formats t in the notation accepted by ReadPreorder.
// The round trip only works for trees which do not contain sentinel as a value.
func EncodePreorder[T comparable](t *Tree[T], sentinel T, codec Codec[T]) string {
	var toks []string
	var enc func(*node[T])
	enc = func(n *node[T]) {
		if n == nil {
			toks = append(toks, codec.Encode(sentinel))
			return
		}
		toks = append(toks, codec.Encode(n.value))
		enc(n.left)
		enc(n.right)
	}
	enc(t.node())
	return strings.Join(toks, " ")
}

// EncodeInorder formats t in the notation accepted by ReadInorder.
func EncodeInorder[T comparable](t *Tree[T], sentinel T, codec Codec[T]) string {
	var buf bytes.Buffer
	var enc func(*node[T])
	enc = func(n *node[T]) {
		if n == nil {
			buf.WriteString(codec.Encode(sentinel))
			return
		}
		buf.WriteByte('(')
		enc(n.left)
		fmt.Fprintf(&buf, " %s ", codec.Encode(n.value))
		enc(n.right)
		buf.WriteByte(')')
	}
	enc(t.node())
	return buf.String()
}
