package judge

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/npillmayer/arbin/persistent/bintree"
)

// ErrUnknownProblem is returned by Lookup for problem names not registered.
var ErrUnknownProblem = errors.New("unknown problem")

// Problem is a judge exercise on binary trees.
type Problem struct {
	Name        string
	Description string
	tokens      func(io.Reader) *bintree.Tokens
	solveCase   func(c *session) error
}

var problems = map[string]Problem{
	"zurdos": {
		Name:        "zurdos",
		Description: "left-leaning trees; characters, parenthesized inorder, '.' for empty; prints SI/NO",
		tokens:      bintree.NewRuneTokens,
		solveCase: func(c *session) error {
			return solveWith(c, bintree.ReadInorder[string], ".", bintree.Strings,
				func(t *bintree.Tree[string]) string {
					return yesNo(LeftLeaning(t))
				})
		},
	},
	"genealogico": {
		Name:        "genealogico",
		Description: "genealogical trees; ages in preorder, -1 for empty; prints SI <height>/NO",
		tokens:      bintree.NewTokens,
		solveCase: func(c *session) error {
			return solveWith(c, bintree.ReadPreorder[int], -1, bintree.Ints,
				func(t *bintree.Tree[int]) string {
					if ok, h := Genealogical(t); ok {
						return fmt.Sprintf("SI %d", h)
					}
					return "NO"
				})
		},
	},
	"intermedios": {
		Name:        "intermedios",
		Description: "intermediate nodes; integers in preorder, -1 for empty; prints the count",
		tokens:      bintree.NewTokens,
		solveCase: func(c *session) error {
			return solveWith(c, bintree.ReadPreorder[int], -1, bintree.Ints,
				func(t *bintree.Tree[int]) string {
					return strconv.Itoa(IntermediateNodes(t))
				})
		},
	},
	"recorridos": {
		Name:        "recorridos",
		Description: "traversals; integers in preorder, -1 for empty; prints all traversals and node/height/leaf counts",
		tokens:      bintree.NewTokens,
		solveCase: func(c *session) error {
			return solveWith(c, bintree.ReadPreorder[int], -1, bintree.Ints, traversals)
		},
	},
}

// Lookup finds a problem by name.
func Lookup(name string) (Problem, error) {
	p, ok := problems[name]
	if !ok {
		return Problem{}, fmt.Errorf("%w: %q", ErrUnknownProblem, name)
	}
	return p, nil
}

// Problems returns all problems, sorted by name.
func Problems() []Problem {
	all := make([]Problem, 0, len(problems))
	for _, p := range problems {
		all = append(all, p)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Name < all[j].Name })
	return all
}

// Option configures a judge run.
type Option func(*session)

// Echo makes Solve print every tree it reads to w, in the sideways format.
func Echo(w io.Writer) Option {
	return func(s *session) {
		s.echo = w
	}
}

type session struct {
	toks *bintree.Tokens
	out  io.Writer
	echo io.Writer
	no   int // current case, counting from 1
}

// Solve runs the judge loop for problem p: it reads the number of cases at
// the start of in, then solves case after case, writing one line per
// case to out. Solve stops at the first malformed case.
func (p Problem) Solve(in io.Reader, out io.Writer, opts ...Option) error {
	br := bufio.NewReader(in)
	var n int
	if _, err := fmt.Fscan(br, &n); err != nil {
		return fmt.Errorf("%s: reading number of cases: %w", p.Name, err)
	}
	if n < 0 {
		return fmt.Errorf("%s: invalid number of cases %d", p.Name, n)
	}
	s := &session{toks: p.tokens(br), out: out}
	for _, opt := range opts {
		opt(s)
	}
	tracer().Infof("%s: solving %d cases", p.Name, n)
	before := bintree.Census()
	for s.no = 1; s.no <= n; s.no++ {
		if err := p.solveCase(s); err != nil {
			return fmt.Errorf("%s: case %d: %w", p.Name, s.no, err)
		}
	}
	census := bintree.Census().Sub(before)
	tracer().Debugf("%s: %d nodes allocated, %d released", p.Name, census.Allocated, census.Released)
	return nil
}

func solveWith[T comparable](s *session,
	read func(*bintree.Tokens, T, bintree.Codec[T]) (*bintree.Tree[T], error),
	sentinel T, codec bintree.Codec[T], answer func(*bintree.Tree[T]) string) error {
	//
	tree, err := read(s.toks, sentinel, codec)
	if err != nil {
		return err
	}
	defer tree.Release()
	if s.echo != nil {
		if err := tree.Fprint(s.echo); err != nil {
			return err
		}
	}
	_, err = fmt.Fprintln(s.out, answer(tree))
	return err
}

func yesNo(b bool) string {
	if b {
		return "SI"
	}
	return "NO"
}

func traversals(t *bintree.Tree[int]) string {
	var sb strings.Builder
	for _, values := range [][]int{t.Preorder(), t.Inorder(), t.Postorder(), t.Levels()} {
		sb.WriteString(join(values))
		sb.WriteByte('\n')
	}
	fmt.Fprintf(&sb, "%d %d %d", t.NodeCount(), t.Height(), t.LeafCount())
	return sb.String()
}

func join(values []int) string {
	s := make([]string, len(values))
	for i, v := range values {
		s[i] = strconv.Itoa(v)
	}
	return strings.Join(s, " ")
}
