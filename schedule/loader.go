package schedule

import (
	"bufio"
	"io"
	"os"
	"strconv"

	"github.com/rotisserie/eris"
)

// MaxTeams bounds the team count Load accepts before allocating the matrix.
const MaxTeams = 4096

// Load parses a standings table from r.
//
// The format is a whitespace-delimited token stream:
//
//	n
//	name wins losses remaining g_1 ... g_n   (n times)
//
// where g_j is the number of games left against the j-th team in input order.
// Truncated streams, non-integer or negative counts and trailing tokens wrap
// ErrMalformedInput; the parsed table is then validated by New.
func Load(r io.Reader) (*Repository, error) {
	tk := newTokenizer(r)

	n, err := tk.count("team count")
	if err != nil {
		return nil, err
	}
	if n > MaxTeams {
		return nil, eris.Wrapf(ErrMalformedInput, "team count %d exceeds %d", n, MaxTeams)
	}

	teams := make([]Team, n)
	against := make([][]int, n)
	for i := 0; i < n; i++ {
		name, err := tk.next("team name")
		if eris.Is(err, io.EOF) {
			return nil, eris.Wrapf(ErrMalformedInput, "truncated input: expected %d teams, got %d", n, i)
		}
		if err != nil {
			return nil, err
		}
		t := Team{Name: name}
		if t.Wins, err = tk.count("wins of " + name); err != nil {
			return nil, err
		}
		if t.Losses, err = tk.count("losses of " + name); err != nil {
			return nil, err
		}
		if t.Remaining, err = tk.count("remaining of " + name); err != nil {
			return nil, err
		}
		row := make([]int, n)
		for j := range row {
			if row[j], err = tk.count("games left for " + name); err != nil {
				return nil, err
			}
		}
		teams[i] = t
		against[i] = row
	}

	if tok, err := tk.next("end of input"); err == nil {
		return nil, eris.Wrapf(ErrMalformedInput, "token %d: unexpected trailing %q", tk.pos, tok)
	} else if !eris.Is(err, io.EOF) {
		return nil, err
	}

	return New(teams, against)
}

// LoadFile opens path and parses it with Load.
func LoadFile(path string) (*Repository, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, eris.Wrapf(err, "open schedule %s", path)
	}
	defer f.Close()

	repo, err := Load(f)
	if err != nil {
		return nil, eris.Wrapf(err, "load schedule %s", path)
	}

	return repo, nil
}

// tokenizer yields whitespace-separated tokens and counts them for error messages.
type tokenizer struct {
	sc  *bufio.Scanner
	pos int
}

func newTokenizer(r io.Reader) *tokenizer {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	return &tokenizer{sc: sc}
}

// next returns the next token. At a clean end of input it returns io.EOF
// wrapped with what was expected.
func (t *tokenizer) next(what string) (string, error) {
	if !t.sc.Scan() {
		if err := t.sc.Err(); err != nil {
			return "", eris.Wrapf(err, "read %s", what)
		}
		return "", eris.Wrapf(io.EOF, "expected %s", what)
	}
	t.pos++

	return t.sc.Text(), nil
}

// count reads a non-negative integer token.
func (t *tokenizer) count(what string) (int, error) {
	tok, err := t.next(what)
	if err != nil {
		if eris.Is(err, io.EOF) {
			return 0, eris.Wrapf(ErrMalformedInput, "truncated input: expected %s", what)
		}
		return 0, err
	}
	v, err := strconv.Atoi(tok)
	if err != nil {
		return 0, eris.Wrapf(ErrMalformedInput, "token %d: %s is not an integer: %q", t.pos, what, tok)
	}
	if v < 0 {
		return 0, eris.Wrapf(ErrMalformedInput, "token %d: %s is negative: %d", t.pos, what, v)
	}

	return v, nil
}
