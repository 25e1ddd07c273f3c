package schedule

import (
	"strings"
	"unicode"

	"github.com/rotisserie/eris"
)

// Repository is the read-only standings table.
//
// Teams keep their input order; against[i][j] is the number of games left
// between team i and team j. The matrix is square, non-negative, symmetric
// and zero on the diagonal. Row sums are not required to equal Remaining,
// since real standings also count games against teams outside the table.
type Repository struct {
	teams   []Team
	against [][]int
	index   map[string]int
}

// New validates teams and against and returns a Repository holding copies of
// both. Validation failures wrap ErrMalformedInput.
func New(teams []Team, against [][]int) (*Repository, error) {
	if err := validate(teams, against); err != nil {
		return nil, err
	}

	r := &Repository{
		teams:   make([]Team, len(teams)),
		against: make([][]int, len(teams)),
		index:   make(map[string]int, len(teams)),
	}
	copy(r.teams, teams)
	for i, row := range against {
		r.against[i] = make([]int, len(row))
		copy(r.against[i], row)
		r.index[teams[i].Name] = i
	}

	return r, nil
}

func validate(teams []Team, against [][]int) error {
	n := len(teams)
	seen := make(map[string]struct{}, n)
	for i, t := range teams {
		if t.Name == "" || strings.IndexFunc(t.Name, unicode.IsSpace) >= 0 {
			return eris.Wrapf(ErrMalformedInput, "team %d: invalid name %q", i, t.Name)
		}
		if _, dup := seen[t.Name]; dup {
			return eris.Wrapf(ErrMalformedInput, "team %d: duplicate name %q", i, t.Name)
		}
		seen[t.Name] = struct{}{}
		if t.Wins < 0 || t.Losses < 0 || t.Remaining < 0 {
			return eris.Wrapf(ErrMalformedInput, "team %q: negative record %d-%d-%d",
				t.Name, t.Wins, t.Losses, t.Remaining)
		}
	}

	if len(against) != n {
		return eris.Wrapf(ErrMalformedInput, "matrix has %d rows, want %d", len(against), n)
	}
	for i, row := range against {
		if len(row) != n {
			return eris.Wrapf(ErrMalformedInput, "matrix row %d has %d columns, want %d", i, len(row), n)
		}
		if row[i] != 0 {
			return eris.Wrapf(ErrMalformedInput, "team %q has %d games against itself", teams[i].Name, row[i])
		}
		for j, g := range row {
			if g < 0 {
				return eris.Wrapf(ErrMalformedInput, "negative games between %q and %q", teams[i].Name, teams[j].Name)
			}
		}
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if against[i][j] != against[j][i] {
				return eris.Wrapf(ErrMalformedInput, "asymmetric games between %q and %q: %d vs %d",
					teams[i].Name, teams[j].Name, against[i][j], against[j][i])
			}
		}
	}

	return nil
}

// TeamCount returns the number of teams.
func (r *Repository) TeamCount() int { return len(r.teams) }

// TeamNames returns all team names in input order.
func (r *Repository) TeamNames() []string {
	out := make([]string, len(r.teams))
	for i, t := range r.teams {
		out[i] = t.Name
	}

	return out
}

// Index returns the input position of name.
func (r *Repository) Index(name string) (int, error) {
	i, ok := r.index[name]
	if !ok {
		return 0, eris.Wrapf(ErrUnknownTeam, "%q", name)
	}

	return i, nil
}

// Team returns the record of name.
func (r *Repository) Team(name string) (Team, error) {
	i, err := r.Index(name)
	if err != nil {
		return Team{}, err
	}

	return r.teams[i], nil
}

// TeamAt returns the record at input position i. It panics if i is out of range.
func (r *Repository) TeamAt(i int) Team { return r.teams[i] }

// Wins returns the current wins of name.
func (r *Repository) Wins(name string) (int, error) {
	t, err := r.Team(name)
	return t.Wins, err
}

// Losses returns the current losses of name.
func (r *Repository) Losses(name string) (int, error) {
	t, err := r.Team(name)
	return t.Losses, err
}

// Remaining returns the number of games name has left to play.
func (r *Repository) Remaining(name string) (int, error) {
	t, err := r.Team(name)
	return t.Remaining, err
}

// Against returns the number of games left between team1 and team2.
func (r *Repository) Against(team1, team2 string) (int, error) {
	i, err := r.Index(team1)
	if err != nil {
		return 0, err
	}
	j, err := r.Index(team2)
	if err != nil {
		return 0, err
	}

	return r.against[i][j], nil
}

// AgainstAt is Against by input position. It panics if i or j is out of range.
func (r *Repository) AgainstAt(i, j int) int { return r.against[i][j] }
