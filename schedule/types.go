// Package schedule holds an immutable standings snapshot: every team's
// record plus the matrix of games still to be played between each pair.
//
// A Repository is built once, either from already-parsed data with New or
// from the whitespace text format with Load, and never changes afterwards.
// Every name-taking accessor fails with ErrUnknownTeam for names outside the
// table.
package schedule

import "errors"

var (
	// ErrUnknownTeam indicates a team name that is not in the repository.
	ErrUnknownTeam = errors.New("schedule: unknown team")

	// ErrMalformedInput indicates data that does not describe a valid standings table.
	ErrMalformedInput = errors.New("schedule: malformed input")
)

// Team is one row of the standings table.
type Team struct {
	Name      string
	Wins      int
	Losses    int
	Remaining int
}

// MaxWins is the number of wins the team reaches if it wins every remaining game.
func (t Team) MaxWins() int { return t.Wins + t.Remaining }
