// Package elimination decides whether a team can still finish first.
//
// A team x is trivially eliminated when some team already has more wins than
// x can reach. Otherwise the question reduces to maximum flow: every game left
// between two other teams is a unit of flow from the source, routed through a
// game vertex to one of its two teams, and each team i may absorb at most
// wins(x)+remaining(x)−wins(i) of them before overtaking x. If the maximum
// flow cannot route every game, x is eliminated, and the teams on the source
// side of the minimum cut form the certificate.
//
// Engine is the entry point; it memoizes one Result per team in a Cache.
package elimination

import (
	"errors"
	"fmt"
)

// ErrInvalidCertificate is returned by Engine.Verify when a certificate does
// not prove elimination.
var ErrInvalidCertificate = errors.New("elimination: invalid certificate")

// Status is the tri-state outcome for one team.
type Status int

const (
	// NotComputed is the zero value: no decision has been made yet.
	NotComputed Status = iota
	// NotEliminated means the team can still finish first.
	NotEliminated
	// Eliminated means the team cannot finish first; the certificate proves it.
	Eliminated
)

func (s Status) String() string {
	switch s {
	case NotComputed:
		return "not computed"
	case NotEliminated:
		return "not eliminated"
	case Eliminated:
		return "eliminated"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Result is the elimination decision for one team.
type Result struct {
	Status Status

	// Certificate lists the teams, in input order, whose combined results
	// prove elimination. Empty unless Status == Eliminated.
	Certificate []string
}

// IsEliminated reports whether r is the Eliminated variant.
func (r Result) IsEliminated() bool { return r.Status == Eliminated }

// Trivial reports whether the elimination is witnessed by a single team.
// A singleton can only come from the trivial check: a cut whose source side
// holds one team reaches no game vertex, so its capacity is never below the
// total number of games and it cannot prove elimination.
func (r Result) Trivial() bool { return r.Status == Eliminated && len(r.Certificate) == 1 }

func (r Result) clone() Result {
	if r.Certificate == nil {
		return r
	}
	c := make([]string, len(r.Certificate))
	copy(c, r.Certificate)

	return Result{Status: r.Status, Certificate: c}
}

func notEliminated() Result { return Result{Status: NotEliminated} }

func eliminatedBy(teams ...string) Result {
	return Result{Status: Eliminated, Certificate: teams}
}
