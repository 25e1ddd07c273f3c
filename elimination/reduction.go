package elimination

import (
	"context"

	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"

	"github.com/katalvlaran/pennant/core"
	"github.com/katalvlaran/pennant/flow"
	"github.com/katalvlaran/pennant/schedule"
)

// Vertex IDs of the per-query network. Team names never contain whitespace,
// so "game:a b" and "team:a" cannot collide with each other or with the
// terminals.
const (
	sourceID   = "source"
	sinkID     = "sink"
	gamePrefix = "game:"
	teamPrefix = "team:"
)

func gameVertex(a, b string) string { return gamePrefix + a + " " + b }
func teamVertex(name string) string { return teamPrefix + name }

// Reduction decides elimination for single teams of one repository.
// It holds no per-query state; every Decide builds its own network.
type Reduction struct {
	repo      *schedule.Repository
	algorithm flow.Algorithm
	flowOpts  flow.FlowOptions
	logger    zerolog.Logger
}

// NewReduction returns a Reduction over repo that solves flow networks with alg.
// When verboseFlow is set, every augmenting path is traced on logger at debug level.
func NewReduction(repo *schedule.Repository, alg flow.Algorithm, logger zerolog.Logger, verboseFlow bool) *Reduction {
	return &Reduction{
		repo:      repo,
		algorithm: alg,
		flowOpts:  flow.FlowOptions{Logger: &logger, Verbose: verboseFlow},
		logger:    logger,
	}
}

// Decide returns the elimination Result for team.
//
// Steps:
//  1. Trivial check: the first other team, in input order, whose wins exceed
//     wins(team)+remaining(team) is a singleton certificate.
//  2. Otherwise build the game/team network, solve it, and report
//     elimination iff some source edge is left unsaturated.
//
// Errors: schedule.ErrUnknownTeam, or the solver's error (context cancellation).
func (rd *Reduction) Decide(ctx context.Context, team string) (Result, error) {
	x, err := rd.repo.Index(team)
	if err != nil {
		return Result{}, err
	}

	if res, ok := rd.trivial(x); ok {
		rd.logger.Debug().
			Str("team", team).
			Strs("certificate", res.Certificate).
			Msg("trivially eliminated")
		return res, nil
	}

	return rd.nonTrivial(ctx, x)
}

// trivial looks for a single team that x cannot catch.
func (rd *Reduction) trivial(x int) (Result, bool) {
	best := rd.repo.TeamAt(x).MaxWins()
	for i := 0; i < rd.repo.TeamCount(); i++ {
		if i == x {
			continue
		}
		if other := rd.repo.TeamAt(i); best < other.Wins {
			return eliminatedBy(other.Name), true
		}
	}

	return Result{}, false
}

// network is the flow instance built for one queried team.
type network struct {
	graph       *core.Graph
	sourceEdges []string
	games       int64
	others      []int
}

// buildNetwork constructs the network excluding team x:
//
//	source → game(i,j)   capacity against(i,j)
//	game(i,j) → team(i)  Unbounded
//	game(i,j) → team(j)  Unbounded
//	team(i) → sink       capacity max(0, maxWins(x) − wins(i))
//
// One game vertex exists for every unordered pair of other teams, even when
// no games remain between them.
func (rd *Reduction) buildNetwork(x int) (*network, error) {
	best := rd.repo.TeamAt(x).MaxWins()
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	if err := g.AddVertex(sourceID); err != nil {
		return nil, err
	}
	if err := g.AddVertex(sinkID); err != nil {
		return nil, err
	}

	n := &network{graph: g}
	for i := 0; i < rd.repo.TeamCount(); i++ {
		if i != x {
			n.others = append(n.others, i)
		}
	}

	for a, i := range n.others {
		ti := rd.repo.TeamAt(i)
		for _, j := range n.others[a+1:] {
			tj := rd.repo.TeamAt(j)
			games := int64(rd.repo.AgainstAt(i, j))
			gv := gameVertex(ti.Name, tj.Name)

			eid, err := g.AddEdge(sourceID, gv, games)
			if err != nil {
				return nil, err
			}
			n.sourceEdges = append(n.sourceEdges, eid)
			n.games += games

			if _, err = g.AddEdge(gv, teamVertex(ti.Name), flow.Unbounded); err != nil {
				return nil, err
			}
			if _, err = g.AddEdge(gv, teamVertex(tj.Name), flow.Unbounded); err != nil {
				return nil, err
			}
		}
	}

	for _, i := range n.others {
		ti := rd.repo.TeamAt(i)
		room := best - ti.Wins
		if room < 0 {
			room = 0
		}
		if _, err := g.AddEdge(teamVertex(ti.Name), sinkID, int64(room)); err != nil {
			return nil, err
		}
	}

	return n, nil
}

// nonTrivial runs the flow reduction for team x.
func (rd *Reduction) nonTrivial(ctx context.Context, x int) (Result, error) {
	name := rd.repo.TeamAt(x).Name
	n, err := rd.buildNetwork(x)
	if err != nil {
		return Result{}, eris.Wrapf(err, "build network for %q", name)
	}

	res, err := flow.Solve(ctx, rd.algorithm, n.graph, sourceID, sinkID, &rd.flowOpts)
	if err != nil {
		return Result{}, eris.Wrapf(err, "solve network for %q", name)
	}

	saturated := true
	for _, eid := range n.sourceEdges {
		ok, err := res.Saturated(eid)
		if err != nil {
			return Result{}, eris.Wrapf(err, "inspect network for %q", name)
		}
		if !ok {
			saturated = false
			break
		}
	}

	log := rd.logger.Debug().
		Str("team", name).
		Str("algorithm", res.Algorithm.String()).
		Int64("max_flow", res.MaxFlow).
		Int64("games", n.games).
		Int("augmentations", res.Augmentations)
	if saturated {
		log.Msg("not eliminated")
		return notEliminated(), nil
	}

	var certificate []string
	for _, i := range n.others {
		other := rd.repo.TeamAt(i).Name
		if res.InCut(teamVertex(other)) {
			certificate = append(certificate, other)
		}
	}
	log.Strs("certificate", certificate).Msg("eliminated")

	return eliminatedBy(certificate...), nil
}
