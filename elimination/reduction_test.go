package elimination_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/pennant/elimination"
	"github.com/katalvlaran/pennant/flow"
	"github.com/katalvlaran/pennant/schedule"
)

// ReductionSuite exercises Decide directly, bypassing the cache.
type ReductionSuite struct {
	suite.Suite
	ctx context.Context
}

func (s *ReductionSuite) SetupTest() {
	s.ctx = context.Background()
}

func (s *ReductionSuite) decide(file, team string, alg flow.Algorithm) elimination.Result {
	rd := elimination.NewReduction(loadRepo(s.T(), file), alg, zerolog.Nop(), false)
	res, err := rd.Decide(s.ctx, team)
	require.NoError(s.T(), err)

	return res
}

// TestTrivial: Montreal (77+3) cannot catch Atlanta (83).
func (s *ReductionSuite) TestTrivial() {
	res := s.decide("teams4.txt", "Montreal", flow.AlgorithmEdmondsKarp)
	require.Equal(s.T(), elimination.Eliminated, res.Status)
	require.Equal(s.T(), []string{"Atlanta"}, res.Certificate)
	require.True(s.T(), res.Trivial())
}

// TestNonTrivial: Philadelphia can reach 83 but Atlanta and New_York
// share 6 games and together must exceed it.
func (s *ReductionSuite) TestNonTrivial() {
	res := s.decide("teams4.txt", "Philadelphia", flow.AlgorithmEdmondsKarp)
	require.Equal(s.T(), elimination.Eliminated, res.Status)
	require.Equal(s.T(), []string{"Atlanta", "New_York"}, res.Certificate)
	require.False(s.T(), res.Trivial())
}

// TestThreeWay: no single team dominates Montreal, all three together do.
func (s *ReductionSuite) TestThreeWay() {
	res := s.decide("teams4a.txt", "Montreal", flow.AlgorithmEdmondsKarp)
	require.Equal(s.T(), elimination.Eliminated, res.Status)
	require.Equal(s.T(), []string{"Atlanta", "Philadelphia", "New_York"}, res.Certificate)
}

// TestNotEliminated covers a leader and a contender.
func (s *ReductionSuite) TestNotEliminated() {
	for _, team := range []string{"Atlanta", "New_York"} {
		res := s.decide("teams4.txt", team, flow.AlgorithmEdmondsKarp)
		require.Equal(s.T(), elimination.NotEliminated, res.Status, team)
		require.Empty(s.T(), res.Certificate, team)
	}
}

// TestDegenerateLeagues: with fewer than two other teams there are no game
// vertices, so only the trivial check can eliminate.
func (s *ReductionSuite) TestDegenerateLeagues() {
	require.Equal(s.T(), elimination.NotEliminated, s.decide("teams1.txt", "Solo", flow.AlgorithmEdmondsKarp).Status)
	require.Equal(s.T(), elimination.NotEliminated, s.decide("teams2.txt", "Turing", flow.AlgorithmEdmondsKarp).Status)

	res := s.decide("teams2.txt", "Hopper", flow.AlgorithmEdmondsKarp)
	require.Equal(s.T(), []string{"Turing"}, res.Certificate)
}

// TestNoGamesLeft: all inter-team games are played, so the flow network is
// empty and saturates trivially.
func (s *ReductionSuite) TestNoGamesLeft() {
	repo, err := schedule.New(
		[]schedule.Team{
			{Name: "A", Wins: 10, Remaining: 2},
			{Name: "B", Wins: 11},
			{Name: "C", Wins: 12},
		},
		[][]int{{0, 0, 0}, {0, 0, 0}, {0, 0, 0}},
	)
	require.NoError(s.T(), err)

	rd := elimination.NewReduction(repo, flow.AlgorithmEdmondsKarp, zerolog.Nop(), false)
	res, err := rd.Decide(s.ctx, "A")
	require.NoError(s.T(), err)
	require.Equal(s.T(), elimination.NotEliminated, res.Status)
}

// TestTiesAreNotElimination: reaching the leader's win total keeps a team alive.
func (s *ReductionSuite) TestTiesAreNotElimination() {
	repo, err := schedule.New(
		[]schedule.Team{
			{Name: "A", Wins: 10, Remaining: 0},
			{Name: "B", Wins: 8, Remaining: 2},
		},
		[][]int{{0, 0}, {0, 0}},
	)
	require.NoError(s.T(), err)

	rd := elimination.NewReduction(repo, flow.AlgorithmEdmondsKarp, zerolog.Nop(), false)
	res, err := rd.Decide(s.ctx, "B")
	require.NoError(s.T(), err)
	require.Equal(s.T(), elimination.NotEliminated, res.Status)
}

// TestAlgorithmsAgree: every solver yields the same decisions and certificates.
func (s *ReductionSuite) TestAlgorithmsAgree() {
	for file := range fixtures {
		repo := loadRepo(s.T(), file)
		for _, team := range repo.TeamNames() {
			want := s.decide(file, team, flow.AlgorithmEdmondsKarp)
			for _, alg := range []flow.Algorithm{flow.AlgorithmFordFulkerson, flow.AlgorithmDinic} {
				require.Equal(s.T(), want, s.decide(file, team, alg), "%s %s %s", file, team, alg)
			}
		}
	}
}

// TestUnknownTeam surfaces the repository error.
func (s *ReductionSuite) TestUnknownTeam() {
	rd := elimination.NewReduction(loadRepo(s.T(), "teams4.txt"), flow.AlgorithmEdmondsKarp, zerolog.Nop(), false)
	_, err := rd.Decide(s.ctx, "Boston")
	require.ErrorIs(s.T(), err, schedule.ErrUnknownTeam)
}

// TestCanceled: a cancelled context aborts the flow computation.
func (s *ReductionSuite) TestCanceled() {
	ctx, cancel := context.WithCancel(s.ctx)
	cancel()

	rd := elimination.NewReduction(loadRepo(s.T(), "teams4.txt"), flow.AlgorithmEdmondsKarp, zerolog.Nop(), false)
	_, err := rd.Decide(ctx, "Philadelphia")
	require.ErrorIs(s.T(), err, context.Canceled)

	// the trivial check needs no flow and still answers
	res, err := rd.Decide(ctx, "Montreal")
	require.NoError(s.T(), err)
	require.True(s.T(), res.Trivial())
}

// TestLogging: decisions and augmenting paths are traced at debug level.
func (s *ReductionSuite) TestLogging() {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)

	rd := elimination.NewReduction(loadRepo(s.T(), "teams4.txt"), flow.AlgorithmEdmondsKarp, logger, true)
	_, err := rd.Decide(s.ctx, "Philadelphia")
	require.NoError(s.T(), err)

	out := buf.String()
	require.Contains(s.T(), out, `"team":"Philadelphia"`)
	require.Contains(s.T(), out, `"max_flow":6`)
	require.Contains(s.T(), out, `"games":7`)
	require.Contains(s.T(), out, "augmenting path")
	require.Contains(s.T(), out, `"message":"eliminated"`)
}

func TestReductionSuite(t *testing.T) {
	suite.Run(t, new(ReductionSuite))
}
