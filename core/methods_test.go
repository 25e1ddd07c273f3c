package core_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/pennant/core"
)

type GraphSuite struct {
	suite.Suite
	g *core.Graph
}

func (s *GraphSuite) SetupTest() {
	s.g = core.NewGraph(core.WithDirected(true), core.WithWeighted())
}

func (s *GraphSuite) TestAddVertexIdempotent() {
	require := require.New(s.T())
	require.NoError(s.g.AddVertex("A"))
	require.NoError(s.g.AddVertex("A"))
	require.Equal([]string{"A"}, s.g.Vertices())
	require.True(s.g.HasVertex("A"))
	require.False(s.g.HasVertex(""))
	require.ErrorIs(s.g.AddVertex(""), core.ErrEmptyVertexID)
}

func (s *GraphSuite) TestVerticesInsertionOrder() {
	for _, id := range []string{"s", "t", "b", "a"} {
		require.NoError(s.T(), s.g.AddVertex(id))
	}
	require.Equal(s.T(), []string{"s", "t", "b", "a"}, s.g.Vertices())
}

func (s *GraphSuite) TestAddEdgeAutoAddsVertices() {
	require := require.New(s.T())
	eid, err := s.g.AddEdge("A", "B", 5)
	require.NoError(err)
	require.Equal("e1", eid)
	require.True(s.g.HasVertex("A"))
	require.True(s.g.HasVertex("B"))
	require.True(s.g.HasEdge("A", "B"))
	require.False(s.g.HasEdge("B", "A"), "directed edge must not mirror")

	edges := s.g.Edges()
	require.Len(edges, 1)
	require.Equal(eid, edges[0].ID)
	require.Equal(int64(5), edges[0].Weight)
	require.True(edges[0].Directed)
}

func (s *GraphSuite) TestEdgeConstraints() {
	require := require.New(s.T())
	_, err := s.g.AddEdge("A", "A", 1)
	require.ErrorIs(err, core.ErrLoopNotAllowed)

	_, err = s.g.AddEdge("A", "B", 1)
	require.NoError(err)
	_, err = s.g.AddEdge("A", "B", 2)
	require.True(errors.Is(err, core.ErrMultiEdgeNotAllowed))

	unweighted := core.NewGraph()
	_, err = unweighted.AddEdge("X", "Y", 3)
	require.ErrorIs(err, core.ErrBadWeight)

	_, err = s.g.AddEdge("", "B", 1)
	require.ErrorIs(err, core.ErrEmptyVertexID)
}

func (s *GraphSuite) TestMultiEdgesAndLoops() {
	require := require.New(s.T())
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted(), core.WithMultiEdges(), core.WithLoops())
	_, err := g.AddEdge("A", "B", 1)
	require.NoError(err)
	_, err = g.AddEdge("A", "B", 2)
	require.NoError(err)
	_, err = g.AddEdge("A", "A", 3)
	require.NoError(err)
	require.Len(g.Edges(), 3)

	nbrs, err := g.Neighbors("A")
	require.NoError(err)
	require.Len(nbrs, 3)
	require.Equal([]string{"e1", "e2", "e3"}, []string{nbrs[0].ID, nbrs[1].ID, nbrs[2].ID})
}

func (s *GraphSuite) TestUndirectedMirrors() {
	require := require.New(s.T())
	g := core.NewGraph(core.WithWeighted())
	_, err := g.AddEdge("A", "B", 4)
	require.NoError(err)
	require.True(g.HasEdge("B", "A"))

	nbrs, err := g.Neighbors("B")
	require.NoError(err)
	require.Len(nbrs, 1)
	require.False(nbrs[0].Directed)
}

func (s *GraphSuite) TestNeighborsErrors() {
	_, err := s.g.Neighbors("missing")
	require.ErrorIs(s.T(), err, core.ErrVertexNotFound)
	_, err = s.g.Neighbors("")
	require.ErrorIs(s.T(), err, core.ErrEmptyVertexID)
}

func TestGraphSuite(t *testing.T) {
	suite.Run(t, new(GraphSuite))
}
