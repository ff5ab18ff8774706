// SPDX-License-Identifier: MIT
package graph_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/pathviz/graph"
)

// ContractSuite runs the shared Graph contract against one representation.
type ContractSuite struct {
	suite.Suite
	rep graph.Representation
}

func (s *ContractSuite) newGraph(vertices ...string) graph.Graph[string] {
	g, err := graph.New(s.rep, vertices)
	s.Require().NoError(err)

	return g
}

func (s *ContractSuite) TestAddEdgeIsUndirected() {
	require := require.New(s.T())
	g := s.newGraph("A", "B")

	require.NoError(g.AddEdge("A", "B", 10))

	require.Equal([]string{"B"}, g.Neighbors("A"))
	require.Equal([]string{"A"}, g.Neighbors("B"))
	require.Equal(10.0, g.EdgeWeight("A", "B"))
	require.Equal(10.0, g.EdgeWeight("B", "A"))
}

func (s *ContractSuite) TestRemoveEdgeIsUndirected() {
	require := require.New(s.T())
	g := s.newGraph("A", "B")

	require.NoError(g.AddEdge("A", "B", 10))
	g.RemoveEdge("A", "B")

	require.Empty(g.Neighbors("A"))
	require.Empty(g.Neighbors("B"))
	require.True(math.IsInf(g.EdgeWeight("A", "B"), 1))
	require.True(math.IsInf(g.EdgeWeight("B", "A"), 1))

	// removing again is a no-op
	g.RemoveEdge("B", "A")
	require.Empty(g.Neighbors("A"))
}

func (s *ContractSuite) TestNeighborsAfterRemoval() {
	require := require.New(s.T())
	g := s.newGraph("A", "B", "C", "D")

	require.NoError(g.AddEdge("A", "B", 1))
	require.NoError(g.AddEdge("A", "C", 1))
	require.NoError(g.AddEdge("A", "D", 1))
	g.RemoveEdge("A", "D")

	require.Equal([]string{"B", "C"}, g.Neighbors("A"))
	require.Equal(1.0, g.EdgeWeight("A", "B"))
	require.Equal(1.0, g.EdgeWeight("A", "C"))
	require.True(math.IsInf(g.EdgeWeight("A", "D"), 1))
}

func (s *ContractSuite) TestAddEdgeOverwrites() {
	require := require.New(s.T())
	g := s.newGraph("A", "B")

	require.NoError(g.AddEdge("A", "B", 3))
	require.NoError(g.AddEdge("B", "A", 7))

	require.Equal([]string{"B"}, g.Neighbors("A"), "overwrite must not create a parallel edge")
	require.Equal(7.0, g.EdgeWeight("A", "B"))
	require.Equal(1, graph.EdgeCount(g))
}

func (s *ContractSuite) TestZeroWeightIsAnEdge() {
	require := require.New(s.T())
	g := s.newGraph("A", "B")

	require.NoError(g.AddEdge("A", "B", 0))
	require.Equal([]string{"B"}, g.Neighbors("A"))
	require.Equal(0.0, g.EdgeWeight("B", "A"))
}

func (s *ContractSuite) TestBadWeightRejected() {
	require := require.New(s.T())
	g := s.newGraph("A", "B")

	for _, w := range []float64{-1, math.NaN(), math.Inf(1), math.Inf(-1)} {
		require.ErrorIs(g.AddEdge("A", "B", w), graph.ErrBadWeight, "weight %v", w)
	}
	require.Empty(g.Neighbors("A"), "rejected weight must leave the graph untouched")
}

func (s *ContractSuite) TestUnknownVertexQueries() {
	require := require.New(s.T())
	g := s.newGraph("A")

	require.Empty(g.Neighbors("Z"))
	require.True(math.IsInf(g.EdgeWeight("Z", "A"), 1))
	require.True(math.IsInf(g.EdgeWeight("A", "Z"), 1))
	require.False(g.HasVertex("Z"))
}

func (s *ContractSuite) TestVerticesInsertionOrder() {
	require := require.New(s.T())
	g := s.newGraph("C", "A", "B", "A")

	require.Equal([]string{"C", "A", "B"}, g.Vertices())

	// the returned slice is a copy
	vs := g.Vertices()
	vs[0] = "X"
	require.Equal("C", g.Vertices()[0])
}

func (s *ContractSuite) TestReadsAreIdempotent() {
	require := require.New(s.T())
	g := s.newGraph("A", "B", "C")
	require.NoError(g.AddEdge("A", "B", 2))
	require.NoError(g.AddEdge("B", "C", 5))

	n1, w1 := g.Neighbors("B"), g.EdgeWeight("B", "C")
	_ = g.Vertices()
	_ = g.EdgeWeight("A", "C")
	_ = g.Neighbors("Z")
	n2, w2 := g.Neighbors("B"), g.EdgeWeight("B", "C")

	require.Equal(n1, n2)
	require.Equal(w1, w2)
}

func (s *ContractSuite) TestDegree() {
	require := require.New(s.T())
	g := s.newGraph("A", "B", "C")
	require.NoError(g.AddEdge("A", "B", 1))
	require.NoError(g.AddEdge("A", "C", 1))

	require.Equal(2, graph.Degree(g, "A"))
	require.Equal(1, graph.Degree(g, "C"))
	require.Equal(2, graph.EdgeCount(g))
}

func TestGraphContract_List(t *testing.T) {
	suite.Run(t, &ContractSuite{rep: graph.RepList})
}

func TestGraphContract_Matrix(t *testing.T) {
	suite.Run(t, &ContractSuite{rep: graph.RepMatrix})
}

func TestList_RegistersUnknownVertices(t *testing.T) {
	g := graph.NewList([]string{"A"})

	require.NoError(t, g.AddEdge("A", "B", 4))

	require.True(t, g.HasVertex("B"))
	require.Equal(t, []string{"A", "B"}, g.Vertices())
	require.Equal(t, []string{"A"}, g.Neighbors("B"))
	require.Equal(t, 4.0, g.EdgeWeight("B", "A"))
}

func TestMatrix_IgnoresUnknownVertices(t *testing.T) {
	g := graph.NewMatrix([]string{"A"})

	require.NoError(t, g.AddEdge("A", "B", 4))

	require.False(t, g.HasVertex("B"))
	require.Equal(t, []string{"A"}, g.Vertices())
	require.Empty(t, g.Neighbors("A"))
	require.True(t, math.IsInf(g.EdgeWeight("A", "B"), 1))
	g.RemoveEdge("A", "B") // no panic, no-op
}

func TestNeighborOrder_ByRepresentation(t *testing.T) {
	vertices := []string{"A", "B", "C", "D"}
	list := graph.NewList(vertices)
	matrix := graph.NewMatrix(vertices)
	for _, g := range []graph.Graph[string]{list, matrix} {
		require.NoError(t, g.AddEdge("A", "D", 1))
		require.NoError(t, g.AddEdge("A", "B", 1))
	}

	require.Equal(t, []string{"D", "B"}, list.Neighbors("A"), "list keeps edge insertion order")
	require.Equal(t, []string{"B", "D"}, matrix.Neighbors("A"), "matrix keeps vertex index order")
}

func TestParseRepresentation(t *testing.T) {
	for in, want := range map[string]graph.Representation{
		"list": graph.RepList, "LIST": graph.RepList, " matrix ": graph.RepMatrix, "adjacency-matrix": graph.RepMatrix,
	} {
		got, err := graph.ParseRepresentation(in)
		require.NoError(t, err, in)
		require.Equal(t, want, got, in)
	}
	_, err := graph.ParseRepresentation("csr")
	require.ErrorIs(t, err, graph.ErrUnknownRepresentation)

	_, err = graph.New[string](graph.Representation(9), nil)
	require.ErrorIs(t, err, graph.ErrUnknownRepresentation)
	require.Equal(t, "matrix", graph.RepMatrix.String())
}
