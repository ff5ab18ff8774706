package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathviz/config"
	"github.com/katalvlaran/pathviz/graph"
	"github.com/katalvlaran/pathviz/gridgraph"
	"github.com/katalvlaran/pathviz/vertex"
)

const yamlScenario = `
name: corridor
algorithm: dijkstra
representation: matrix
connectivity: 8
delay: 40ms
grid:
  - "S..#"
  - ".#.."
  - "...E"
`

const tomlScenario = `
name = "corridor"
algorithm = "A*"
representation = "adjacency-list"
grid = ["....", ".#..", "...."]

[start]
x = 0
y = 2

[end]
x = 3
y = 0
`

func write(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestLoad_YAML(t *testing.T) {
	sc, err := config.Load(write(t, "c.yaml", yamlScenario))
	require.NoError(t, err)
	assert.Equal(t, "corridor", sc.Name)
	assert.Equal(t, 8, sc.Connectivity)
	assert.Equal(t, 40*time.Millisecond, sc.StepDelay())

	plan, err := sc.Resolve()
	require.NoError(t, err)
	assert.Equal(t, config.Dijkstra, plan.Algorithm)
	assert.Equal(t, graph.RepMatrix, plan.Representation)
	assert.Equal(t, gridgraph.Conn8, plan.Grid.Conn)
	assert.Equal(t, vertex.Name("0,0"), plan.Start)
	assert.Equal(t, vertex.Name("3,2"), plan.End)
}

func TestLoad_TOML(t *testing.T) {
	sc, err := config.Load(write(t, "c.toml", tomlScenario))
	require.NoError(t, err)
	assert.Equal(t, "50ms", sc.Delay, "defaults fill missing fields")
	assert.Equal(t, 4, sc.Connectivity)

	plan, err := sc.Resolve()
	require.NoError(t, err)
	assert.Equal(t, config.AStar, plan.Algorithm)
	assert.Equal(t, vertex.Name("0,2"), plan.Start)
	assert.Equal(t, vertex.Name("3,0"), plan.End)
	s, _ := plan.Grid.Start()
	assert.Equal(t, plan.Start, s, "override becomes the grid marker")
}

func TestLoad_GridFile(t *testing.T) {
	sc, err := config.Load(write(t, "maze.txt", "\n  S.#\n  ..E\n"))
	require.NoError(t, err)
	assert.Equal(t, "maze", sc.Name)
	assert.Equal(t, []string{"S.#", "..E"}, sc.Grid)
	assert.Equal(t, "astar", sc.Algorithm)
}

func TestLoad_Errors(t *testing.T) {
	_, err := config.Load(write(t, "c.json", "{}"))
	require.ErrorIs(t, err, config.ErrUnknownFormat)

	_, err = config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)

	_, err = config.Load(write(t, "c.yaml", "grid: [S.E]\ncolour: red\n"))
	require.Error(t, err, "unknown yaml keys are rejected")

	_, err = config.Load(write(t, "c.toml", "grid = [\"S.E\"]\ncolour = \"red\"\n"))
	require.Error(t, err, "unknown toml keys are rejected")
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*config.Scenario)
	}{
		{"NoGrid", func(s *config.Scenario) { s.Grid = nil }},
		{"EmptyRow", func(s *config.Scenario) { s.Grid = []string{"S.E", ""} }},
		{"BadCell", func(s *config.Scenario) { s.Grid = []string{"S?E"} }},
		{"BadAlgorithm", func(s *config.Scenario) { s.Algorithm = "bfs" }},
		{"BadRepresentation", func(s *config.Scenario) { s.Representation = "incidence" }},
		{"BadConnectivity", func(s *config.Scenario) { s.Connectivity = 6 }},
		{"BadDelay", func(s *config.Scenario) { s.Delay = "soon" }},
		{"NegativeDelay", func(s *config.Scenario) { s.Delay = "-1s" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sc := config.Default()
			tc.mutate(&sc)
			require.ErrorIs(t, sc.Validate(), config.ErrInvalid)
		})
	}
	require.NoError(t, config.Default().Validate())
}

func TestResolve_Errors(t *testing.T) {
	sc := config.Default()
	sc.Grid = []string{"....", "...."}
	_, err := sc.Resolve()
	require.ErrorIs(t, err, config.ErrMissingEndpoint)

	sc = config.Default()
	sc.Grid = []string{"S#", ".E"}
	sc.End = &config.Point{X: 1, Y: 0}
	_, err = sc.Resolve()
	require.ErrorIs(t, err, config.ErrBlockedEndpoint)

	sc = config.Default()
	sc.Grid = []string{"S..", ".E"}
	_, err = sc.Resolve()
	require.ErrorIs(t, err, gridgraph.ErrNonRectangular)

	sc = config.Default()
	sc.Grid = []string{"S.S", "..E"}
	_, err = sc.Resolve()
	require.ErrorIs(t, err, gridgraph.ErrDuplicateMarker)
}

func TestPlan_NewEngine(t *testing.T) {
	for _, algo := range []string{"dijkstra", "astar"} {
		t.Run(algo, func(t *testing.T) {
			sc := config.Default()
			sc.Algorithm = algo
			plan, err := sc.Resolve()
			require.NoError(t, err)

			path := plan.NewEngine().FindShortestPath()
			require.NotEmpty(t, path)
			assert.Equal(t, plan.Start, path[0])
			assert.Equal(t, plan.End, path[len(path)-1])
			assert.Equal(t, 50*time.Millisecond, plan.Delay)
		})
	}
}

func TestParseAlgorithm(t *testing.T) {
	for in, want := range map[string]config.Algorithm{
		"dijkstra": config.Dijkstra, "Dijkstra": config.Dijkstra,
		"astar": config.AStar, "A*": config.AStar, "a-star": config.AStar,
	} {
		got, err := config.ParseAlgorithm(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := config.ParseAlgorithm("bellman-ford")
	require.ErrorIs(t, err, config.ErrUnknownAlgorithm)
	assert.Equal(t, "astar", config.AStar.String())
	assert.Equal(t, "dijkstra", config.Dijkstra.String())
}

func TestStepDelay_Fallback(t *testing.T) {
	assert.Zero(t, config.Scenario{}.StepDelay())
	assert.Zero(t, config.Scenario{Delay: "-5ms"}.StepDelay())
	assert.Equal(t, time.Second, config.Scenario{Delay: "1s"}.StepDelay())
}
