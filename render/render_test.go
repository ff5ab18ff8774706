package render_test

import (
	"math"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathviz/graph"
	"github.com/katalvlaran/pathviz/gridgraph"
	"github.com/katalvlaran/pathviz/render"
	"github.com/katalvlaran/pathviz/shortestpath"
	"github.com/katalvlaran/pathviz/vertex"
)

const maze = `
S.#
..#
#.E
`

func setup(t *testing.T) (*gridgraph.Grid, *shortestpath.Engine[vertex.Name]) {
	t.Helper()
	gr, err := gridgraph.Parse(maze, gridgraph.DefaultGridOptions())
	require.NoError(t, err)
	g, err := gr.Build(graph.RepList)
	require.NoError(t, err)
	s, _ := gr.Start()
	e, _ := gr.End()

	return gr, shortestpath.NewAStar(g, s, e)
}

// trimLines drops trailing padding added by lipgloss joins.
func trimLines(s string) string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimRight(l, " ")
	}

	return strings.Join(lines, "\n")
}

func TestGrid_Initial(t *testing.T) {
	gr, e := setup(t)
	r := render.New(render.Plain())
	assert.Equal(t, "S.#\n..#\n#.E", r.Grid(gr, e.Snapshot()))
}

func TestGrid_MidSearch(t *testing.T) {
	gr, e := setup(t)
	r := render.New(render.Plain())

	e.Step() // expand 0,0
	e.Step() // evaluating 1,0
	e.Step() // 1,0 relaxed, evaluating 0,1
	assert.Equal(t, "S+#\n?.#\n#.E", r.Grid(gr, e.Snapshot()))

	e.Step() // 0,1 relaxed, expand 1,0
	assert.Equal(t, "S@#\n+.#\n#.E", r.Grid(gr, e.Snapshot()))
}

func TestGrid_Finished(t *testing.T) {
	gr, e := setup(t)
	r := render.New(render.Plain())
	path := e.FindShortestPath()
	require.NotNil(t, path)

	assert.Equal(t, "S*#\n:*#\n#*E", r.Grid(gr, e.Snapshot()))
}

func TestRoles_WallsStayWalls(t *testing.T) {
	gr, e := setup(t)
	e.Run()
	roles := render.Roles(gr, e.Snapshot())
	assert.Equal(t, render.RoleWall, roles[0][2])
	assert.Equal(t, render.RoleWall, roles[2][0])
	assert.Equal(t, render.RoleStart, roles[0][0])
	assert.Equal(t, render.RoleEnd, roles[2][2])
}

func TestStatus(t *testing.T) {
	r := render.New(render.Plain())
	snap := shortestpath.Snapshot[vertex.Name]{
		Open:    []vertex.Name{"1,1"},
		Outcome: shortestpath.Found,
		Stats:   shortestpath.Stats{Steps: 12345, Expansions: 1000, Evaluations: 4000},
	}
	assert.Equal(t,
		"astar  step 12,345  expanded 1,000  evaluated 4,000  open 1  outcome found  cost 4.5",
		r.Status("astar", snap, 4.5))
	assert.NotContains(t, r.Status("astar", snap, math.Inf(1)), "cost")
}

func TestLegend(t *testing.T) {
	legend := render.New(render.Plain()).Legend()
	for _, want := range []string{"S start", "E end", "@ expanding", "? evaluating", "* path", "+ open set", ": visited", ". open", "# wall"} {
		assert.Contains(t, legend, want)
	}
}

func TestFrame(t *testing.T) {
	gr, e := setup(t)
	e.Run()
	snap := e.Snapshot()

	out := trimLines(render.New(render.Plain()).Frame("demo", "astar", gr, snap, 4))
	lines := strings.Split(out, "\n")
	require.GreaterOrEqual(t, len(lines), 6)
	assert.Equal(t, "demo", lines[0])
	assert.Equal(t, "S*#", lines[1])
	assert.Contains(t, out, "cost 4")

	colored := render.New(render.DefaultTheme()).Frame("demo", "astar", gr, snap, 4)
	assert.Greater(t, lipgloss.Height(colored), len(lines), "default theme adds a border")
}
