// Package render draws a grid search as text for terminals and logs.
//
// Each grid cell becomes one glyph; the glyph and its lipgloss style are
// chosen by the cell's role in the current shortestpath.Snapshot, in
// priority order:
//
//	start S, end E, expanding @, evaluating ?, path *, open set +,
//	visited :, open cell ., wall #
//
// Plain() gives an uncolored theme whose output is stable for tests and
// log files; DefaultTheme() colors the same glyphs.
package render

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/katalvlaran/pathviz/gridgraph"
	"github.com/katalvlaran/pathviz/shortestpath"
	"github.com/katalvlaran/pathviz/vertex"
)

// Role is what a cell represents in a frame.
type Role int

const (
	RoleWall Role = iota
	RoleOpen
	RoleVisited
	RoleFrontier
	RolePath
	RoleEvaluating
	RoleExpanding
	RoleStart
	RoleEnd
)

// glyphs is indexed by Role.
var glyphs = [...]string{"#", ".", ":", "+", "*", "?", "@", "S", "E"}

// labels is indexed by Role and used by Legend.
var labels = [...]string{"wall", "open", "visited", "open set", "path", "evaluating", "expanding", "start", "end"}

var legendOrder = []Role{
	RoleStart, RoleEnd, RoleExpanding, RoleEvaluating, RolePath,
	RoleFrontier, RoleVisited, RoleOpen, RoleWall,
}

// Glyph returns the character drawn for r.
func (r Role) Glyph() string { return glyphs[r] }

// String returns the legend label of r.
func (r Role) String() string { return labels[r] }

// Theme maps roles to styles.
type Theme struct {
	Cells  [len(glyphs)]lipgloss.Style
	Title  lipgloss.Style
	Status lipgloss.Style
	Frame  lipgloss.Style
}

// Plain returns a theme without colors or borders.
func Plain() Theme {
	var t Theme
	for i := range t.Cells {
		t.Cells[i] = lipgloss.NewStyle()
	}
	t.Title = lipgloss.NewStyle()
	t.Status = lipgloss.NewStyle()
	t.Frame = lipgloss.NewStyle()

	return t
}

// DefaultTheme returns the colored theme used by the terminal commands.
func DefaultTheme() Theme {
	color := func(c string) lipgloss.Style { return lipgloss.NewStyle().Foreground(lipgloss.Color(c)) }
	t := Plain()
	t.Cells[RoleWall] = color("240")
	t.Cells[RoleOpen] = color("250")
	t.Cells[RoleVisited] = color("39")
	t.Cells[RoleFrontier] = color("214")
	t.Cells[RolePath] = color("46").Bold(true)
	t.Cells[RoleEvaluating] = color("226").Bold(true)
	t.Cells[RoleExpanding] = color("196").Bold(true)
	t.Cells[RoleStart] = color("201").Bold(true)
	t.Cells[RoleEnd] = color("201").Bold(true)
	t.Title = lipgloss.NewStyle().Bold(true)
	t.Status = lipgloss.NewStyle().Faint(true)
	t.Frame = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)

	return t
}

// Renderer draws grids and snapshots with a Theme.
type Renderer struct {
	theme Theme
}

// New returns a Renderer using theme.
func New(theme Theme) *Renderer {
	return &Renderer{theme: theme}
}

// Roles classifies every cell of gr for snap, indexed [y][x].
func Roles(gr *gridgraph.Grid, snap shortestpath.Snapshot[vertex.Name]) [][]Role {
	marks := make(map[vertex.Name]Role, len(snap.Visited)+len(snap.Open)+len(snap.Path))
	// Lower priority first so later writes win.
	for _, v := range snap.Visited {
		marks[v] = RoleVisited
	}
	for _, v := range snap.Open {
		marks[v] = RoleFrontier
	}
	for _, v := range snap.Path {
		marks[v] = RolePath
	}
	if snap.HasEvaluating {
		marks[snap.Evaluating] = RoleEvaluating
	}
	if snap.HasExpanding && snap.Outcome == shortestpath.Pending {
		marks[snap.Expanding] = RoleExpanding
	}
	if s, ok := gr.Start(); ok {
		marks[s] = RoleStart
	}
	if e, ok := gr.End(); ok {
		marks[e] = RoleEnd
	}

	roles := make([][]Role, gr.Height)
	for y := range roles {
		roles[y] = make([]Role, gr.Width)
		for x := range roles[y] {
			switch role, ok := marks[vertex.At(x, y)]; {
			case !gr.Active(x, y):
				roles[y][x] = RoleWall
			case ok:
				roles[y][x] = role
			default:
				roles[y][x] = RoleOpen
			}
		}
	}

	return roles
}

// Grid draws the cells of gr for snap, one line per row.
func (r *Renderer) Grid(gr *gridgraph.Grid, snap shortestpath.Snapshot[vertex.Name]) string {
	var b strings.Builder
	for y, row := range Roles(gr, snap) {
		if y > 0 {
			b.WriteByte('\n')
		}
		for _, role := range row {
			b.WriteString(r.theme.Cells[role].Render(role.Glyph()))
		}
	}

	return b.String()
}

// Legend lists every glyph with its label on one line.
func (r *Renderer) Legend() string {
	parts := make([]string, 0, len(legendOrder))
	for _, role := range legendOrder {
		parts = append(parts, r.theme.Cells[role].Render(role.Glyph())+" "+role.String())
	}

	return strings.Join(parts, "  ")
}

// Status renders the counters line for snap. cost is the path cost, or
// +Inf when there is none yet.
func (r *Renderer) Status(algorithm string, snap shortestpath.Snapshot[vertex.Name], cost float64) string {
	st := snap.Stats
	line := fmt.Sprintf("%s  step %s  expanded %s  evaluated %s  open %s  outcome %s",
		algorithm,
		humanize.Comma(int64(st.Steps)),
		humanize.Comma(int64(st.Expansions)),
		humanize.Comma(int64(st.Evaluations)),
		humanize.Comma(int64(len(snap.Open))),
		snap.Outcome)
	if !math.IsInf(cost, 1) {
		line += "  cost " + humanize.FtoaWithDigits(cost, 3)
	}

	return r.theme.Status.Render(line)
}

// Frame composes title, grid, status and legend into one block.
func (r *Renderer) Frame(title, algorithm string, gr *gridgraph.Grid, snap shortestpath.Snapshot[vertex.Name], cost float64) string {
	body := lipgloss.JoinVertical(lipgloss.Left,
		r.theme.Title.Render(title),
		r.Grid(gr, snap),
		"",
		r.Status(algorithm, snap, cost),
		r.Legend(),
	)

	return r.theme.Frame.Render(body)
}
