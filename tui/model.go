// Package tui animates a search in the terminal with bubbletea.
//
// The model is the external scheduler of the engine's state machine: each
// tick performs exactly one Engine.Step, and the tick interval is the
// configured delay. Pausing stops the ticks; the search state is untouched.
//
// Keys:
//
//	space  pause / resume
//	n      single step (while paused)
//	f      finish the search immediately
//	q      quit
package tui

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/katalvlaran/pathviz/config"
	"github.com/katalvlaran/pathviz/render"
	"github.com/katalvlaran/pathviz/shortestpath"
	"github.com/katalvlaran/pathviz/vertex"
)

type keyMap struct {
	Pause, Step, Finish, Quit key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Pause, k.Step, k.Finish, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

var keys = keyMap{
	Pause:  key.NewBinding(key.WithKeys(" ", "space"), key.WithHelp("space", "pause")),
	Step:   key.NewBinding(key.WithKeys("n", "N"), key.WithHelp("n", "step")),
	Finish: key.NewBinding(key.WithKeys("f", "F"), key.WithHelp("f", "finish")),
	Quit:   key.NewBinding(key.WithKeys("q", "Q", "ctrl+c", "esc"), key.WithHelp("q", "quit")),
}

// tickMsg requests one step. gen discards ticks scheduled before the last
// pause, so resuming never doubles the step rate.
type tickMsg struct {
	gen int
}

// Model is the bubbletea model of one animated search.
type Model struct {
	plan     *config.Plan
	engine   *shortestpath.Engine[vertex.Name]
	renderer *render.Renderer
	delay    time.Duration
	help     help.Model

	gen      int
	paused   bool
	quitting bool
}

// New builds a model for plan. opts are passed to the engine.
func New(plan *config.Plan, theme render.Theme, opts ...shortestpath.Option[vertex.Name]) Model {
	return Model{
		plan:     plan,
		engine:   plan.NewEngine(opts...),
		renderer: render.New(theme),
		delay:    plan.Delay,
		help:     help.New(),
	}
}

// Engine returns the engine driven by the model.
func (m Model) Engine() *shortestpath.Engine[vertex.Name] { return m.engine }

// Paused reports whether ticks are suspended.
func (m Model) Paused() bool { return m.paused }

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) tick() tea.Cmd {
	gen := m.gen
	return tea.Tick(m.delay, func(time.Time) tea.Msg { return tickMsg{gen: gen} })
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		if msg.gen != m.gen || m.paused || m.engine.Done() {
			return m, nil
		}
		if m.engine.Step() == shortestpath.Finished {
			return m, nil
		}
		return m, m.tick()

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, keys.Pause):
			m.paused = !m.paused
			m.gen++
			if !m.paused && !m.engine.Done() {
				return m, m.tick()
			}

		case key.Matches(msg, keys.Step):
			if m.paused {
				m.engine.Step()
			}

		case key.Matches(msg, keys.Finish):
			m.engine.Run()
		}

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	snap := m.engine.Snapshot()
	cost := math.Inf(1)
	if snap.Path != nil {
		cost = shortestpath.PathCost(m.plan.Graph, snap.Path)
	}

	state := "running"
	switch {
	case m.engine.Done():
		state = "done"
	case m.paused:
		state = "paused"
	}
	title := fmt.Sprintf("%s  [%s, %s]  %s", m.plan.Name, m.plan.Representation, m.plan.Algorithm, state)

	return m.renderer.Frame(title, m.plan.Algorithm.String(), m.plan.Grid, snap, cost) +
		"\n" + m.help.View(keys) + "\n"
}

// Run animates plan until the user quits or ctx is cancelled, and returns
// the final model.
func Run(ctx context.Context, plan *config.Plan, opts ...shortestpath.Option[vertex.Name]) (Model, error) {
	p := tea.NewProgram(New(plan, render.DefaultTheme(), opts...),
		tea.WithContext(ctx),
		tea.WithAltScreen(),
	)
	final, err := p.Run()
	if err != nil {
		return Model{}, fmt.Errorf("tui: %w", err)
	}

	return final.(Model), nil
}
