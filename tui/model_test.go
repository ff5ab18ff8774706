package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathviz/config"
	"github.com/katalvlaran/pathviz/render"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	sc := config.Default()
	sc.Delay = "0s"
	plan, err := sc.Resolve()
	require.NoError(t, err)

	return New(plan, render.Plain())
}

func press(s string) tea.KeyMsg {
	if s == " " {
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	out, ok := next.(Model)
	require.True(t, ok)

	return out, cmd
}

func TestInit_SchedulesTick(t *testing.T) {
	m := newTestModel(t)
	cmd := m.Init()
	require.NotNil(t, cmd)
	assert.Equal(t, tickMsg{gen: 0}, cmd())
}

func TestTick_StepsOnce(t *testing.T) {
	m := newTestModel(t)
	m, cmd := update(t, m, tickMsg{})
	assert.Equal(t, 1, m.Engine().Stats().Steps)
	assert.NotNil(t, cmd, "next tick scheduled")
}

func TestTick_RunsToCompletion(t *testing.T) {
	m := newTestModel(t)
	var cmd tea.Cmd
	for i := 0; i < 10_000 && !m.Engine().Done(); i++ {
		m, cmd = update(t, m, tickMsg{gen: m.gen})
	}
	require.True(t, m.Engine().Done())
	assert.Nil(t, cmd, "no tick after the last step")

	want := m.plan.NewEngine().FindShortestPath()
	assert.Equal(t, want, m.Engine().Path())
	assert.Contains(t, m.View(), "done")
}

func TestPause_IgnoresTicks(t *testing.T) {
	m := newTestModel(t)
	m, cmd := update(t, m, press(" "))
	assert.True(t, m.Paused())
	assert.Nil(t, cmd)

	m, _ = update(t, m, tickMsg{gen: m.gen})
	assert.Zero(t, m.Engine().Stats().Steps)
	assert.Contains(t, m.View(), "paused")

	m, _ = update(t, m, press("n"))
	assert.Equal(t, 1, m.Engine().Stats().Steps)

	m, cmd = update(t, m, press(" "))
	assert.False(t, m.Paused())
	require.NotNil(t, cmd)
	assert.Equal(t, tickMsg{gen: m.gen}, cmd())
}

func TestStaleTickDropped(t *testing.T) {
	m := newTestModel(t)
	m, _ = update(t, m, press(" "))
	m, _ = update(t, m, press(" "))

	m, cmd := update(t, m, tickMsg{gen: 0})
	assert.Zero(t, m.Engine().Stats().Steps)
	assert.Nil(t, cmd)
}

func TestStepKeyIgnoredWhileRunning(t *testing.T) {
	m := newTestModel(t)
	m, _ = update(t, m, press("n"))
	assert.Zero(t, m.Engine().Stats().Steps)
}

func TestFinishKey(t *testing.T) {
	m := newTestModel(t)
	m, _ = update(t, m, press("f"))
	assert.True(t, m.Engine().Done())
	assert.NotNil(t, m.Engine().Path())
}

func TestQuit(t *testing.T) {
	m := newTestModel(t)
	m, cmd := update(t, m, press("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
	assert.Empty(t, m.View())
}

func TestView_ShowsGridAndHelp(t *testing.T) {
	m := newTestModel(t)
	v := m.View()
	assert.Contains(t, v, "demo")
	assert.Contains(t, v, "S...#.....")
	assert.Contains(t, v, "space pause")
}

func TestWindowSize_SetsHelpWidth(t *testing.T) {
	m := newTestModel(t)
	m, cmd := update(t, m, tea.WindowSizeMsg{Width: 40, Height: 20})
	assert.Nil(t, cmd)
	assert.Equal(t, 40, m.help.Width)
}
