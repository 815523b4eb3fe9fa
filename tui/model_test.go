package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/esimov/inputbar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	require.True(t, ok)
	return model, cmd
}

func newModel(t *testing.T, cols int) Model {
	t.Helper()
	m, err := New(inputbar.DefaultConfig())
	require.NoError(t, err)
	m.view.Duration = 0
	m, _ = update(t, m, tea.WindowSizeMsg{Width: cols, Height: 10})
	require.NoError(t, m.Err())
	return m
}

func TestModel_BeforeSize(t *testing.T) {
	m, err := New(inputbar.DefaultConfig())
	require.NoError(t, err)
	assert.Nil(t, m.Init())
	assert.Equal(t, "laying out...", m.View())
}

func TestModel_FirstRow(t *testing.T) {
	m := newModel(t, 46)

	assert.Equal(t, 322.0, m.InputBar().Width())
	assert.True(t, m.InputBar().Multiline())

	out := m.View()
	assert.Contains(t, out, "Photo")
	assert.Contains(t, out, "Giphy")
	assert.Contains(t, out, inputbar.ExpandTitle)
	assert.NotContains(t, out, "Video")
	assert.Contains(t, out, "row 1/2")
}

func TestModel_ToggleRows(t *testing.T) {
	m := newModel(t, 46)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, 1, m.InputBar().CurrentRow())
	out := m.View()
	assert.Contains(t, out, "File")
	assert.Contains(t, out, "Video")
	assert.Contains(t, out, inputbar.ExpandTitle)
	assert.NotContains(t, out, "Photo")
	assert.Contains(t, out, "row 2/2")
	assert.Contains(t, out, "pressed "+inputbar.ExpandTitle)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("1")})
	assert.Equal(t, 0, m.InputBar().CurrentRow())
	assert.Contains(t, m.View(), "pressed File")
}

func TestModel_NumberOutOfRange(t *testing.T) {
	m := newModel(t, 46)

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("9")})
	assert.Nil(t, cmd)
	assert.NotContains(t, m.View(), "pressed")
}

func TestModel_AnimatedTick(t *testing.T) {
	m, err := New(inputbar.DefaultConfig())
	require.NoError(t, err)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 46, Height: 10})

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.NotNil(t, cmd)

	_, cmd = update(t, m, tickMsg(time.Now().Add(time.Second)))
	assert.Nil(t, cmd)
}

func TestModel_Quit(t *testing.T) {
	m := newModel(t, 46)

	_, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestModel_Reload(t *testing.T) {
	m := newModel(t, 46)

	cfg := inputbar.DefaultConfig()
	cfg.Buttons = cfg.Buttons[:2]
	m, _ = update(t, m, ConfigMsg{Config: cfg})
	require.NoError(t, m.Err())
	assert.False(t, m.InputBar().Multiline())
	assert.Contains(t, m.View(), "row 1/1")

	m, _ = update(t, m, ConfigMsg{Err: assert.AnError})
	assert.ErrorIs(t, m.Err(), assert.AnError)
	assert.Contains(t, m.View(), "error:")
}
