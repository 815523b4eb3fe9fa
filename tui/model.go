// Package tui previews an input bar in the terminal.
package tui

import (
	"fmt"
	"image/color"
	"sort"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/esimov/inputbar"
	"github.com/esimov/inputbar/utils"
	"github.com/mattn/go-runewidth"
)

// frameInterval is the tick rate while a row change is animated.
const frameInterval = 16 * time.Millisecond

// ConfigMsg replaces the previewed bar.
type ConfigMsg struct {
	Config *inputbar.Config
	Err    error
}

type tickMsg time.Time

// Model is a bubbletea model over an input bar view. A terminal column
// stands for inputbar.LabelAdvance points.
type Model struct {
	view    *inputbar.View
	palette inputbar.Theme
	cols    int
	now     func() time.Time

	pressed string
	err     error
}

// New returns a model previewing cfg.
func New(cfg *inputbar.Config) (Model, error) {
	m := Model{now: time.Now}
	if err := m.load(cfg); err != nil {
		return Model{}, err
	}
	return m, nil
}

func (m *Model) load(cfg *inputbar.Config) error {
	th, err := cfg.Theme.Resolve()
	if err != nil {
		return err
	}
	v, _, err := cfg.View()
	if err != nil {
		return err
	}
	v.Now = m.now
	m.view, m.palette = v, th
	if m.cols > 0 {
		_, err = v.Layout(m.width())
	}
	return err
}

// InputBar returns the previewed view.
func (m Model) InputBar() *inputbar.View {
	return m.view
}

// Err returns the last layout or reload error.
func (m Model) Err() error {
	return m.err
}

func (m Model) width() float64 {
	return float64(m.cols * inputbar.LabelAdvance)
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.cols = msg.Width
		_, m.err = m.view.Layout(m.width())
		return m, nil

	case ConfigMsg:
		if msg.Err != nil {
			m.err = msg.Err
			return m, nil
		}
		prev := m.view
		m.pressed = ""
		if m.err = m.load(msg.Config); m.err != nil {
			m.view = prev
		}
		return m, nil

	case tickMsg:
		if m.view.Animating(time.Time(msg)) {
			return m, tick()
		}
		return m, nil

	case tea.KeyMsg:
		switch key := msg.String(); key {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "tab":
			cmd := m.press(m.view.ExpandButton())
			return m, cmd
		default:
			if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
				visible := m.visible()
				if i := int(key[0] - '1'); i < len(visible) {
					cmd := m.press(visible[i].Button)
					return m, cmd
				}
			}
		}
	}
	return m, nil
}

func (m *Model) press(b inputbar.Button) tea.Cmd {
	m.view.Press(b)
	m.pressed = inputbar.Title(b)
	if m.view.Animating(m.now()) {
		return tick()
	}
	return nil
}

func tick() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// row returns the row closest to the current scroll offset.
func (m Model) row() int {
	c := m.view.Constants()
	return utils.Clamp(utils.Round(m.view.Offset(m.now())/c.BarHeight), 0, 1)
}

// visible returns the buttons on screen, ordered by their position. A
// button covered by the pinned expand control is left out.
func (m Model) visible() []inputbar.Placement {
	row := m.row()
	var (
		out    []inputbar.Placement
		pinned *inputbar.Placement
	)
	for _, p := range m.view.Placements() {
		switch {
		case p.Frame.Pinned:
			pinned = &p
		case p.Row == row:
			out = append(out, p)
		}
	}
	if pinned != nil {
		kept := out[:0]
		for _, p := range out {
			if p.Frame.Rect.X < pinned.Frame.Rect.X {
				kept = append(kept, p)
			}
		}
		out = append(kept, *pinned)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Frame.Rect.X < out[j].Frame.Rect.X })
	return out
}

// View implements tea.Model
func (m Model) View() string {
	if m.cols <= 0 || m.view.Width() <= 0 {
		return "laying out..."
	}

	visible := m.visible()
	cells := make([]string, 0, len(visible))
	for i, p := range visible {
		start := utils.Round(p.Frame.Rect.X / inputbar.LabelAdvance)
		end := utils.Round(p.Frame.Rect.Right() / inputbar.LabelAdvance)
		if i == len(visible)-1 {
			end = utils.Max(end, m.cols)
		}
		cells = append(cells, m.cell(p, utils.Max(1, end-start), i < len(visible)-1))
	}
	bar := lipgloss.JoinHorizontal(lipgloss.Top, cells...)

	status := fmt.Sprintf("row %d/%d  width %vpt", m.row()+1, len(m.view.Packing().Rows), m.view.Width())
	if m.pressed != "" {
		status += "  pressed " + m.pressed
	}
	if m.err != nil {
		status += "  error: " + m.err.Error()
	}
	hint := "[1-9] press  [tab] expand  [q] quit"

	faint := lipgloss.NewStyle().Faint(true)
	return strings.Join([]string{bar, faint.Render(status), faint.Render(hint)}, "\n")
}

// cell renders one button as an icon line above a title line.
func (m Model) cell(p inputbar.Placement, width int, separator bool) string {
	align := lipgloss.Center
	switch p.Style.Alignment {
	case inputbar.AlignLeft:
		align = lipgloss.Left
	case inputbar.AlignRight:
		align = lipgloss.Right
	}

	style := lipgloss.NewStyle().
		Background(hex(m.palette.Background)).
		Align(align)
	if separator && width > 1 {
		style = style.
			Border(lipgloss.NormalBorder(), false, true, false, false).
			BorderForeground(hex(m.palette.Separator))
		width--
	}
	style = style.Width(width)

	icon := lipgloss.NewStyle().Foreground(hex(m.palette.Accent))
	if p.Button == m.view.ExpandButton() {
		return style.Render(icon.Render(inputbar.ExpandTitle) + "\n")
	}

	title := inputbar.Title(p.Button)
	if runewidth.StringWidth(title) > width {
		if p.Style.LineBreak == inputbar.Clip {
			title = runewidth.Truncate(title, width, "")
		} else {
			title = runewidth.Truncate(title, width, "…")
		}
	}
	text := lipgloss.NewStyle().Foreground(hex(m.palette.Foreground))
	return style.Render(icon.Render("■") + "\n" + text.Render(title))
}

func hex(c color.NRGBA) lipgloss.Color {
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B))
}
