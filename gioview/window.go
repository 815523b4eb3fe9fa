package gioview

import (
	"fmt"
	"sync"

	"gioui.org/app"
	"gioui.org/io/key"
	"gioui.org/io/system"
	"gioui.org/op"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"github.com/esimov/inputbar"
)

// Window previews a configured input bar in a resizable native window.
type Window struct {
	Title  string
	Width  float32
	Height float32

	mu      sync.Mutex
	pending *inputbar.Config
}

// NewWindow returns a preview window sized for a bar of the given width.
func NewWindow(width float64) *Window {
	return &Window{
		Title:  "Input bar preview",
		Width:  float32(width),
		Height: 160,
	}
}

// Run opens the window and blocks until it is closed. Configurations
// received on reload replace the displayed bar; reload may be nil.
// It must be called from a goroutine other than the one running app.Main.
func (w *Window) Run(cfg *inputbar.Config, reload <-chan *inputbar.Config) error {
	bar, err := newBar(cfg)
	if err != nil {
		return err
	}

	win := new(app.Window)
	win.Option(
		app.Title(w.Title),
		app.Size(unit.Dp(w.Width), unit.Dp(w.Height)),
	)

	if reload != nil {
		go func() {
			for cfg := range reload {
				w.mu.Lock()
				w.pending = cfg
				w.mu.Unlock()
				win.Invalidate()
			}
		}()
	}

	var ops op.Ops
	for {
		switch e := win.Event().(type) {
		case app.DestroyEvent:
			return e.Err
		case app.FrameEvent:
			gtx := app.NewContext(&ops, e)

			if cfg := w.takePending(); cfg != nil {
				if b, err := newBar(cfg); err == nil {
					bar = b
				}
			}

			for {
				ev, ok := gtx.Event(
					key.Filter{Name: key.NameEscape},
					key.Filter{Name: key.NameTab},
				)
				if !ok {
					break
				}
				if ke, ok := ev.(key.Event); ok && ke.State == key.Press {
					switch ke.Name {
					case key.NameEscape:
						win.Perform(system.ActionClose)
					case key.NameTab:
						bar.View().Press(bar.View().ExpandButton())
						gtx.Execute(op.InvalidateCmd{})
					}
				}
			}

			paint.Fill(gtx.Ops, bar.palette.Separator)
			bar.Layout(gtx)
			e.Frame(gtx.Ops)
		}
	}
}

func (w *Window) takePending() *inputbar.Config {
	w.mu.Lock()
	defer w.mu.Unlock()
	cfg := w.pending
	w.pending = nil
	return cfg
}

func newBar(cfg *inputbar.Config) (*Bar, error) {
	th, err := cfg.Theme.Resolve()
	if err != nil {
		return nil, fmt.Errorf("could not resolve the theme: %w", err)
	}
	v, _, err := cfg.View()
	if err != nil {
		return nil, err
	}
	return NewBar(v, th), nil
}
