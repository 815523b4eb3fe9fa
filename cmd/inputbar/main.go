package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"syscall"
	"time"

	"gioui.org/app"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/esimov/inputbar"
	"github.com/esimov/inputbar/gioview"
	"github.com/esimov/inputbar/tui"
	"github.com/esimov/inputbar/utils"
	"github.com/esimov/inputbar/watcher"
	"golang.org/x/term"
)

const HelpBanner = `
┬┌┐┌┌─┐┬ ┬┌┬┐┌┐ ┌─┐┬─┐
││││├─┘│ │ │ ├┴┐├─┤├┬┘
┴┘└┘┴  └─┘ ┴ └─┘┴ ┴┴└─

Conversation input bar layout.
    Version: %s

`

// pipeName is the file name that indicates stdout is being used.
const pipeName = "-"

// validExtensions lists the image formats a bar can be rendered to.
var validExtensions = []string{".png", ".jpg", ".jpeg", ".bmp", ".gif", ".tif", ".tiff"}

// Version indicates the current build version.
var Version string

var (
	// Flags
	configPath  = flag.String("config", "", "YAML configuration file")
	width       = flag.Float64("width", 320, "Container width in points, 0 to use the terminal width")
	row         = flag.Int("row", 0, "Row to show (0 or 1)")
	destination = flag.String("out", "", "Render the bar into this image file, or - for stdout")
	scale       = flag.Float64("scale", 1, "Pixels per point of the rendered image")
	constraints = flag.Bool("constraints", false, "Print the applied constraints")
	gui         = flag.Bool("gui", false, "Preview the bar in a window")
	terminal    = flag.Bool("tui", false, "Preview the bar in the terminal")
	watch       = flag.Bool("watch", false, "Reload the preview when the config file changes")
	sweep       = flag.String("sweep", "", "Render a range of widths given as from:to:step")
	directory   = flag.String("dir", "bars", "Destination directory of the sweep")
	workers     = flag.Int("conc", runtime.NumCPU(), "Number of widths to render concurrently")
)

func main() {
	log.SetFlags(0)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, HelpBanner, Version)
		flag.PrintDefaults()
	}
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fatal("Failed to load the configuration: %v", err)
	}
	if *watch && *configPath == "" {
		fatal("Invalid flags: %v", errors.New("-watch needs a -config file"))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	switch {
	case *gui:
		runGUI(ctx, cfg)
	case *terminal:
		if err := runTUI(ctx, cfg); err != nil {
			fatal("Terminal preview failed: %v", err)
		}
	case *sweep != "":
		if err := runSweep(ctx, cfg); err != nil {
			fatal("Sweep failed: %v", err)
		}
	default:
		if err := runLayout(cfg); err != nil {
			fatal("Layout failed: %v", err)
		}
	}
}

func loadConfig(path string) (*inputbar.Config, error) {
	if path == "" {
		return inputbar.DefaultConfig(), nil
	}
	return inputbar.LoadConfig(path)
}

// containerWidth returns the -width flag, or the terminal width when it is 0.
func containerWidth() float64 {
	if *width > 0 {
		return *width
	}
	cols, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || cols <= 0 {
		return 320
	}
	return float64(cols * inputbar.LabelAdvance)
}

// runLayout lays out the bar once, reports the placements and renders the
// snapshot when a destination is given.
func runLayout(cfg *inputbar.Config) error {
	v, _, err := cfg.View()
	if err != nil {
		return err
	}
	w := containerWidth()
	update, err := v.Layout(w)
	if err != nil {
		return err
	}
	if v.Multiline() {
		v.ShowRow(*row, false)
	}

	fmt.Fprintf(os.Stderr, "%s %s\n",
		utils.DecorateText("⚡ INPUTBAR", utils.StatusMessage),
		utils.DecorateText(fmt.Sprintf("width %spt, %d row(s), capacity %d", utils.FormatPoints(w), len(update.Packing.Rows), update.Packing.Capacity), utils.DefaultMessage),
	)
	for _, p := range v.Placements() {
		pinned := ""
		if p.Frame.Pinned {
			pinned = " pinned"
		}
		fmt.Fprintf(os.Stderr, "  row %d  %-10s %s %s%s\n", p.Row, inputbar.Title(p.Button), p.Frame.Rect, p.Style.Alignment, pinned)
	}
	if *constraints {
		fmt.Fprintln(os.Stderr, v.Constraints())
	}

	if *destination == "" {
		return nil
	}
	if ext := strings.ToLower(filepath.Ext(*destination)); *destination != pipeName && !utils.Contains(validExtensions, ext) {
		return fmt.Errorf("%v file type not supported", ext)
	}
	th, err := cfg.Theme.Resolve()
	if err != nil {
		return err
	}
	img, err := inputbar.Snapshot(v, th, inputbar.SnapshotOptions{Scale: *scale})
	if err != nil {
		return err
	}

	var dst io.Writer
	if *destination == pipeName {
		if term.IsTerminal(int(os.Stdout.Fd())) {
			return errors.New("`-` should be used with a pipe for stdout")
		}
		dst = os.Stdout
	} else {
		f, err := os.Create(*destination)
		if err != nil {
			return fmt.Errorf("unable to create the destination file: %w", err)
		}
		defer f.Close()
		dst = f
	}
	if err := inputbar.Encode(dst, img, *destination); err != nil {
		return err
	}
	if *destination != pipeName {
		fmt.Fprintf(os.Stderr, "\nThe input bar has been saved as: %s\n",
			utils.DecorateText(filepath.Base(*destination), utils.SuccessMessage),
		)
	}
	return nil
}

// parseSweep parses a from:to:step range.
func parseSweep(s string) (from, to, step float64, err error) {
	parts := strings.Split(s, ":")
	if len(parts) != 3 {
		return 0, 0, 0, fmt.Errorf("invalid sweep %q, expected from:to:step", s)
	}
	var vals [3]float64
	for i, p := range parts {
		if vals[i], err = strconv.ParseFloat(strings.TrimSpace(p), 64); err != nil {
			return 0, 0, 0, fmt.Errorf("invalid sweep %q: %w", s, err)
		}
	}
	return vals[0], vals[1], vals[2], nil
}

func runSweep(ctx context.Context, cfg *inputbar.Config) error {
	from, to, step, err := parseSweep(*sweep)
	if err != nil {
		return err
	}

	msg := fmt.Sprintf("%s %s",
		utils.DecorateText("⚡ INPUTBAR", utils.StatusMessage),
		utils.DecorateText("is rendering the widths...", utils.DefaultMessage))
	spinner := utils.NewSpinner(os.Stderr, msg, time.Millisecond*100, true)
	defer spinner.RestoreCursor()

	now := time.Now()
	spinner.Start()

	var failed []inputbar.SweepResult
	rendered := 0
	err = inputbar.Sweep(ctx, cfg, inputbar.SweepOptions{
		Dir:     *directory,
		From:    from,
		To:      to,
		Step:    step,
		Row:     *row,
		Workers: *workers,
		Scale:   *scale,
	}, func(res inputbar.SweepResult) {
		if res.Err != nil {
			failed = append(failed, res)
			return
		}
		rendered++
		spinner.Update(fmt.Sprintf("%s %s",
			utils.DecorateText("⚡ INPUTBAR", utils.StatusMessage),
			utils.DecorateText(fmt.Sprintf("rendered %s", filepath.Base(res.Path)), utils.DefaultMessage)))
	})

	spinner.StopMsg = fmt.Sprintf("%s %s\n",
		utils.DecorateText("⚡ INPUTBAR", utils.StatusMessage),
		utils.DecorateText(fmt.Sprintf("rendered %d width(s) into %s ✔", rendered, *directory), utils.DefaultMessage))
	spinner.Stop()

	for _, res := range failed {
		fmt.Fprintf(os.Stderr, "%s %s\n",
			utils.DecorateText(fmt.Sprintf("Error rendering width %v:", res.Width), utils.ErrorMessage),
			utils.DecorateText(res.Err.Error(), utils.DefaultMessage),
		)
	}
	fmt.Fprintf(os.Stderr, "\nExecution time: %s\n", utils.DecorateText(utils.FormatTime(time.Since(now)), utils.SuccessMessage))

	if err != nil {
		return err
	}
	if len(failed) > 0 {
		return fmt.Errorf("%d width(s) failed", len(failed))
	}
	return nil
}

func runTUI(ctx context.Context, cfg *inputbar.Config) error {
	m, err := tui.New(cfg)
	if err != nil {
		return err
	}
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))

	if *watch {
		go func() {
			err := watcher.Watch(ctx, *configPath, watcher.DefaultDelay, func(cfg *inputbar.Config, err error) {
				p.Send(tui.ConfigMsg{Config: cfg, Err: err})
			})
			if err != nil {
				p.Send(tui.ConfigMsg{Err: err})
			}
		}()
	}

	_, err = p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}

// runGUI opens the preview window. Gio owns the main goroutine, so the
// window loop runs on its own and exits the process when it returns.
func runGUI(ctx context.Context, cfg *inputbar.Config) {
	var reload chan *inputbar.Config
	if *watch {
		reload = make(chan *inputbar.Config)
		go func() {
			err := watcher.Watch(ctx, *configPath, watcher.DefaultDelay, forwardReload(ctx, reload))
			if err != nil {
				log.Print(utils.DecorateText(fmt.Sprintf("Watcher stopped: %v", err), utils.ErrorMessage))
			}
		}()
	}

	go func() {
		win := gioview.NewWindow(containerWidth())
		if err := win.Run(cfg, reload); err != nil {
			fatal("Preview failed: %v", err)
		}
		os.Exit(0)
	}()
	app.Main()
}

// forwardReload returns a watch callback handing reloaded configurations to
// the window. reload is never closed: a debounced reload may still fire
// after the watcher returns, and it gives up once ctx is done.
func forwardReload(ctx context.Context, reload chan<- *inputbar.Config) func(*inputbar.Config, error) {
	return func(cfg *inputbar.Config, err error) {
		if err != nil {
			log.Print(utils.DecorateText(fmt.Sprintf("Reload failed: %v", err), utils.ErrorMessage))
			return
		}
		select {
		case <-ctx.Done():
		case reload <- cfg:
		}
	}
}

func fatal(format string, err error) {
	log.Fatalf("%s%s",
		utils.DecorateText(fmt.Sprintf(format, err), utils.ErrorMessage),
		utils.DefaultColor,
	)
}
