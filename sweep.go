package inputbar

import (
	"context"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"runtime"

	"github.com/esimov/inputbar/utils"
	"golang.org/x/sync/errgroup"
)

// maxWorkers sets the maximum number of concurrently running workers.
const maxWorkers = 20

// Widths are kept to hundredths of a point, the precision of the file names.
const (
	widthScale = 100
	minStep    = 1.0 / widthScale
)

// SweepOptions describes a range of container widths to render.
type SweepOptions struct {
	Dir      string
	From, To float64
	Step     float64
	// Row is the row shown in each snapshot.
	Row     int
	Workers int
	Scale   float64
	// Ext is the image file extension, ".png" by default.
	Ext string
}

// SweepResult holds the outcome of rendering one width.
type SweepResult struct {
	Width     float64
	Path      string
	Multiline bool
	Err       error
}

// Widths returns the widths covered by the options, in increasing order.
func (o SweepOptions) Widths() ([]float64, error) {
	if o.From <= 0 || o.To < o.From {
		return nil, fmt.Errorf("invalid width range %v:%v", o.From, o.To)
	}
	if o.Step <= 0 {
		return nil, errors.New("width step must be positive")
	}
	if o.Step < minStep {
		return nil, fmt.Errorf("width step must be at least %v", minStep)
	}
	n := int(math.Floor((o.To-o.From)/o.Step+epsilon)) + 1
	widths := make([]float64, n)
	for i := range widths {
		widths[i] = math.Round((o.From+float64(i)*o.Step)*widthScale) / widthScale
	}
	return widths, nil
}

// Sweep renders one snapshot per width into opts.Dir, running at most
// opts.Workers renders at once; each render builds its own view.
// fn is called once per width from a single goroutine. A failed width is
// reported through its result and does not stop the sweep; Sweep itself
// fails on invalid options, when the destination cannot be created or
// when ctx is cancelled.
func Sweep(ctx context.Context, cfg *Config, opts SweepOptions, fn func(SweepResult)) error {
	widths, err := opts.Widths()
	if err != nil {
		return err
	}
	th, err := cfg.Theme.Resolve()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(opts.Dir, 0o755); err != nil {
		return fmt.Errorf("unable to create the destination directory: %w", err)
	}
	if opts.Ext == "" {
		opts.Ext = ".png"
	}

	// Limit the concurrently running workers to maxWorkers.
	workers := opts.Workers
	if workers <= 0 || workers > maxWorkers {
		workers = runtime.NumCPU()
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	results := make(chan SweepResult)

	done := make(chan struct{})
	go func() {
		defer close(done)
		for res := range results {
			if fn != nil {
				fn(res)
			}
		}
	}()

	for _, w := range widths {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			res := renderWidth(cfg, th, opts, w)
			select {
			case <-gctx.Done():
				return gctx.Err()
			case results <- res:
			}
			return nil
		})
	}

	err = g.Wait()
	close(results)
	<-done
	if ctx.Err() != nil {
		return ctx.Err()
	}
	return err
}

// renderWidth lays out a fresh view at width w and writes its snapshot.
func renderWidth(cfg *Config, th Theme, opts SweepOptions, w float64) SweepResult {
	res := SweepResult{
		Width: w,
		Path:  filepath.Join(opts.Dir, "bar_"+utils.FormatPoints(w)+opts.Ext),
	}

	v, _, err := cfg.View()
	if err != nil {
		res.Err = err
		return res
	}
	if _, err := v.Layout(w); err != nil {
		res.Err = err
		return res
	}
	res.Multiline = v.Multiline()
	if opts.Row > 0 && v.Multiline() {
		v.ShowRow(opts.Row, false)
	}

	img, err := Snapshot(v, th, SnapshotOptions{Scale: opts.Scale})
	if err != nil {
		res.Err = err
		return res
	}

	f, err := os.Create(res.Path)
	if err != nil {
		res.Err = fmt.Errorf("unable to create the destination file: %w", err)
		return res
	}
	if err := Encode(f, img, res.Path); err != nil {
		f.Close()
		res.Err = err
		return res
	}
	res.Err = f.Close()
	return res
}
