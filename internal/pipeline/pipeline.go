// Package pipeline runs the complete batch: resolve the logo once,
// compose one symbol per item, paginate, and hand the paged document to
// the caller for emission. It is shared by the CLI and the HTTP API.
package pipeline

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/youruser/qrgrid/internal/config"
	imagepkg "github.com/youruser/qrgrid/internal/image"
	"github.com/youruser/qrgrid/internal/layout"
)

// Options configures a batch run.
type Options struct {
	Config  *config.Config
	Workers int // compose fan-out limit; 0 means NumCPU
}

// Result is the paged document plus run statistics.
type Result struct {
	Document layout.Document
	Items    int
	Pages    int
	Elapsed  time.Duration
}

// StyleFrom builds the render style from the configuration strings.
func StyleFrom(cfg *config.Config) (imagepkg.Style, error) {
	style := imagepkg.DefaultStyle()
	shape, err := imagepkg.ParseShape(cfg.ModuleShape)
	if err != nil {
		return imagepkg.Style{}, err
	}
	mode, err := imagepkg.ParseColorMode(cfg.ColorMode)
	if err != nil {
		return imagepkg.Style{}, err
	}
	style.Shape = shape
	style.Color = mode
	return style, nil
}

// Run executes the batch. The grid is validated before any network or
// raster work; the first failing item aborts the run, so either the full
// document comes back or none does. Compositions fan out across workers
// but land in batch order regardless of completion order.
func Run(ctx context.Context, logger *log.Logger, opts Options) (*Result, error) {
	start := time.Now()
	cfg := opts.Config

	cell := layout.CellSpec{
		Width:       cfg.CellWidth,
		Height:      cfg.CellHeight,
		LabelHeight: cfg.LabelHeight,
	}
	page := layout.PageSpec{
		Width:  cfg.PageWidth,
		Height: cfg.PageHeight,
		Margin: cfg.Margin,
	}
	grid, err := layout.NewGrid(cell, page)
	if err != nil {
		return nil, err
	}
	logger.Debug("grid computed", "cols", grid.Cols, "rows", grid.Rows)

	style, err := StyleFrom(cfg)
	if err != nil {
		return nil, err
	}

	logo, err := imagepkg.DownloadLogo(ctx, cfg.Logo)
	if err != nil {
		return nil, err
	}
	logger.Info("logo resolved", "ref", cfg.Logo)

	warnOversizedLogo(logger, cfg, style)

	cells := make([]layout.Cell, len(cfg.Items))
	g, gctx := errgroup.WithContext(ctx)
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	g.SetLimit(workers)
	for i, item := range cfg.Items {
		i, item := i, item
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			img, err := imagepkg.Compose(item.URL, logo, style,
				cfg.CellWidth, cfg.CellHeight, cfg.LogoWidth, cfg.LogoHeight)
			if err != nil {
				return fmt.Errorf("item %d (%s): %w", i, item.URL, err)
			}
			cells[i] = layout.Cell{Image: img, Label: item.Name}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	logger.Info(fmt.Sprintf("composed %d codes", len(cells)))

	document, err := layout.Paginate(cells, cell, page)
	if err != nil {
		return nil, err
	}
	return &Result{
		Document: document,
		Items:    len(cells),
		Pages:    len(document.Pages),
		Elapsed:  time.Since(start),
	}, nil
}

// warnOversizedLogo flags a logo that would cover more of the symbol than
// readers tolerate. The composer does not clamp, so this is the one place
// the boundary is surfaced. The probe uses the first item's symbol size.
func warnOversizedLogo(logger *log.Logger, cfg *config.Config, style imagepkg.Style) {
	if len(cfg.Items) == 0 {
		return
	}
	m, err := imagepkg.EncodeMatrix(cfg.Items[0].URL)
	if err != nil {
		return // the compose step will report it with item context
	}
	raster := style.RasterWidth(m)
	limit := int(imagepkg.MaxLogoRatio * float64(raster))
	if cfg.LogoWidth > limit || cfg.LogoHeight > limit {
		logger.Warn("logo exceeds safe coverage, codes may not scan",
			"logo", fmt.Sprintf("%dx%d", cfg.LogoWidth, cfg.LogoHeight),
			"raster", raster, "limit", limit)
	}
}
