// Package layout packs fixed-size rendered cells onto fixed-size pages.
// It is pure arithmetic over specs and slices; all raster work happens
// upstream and all serialization downstream.
package layout

import (
	"errors"
	"fmt"
	"image"
)

// ErrCellTooLarge reports cell and page dimensions that yield a
// degenerate grid. It is raised before any rendering work so that a
// configuration mistake fails fast.
var ErrCellTooLarge = errors.New("cell too large for page")

// CellSpec is the footprint of one grid slot, fixed for a whole batch.
// LabelHeight is 0 when cells carry no label.
type CellSpec struct {
	Width       int
	Height      int
	LabelHeight int
}

// PageSpec is the printable canvas, fixed for a whole batch.
type PageSpec struct {
	Width  int
	Height int
	Margin int
}

// Grid is the per-page geometry derived from a cell and page spec.
type Grid struct {
	Cols int
	Rows int
}

func (g Grid) CellsPerPage() int { return g.Cols * g.Rows }

// NewGrid computes how many columns and rows of cells fit on a page.
// Both must come out at least 1.
func NewGrid(cell CellSpec, page PageSpec) (Grid, error) {
	if cell.Width <= 0 || cell.Height <= 0 || cell.LabelHeight < 0 {
		return Grid{}, fmt.Errorf("%w: invalid cell %dx%d (label %d)",
			ErrCellTooLarge, cell.Width, cell.Height, cell.LabelHeight)
	}
	cols := (page.Width - 2*page.Margin) / cell.Width
	rows := (page.Height - 2*page.Margin) / (cell.Height + cell.LabelHeight)
	if cols < 1 || rows < 1 {
		return Grid{}, fmt.Errorf("%w: %dx%d cell on %dx%d page with margin %d",
			ErrCellTooLarge, cell.Width, cell.Height+cell.LabelHeight,
			page.Width, page.Height, page.Margin)
	}
	return Grid{Cols: cols, Rows: rows}, nil
}

// Cell is one grid slot. A nil Image marks an empty placeholder that
// occupies the slot but carries no content.
type Cell struct {
	Image image.Image
	Label string
}

func (c Cell) Empty() bool { return c.Image == nil }

type Row struct {
	Cells []Cell
}

type Page struct {
	Rows []Row
}

// Document is the ordered pages -> rows -> cells structure handed to the
// emitter. Fill order is row-major, left to right, top to bottom, across
// pages in input order, so cell i always lands at page i/cpp,
// row (i%cpp)/cols, column (i%cpp)%cols for a given grid.
type Document struct {
	Grid  Grid
	Cell  CellSpec
	Page  PageSpec
	Pages []Page
}

// Paginate arranges cells onto pages. Zero cells produce zero pages. A
// partially filled last page is padded with empty placeholders so every
// page keeps uniform grid geometry.
func Paginate(cells []Cell, cell CellSpec, page PageSpec) (Document, error) {
	g, err := NewGrid(cell, page)
	if err != nil {
		return Document{}, err
	}
	doc := Document{Grid: g, Cell: cell, Page: page}
	cpp := g.CellsPerPage()
	for start := 0; start < len(cells); start += cpp {
		chunk := cells[start:min(start+cpp, len(cells))]
		p := Page{Rows: make([]Row, g.Rows)}
		for r := 0; r < g.Rows; r++ {
			row := Row{Cells: make([]Cell, g.Cols)}
			for c := 0; c < g.Cols; c++ {
				if i := r*g.Cols + c; i < len(chunk) {
					row.Cells[c] = chunk[i]
				}
			}
			p.Rows[r] = row
		}
		doc.Pages = append(doc.Pages, p)
	}
	return doc, nil
}
