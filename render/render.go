// Package render draws a gridmap.Grid with an optional path and goal,
// either as text (one rune per cell) or as a PNG image.
//
// PNG colours follow the map viewer: white walkable cells, black obstacles,
// gray cell outlines, a green start, a red goal and blue path markers.
package render

import (
	"bufio"
	"errors"
	"fmt"
	"image/color"
	"io"

	"github.com/fogleman/gg"
	"github.com/katalvlaran/gridpath/gridmap"
)

var (
	// ErrBadCellSize indicates a non-positive cell size for PNG output.
	ErrBadCellSize = errors.New("render: cell size must be positive")
	// ErrImageTooLarge indicates the PNG would exceed MaxPixels.
	ErrImageTooLarge = errors.New("render: image too large")
)

const (
	// DefaultCellSize is the pixel size of one cell.
	DefaultCellSize = 30
	// MaxPixels bounds width×height of a PNG (64 MiB of RGBA).
	MaxPixels = 16 << 20
)

// Text symbols.
const (
	SymbolFloor    = '.'
	SymbolObstacle = '#'
	SymbolPath     = '*'
	SymbolStart    = 'S'
	SymbolGoal     = 'G'
)

// Overlay is what is drawn on top of the grid.
type Overlay struct {
	Path []gridmap.Cell // cells to highlight; may be nil
	Goal *gridmap.Cell  // selected destination; nil when none
}

// Text writes the grid as rows of symbols. Start and goal win over path marks.
func Text(w io.Writer, g *gridmap.Grid, ov Overlay) error {
	onPath := make(map[gridmap.Cell]struct{}, len(ov.Path))
	for _, c := range ov.Path {
		onPath[c] = struct{}{}
	}

	bw := bufio.NewWriter(w)
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			c := gridmap.Cell{X: x, Y: y}
			sym := byte(SymbolFloor)
			if !g.IsWalkable(c) {
				sym = SymbolObstacle
			}
			if _, ok := onPath[c]; ok {
				sym = SymbolPath
			}
			switch {
			case ov.Goal != nil && c == *ov.Goal:
				sym = SymbolGoal
			case c == g.Start():
				sym = SymbolStart
			}
			bw.WriteByte(sym)
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

var (
	colorFloor    = color.White
	colorObstacle = color.Black
	colorOutline  = color.Gray{Y: 0x80}
	colorStart    = color.RGBA{G: 0xff, A: 0xff}
	colorGoal     = color.RGBA{R: 0xff, A: 0xff}
	colorPath     = color.RGBA{B: 0xff, A: 0xff}
)

// Size returns the pixel dimensions of the PNG for g at cellSize.
// It fails with ErrBadCellSize or ErrImageTooLarge before anything is allocated.
func Size(g *gridmap.Grid, cellSize int) (width, height int, err error) {
	if cellSize < 1 {
		return 0, 0, fmt.Errorf("%w: %d", ErrBadCellSize, cellSize)
	}
	w, h := int64(g.Width())*int64(cellSize), int64(g.Height())*int64(cellSize)
	if w > MaxPixels || h > MaxPixels || w*h > MaxPixels {
		return 0, 0, fmt.Errorf("%w: %dx%d pixels, limit %d", ErrImageTooLarge, w, h, MaxPixels)
	}
	return int(w), int(h), nil
}

// draw paints the grid and overlay onto a fresh context.
func draw(g *gridmap.Grid, ov Overlay, cellSize int) (*gg.Context, error) {
	w, h, err := Size(g, cellSize)
	if err != nil {
		return nil, err
	}
	cs := float64(cellSize)
	dc := gg.NewContext(w, h)
	dc.SetLineWidth(1)

	// 1) Cells with outlines.
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			var fill color.Color = colorFloor
			if !g.IsWalkable(gridmap.Cell{X: x, Y: y}) {
				fill = colorObstacle
			}
			dc.DrawRectangle(float64(x)*cs, float64(y)*cs, cs, cs)
			dc.SetColor(fill)
			dc.FillPreserve()
			dc.SetColor(colorOutline)
			dc.Stroke()
		}
	}

	// 2) Start and goal squares.
	square := func(c gridmap.Cell, col color.Color) {
		dc.DrawRectangle(float64(c.X)*cs, float64(c.Y)*cs, cs, cs)
		dc.SetColor(col)
		dc.Fill()
	}
	square(g.Start(), colorStart)
	if ov.Goal != nil && g.InBounds(*ov.Goal) {
		square(*ov.Goal, colorGoal)
	}

	// 3) Path markers inset by 1/6 of a cell (5px at the default size).
	inset := cs / 6
	r := cs/2 - inset
	dc.SetColor(colorPath)
	for _, c := range ov.Path {
		dc.DrawEllipse(float64(c.X)*cs+cs/2, float64(c.Y)*cs+cs/2, r, r)
		dc.Fill()
	}

	return dc, nil
}

// PNG encodes the grid and overlay as a PNG image to w.
func PNG(w io.Writer, g *gridmap.Grid, ov Overlay, cellSize int) error {
	dc, err := draw(g, ov, cellSize)
	if err != nil {
		return err
	}
	return dc.EncodePNG(w)
}

// SavePNG writes the PNG image to the file at path.
func SavePNG(path string, g *gridmap.Grid, ov Overlay, cellSize int) error {
	dc, err := draw(g, ov, cellSize)
	if err != nil {
		return err
	}
	if err = dc.SavePNG(path); err != nil {
		return fmt.Errorf("render: save %s: %w", path, err)
	}
	return nil
}
