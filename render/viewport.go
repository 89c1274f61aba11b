package render

import (
	"math"

	"github.com/lixenwraith/speaki-box/parameter"
)

// Viewport maps terminal cells to the centered y-up simulation plane
type Viewport struct {
	Cols int
	Rows int // drawable rows, status bar excluded
}

// NewViewport derives the drawable area from a full screen size
func NewViewport(cols, rows int) Viewport {
	return Viewport{Cols: max(cols, 0), Rows: max(rows-parameter.StatusBarRows, 0)}
}

func cellHeight() float64 {
	return parameter.PixelsPerColumn * parameter.CellAspect
}

// Extent returns the simulation surface size covered by the viewport
func (v Viewport) Extent() (width, height float64) {
	return float64(v.Cols) * parameter.PixelsPerColumn, float64(v.Rows) * cellHeight()
}

// Contains reports whether a cell lies in the drawable area
func (v Viewport) Contains(col, row int) bool {
	return col >= 0 && col < v.Cols && row >= 0 && row < v.Rows
}

// ToCell returns the cell holding simulation point (x, y)
func (v Viewport) ToCell(x, y float64) (col, row int) {
	w, h := v.Extent()
	col = int(math.Floor((x + w*0.5) / parameter.PixelsPerColumn))
	row = int(math.Floor((h*0.5 - y) / cellHeight()))
	return col, row
}

// FromCell returns the simulation point at the center of a cell
func (v Viewport) FromCell(col, row int) (x, y float64) {
	w, h := v.Extent()
	x = (float64(col)+0.5)*parameter.PixelsPerColumn - w*0.5
	y = h*0.5 - (float64(row)+0.5)*cellHeight()
	return x, y
}
