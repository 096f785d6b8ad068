package layout

import "github.com/paperpress/daybook/pkg/errors"

// Origin selects which corner of the bounding box cell (0,0) is anchored to.
//
// Calendar grids address weeks top-down (row 0 is the first week at the top
// of the box); the vision board builds its boxes bottom-up from the margin.
// The caller picks the convention, the grid only does the arithmetic.
type Origin int

const (
	// OriginTopLeft places row 0 at the top edge of the box.
	OriginTopLeft Origin = iota
	// OriginBottomLeft places row 0 at the bottom edge of the box.
	OriginBottomLeft
)

// Grid partitions a bounding box into rows x cols equal cells with no gaps
// and no overlaps. Cell width is Box.W/cols and cell height Box.H/rows, so
// the cells tile the box exactly. Grid is a value object; copy it freely.
type Grid struct {
	Box    Rect
	Rows   int
	Cols   int
	Origin Origin
}

// NewGrid computes a grid over box. It returns an INVALID_LAYOUT error when
// rows or cols is not positive; that is a programmer error in the caller.
func NewGrid(box Rect, rows, cols int, origin Origin) (Grid, error) {
	if rows <= 0 || cols <= 0 {
		return Grid{}, errors.New(errors.ErrCodeInvalidLayout,
			"grid needs positive dimensions, got %dx%d", rows, cols)
	}
	return Grid{Box: box, Rows: rows, Cols: cols, Origin: origin}, nil
}

// CellWidth returns the width of every cell.
func (g Grid) CellWidth() float64 { return g.Box.W / float64(g.Cols) }

// CellHeight returns the height of every cell.
func (g Grid) CellHeight() float64 { return g.Box.H / float64(g.Rows) }

// NumCells returns rows*cols.
func (g Grid) NumCells() int { return g.Rows * g.Cols }

// Cell returns the rectangle of the cell at (row, col). Columns always run
// left to right; the row direction follows the grid's origin. The caller
// must keep row and col within the grid's dimensions.
func (g Grid) Cell(row, col int) Rect {
	cw, ch := g.CellWidth(), g.CellHeight()
	x := g.Box.X + float64(col)*cw

	var y float64
	switch g.Origin {
	case OriginBottomLeft:
		y = g.Box.Y + float64(row)*ch
	default: // OriginTopLeft
		y = g.Box.Top() - float64(row+1)*ch
	}
	return Rect{X: x, Y: y, W: cw, H: ch}
}
