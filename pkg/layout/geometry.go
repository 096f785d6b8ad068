// Package layout implements the page-layout engine for diary generation.
//
// The engine computes geometry only: it wraps text into lines, partitions
// bounding boxes into grids, and threads a vertical cursor down a column.
// It never draws. Callers take the computed coordinates to a drawing sink.
//
// All coordinates are PDF points with the origin at the bottom-left corner
// of the page and y growing upward. Moving "down" the page means decreasing
// y. Sinks with a different native origin convert at the boundary.
package layout

// Cm is the number of PDF points per centimeter.
const Cm = 72.0 / 2.54

// A4 page dimensions in points.
const (
	A4Width  = 595.2755905511812
	A4Height = 841.8897637795277
)

// Rect is an axis-aligned rectangle anchored at its bottom-left corner.
type Rect struct {
	X, Y float64 // bottom-left corner
	W, H float64
}

// Top returns the y-coordinate of the top edge.
func (r Rect) Top() float64 { return r.Y + r.H }

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 { return r.X + r.W }

// CenterX returns the horizontal center of the rectangle.
func (r Rect) CenterX() float64 { return r.X + r.W/2 }

// CenterY returns the vertical center of the rectangle.
func (r Rect) CenterY() float64 { return r.Y + r.H/2 }

// Page describes one physical page: outer dimensions plus a uniform margin.
// All placed content must stay within [Margin, dimension-Margin] on both axes.
type Page struct {
	Width  float64
	Height float64
	Margin float64
}

// A4Page returns an A4 page with the given margin.
func A4Page(margin float64) Page {
	return Page{Width: A4Width, Height: A4Height, Margin: margin}
}

// Content returns the printable area inside the margins.
func (p Page) Content() Rect {
	return Rect{
		X: p.Margin,
		Y: p.Margin,
		W: p.Width - 2*p.Margin,
		H: p.Height - 2*p.Margin,
	}
}
