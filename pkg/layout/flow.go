package layout

import "github.com/paperpress/daybook/pkg/errors"

// DefaultLineRatio converts a font size into the vertical distance the
// cursor advances per placed text line. Like the character-width ratio this
// is a calibrated tuning value, not a font metric.
const DefaultLineRatio = 1.4

// Flow manages a vertical cursor inside a fixed horizontal band. Content
// blocks (text baselines, ruled lines, boxes) are placed top to bottom; each
// placement returns its geometry and advances the cursor so the next block
// lands below it. The cursor never crosses the bottom bound.
//
// A Flow holds no hidden state: replaying the same placement calls from the
// same starting cursor yields identical geometry.
type Flow struct {
	// LineRatio scales font size into per-line cursor advance for PlaceLine.
	LineRatio float64

	left, right float64
	bottom      float64
	y           float64
}

// NewFlow creates a flow over the band [left, right] with the cursor at top.
// No placement will go below bottom.
func NewFlow(left, right, top, bottom float64) *Flow {
	return &Flow{
		LineRatio: DefaultLineRatio,
		left:      left,
		right:     right,
		bottom:    bottom,
		y:         top,
	}
}

// Y returns the current cursor position.
func (f *Flow) Y() float64 { return f.y }

// Left returns the left edge of the band.
func (f *Flow) Left() float64 { return f.left }

// Right returns the right edge of the band.
func (f *Flow) Right() float64 { return f.right }

// Width returns the width of the band.
func (f *Flow) Width() float64 { return f.right - f.left }

// Remaining returns the vertical space left between the cursor and the
// bottom bound.
func (f *Flow) Remaining() float64 { return f.y - f.bottom }

// Advance moves the cursor down by dy and returns the new cursor position.
func (f *Flow) Advance(dy float64) float64 {
	f.y -= dy
	return f.y
}

// PlaceLine places one text line at the current cursor and advances the
// cursor by fontSize*LineRatio. It returns the baseline y for drawing the
// line.
func (f *Flow) PlaceLine(fontSize float64) float64 {
	y := f.y
	f.y -= fontSize * f.LineRatio
	return y
}

// PlaceRuledLines advances the cursor by spacing per rule and returns the
// y-coordinate of each rule, up to count rules. Placement stops early when
// the next rule would cross the bottom bound, so the returned slice may be
// shorter than count and never contains a y below the bound. A count <= 0
// places nothing and leaves the cursor unchanged.
func (f *Flow) PlaceRuledLines(count int, spacing float64) []float64 {
	if count <= 0 {
		return nil
	}
	ys := make([]float64, 0, count)
	for i := 0; i < count; i++ {
		next := f.y - spacing
		if next < f.bottom {
			break
		}
		f.y = next
		ys = append(ys, next)
	}
	return ys
}

// PlaceBox reserves a rectangle of the given height spanning the band at the
// current cursor and advances the cursor past it.
//
// A negative height is a programmer error (INVALID_LAYOUT). A height larger
// than Remaining would overflow the bottom bound and fails with
// INSUFFICIENT_SPACE; callers placing variable content size it from
// Remaining so this cannot trigger.
func (f *Flow) PlaceBox(height float64) (Rect, error) {
	if height < 0 {
		return Rect{}, errors.New(errors.ErrCodeInvalidLayout,
			"box height must not be negative, got %.2f", height)
	}
	if height > f.Remaining() {
		return Rect{}, errors.New(errors.ErrCodeInsufficientSpace,
			"box height %.2f exceeds remaining space %.2f", height, f.Remaining())
	}
	r := Rect{X: f.left, Y: f.y - height, W: f.Width(), H: height}
	f.y -= height
	return r, nil
}
