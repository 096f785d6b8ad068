// Package sink provides drawing surfaces for diary page output.
//
// A sink accepts positioned draw primitives (text, lines, rectangles,
// images) and page breaks, and finally serializes the document. The layout
// engine never talks to a sink directly; the composer computes geometry and
// forwards it here.
//
// Coordinates follow the layout engine's convention: PDF points, origin at
// the bottom-left of the page, y growing upward. Every primitive carries its
// full style explicitly; a sink holds no ambient font or color state between
// calls.
package sink

import "io"

// Color is an opaque RGB color.
type Color struct {
	R, G, B uint8
}

// The document palette. Matches the grayscale look of the printed diary.
var (
	Black     = Color{0, 0, 0}
	Grey      = Color{128, 128, 128}
	DarkGrey  = Color{169, 169, 169}
	LightGrey = Color{211, 211, 211}
	PaleGrey  = Color{224, 224, 224}
)

// Align controls how the x-coordinate of a Text call is interpreted.
type Align int

const (
	// AlignLeft draws the text starting at x.
	AlignLeft Align = iota
	// AlignCenter centers the text on x.
	AlignCenter
	// AlignRight ends the text at x.
	AlignRight
)

// Font identifies a typeface for text drawing. Family is a core PDF family
// ("Helvetica", "Times"); Style is "" for regular, "B" for bold, "I" for
// italic.
type Font struct {
	Family string
	Style  string
	Size   float64
}

// TextStyle is the complete style for one Text call.
type TextStyle struct {
	Font  Font
	Color Color
	Align Align
}

// StrokeStyle is the complete style for one Line or Rect call.
type StrokeStyle struct {
	Width float64
	Color Color
}

// Sink is a drawing surface for a paginated document.
//
// Implementations accumulate primitives for the current page until
// PageBreak, which finalizes the page and starts a new one. Output
// serializes the whole document; it reports the first error encountered
// during drawing or serialization.
type Sink interface {
	// Text draws s with its baseline at y, aligned on x per st.Align.
	Text(x, y float64, s string, st TextStyle)

	// Line draws a straight line between the two points.
	Line(x1, y1, x2, y2 float64, st StrokeStyle)

	// Rect strokes the outline of the rectangle with bottom-left corner
	// (x, y).
	Rect(x, y, w, h float64, st StrokeStyle)

	// Image places encoded image data (PNG or JPEG) scaled into the
	// rectangle with bottom-left corner (x, y).
	Image(x, y, w, h float64, data []byte, format string)

	// PageBreak finalizes the current page and begins the next.
	PageBreak()

	// Output writes the serialized document to w.
	Output(w io.Writer) error
}
