package sink

import "io"

// OpKind identifies a recorded draw primitive.
type OpKind string

const (
	OpText  OpKind = "text"
	OpLine  OpKind = "line"
	OpRect  OpKind = "rect"
	OpImage OpKind = "image"
)

// Op is one recorded draw call with its full arguments.
type Op struct {
	Kind   OpKind
	X, Y   float64
	X2, Y2 float64 // line end point
	W, H   float64 // rect and image extents
	Text   string
	Style  TextStyle
	Stroke StrokeStyle
	Format string // image format
}

// Recorder is a Sink that captures the primitive stream instead of drawing.
// It is the test double for composer and driver geometry: tests assert on
// the recorded ops and page boundaries. A trailing PageBreak closes each
// page, so PageCount equals the number of PageBreak calls.
type Recorder struct {
	pages [][]Op
	cur   []Op
}

// NewRecorder creates an empty recorder with the first page open.
func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) Text(x, y float64, s string, st TextStyle) {
	r.cur = append(r.cur, Op{Kind: OpText, X: x, Y: y, Text: s, Style: st})
}

func (r *Recorder) Line(x1, y1, x2, y2 float64, st StrokeStyle) {
	r.cur = append(r.cur, Op{Kind: OpLine, X: x1, Y: y1, X2: x2, Y2: y2, Stroke: st})
}

func (r *Recorder) Rect(x, y, w, h float64, st StrokeStyle) {
	r.cur = append(r.cur, Op{Kind: OpRect, X: x, Y: y, W: w, H: h, Stroke: st})
}

func (r *Recorder) Image(x, y, w, h float64, data []byte, format string) {
	r.cur = append(r.cur, Op{Kind: OpImage, X: x, Y: y, W: w, H: h, Format: format})
}

func (r *Recorder) PageBreak() {
	r.pages = append(r.pages, r.cur)
	r.cur = nil
}

// Output is a no-op for the recorder.
func (r *Recorder) Output(io.Writer) error { return nil }

// PageCount returns the number of finalized pages.
func (r *Recorder) PageCount() int { return len(r.pages) }

// Page returns the ops of the i-th finalized page.
func (r *Recorder) Page(i int) []Op { return r.pages[i] }

// Ops returns all ops of all finalized pages in draw order.
func (r *Recorder) Ops() []Op {
	var all []Op
	for _, p := range r.pages {
		all = append(all, p...)
	}
	return all
}

var _ Sink = (*Recorder)(nil)
