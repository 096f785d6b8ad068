package sink

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"github.com/paperpress/daybook/pkg/layout"
)

// PDF is a Sink backed by gofpdf.
//
// gofpdf uses a top-left origin with y growing downward, so every primitive
// flips its y-coordinates against the page height on the way in. Pages are
// opened lazily on the first primitive after a break, so a trailing
// PageBreak never leaves a blank page in the document.
type PDF struct {
	doc     *gofpdf.Fpdf
	page    layout.Page
	images  int
	breaks  int
	pending bool
}

// NewPDF creates a PDF sink for the given page geometry.
func NewPDF(page layout.Page) *PDF {
	doc := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: page.Width, Ht: page.Height},
	})
	// The layout engine owns page bounds; the sink must never paginate on
	// its own.
	doc.SetAutoPageBreak(false, 0)
	doc.AddPage()
	return &PDF{doc: doc, page: page}
}

// flip converts a bottom-left-origin y to gofpdf's top-left origin.
func (p *PDF) flip(y float64) float64 { return p.page.Height - y }

func (p *PDF) ensurePage() {
	if p.pending {
		p.doc.AddPage()
		p.pending = false
	}
}

// Text draws s with its baseline at y, aligned on x per st.Align.
func (p *PDF) Text(x, y float64, s string, st TextStyle) {
	p.ensurePage()
	p.doc.SetFont(st.Font.Family, st.Font.Style, st.Font.Size)
	p.doc.SetTextColor(int(st.Color.R), int(st.Color.G), int(st.Color.B))

	switch st.Align {
	case AlignCenter:
		x -= p.doc.GetStringWidth(s) / 2
	case AlignRight:
		x -= p.doc.GetStringWidth(s)
	}
	p.doc.Text(x, p.flip(y), s)
}

// Line draws a straight line between the two points.
func (p *PDF) Line(x1, y1, x2, y2 float64, st StrokeStyle) {
	p.ensurePage()
	p.applyStroke(st)
	p.doc.Line(x1, p.flip(y1), x2, p.flip(y2))
}

// Rect strokes the outline of the rectangle with bottom-left corner (x, y).
func (p *PDF) Rect(x, y, w, h float64, st StrokeStyle) {
	p.ensurePage()
	p.applyStroke(st)
	p.doc.Rect(x, p.flip(y+h), w, h, "D")
}

// Image places encoded image data scaled into the given rectangle.
func (p *PDF) Image(x, y, w, h float64, data []byte, format string) {
	p.ensurePage()
	p.images++
	name := fmt.Sprintf("img%d", p.images)
	opts := gofpdf.ImageOptions{ImageType: strings.ToUpper(format)}
	p.doc.RegisterImageOptionsReader(name, opts, bytes.NewReader(data))
	p.doc.ImageOptions(name, x, p.flip(y+h), w, h, false, opts, 0, "")
}

// PageBreak finalizes the current page. The next page opens when the next
// primitive arrives.
func (p *PDF) PageBreak() {
	p.breaks++
	p.pending = true
}

func (p *PDF) applyStroke(st StrokeStyle) {
	p.doc.SetLineWidth(st.Width)
	p.doc.SetDrawColor(int(st.Color.R), int(st.Color.G), int(st.Color.B))
}

// Output writes the PDF document to w. gofpdf accumulates the first drawing
// error internally; Output surfaces it.
func (p *PDF) Output(w io.Writer) error {
	return p.doc.Output(w)
}

// PageCount returns the number of finalized pages, matching the recorder's
// convention of one page per PageBreak.
func (p *PDF) PageCount() int {
	return p.breaks
}

var _ Sink = (*PDF)(nil)
