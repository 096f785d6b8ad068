package content

import (
	"bytes"
	"image"
	"image/color"

	"github.com/disintegration/imaging"

	"github.com/paperpress/daybook/pkg/errors"
)

// Frame border widths in pixels, inside out: definition line, white mat,
// separator line, outer frame.
var frameBorders = []struct {
	width int
	color color.NRGBA
}{
	{2, color.NRGBA{A: 255}},
	{3, color.NRGBA{R: 255, G: 255, B: 255, A: 255}},
	{1, color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 255}},
	{3, color.NRGBA{A: 255}},
}

// MuseumFrame converts an image to black and white and wraps it in a
// museum-style frame: a thin black definition line, a white mat, a dark
// separator and an outer black frame. The result is re-encoded as PNG with
// updated natural dimensions.
func MuseumFrame(img *Image) (*Image, error) {
	src, err := imaging.Decode(bytes.NewReader(img.Data))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeContentUnavailable, err, "decode image for framing")
	}

	framed := imaging.Grayscale(src)
	for _, b := range frameBorders {
		framed = expand(framed, b.width, b.color)
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, framed, imaging.PNG); err != nil {
		return nil, errors.Wrap(errors.ErrCodeContentUnavailable, err, "encode framed image")
	}

	bounds := framed.Bounds()
	return &Image{
		Data:   buf.Bytes(),
		Format: "png",
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
	}, nil
}

// expand grows the image by border pixels on every side, filled with c.
func expand(img image.Image, border int, c color.NRGBA) *image.NRGBA {
	b := img.Bounds()
	bg := imaging.New(b.Dx()+2*border, b.Dy()+2*border, c)
	return imaging.PasteCenter(bg, img)
}
