// Package overlay renders the explainability image: a copy of the input
// with the face and region boxes drawn and labeled. Pure annotation, no
// analytical effect.
package overlay

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/menta2k/face-wellness/pkg/types"
)

// Region colors.
var (
	faceColor = color.NRGBA{255, 255, 0, 255}
	eyesColor = color.NRGBA{0, 0, 255, 255}
	lipsColor = color.NRGBA{255, 0, 0, 255}
	skinColor = color.NRGBA{0, 255, 0, 255}
)

const (
	stroke = 2
	// Labels sit just above their box but never above this baseline, so
	// boxes at the top edge keep a readable label inside the frame.
	minLabelBaseline = 18
)

// Render draws the labeled region boxes onto a copy of the image. The input
// is left untouched and the returned image has the same dimensions.
func Render(img image.Image, regions types.RegionSet) image.Image {
	out := imaging.Clone(img)

	drawLabeledBox(out, regions.Face, faceColor, "Face")
	drawLabeledBox(out, regions.Eyes, eyesColor, "Eyes")
	drawLabeledBox(out, regions.Lips, lipsColor, "Lips")
	drawLabeledBox(out, regions.Skin, skinColor, "Skin")

	return out
}

func drawLabeledBox(img *image.NRGBA, box types.BoundingBox, c color.NRGBA, label string) {
	for s := 0; s < stroke; s++ {
		drawHLine(img, box.Y1+s, box.X1, box.X2, c)
		drawHLine(img, box.Y2-1-s, box.X1, box.X2, c)
		drawVLine(img, box.X1+s, box.Y1, box.Y2, c)
		drawVLine(img, box.X2-1-s, box.Y1, box.Y2, c)
	}

	baseline := box.Y1 - 6
	if baseline < minLabelBaseline {
		baseline = minLabelBaseline
	}
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(c),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(box.X1, baseline),
	}
	d.DrawString(label)
}

func drawHLine(img *image.NRGBA, y, x0, x1 int, c color.NRGBA) {
	if y < 0 || y >= img.Bounds().Dy() {
		return
	}
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	if x1 <= 0 || x0 >= img.Bounds().Dx() {
		return
	}
	if x0 < 0 {
		x0 = 0
	}
	if x1 > img.Bounds().Dx() {
		x1 = img.Bounds().Dx()
	}
	i := y*img.Stride + x0*4
	for x := x0; x < x1; x++ {
		img.Pix[i+0] = c.R
		img.Pix[i+1] = c.G
		img.Pix[i+2] = c.B
		img.Pix[i+3] = c.A
		i += 4
	}
}

func drawVLine(img *image.NRGBA, x, y0, y1 int, c color.NRGBA) {
	if x < 0 || x >= img.Bounds().Dx() {
		return
	}
	if y0 > y1 {
		y0, y1 = y1, y0
	}
	if y1 <= 0 || y0 >= img.Bounds().Dy() {
		return
	}
	if y0 < 0 {
		y0 = 0
	}
	if y1 > img.Bounds().Dy() {
		y1 = img.Bounds().Dy()
	}
	i := y0*img.Stride + x*4
	for y := y0; y < y1; y++ {
		img.Pix[i+0] = c.R
		img.Pix[i+1] = c.G
		img.Pix[i+2] = c.B
		img.Pix[i+3] = c.A
		i += img.Stride
	}
}
