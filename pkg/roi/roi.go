// Package roi derives the eyes, lips and skin regions of interest as fixed
// fractional windows of a face bounding box.
package roi

import "github.com/menta2k/face-wellness/pkg/types"

// Fractional windows of the face box for each sub-region. Lightweight and
// explainable: no landmarks, just face-proportional geometry.
var (
	eyesWindow = window{0.15, 0.20, 0.85, 0.48}
	lipsWindow = window{0.25, 0.62, 0.75, 0.82}
	skinWindow = window{0.18, 0.48, 0.82, 0.70}
)

type window struct {
	x1, y1, x2, y2 float64
}

func (w window) apply(face types.BoundingBox) types.BoundingBox {
	fw := float64(face.Width())
	fh := float64(face.Height())
	return types.BoundingBox{
		X1: face.X1 + int(w.x1*fw),
		Y1: face.Y1 + int(w.y1*fh),
		X2: face.X1 + int(w.x2*fw),
		Y2: face.Y1 + int(w.y2*fh),
	}
}

// Derive computes the region set for a face box inside an image of the
// given dimensions. Every returned box is clamped into bounds and has
// positive area, even when the face box lies partially outside the image.
func Derive(width, height int, face types.BoundingBox) types.RegionSet {
	return types.RegionSet{
		Face: face.Clamp(width, height),
		Eyes: eyesWindow.apply(face).Clamp(width, height),
		Lips: lipsWindow.apply(face).Clamp(width, height),
		Skin: skinWindow.apply(face).Clamp(width, height),
	}
}
