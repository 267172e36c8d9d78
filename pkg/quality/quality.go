// Package quality computes capture-quality metrics for a photo before any
// face analysis runs: mean luminance as a lighting signal and the variance
// of the discrete Laplacian as a sharpness signal.
package quality

import (
	"image"

	"github.com/menta2k/face-wellness/pkg/processing"
	"github.com/menta2k/face-wellness/pkg/types"
)

// Advisory thresholds. These annotate the result with capture guidance and
// are distinct from the pipeline's hard blur floor: a blur variance between
// the floor and BlurNoteThreshold still analyzes, just with a warning note.
const (
	DarkNoteThreshold = 55.0
	BlurNoteThreshold = 45.0
)

// Capture notes reported to the caller.
const (
	NoteTooDark    = "Too dark (low lighting)."
	NoteBlurry     = "Blurry image (low sharpness)."
	NoteAcceptable = "Capture quality looks acceptable."
)

// Assess computes brightness and sharpness metrics for an image. It always
// succeeds; degenerate inputs simply yield zero metrics.
func Assess(img image.Image) types.QualityResult {
	gray := processing.Grayscale(img)

	result := types.QualityResult{
		BrightnessMean: meanIntensity(gray),
		BlurVariance:   LaplacianVariance(gray),
	}

	if result.BrightnessMean < DarkNoteThreshold {
		result.Notes = append(result.Notes, NoteTooDark)
	}
	if result.BlurVariance < BlurNoteThreshold {
		result.Notes = append(result.Notes, NoteBlurry)
	}
	if len(result.Notes) == 0 {
		result.Notes = append(result.Notes, NoteAcceptable)
	}
	return result
}

func meanIntensity(gray *image.Gray) float64 {
	b := gray.Bounds()
	w, h := b.Dx(), b.Dy()
	if w == 0 || h == 0 {
		return 0
	}

	var sum float64
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			sum += float64(gray.GrayAt(x, y).Y)
		}
	}
	return sum / float64(w*h)
}

// LaplacianVariance measures edge energy as the variance of the 4-neighbor
// discrete Laplacian over interior pixels. A flat image yields 0; strong
// edges yield large values.
func LaplacianVariance(gray *image.Gray) float64 {
	b := gray.Bounds()
	w, h := b.Dx(), b.Dy()
	if w < 3 || h < 3 {
		return 0
	}

	n := (w - 2) * (h - 2)
	responses := make([]float64, 0, n)
	var sum float64
	for y := b.Min.Y + 1; y < b.Max.Y-1; y++ {
		for x := b.Min.X + 1; x < b.Max.X-1; x++ {
			lap := float64(gray.GrayAt(x, y-1).Y) +
				float64(gray.GrayAt(x, y+1).Y) +
				float64(gray.GrayAt(x-1, y).Y) +
				float64(gray.GrayAt(x+1, y).Y) -
				4*float64(gray.GrayAt(x, y).Y)
			responses = append(responses, lap)
			sum += lap
		}
	}

	mean := sum / float64(n)
	var variance float64
	for _, r := range responses {
		d := r - mean
		variance += d * d
	}
	return variance / float64(n)
}
