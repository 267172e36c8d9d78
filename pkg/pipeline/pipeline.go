// Package pipeline orchestrates a single analysis pass: quality gate, face
// localization, region derivation, risk scoring, aggregation and the
// explainability overlay. One image per call, no retries, no shared state.
package pipeline

import (
	"context"
	"fmt"
	"image"

	"github.com/menta2k/face-wellness/pkg/locator"
	"github.com/menta2k/face-wellness/pkg/overlay"
	"github.com/menta2k/face-wellness/pkg/processing"
	"github.com/menta2k/face-wellness/pkg/quality"
	"github.com/menta2k/face-wellness/pkg/roi"
	"github.com/menta2k/face-wellness/pkg/scoring"
	"github.com/menta2k/face-wellness/pkg/types"
)

// BlurHardFloor is the blocking blur threshold. It is intentionally lower
// than quality.BlurNoteThreshold: between the two the image analyzes with
// an advisory note, below this floor the analysis stops.
const BlurHardFloor = 25.0

// Images must exceed this dimension on both axes before the partial-face
// fallback is allowed; anything smaller fails with a no-face result.
const minFallbackDim = 200

// User-facing messages.
const (
	MsgOK        = "OK"
	MsgTooBlurry = "Image is too blurry for reliable analysis. Please hold the camera steady."
	MsgNoFace    = "No full face detected. Please ensure your eyes, nose, and mouth are fully visible."
)

// ReasonPartialFace is appended when analysis ran on an assumed centered
// face instead of a real detection.
const ReasonPartialFace = "Analysis is based on a partial face. Results may be less reliable."

// Pipeline runs the analysis over a configured face locator. It holds no
// mutable state and is safe to share across goroutines as long as the
// locator is.
type Pipeline struct {
	locator locator.FaceLocator
}

// New builds a pipeline over the given face locator.
func New(loc locator.FaceLocator) *Pipeline {
	return &Pipeline{locator: loc}
}

// Analyze runs one full pass over an image. Expected failures (blur,
// no face) come back as an ok=false result with the quality metrics still
// populated; only locator faults are returned as errors, and even then the
// quality metrics accompany them.
func (p *Pipeline) Analyze(ctx context.Context, img image.Image) (types.AnalysisResult, error) {
	q := quality.Assess(img)

	if q.BlurVariance < BlurHardFloor {
		return types.AnalysisResult{
			OK:      false,
			Message: MsgTooBlurry,
			Quality: q,
		}, nil
	}

	face, found, err := p.locator.Detect(ctx, img)
	if err != nil {
		return types.AnalysisResult{Quality: q}, fmt.Errorf("face detection failed: %w", err)
	}

	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	partialFace := false

	if !found {
		if h > minFallbackDim && w > minFallbackDim {
			// Assume a centered partial face and proceed with a caveat.
			face = types.BoundingBox{
				X1: int(0.25 * float64(w)),
				Y1: int(0.15 * float64(h)),
				X2: int(0.75 * float64(w)),
				Y2: int(0.85 * float64(h)),
			}
			partialFace = true
		} else {
			return types.AnalysisResult{
				OK:      false,
				Message: MsgNoFace,
				Quality: q,
			}, nil
		}
	}

	regions := roi.Derive(w, h, face)

	gray := processing.Grayscale(img)
	risk := scoring.RiskFromRegions(
		processing.CropGray(gray, regions.Eyes),
		processing.CropGray(gray, regions.Lips),
		processing.CropGray(gray, regions.Skin),
	)

	score := scoring.Aggregate(risk)
	if partialFace {
		score.Reasons = append(score.Reasons, ReasonPartialFace)
	}

	return types.AnalysisResult{
		OK:      true,
		Message: MsgOK,
		Quality: q,
		Score:   &score,
		Explain: &types.ExplainResult{Overlay: overlay.Render(img, regions)},
	}, nil
}
