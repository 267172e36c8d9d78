package types

import "image"

// BoundingBox is a rectangle in pixel coordinates with an exclusive
// bottom-right corner, so Width = X2-X1 and Height = Y2-Y1.
type BoundingBox struct {
	X1 int `json:"x1"`
	Y1 int `json:"y1"`
	X2 int `json:"x2"`
	Y2 int `json:"y2"`
}

// Width returns the horizontal extent of the box.
func (b BoundingBox) Width() int {
	return b.X2 - b.X1
}

// Height returns the vertical extent of the box.
func (b BoundingBox) Height() int {
	return b.Y2 - b.Y1
}

// Area returns the area of the box in pixels.
func (b BoundingBox) Area() int {
	return b.Width() * b.Height()
}

// Rect converts the box to an image.Rectangle.
func (b BoundingBox) Rect() image.Rectangle {
	return image.Rect(b.X1, b.Y1, b.X2, b.Y2)
}

// Clamp restricts the box to an image of the given dimensions. Every
// coordinate is clamped into [0, dim-1]; if that collapses an edge the far
// corner is pushed out by one pixel, so the result always has positive area.
func (b BoundingBox) Clamp(width, height int) BoundingBox {
	b.X1 = clampInt(b.X1, 0, width-1)
	b.X2 = clampInt(b.X2, 0, width-1)
	b.Y1 = clampInt(b.Y1, 0, height-1)
	b.Y2 = clampInt(b.Y2, 0, height-1)

	if b.X2 <= b.X1 {
		b.X2 = minInt(width-1, b.X1+1)
		if b.X2 <= b.X1 {
			b.X1 = b.X2 - 1
		}
	}
	if b.Y2 <= b.Y1 {
		b.Y2 = minInt(height-1, b.Y1+1)
		if b.Y2 <= b.Y1 {
			b.Y1 = b.Y2 - 1
		}
	}
	return b
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// QualityResult holds capture-quality metrics computed before any face
// analysis. It is always populated, even when the analysis itself fails.
type QualityResult struct {
	BrightnessMean float64  `json:"brightness_mean"`
	BlurVariance   float64  `json:"blur_variance"`
	Notes          []string `json:"notes"`
}

// RegionSet holds the face box and the sub-regions derived from it. All
// boxes lie within image bounds and have positive area.
type RegionSet struct {
	Face BoundingBox `json:"face"`
	Eyes BoundingBox `json:"eyes"`
	Lips BoundingBox `json:"lips"`
	Skin BoundingBox `json:"skin"`
}

// RiskComponents are per-region heuristic risk values in [0,1], higher
// meaning a weaker visual wellness signal.
type RiskComponents struct {
	Eyes float64 `json:"eyes"`
	Lips float64 `json:"lips"`
	Skin float64 `json:"skin"`
}

// Score categories.
const (
	CategoryLow    = "Low"
	CategoryMedium = "Medium"
	CategoryGood   = "Good"
)

// Confidence labels. ConfidenceLow is a documented value but the current
// heuristic never emits it; the rule produces only Medium and High.
const (
	ConfidenceLow    = "Low"
	ConfidenceMedium = "Medium"
	ConfidenceHigh   = "High"
)

// ScoreResult is the aggregated wellness estimate.
type ScoreResult struct {
	Score          int            `json:"score"`
	Category       string         `json:"category"`
	Confidence     string         `json:"confidence"`
	Reasons        []string       `json:"reasons"`
	RiskComponents RiskComponents `json:"risk_components"`
}

// ExplainResult carries the annotated overlay image. The overlay has the
// same dimensions as the input and is debug/explainability data only; it is
// not marshaled with the rest of the result.
type ExplainResult struct {
	Overlay image.Image `json:"-"`
}

// AnalysisResult is the single value returned to callers. Score and Explain
// are present iff OK is true; Quality is always present so capture guidance
// can be shown even on failure.
type AnalysisResult struct {
	OK      bool           `json:"ok"`
	Message string         `json:"message"`
	Quality QualityResult  `json:"quality"`
	Score   *ScoreResult   `json:"score,omitempty"`
	Explain *ExplainResult `json:"explain,omitempty"`
}
