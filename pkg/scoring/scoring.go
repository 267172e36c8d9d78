// Package scoring turns per-region pixel statistics into heuristic risk
// components and aggregates them into a wellness score. All arithmetic is
// fixed and deterministic; there is no trained model behind it.
package scoring

import (
	"image"
	"math"

	"github.com/menta2k/face-wellness/pkg/types"
)

// Reason sentences attached to the score. Each fires when its region's risk
// exceeds reasonThreshold; the fallback is used when none fire.
const (
	ReasonEyes     = "Eye region suggests fatigue-like cues."
	ReasonLips     = "Lip region suggests dryness-like cues."
	ReasonSkin     = "Skin region suggests lower vitality-like cues."
	ReasonBalanced = "Overall signals look balanced under current capture conditions."
)

const reasonThreshold = 0.55

// Stats holds the mean and standard deviation of a gray plane's intensity.
type Stats struct {
	Mean float64
	Std  float64
}

// GrayStats computes intensity statistics over a gray plane. An empty plane
// yields zeros.
func GrayStats(gray *image.Gray) Stats {
	b := gray.Bounds()
	n := b.Dx() * b.Dy()
	if n == 0 {
		return Stats{}
	}

	var sum float64
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			sum += float64(gray.GrayAt(x, y).Y)
		}
	}
	mean := sum / float64(n)

	var variance float64
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			d := float64(gray.GrayAt(x, y).Y) - mean
			variance += d * d
		}
	}
	return Stats{Mean: mean, Std: math.Sqrt(variance / float64(n))}
}

// RiskFromRegions maps per-region intensity statistics to risk values in
// [0,1]. Darker and flatter regions score higher risk, against per-region
// reference levels.
func RiskFromRegions(eyes, lips, skin *image.Gray) types.RiskComponents {
	e := GrayStats(eyes)
	l := GrayStats(lips)
	s := GrayStats(skin)

	return types.RiskComponents{
		Eyes: 0.6*clamp01((110-e.Mean)/110) + 0.4*clamp01((25-e.Std)/25),
		Lips: 0.7*clamp01((115-l.Mean)/115) + 0.3*clamp01((22-l.Std)/22),
		Skin: 0.6*clamp01((120-s.Mean)/120) + 0.4*clamp01((20-s.Std)/20),
	}
}

// Aggregate combines risk components into the final score, category,
// confidence and reason list. Reasons are emitted in eyes, lips, skin order;
// the confidence rule only ever yields Medium or High.
func Aggregate(risk types.RiskComponents) types.ScoreResult {
	agg := 0.4*risk.Eyes + 0.35*risk.Lips + 0.25*risk.Skin
	score := int(math.Round(100 * (1 - agg)))

	var category string
	switch {
	case score < 45:
		category = types.CategoryLow
	case score < 70:
		category = types.CategoryMedium
	default:
		category = types.CategoryGood
	}

	confidence := types.ConfidenceMedium
	if score < 40 || score > 80 {
		confidence = types.ConfidenceHigh
	}

	var reasons []string
	if risk.Eyes > reasonThreshold {
		reasons = append(reasons, ReasonEyes)
	}
	if risk.Lips > reasonThreshold {
		reasons = append(reasons, ReasonLips)
	}
	if risk.Skin > reasonThreshold {
		reasons = append(reasons, ReasonSkin)
	}
	if len(reasons) == 0 {
		reasons = append(reasons, ReasonBalanced)
	}

	return types.ScoreResult{
		Score:          score,
		Category:       category,
		Confidence:     confidence,
		Reasons:        reasons,
		RiskComponents: risk,
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
