package scoring

import (
	"image"
	"image/color"
	"math"
	"testing"

	"github.com/menta2k/face-wellness/pkg/types"
)

func uniformGray(width, height int, level uint8) *image.Gray {
	gray := image.NewGray(image.Rect(0, 0, width, height))
	for i := range gray.Pix {
		gray.Pix[i] = level
	}
	return gray
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestGrayStats(t *testing.T) {
	gray := image.NewGray(image.Rect(0, 0, 2, 1))
	gray.Pix[0] = 0
	gray.Pix[1] = 100

	stats := GrayStats(gray)
	if !almostEqual(stats.Mean, 50) {
		t.Errorf("Expected mean 50, got %f", stats.Mean)
	}
	if !almostEqual(stats.Std, 50) {
		t.Errorf("Expected std 50, got %f", stats.Std)
	}
}

func TestGrayStatsSubImage(t *testing.T) {
	// Stats must respect non-zero sub-image origins
	gray := uniformGray(10, 10, 0)
	for y := 5; y < 10; y++ {
		for x := 5; x < 10; x++ {
			gray.SetGray(x, y, color.Gray{Y: 200})
		}
	}

	sub := gray.SubImage(image.Rect(5, 5, 10, 10)).(*image.Gray)
	stats := GrayStats(sub)
	if !almostEqual(stats.Mean, 200) {
		t.Errorf("Expected sub-image mean 200, got %f", stats.Mean)
	}
	if !almostEqual(stats.Std, 0) {
		t.Errorf("Expected sub-image std 0, got %f", stats.Std)
	}
}

func TestRiskAllBlack(t *testing.T) {
	black := uniformGray(10, 10, 0)
	risk := RiskFromRegions(black, black, black)

	if !almostEqual(risk.Eyes, 1) || !almostEqual(risk.Lips, 1) || !almostEqual(risk.Skin, 1) {
		t.Errorf("Expected all risks 1.0 for black regions, got %+v", risk)
	}
}

func TestRiskAllWhite(t *testing.T) {
	white := uniformGray(10, 10, 255)
	risk := RiskFromRegions(white, white, white)

	// Bright but flat: only the low-variance term fires
	if !almostEqual(risk.Eyes, 0.4) {
		t.Errorf("Expected eyes risk 0.4, got %f", risk.Eyes)
	}
	if !almostEqual(risk.Lips, 0.3) {
		t.Errorf("Expected lips risk 0.3, got %f", risk.Lips)
	}
	if !almostEqual(risk.Skin, 0.4) {
		t.Errorf("Expected skin risk 0.4, got %f", risk.Skin)
	}
}

func TestRiskAlwaysInRange(t *testing.T) {
	levels := []uint8{0, 1, 54, 110, 128, 200, 254, 255}
	for _, level := range levels {
		region := uniformGray(7, 3, level)
		risk := RiskFromRegions(region, region, region)
		for name, v := range map[string]float64{"eyes": risk.Eyes, "lips": risk.Lips, "skin": risk.Skin} {
			if v < 0 || v > 1 {
				t.Errorf("level %d: %s risk out of range: %f", level, name, v)
			}
		}
	}
}

func TestAggregateCategoryBoundaries(t *testing.T) {
	cases := []struct {
		risk     float64
		score    int
		category string
	}{
		{0.56, 44, types.CategoryLow},
		{0.55, 45, types.CategoryMedium},
		{0.31, 69, types.CategoryMedium},
		{0.30, 70, types.CategoryGood},
	}

	for _, tc := range cases {
		// Equal risks make agg equal the shared value
		result := Aggregate(types.RiskComponents{Eyes: tc.risk, Lips: tc.risk, Skin: tc.risk})
		if result.Score != tc.score {
			t.Errorf("risk %.2f: expected score %d, got %d", tc.risk, tc.score, result.Score)
		}
		if result.Category != tc.category {
			t.Errorf("risk %.2f: expected category %s, got %s", tc.risk, tc.category, result.Category)
		}
	}
}

func TestAggregateZeroRisk(t *testing.T) {
	result := Aggregate(types.RiskComponents{})

	if result.Score != 100 {
		t.Errorf("Expected score 100, got %d", result.Score)
	}
	if result.Category != types.CategoryGood {
		t.Errorf("Expected category Good, got %s", result.Category)
	}
	if result.Confidence != types.ConfidenceHigh {
		t.Errorf("Expected confidence High, got %s", result.Confidence)
	}
	if len(result.Reasons) != 1 || result.Reasons[0] != ReasonBalanced {
		t.Errorf("Expected balanced fallback reason, got %v", result.Reasons)
	}
}

func TestAggregateEyesDominant(t *testing.T) {
	result := Aggregate(types.RiskComponents{Eyes: 0.9, Lips: 0.1, Skin: 0.1})

	// agg = 0.4*0.9 + 0.35*0.1 + 0.25*0.1 = 0.42
	if result.Score != 58 {
		t.Errorf("Expected score 58, got %d", result.Score)
	}
	if result.Category != types.CategoryMedium {
		t.Errorf("Expected category Medium, got %s", result.Category)
	}
	if result.Confidence != types.ConfidenceMedium {
		t.Errorf("Expected confidence Medium, got %s", result.Confidence)
	}
	if len(result.Reasons) != 1 || result.Reasons[0] != ReasonEyes {
		t.Errorf("Expected only the eye reason, got %v", result.Reasons)
	}
}

func TestAggregateReasonOrder(t *testing.T) {
	result := Aggregate(types.RiskComponents{Eyes: 0.9, Lips: 0.9, Skin: 0.9})

	expected := []string{ReasonEyes, ReasonLips, ReasonSkin}
	if len(result.Reasons) != len(expected) {
		t.Fatalf("Expected %d reasons, got %v", len(expected), result.Reasons)
	}
	for i, reason := range expected {
		if result.Reasons[i] != reason {
			t.Errorf("Expected reason %d to be %q, got %q", i, reason, result.Reasons[i])
		}
	}
}

func TestAggregateConfidenceNeverLow(t *testing.T) {
	for agg := 0.0; agg <= 1.0; agg += 0.01 {
		result := Aggregate(types.RiskComponents{Eyes: agg, Lips: agg, Skin: agg})
		if result.Confidence == types.ConfidenceLow {
			t.Fatalf("Confidence rule emitted Low at risk %.2f", agg)
		}
		if result.Score < 0 || result.Score > 100 {
			t.Fatalf("Score out of range at risk %.2f: %d", agg, result.Score)
		}
	}
}
