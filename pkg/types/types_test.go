package types

import (
	"encoding/json"
	"image"
	"strings"
	"testing"
)

func TestBoundingBoxAccessors(t *testing.T) {
	b := BoundingBox{X1: 10, Y1: 20, X2: 40, Y2: 80}

	if b.Width() != 30 {
		t.Errorf("Expected width 30, got %d", b.Width())
	}
	if b.Height() != 60 {
		t.Errorf("Expected height 60, got %d", b.Height())
	}
	if b.Area() != 1800 {
		t.Errorf("Expected area 1800, got %d", b.Area())
	}
	if b.Rect() != image.Rect(10, 20, 40, 80) {
		t.Errorf("Unexpected rect: %v", b.Rect())
	}
}

func TestClamp(t *testing.T) {
	cases := []struct {
		name     string
		in       BoundingBox
		w, h     int
		expected BoundingBox
	}{
		{
			"inside",
			BoundingBox{X1: 10, Y1: 10, X2: 50, Y2: 50},
			100, 100,
			BoundingBox{X1: 10, Y1: 10, X2: 50, Y2: 50},
		},
		{
			"overshoot",
			BoundingBox{X1: -20, Y1: -20, X2: 150, Y2: 150},
			100, 100,
			BoundingBox{X1: 0, Y1: 0, X2: 99, Y2: 99},
		},
		{
			"collapsed at interior",
			BoundingBox{X1: 50, Y1: 50, X2: 50, Y2: 50},
			100, 100,
			BoundingBox{X1: 50, Y1: 50, X2: 51, Y2: 51},
		},
		{
			"collapsed at far edge",
			BoundingBox{X1: 99, Y1: 99, X2: 99, Y2: 99},
			100, 100,
			BoundingBox{X1: 98, Y1: 98, X2: 99, Y2: 99},
		},
		{
			"fully outside",
			BoundingBox{X1: 500, Y1: 500, X2: 600, Y2: 600},
			100, 100,
			BoundingBox{X1: 98, Y1: 98, X2: 99, Y2: 99},
		},
	}

	for _, tc := range cases {
		got := tc.in.Clamp(tc.w, tc.h)
		if got != tc.expected {
			t.Errorf("%s: expected %+v, got %+v", tc.name, tc.expected, got)
		}
		if got.Area() <= 0 {
			t.Errorf("%s: clamped box has non-positive area: %+v", tc.name, got)
		}
	}
}

func TestAnalysisResultJSON(t *testing.T) {
	result := AnalysisResult{
		OK:      true,
		Message: "OK",
		Quality: QualityResult{BrightnessMean: 120, BlurVariance: 80, Notes: []string{"fine"}},
		Score: &ScoreResult{
			Score:      72,
			Category:   CategoryGood,
			Confidence: ConfidenceMedium,
			Reasons:    []string{"looks balanced"},
		},
		Explain: &ExplainResult{Overlay: image.NewRGBA(image.Rect(0, 0, 1, 1))},
	}

	data, err := json.Marshal(result)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	s := string(data)
	if !strings.Contains(s, `"score":72`) || !strings.Contains(s, `"category":"Good"`) {
		t.Errorf("Score fields missing: %s", s)
	}
	// The overlay image must never leak into the JSON payload
	if strings.Contains(s, "Overlay") || strings.Contains(s, "overlay") {
		t.Errorf("Overlay leaked into JSON: %s", s)
	}
}

func TestAnalysisResultJSONOmitsNilScore(t *testing.T) {
	result := AnalysisResult{
		OK:      false,
		Message: "no face",
		Quality: QualityResult{BrightnessMean: 60, BlurVariance: 30},
	}

	data, err := json.Marshal(result)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if strings.Contains(string(data), "score") || strings.Contains(string(data), "explain") {
		t.Errorf("Nil sections must be omitted: %s", data)
	}
}
