package client

import (
	"encoding/json"
	"regexp"
	"strings"
)

// Box is a normalized bounding box with coordinates in [0,1] range.
type Box struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"w"`
	H float64 `json:"h"`
}

// FaceResponse is the JSON payload a vision model returns for a face
// localization prompt.
type FaceResponse struct {
	Found      bool    `json:"found"`
	Confidence float64 `json:"confidence"`
	Box        Box     `json:"box"`
}

// ParseFaceResponse parses a model's raw text into a FaceResponse. Vision
// models frequently wrap JSON in fences or prose, so the payload is
// sanitized first; anything unparseable degrades to a not-found response
// rather than an error.
func ParseFaceResponse(raw string) *FaceResponse {
	raw = sanitizeModelJSON(raw)

	if !strings.HasPrefix(strings.TrimSpace(raw), "{") {
		return &FaceResponse{Found: false}
	}

	var result FaceResponse
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		// Try conservative brace-slice approach
		start := strings.Index(raw, "{")
		end := strings.LastIndex(raw, "}")
		if start < 0 || end <= start {
			return &FaceResponse{Found: false}
		}
		if err2 := json.Unmarshal([]byte(raw[start:end+1]), &result); err2 != nil {
			return &FaceResponse{Found: false}
		}
	}

	// A "found" box with no extent is a hallucinated answer.
	if result.Box.W <= 0 || result.Box.H <= 0 {
		result.Found = false
	}

	return &result
}

// sanitizeModelJSON removes code fences, comments, and trailing commas from
// a model's JSON response.
func sanitizeModelJSON(raw string) string {
	raw = strings.TrimSpace(raw)

	// Strip triple-backtick fences if present
	if strings.HasPrefix(raw, "```") {
		if i := strings.Index(raw, "\n"); i >= 0 {
			raw = raw[i+1:]
		}
		if j := strings.LastIndex(raw, "```"); j >= 0 {
			raw = raw[:j]
		}
	}
	raw = strings.TrimSpace(raw)
	raw = strings.Trim(raw, "`")

	// Remove /* ... */ block comments
	reBlock := regexp.MustCompile(`(?s)/\*.*?\*/`)
	raw = reBlock.ReplaceAllString(raw, "")

	// Remove // line/inline comments
	reLine := regexp.MustCompile(`(?m)^\s*//.*$`)
	raw = reLine.ReplaceAllString(raw, "")
	reInline := regexp.MustCompile(`(?m)//.*$`)
	raw = reInline.ReplaceAllString(raw, "")

	// Remove trailing commas before } or ]
	reTrailing := regexp.MustCompile(`,(\s*[}\]])`)
	raw = reTrailing.ReplaceAllString(raw, "$1")

	// Keep only the outermost {...}
	if start := strings.Index(raw, "{"); start >= 0 {
		if end := strings.LastIndex(raw, "}"); end > start {
			raw = raw[start : end+1]
		}
	}
	return strings.TrimSpace(raw)
}
