package client

import "testing"

func TestParseFaceResponsePlainJSON(t *testing.T) {
	raw := `{"found": true, "confidence": 0.9, "box": {"x": 0.1, "y": 0.2, "w": 0.5, "h": 0.4}}`

	resp := ParseFaceResponse(raw)
	if !resp.Found {
		t.Fatal("Expected found=true")
	}
	if resp.Confidence != 0.9 {
		t.Errorf("Expected confidence 0.9, got %f", resp.Confidence)
	}
	if resp.Box.X != 0.1 || resp.Box.Y != 0.2 || resp.Box.W != 0.5 || resp.Box.H != 0.4 {
		t.Errorf("Unexpected box: %+v", resp.Box)
	}
}

func TestParseFaceResponseFencedJSON(t *testing.T) {
	raw := "```json\n{\"found\": true, \"confidence\": 0.8, \"box\": {\"x\": 0.0, \"y\": 0.0, \"w\": 1.0, \"h\": 1.0}}\n```"

	resp := ParseFaceResponse(raw)
	if !resp.Found {
		t.Error("Expected found=true from fenced JSON")
	}
	if resp.Box.W != 1.0 {
		t.Errorf("Expected box width 1.0, got %f", resp.Box.W)
	}
}

func TestParseFaceResponseTrailingCommas(t *testing.T) {
	raw := `{"found": true, "confidence": 0.7, "box": {"x": 0.2, "y": 0.2, "w": 0.3, "h": 0.3,},}`

	resp := ParseFaceResponse(raw)
	if !resp.Found {
		t.Error("Expected found=true after trailing-comma cleanup")
	}
}

func TestParseFaceResponseWithComments(t *testing.T) {
	raw := `{
		"found": true, // the largest face
		"confidence": 0.85,
		"box": {"x": 0.3, "y": 0.1, "w": 0.4, "h": 0.5}
	}`

	resp := ParseFaceResponse(raw)
	if !resp.Found {
		t.Error("Expected found=true after comment cleanup")
	}
	if resp.Box.H != 0.5 {
		t.Errorf("Expected box height 0.5, got %f", resp.Box.H)
	}
}

func TestParseFaceResponseProseWrapped(t *testing.T) {
	raw := `Here is the result you asked for:
{"found": true, "confidence": 0.6, "box": {"x": 0.25, "y": 0.25, "w": 0.5, "h": 0.5}}
Let me know if you need anything else.`

	resp := ParseFaceResponse(raw)
	if !resp.Found {
		t.Error("Expected found=true from prose-wrapped JSON")
	}
}

func TestParseFaceResponseGarbage(t *testing.T) {
	for _, raw := range []string{"", "I cannot see a face", "null", "[1,2,3]", "{broken"} {
		resp := ParseFaceResponse(raw)
		if resp.Found {
			t.Errorf("Expected found=false for %q", raw)
		}
	}
}

func TestParseFaceResponseZeroExtentBox(t *testing.T) {
	raw := `{"found": true, "confidence": 0.9, "box": {"x": 0.5, "y": 0.5, "w": 0, "h": 0}}`

	resp := ParseFaceResponse(raw)
	if resp.Found {
		t.Error("Expected zero-extent box to be rejected")
	}
}

func TestParseFaceResponseNotFound(t *testing.T) {
	raw := `{"found": false, "confidence": 0.0, "box": {"x": 0, "y": 0, "w": 0, "h": 0}}`

	resp := ParseFaceResponse(raw)
	if resp.Found {
		t.Error("Expected found=false to pass through")
	}
}
