package locator

import (
	"context"
	"fmt"
	"image"

	"github.com/menta2k/face-wellness/pkg/client"
	"github.com/menta2k/face-wellness/pkg/processing"
	"github.com/menta2k/face-wellness/pkg/types"
)

// FacePrompt asks a vision model to localize the dominant face.
const FacePrompt = `You are a face locator.

Return JSON only:
{
  "found": true,
  "confidence": 0.0,
  "box": {"x": 0.0, "y": 0.0, "w": 0.0, "h": 0.0}
}

HARD RULES
- All coordinates are normalized to [0,1] (NOT pixels).
- The box must tightly include exactly one human face, forehead to chin.
- If several faces are visible, pick the largest one.
- If no face is clearly visible, return:
  {"found": false, "confidence": 0.0, "box": {"x": 0, "y": 0, "w": 0, "h": 0}}
- JSON only. No markdown, no code fences, no comments, no trailing commas.`

// Detections below this confidence are treated as not found.
const minRemoteConfidence = 0.2

// RemoteConfig tunes how images are sent to the vision backend.
type RemoteConfig struct {
	Model       string
	SendFormat  string
	SendMaxDim  int
	SendQuality int
}

// DefaultRemoteConfig returns the standard payload settings.
func DefaultRemoteConfig(model string) RemoteConfig {
	return RemoteConfig{
		Model:       model,
		SendFormat:  "jpg",
		SendMaxDim:  1024,
		SendQuality: 85,
	}
}

// Remote is the network variant: it delegates face localization to a vision
// model behind a client.VisionClient. Transport and auth failures surface
// as errors; it is the caller's policy whether those are fatal.
type Remote struct {
	client    client.VisionClient
	config    RemoteConfig
	processor *processing.Processor
}

// NewRemote builds a remote face locator over a vision client.
func NewRemote(vc client.VisionClient, config RemoteConfig) *Remote {
	return &Remote{
		client:    vc,
		config:    config,
		processor: processing.NewProcessor(),
	}
}

// Detect sends the image to the vision backend and maps the normalized box
// it returns into pixel coordinates. An unparseable or low-confidence
// answer is reported as not found, not as an error.
func (r *Remote) Detect(ctx context.Context, img image.Image) (types.BoundingBox, bool, error) {
	imgB64, err := r.processor.PrepareImageForModel(img, r.config.SendFormat, r.config.SendMaxDim, r.config.SendQuality)
	if err != nil {
		return types.BoundingBox{}, false, fmt.Errorf("failed to encode image for model: %w", err)
	}

	raw, err := r.client.Query(ctx, r.config.Model, FacePrompt, imgB64)
	if err != nil {
		return types.BoundingBox{}, false, fmt.Errorf("vision backend query failed: %w", err)
	}

	resp := client.ParseFaceResponse(raw)
	if !resp.Found || resp.Confidence < minRemoteConfidence {
		return types.BoundingBox{}, false, nil
	}

	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	box := types.BoundingBox{
		X1: int(clamp01(resp.Box.X)*float64(w) + 0.5),
		Y1: int(clamp01(resp.Box.Y)*float64(h) + 0.5),
		X2: int(clamp01(resp.Box.X+resp.Box.W)*float64(w) + 0.5),
		Y2: int(clamp01(resp.Box.Y+resp.Box.H)*float64(h) + 0.5),
	}
	return box.Clamp(w, h), true, nil
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
