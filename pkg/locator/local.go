package locator

import (
	"context"
	"fmt"
	"image"
	"os"

	pigo "github.com/esimov/pigo/core"

	"github.com/menta2k/face-wellness/pkg/processing"
	"github.com/menta2k/face-wellness/pkg/types"
)

// LocalConfig tunes the cascade detector.
type LocalConfig struct {
	MinSize      int
	MaxSize      int
	ShiftFactor  float64
	ScaleFactor  float64
	IoUThreshold float64
	MinQuality   float32
}

// DefaultLocalConfig returns the standard cascade tuning.
func DefaultLocalConfig() LocalConfig {
	return LocalConfig{
		MinSize:      80,
		MaxSize:      2000,
		ShiftFactor:  0.1,
		ScaleFactor:  1.1,
		IoUThreshold: 0.2,
		MinQuality:   10.0,
	}
}

// Local is the on-device variant: a classical cascade detector running on
// the grayscale image. It holds no per-call state and is safe to share
// across concurrent analyses.
type Local struct {
	classifier *pigo.Pigo
	config     LocalConfig
}

// NewLocal loads a pigo cascade from disk and builds a local face locator.
func NewLocal(cascadePath string) (*Local, error) {
	return NewLocalWithConfig(cascadePath, DefaultLocalConfig())
}

// NewLocalWithConfig loads a pigo cascade with custom detector tuning.
func NewLocalWithConfig(cascadePath string, config LocalConfig) (*Local, error) {
	data, err := os.ReadFile(cascadePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read cascade file: %w", err)
	}

	classifier, err := pigo.NewPigo().Unpack(data)
	if err != nil {
		return nil, fmt.Errorf("failed to unpack cascade: %w", err)
	}

	return &Local{classifier: classifier, config: config}, nil
}

// Detect runs the cascade over the image and returns the largest clustered
// detection above the quality threshold, or found=false when there is none.
func (l *Local) Detect(_ context.Context, img image.Image) (types.BoundingBox, bool, error) {
	gray := processing.Grayscale(img)
	b := gray.Bounds()
	w, h := b.Dx(), b.Dy()
	if w == 0 || h == 0 {
		return types.BoundingBox{}, false, nil
	}

	maxSize := l.config.MaxSize
	if m := minDim(w, h); maxSize > m {
		maxSize = m
	}

	params := pigo.CascadeParams{
		MinSize:     l.config.MinSize,
		MaxSize:     maxSize,
		ShiftFactor: l.config.ShiftFactor,
		ScaleFactor: l.config.ScaleFactor,
		ImageParams: pigo.ImageParams{
			Pixels: gray.Pix,
			Rows:   h,
			Cols:   w,
			Dim:    gray.Stride,
		},
	}

	dets := l.classifier.RunCascade(params, 0.0)
	dets = l.classifier.ClusterDetections(dets, l.config.IoUThreshold)

	best := pigo.Detection{}
	found := false
	for _, det := range dets {
		if det.Q < l.config.MinQuality {
			continue
		}
		if !found || det.Scale > best.Scale {
			best = det
			found = true
		}
	}
	if !found {
		return types.BoundingBox{}, false, nil
	}

	half := best.Scale / 2
	box := types.BoundingBox{
		X1: best.Col - half,
		Y1: best.Row - half,
		X2: best.Col - half + best.Scale,
		Y2: best.Row - half + best.Scale,
	}
	return box.Clamp(w, h), true, nil
}

func minDim(a, b int) int {
	if a < b {
		return a
	}
	return b
}
