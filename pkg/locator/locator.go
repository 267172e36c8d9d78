// Package locator provides the face localization capability behind the
// analysis pipeline. Two interchangeable variants exist: a local cascade
// detector (pigo) and a remote vision-model backend. The pipeline never
// knows which one is active.
package locator

import (
	"context"
	"image"

	"github.com/menta2k/face-wellness/pkg/types"
)

// FaceLocator finds the dominant face in an image. Detect returns the face
// box and true when a face is found, or found=false when there is none.
// Errors are reserved for adapter faults (transport, auth, bad cascade);
// the absence of a face is never an error.
type FaceLocator interface {
	Detect(ctx context.Context, img image.Image) (box types.BoundingBox, found bool, err error)
}
