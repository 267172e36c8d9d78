package client

import (
	"context"
)

// VisionClient is the transport contract for remote vision-model backends.
// Query sends a prompt plus a base64-encoded image and returns the model's
// raw text response; parsing is the caller's concern.
type VisionClient interface {
	Query(ctx context.Context, model, prompt, imgB64 string) (string, error)
}
