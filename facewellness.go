// Package facewellness estimates a heuristic "wellness" signal from a
// single face photo.
//
// The pipeline validates capture quality, locates a face, derives eye, lip
// and skin regions of interest, scores each region from its intensity
// statistics, aggregates the risks into a 0-100 score with a category and
// confidence label, and renders an explainability overlay.
//
// Basic usage:
//
//	package main
//
//	import (
//		"context"
//		"fmt"
//		"log"
//
//		facewellness "github.com/menta2k/face-wellness"
//		"github.com/menta2k/face-wellness/pkg/locator"
//	)
//
//	func main() {
//		loc, err := locator.NewLocal("cascade/facefinder")
//		if err != nil {
//			log.Fatal(err)
//		}
//
//		analyzer := facewellness.New(loc)
//		result, err := analyzer.AnalyzeFile(context.Background(), "photo.jpg")
//		if err != nil {
//			log.Fatal(err)
//		}
//
//		if !result.OK {
//			fmt.Println(result.Message)
//			return
//		}
//		fmt.Printf("score=%d (%s, %s confidence)\n",
//			result.Score.Score, result.Score.Category, result.Score.Confidence)
//	}
//
// The face locator is a capability interface with two variants: a local
// cascade detector (pigo) and a remote vision-model backend (Ollama or a
// llama.cpp server). Both are interchangeable; the pipeline never branches
// on which one is active. All scoring is fixed heuristic arithmetic over
// brightness and contrast statistics; none of it is medically validated.
package facewellness

import (
	"context"
	"fmt"
	"image"

	"github.com/menta2k/face-wellness/internal/config"
	"github.com/menta2k/face-wellness/pkg/client"
	"github.com/menta2k/face-wellness/pkg/llamacpp"
	"github.com/menta2k/face-wellness/pkg/locator"
	"github.com/menta2k/face-wellness/pkg/ollama"
	"github.com/menta2k/face-wellness/pkg/pipeline"
	"github.com/menta2k/face-wellness/pkg/processing"
	"github.com/menta2k/face-wellness/pkg/types"
)

// Version of the face wellness library
const Version = "1.0.0"

// Analyzer provides a high-level interface for face wellness analysis
type Analyzer struct {
	pipeline  *pipeline.Pipeline
	processor *processing.Processor
}

// New creates an Analyzer over an already constructed face locator.
func New(loc locator.FaceLocator) *Analyzer {
	return &Analyzer{
		pipeline:  pipeline.New(loc),
		processor: processing.NewProcessor(),
	}
}

// NewFromConfig builds the face locator selected by the configuration and
// wraps it in an Analyzer. This is the only place the backend choice is
// branched on; downstream the locator is just the capability interface.
func NewFromConfig(cfg *config.Config) (*Analyzer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	loc, err := buildLocator(cfg.Locator)
	if err != nil {
		return nil, err
	}
	return New(loc), nil
}

func buildLocator(lc config.LocatorConfig) (locator.FaceLocator, error) {
	switch lc.Backend {
	case config.BackendLocal:
		loc, err := locator.NewLocal(lc.CascadePath)
		if err != nil {
			return nil, fmt.Errorf("failed to create local face locator: %w", err)
		}
		return loc, nil

	case config.BackendOllama:
		url := lc.ServerURL
		if url == "" {
			url = "http://localhost:11434"
		}
		vc, err := ollama.NewClient(url)
		if err != nil {
			return nil, fmt.Errorf("failed to create ollama client: %w", err)
		}
		return newRemote(vc, lc), nil

	case config.BackendLlamaCpp:
		vc, err := llamacpp.NewClient(lc.ServerURL)
		if err != nil {
			return nil, fmt.Errorf("failed to create llama.cpp client: %w", err)
		}
		return newRemote(vc, lc), nil

	default:
		return nil, fmt.Errorf("unknown locator backend: %s", lc.Backend)
	}
}

func newRemote(vc client.VisionClient, lc config.LocatorConfig) *locator.Remote {
	rc := locator.DefaultRemoteConfig(lc.Model)
	if lc.SendFormat != "" {
		rc.SendFormat = lc.SendFormat
	}
	if lc.SendMaxDim > 0 {
		rc.SendMaxDim = lc.SendMaxDim
	}
	if lc.SendQuality > 0 {
		rc.SendQuality = lc.SendQuality
	}
	return locator.NewRemote(vc, rc)
}

// AnalyzeImage runs the full pipeline on an in-memory image.
func (a *Analyzer) AnalyzeImage(ctx context.Context, img image.Image) (types.AnalysisResult, error) {
	return a.pipeline.Analyze(ctx, img)
}

// AnalyzeFile loads an image from a file path or URL and analyzes it.
func (a *Analyzer) AnalyzeFile(ctx context.Context, source string) (types.AnalysisResult, error) {
	img, err := a.processor.LoadImageSmart(source)
	if err != nil {
		return types.AnalysisResult{}, fmt.Errorf("failed to load image: %w", err)
	}
	return a.pipeline.Analyze(ctx, img)
}

// SaveOverlay writes a result's explainability overlay to a file. It is a
// no-op error when the result carries no overlay.
func (a *Analyzer) SaveOverlay(result types.AnalysisResult, path, format string, quality int) error {
	if result.Explain == nil || result.Explain.Overlay == nil {
		return fmt.Errorf("result has no overlay to save")
	}
	return a.processor.SaveImage(result.Explain.Overlay, path, format, quality, false)
}

// GetVersion returns the library version
func GetVersion() string {
	return Version
}
