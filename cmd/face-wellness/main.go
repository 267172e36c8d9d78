package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"

	facewellness "github.com/menta2k/face-wellness"
	"github.com/menta2k/face-wellness/internal/config"
	"github.com/menta2k/face-wellness/internal/logging"
	"github.com/menta2k/face-wellness/internal/utils"
)

func main() {
	var in, configPath, backend, url, model, cascade, outDir, overlayExt string
	var overlayQuality int
	var noOverlay bool

	flag.StringVar(&in, "in", "", "input image path or URL (jpg/png/webp)")
	flag.StringVar(&configPath, "config", "", "config file path (JSON); flags override its values")
	flag.StringVar(&backend, "backend", "", "face locator backend: local, ollama or llamacpp")
	flag.StringVar(&url, "url", "", "server URL for remote backends")
	flag.StringVar(&model, "model", "", "vision model name for remote backends")
	flag.StringVar(&cascade, "cascade", "", "cascade file path for the local backend")
	flag.StringVar(&outDir, "out", "", "output directory for overlay and result JSON")
	flag.StringVar(&overlayExt, "overlayext", "", "overlay format: png|jpg|webp")
	flag.IntVar(&overlayQuality, "overlayquality", 0, "overlay quality for jpg/webp (1-100)")
	flag.BoolVar(&noOverlay, "nooverlay", false, "skip writing the overlay image")
	flag.Parse()

	logger, err := logging.NewLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if in == "" {
		logger.Fatal("missing -in flag",
			zap.String("usage", "face-wellness -in photo.jpg [-backend local|ollama|llamacpp] [-cascade path] [-url server_url] [-model name] [-out outdir]"))
	}

	cfg := loadConfig(logger, configPath)
	applyFlags(cfg, backend, url, model, cascade, outDir, overlayExt, overlayQuality, noOverlay)

	log := logging.WithBackend(logger, cfg.Locator.Backend)

	analyzer, err := facewellness.NewFromConfig(cfg)
	if err != nil {
		log.Fatal("failed to initialize analyzer", zap.Error(err))
	}

	if err := utils.EnsureDir(cfg.Output.Dir); err != nil {
		log.Fatal("failed to create output directory", zap.Error(err))
	}

	result, err := analyzer.AnalyzeFile(context.Background(), in)
	if err != nil {
		log.Fatal("analysis failed", zap.Error(err))
	}

	log.Info("capture quality",
		zap.Float64("brightness_mean", result.Quality.BrightnessMean),
		zap.Float64("blur_variance", result.Quality.BlurVariance),
		zap.Strings("notes", result.Quality.Notes))

	if !result.OK {
		log.Warn("analysis rejected", zap.String("message", result.Message))
	} else {
		log.Info("wellness estimate",
			zap.Int("score", result.Score.Score),
			zap.String("category", result.Score.Category),
			zap.String("confidence", result.Score.Confidence),
			zap.Strings("reasons", result.Score.Reasons))
	}

	resultPath := utils.GenerateOutputFilename(in, cfg.Output.Dir, "_result", "json")
	js, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		log.Fatal("failed to marshal result", zap.Error(err))
	}
	if err := os.WriteFile(resultPath, js, 0o644); err != nil {
		log.Fatal("failed to write result", zap.Error(err))
	}
	log.Info("wrote result", zap.String("path", resultPath))

	if result.OK && cfg.Output.WriteOverlay {
		overlayPath := utils.GenerateOutputFilename(in, cfg.Output.Dir, "_overlay", strings.ToLower(cfg.Output.OverlayFormat))
		if err := analyzer.SaveOverlay(result, overlayPath, cfg.Output.OverlayFormat, cfg.Output.OverlayQuality); err != nil {
			log.Error("failed to save overlay", zap.Error(err))
		} else {
			log.Info("wrote overlay", zap.String("path", overlayPath))
		}
	}

	if !result.OK {
		os.Exit(2)
	}
}

func loadConfig(logger *zap.Logger, configPath string) *config.Config {
	if configPath == "" {
		if utils.FileExists(config.GetConfigPath()) {
			configPath = config.GetConfigPath()
		} else {
			return config.Default()
		}
	}
	cfg, err := config.LoadFromFile(configPath)
	if err != nil {
		logger.Fatal("failed to load config", zap.String("path", configPath), zap.Error(err))
	}
	return cfg
}

func applyFlags(cfg *config.Config, backend, url, model, cascade, outDir, overlayExt string, overlayQuality int, noOverlay bool) {
	if backend != "" {
		cfg.Locator.Backend = backend
	}
	if url != "" {
		cfg.Locator.ServerURL = url
	}
	if model != "" {
		cfg.Locator.Model = model
	}
	if cascade != "" {
		cfg.Locator.CascadePath = cascade
	}
	if outDir != "" {
		cfg.Output.Dir = outDir
	}
	if overlayExt != "" {
		cfg.Output.OverlayFormat = overlayExt
	}
	if overlayQuality > 0 {
		cfg.Output.OverlayQuality = overlayQuality
	}
	if noOverlay {
		cfg.Output.WriteOverlay = false
	}
}
