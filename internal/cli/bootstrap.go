package cli

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/ytget/tubegrab/internal/config"
	"github.com/ytget/tubegrab/internal/controller"
	"github.com/ytget/tubegrab/internal/download"
	"github.com/ytget/tubegrab/internal/i18n"
	"github.com/ytget/tubegrab/internal/logging"
	"github.com/ytget/tubegrab/internal/platform"
	"github.com/ytget/tubegrab/internal/transcode"
)

// environment is everything a command needs after startup
type environment struct {
	cfg    *config.Config
	paths  *config.Paths
	logger *zap.Logger
	texts  *i18n.Localization
	engine download.Engine
}

// bootstrap loads configuration, builds the logger, resolves paths and creates
// the download engine
func bootstrap(ctx context.Context, opts *globalOptions) (*environment, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	if opts.logLevel != "" {
		cfg.Logging.Level = opts.logLevel
	}
	if opts.language != "" {
		cfg.UI.Language = opts.language
	}

	logger, err := logging.New(cfg.Logging)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	paths, err := cfg.Resolve()
	if err != nil {
		return nil, err
	}
	logger.Debug("paths resolved",
		zap.String("app_dir", paths.AppDir),
		zap.String("temp_dir", paths.TempDir),
		zap.String("output_dir", paths.OutputDir),
	)

	for _, dir := range []string{paths.TempDir, paths.OutputDir} {
		if err := platform.CreateDirectoryIfNotExists(dir); err != nil {
			return nil, fmt.Errorf("failed to create %s: %w", dir, err)
		}
	}

	logTranscoder(ctx, paths, logger)

	if cfg.Download.AutoInstall && cfg.Download.Engine == config.EngineYTDLP {
		if err := download.EnsureInstalled(ctx, logger); err != nil {
			logger.Warn("yt-dlp auto install failed", zap.Error(err))
		}
	}

	engine, err := download.NewEngine(download.EngineConfig{
		Name:             cfg.Download.Engine,
		ProgressInterval: cfg.Download.ProgressInterval,
		NativeQuality:    cfg.Download.NativeQuality,
		NativeExt:        cfg.Download.NativeExt,
	}, logger)
	if err != nil {
		return nil, err
	}

	texts := i18n.NewLocalization()
	texts.SetLanguage(cfg.UI.Language)

	return &environment{
		cfg:    cfg,
		paths:  paths,
		logger: logger,
		texts:  texts,
		engine: engine,
	}, nil
}

func logTranscoder(ctx context.Context, paths *config.Paths, logger *zap.Logger) {
	if !paths.TranscoderFound {
		logger.Warn("audio transcoder not found, audio downloads will fail", zap.String("path", paths.Transcoder))
		return
	}

	info, err := transcode.Probe(ctx, paths.Transcoder)
	if err != nil {
		logger.Warn("transcoder probe failed", zap.String("path", paths.Transcoder), zap.Error(err))
		return
	}
	logger.Info("transcoder found",
		zap.String("path", info.Path),
		zap.String("version", info.Version),
		zap.Bool("from_path", paths.TranscoderFallback),
	)
}

// controllerSettings maps configuration onto the controller
func (e *environment) controllerSettings() controller.Settings {
	d := e.cfg.Download
	return controller.Settings{
		Profile: download.Profile{
			VideoFormat:    d.VideoFormat,
			AudioFormat:    d.AudioFormat,
			AudioCodec:     d.AudioCodec,
			AudioQuality:   d.AudioQuality,
			OutputTemplate: d.OutputTemplate,
			OutputDir:      e.paths.OutputDir,
			TranscoderPath: e.paths.Transcoder,
		},
		TempDir:  e.paths.TempDir,
		KeepTemp: d.KeepTemp,
	}
}

func (e *environment) close() {
	_ = e.logger.Sync()
}
