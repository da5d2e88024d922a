package controller

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/ytget/tubegrab/internal/download"
	"github.com/ytget/tubegrab/internal/i18n"
	"github.com/ytget/tubegrab/internal/model"
	"github.com/ytget/tubegrab/internal/platform"
	"github.com/ytget/tubegrab/internal/progress"
	"github.com/ytget/tubegrab/internal/transcode"
)

// ErrBusy is returned when a download is requested while another one runs
var ErrBusy = errors.New("a download is already in progress")

// Settings holds what the controller needs from configuration
type Settings struct {
	Profile download.Profile
	// TempDir is the parent of the per-download scratch directories
	TempDir  string
	KeepTemp bool
}

// Controller drives single downloads and relays their progress to the view
type Controller struct {
	engine   download.Engine
	view     View
	texts    Translator
	settings Settings
	logger   *zap.Logger

	busy atomic.Bool
}

// New creates a controller
func New(engine download.Engine, view View, texts Translator, settings Settings, logger *zap.Logger) *Controller {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Controller{
		engine:   engine,
		view:     view,
		texts:    texts,
		settings: settings,
		logger:   logger.Named("controller"),
	}
}

// State reports whether a download is running
func (c *Controller) State() model.State {
	if c.busy.Load() {
		return model.StateDownloading
	}
	return model.StateIdle
}

// DownloadVideo downloads url in the configured video format
func (c *Controller) DownloadVideo(ctx context.Context, url string) error {
	return c.run(ctx, url, model.ModeVideo)
}

// DownloadAudio downloads url and extracts its audio track
func (c *Controller) DownloadAudio(ctx context.Context, url string) error {
	return c.run(ctx, url, model.ModeAudio)
}

// DownloadPlaylist is not implemented; it only reports so to the user.
func (c *Controller) DownloadPlaylist(_ context.Context, url string) error {
	fields := []zap.Field{zap.String("url", url)}
	if platform.IsPlaylistURL(url) {
		if id, err := platform.ExtractPlaylistID(url); err == nil {
			fields = append(fields, zap.String("playlist_id", id))
		}
	}
	c.logger.Info("playlist download requested", fields...)

	c.view.SetMessage(c.texts.GetText(i18n.KeyPlaylistNotSupported))
	return nil
}

// Hook receives progress events from the engine. It may run on any goroutine.
func (c *Controller) Hook(event model.ProgressEvent) {
	switch event.Status {
	case model.ProgressDownloading:
		percent, err := progress.ParsePercent(event.PercentString)
		if err != nil {
			c.logger.Debug("ignoring progress update", zap.String("percent", event.PercentString), zap.Error(err))
			return
		}
		c.view.SetProgress(percent)
	case model.ProgressFinished:
		c.view.SetProgress(100)
		c.logger.Info("download finished", zap.String("file", event.Filename))
	default:
		if event.Status.IsTerminal() {
			c.logger.Warn("engine reported an error", zap.String("file", event.Filename))
			return
		}
		c.logger.Debug("ignoring progress status", zap.String("status", event.Status.String()))
	}
}

func (c *Controller) run(ctx context.Context, url string, mode model.Mode) error {
	req, err := model.NewDownloadRequest(url, mode)
	if err != nil {
		c.logger.Warn("invalid download request", zap.String("mode", mode.String()), zap.Error(err))
		if errors.Is(err, model.ErrEmptyURL) {
			c.view.SetMessage(c.errorText(c.texts.GetText(i18n.KeyInvalidLink)))
		} else {
			c.view.SetMessage(c.errorText(err.Error()))
		}
		return err
	}

	if !c.busy.CompareAndSwap(false, true) {
		c.logger.Warn("download already in progress", zap.String("url", req.URL))
		c.view.SetMessage(c.texts.GetText(i18n.KeyAlreadyInProgress))
		return ErrBusy
	}
	defer c.busy.Store(false)

	logger := c.logger.With(
		zap.String("request_id", req.ID),
		zap.String("mode", mode.String()),
		zap.String("url", req.URL),
	)

	if mode == model.ModeAudio {
		path := c.settings.Profile.TranscoderPath
		if _, err := transcode.Locate(path); err != nil {
			logger.Error("transcoder unavailable", zap.Error(err))
			c.view.SetMessage(c.errorText(c.texts.GetText(i18n.KeyTranscoderMissing) + ": " + path))
			return fmt.Errorf("audio download: %w", err)
		}
	}

	c.view.SetBusy(true)
	c.view.ShowProgress()
	c.view.SetProgress(0)
	c.view.SetMessage("")
	defer func() {
		c.view.HideProgress()
		c.view.SetBusy(false)
	}()

	tempDir := c.scratchDir(req, logger)
	if tempDir != "" && !c.settings.KeepTemp {
		defer func() {
			if err := platform.RemoveScratchDir(c.settings.TempDir, tempDir); err != nil {
				logger.Warn("failed to remove scratch directory", zap.String("dir", tempDir), zap.Error(err))
			}
		}()
	}

	opts, err := download.BuildOptions(mode, c.settings.Profile, tempDir, c.Hook)
	if err != nil {
		logger.Error("invalid download options", zap.Error(err))
		c.view.SetMessage(c.errorText(err.Error()))
		return err
	}

	logger.Info("download started")
	if err := c.engine.Download(ctx, opts, req.URL); err != nil {
		dlErr := &download.DownloadError{Mode: mode, URL: req.URL, Err: err}
		logger.Error("download failed", zap.Error(err))
		c.view.SetMessage(c.errorText(dlErr.Cause()))
		return dlErr
	}

	logger.Info("download completed")
	c.view.SetMessage(c.successText(mode))
	return nil
}

// scratchDir creates the per-download temp directory. An empty result lets
// the engine fall back to its own temp location.
func (c *Controller) scratchDir(req *model.DownloadRequest, logger *zap.Logger) string {
	if c.settings.TempDir == "" {
		return ""
	}
	dir, err := platform.NewScratchDir(c.settings.TempDir, req.ID)
	if err != nil {
		logger.Warn("scratch directory unavailable", zap.Error(err))
		return ""
	}
	return dir
}

func (c *Controller) errorText(cause string) string {
	return c.texts.GetText(i18n.KeyErrorPrefix) + ": " + cause
}

func (c *Controller) successText(mode model.Mode) string {
	if mode == model.ModeAudio {
		return fmt.Sprintf(c.texts.GetText(i18n.KeyAudioDownloaded), c.settings.Profile.AudioCodec)
	}
	return c.texts.GetText(i18n.KeyVideoDownloaded)
}
