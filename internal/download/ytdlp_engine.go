package download

import (
	"context"
	"fmt"
	"time"

	"github.com/lrstanley/go-ytdlp"
	"go.uber.org/zap"

	"github.com/ytget/tubegrab/internal/model"
	"github.com/ytget/tubegrab/internal/progress"
)

// DefaultProgressInterval is how often yt-dlp progress is reported
const DefaultProgressInterval = 500 * time.Millisecond

// YTDLPEngine runs downloads through the yt-dlp executable
type YTDLPEngine struct {
	interval time.Duration
	logger   *zap.Logger
}

// NewYTDLPEngine creates a yt-dlp backed engine
func NewYTDLPEngine(interval time.Duration, logger *zap.Logger) *YTDLPEngine {
	if interval <= 0 {
		interval = DefaultProgressInterval
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &YTDLPEngine{interval: interval, logger: logger}
}

// Download implements Engine
func (e *YTDLPEngine) Download(ctx context.Context, opts Options, urls ...string) error {
	if len(urls) == 0 {
		return ErrNoURL
	}

	dl := e.command(opts)
	if opts.Progress != nil {
		dl.ProgressFunc(e.interval, func(update ytdlp.ProgressUpdate) {
			opts.Progress(convertProgress(&update))
		})
	}

	result, err := dl.Run(ctx, urls...)
	if err != nil {
		return err
	}

	if result != nil {
		if info, err := result.GetExtractedInfo(); err == nil {
			for _, item := range info {
				if item.Title != nil {
					e.logger.Info("yt-dlp finished", zap.String("title", *item.Title))
				}
			}
		}
	}
	return nil
}

func (e *YTDLPEngine) command(opts Options) *ytdlp.Command {
	dl := ytdlp.New().Output(opts.OutputTemplate)

	if opts.Format != "" {
		dl.Format(opts.Format)
	}
	if opts.NoPlaylist {
		dl.NoPlaylist()
	}
	if opts.TempDir != "" {
		dl.Paths("temp:" + opts.TempDir)
	}
	if opts.ExtractAudio {
		dl.ExtractAudio().AudioFormat(opts.AudioCodec)
		if opts.AudioQuality != "" {
			dl.AudioQuality(opts.AudioQuality)
		}
	}
	if opts.TranscoderPath != "" {
		dl.FFmpegLocation(opts.TranscoderPath)
	}
	return dl
}

// convertProgress maps a yt-dlp progress update onto a ProgressEvent
func convertProgress(update *ytdlp.ProgressUpdate) model.ProgressEvent {
	downloaded := int64(update.DownloadedBytes)
	total := int64(update.TotalBytes)

	event := model.ProgressEvent{
		Status:          model.ProgressStatus(update.Status),
		DownloadedBytes: downloaded,
		TotalBytes:      total,
		Filename:        update.Filename,
	}
	if total > 0 {
		event.PercentString = progress.FormatPercent(downloaded, total)
	}
	return event
}

// EnsureInstalled makes sure a yt-dlp executable is available, downloading it
// into the user cache when it is missing from PATH.
func EnsureInstalled(ctx context.Context, logger *zap.Logger) error {
	if _, err := ytdlp.Install(ctx, nil); err != nil {
		return fmt.Errorf("failed to install yt-dlp: %w", err)
	}
	logger.Info("yt-dlp is available")
	return nil
}
