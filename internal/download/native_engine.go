package download

import (
	"context"

	nativeytdlp "github.com/ytget/ytdlp/v2"
	"go.uber.org/zap"

	"github.com/ytget/tubegrab/internal/model"
)

// NativeEngine downloads videos with the pure Go ytdlp client. It does not run
// a transcoder, so audio extraction is rejected. Files are written to the
// working directory.
type NativeEngine struct {
	quality string
	ext     string
	logger  *zap.Logger
}

// NewNativeEngine creates a native engine using the given quality selector and container
func NewNativeEngine(quality, ext string, logger *zap.Logger) *NativeEngine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &NativeEngine{quality: quality, ext: ext, logger: logger}
}

// Download implements Engine
func (e *NativeEngine) Download(ctx context.Context, opts Options, urls ...string) error {
	if len(urls) == 0 {
		return ErrNoURL
	}
	if opts.ExtractAudio {
		return ErrAudioUnsupported
	}

	for _, url := range urls {
		info, err := nativeytdlp.New().WithFormat(e.quality, e.ext).Download(ctx, url)
		if err != nil {
			return err
		}
		e.logger.Info("native download finished", zap.String("url", url), zap.String("title", info.Title))

		if opts.Progress != nil {
			opts.Progress(model.ProgressEvent{
				Status:        model.ProgressFinished,
				PercentString: "100.0%",
			})
		}
	}
	return nil
}
