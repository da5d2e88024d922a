package download

import (
	"context"

	"github.com/ytget/tubegrab/internal/model"
)

// ProgressFunc receives progress events. It may be called from any goroutine.
type ProgressFunc func(model.ProgressEvent)

// Engine resolves, downloads and post-processes the given URLs. Download blocks
// until the pipeline finishes and returns the library error on failure.
type Engine interface {
	Download(ctx context.Context, opts Options, urls ...string) error
}
