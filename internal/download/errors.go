package download

import (
	"errors"
	"fmt"

	"github.com/ytget/tubegrab/internal/model"
)

var (
	// ErrNoURL is returned when Download is called without URLs
	ErrNoURL = errors.New("no url to download")

	// ErrAudioUnsupported is returned by engines that cannot extract audio
	ErrAudioUnsupported = errors.New("audio extraction is not supported by this engine")
)

// DownloadError wraps a failure inside the download engine
type DownloadError struct {
	Mode model.Mode
	URL  string
	Err  error
}

func (e *DownloadError) Error() string {
	return fmt.Sprintf("%s download failed for %s: %v", e.Mode, e.URL, e.Err)
}

func (e *DownloadError) Unwrap() error {
	return e.Err
}

// Cause returns the text of the underlying library error
func (e *DownloadError) Cause() string {
	if e.Err == nil {
		return ""
	}
	return e.Err.Error()
}
