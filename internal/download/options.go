package download

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ytget/tubegrab/internal/model"
)

// Profile is the static part of the options, taken from configuration
type Profile struct {
	VideoFormat    string
	AudioFormat    string
	AudioCodec     string
	AudioQuality   string
	OutputTemplate string
	OutputDir      string
	TranscoderPath string
}

// Options is the full configuration for a single engine call
type Options struct {
	Mode           model.Mode
	Format         string
	OutputTemplate string // includes the output directory
	TempDir        string // intermediate files; empty lets the engine decide
	NoPlaylist     bool

	ExtractAudio   bool
	AudioCodec     string
	AudioQuality   string
	TranscoderPath string

	Progress ProgressFunc
}

// BuildOptions assembles the options for mode.
//
// Video: format selector, title based output template, progress callback.
// Audio: audio format selector, audio extraction to the configured codec and
// bitrate, transcoder path, progress callback, same template.
func BuildOptions(mode model.Mode, p Profile, tempDir string, progress ProgressFunc) (Options, error) {
	if strings.TrimSpace(p.OutputTemplate) == "" {
		return Options{}, fmt.Errorf("output template is empty")
	}

	opts := Options{
		Mode:           mode,
		OutputTemplate: p.OutputTemplate,
		TempDir:        tempDir,
		NoPlaylist:     true,
		Progress:       progress,
	}
	if p.OutputDir != "" {
		opts.OutputTemplate = filepath.Join(p.OutputDir, p.OutputTemplate)
	}

	switch mode {
	case model.ModeVideo:
		opts.Format = p.VideoFormat
	case model.ModeAudio:
		if strings.TrimSpace(p.AudioCodec) == "" {
			return Options{}, fmt.Errorf("audio codec is empty")
		}
		opts.Format = p.AudioFormat
		opts.ExtractAudio = true
		opts.AudioCodec = p.AudioCodec
		opts.AudioQuality = p.AudioQuality
		opts.TranscoderPath = p.TranscoderPath
	default:
		return Options{}, fmt.Errorf("unknown download mode: %q", mode)
	}

	return opts, nil
}
