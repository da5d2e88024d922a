package config

import (
	"fmt"
	"path/filepath"

	"github.com/ytget/tubegrab/internal/platform"
	"github.com/ytget/tubegrab/internal/transcode"
)

// Paths are the absolute locations resolved at startup
type Paths struct {
	AppDir    string
	TempDir   string
	OutputDir string
	Icon      string
	IconFound bool

	Transcoder         string
	TranscoderFound    bool
	TranscoderFallback bool // found on PATH rather than at the configured location
}

// Resolve turns the configured paths into absolute ones. The transcoder falls
// back to ffmpeg on PATH; a missing transcoder or icon is reported, not fatal.
func (c *Config) Resolve() (*Paths, error) {
	appDir := c.Paths.AppDir
	if appDir == "" {
		dir, err := platform.AppDir()
		if err != nil {
			return nil, fmt.Errorf("failed to determine application directory: %w", err)
		}
		appDir = dir
	}
	appDir, err := filepath.Abs(appDir)
	if err != nil {
		return nil, fmt.Errorf("failed to get absolute path: %w", err)
	}

	outputDir := c.Paths.OutputDir
	if outputDir == "" {
		outputDir = DefaultOutputDir
	}
	outputDir, err = filepath.Abs(outputDir)
	if err != nil {
		return nil, fmt.Errorf("failed to get absolute output path: %w", err)
	}

	tempDir := c.Paths.TempDir
	if tempDir == "" {
		tempDir = DefaultTempDir
	}

	paths := &Paths{
		AppDir:    appDir,
		TempDir:   platform.ResolvePath(appDir, tempDir),
		OutputDir: outputDir,
	}

	if c.Paths.Icon != "" {
		paths.Icon = platform.ResolvePath(appDir, c.Paths.Icon)
		paths.IconFound = platform.FileExists(paths.Icon)
	}

	configured := c.Paths.Transcoder
	if configured != "" {
		configured = platform.ResolvePath(appDir, configured)
	}
	res := transcode.Resolve(configured)
	paths.Transcoder = res.Path
	paths.TranscoderFound = res.Found
	paths.TranscoderFallback = res.Fallback

	return paths, nil
}
