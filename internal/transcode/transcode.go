// Package transcode locates and verifies the ffmpeg executable yt-dlp uses to
// extract audio tracks.
package transcode

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strings"
	"time"
)

// FFmpeg constants
const (
	FFmpegCommand       = "ffmpeg"
	VersionFlag         = "-version"
	VersionPrefix       = "ffmpeg version "
	DefaultProbeTimeout = 5 * time.Second
)

// ErrNotFound is matched by every NotFoundError
var ErrNotFound = errors.New("transcoder not found")

// NotFoundError describes why a transcoder path cannot be used
type NotFoundError struct {
	Path   string
	Reason string
}

func (e *NotFoundError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("transcoder not found: %s", e.Path)
	}
	return fmt.Sprintf("transcoder not found: %s (%s)", e.Path, e.Reason)
}

// Is makes errors.Is(err, ErrNotFound) true
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// Resolution is the outcome of Resolve
type Resolution struct {
	Path     string
	Found    bool
	Fallback bool // true when found on PATH instead of the configured location
}

// Locate checks that path points at a regular, executable file
func Locate(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return "", &NotFoundError{Path: path, Reason: "no path configured"}
	}

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", &NotFoundError{Path: path, Reason: "file does not exist"}
		}
		return "", &NotFoundError{Path: path, Reason: err.Error()}
	}
	if !info.Mode().IsRegular() {
		return "", &NotFoundError{Path: path, Reason: "not a regular file"}
	}
	if runtime.GOOS != "windows" && info.Mode().Perm()&0111 == 0 {
		return "", &NotFoundError{Path: path, Reason: "not executable"}
	}

	return path, nil
}

// Resolve prefers the configured path and falls back to ffmpeg on PATH
func Resolve(configured string) Resolution {
	if path, err := Locate(configured); err == nil {
		return Resolution{Path: path, Found: true}
	}

	if path, err := exec.LookPath(FFmpegCommand); err == nil {
		return Resolution{Path: path, Found: true, Fallback: true}
	}

	return Resolution{Path: configured}
}

// Info describes a probed transcoder
type Info struct {
	Path    string
	Version string
}

// Probe runs "<path> -version" and extracts the version string
func Probe(ctx context.Context, path string) (Info, error) {
	if _, err := Locate(path); err != nil {
		return Info{}, err
	}

	ctx, cancel := context.WithTimeout(ctx, DefaultProbeTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, path, VersionFlag)
	output, err := cmd.Output()
	if err != nil {
		return Info{}, fmt.Errorf("failed to run %s %s: %w", path, VersionFlag, err)
	}

	version, err := ParseVersion(output)
	if err != nil {
		return Info{}, err
	}

	return Info{Path: path, Version: version}, nil
}

// ParseVersion reads the version token from "ffmpeg -version" output
func ParseVersion(output []byte) (string, error) {
	scanner := bufio.NewScanner(bytes.NewReader(output))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if !strings.HasPrefix(line, VersionPrefix) {
			continue
		}

		fields := strings.Fields(strings.TrimPrefix(line, VersionPrefix))
		if len(fields) == 0 {
			break
		}
		return fields[0], nil
	}

	return "", fmt.Errorf("unrecognised %s output", VersionFlag)
}
