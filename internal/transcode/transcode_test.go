package transcode

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func writeFakeFFmpeg(t *testing.T, dir, script string) string {
	t.Helper()
	path := filepath.Join(dir, "ffmpeg")
	if err := os.WriteFile(path, []byte(script), 0755); err != nil {
		t.Fatalf("Failed to write fake ffmpeg: %v", err)
	}
	return path
}

func TestLocate_Missing(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "ffmpeg", "bin", "ffmpeg.exe")

	_, err := Locate(missing)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("Expected ErrNotFound, got %v", err)
	}

	var nf *NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("Expected *NotFoundError, got %T", err)
	}
	if nf.Path != missing {
		t.Errorf("Expected path %s, got %s", missing, nf.Path)
	}
	if !strings.Contains(err.Error(), "does not exist") {
		t.Errorf("Expected 'does not exist' in error, got: %v", err)
	}
}

func TestLocate_EmptyPath(t *testing.T) {
	if _, err := Locate("  "); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound for empty path, got %v", err)
	}
}

func TestLocate_Directory(t *testing.T) {
	_, err := Locate(t.TempDir())
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("Expected ErrNotFound for directory, got %v", err)
	}
	if !strings.Contains(err.Error(), "not a regular file") {
		t.Errorf("Unexpected error: %v", err)
	}
}

func TestLocate_NotExecutable(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("executable bit is not used on windows")
	}

	path := filepath.Join(t.TempDir(), "ffmpeg")
	if err := os.WriteFile(path, []byte("data"), 0644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}

	_, err := Locate(path)
	if !errors.Is(err, ErrNotFound) || !strings.Contains(err.Error(), "not executable") {
		t.Errorf("Expected not executable error, got %v", err)
	}
}

func TestLocate_Found(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("shell script fixture")
	}

	path := writeFakeFFmpeg(t, t.TempDir(), "#!/bin/sh\nexit 0\n")
	got, err := Locate(path)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if got != path {
		t.Errorf("Expected %s, got %s", path, got)
	}
}

func TestResolve_Configured(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("shell script fixture")
	}

	path := writeFakeFFmpeg(t, t.TempDir(), "#!/bin/sh\nexit 0\n")
	res := Resolve(path)
	if !res.Found || res.Fallback || res.Path != path {
		t.Errorf("Unexpected resolution: %+v", res)
	}
}

func TestResolve_FallbackToPath(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("shell script fixture")
	}

	binDir := t.TempDir()
	onPath := writeFakeFFmpeg(t, binDir, "#!/bin/sh\nexit 0\n")
	t.Setenv("PATH", binDir)

	res := Resolve(filepath.Join(t.TempDir(), "missing", "ffmpeg"))
	if !res.Found || !res.Fallback {
		t.Fatalf("Expected PATH fallback, got %+v", res)
	}
	if res.Path != onPath {
		t.Errorf("Expected %s, got %s", onPath, res.Path)
	}
}

func TestResolve_Unresolved(t *testing.T) {
	t.Setenv("PATH", t.TempDir())

	configured := filepath.Join(t.TempDir(), "missing", "ffmpeg")
	res := Resolve(configured)
	if res.Found {
		t.Fatalf("Expected unresolved transcoder, got %+v", res)
	}
	if res.Path != configured {
		t.Errorf("Configured path should be kept, got %s", res.Path)
	}
}

func TestParseVersion(t *testing.T) {
	tests := []struct {
		output   string
		expected string
		wantErr  bool
	}{
		{"ffmpeg version 6.1.1 Copyright (c) 2000-2023 the FFmpeg developers\nbuilt with gcc\n", "6.1.1", false},
		{"ffmpeg version n7.0-12-gabc123 Copyright\n", "n7.0-12-gabc123", false},
		{"\n  ffmpeg version 5.1\n", "5.1", false},
		{"avconv version 12\n", "", true},
		{"", "", true},
	}

	for _, test := range tests {
		result, err := ParseVersion([]byte(test.output))
		if test.wantErr {
			if err == nil {
				t.Errorf("ParseVersion(%q) expected error, got %q", test.output, result)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseVersion(%q) returned error: %v", test.output, err)
			continue
		}
		if result != test.expected {
			t.Errorf("ParseVersion(%q) = %q, expected %q", test.output, result, test.expected)
		}
	}
}

func TestProbe(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("shell script fixture")
	}

	path := writeFakeFFmpeg(t, t.TempDir(), "#!/bin/sh\necho 'ffmpeg version 6.0 Copyright (c) the FFmpeg developers'\n")

	info, err := Probe(context.Background(), path)
	if err != nil {
		t.Fatalf("Probe returned error: %v", err)
	}
	if info.Version != "6.0" {
		t.Errorf("Expected version 6.0, got %s", info.Version)
	}
	if info.Path != path {
		t.Errorf("Expected path %s, got %s", path, info.Path)
	}
}

func TestProbe_Missing(t *testing.T) {
	_, err := Probe(context.Background(), filepath.Join(t.TempDir(), "ffmpeg"))
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}
