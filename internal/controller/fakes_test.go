package controller

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/ytget/tubegrab/internal/download"
	"github.com/ytget/tubegrab/internal/i18n"
)

// recordingView stores every call so tests can assert on the sequence
type recordingView struct {
	mu       sync.Mutex
	visible  []bool
	values   []int
	messages []string
	busy     []bool
}

func (v *recordingView) ShowProgress() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.visible = append(v.visible, true)
}

func (v *recordingView) HideProgress() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.visible = append(v.visible, false)
}

func (v *recordingView) SetProgress(percent int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.values = append(v.values, percent)
}

func (v *recordingView) SetMessage(text string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.messages = append(v.messages, text)
}

func (v *recordingView) SetBusy(busy bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.busy = append(v.busy, busy)
}

func (v *recordingView) lastMessage() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	if len(v.messages) == 0 {
		return ""
	}
	return v.messages[len(v.messages)-1]
}

func (v *recordingView) progressValues() []int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return append([]int(nil), v.values...)
}

func (v *recordingView) visibility() []bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return append([]bool(nil), v.visible...)
}

// fakeEngine replays scripted progress events and returns err
type fakeEngine struct {
	mu      sync.Mutex
	calls   []download.Options
	urls    []string
	percent []string
	finish  bool
	err     error

	// during runs inside Download before it returns
	during func(opts download.Options)
}

func (e *fakeEngine) Download(ctx context.Context, opts download.Options, urls ...string) error {
	e.mu.Lock()
	e.calls = append(e.calls, opts)
	e.urls = append(e.urls, urls...)
	e.mu.Unlock()

	if e.during != nil {
		e.during(opts)
	}

	for _, p := range e.percent {
		opts.Progress(downloading(p))
	}
	if e.finish {
		opts.Progress(finished())
	}
	return e.err
}

func (e *fakeEngine) callCount() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.calls)
}

func (e *fakeEngine) lastOptions() download.Options {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.calls[len(e.calls)-1]
}

func englishTexts() *i18n.Localization {
	l := i18n.NewLocalization()
	l.SetLanguage(i18n.LanguageEnglish)
	return l
}

func testSettings(t *testing.T) Settings {
	t.Helper()
	return Settings{
		Profile: download.Profile{
			VideoFormat:    "best",
			AudioFormat:    "bestaudio/best",
			AudioCodec:     "mp3",
			AudioQuality:   "192",
			OutputTemplate: "%(title)s.%(ext)s",
			OutputDir:      t.TempDir(),
			TranscoderPath: fakeTranscoder(t),
		},
		TempDir: t.TempDir(),
	}
}

func fakeTranscoder(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ffmpeg")
	if err := os.WriteFile(path, []byte("#!/bin/sh\nexit 0\n"), 0o755); err != nil {
		t.Fatalf("failed to write fake transcoder: %v", err)
	}
	return path
}
