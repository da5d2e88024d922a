package controller

import (
	"context"
	"errors"
	"os"
	"reflect"
	"sync"
	"testing"
	"time"

	"go.uber.org/zap/zaptest"

	"github.com/ytget/tubegrab/internal/download"
	"github.com/ytget/tubegrab/internal/i18n"
	"github.com/ytget/tubegrab/internal/model"
	"github.com/ytget/tubegrab/internal/transcode"
)

func downloading(p string) model.ProgressEvent {
	return model.ProgressEvent{Status: model.ProgressDownloading, PercentString: p}
}

func finished() model.ProgressEvent {
	return model.ProgressEvent{Status: model.ProgressFinished, Filename: "video.mp4"}
}

func newTestController(t *testing.T, engine download.Engine) (*Controller, *recordingView) {
	t.Helper()
	view := &recordingView{}
	return New(engine, view, englishTexts(), testSettings(t), zaptest.NewLogger(t)), view
}

func TestController_EmptyURL(t *testing.T) {
	inputs := []string{"", "   ", "\t\n"}

	for _, mode := range []model.Mode{model.ModeVideo, model.ModeAudio} {
		for _, in := range inputs {
			engine := &fakeEngine{}
			c, view := newTestController(t, engine)

			var err error
			if mode == model.ModeVideo {
				err = c.DownloadVideo(context.Background(), in)
			} else {
				err = c.DownloadAudio(context.Background(), in)
			}

			if !errors.Is(err, model.ErrEmptyURL) {
				t.Errorf("%s(%q) error = %v, want ErrEmptyURL", mode, in, err)
			}
			if engine.callCount() != 0 {
				t.Errorf("%s(%q) called the engine", mode, in)
			}
			if got := view.lastMessage(); got != "Error: please provide a valid link." {
				t.Errorf("%s(%q) message = %q", mode, in, got)
			}
			if len(view.visibility()) != 0 || len(view.progressValues()) != 0 {
				t.Errorf("%s(%q) touched the progress bar", mode, in)
			}
		}
	}
}

func TestController_VideoSuccess(t *testing.T) {
	engine := &fakeEngine{percent: []string{"0.0%", "45.5%", "99.9%"}}
	c, view := newTestController(t, engine)

	if err := c.DownloadVideo(context.Background(), "https://www.youtube.com/watch?v=abc"); err != nil {
		t.Fatalf("DownloadVideo() error = %v", err)
	}

	if got, want := view.visibility(), []bool{true, false}; !reflect.DeepEqual(got, want) {
		t.Errorf("visibility = %v, want %v", got, want)
	}
	// leading 0 is the reset at start
	if got, want := view.progressValues(), []int{0, 0, 45, 99}; !reflect.DeepEqual(got, want) {
		t.Errorf("progress = %v, want %v", got, want)
	}
	if got := view.lastMessage(); got != "Success: the video has been downloaded." {
		t.Errorf("message = %q", got)
	}
	if got := engine.urls; !reflect.DeepEqual(got, []string{"https://www.youtube.com/watch?v=abc"}) {
		t.Errorf("engine urls = %v", got)
	}
	if c.State() != model.StateIdle {
		t.Errorf("State() = %v after completion", c.State())
	}
}

func TestController_FinishedForcesFull(t *testing.T) {
	engine := &fakeEngine{percent: []string{"12.0%"}, finish: true}
	c, view := newTestController(t, engine)

	if err := c.DownloadVideo(context.Background(), "https://x/v"); err != nil {
		t.Fatalf("DownloadVideo() error = %v", err)
	}

	values := view.progressValues()
	if values[len(values)-1] != 100 {
		t.Errorf("last progress = %d, want 100 (all: %v)", values[len(values)-1], values)
	}
}

func TestController_EngineError(t *testing.T) {
	cause := errors.New("Unsupported URL")
	engine := &fakeEngine{err: cause}
	c, view := newTestController(t, engine)

	err := c.DownloadVideo(context.Background(), "https://not-a-video")

	var dlErr *download.DownloadError
	if !errors.As(err, &dlErr) {
		t.Fatalf("error = %v, want *DownloadError", err)
	}
	if !errors.Is(err, cause) {
		t.Error("DownloadError should wrap the engine error")
	}
	if got := view.lastMessage(); got != "Error: Unsupported URL" {
		t.Errorf("message = %q", got)
	}
	vis := view.visibility()
	if len(vis) == 0 || vis[len(vis)-1] {
		t.Errorf("bar should end hidden, got %v", vis)
	}
}

func TestController_Playlist(t *testing.T) {
	for _, in := range []string{"", "https://www.youtube.com/playlist?list=PL123", "garbage"} {
		engine := &fakeEngine{}
		c, view := newTestController(t, engine)

		if err := c.DownloadPlaylist(context.Background(), in); err != nil {
			t.Errorf("DownloadPlaylist(%q) error = %v", in, err)
		}
		if engine.callCount() != 0 {
			t.Errorf("DownloadPlaylist(%q) called the engine", in)
		}
		if got := view.lastMessage(); got != "Playlist download is not implemented yet." {
			t.Errorf("DownloadPlaylist(%q) message = %q", in, got)
		}
	}
}

func TestController_SequentialRunsResetBar(t *testing.T) {
	engine := &fakeEngine{percent: []string{"80.0%"}}
	c, view := newTestController(t, engine)

	for i := 0; i < 2; i++ {
		if err := c.DownloadVideo(context.Background(), "https://x/v"); err != nil {
			t.Fatalf("run %d: DownloadVideo() error = %v", i, err)
		}
	}

	if got, want := view.progressValues(), []int{0, 80, 0, 80}; !reflect.DeepEqual(got, want) {
		t.Errorf("progress = %v, want %v", got, want)
	}
	if got, want := view.visibility(), []bool{true, false, true, false}; !reflect.DeepEqual(got, want) {
		t.Errorf("visibility = %v, want %v", got, want)
	}
	if engine.callCount() != 2 {
		t.Errorf("engine calls = %d, want 2", engine.callCount())
	}
}

func TestController_BusyRejectsSecondRun(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	engine := &fakeEngine{during: func(download.Options) {
		close(started)
		<-release
	}}
	c, view := newTestController(t, engine)

	var wg sync.WaitGroup
	wg.Add(1)
	var firstErr error
	go func() {
		defer wg.Done()
		firstErr = c.DownloadVideo(context.Background(), "https://x/first")
	}()

	select {
	case <-started:
	case <-time.After(5 * time.Second):
		t.Fatal("first download did not start")
	}

	if !c.State().IsActive() {
		t.Errorf("State() = %v while running", c.State())
	}
	if err := c.DownloadAudio(context.Background(), "https://x/second"); !errors.Is(err, ErrBusy) {
		t.Errorf("second call error = %v, want ErrBusy", err)
	}
	if got := view.lastMessage(); got != "A download is already in progress." {
		t.Errorf("message = %q", got)
	}

	close(release)
	wg.Wait()

	if firstErr != nil {
		t.Errorf("first download error = %v", firstErr)
	}
	if engine.callCount() != 1 {
		t.Errorf("engine calls = %d, want 1", engine.callCount())
	}
}

func TestController_AudioMissingTranscoder(t *testing.T) {
	engine := &fakeEngine{}
	view := &recordingView{}
	settings := testSettings(t)
	settings.Profile.TranscoderPath = "/nonexistent/ffmpeg"
	c := New(engine, view, englishTexts(), settings, zaptest.NewLogger(t))

	err := c.DownloadAudio(context.Background(), "https://x/v")
	if !errors.Is(err, transcode.ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
	if engine.callCount() != 0 {
		t.Error("engine was called without a transcoder")
	}
	if got := view.lastMessage(); got != "Error: audio transcoder not found: /nonexistent/ffmpeg" {
		t.Errorf("message = %q", got)
	}
	if len(view.visibility()) != 0 {
		t.Error("progress bar should stay untouched")
	}
	if c.State() != model.StateIdle {
		t.Error("slot was not released")
	}
}

func TestController_AudioSuccess(t *testing.T) {
	engine := &fakeEngine{percent: []string{"50.0%"}, finish: true}
	c, view := newTestController(t, engine)

	if err := c.DownloadAudio(context.Background(), "https://x/v"); err != nil {
		t.Fatalf("DownloadAudio() error = %v", err)
	}

	opts := engine.lastOptions()
	if !opts.ExtractAudio || opts.AudioCodec != "mp3" || opts.AudioQuality != "192" {
		t.Errorf("audio options = %+v", opts)
	}
	if opts.TranscoderPath != c.settings.Profile.TranscoderPath {
		t.Errorf("TranscoderPath = %q", opts.TranscoderPath)
	}
	if got := view.lastMessage(); got != "Success: the audio has been downloaded as mp3." {
		t.Errorf("message = %q", got)
	}
}

func TestController_ScratchDirLifecycle(t *testing.T) {
	tests := []struct {
		name     string
		keepTemp bool
	}{
		{"removed", false},
		{"kept", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var existed bool
			engine := &fakeEngine{during: func(opts download.Options) {
				_, err := os.Stat(opts.TempDir)
				existed = err == nil
			}}
			view := &recordingView{}
			settings := testSettings(t)
			settings.KeepTemp = tt.keepTemp
			c := New(engine, view, englishTexts(), settings, zaptest.NewLogger(t))

			if err := c.DownloadVideo(context.Background(), "https://x/v"); err != nil {
				t.Fatalf("DownloadVideo() error = %v", err)
			}

			dir := engine.lastOptions().TempDir
			if dir == "" {
				t.Fatal("engine got no scratch directory")
			}
			if !existed {
				t.Error("scratch directory did not exist during the download")
			}
			_, err := os.Stat(dir)
			if tt.keepTemp && err != nil {
				t.Errorf("scratch directory was removed: %v", err)
			}
			if !tt.keepTemp && !os.IsNotExist(err) {
				t.Errorf("scratch directory still present: %v", err)
			}
		})
	}
}

func TestController_HookIgnoresNoise(t *testing.T) {
	c, view := newTestController(t, &fakeEngine{})

	c.Hook(downloading("N/A"))
	c.Hook(downloading(""))
	c.Hook(model.ProgressEvent{Status: model.ProgressPostProcessing})
	c.Hook(downloading("\x1b[0;94m 33.3%\x1b[0m"))

	if got, want := view.progressValues(), []int{33}; !reflect.DeepEqual(got, want) {
		t.Errorf("progress = %v, want %v", got, want)
	}
}

func TestController_LanguageSwitchDuringDownload(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	engine := &fakeEngine{during: func(download.Options) {
		close(started)
		<-release
	}}
	texts := englishTexts()
	view := &recordingView{}
	c := New(engine, view, texts, testSettings(t), zaptest.NewLogger(t))

	done := make(chan error, 1)
	go func() {
		done <- c.DownloadVideo(context.Background(), "https://x/v")
	}()

	select {
	case <-started:
	case <-time.After(5 * time.Second):
		t.Fatal("download did not start")
	}

	// the menu switches language on the UI goroutine while the download runs
	close(release)
	texts.SetLanguage(i18n.LanguagePolish)

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("DownloadVideo() error = %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("download did not finish")
	}
	if view.lastMessage() == "" {
		t.Error("no completion message")
	}
}
