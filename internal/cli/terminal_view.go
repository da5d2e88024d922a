package cli

import (
	"fmt"
	"io"
	"sync"

	"github.com/schollz/progressbar/v3"
)

// TerminalView renders controller output as a progress bar and text lines
type TerminalView struct {
	mu      sync.Mutex
	out     io.Writer
	bar     *progressbar.ProgressBar
	value   int
	busy    bool
	message string
}

// NewTerminalView creates a view writing to out
func NewTerminalView(out io.Writer) *TerminalView {
	return &TerminalView{out: out}
}

// ShowProgress implements controller.View
func (v *TerminalView) ShowProgress() {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.value = 0
	v.bar = progressbar.NewOptions(100,
		progressbar.OptionSetWriter(v.out),
		progressbar.OptionSetDescription("downloading"),
		progressbar.OptionSetElapsedTime(false),
		progressbar.OptionSetPredictTime(false),
		progressbar.OptionShowElapsedTimeOnFinish(),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
	)
}

// HideProgress implements controller.View
func (v *TerminalView) HideProgress() {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.bar == nil {
		return
	}
	_ = v.bar.Exit()
	fmt.Fprintln(v.out)
	v.bar = nil
}

// SetProgress implements controller.View
func (v *TerminalView) SetProgress(percent int) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.value = percent
	if v.bar != nil {
		_ = v.bar.Set(percent)
	}
}

// SetMessage implements controller.View. Empty messages only clear the state.
func (v *TerminalView) SetMessage(text string) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.message = text
	if text != "" {
		fmt.Fprintln(v.out, text)
	}
}

// SetBusy implements controller.View
func (v *TerminalView) SetBusy(busy bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.busy = busy
}

// Message returns the last message
func (v *TerminalView) Message() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.message
}

// Progress returns the last progress value
func (v *TerminalView) Progress() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.value
}

// Busy reports whether a download is running
func (v *TerminalView) Busy() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.busy
}
