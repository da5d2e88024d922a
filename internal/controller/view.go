package controller

// View is the presentation side of the controller. Implementations must be
// safe to call from any goroutine.
type View interface {
	ShowProgress()
	HideProgress()
	// SetProgress sets the bar value in the range 0..100
	SetProgress(percent int)
	SetMessage(text string)
	// SetBusy enables or disables the download triggers
	SetBusy(busy bool)
}

// Translator resolves message keys to text
type Translator interface {
	GetText(key string) string
}
