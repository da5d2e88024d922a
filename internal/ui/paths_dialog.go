package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/tubegrab/internal/config"
	"github.com/ytget/tubegrab/internal/i18n"
)

// ShowPathsDialog displays the directories and the transcoder resolved at startup
func ShowPathsDialog(window fyne.Window, paths *config.Paths, localization *i18n.Localization) {
	dialog.ShowCustom(
		localization.GetText(i18n.KeyPaths),
		"OK",
		NewPathsForm(paths, localization),
		window,
	)
}

// NewPathsForm renders paths as a read-only form
func NewPathsForm(paths *config.Paths, localization *i18n.Localization) *widget.Form {
	if paths == nil {
		paths = &config.Paths{}
	}

	transcoder := paths.Transcoder
	if !paths.TranscoderFound {
		transcoder += " (" + localization.GetText(i18n.KeyNotFound) + ")"
	}

	form := widget.NewForm(
		pathItem(localization.GetText(i18n.KeyAppDirectory), paths.AppDir),
		pathItem(localization.GetText(i18n.KeyOutputDirectory), paths.OutputDir),
		pathItem(localization.GetText(i18n.KeyTempDirectory), paths.TempDir),
		pathItem(localization.GetText(i18n.KeyTranscoder), transcoder),
	)
	return form
}

func pathItem(label, value string) *widget.FormItem {
	text := widget.NewLabel(value)
	text.Selectable = true
	text.Wrapping = fyne.TextWrapBreak
	return widget.NewFormItem(label, text)
}
