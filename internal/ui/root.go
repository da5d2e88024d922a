package ui

import (
	"context"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"go.uber.org/zap"

	"github.com/ytget/tubegrab/internal/config"
	"github.com/ytget/tubegrab/internal/i18n"
)

// Actions are the operations started by the window's triggers
type Actions interface {
	DownloadVideo(ctx context.Context, url string) error
	DownloadAudio(ctx context.Context, url string) error
	DownloadPlaylist(ctx context.Context, url string) error
}

// RootUI represents the main window content
type RootUI struct {
	ctx          context.Context
	window       fyne.Window
	localization *i18n.Localization
	paths        *config.Paths
	actions      Actions
	logger       *zap.Logger

	tabs        *container.AppTabs
	singleTab   *container.TabItem
	playlistTab *container.TabItem

	videoLabel    *widget.Label
	urlEntry      *widget.Entry
	videoBtn      *widget.Button
	audioBtn      *widget.Button
	playlistLabel *widget.Label
	playlistEntry *widget.Entry
	playlistBtn   *widget.Button

	progressBar *widget.ProgressBar
	statusLabel *widget.Label
}

// NewRootUI builds the window content. ctx is handed to every action and
// should be cancelled when the window closes.
func NewRootUI(ctx context.Context, window fyne.Window, localization *i18n.Localization, paths *config.Paths, logger *zap.Logger) *RootUI {
	if logger == nil {
		logger = zap.NewNop()
	}
	ui := &RootUI{
		ctx:          ctx,
		window:       window,
		localization: localization,
		paths:        paths,
		logger:       logger.Named("ui"),
	}

	ui.setupUI()
	return ui
}

// Bind connects the triggers to actions. Triggers do nothing until bound.
func (ui *RootUI) Bind(actions Actions) {
	ui.actions = actions
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	ui.videoLabel = widget.NewLabel("")
	ui.urlEntry = widget.NewEntry()
	ui.videoBtn = widget.NewButton("", ui.onDownloadVideo)
	ui.videoBtn.Importance = widget.HighImportance
	ui.audioBtn = widget.NewButton("", ui.onDownloadAudio)

	ui.playlistLabel = widget.NewLabel("")
	ui.playlistEntry = widget.NewEntry()
	ui.playlistBtn = widget.NewButton("", ui.onDownloadPlaylist)

	ui.singleTab = container.NewTabItem("", container.NewVBox(
		ui.videoLabel,
		ui.urlEntry,
		ui.videoBtn,
		ui.audioBtn,
	))
	ui.playlistTab = container.NewTabItem("", container.NewVBox(
		ui.playlistLabel,
		ui.playlistEntry,
		ui.playlistBtn,
	))
	ui.tabs = container.NewAppTabs(ui.singleTab, ui.playlistTab)

	ui.progressBar = widget.NewProgressBar()
	ui.progressBar.Min = ProgressMin
	ui.progressBar.Max = ProgressMax
	ui.progressBar.Hide()

	ui.statusLabel = widget.NewLabel("")
	ui.statusLabel.Wrapping = fyne.TextWrapWord

	ui.refreshUITexts()

	ui.window.SetContent(container.NewBorder(
		nil,
		container.NewVBox(ui.progressBar, ui.statusLabel),
		nil,
		nil,
		ui.tabs,
	))
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	pathsItem := fyne.NewMenuItem(IconFolder+" "+ui.localization.GetText(i18n.KeyPaths), ui.onShowPaths)
	quitItem := fyne.NewMenuItem(ui.localization.GetText(i18n.KeyQuit), func() {
		fyne.CurrentApp().Quit()
	})
	quitItem.IsQuit = true

	languageMenu := fyne.NewMenu(IconLanguage + " " + ui.localization.GetText(i18n.KeyLanguage))

	available := ui.localization.GetAvailableLanguages()
	for _, code := range ui.localization.LanguageCodes() {
		langCode := code
		item := fyne.NewMenuItem(available[code], func() {
			ui.onLanguageChange(langCode)
		})
		item.Checked = ui.localization.GetCurrentLanguage() == code
		languageMenu.Items = append(languageMenu.Items, item)
	}

	ui.window.SetMainMenu(fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(i18n.KeyFile), pathsItem, fyne.NewMenuItemSeparator(), quitItem),
		languageMenu,
	))
}

// onLanguageChange switches the language for this session only
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.logger.Info("language changed", zap.String("language", ui.localization.GetCurrentLanguage()))

	ui.refreshUITexts()
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	l := ui.localization

	ui.window.SetTitle(l.GetText(i18n.KeyAppTitle))
	ui.singleTab.Text = l.GetText(i18n.KeySingleLinkTab)
	ui.playlistTab.Text = l.GetText(i18n.KeyPlaylistTab)
	ui.videoLabel.SetText(l.GetText(i18n.KeyEnterVideoURL))
	ui.urlEntry.SetPlaceHolder(l.GetText(i18n.KeyURLPlaceholder))
	ui.videoBtn.SetText(l.GetText(i18n.KeyDownloadVideo))
	ui.audioBtn.SetText(l.GetText(i18n.KeyDownloadAudio))
	ui.playlistLabel.SetText(l.GetText(i18n.KeyEnterPlaylistURL))
	ui.playlistEntry.SetPlaceHolder(l.GetText(i18n.KeyURLPlaceholder))
	ui.playlistBtn.SetText(l.GetText(i18n.KeyDownloadPlaylist))
	ui.tabs.Refresh()
}

func (ui *RootUI) onDownloadVideo() {
	if ui.actions == nil {
		return
	}
	ui.run("video", ui.urlEntry.Text, ui.actions.DownloadVideo)
}

func (ui *RootUI) onDownloadAudio() {
	if ui.actions == nil {
		return
	}
	ui.run("audio", ui.urlEntry.Text, ui.actions.DownloadAudio)
}

func (ui *RootUI) onDownloadPlaylist() {
	if ui.actions == nil {
		return
	}
	ui.run("playlist", ui.playlistEntry.Text, ui.actions.DownloadPlaylist)
}

// run starts action off the UI goroutine. The entry text is read by the caller
// on the UI goroutine.
func (ui *RootUI) run(name, url string, action func(context.Context, string) error) {
	go func() {
		if err := action(ui.ctx, url); err != nil {
			ui.logger.Debug("action returned error", zap.String("action", name), zap.Error(err))
		}
	}()
}

// onShowPaths shows the resolved paths dialog
func (ui *RootUI) onShowPaths() {
	ShowPathsDialog(ui.window, ui.paths, ui.localization)
}

// ShowProgress implements controller.View
func (ui *RootUI) ShowProgress() {
	fyne.Do(ui.progressBar.Show)
}

// HideProgress implements controller.View
func (ui *RootUI) HideProgress() {
	fyne.Do(ui.progressBar.Hide)
}

// SetProgress implements controller.View
func (ui *RootUI) SetProgress(percent int) {
	fyne.Do(func() {
		ui.progressBar.SetValue(float64(percent))
	})
}

// SetMessage implements controller.View
func (ui *RootUI) SetMessage(text string) {
	fyne.Do(func() {
		ui.statusLabel.SetText(text)
	})
}

// SetBusy implements controller.View. Only the single link triggers start
// downloads, so the playlist trigger stays enabled.
func (ui *RootUI) SetBusy(busy bool) {
	fyne.Do(func() {
		for _, btn := range []*widget.Button{ui.videoBtn, ui.audioBtn} {
			if busy {
				btn.Disable()
			} else {
				btn.Enable()
			}
		}
	})
}
