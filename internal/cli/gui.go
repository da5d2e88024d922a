package cli

import (
	"context"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"go.uber.org/zap"

	"github.com/ytget/tubegrab/internal/controller"
	"github.com/ytget/tubegrab/internal/i18n"
	"github.com/ytget/tubegrab/internal/ui"
)

// AppID identifies the application to Fyne
const AppID = "com.ytget.tubegrab"

// runGUI opens the main window and blocks until it is closed
func runGUI(ctx context.Context, opts *globalOptions, version string) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	env, err := bootstrap(ctx, opts)
	if err != nil {
		return err
	}
	defer env.close()

	env.logger.Info("starting", zap.String("version", version))

	a := app.NewWithID(AppID)
	a.Settings().SetTheme(ui.NewTheme(env.cfg.UI.Theme))

	w := a.NewWindow(env.texts.GetText(i18n.KeyAppTitle))
	w.Resize(fyne.NewSize(
		max(float32(env.cfg.UI.Width), ui.MinWindowWidth),
		max(float32(env.cfg.UI.Height), ui.MinWindowHeight),
	))

	if env.paths.IconFound {
		icon, err := ui.LoadIcon(env.paths.Icon)
		if err != nil {
			env.logger.Warn("icon not loaded", zap.Error(err))
		} else {
			a.SetIcon(icon)
			w.SetIcon(icon)
		}
	} else if env.paths.Icon != "" {
		env.logger.Warn("icon not found", zap.String("path", env.paths.Icon))
	}

	root := ui.NewRootUI(ctx, w, env.texts, env.paths, env.logger)
	ctrl := controller.New(env.engine, root, env.texts, env.controllerSettings(), env.logger)
	root.Bind(ctrl)

	// aborts a running yt-dlp process
	w.SetOnClosed(cancel)

	w.ShowAndRun()
	return nil
}
