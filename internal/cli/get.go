package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ytget/tubegrab/internal/controller"
)

func newGetCommand(opts *globalOptions) *cobra.Command {
	var audio bool

	cmd := &cobra.Command{
		Use:   "get <url>",
		Short: "Download a single video, or its audio with --audio",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			env, err := bootstrap(ctx, opts)
			if err != nil {
				return err
			}
			defer env.close()

			view := NewTerminalView(cmd.ErrOrStderr())
			ctrl := controller.New(env.engine, view, env.texts, env.controllerSettings(), env.logger)
			return runGet(ctx, ctrl, args[0], audio)
		},
	}

	cmd.Flags().BoolVar(&audio, "audio", false, "extract the audio track instead of downloading the video")
	return cmd
}

// downloader is the part of the controller used by get
type downloader interface {
	DownloadVideo(ctx context.Context, url string) error
	DownloadAudio(ctx context.Context, url string) error
}

// runGet starts the download; its errors have already been shown by the view
func runGet(ctx context.Context, d downloader, url string, audio bool) error {
	var err error
	if audio {
		err = d.DownloadAudio(ctx, url)
	} else {
		err = d.DownloadVideo(ctx, url)
	}
	if err != nil {
		return &reportedError{err: err}
	}
	return nil
}
