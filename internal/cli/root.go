package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

// globalOptions are the persistent flags shared by every command
type globalOptions struct {
	configPath string
	logLevel   string
	language   string
}

// NewRootCommand builds the command tree
func NewRootCommand(version string) *cobra.Command {
	opts := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:          "tubegrab",
		Short:        "Download YouTube videos or their audio track",
		Long:         `tubegrab opens a small window where a video link can be pasted and downloaded as video or as an mp3 audio file.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGUI(cmd.Context(), opts, version)
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "path to a yaml config file")
	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&opts.language, "language", "", "interface language (system, en, pl, ru, pt)")

	rootCmd.AddCommand(newGetCommand(opts))
	rootCmd.AddCommand(newVersionCommand(version))

	return rootCmd
}

// Execute runs the command tree and returns the process exit code
func Execute(version string) int {
	if err := NewRootCommand(version).ExecuteContext(context.Background()); err != nil {
		reportError(os.Stderr, err)
		return 1
	}
	return 0
}

// reportedError marks an error the controller already showed to the user
type reportedError struct {
	err error
}

func (e *reportedError) Error() string { return e.err.Error() }
func (e *reportedError) Unwrap() error { return e.err }

// reportError prints err unless it was already reported through the view
func reportError(w io.Writer, err error) {
	var reported *reportedError
	if errors.As(err, &reported) {
		return
	}
	fmt.Fprintf(w, "Error: %v\n", err)
}
