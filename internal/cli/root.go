package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/roach88/dinograph/internal/config"
	"github.com/roach88/dinograph/internal/render"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose bool
	Format  string // "text" | "json" | "html"

	// Config supplies environment defaults for command flags.
	Config config.Config
}

// NewRootCommand creates the root command for the dinograph CLI.
// cfg provides the defaults that command flags override.
func NewRootCommand(cfg config.Config) *cobra.Command {
	opts := &RootOptions{Config: cfg}

	cmd := &cobra.Command{
		Use:   "dinograph",
		Short: "dinograph - how do you measure up against a dinosaur?",
		Long: `Render an infographic comparing a human profile with a set of dinosaur records.

Each dinosaur tile shows one randomly selected fact; the human tile sits in
the middle of the shuffled grid.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, render.Formats)
			}
			configureLogging(cmd, opts.Verbose)
			return nil
		},
	}

	format := cfg.Format
	if format == "" {
		format = render.FormatText
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", format, "output format (text|json|html)")

	cmd.AddCommand(NewRenderCommand(opts))
	cmd.AddCommand(NewCompareCommand(opts))
	cmd.AddCommand(NewValidateCommand(opts))
	cmd.AddCommand(NewTestCommand(opts))

	return cmd
}

// configureLogging installs the default slog handler on the command's
// stderr so logs never mix with rendered output.
func configureLogging(cmd *cobra.Command, verbose bool) {
	logLevel := slog.LevelInfo
	if verbose {
		logLevel = slog.LevelDebug
	}
	handler := slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
		Level: logLevel,
	})
	slog.SetDefault(slog.New(handler))
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	return render.IsValidFormat(format)
}
