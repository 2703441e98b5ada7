package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/roach88/dinograph/internal/app"
	"github.com/roach88/dinograph/internal/records"
	"github.com/roach88/dinograph/internal/render"
)

// RenderOptions holds flags for the render command.
type RenderOptions struct {
	*RootOptions
	Profile   ProfileFlags
	Data      string // record document ("" = embedded)
	Seed      int64  // 0 = fresh seed
	ImageBase string
	Output    string // output file ("" = stdout)
}

// NewRenderCommand creates the render command.
func NewRenderCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RenderOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the infographic for a human profile",
		Long: `Render the infographic for a human profile.

The dinosaur records are shuffled, every tile gets one randomly selected
fact, and the human tile is placed fifth. --format selects the surface:
text, json or a standalone html page.

Examples:
  dinograph render --name Ann --feet 5 --inches 10 --weight 180 --diet omnivore
  dinograph render --profile ann.yaml --format html -o ann.html
  dinograph render --profile ann.yaml --seed 42 --format json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(opts, cmd)
		},
	}

	addProfileFlags(cmd, &opts.Profile)
	cmd.Flags().StringVar(&opts.Data, "data", rootOpts.Config.DataPath, "record document (default: embedded dino.json)")
	cmd.Flags().Int64Var(&opts.Seed, "seed", rootOpts.Config.Seed, "random seed (0 picks a fresh one)")
	cmd.Flags().StringVar(&opts.ImageBase, "image-base", rootOpts.Config.ImageBase, "URL prefix for tile images")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "write to file instead of stdout")

	return cmd
}

func runRender(opts *RenderOptions, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	form, err := opts.Profile.Resolve()
	if err != nil {
		_ = formatter.Error(ErrCodeProfile, err.Error(), nil)
		return WrapExitError(ExitCommandError, "failed to read profile", err)
	}

	rng, seed, err := app.NewSource(opts.Seed)
	if err != nil {
		_ = formatter.Error(ErrCodeRandomSource, err.Error(), nil)
		return WrapExitError(ExitCommandError, "failed to seed random source", err)
	}
	formatter.VerboseLog("Seed: %d", seed)

	state := app.New(records.NewStore(opts.Data), rng, app.WithImageBase(opts.ImageBase))
	graph, err := state.Submit(cmd.Context(), form)
	if err != nil {
		return outputLoadError(formatter, ExitCommandError, err)
	}

	if opts.Output == "" {
		return writeInfographic(formatter, cmd.OutOrStdout(), opts.Format, graph)
	}

	f, err := os.Create(opts.Output)
	if err != nil {
		_ = formatter.Error(ErrCodeWriteFailed, fmt.Sprintf("creating output file: %v", err), nil)
		return WrapExitError(ExitCommandError, "failed to create output file", err)
	}
	if err := writeInfographic(formatter, f, opts.Format, graph); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		_ = formatter.Error(ErrCodeWriteFailed, fmt.Sprintf("closing output file: %v", err), nil)
		return WrapExitError(ExitCommandError, "failed to write output file", err)
	}

	formatter.VerboseLog("Wrote %s infographic %s to %s", opts.Format, graph.ID, opts.Output)
	return nil
}

func writeInfographic(formatter *OutputFormatter, w io.Writer, format string, graph *app.Infographic) error {
	if err := render.Write(w, format, graph); err != nil {
		_ = formatter.Error(ErrCodeWriteFailed, err.Error(), nil)
		return WrapExitError(ExitCommandError, "failed to write infographic", err)
	}
	return nil
}
