package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/dinograph/internal/dino"
	"github.com/roach88/dinograph/internal/fact"
	"github.com/roach88/dinograph/internal/profile"
	"github.com/roach88/dinograph/internal/records"
	"github.com/roach88/dinograph/internal/tile"
)

// CompareOptions holds flags for the compare command.
type CompareOptions struct {
	*RootOptions
	Profile ProfileFlags
	Data    string
}

// CompareEntry lists every fact a record's tile could show.
type CompareEntry struct {
	Species string      `json:"species"`
	Facts   []fact.Fact `json:"facts"`
}

// CompareResult is the output of the compare command.
type CompareResult struct {
	Profile profile.Form   `json:"profile"`
	Records []CompareEntry `json:"records"`
}

// NewCompareCommand creates the compare command.
func NewCompareCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &CompareOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "compare",
		Short: "List every candidate fact for each record",
		Long: `List every fact a tile could show for the given human, without drawing.

The pigeon record only ever shows its stored fact.

Examples:
  dinograph compare --name Ann --feet 5 --inches 10 --weight 180
  dinograph compare --profile ann.yaml --format json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompare(opts, cmd)
		},
	}

	addProfileFlags(cmd, &opts.Profile)
	cmd.Flags().StringVar(&opts.Data, "data", rootOpts.Config.DataPath, "record document (default: embedded dino.json)")

	return cmd
}

func runCompare(opts *CompareOptions, cmd *cobra.Command) error {
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

	dinos, err := records.NewStore(opts.Data).Load(cmd.Context())
	if err != nil {
		return outputLoadError(formatter, ExitCommandError, err)
	}
	formatter.VerboseLog("Loaded %d record(s)", len(dinos))

	human := form.Human()
	result := CompareResult{
		Profile: form,
		Records: make([]CompareEntry, 0, len(dinos)),
	}
	for _, d := range dinos {
		result.Records = append(result.Records, CompareEntry{
			Species: d.Species,
			Facts:   candidateFacts(d, human),
		})
	}

	if formatter.IsJSON() {
		return formatter.Success(result)
	}
	return outputCompareText(formatter, human, result)
}

func candidateFacts(d dino.Dinosaur, h dino.Human) []fact.Fact {
	if d.Species == tile.PigeonSpecies {
		return []fact.Fact{{Kind: fact.KindStored, Text: d.Fact}}
	}
	return fact.All(d, h)
}

func outputCompareText(formatter *OutputFormatter, h dino.Human, result CompareResult) error {
	w := formatter.Writer

	fmt.Fprintf(w, "Comparing %s (%g in, %g lbs, %s)\n", h.Name, h.Height, h.Weight, h.Diet)
	for _, entry := range result.Records {
		fmt.Fprintf(w, "\n%s\n", entry.Species)
		for _, f := range entry.Facts {
			fmt.Fprintf(w, "  %-8s %s\n", f.Kind, f.Text)
		}
	}
	return nil
}
