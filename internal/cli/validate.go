package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/roach88/dinograph/internal/records"
)

// ValidationResult holds validation results.
type ValidationResult struct {
	Valid   bool   `json:"valid"`
	Source  string `json:"source"`
	Records int    `json:"records"`
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	var data string

	cmd := &cobra.Command{
		Use:   "validate [record-document]",
		Short: "Validate a record document against the record schema",
		Long: `Validate a JSON record document against the embedded CUE record schema
without rendering anything.

With no argument the --data document is checked, or the embedded
dino.json when that is unset too.

Exit codes:
  0 - Document is valid
  1 - Document violates the schema
  2 - Document could not be read`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := data
			if len(args) == 1 {
				path = args[0]
			}
			return runValidate(rootOpts, path, cmd)
		},
	}

	cmd.Flags().StringVar(&data, "data", rootOpts.Config.DataPath, "record document (default: embedded dino.json)")

	return cmd
}

func runValidate(opts *RootOptions, path string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	doc, name := records.Embedded(), records.DefaultName
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			_ = formatter.Error(records.ErrCodeNotFound, fmt.Sprintf("reading record document: %v", err), nil)
			return WrapExitError(ExitCommandError, "failed to read record document", err)
		}
		doc, name = b, path
	}
	formatter.VerboseLog("Validating %s (%d bytes)", name, len(doc))

	count, err := records.Validate(doc, name)
	if err != nil {
		return outputLoadError(formatter, ExitFailure, err)
	}

	result := ValidationResult{Valid: true, Source: name, Records: count}
	if formatter.IsJSON() {
		return formatter.Success(result)
	}

	fmt.Fprintf(formatter.Writer, "✓ %d records valid (%s)\n", count, name)
	return nil
}
