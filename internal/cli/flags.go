package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/dinograph/internal/profile"
)

// ProfileFlags collects the human profile from a YAML file and/or flags.
// Flags that are set override the matching field of the file.
type ProfileFlags struct {
	File string
	Form profile.Form
}

func addProfileFlags(cmd *cobra.Command, p *ProfileFlags) {
	f := cmd.Flags()
	f.StringVar(&p.File, "profile", "", "YAML profile file (name, feet, inches, weight, diet)")
	f.StringVar(&p.Form.Name, "name", "", "human name")
	f.StringVar(&p.Form.Feet, "feet", "", "height, feet part")
	f.StringVar(&p.Form.Inches, "inches", "", "height, inches part")
	f.StringVar(&p.Form.Weight, "weight", "", "weight in lbs")
	f.StringVar(&p.Form.Diet, "diet", "", "diet (herbivore|omnivore|carnivore, default herbivore)")
}

// Resolve returns the merged form.
func (p *ProfileFlags) Resolve() (profile.Form, error) {
	var form profile.Form
	if p.File != "" {
		loaded, err := profile.Load(p.File)
		if err != nil {
			return profile.Form{}, fmt.Errorf("profile %s: %w", p.File, err)
		}
		form = loaded
	}
	return form.Merge(p.Form), nil
}
