package harness

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/roach88/dinograph/internal/fact"
	"github.com/roach88/dinograph/internal/profile"
)

// Scenario defines a reproducible infographic render and what to check
// about it.
type Scenario struct {
	// Name uniquely identifies this scenario. It also names the golden file.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// Seed seeds the random source. Required unless Draws is set.
	Seed int64 `yaml:"seed,omitempty"`

	// Draws replays an exact draw sequence instead of a seeded source:
	// shuffle draws first, then one fact draw per non-pigeon tile.
	Draws []int `yaml:"draws,omitempty"`

	// ID is the fixed infographic id. Defaults to "test-infographic-default".
	ID string `yaml:"id,omitempty"`

	// Data is the record document. Empty selects the embedded document.
	// Relative paths are resolved against the scenario file's directory.
	Data string `yaml:"data,omitempty"`

	// Profile holds the five form fields.
	Profile profile.Form `yaml:"profile"`

	// Assertions validate the generated tiles.
	Assertions []Assertion `yaml:"assertions"`
}

// Assertion validates one property of the generated tiles.
type Assertion struct {
	// Type is one of the Assert* constants.
	Type string `yaml:"type"`

	// Count is the expected number of tiles (tile_count).
	Count int `yaml:"count,omitempty"`

	// Index is a tile position (human_index, title_at).
	Index *int `yaml:"index,omitempty"`

	// Title is the expected tile title (title_at).
	Title string `yaml:"title,omitempty"`

	// Species selects a tile by title (fact, contains_species).
	Species string `yaml:"species,omitempty"`

	// Kind is the expected fact kind name (fact).
	Kind string `yaml:"kind,omitempty"`

	// Text is the expected fact text (fact).
	Text string `yaml:"text,omitempty"`
}

// Assertion type constants.
const (
	AssertTileCount       = "tile_count"
	AssertHumanIndex      = "human_index"
	AssertTitleAt         = "title_at"
	AssertFact            = "fact"
	AssertContainsSpecies = "contains_species"
)

// LoadScenario reads and parses a scenario YAML file.
// Returns an error if the file doesn't exist, is malformed,
// contains unknown fields (typos), or is missing required fields.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	// Strict field validation catches typos like "assertion:" vs "assertions:"
	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if scenario.Data != "" && !filepath.IsAbs(scenario.Data) {
		scenario.Data = filepath.Join(filepath.Dir(path), scenario.Data)
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	return &scenario, nil
}

// validateScenario checks that required fields are present and valid.
func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}

	if s.Description == "" {
		return fmt.Errorf("description is required")
	}

	if s.Seed == 0 && len(s.Draws) == 0 {
		return fmt.Errorf("seed (non-zero) or draws is required for a reproducible render")
	}

	if s.Seed != 0 && len(s.Draws) > 0 {
		return fmt.Errorf("seed and draws are mutually exclusive")
	}

	if len(s.Assertions) == 0 {
		return fmt.Errorf("assertions list is required and must be non-empty")
	}

	if s.Data != "" {
		if _, err := os.Stat(s.Data); os.IsNotExist(err) {
			return fmt.Errorf("data file not found: %s", s.Data)
		}
	}

	for i, assertion := range s.Assertions {
		if err := validateAssertion(i, &assertion); err != nil {
			return err
		}
	}

	return nil
}

// validateAssertion validates a single assertion based on its type.
func validateAssertion(index int, a *Assertion) error {
	if a.Type == "" {
		return fmt.Errorf("assertions[%d]: type is required", index)
	}

	switch a.Type {
	case AssertTileCount:
		if a.Count < 1 {
			return fmt.Errorf("assertions[%d]: tile_count requires count >= 1", index)
		}
	case AssertHumanIndex:
		if a.Index == nil || *a.Index < 0 {
			return fmt.Errorf("assertions[%d]: human_index requires a non-negative index", index)
		}
	case AssertTitleAt:
		if a.Index == nil || *a.Index < 0 {
			return fmt.Errorf("assertions[%d]: title_at requires a non-negative index", index)
		}
		if a.Title == "" {
			return fmt.Errorf("assertions[%d]: title_at requires title", index)
		}
	case AssertFact:
		if a.Species == "" {
			return fmt.Errorf("assertions[%d]: fact requires species", index)
		}
		if a.Kind == "" && a.Text == "" {
			return fmt.Errorf("assertions[%d]: fact requires kind or text", index)
		}
		if a.Kind != "" {
			if _, err := fact.ParseKind(a.Kind); err != nil {
				return fmt.Errorf("assertions[%d]: %w", index, err)
			}
		}
	case AssertContainsSpecies:
		if a.Species == "" {
			return fmt.Errorf("assertions[%d]: contains_species requires species", index)
		}
	default:
		return fmt.Errorf("assertions[%d]: unknown assertion type %q", index, a.Type)
	}

	return nil
}
