package harness

import (
	"fmt"
	"strings"

	"github.com/roach88/dinograph/internal/fact"
	"github.com/roach88/dinograph/internal/tile"
)

// AssertionError is returned when an assertion fails.
// It includes the full tile list to help debug the failure.
type AssertionError struct {
	Type     string      // Assertion type for categorization
	Expected string      // Human-readable expected outcome
	Actual   string      // Human-readable actual outcome
	Tiles    []tile.Tile // Full grid for debugging context
}

// Error implements the error interface.
func (e *AssertionError) Error() string {
	var buf strings.Builder

	fmt.Fprintf(&buf, "Assertion failed: %s\n", e.Type)
	fmt.Fprintf(&buf, "  Expected: %s\n", e.Expected)
	fmt.Fprintf(&buf, "  Actual: %s\n", e.Actual)

	fmt.Fprintf(&buf, "\nTiles:\n")
	for i, t := range e.Tiles {
		fmt.Fprintf(&buf, "  [%d] %s (%s)", i, t.Title, t.Kind)
		if t.HasFact() {
			fmt.Fprintf(&buf, ": %s", t.FactText())
		}
		buf.WriteByte('\n')
	}

	return buf.String()
}

func assertTileCount(tiles []tile.Tile, a Assertion) error {
	if len(tiles) == a.Count {
		return nil
	}
	return &AssertionError{
		Type:     AssertTileCount,
		Expected: fmt.Sprintf("%d tiles", a.Count),
		Actual:   fmt.Sprintf("%d tiles", len(tiles)),
		Tiles:    tiles,
	}
}

func assertHumanIndex(tiles []tile.Tile, a Assertion) error {
	want := derefIndex(a.Index)
	got := -1
	for i, t := range tiles {
		if t.Kind == tile.KindHuman {
			got = i
			break
		}
	}
	if got == want {
		return nil
	}
	return &AssertionError{
		Type:     AssertHumanIndex,
		Expected: fmt.Sprintf("human tile at index %d", want),
		Actual:   fmt.Sprintf("human tile at index %d", got),
		Tiles:    tiles,
	}
}

func assertTitleAt(tiles []tile.Tile, a Assertion) error {
	idx := derefIndex(a.Index)
	if idx < 0 || idx >= len(tiles) {
		return &AssertionError{
			Type:     AssertTitleAt,
			Expected: fmt.Sprintf("%q at index %d", a.Title, idx),
			Actual:   fmt.Sprintf("index out of range (%d tiles)", len(tiles)),
			Tiles:    tiles,
		}
	}
	if tiles[idx].Title == a.Title {
		return nil
	}
	return &AssertionError{
		Type:     AssertTitleAt,
		Expected: fmt.Sprintf("%q at index %d", a.Title, idx),
		Actual:   fmt.Sprintf("%q", tiles[idx].Title),
		Tiles:    tiles,
	}
}

// assertFact checks the fact shown on the first non-human tile titled
// a.Species. Kind and text are each checked only when set.
func assertFact(tiles []tile.Tile, a Assertion) error {
	t, ok := findSpecies(tiles, a.Species)
	if !ok {
		return &AssertionError{
			Type:     AssertFact,
			Expected: fmt.Sprintf("a tile for %s", a.Species),
			Actual:   "not found",
			Tiles:    tiles,
		}
	}

	if a.Kind != "" {
		want, err := fact.ParseKind(a.Kind)
		if err != nil {
			return err
		}
		if t.FactKind == nil || *t.FactKind != want {
			actual := "no fact"
			if t.FactKind != nil {
				actual = t.FactKind.String()
			}
			return &AssertionError{
				Type:     AssertFact,
				Expected: fmt.Sprintf("%s fact kind %s", a.Species, want),
				Actual:   actual,
				Tiles:    tiles,
			}
		}
	}

	if a.Text != "" && t.FactText() != a.Text {
		return &AssertionError{
			Type:     AssertFact,
			Expected: fmt.Sprintf("%s fact %q", a.Species, a.Text),
			Actual:   fmt.Sprintf("%q", t.FactText()),
			Tiles:    tiles,
		}
	}

	return nil
}

func assertContainsSpecies(tiles []tile.Tile, a Assertion) error {
	if _, ok := findSpecies(tiles, a.Species); ok {
		return nil
	}
	return &AssertionError{
		Type:     AssertContainsSpecies,
		Expected: fmt.Sprintf("a tile for %s", a.Species),
		Actual:   "not found",
		Tiles:    tiles,
	}
}

func findSpecies(tiles []tile.Tile, species string) (tile.Tile, bool) {
	for _, t := range tiles {
		if t.Kind != tile.KindHuman && t.Title == species {
			return t, true
		}
	}
	return tile.Tile{}, false
}

func derefIndex(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}

// EvaluateAssertions runs all assertions against the tiles and returns the
// failure messages. An empty slice means every assertion held.
func EvaluateAssertions(tiles []tile.Tile, assertions []Assertion) []string {
	var errors []string

	for i, assertion := range assertions {
		var err error

		switch assertion.Type {
		case AssertTileCount:
			err = assertTileCount(tiles, assertion)
		case AssertHumanIndex:
			err = assertHumanIndex(tiles, assertion)
		case AssertTitleAt:
			err = assertTitleAt(tiles, assertion)
		case AssertFact:
			err = assertFact(tiles, assertion)
		case AssertContainsSpecies:
			err = assertContainsSpecies(tiles, assertion)
		default:
			err = fmt.Errorf("assertion[%d]: unknown assertion type %q", i, assertion.Type)
		}

		if err != nil {
			errors = append(errors, err.Error())
		}
	}

	return errors
}
