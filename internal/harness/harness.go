package harness

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/roach88/dinograph/internal/app"
	"github.com/roach88/dinograph/internal/records"
	"github.com/roach88/dinograph/internal/testutil"
	"github.com/roach88/dinograph/internal/tile"
)

// Run executes a scenario and returns the result.
//
// Execution flow:
// 1. Build the random source from Seed, or replay Draws exactly
// 2. Open the record store (scenario Data, or the embedded document)
// 3. Submit the profile through a fresh session with a fixed id
// 4. Evaluate assertions against the generated tiles
//
// A returned error means the scenario could not run at all. Assertion
// failures are reported on the Result instead.
func Run(ctx context.Context, scenario *Scenario) (result *Result, err error) {
	var src tile.Source
	var seq *testutil.SequenceSource
	if len(scenario.Draws) > 0 {
		seq = testutil.NewSequenceSource(scenario.Draws...)
		src = seq
		// SequenceSource panics when the draw list does not fit the render.
		defer func() {
			if r := recover(); r != nil {
				result, err = nil, fmt.Errorf("scenario %s: draws do not fit the render: %v", scenario.Name, r)
			}
		}()
	} else {
		src = rand.New(rand.NewSource(scenario.Seed))
	}

	session := app.New(
		records.NewStore(scenario.Data),
		src,
		app.WithIDGenerator(testutil.NewFixedIDGenerator(scenario.ID)),
	)

	graph, err := session.Submit(ctx, scenario.Profile)
	if err != nil {
		return nil, fmt.Errorf("scenario %s: %w", scenario.Name, err)
	}

	result = NewResult()
	result.Infographic = graph
	if seq != nil && seq.Consumed() < len(scenario.Draws) {
		result.AddError(fmt.Sprintf("draws: %d of %d values unused", len(scenario.Draws)-seq.Consumed(), len(scenario.Draws)))
	}
	for _, msg := range EvaluateAssertions(graph.Tiles, scenario.Assertions) {
		result.AddError(msg)
	}

	slog.Debug("scenario executed",
		"scenario", scenario.Name,
		"tiles", len(graph.Tiles),
		"pass", result.Pass,
	)

	return result, nil
}
