// Package harness runs reproducible infographic scenarios.
//
// A scenario fixes everything random about a render (the seed, or the exact
// draw sequence, and the infographic id), supplies a profile and lists
// assertions about the resulting tiles.
//
// # Scenario Format
//
// Scenarios are defined in YAML files with the following structure:
//
//	name: scenario_name
//	description: "What this scenario validates"
//	seed: 42                 # or draws: [7, 6, 5, ...]
//	id: graph-ann            # optional, fixed infographic id
//	data: ../dino.json       # optional, relative to the scenario file
//	profile:
//	  name: Ann
//	  feet: 5
//	  inches: 10
//	  weight: 180
//	  diet: omnivore
//	assertions:
//	  - type: tile_count
//	    count: 9
//	  - type: human_index
//	    index: 4
//	  - type: title_at
//	    index: 0
//	    title: Triceratops
//	  - type: fact
//	    species: Pigeon
//	    kind: fact
//	    text: "All birds are dinosaurs."
//	  - type: contains_species
//	    species: Brachiosaurus
//
// # Assertion Types
//
//   - tile_count: the infographic has exactly count tiles
//   - human_index: the human tile sits at index
//   - title_at: the tile at index has the given title
//   - fact: the tile for species shows a fact of kind and/or with text
//   - contains_species: some tile shows species
//
// # Golden Snapshots
//
// RunWithGolden compares the JSON rendering of a scenario against
// testdata/golden/{scenario.Name}.golden using goldie. Regenerate with:
//
//	go test ./internal/harness -update
package harness
