package tile

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/dinograph/internal/dino"
	"github.com/roach88/dinograph/internal/fact"
	"github.com/roach88/dinograph/internal/records"
	"github.com/roach88/dinograph/internal/testutil"
)

var ann = dino.NewHuman("Ann", 5, 10, 180, dino.Herbivore)

func TestBuild_IdentityShuffleAndFixedFacts(t *testing.T) {
	dinos := records.Default()
	require.Len(t, dinos, 8)

	draws := testutil.IdentityShuffle(len(dinos))
	// One fact draw for each of the seven non-pigeon records.
	draws = append(draws, 0, 1, 2, 3, 4, 5, 0)
	src := testutil.NewSequenceSource(draws...)

	tiles := NewBuilder("").Build(src, dinos, ann)
	require.Len(t, tiles, 9)
	assert.Equal(t, len(draws), src.Consumed())

	assert.Equal(t, "Triceratops", tiles[0].Title)
	assert.Equal(t, "Heavier than human", tiles[0].FactText())
	assert.Equal(t, "Tyrannosaurus Rex", tiles[1].Title)
	assert.Equal(t, "Taller than human", tiles[1].FactText())
	assert.Equal(t, "Anklyosaurus", tiles[2].Title)
	assert.Equal(t, "Same Diet with human", tiles[2].FactText())
	assert.Equal(t, "Brachiosaurus", tiles[3].Title)
	assert.Equal(t, "Live at Late Jurassic", tiles[3].FactText())

	human := tiles[4]
	assert.Equal(t, KindHuman, human.Kind)
	assert.Equal(t, "Ann", human.Title)
	assert.Equal(t, "/images/human.png", human.Image)
	assert.Equal(t, "human", human.Alt)
	assert.Nil(t, human.Fact)
	assert.False(t, human.HasFact())

	assert.Equal(t, "Stegosaurus", tiles[5].Title)
	assert.Equal(t, "Born in North America, Europe, Asia", tiles[5].FactText())
	assert.Equal(t, "Elasmosaurus", tiles[6].Title)
	assert.Equal(t, "Elasmosaurus was a marine reptile first discovered in Kansas.", tiles[6].FactText())
	assert.Equal(t, "Pteranodon", tiles[7].Title)
	assert.Equal(t, "Lighter than human", tiles[7].FactText())

	pigeon := tiles[8]
	assert.Equal(t, KindPigeon, pigeon.Kind)
	assert.Equal(t, "All birds are dinosaurs.", pigeon.FactText())
	require.NotNil(t, pigeon.FactKind)
	assert.Equal(t, fact.KindStored, *pigeon.FactKind)
}

func TestBuild_ImagePathsLowercaseSpecies(t *testing.T) {
	dinos := []dino.Dinosaur{{Species: "Tyrannosaurus Rex", Fact: "f"}}
	tiles := NewBuilder("").Build(testutil.NewSequenceSource(5), dinos, ann)

	require.Len(t, tiles, 2)
	assert.Equal(t, "/images/tyrannosaurus rex.png", tiles[0].Image)
	assert.Equal(t, "Tyrannosaurus Rex", tiles[0].Alt)
	assert.Equal(t, KindHuman, tiles[1].Kind)
}

func TestBuild_ImageBase(t *testing.T) {
	b := NewBuilder("https://cdn.example.com/dinos/")
	assert.Equal(t, "https://cdn.example.com/dinos/human.png", b.HumanTile(ann).Image)

	d := dino.Dinosaur{Species: "ÉLASMO", Fact: "f"}
	tl := b.DinoTile(testutil.NewSequenceSource(5), d, ann)
	assert.Equal(t, "https://cdn.example.com/dinos/élasmo.png", tl.Image)
}

func TestBuild_NoRecords(t *testing.T) {
	src := testutil.NewSequenceSource()
	tiles := NewBuilder("").Build(src, nil, ann)

	require.Len(t, tiles, 1)
	assert.Equal(t, KindHuman, tiles[0].Kind)
	assert.Equal(t, 0, src.Consumed())
}

func TestBuild_EveryRecordOnceHumanAtFour(t *testing.T) {
	dinos := records.Default()
	rng := rand.New(rand.NewSource(99))

	for i := 0; i < 50; i++ {
		tiles := NewBuilder("").Build(rng, dinos, ann)
		require.Len(t, tiles, len(dinos)+1)
		assert.Equal(t, KindHuman, tiles[4].Kind)

		seen := make(map[string]int)
		for _, tl := range tiles {
			seen[tl.Title]++
			if tl.Kind != KindHuman {
				assert.True(t, tl.HasFact(), "tile %s has no fact", tl.Title)
			}
		}
		for _, d := range dinos {
			assert.Equal(t, 1, seen[d.Species], "species %s", d.Species)
		}
	}
}

func TestBuild_InputNotMutated(t *testing.T) {
	dinos := records.Default()
	before := append([]dino.Dinosaur{}, dinos...)

	NewBuilder("").Build(rand.New(rand.NewSource(5)), dinos, ann)
	assert.Equal(t, before, dinos)
}

func TestBuild_SeedReproducible(t *testing.T) {
	dinos := records.Default()

	a := NewBuilder("").Build(rand.New(rand.NewSource(2024)), dinos, ann)
	b := NewBuilder("").Build(rand.New(rand.NewSource(2024)), dinos, ann)
	assert.Equal(t, a, b)
}
