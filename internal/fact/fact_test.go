package fact

import (
	"encoding/json"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/dinograph/internal/dino"
	"github.com/roach88/dinograph/internal/testutil"
)

var (
	stego = dino.Dinosaur{
		Species: "Stegosaurus",
		Weight:  11600,
		Height:  79,
		Diet:    dino.Herbivore,
		Habitat: "North America, Europe, Asia",
		Era:     "Late Jurassic to Early Cretaceous",
		Fact:    "The Stegosaurus had between 17 and 22 separate plates and flat spines.",
	}
	ann = dino.NewHuman("Ann", 5, 10, 180, dino.Omnivore)
)

func TestSelect_DispatchesEveryDraw(t *testing.T) {
	tests := []struct {
		draw   int
		kind   Kind
		expect string
	}{
		{0, KindWeight, "Heavier than human"},
		{1, KindHeight, "Taller than human"},
		{2, KindDiet, "Different Diet from human"},
		{3, KindEra, "Live at Late Jurassic to Early Cretaceous"},
		{4, KindHabitat, "Born in North America, Europe, Asia"},
		{5, KindStored, "The Stegosaurus had between 17 and 22 separate plates and flat spines."},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			src := testutil.NewSequenceSource(tt.draw)
			f := Select(src, stego, ann)
			assert.Equal(t, tt.kind, f.Kind)
			assert.Equal(t, tt.expect, f.Text)
			assert.Equal(t, 1, src.Consumed(), "exactly one draw per selection")
		})
	}
}

func TestSelect_AlwaysNonEmpty(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 500; i++ {
		f := Select(rng, stego, ann)
		require.NotEmpty(t, f.Text)
	}
}

func TestSelect_UniformOverKinds(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	const trials = 60000
	var counts [NumKinds]int
	for i := 0; i < trials; i++ {
		counts[Select(rng, stego, ann).Kind]++
	}

	expected := float64(trials) / NumKinds
	chi := 0.0
	for _, c := range counts {
		d := float64(c) - expected
		chi += d * d / expected
	}
	// 5 degrees of freedom, p = 0.001
	assert.Less(t, chi, 20.515, "counts %v", counts)
}

func TestDescribe_OutOfRangeFallsBackToStoredFact(t *testing.T) {
	assert.Equal(t, stego.Fact, Describe(Kind(9), stego, ann))
	assert.Equal(t, stego.Fact, Describe(Kind(-1), stego, ann))
}

func TestAll_ListsSixDistinctKinds(t *testing.T) {
	facts := All(stego, ann)
	require.Len(t, facts, NumKinds)
	for i, f := range facts {
		assert.Equal(t, Kind(i), f.Kind)
		assert.Equal(t, Describe(f.Kind, stego, ann), f.Text)
	}
}

func TestKind_Names(t *testing.T) {
	for i := 0; i < NumKinds; i++ {
		k := Kind(i)
		parsed, err := ParseKind(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, parsed)
	}

	_, err := ParseKind("colour")
	assert.Error(t, err)
	assert.Equal(t, "kind(7)", Kind(7).String())
}

func TestFact_JSONUsesKindName(t *testing.T) {
	b, err := json.Marshal(Fact{Kind: KindHabitat, Text: "Born in Asia"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"kind":"habitat","text":"Born in Asia"}`, string(b))

	var f Fact
	require.NoError(t, json.Unmarshal(b, &f))
	assert.Equal(t, KindHabitat, f.Kind)
}
