package render

import (
	"bytes"
	"encoding/json"
	"math"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/dinograph/internal/app"
	"github.com/roach88/dinograph/internal/dino"
	"github.com/roach88/dinograph/internal/fact"
	"github.com/roach88/dinograph/internal/tile"
)

func ptr[T any](v T) *T { return &v }

func basicInfographic() *app.Infographic {
	return &app.Infographic{
		ID:    "graph-1",
		Human: dino.Human{Name: "Ann", Height: 70, Weight: 180, Diet: dino.Omnivore},
		Tiles: []tile.Tile{
			{
				Kind:     tile.KindDino,
				Title:    "Triceratops",
				Image:    "/images/triceratops.png",
				Alt:      "Triceratops",
				Fact:     ptr("Heavier than human"),
				FactKind: ptr(fact.KindWeight),
			},
			{
				Kind:  tile.KindHuman,
				Title: "Ann",
				Image: "/images/human.png",
				Alt:   "human",
			},
			{
				Kind:     tile.KindPigeon,
				Title:    "Pigeon",
				Image:    "/images/pigeon.png",
				Alt:      "Pigeon",
				Fact:     ptr("All birds are dinosaurs."),
				FactKind: ptr(fact.KindStored),
			},
		},
	}
}

func newGoldie(t *testing.T) *goldie.Goldie {
	return goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
}

func TestText_Golden(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Text(&buf, basicInfographic()))

	newGoldie(t).Assert(t, "text_basic", buf.Bytes())
}

func TestJSON_Golden(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, JSON(&buf, basicInfographic()))

	newGoldie(t).Assert(t, "json_basic", buf.Bytes())
}

func TestHTML_Structure(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, HTML(&buf, basicInfographic()))
	out := buf.String()

	assert.Contains(t, out, `<meta name="infographic-id" content="graph-1">`)
	assert.Contains(t, out, `<div class="grid-item dino">`)
	assert.Contains(t, out, `<h3>Triceratops</h3>`)
	assert.Contains(t, out, `<img src="/images/triceratops.png" alt="Triceratops">`)
	assert.Contains(t, out, `<p>Heavier than human</p>`)
	assert.Contains(t, out, `<div class="grid-item human">`)
	assert.Contains(t, out, `<img src="/images/human.png" alt="human">`)
	assert.Equal(t, 2, strings.Count(out, "<p>"), "human tile has no fact paragraph")
	assert.Equal(t, 3, strings.Count(out, `<div class="grid-item`))

	// Tiles keep their order.
	assert.Less(t, strings.Index(out, "Triceratops"), strings.Index(out, "<h3>Ann</h3>"))
	assert.Less(t, strings.Index(out, "<h3>Ann</h3>"), strings.Index(out, "<h3>Pigeon</h3>"))
}

func TestHTML_EscapesUserInput(t *testing.T) {
	graph := basicInfographic()
	graph.Human.Name = `<script>alert("x")</script>`
	graph.Tiles[1].Title = graph.Human.Name

	var buf bytes.Buffer
	require.NoError(t, HTML(&buf, graph))
	assert.NotContains(t, buf.String(), "<script>")
	assert.Contains(t, buf.String(), "&lt;script&gt;")
}

func TestJSON_NaNMeasurementsAreNull(t *testing.T) {
	graph := basicInfographic()
	graph.Human.Height = math.NaN()

	var buf bytes.Buffer
	require.NoError(t, JSON(&buf, graph))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	human := decoded["human"].(map[string]any)
	assert.Nil(t, human["height"])
	assert.Equal(t, 180.0, human["weight"])
}

func TestJSON_EmptyTiles(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, JSON(&buf, &app.Infographic{ID: "x"}))
	assert.Contains(t, buf.String(), `"tiles": []`)
}

func TestText_NaNMeasurements(t *testing.T) {
	graph := basicInfographic()
	graph.Human.Weight = math.NaN()

	var buf bytes.Buffer
	require.NoError(t, Text(&buf, graph))
	assert.Contains(t, buf.String(), "Human: Ann (70 in, NaN lbs, omnivore)")
}

func TestWrite_Dispatch(t *testing.T) {
	for _, format := range Formats {
		t.Run(format, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, Write(&buf, format, basicInfographic()))
			assert.NotEmpty(t, buf.String())
		})
	}

	err := Write(&bytes.Buffer{}, "xml", basicInfographic())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown format")
}

func TestIsValidFormat(t *testing.T) {
	assert.True(t, IsValidFormat("text"))
	assert.True(t, IsValidFormat("json"))
	assert.True(t, IsValidFormat("html"))
	assert.False(t, IsValidFormat("TEXT"))
	assert.False(t, IsValidFormat(""))
}
