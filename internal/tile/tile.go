// Package tile composes the ordered tile descriptors a rendering surface
// displays: one tile per dinosaur record with a randomly selected fact, and
// one tile for the human placed among them.
package tile

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/roach88/dinograph/internal/dino"
	"github.com/roach88/dinograph/internal/fact"
	"github.com/roach88/dinograph/internal/placement"
)

// Kind says which kind of entity a tile shows.
type Kind string

const (
	KindDino   Kind = "dino"
	KindHuman  Kind = "human"
	KindPigeon Kind = "pigeon"
)

// PigeonSpecies is the record species that always shows its stored fact.
const PigeonSpecies = "Pigeon"

// DefaultImageBase is the URL prefix tile images are served under.
const DefaultImageBase = "/images"

// Source is the random source for both the shuffle and the fact draws.
// *math/rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
}

// Tile is one rendered cell of the infographic.
type Tile struct {
	Kind     Kind       `json:"kind"`
	Title    string     `json:"title"`
	Image    string     `json:"image"`
	Alt      string     `json:"alt"`
	Fact     *string    `json:"fact"`
	FactKind *fact.Kind `json:"fact_kind,omitempty"`
}

// HasFact reports whether the tile carries a fact line.
func (t Tile) HasFact() bool {
	return t.Fact != nil && *t.Fact != ""
}

// FactText returns the fact line or "".
func (t Tile) FactText() string {
	if t.Fact == nil {
		return ""
	}
	return *t.Fact
}

// Builder turns records and a human into tiles.
type Builder struct {
	imageBase string
}

// NewBuilder creates a builder whose image paths start with imageBase.
// An empty imageBase selects DefaultImageBase.
func NewBuilder(imageBase string) *Builder {
	if imageBase == "" {
		imageBase = DefaultImageBase
	}
	return &Builder{imageBase: strings.TrimRight(imageBase, "/")}
}

// Build shuffles dinos, draws one fact per non-pigeon tile in shuffled order
// and places the human tile at placement.HumanIndex.
//
// Draw order is fixed: all shuffle draws first, then fact draws. A seeded
// source therefore reproduces the same infographic.
func (b *Builder) Build(src Source, dinos []dino.Dinosaur, h dino.Human) []Tile {
	shuffled := placement.Shuffle(src, dinos)

	tiles := make([]Tile, len(shuffled))
	for i, d := range shuffled {
		tiles[i] = b.DinoTile(src, d, h)
	}
	return placement.Interleave(tiles, b.HumanTile(h))
}

// DinoTile builds the tile for a single record.
// Pigeon tiles always show the stored fact and consume no draw.
func (b *Builder) DinoTile(src Source, d dino.Dinosaur, h dino.Human) Tile {
	t := Tile{
		Kind:  KindDino,
		Title: d.Species,
		Image: b.imagePath(d.Species),
		Alt:   d.Species,
	}

	var f fact.Fact
	if d.Species == PigeonSpecies {
		t.Kind = KindPigeon
		f = fact.Fact{Kind: fact.KindStored, Text: d.Fact}
	} else {
		f = fact.Select(src, d, h)
	}
	t.Fact = &f.Text
	t.FactKind = &f.Kind
	return t
}

// HumanTile builds the tile for the human. It has no fact line.
func (b *Builder) HumanTile(h dino.Human) Tile {
	return Tile{
		Kind:  KindHuman,
		Title: h.Name,
		Image: b.imageBase + "/human.png",
		Alt:   "human",
	}
}

func (b *Builder) imagePath(species string) string {
	return b.imageBase + "/" + cases.Lower(language.Und).String(species) + ".png"
}
