// Package app holds the state of one infographic session.
//
// A session alternates between two phases: the form (waiting for a profile)
// and the grid (showing a generated infographic). Submit moves from form to
// grid; Reset moves back and restores the blank form. Everything a render
// needs is carried on State, so there is no package-level state.
package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/roach88/dinograph/internal/dino"
	"github.com/roach88/dinograph/internal/profile"
	"github.com/roach88/dinograph/internal/tile"
)

// RecordSource supplies the dinosaur records for a submission.
// *records.Store satisfies it.
type RecordSource interface {
	Load(ctx context.Context) ([]dino.Dinosaur, error)
}

// Infographic is a generated grid of tiles for one human.
type Infographic struct {
	ID    string      `json:"id"`
	Human dino.Human  `json:"human"`
	Tiles []tile.Tile `json:"tiles"`
}

// State is one session.
type State struct {
	records RecordSource
	src     tile.Source
	ids     IDGenerator
	builder *tile.Builder

	form    profile.Form
	current *Infographic
}

// Option configures a State.
type Option func(*State)

// WithIDGenerator overrides the infographic id generator (for testing).
func WithIDGenerator(g IDGenerator) Option {
	return func(s *State) { s.ids = g }
}

// WithImageBase sets the URL prefix of tile images.
func WithImageBase(base string) Option {
	return func(s *State) { s.builder = tile.NewBuilder(base) }
}

// New creates a session in the form phase.
// src drives both the shuffle and the fact draws.
func New(records RecordSource, src tile.Source, opts ...Option) *State {
	s := &State{
		records: records,
		src:     src,
		ids:     UUIDv7Generator{},
		builder: tile.NewBuilder(""),
		form:    profile.Blank(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Submit loads the records, builds the human from form and generates a new
// infographic, replacing any previous one.
//
// A load failure leaves the session unchanged.
func (s *State) Submit(ctx context.Context, form profile.Form) (*Infographic, error) {
	dinos, err := s.records.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("submit: %w", err)
	}

	human := form.Human()
	graph := &Infographic{
		ID:    s.ids.Generate(),
		Human: human,
		Tiles: s.builder.Build(s.src, dinos, human),
	}

	slog.Debug("infographic generated",
		"id", graph.ID,
		"human", human.Name,
		"tiles", len(graph.Tiles),
	)

	s.form = form
	s.current = graph
	return graph, nil
}

// Current returns the infographic on display, or nil in the form phase.
func (s *State) Current() *Infographic {
	return s.current
}

// Form returns the form as last submitted, or the blank form.
func (s *State) Form() profile.Form {
	return s.form
}

// Showing reports whether the session is in the grid phase.
func (s *State) Showing() bool {
	return s.current != nil
}

// Reset discards the infographic and returns the blank form.
func (s *State) Reset() profile.Form {
	s.current = nil
	s.form = profile.Blank()
	return s.form
}
