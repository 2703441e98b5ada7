package records

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"golang.org/x/text/unicode/norm"

	"github.com/roach88/dinograph/internal/dino"
)

//go:embed schema.cue
var schemaCUE string

//go:embed dino.json
var defaultDocument []byte

// DefaultName is the source name reported for the embedded document.
const DefaultName = "dino.json"

// document mirrors the wire shape of the record document.
type document struct {
	Dinos []record `json:"Dinos"`
}

type record struct {
	Species string    `json:"species"`
	Weight  float64   `json:"weight"`
	Height  float64   `json:"height"`
	Diet    dino.Diet `json:"diet"`
	Where   string    `json:"where"`
	When    string    `json:"when"`
	Fact    string    `json:"fact"`
}

// Store loads dinosaur records from a document on disk, or from the
// embedded default document when no path is set.
type Store struct {
	path string
}

// NewStore creates a store reading from path. An empty path selects the
// embedded default document.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the configured document path ("" for the embedded document).
func (s *Store) Path() string {
	return s.path
}

// Load reads, validates and decodes the document.
// The returned slice is freshly allocated on every call.
func (s *Store) Load(ctx context.Context) ([]dino.Dinosaur, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("load records: %w", err)
	}

	data, name := defaultDocument, DefaultName
	if s.path != "" {
		b, err := os.ReadFile(s.path)
		if err != nil {
			return nil, &LoadError{
				Code:    ErrCodeNotFound,
				Message: fmt.Sprintf("reading record document: %v", err),
				Err:     err,
			}
		}
		data, name = b, s.path
	}

	dinos, err := Parse(data, name)
	if err != nil {
		return nil, err
	}
	slog.Debug("records loaded", "source", name, "count", len(dinos))
	return dinos, nil
}

// Default returns the records of the embedded document.
func Default() []dino.Dinosaur {
	dinos, err := Parse(defaultDocument, DefaultName)
	if err != nil {
		panic(fmt.Sprintf("embedded record document is invalid: %v", err))
	}
	return dinos
}

// Embedded returns a copy of the embedded default document.
func Embedded() []byte {
	return bytes.Clone(defaultDocument)
}

// Validate checks data against the record schema without decoding it and
// returns the number of records it holds.
func Validate(data []byte, name string) (int, error) {
	return validate(data, name)
}

// Parse validates data against the record schema and decodes it.
// name is used in error positions.
func Parse(data []byte, name string) ([]dino.Dinosaur, error) {
	if _, err := validate(data, name); err != nil {
		return nil, err
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, &LoadError{
			Code:    ErrCodeParse,
			Message: fmt.Sprintf("decoding record document: %v", err),
			Err:     err,
		}
	}

	dinos := make([]dino.Dinosaur, len(doc.Dinos))
	for i, r := range doc.Dinos {
		dinos[i] = dino.Dinosaur{
			Species: norm.NFC.String(r.Species),
			Weight:  r.Weight,
			Height:  r.Height,
			Diet:    dino.Diet(norm.NFC.String(string(r.Diet))),
			Habitat: norm.NFC.String(r.Where),
			Era:     norm.NFC.String(r.When),
			Fact:    norm.NFC.String(r.Fact),
		}
	}
	return dinos, nil
}

// validate unifies data with the schema and returns the number of records.
func validate(data []byte, name string) (int, error) {
	ctx := cuecontext.New()

	schema := ctx.CompileString(schemaCUE, cue.Filename("schema.cue"))
	if err := schema.Err(); err != nil {
		return 0, fmt.Errorf("compiling record schema: %w", err)
	}

	doc := ctx.CompileBytes(data, cue.Filename(name))
	if err := doc.Err(); err != nil {
		return 0, newCUELoadError(ErrCodeParse, err)
	}

	list := doc.LookupPath(cue.ParsePath("Dinos"))
	if !list.Exists() {
		return 0, &LoadError{Code: ErrCodeNoRecords, Message: fmt.Sprintf("%s: no Dinos list found", name)}
	}

	unified := schema.Unify(doc)
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return 0, newCUELoadError(ErrCodeSchema, err)
	}

	count := 0
	iter, err := unified.LookupPath(cue.ParsePath("Dinos")).List()
	if err != nil {
		return 0, newCUELoadError(ErrCodeSchema, err)
	}
	for iter.Next() {
		count++
	}
	return count, nil
}
