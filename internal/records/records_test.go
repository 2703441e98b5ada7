package records

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/dinograph/internal/dino"
)

func writeDoc(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "dino.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestStore_LoadsEmbeddedDefault(t *testing.T) {
	dinos, err := NewStore("").Load(context.Background())
	require.NoError(t, err)
	require.Len(t, dinos, 8)

	assert.Equal(t, "Triceratops", dinos[0].Species)
	assert.Equal(t, "Pigeon", dinos[7].Species)
	assert.Equal(t, 0.5, dinos[7].Weight)
}

func TestStore_MapsWhereAndWhen(t *testing.T) {
	path := writeDoc(t, `{"Dinos": [{
		"species": "Brachiosaurus", "weight": 15000, "height": 144, "diet": "herbivore",
		"where": "North America", "when": "Jurassic", "fact": "X"
	}]}`)

	dinos, err := NewStore(path).Load(context.Background())
	require.NoError(t, err)
	require.Len(t, dinos, 1)

	assert.Equal(t, dino.Dinosaur{
		Species: "Brachiosaurus",
		Weight:  15000,
		Height:  144,
		Diet:    dino.Herbivore,
		Habitat: "North America",
		Era:     "Jurassic",
		Fact:    "X",
	}, dinos[0])
}

func TestStore_EmptyListIsValid(t *testing.T) {
	path := writeDoc(t, `{"Dinos": []}`)

	dinos, err := NewStore(path).Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, dinos)
}

func TestStore_IgnoresExtraFields(t *testing.T) {
	path := writeDoc(t, `{"Dinos": [{
		"species": "Pigeon", "weight": 0.5, "height": 9, "diet": "herbivore",
		"where": "World Wide", "when": "Holocene", "fact": "All birds are dinosaurs.",
		"wingspan": 26
	}]}`)

	dinos, err := NewStore(path).Load(context.Background())
	require.NoError(t, err)
	assert.Len(t, dinos, 1)
}

func TestStore_MissingFile(t *testing.T) {
	_, err := NewStore(filepath.Join(t.TempDir(), "missing.json")).Load(context.Background())
	require.Error(t, err)

	var loadErr *LoadError
	require.True(t, errors.As(err, &loadErr))
	assert.Equal(t, ErrCodeNotFound, loadErr.Code)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestStore_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewStore("").Load(ctx)
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestParse_SchemaViolations(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		code string
	}{
		{
			name: "misspelled diet",
			doc:  `{"Dinos": [{"species": "T", "weight": 1, "height": 1, "diet": "herbavor", "where": "", "when": "", "fact": "f"}]}`,
			code: ErrCodeSchema,
		},
		{
			name: "capitalised diet",
			doc:  `{"Dinos": [{"species": "T", "weight": 1, "height": 1, "diet": "Herbivore", "where": "", "when": "", "fact": "f"}]}`,
			code: ErrCodeSchema,
		},
		{
			name: "string height",
			doc:  `{"Dinos": [{"species": "T", "weight": 1, "height": "372", "diet": "herbivore", "where": "", "when": "", "fact": "f"}]}`,
			code: ErrCodeSchema,
		},
		{
			name: "negative weight",
			doc:  `{"Dinos": [{"species": "T", "weight": -1, "height": 1, "diet": "herbivore", "where": "", "when": "", "fact": "f"}]}`,
			code: ErrCodeSchema,
		},
		{
			name: "empty species",
			doc:  `{"Dinos": [{"species": "", "weight": 1, "height": 1, "diet": "herbivore", "where": "", "when": "", "fact": "f"}]}`,
			code: ErrCodeSchema,
		},
		{
			name: "missing fact",
			doc:  `{"Dinos": [{"species": "T", "weight": 1, "height": 1, "diet": "herbivore", "where": "", "when": ""}]}`,
			code: ErrCodeSchema,
		},
		{
			name: "no Dinos key",
			doc:  `{"Dinosaurs": []}`,
			code: ErrCodeNoRecords,
		},
		{
			name: "not JSON",
			doc:  `{"Dinos": [`,
			code: ErrCodeParse,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc), "doc.json")
			require.Error(t, err)

			var loadErr *LoadError
			require.True(t, errors.As(err, &loadErr), "got %T: %v", err, err)
			assert.Equal(t, tt.code, loadErr.Code)
		})
	}
}

func TestParse_SchemaErrorNamesField(t *testing.T) {
	doc := "{\"Dinos\": [\n{\"species\": \"T\", \"weight\": 1, \"height\": 1,\n\"diet\": \"herbavor\", \"where\": \"\", \"when\": \"\", \"fact\": \"f\"}]}"

	_, err := Parse([]byte(doc), "doc.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrCodeSchema)
	assert.Contains(t, err.Error(), "diet")
}

func TestParse_NormalisesToNFC(t *testing.T) {
	// "Ebe" followed by a combining acute accent.
	doc := `{"Dinos": [{"species": "Ebe\u0301", "weight": 1, "height": 1, "diet": "herbivore", "where": "", "when": "", "fact": "f"}]}`

	dinos, err := Parse([]byte(doc), "doc.json")
	require.NoError(t, err)
	assert.Equal(t, "Eb\u00e9", dinos[0].Species)
}

func TestValidate_CountsRecords(t *testing.T) {
	n, err := Validate(defaultDocument, DefaultName)
	require.NoError(t, err)
	assert.Equal(t, 8, n)
}

func TestDefault_FreshCopies(t *testing.T) {
	a := Default()
	a[0].Species = "changed"
	b := Default()
	assert.Equal(t, "Triceratops", b[0].Species)
}
