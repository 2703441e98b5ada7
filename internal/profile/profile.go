// Package profile collects the human side of the comparison: the five form
// fields (name, feet, inches, weight, diet) from CLI flags or a YAML file.
//
// Numeric fields are parsed the way a browser form coerces them. Blank input
// is zero and anything unparsable is NaN. Nothing is rejected; NaN simply makes
// every comparison against it resolve to the lesser label.
package profile

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"math/big"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/roach88/dinograph/internal/dino"
)

// DefaultDiet is the diet a blank form starts with.
const DefaultDiet = dino.Herbivore

// Form holds the raw, unparsed form fields.
type Form struct {
	Name   string `yaml:"name" json:"name"`
	Feet   string `yaml:"feet" json:"feet"`
	Inches string `yaml:"inches" json:"inches"`
	Weight string `yaml:"weight" json:"weight"`
	Diet   string `yaml:"diet" json:"diet"`
}

// Blank returns the form as it looks after a reset: every field empty except
// the diet, which falls back to DefaultDiet.
func Blank() Form {
	return Form{Diet: string(DefaultDiet)}
}

// Human converts the form into a Human.
func (f Form) Human() dino.Human {
	diet := dino.Diet(f.Diet)
	if strings.TrimSpace(f.Diet) == "" {
		diet = DefaultDiet
	}
	return dino.NewHuman(
		f.Name,
		ParseNumber(f.Feet),
		ParseNumber(f.Inches),
		ParseNumber(f.Weight),
		diet,
	)
}

// Merge returns f with every non-empty field of override applied on top.
func (f Form) Merge(override Form) Form {
	if override.Name != "" {
		f.Name = override.Name
	}
	if override.Feet != "" {
		f.Feet = override.Feet
	}
	if override.Inches != "" {
		f.Inches = override.Inches
	}
	if override.Weight != "" {
		f.Weight = override.Weight
	}
	if override.Diet != "" {
		f.Diet = override.Diet
	}
	return f
}

// ParseNumber coerces a form field to a number the way a browser form does.
// Surrounding whitespace is ignored; blank is 0; unparsable is NaN.
//
// Accepted: decimal literals with optional sign and exponent, "Infinity"
// with optional sign, and unsigned 0x/0o/0b integers. Go-only spellings
// ("inf", "1_000", hex floats) are NaN. Overflow gives ±Inf.
func ParseNumber(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}

	switch s {
	case "Infinity", "+Infinity":
		return math.Inf(1)
	case "-Infinity":
		return math.Inf(-1)
	}

	if len(s) > 2 && s[0] == '0' {
		if base, ok := radixPrefixes[s[1]]; ok {
			return parseRadix(s[2:], base)
		}
	}

	if strings.ContainsAny(s, "_xXpPiInN") {
		return math.NaN()
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && numErr.Err == strconv.ErrRange {
			return v
		}
		return math.NaN()
	}
	return v
}

var radixPrefixes = map[byte]int{
	'x': 16, 'X': 16,
	'o': 8, 'O': 8,
	'b': 2, 'B': 2,
}

// parseRadix parses unsigned integer digits of any length.
func parseRadix(digits string, base int) float64 {
	n, ok := new(big.Int).SetString(digits, base)
	if !ok || strings.ContainsAny(digits, "_+-") {
		return math.NaN()
	}
	v, _ := new(big.Float).SetInt(n).Float64()
	return v
}

// Load reads a profile YAML file.
//
// Unknown keys are rejected so typos ("wieght:") do not silently fall back to
// a blank field. Scalars of any YAML type are kept as their literal text and
// coerced later by Human.
func Load(path string) (Form, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Form{}, fmt.Errorf("failed to read profile file: %w", err)
	}
	return Parse(data)
}

// Parse decodes profile YAML.
func Parse(data []byte) (Form, error) {
	var f Form
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&f); err != nil {
		return Form{}, fmt.Errorf("failed to parse profile YAML: %w", err)
	}
	return f, nil
}
