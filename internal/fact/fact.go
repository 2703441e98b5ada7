// Package fact chooses which statement a dinosaur tile displays.
//
// There are six statement kinds. Three compare the dinosaur with the human
// (weight, height, diet), two describe the dinosaur (era, habitat) and one
// repeats the fact stored on the record. Select draws a kind uniformly from
// the injected Source; each call is an independent draw, so two tiles showing
// the same kind is expected.
package fact

import (
	"fmt"

	"github.com/roach88/dinograph/internal/dino"
)

// Source is the random source a draw is taken from.
// *math/rand.Rand satisfies it.
type Source interface {
	// Intn returns a uniformly distributed integer in [0, n).
	Intn(n int) int
}

// Kind identifies one of the six statement kinds.
type Kind int

const (
	KindWeight Kind = iota
	KindHeight
	KindDiet
	KindEra
	KindHabitat
	KindStored
)

// NumKinds is the number of statement kinds a draw chooses between.
const NumKinds = 6

var kindNames = [NumKinds]string{"weight", "height", "diet", "era", "habitat", "fact"}

// String returns the lower-case name of the kind.
func (k Kind) String() string {
	if k < 0 || int(k) >= NumKinds {
		return fmt.Sprintf("kind(%d)", int(k))
	}
	return kindNames[k]
}

// ParseKind maps a kind name back to its Kind.
func ParseKind(name string) (Kind, error) {
	for i, n := range kindNames {
		if n == name {
			return Kind(i), nil
		}
	}
	return 0, fmt.Errorf("unknown fact kind %q: must be one of %v", name, kindNames)
}

// MarshalText encodes the kind by name.
func (k Kind) MarshalText() ([]byte, error) {
	if k < 0 || int(k) >= NumKinds {
		return nil, fmt.Errorf("invalid fact kind %d", int(k))
	}
	return []byte(kindNames[k]), nil
}

// UnmarshalText decodes a kind name.
func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// Fact is a rendered statement together with the kind that produced it.
type Fact struct {
	Kind Kind   `json:"kind"`
	Text string `json:"text"`
}

// Draw takes one uniform draw in [0, NumKinds) from src.
func Draw(src Source) Kind {
	return Kind(src.Intn(NumKinds))
}

// Describe renders the statement of kind k for d against h.
// Out-of-range kinds fall back to the stored fact.
func Describe(k Kind, d dino.Dinosaur, h dino.Human) string {
	switch k {
	case KindWeight:
		return d.CompareWeight(h)
	case KindHeight:
		return d.CompareHeight(h)
	case KindDiet:
		return d.CompareDiet(h)
	case KindEra:
		return "Live at " + d.Era
	case KindHabitat:
		return "Born in " + d.Habitat
	default:
		return d.Fact
	}
}

// Select draws a kind from src and renders it for d against h.
func Select(src Source, d dino.Dinosaur, h dino.Human) Fact {
	k := Draw(src)
	return Fact{Kind: k, Text: Describe(k, d, h)}
}

// All renders every kind for d against h, in kind order.
func All(d dino.Dinosaur, h dino.Human) []Fact {
	facts := make([]Fact, NumKinds)
	for i := range facts {
		k := Kind(i)
		facts[i] = Fact{Kind: k, Text: Describe(k, d, h)}
	}
	return facts
}
