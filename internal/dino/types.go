package dino

// Diet is what an animal eats. Values are compared verbatim.
type Diet string

// Canonical diet values.
const (
	Herbivore Diet = "herbivore"
	Omnivore  Diet = "omnivore"
	Carnivore Diet = "carnivore"
)

// Diets lists the canonical diets in form order.
var Diets = []Diet{Herbivore, Omnivore, Carnivore}

// IsCanonical reports whether d is one of the three canonical diets.
func (d Diet) IsCanonical() bool {
	for _, c := range Diets {
		if d == c {
			return true
		}
	}
	return false
}

// Dinosaur is a single record from the static record document.
type Dinosaur struct {
	Species string  `json:"species"`
	Weight  float64 `json:"weight"` // lbs
	Height  float64 `json:"height"` // inches
	Diet    Diet    `json:"diet"`
	Habitat string  `json:"habitat"`
	Era     string  `json:"era"`
	Fact    string  `json:"fact"`
}

// Human is the profile submitted by the user.
type Human struct {
	Name   string  `json:"name"`
	Height float64 `json:"height"` // inches
	Weight float64 `json:"weight"` // lbs
	Diet   Diet    `json:"diet"`
}

// NewHuman builds a Human from a height split into feet and inches.
func NewHuman(name string, feet, inches, weight float64, diet Diet) Human {
	return Human{
		Name:   name,
		Height: feet*12 + inches,
		Weight: weight,
		Diet:   diet,
	}
}
