package dino

// Comparison statements.
const (
	Heavier       = "Heavier than human"
	Lighter       = "Lighter than human"
	Taller        = "Taller than human"
	Shorter       = "Shorter than human"
	SameDiet      = "Same Diet with human"
	DifferentDiet = "Different Diet from human"
)

// CompareWeight returns Heavier when d weighs strictly more than h, Lighter otherwise.
func (d Dinosaur) CompareWeight(h Human) string {
	if d.Weight > h.Weight {
		return Heavier
	}
	return Lighter
}

// CompareHeight returns Taller when d is strictly taller than h, Shorter otherwise.
func (d Dinosaur) CompareHeight(h Human) string {
	if d.Height > h.Height {
		return Taller
	}
	return Shorter
}

// CompareDiet returns SameDiet when both diets are the exact same string.
func (d Dinosaur) CompareDiet(h Human) string {
	if d.Diet == h.Diet {
		return SameDiet
	}
	return DifferentDiet
}
