// Package dino defines the two entities an infographic compares, dinosaurs
// and humans, and the comparison rules between them.
//
// Key design constraints:
//   - Heights are always inches and weights always pounds, for both entities
//   - Values are immutable once constructed; nothing in this package mutates them
//   - Comparisons use strict greater-than, so ties resolve to the lesser label
//   - Diet equality is exact string equality ("Herbivore" != "herbivore")
//
// Numeric fields are float64. NaN is a legal value (it is what the form
// collaborator produces for unparsable input) and makes every comparison
// resolve to the lesser label.
package dino
