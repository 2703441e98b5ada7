// Package placement orders infographic entries: a uniform shuffle of the
// dinosaur entries with the human entry interleaved at a fixed offset.
//
// Both operations work on copies. Callers' slices are never reordered.
package placement

// HumanIndex is the output position of the human entry when at least
// HumanIndex dinosaur entries precede it.
const HumanIndex = 4

// Source is the random source shuffles draw from.
// *math/rand.Rand satisfies it.
type Source interface {
	// Intn returns a uniformly distributed integer in [0, n).
	Intn(n int) int
}

// Shuffle returns a uniformly random permutation of items.
//
// Fisher-Yates, last index down to 1: element i is swapped with a uniformly
// chosen index j <= i. The input slice is left untouched.
func Shuffle[T any](src Source, items []T) []T {
	out := make([]T, len(items))
	copy(out, items)
	for i := len(out) - 1; i > 0; i-- {
		j := src.Intn(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// Interleave inserts human at HumanIndex. With fewer than HumanIndex
// dinosaur entries the human is appended after all of them.
func Interleave[T any](dinos []T, human T) []T {
	at := min(HumanIndex, len(dinos))
	out := make([]T, 0, len(dinos)+1)
	out = append(out, dinos[:at]...)
	out = append(out, human)
	out = append(out, dinos[at:]...)
	return out
}

// Place shuffles dinos and interleaves human into the result.
// The output always has len(dinos)+1 entries.
func Place[T any](src Source, dinos []T, human T) []T {
	return Interleave(Shuffle(src, dinos), human)
}
