// Package records loads the static dinosaur record document.
//
// The document is JSON of the form
//
//	{"Dinos": [{"species", "weight", "height", "diet", "where", "when", "fact"}, ...]}
//
// where "where" and "when" become Dinosaur.Habitat and Dinosaur.Era.
//
// # Validation
//
// Before decoding, the document is unified with an embedded CUE schema
// (schema.cue). Species and fact must be non-empty, weight and height must be
// non-negative numbers and diet must be one of the canonical diets. Violations
// are reported as *LoadError with the CUE position of the first offending
// value.
//
// # Normalisation
//
// All string fields are NFC normalised so that species names differing only
// in Unicode composition are identical after loading.
//
// Loading happens once per render. Failures are returned to the caller and
// never retried.
package records
