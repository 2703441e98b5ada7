package records

import (
	"fmt"

	"cuelang.org/go/cue/errors"
	"cuelang.org/go/cue/token"
)

// Error codes for record loading. They share the E0xx space used by the CLI.
const (
	ErrCodeNoRecords = "E003" // Document has no Dinos list
	ErrCodeParse     = "E004" // Document is not valid JSON/CUE
	ErrCodeNotFound  = "E005" // Document could not be read
	ErrCodeSchema    = "E006" // Document violates the record schema
)

// LoadError describes why a record document could not be loaded.
type LoadError struct {
	Code    string
	Message string
	Pos     token.Pos // CUE position if available
	Err     error
}

func (e *LoadError) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s:%d:%d: %s: %s", e.Pos.Filename(), e.Pos.Line(), e.Pos.Column(), e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// newCUELoadError keeps the first CUE error and its position.
func newCUELoadError(code string, err error) *LoadError {
	loadErr := &LoadError{Code: code, Message: err.Error(), Err: err}

	errs := errors.Errors(err)
	if len(errs) == 0 {
		return loadErr
	}
	first := errs[0]
	loadErr.Message = first.Error()
	if positions := errors.Positions(first); len(positions) > 0 {
		loadErr.Pos = positions[0]
	}
	return loadErr
}
