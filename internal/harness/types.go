package harness

import (
	"github.com/roach88/dinograph/internal/app"
)

// Result is the outcome of a scenario execution.
type Result struct {
	// Pass indicates overall success.
	// True if every assertion held.
	Pass bool `json:"pass"`

	// Errors contains assertion failure messages.
	// Empty if Pass is true.
	Errors []string `json:"errors,omitempty"`

	// Infographic is the generated infographic the assertions ran against.
	Infographic *app.Infographic `json:"infographic,omitempty"`
}

// NewResult creates a new passing result.
func NewResult() *Result {
	return &Result{
		Pass:   true,
		Errors: []string{},
	}
}

// AddError adds a validation error and marks the result as failed.
func (r *Result) AddError(err string) {
	r.Errors = append(r.Errors, err)
	r.Pass = false
}
