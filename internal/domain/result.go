package domain

// Outcome of a validation pass.
// Feasibility is derived from the error list and cannot be set independently.
type ValidationResult struct {
	errors []string
}

func NewValidationResult(errs []string) *ValidationResult {
	out := make([]string, len(errs))
	copy(out, errs)
	return &ValidationResult{errors: out}
}

func (r *ValidationResult) Feasible() bool {
	return len(r.errors) == 0
}

// Errors returns the violations in discovery order.
func (r *ValidationResult) Errors() []string {
	out := make([]string, len(r.errors))
	copy(out, r.errors)
	return out
}
