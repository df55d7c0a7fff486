// Package report prints the human-readable outcome of a validation run.
package report

import (
	"fmt"
	"io"
	"route-validator/internal/domain"
)

type Reporter struct {
	w       io.Writer
	verbose bool
}

func New(w io.Writer, verbose bool) *Reporter {
	return &Reporter{w: w, verbose: verbose}
}

// Banner announces the run before any input is read.
func (r *Reporter) Banner(method string) {
	fmt.Fprintf(r.w, "Starting solution validation with %s distance calculation...\n", method)
	fmt.Fprintln(r.w, "Note: TotalDistance, TotalTime, and FuelCost columns are ignored")
	fmt.Fprintln(r.w)
}

// Result prints the feasibility headline and, when infeasible, every error in order.
func (r *Reporter) Result(res *domain.ValidationResult) {
	if res.Feasible() {
		fmt.Fprintln(r.w, "SOLUTION IS FEASIBLE!")
		fmt.Fprintln(r.w, "All routes satisfy the requirements.")
	} else {
		fmt.Fprintln(r.w, "SOLUTION IS INFEASIBLE!")
		fmt.Fprintln(r.w, "Errors found:")
		for _, e := range res.Errors() {
			fmt.Fprintf(r.w, "- %s\n", e)
		}
	}

	if r.verbose {
		fmt.Fprintln(r.w)
		fmt.Fprintln(r.w, "Validation completed successfully!")
	}
}

// Failure reports an error that stopped the run.
func (r *Reporter) Failure(err error) {
	fmt.Fprintf(r.w, "Error during validation: %v\n", err)
}
