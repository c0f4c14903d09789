package navcheck

import (
	"fmt"
	"io"
	"time"
)

// CheckResult is the outcome of a single assertion.
type CheckResult struct {
	Name   string `json:"name"`
	Passed bool   `json:"passed"`
	Detail string `json:"detail,omitempty"`
}

// Report collects the results of one script run.
type Report struct {
	Script   string        `json:"script"`
	URL      string        `json:"url"`
	Checks   []CheckResult `json:"checks"`
	Notes    []string      `json:"notes,omitempty"`
	Duration time.Duration `json:"duration"`
}

// Failed reports whether any check failed.
func (r *Report) Failed() bool {
	for _, c := range r.Checks {
		if !c.Passed {
			return true
		}
	}
	return false
}

func (r *Report) pass(name, detail string) {
	r.Checks = append(r.Checks, CheckResult{Name: name, Passed: true, Detail: detail})
}

func (r *Report) fail(name string, err error) {
	r.Checks = append(r.Checks, CheckResult{Name: name, Detail: err.Error()})
}

func (r *Report) note(format string, args ...any) {
	r.Notes = append(r.Notes, fmt.Sprintf(format, args...))
}

// Write prints the report in a human readable form.
func (r *Report) Write(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "%s %s (%s)\n", r.Script, r.URL, r.Duration.Round(time.Millisecond)); err != nil {
		return err
	}
	for _, n := range r.Notes {
		if _, err := fmt.Fprintf(w, "  note: %s\n", n); err != nil {
			return err
		}
	}
	for _, c := range r.Checks {
		status := "PASS"
		if !c.Passed {
			status = "FAIL"
		}
		line := fmt.Sprintf("  %s %s", status, c.Name)
		if c.Detail != "" {
			line += ": " + c.Detail
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
