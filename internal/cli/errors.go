package cli

import "strings"

// PreflightError reports a missing precondition with a hint for the user.
type PreflightError struct {
	Message  string
	Hint     string
	NextStep string
}

func (e *PreflightError) Error() string {
	var b strings.Builder
	b.WriteString(e.Message)
	if e.Hint != "" {
		b.WriteString("\nHint: ")
		b.WriteString(e.Hint)
	}
	if e.NextStep != "" {
		b.WriteString("\nNext: ")
		b.WriteString(e.NextStep)
	}
	return b.String()
}
