package cli

import "os"

// IsNonInteractive reports whether the TUI must not be started.
func IsNonInteractive() bool {
	if nonInteractive {
		return true
	}
	if _, ok := os.LookupEnv("NAHW_NON_INTERACTIVE"); ok {
		return true
	}
	return !hasTTY()
}
