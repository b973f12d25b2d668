package cli

import "os"

// IsNonInteractive reports whether interactive views must not be started.
func IsNonInteractive() bool {
	if nonInteractive || IsJSONOutput() {
		return true
	}
	if _, ok := os.LookupEnv("EON_NON_INTERACTIVE"); ok {
		return true
	}
	return !hasTTY()
}
