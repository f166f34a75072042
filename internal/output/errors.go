// Package output provides formatting utilities for CLI output.
package output

import (
	"fmt"
	"os"
)

// WriteError writes an error message to stderr.
func WriteError(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
}
