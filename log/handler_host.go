//go:build !wasip1

package log

import (
	"fmt"
	"os"
)

// defaultPrinter writes to stderr on native builds (host tests).
func defaultPrinter(line string) {
	fmt.Fprintln(os.Stderr, "[HOST-STUB]", line)
}
