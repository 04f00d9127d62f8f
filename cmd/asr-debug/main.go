// Command asr-debug runs autosplitter wasm modules against simulated
// processes described by scenario files.
package main

import (
	"os"

	"github.com/autosplit-dev/autosplit-sdk/cmd/asr-debug/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
