//go:build wasip1

package log

import (
	"log/slog"

	"github.com/autosplit-dev/autosplit-sdk/infrastructure/wasm"
)

var hostPrinter = wasm.NewHostAdapter()

// defaultPrinter sends the line to runtime_print_message.
func defaultPrinter(line string) {
	hostPrinter.PrintMessage(line)
}

// init configures the default slog handler to use our WasmLogHandler.
func init() {
	slog.SetDefault(slog.New(NewHandler()))
}
