package wazero

import (
	"context"

	"github.com/tetratelabs/wazero/api"
)

// contextKey is a private type for context keys.
type contextKey struct {
	name string
}

var splitterNameKey = &contextKey{name: "splitter_name"}

// WithSplitterName adds the autosplitter name to the context.
// Host functions use it to label log records.
func WithSplitterName(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, splitterNameKey, name)
}

// SplitterNameFromContext retrieves the autosplitter name from the context.
func SplitterNameFromContext(ctx context.Context) (string, bool) {
	name, ok := ctx.Value(splitterNameKey).(string)
	return name, ok
}

// SplitterName extracts the autosplitter name from context, falling back to the module name.
func SplitterName(ctx context.Context, mod api.Module) string {
	if name, ok := SplitterNameFromContext(ctx); ok {
		return name
	}
	if mod == nil {
		return ""
	}
	return mod.Name()
}
