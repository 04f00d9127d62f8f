package commands

import (
	"log/slog"

	"github.com/spf13/cobra"
)

type rootOptions struct {
	vars    map[string]string
	verbose bool
}

// Execute runs the asr-debug command line.
func Execute() error {
	return NewRootCommand().Execute()
}

// NewRootCommand builds the command tree.
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}
	root := &cobra.Command{
		Use:           "asr-debug",
		Short:         "Run autosplitters against simulated processes",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	root.PersistentFlags().StringToStringVar(&opts.vars, "set", nil, "scenario template variable (key=value), repeatable")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log debug output")

	root.AddCommand(runCmd(opts), validateCmd(opts), schemaCmd())
	return root
}

func (o *rootOptions) templateVars() map[string]any {
	vars := make(map[string]any, len(o.vars))
	for k, v := range o.vars {
		vars[k] = v
	}
	return vars
}

func (o *rootOptions) logger(cmd *cobra.Command) *slog.Logger {
	level := slog.LevelInfo
	if o.verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
}
