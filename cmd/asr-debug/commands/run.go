package commands

import (
	"context"
	"fmt"
	"maps"
	"os"
	"os/signal"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/autosplit-dev/autosplit-sdk/application/scenario"
	"github.com/autosplit-dev/autosplit-sdk/host"
	"github.com/autosplit-dev/autosplit-sdk/hostfuncs"
)

type runOptions struct {
	scenario string
	ticks    uint64
	realtime bool
}

func runCmd(root *rootOptions) *cobra.Command {
	opts := &runOptions{}
	cmd := &cobra.Command{
		Use:   "run <module.wasm>",
		Short: "Run an autosplitter against a scenario",
		Long: `Run loads a wasm autosplitter, builds the simulated processes the
scenario describes and ticks the autosplitter, applying the scenario's
steps before each tick. Without --ticks it runs up to the last scheduled
step, or until interrupted with --realtime.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			return opts.run(ctx, cmd, root, args[0])
		},
	}

	cmd.Flags().StringVarP(&opts.scenario, "scenario", "s", "", "scenario file (YAML)")
	cmd.Flags().Uint64VarP(&opts.ticks, "ticks", "n", 0, "number of ticks to run")
	cmd.Flags().BoolVar(&opts.realtime, "realtime", false, "pace ticks at the autosplitter's tick rate")
	_ = cmd.MarkFlagRequired("scenario")
	return cmd
}

func (o *runOptions) run(ctx context.Context, cmd *cobra.Command, root *rootOptions, modulePath string) error {
	logger := root.logger(cmd)

	s, err := host.NewLoader().LoadScenarioFile(o.scenario, root.templateVars())
	if err != nil {
		return err
	}
	env, err := scenario.Build(s, hostfuncs.WithLogger(logger))
	if err != nil {
		return fmt.Errorf("invalid scenario: %w", err)
	}

	ticks := o.ticks
	if ticks == 0 {
		ticks = env.LastTick()
	}
	if ticks == 0 && !o.realtime {
		return fmt.Errorf("scenario %q schedules no steps; pass --ticks or --realtime", s.Name)
	}

	wasm, err := os.ReadFile(modulePath)
	if err != nil {
		return fmt.Errorf("failed to read module: %w", err)
	}

	executor, err := host.NewExecutor(ctx, env.Host(),
		host.WithLogger(logger),
		host.WithOutput(cmd.OutOrStdout(), cmd.ErrOrStderr()),
	)
	if err != nil {
		return err
	}
	defer func() { _ = executor.Close(context.Background()) }()

	name := strings.TrimSuffix(filepath.Base(modulePath), filepath.Ext(modulePath))
	inst, err := executor.LoadAutosplitter(ctx, name, wasm)
	if err != nil {
		return err
	}

	runOpts := []host.RunOption{
		host.WithTicks(ticks),
		host.WithBeforeTick(env.BeforeTick),
	}
	if o.realtime {
		runOpts = append(runOpts, host.WithInterval(env.Host().TickInterval))
	}
	runErr := inst.Run(ctx, runOpts...)

	printSummary(cmd, inst, env)
	if runErr != nil && ctx.Err() == nil {
		return runErr
	}
	return env.Check()
}

func printSummary(cmd *cobra.Command, inst *host.Instance, env *scenario.Environment) {
	out := cmd.OutOrStdout()
	h := env.Host()
	timer := h.Timer()

	fmt.Fprintf(out, "ticks:     %d\n", inst.Ticks())
	fmt.Fprintf(out, "state:     %s (split %d)\n", timer.State(), timer.CurrentSplit())
	fmt.Fprintf(out, "game time: %s\n", timer.GameTime())
	fmt.Fprintf(out, "tick rate: %g Hz\n", h.TickRate())
	fmt.Fprintf(out, "actions:   %s\n", strings.Join(env.Actions(), ", "))
	vars := timer.Variables()
	for _, k := range slices.Sorted(maps.Keys(vars)) {
		fmt.Fprintf(out, "var %s = %q\n", k, vars[k])
	}
}
