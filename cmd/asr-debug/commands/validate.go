package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/autosplit-dev/autosplit-sdk/application/scenario"
	"github.com/autosplit-dev/autosplit-sdk/host"
)

func validateCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <scenario.yaml>",
		Short: "Check a scenario file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := host.NewLoader().LoadScenarioFile(args[0], opts.templateVars())
			if err != nil {
				return err
			}
			if _, err := scenario.Build(s); err != nil {
				return fmt.Errorf("invalid scenario: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "scenario %q is valid: %d processes, %d steps\n",
				s.Name, len(s.Processes), len(s.Steps))
			return nil
		},
	}
}

func schemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON schema of scenario files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			raw, err := scenario.Schema()
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(raw))
			return err
		},
	}
}
