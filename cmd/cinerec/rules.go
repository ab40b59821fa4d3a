package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "List the recommendation rules or export them as Prolog",
	Long: `List the recommendation rules with their aliases and parameters.

With --export, write the catalog facts and the rule clauses as a Prolog
program instead. Use "-" to write the program to stdout.

Example:
  cinerec rules
  cinerec rules --export movies.pl`,
	Args: cobra.NoArgs,
	RunE: runRules,
}

var rulesExport string

func init() {
	rulesCmd.Flags().StringVar(&rulesExport, "export", "", "Write the Prolog program to this file")
}

func runRules(cmd *cobra.Command, args []string) error {
	if rulesExport == "" {
		return outputCard(cmd, app.RuleList())
	}

	program := app.Program()
	if rulesExport == "-" {
		_, err := fmt.Fprint(cmd.OutOrStdout(), program)
		return err
	}

	if err := os.WriteFile(rulesExport, []byte(program), 0o644); err != nil {
		return fmt.Errorf("export rules: %w", err)
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "Wrote %d bytes to %s\n", len(program), rulesExport)
	return nil
}
