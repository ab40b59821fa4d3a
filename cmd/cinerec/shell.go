package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/mattn/go-shellwords"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Run commands interactively",
	Long: `Read commands from stdin, one per line, and run them against the same
catalog and rule engine. Errors are printed and the loop continues.

Commands: filter, recommend, catalog, rules, help, quit
Quote values that contain spaces. Global flags such as --format or
--engine apply to the whole session and are given to "cinerec shell".

Example:
  cinerec> filter --genre drama --min-year 1990 --min-rating 9.0
  cinerec> recommend recomendar_genero_rating --genre terror --min-rating 7.5`,
	Args: cobra.NoArgs,
	RunE: runShell,
}

const shellPrompt = "cinerec> "

func runShell(cmd *cobra.Command, args []string) error {
	in := bufio.NewScanner(cmd.InOrStdin())
	out := cmd.OutOrStdout()

	for {
		fmt.Fprint(out, shellPrompt)
		if !in.Scan() {
			fmt.Fprintln(out)
			return in.Err()
		}

		fields, err := shellwords.Parse(in.Text())
		if err != nil {
			outputError(out, err)
			continue
		}
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "quit", "exit":
			return nil
		case "help":
			fmt.Fprintln(out, "Commands: filter, recommend [rule], catalog, rules, quit")
			fmt.Fprintln(out, "Command flags as on the command line, e.g. filter --genre \"science fiction\" --min-year 1990")
			continue
		}

		if err := runLine(cmd, fields); err != nil {
			outputError(out, err)
		}
	}
}

// runLine runs one subcommand with its flags reset to their defaults.
// Global flags were applied when the shell started and are rejected here.
func runLine(shell *cobra.Command, fields []string) error {
	root := shell.Root()
	sub, rest, err := root.Find(fields)
	if err != nil {
		return err
	}
	if sub == root || sub == shell {
		return fmt.Errorf("unknown command %q", fields[0])
	}

	resetFlags(sub)
	resetFlagSet(root.PersistentFlags())
	if err := sub.ParseFlags(rest); err != nil {
		return err
	}
	var global []string
	root.PersistentFlags().VisitAll(func(f *pflag.Flag) {
		if f.Changed {
			global = append(global, "--"+f.Name)
		}
	})
	if len(global) > 0 {
		return fmt.Errorf("global flag %s cannot be changed inside the shell; restart the shell with it",
			strings.Join(global, ", "))
	}
	positional := sub.Flags().Args()
	if sub.Args != nil {
		if err := sub.Args(sub, positional); err != nil {
			return err
		}
	}

	sub.SetContext(shell.Context())
	return sub.RunE(sub, positional)
}

// resetFlags restores every local flag of cmd to its default value.
func resetFlags(cmd *cobra.Command) {
	resetFlagSet(cmd.LocalNonPersistentFlags())
}

func resetFlagSet(fs *pflag.FlagSet) {
	fs.VisitAll(func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	})
}
