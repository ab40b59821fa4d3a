package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/cognicore/cinerec/pkg/cinerec/cards"
	"github.com/cognicore/cinerec/pkg/cinerec/render"
)

var errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)

// isTTY reports whether w is a terminal.
func isTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func colorEnabled(mode string, w io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	}
	return isTTY(w)
}

// outputCard renders a card to the command's stdout in the configured format.
func outputCard(cmd *cobra.Command, c cards.Card) error {
	w := cmd.OutOrStdout()
	r, err := render.New(render.Format(settings.Format), render.Options{
		Color: colorEnabled(settings.Color, w),
	})
	if err != nil {
		return err
	}
	return r.Render(w, c)
}

// outputError prints "Error: <message>".
func outputError(w io.Writer, err error) {
	prefix := "Error:"
	if colorEnabled(settings.Color, w) {
		prefix = errorStyle.Render(prefix)
	}
	fmt.Fprintf(w, "%s %v\n", prefix, err)
}
