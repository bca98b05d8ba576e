package main

import (
	_ "embed"
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/silverdr/inspect/pkg/colors"
)

//go:embed guide.md
var guideMarkdown string

func newGuideCmd() *cobra.Command {
	var plain bool

	cmd := &cobra.Command{
		Use:   "guide",
		Short: "Show the usage guide",
		Long:  "Render the built-in usage guide with examples for limits, bases, widths and colors.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !plain && colors.Enabled() {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", pterm.Info.Prefix.Text, pterm.Bold.Sprint("inspect guide"))
				return renderMarkdown(cmd, guideMarkdown)
			}
			fmt.Fprint(cmd.OutOrStdout(), guideMarkdown)
			return nil
		},
	}
	cmd.Flags().BoolVar(&plain, "plain", false, "Print the guide as raw markdown")
	return cmd
}

func renderMarkdown(cmd *cobra.Command, content string) error {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		// fall back to plain text rather than failing the command
		fmt.Fprint(cmd.OutOrStdout(), content)
		return nil
	}
	rendered, err := renderer.Render(content)
	if err != nil {
		fmt.Fprint(cmd.OutOrStdout(), content)
		return nil
	}
	fmt.Fprint(cmd.OutOrStdout(), rendered)
	return nil
}
