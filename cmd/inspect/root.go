package main

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/silverdr/inspect/internal/version"
	"github.com/silverdr/inspect/pkg/config"
	"github.com/silverdr/inspect/pkg/inspect"
	"github.com/silverdr/inspect/pkg/logging"
)

var (
	verbosity      int
	format         string
	width          int
	pretty         bool
	limit          int
	printableLimit int
	baseName       string
	colorMode      string
	keywords       bool
)

// NewRootCmd builds the inspect command tree.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "inspect [file]",
		Short: "Pretty-print structured data",
		Long: `inspect reads a structured document (JSON, YAML, TOML or XML) from a
file or stdin and renders it as human-readable text, honoring a width
budget, element limits and optional syntax colors.`,
		Args: cobra.MaximumNArgs(1),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE:          runInspect,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")
	rootCmd.Flags().StringVarP(&format, "format", "f", "json", "Input format: json, yaml, toml or xml")
	rootCmd.Flags().IntVarP(&width, "width", "w", 0, "Maximum line width (0 = configured default)")
	rootCmd.Flags().BoolVarP(&pretty, "pretty", "p", false, "Enable width-aware line breaking")
	rootCmd.Flags().IntVarP(&limit, "limit", "l", 0, "Maximum collection elements shown (0 = configured default, -1 = unbounded)")
	rootCmd.Flags().IntVar(&printableLimit, "printable-limit", 0, "Maximum string characters shown (0 = configured default, -1 = unbounded)")
	rootCmd.Flags().StringVarP(&baseName, "base", "b", "", "Integer base: decimal, hex, octal or binary")
	rootCmd.Flags().StringVar(&colorMode, "color", "", "Colorize output: auto, always or never")
	rootCmd.Flags().BoolVarP(&keywords, "keywords", "k", false, "Render identifier-shaped object keys as atoms")

	rootCmd.AddCommand(newGuideCmd())
	rootCmd.AddCommand(versionCmd)

	return rootCmd
}

func runInspect(cmd *cobra.Command, args []string) error {
	var in io.Reader = cmd.InOrStdin()
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	value, err := decode(in, format, keywords)
	if err != nil {
		return err
	}

	opts, err := configuredOptions()
	if err != nil {
		return err
	}

	text, err := inspect.Inspect(value, opts...)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), text)
	return nil
}

// configuredOptions layers flags over the koanf-loaded defaults.
func configuredOptions() ([]inspect.Option, error) {
	k, err := config.Load()
	if err != nil {
		return nil, err
	}
	if width > 0 {
		k.Set("width", width)
	}
	if pretty {
		k.Set("pretty", true)
	}
	if limit != 0 {
		k.Set("limit", limit)
	}
	if printableLimit != 0 {
		k.Set("printable_limit", printableLimit)
	}
	if baseName != "" {
		k.Set("base", baseName)
	}
	if colorMode != "" {
		k.Set("colors.enabled", colorMode)
	}
	return config.Options(k)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("inspect version %s\n", version.Version)
		fmt.Printf("  commit: %s\n", version.Commit)
		fmt.Printf("  built:  %s\n", version.Date)
	},
}
