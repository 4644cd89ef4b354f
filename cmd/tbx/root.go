package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/tbx/internal/cli"
	"github.com/aretw0/tbx/internal/config"
	"github.com/aretw0/tbx/internal/presentation/tui"
)

var rootCmd = &cobra.Command{
	Use:   "tbx",
	Short: "tbx computes statistics over Toolbox tiers",
	Long: `tbx reads Toolbox-format files (lines of the form "\marker content") and reports
token and type counts, frequency tables, marker and character inventories,
and the lines that do not decode under a given encoding.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		tui.NewProgress(os.Stderr, tui.ColorAuto, false).Error(err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "Configuration file (default "+config.DefaultFile+" if present)")
	flags.StringP("encoding", "e", "", "Encoding of the input files (default utf-8)")
	flags.StringP("format", "f", "", "Report format: tsv, table, markdown, pretty or json")
	flags.String("color", "", "Colour progress output: auto, always or never")
	flags.BoolP("quiet", "q", false, "Do not print progress lines")
	flags.Bool("metrics", false, "Print run metrics in Prometheus text format to stderr")
	flags.Bool("debug", false, "Enable debug logging on stderr")
	flags.Bool("glob", false, "Expand wildcard patterns in file arguments")
}

// loadConfig resolves defaults, the configuration file and the flags, in that order.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	required := path != ""
	if !required {
		path = config.DefaultFile
	}

	cfg, err := config.Load(path, required, config.Default())
	if err != nil {
		return cfg, err
	}

	flags := cmd.Flags()
	if flags.Changed("encoding") {
		cfg.Encoding, _ = flags.GetString("encoding")
	}
	if flags.Changed("format") {
		cfg.Format, _ = flags.GetString("format")
	}
	if flags.Changed("color") {
		cfg.Color, _ = flags.GetString("color")
	}
	if flags.Changed("quiet") {
		cfg.Quiet, _ = flags.GetBool("quiet")
	}
	if flags.Changed("metrics") {
		cfg.Metrics, _ = flags.GetBool("metrics")
	}
	if flags.Changed("debug") {
		cfg.Debug, _ = flags.GetBool("debug")
	}
	if flags.Changed("glob") {
		cfg.Glob, _ = flags.GetBool("glob")
	}
	return cfg, nil
}

// newToolCommand wires a tool to a subcommand. Missing arguments print the
// tool's usage sentence and succeed, without reading any file.
func newToolCommand(tool cli.Tool, use string) *cobra.Command {
	return &cobra.Command{
		Use:   tool.Name + " " + use,
		Short: tool.Short,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			cfg, ok := cfg.WithArgs(args, tool.NeedsTier)
			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), tool.Usage)
				return nil
			}
			return cli.Run(tool, cfg, cli.Streams{Out: cmd.OutOrStdout(), Err: cmd.ErrOrStderr()})
		},
	}
}
