package main

import (
	"fmt"
	"os"

	"github.com/oukeidos/assctx/internal/cleanup"
	"github.com/oukeidos/assctx/internal/version"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func execute() {
	cmd := newRootCmd()
	err := cmd.Execute()
	if cleanupErr := cleanup.RunAll(); cleanupErr != nil {
		fmt.Fprintln(os.Stderr, cleanupErr)
		if err == nil {
			err = cleanupErr
		}
	}
	if err != nil {
		os.Exit(1)
	}
}

// globalOptions are shared by every subcommand.
type globalOptions struct {
	configPath  string
	logFilePath string
	debug       bool
}

func newRootCmd() *cobra.Command {
	gopts := &globalOptions{}
	convertOpts := convertOptions{}

	cmd := &cobra.Command{
		Use:   "assctx",
		Short: "Add previous/next dialogue context to ASS subtitles",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				if hasAnyFlagSet(cmd) {
					_ = cmd.Usage()
					return fmt.Errorf("input file is required (or use 'assctx convert' for configured defaults)")
				}
				return cmd.Help()
			}
			if isSubcommand(cmd, args[0]) {
				_ = cmd.Usage()
				return fmt.Errorf("unknown command %q for %q", args[0], cmd.CommandPath())
			}
			return runConvert(cmd, args, gopts, &convertOpts)
		},
		Args:         cobra.ArbitraryArgs,
		SilenceUsage: true,
	}

	cmd.Version = version.Info()
	cmd.SetVersionTemplate("{{.Version}}\n")
	cmd.SetUsageTemplate(rootUsageTemplate)

	cmd.PersistentFlags().StringVar(&gopts.configPath, "config", "", "Path to YAML config file (default: user config dir)")
	cmd.PersistentFlags().StringVar(&gopts.logFilePath, "log-file", "", "Path to save machine-readable JSONL logs (rotated)")
	cmd.PersistentFlags().BoolVar(&gopts.debug, "debug", false, "Enable debug logging")
	addConvertFlags(cmd, &convertOpts)

	cmd.AddCommand(
		newAboutCmd(),
		newConvertCmd(gopts),
		newInspectCmd(gopts),
		newConfigCmd(gopts),
	)

	cmd.InitDefaultCompletionCmd()
	for _, sub := range cmd.Commands() {
		if sub.Name() == "completion" {
			sub.SetUsageTemplate(subcommandUsageTemplate)
			break
		}
	}

	return cmd
}

func hasAnyFlagSet(cmd *cobra.Command) bool {
	changed := false
	cmd.Flags().Visit(func(_ *pflag.Flag) {
		changed = true
	})
	return changed
}

func isSubcommand(cmd *cobra.Command, name string) bool {
	for _, c := range cmd.Commands() {
		if c.Name() == name {
			return true
		}
	}
	return false
}
