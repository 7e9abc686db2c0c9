package main

import (
	"fmt"

	"github.com/oukeidos/assctx/internal/config"
	"github.com/spf13/cobra"
)

func newConfigCmd(gopts *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show configuration file location and effective settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigShow(cmd, gopts)
		},
	}
	cmd.SetUsageTemplate(subcommandUsageTemplate)

	cmd.AddCommand(
		&cobra.Command{
			Use:   "path",
			Short: "Print the config file path",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				path, err := config.Path(gopts.configPath)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), path)
				return nil
			},
		},
		&cobra.Command{
			Use:   "show",
			Short: "Print the effective configuration as YAML (default)",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return runConfigShow(cmd, gopts)
			},
		},
	)
	return cmd
}

func runConfigShow(cmd *cobra.Command, gopts *globalOptions) error {
	cfg, path, err := loadConfig(gopts)
	if err != nil {
		return cliError(err)
	}
	data, err := config.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to render config: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "# %s\n", path)
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
