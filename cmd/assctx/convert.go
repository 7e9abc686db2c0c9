package main

import (
	"fmt"
	"os"

	"github.com/oukeidos/assctx/internal/apperrors"
	"github.com/oukeidos/assctx/internal/files"
	"github.com/oukeidos/assctx/internal/logger"
	"github.com/oukeidos/assctx/internal/pipeline"
	"github.com/oukeidos/assctx/internal/prompt"
	"github.com/spf13/cobra"
)

type convertOptions struct {
	yes          bool
	injectStyles bool
}

// confirmer is replaced in tests.
var confirmer = prompt.DefaultConfirmer

func newConvertCmd(gopts *globalOptions) *cobra.Command {
	opts := convertOptions{}
	cmd := &cobra.Command{
		Use:   "convert [input.ass] [output.ass]",
		Short: "Write a copy with previous/next context lines (paths default to config)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd, args, gopts, &opts)
		},
		SilenceUsage: true,
	}

	cmd.SetUsageTemplate(subcommandUsageTemplate)
	addConvertFlags(cmd, &opts)
	return cmd
}

func addConvertFlags(cmd *cobra.Command, opts *convertOptions) {
	cmd.Flags().BoolVarP(&opts.yes, "yes", "y", false, "Overwrite output file without asking")
	cmd.Flags().BoolVar(&opts.injectStyles, "inject-styles", false, "Add missing P/F styles to [V4+ Styles], cloned from the Default style")
}

func runConvert(cmd *cobra.Command, args []string, gopts *globalOptions, opts *convertOptions) error {
	cfg, _, err := loadConfig(gopts)
	if err != nil {
		return cliError(err)
	}
	if err := setupLogging(cfg, gopts); err != nil {
		return cliError(err)
	}

	var inputPath, outputPath string
	switch len(args) {
	case 0:
		inputPath, outputPath = cfg.Input.Path, cfg.Output.Path
	case 1:
		inputPath = args[0]
		outputPath, err = files.DerivedPath(inputPath, cfg.Output.Suffix)
		if err != nil {
			return cliError(apperrors.New(apperrors.KindIO, "Cannot derive output path:", err))
		}
	default:
		inputPath, outputPath = args[0], args[1]
		if len(args) > 2 {
			fmt.Fprintf(os.Stderr, "Warning: expected at most 2 arguments but got %d. Did you forget quotes around file paths?\n", len(args))
			fmt.Fprintf(os.Stderr, "  Using input: %s\n", inputPath)
			fmt.Fprintf(os.Stderr, "  Using output: %s\n", outputPath)
		}
	}

	pcfg := pipeline.Config{
		InputPath:    inputPath,
		OutputPath:   outputPath,
		Overwrite:    opts.yes,
		InjectStyles: opts.injectStyles || cfg.Output.InjectStyles,
		Options:      cfg.Options(),
		OnConfirmOverwrite: func(path string) bool {
			confirmed, err := confirmer().ConfirmOverwrite(path, opts.yes)
			if err != nil {
				logger.Error("Overwrite confirmation failed", "error", err)
				return false
			}
			return confirmed
		},
	}

	result, err := pipeline.RunConversion(pcfg)
	if err != nil {
		return cliError(err)
	}
	return printConversionResult(cmd, result)
}

func printConversionResult(cmd *cobra.Command, result pipeline.ConversionResult) error {
	out := cmd.OutOrStdout()
	switch result.Status {
	case pipeline.ConversionStatusSuccess:
		fmt.Fprintf(out, "Wrote %s (%d dialogue lines, %d unique)\n", result.OutputPath, result.Dialogues, result.Groups)
		return nil
	case pipeline.ConversionStatusSkipped:
		fmt.Fprintf(out, "Skipped: %s already exists\n", result.OutputPath)
		return nil
	default:
		return fmt.Errorf("conversion finished with unknown status: %q", result.Status)
	}
}
