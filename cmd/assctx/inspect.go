package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/oukeidos/assctx/internal/apperrors"
	"github.com/oukeidos/assctx/internal/ass"
	"github.com/spf13/cobra"
)

func newInspectCmd(gopts *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect <input.ass>",
		Short: "Show what a conversion would see, without writing anything",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(cmd, args[0], gopts)
		},
		SilenceUsage: true,
	}
	cmd.SetUsageTemplate(subcommandUsageTemplate)
	return cmd
}

func runInspect(cmd *cobra.Command, path string, gopts *globalOptions) error {
	cfg, _, err := loadConfig(gopts)
	if err != nil {
		return cliError(err)
	}
	if err := setupLogging(cfg, gopts); err != nil {
		return cliError(err)
	}

	f, err := os.Open(path)
	if err != nil {
		return cliError(apperrors.New(apperrors.KindIO, "Cannot open input file:", err))
	}
	defer f.Close()

	rep, err := ass.Inspect(f)
	if err != nil {
		return cliError(apperrors.New(apperrors.KindMalformedInput, "Malformed subtitle file:", err))
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "File: %s\n", path)
	fmt.Fprintf(out, "  Header lines:      %d\n", rep.HeaderLines)
	fmt.Fprintf(out, "  Other lines:       %d\n", rep.FormatLines)
	fmt.Fprintf(out, "  Dialogue lines:    %d\n", rep.Dialogues)
	fmt.Fprintf(out, "  Unique lines:      %d\n", rep.Groups)
	fmt.Fprintf(out, "  Repeated lines:    %d\n", rep.Duplicates)
	fmt.Fprintf(out, "  Tag-only lines:    %d\n", rep.EmptyText)
	fmt.Fprintf(out, "  Widest line:       %d graphemes\n", rep.WidestLine)
	fmt.Fprintf(out, "  Output lines:      %d\n", rep.Dialogues*3)
	if rep.DecoderError != "" {
		fmt.Fprintf(out, "  Decoder:           failed (%s)\n", rep.DecoderError)
		return nil
	}
	fmt.Fprintf(out, "  Decoder events:    %d\n", rep.DecoderEvents)
	fmt.Fprintf(out, "  Declared styles:   %s\n", strings.Join(rep.DecoderStyles, ", "))
	missing := missingStyles(rep.DecoderStyles, cfg.Options().ContextStyles())
	if len(missing) > 0 {
		fmt.Fprintf(out, "  Missing context styles: %s (use --inject-styles)\n", strings.Join(missing, ", "))
	}
	return nil
}

func missingStyles(declared, wanted []string) []string {
	have := make(map[string]bool, len(declared))
	for _, s := range declared {
		have[s] = true
	}
	var missing []string
	for _, s := range wanted {
		if !have[s] {
			missing = append(missing, s)
		}
	}
	return missing
}
