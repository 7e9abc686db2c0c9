package pipeline

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/oukeidos/assctx/internal/apperrors"
	"github.com/oukeidos/assctx/internal/ass"
	"github.com/oukeidos/assctx/internal/files"
	"github.com/oukeidos/assctx/internal/logger"
)

const outputPerms = 0644

// RunConversion reads the input subtitle file, expands every dialogue event into
// a previous/current/next triple and writes the result to the output path.
func RunConversion(cfg Config) (ConversionResult, error) {
	if err := cfg.Validate(); err != nil {
		return ConversionResult{}, apperrors.New(apperrors.KindUsage, "Invalid conversion settings:", err)
	}

	// 1. Paths
	absIn, err := filepath.Abs(cfg.InputPath)
	if err != nil {
		return ConversionResult{}, apperrors.New(apperrors.KindUsage, "Invalid input path:", err)
	}
	absOut, err := filepath.Abs(cfg.OutputPath)
	if err != nil {
		return ConversionResult{}, apperrors.New(apperrors.KindUsage, "Invalid output path:", err)
	}
	if absIn == absOut {
		return ConversionResult{}, sameFileError(absIn)
	}
	inInfo, err := os.Stat(absIn)
	if err != nil {
		return ConversionResult{}, apperrors.New(apperrors.KindIO, "Cannot open input file:", err)
	}
	outInfo, err := os.Stat(absOut)
	outputExists := err == nil
	if err != nil && !os.IsNotExist(err) {
		return ConversionResult{}, apperrors.New(apperrors.KindIO, "Cannot access output path:", err)
	}
	if outputExists && os.SameFile(inInfo, outInfo) {
		return ConversionResult{}, sameFileError(absIn)
	}
	if err := files.RejectSymlinkPath(absOut); err != nil {
		return ConversionResult{}, apperrors.New(apperrors.KindUsage, "Unsafe output path:", err)
	}

	if outputExists && !cfg.Overwrite {
		confirmed := cfg.OnConfirmOverwrite != nil && cfg.OnConfirmOverwrite(cfg.OutputPath)
		if !confirmed {
			logger.Info("Output file exists. Skipped.", "path", cfg.OutputPath)
			return ConversionResult{Status: ConversionStatusSkipped, OutputPath: cfg.OutputPath}, nil
		}
	}
	if outputExists {
		logger.Info("Overwriting output file", "path", cfg.OutputPath)
	}

	// 2. Parse
	in, err := os.Open(absIn)
	if err != nil {
		return ConversionResult{}, apperrors.New(apperrors.KindIO, "Cannot open input file:", err)
	}
	doc, err := ass.Parse(in)
	in.Close()
	if err != nil {
		return ConversionResult{}, apperrors.New(apperrors.KindIO, "Cannot read input file:", err)
	}
	logger.Info("Parsed subtitle file",
		"path", cfg.InputPath,
		"headers", len(doc.Headers),
		"format", len(doc.Format),
		"dialogues", len(doc.Dialogues))
	if len(doc.Dialogues) == 0 {
		logger.Warn("No dialogue events found; output will only contain headers", "path", cfg.InputPath)
	}

	// 3. Expand
	groups, err := ass.GroupDialogues(doc.Dialogues)
	if err != nil {
		return ConversionResult{}, apperrors.New(apperrors.KindMalformedInput, "Malformed subtitle file:", err)
	}
	events := ass.Expand(groups, cfg.Options)
	logger.Debug("Expanded dialogue", "groups", len(groups), "events", len(events))

	result := ConversionResult{
		Status:     ConversionStatusSuccess,
		OutputPath: cfg.OutputPath,
		Dialogues:  len(doc.Dialogues),
		Groups:     len(groups),
		Events:     len(events),
	}

	if cfg.InjectStyles {
		result.InjectedStyles = ass.InjectContextStyles(doc, cfg.Options)
		if len(result.InjectedStyles) > 0 {
			logger.Info("Injected context styles", "styles", result.InjectedStyles)
		} else {
			logger.Warn("No context styles injected (already present or base style missing)")
		}
	}

	// 4. Write
	if err := files.AtomicWrite(absOut, ass.Render(doc, events), outputPerms); err != nil {
		return ConversionResult{}, apperrors.New(apperrors.KindIO, "Cannot write output file:", err)
	}
	logger.Info("Conversion complete", "output", cfg.OutputPath, "dialogues", result.Dialogues, "groups", result.Groups)
	return result, nil
}

func sameFileError(path string) error {
	return apperrors.New(apperrors.KindUsage, "Invalid paths:", fmt.Errorf("input and output files are the same (%s)", path))
}
