package pipeline

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/oukeidos/assctx/internal/ass"
)

// Config holds everything a single conversion run needs.
type Config struct {
	// IO Paths
	InputPath  string
	OutputPath string

	// Flags
	Overwrite    bool // If true, overwrite output file without asking
	InjectStyles bool // Add missing context styles to [V4+ Styles]

	// Options controls the synthesized context events.
	Options ass.Options

	// OnConfirmOverwrite is called when the output file exists and Overwrite is false.
	// It should return true if the file should be overwritten. If nil, the run is skipped.
	OnConfirmOverwrite func(path string) bool
}

var supportedExtensions = map[string]struct{}{
	".ass": {},
	".ssa": {},
}

const supportedExtensionsLabel = ".ass, .ssa"

// Validate checks paths before any file is touched.
func (c Config) Validate() error {
	if strings.TrimSpace(c.InputPath) == "" {
		return fmt.Errorf("input path is required")
	}
	if strings.TrimSpace(c.OutputPath) == "" {
		return fmt.Errorf("output path is required")
	}
	if err := validateExtension("input", c.InputPath); err != nil {
		return err
	}
	return validateExtension("output", c.OutputPath)
}

func validateExtension(kind, path string) error {
	ext := strings.ToLower(filepath.Ext(path))
	if _, ok := supportedExtensions[ext]; ok {
		return nil
	}
	if ext == "" {
		ext = "(none)"
	}
	return fmt.Errorf("unsupported %s extension %q (supported: %s)", kind, ext, supportedExtensionsLabel)
}
