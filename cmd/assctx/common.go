package main

import (
	"fmt"

	"github.com/oukeidos/assctx/internal/apperrors"
	"github.com/oukeidos/assctx/internal/cleanup"
	"github.com/oukeidos/assctx/internal/config"
	"github.com/oukeidos/assctx/internal/files"
	"github.com/oukeidos/assctx/internal/logger"
)

// loadConfig resolves and loads the config file. An explicit --config path must exist.
func loadConfig(gopts *globalOptions) (config.Config, string, error) {
	path, err := config.Path(gopts.configPath)
	if err != nil {
		return config.Config{}, "", apperrors.New(apperrors.KindConfig, "Cannot locate config file:", err)
	}
	cfg, err := config.Load(path, gopts.configPath != "")
	if err != nil {
		return config.Config{}, path, apperrors.New(apperrors.KindConfig, "Invalid configuration:", err)
	}
	return cfg, path, nil
}

// setupLogging applies the configured level and optional rotated log file.
func setupLogging(cfg config.Config, gopts *globalOptions) error {
	level := logger.ParseLevel(cfg.Logging.Level)
	if gopts.debug {
		level = logger.LevelDebug
	}
	path := gopts.logFilePath
	if path == "" {
		path = cfg.Logging.File
	}
	if path == "" {
		logger.Init(level, nil)
		return nil
	}
	if err := files.RejectSymlinkPath(path); err != nil {
		return apperrors.New(apperrors.KindUsage, "Unsafe log file path:", err)
	}
	w := logger.OpenFile(path)
	cleanup.Register(w.Close)
	logger.Init(level, w)
	return nil
}

// cliError turns an application error into the message cobra prints.
func cliError(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s", apperrors.Detail(err))
}
