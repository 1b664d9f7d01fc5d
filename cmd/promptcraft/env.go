package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/sant0-9/promptcraft/internal/config"
	"github.com/sant0-9/promptcraft/internal/library"
	"github.com/sant0-9/promptcraft/internal/logging"
	"github.com/sant0-9/promptcraft/internal/output"
)

// env holds what every command needs once flags are parsed
type env struct {
	manager *config.Manager
	config  *config.Config
	logger  *slog.Logger
	logFile *os.File
	library *library.Set
	format  output.Format
}

func setup() (*env, error) {
	format, err := output.ParseFormat(outputFormat)
	if err != nil {
		return nil, err
	}

	manager, err := config.NewManager(cfgFile)
	if err != nil {
		return nil, err
	}

	cfg := *manager.Get()
	if dataDir != "" {
		cfg.DataDir = dataDir
	}
	if logLevel != "" {
		cfg.Log.Level = logLevel
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid flags: %w", err)
	}

	logger, logFile, err := logging.Setup(filepath.Join(cfg.DataDir, "logs"), cfg.Log.Level, cfg.Log.MaxFiles)
	if err != nil {
		return nil, err
	}

	set, err := library.OpenSet(cfg.DataDir, library.WithLogger(logger))
	if err != nil {
		logFile.Close()
		return nil, err
	}

	return &env{
		manager: manager,
		config:  &cfg,
		logger:  logger,
		logFile: logFile,
		library: set,
		format:  format,
	}, nil
}

func (e *env) Close() {
	if e.logFile != nil {
		e.logFile.Close()
	}
}
