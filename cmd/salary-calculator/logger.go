package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/iwvelando/salary-calculator/internal/config"
	"github.com/iwvelando/salary-calculator/pkg/validation"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	defaultLogLevel  = "info"
	defaultLogFormat = "json"
)

var logLevels = map[string]zapcore.Level{
	"debug":   zapcore.DebugLevel,
	"info":    zapcore.InfoLevel,
	"warn":    zapcore.WarnLevel,
	"warning": zapcore.WarnLevel,
	"error":   zapcore.ErrorLevel,
}

// resolveLogLevel picks the --log-level override over the configured level.
func resolveLogLevel(configured, override string) (zapcore.Level, error) {
	level := configured
	if override != "" {
		level = override
	}
	if err := validation.ValidateLogLevel(level); err != nil {
		return zapcore.InfoLevel, err
	}
	if level == "" {
		level = defaultLogLevel
	}
	return logLevels[level], nil
}

// initializeLogger builds the zap logger for calc and serve. Logs go to
// stderr unless an output file is configured.
func initializeLogger(loggingConfig config.LoggingConfig, logLevelOverride string) (*zap.Logger, error) {
	zapLevel, err := resolveLogLevel(loggingConfig.Level, logLevelOverride)
	if err != nil {
		return nil, err
	}

	format := loggingConfig.Format
	if format == "" {
		format = defaultLogFormat
	}

	var zapConfig zap.Config
	switch format {
	case "console":
		zapConfig = zap.NewDevelopmentConfig()
	case "json":
		zapConfig = zap.NewProductionConfig()
	default:
		return nil, fmt.Errorf("invalid log format: %s", format)
	}
	zapConfig.Level = zap.NewAtomicLevelAt(zapLevel)

	if path := loggingConfig.OutputFile; path != "" {
		if err := ensureLogFile(path); err != nil {
			return nil, err
		}
		zapConfig.OutputPaths = []string{path}
		zapConfig.ErrorOutputPaths = []string{path}
	}

	return zapConfig.Build()
}

// ensureLogFile creates the log file and any missing parent directory.
func ensureLogFile(path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create log directory %s: %w", dir, err)
		}
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open log file %s: %w", path, err)
	}
	return file.Close()
}
