package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/MarkLagodych/CyberspaceEmissary/logger"
)

const (
	logDir      = "logs"
	logFileName = "emissary.log"
	maxLogSize  = 10 * 1024 * 1024 // Rotate above 10MB
)

// setupLogging points the global logger at logs/emissary.log when debug is set
// The terminal owns stdout and stderr, so without debug all output is discarded
// Returns the open log file for the caller to close, or nil
func setupLogging(debug bool, level string) *os.File {
	if !debug {
		logger.Init(logger.Options{Level: level})
		return nil
	}

	if err := os.MkdirAll(logDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create log directory: %v\n", err)
		logger.Init(logger.Options{Level: level})
		return nil
	}

	logPath := filepath.Join(logDir, logFileName)
	rotateLog(logPath)

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open log file: %v\n", err)
		logger.Init(logger.Options{Level: level})
		return nil
	}

	if level == "" {
		level = "debug"
	}
	logger.Init(logger.Options{Level: level, Output: f})
	logger.Log.WithField("pid", os.Getpid()).Info("logging started")
	return f
}

// rotateLog moves an oversized log aside with a timestamp suffix
func rotateLog(logPath string) {
	info, err := os.Stat(logPath)
	if err != nil || info.Size() <= maxLogSize {
		return
	}
	stamp := time.Now().Format("20060102-150405")
	rotated := strings.TrimSuffix(logPath, ".log") + "-" + stamp + ".log"
	if err := os.Rename(logPath, rotated); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to rotate log file: %v\n", err)
	}
}
