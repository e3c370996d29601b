package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/lixenwraith/birthday-surprise/config"
)

func TestSetupLogging_DisabledByDefault(t *testing.T) {
	logger, closeFn, err := setupLogging(config.LoggerConfig{Dir: t.TempDir(), Level: "info"})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	defer closeFn()

	if logger.Core().Enabled(zap.ErrorLevel) {
		t.Error("Expected a no-op logger when debug=false")
	}
}

func TestSetupLogging_EnabledWithDebug(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")
	logger, closeFn, err := setupLogging(config.LoggerConfig{Debug: true, Dir: dir, Level: "debug"})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if _, err := os.Stat(dir); os.IsNotExist(err) {
		t.Error("Expected logs directory to be created")
	}

	logger.Info("Test log message", zap.String("scene", "welcome"))
	closeFn()

	data, err := os.ReadFile(filepath.Join(dir, logFileName))
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}
	if !strings.Contains(string(data), "Test log message") {
		t.Errorf("Expected log file to contain the message, got %q", string(data))
	}
	if !strings.Contains(string(data), "welcome") {
		t.Error("Expected structured fields in the log line")
	}
}

func TestSetupLogging_Level(t *testing.T) {
	logger, closeFn, err := setupLogging(config.LoggerConfig{Debug: true, Dir: t.TempDir(), Level: "warn"})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	defer closeFn()

	if logger.Core().Enabled(zap.InfoLevel) {
		t.Error("Info should be filtered at warn level")
	}
	if !logger.Core().Enabled(zap.WarnLevel) {
		t.Error("Warn should pass at warn level")
	}
}

func TestSetupLogging_Rotation(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, logFileName)

	// Write just over 10MB
	if err := os.WriteFile(logPath, make([]byte, maxLogSize+1), 0644); err != nil {
		t.Fatalf("Failed to write large log file: %v", err)
	}

	_, closeFn, err := setupLogging(config.LoggerConfig{Debug: true, Dir: dir, Level: "info"})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	defer closeFn()

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("Failed to read logs directory: %v", err)
	}

	rotatedFound := false
	for _, entry := range entries {
		if entry.Name() != logFileName && filepath.Ext(entry.Name()) == ".log" {
			rotatedFound = true
			break
		}
	}
	if !rotatedFound {
		t.Error("Expected to find rotated log file")
	}

	info, err := os.Stat(logPath)
	if err != nil {
		t.Fatalf("Failed to stat new log file: %v", err)
	}
	if info.Size() > maxLogSize {
		t.Errorf("Expected new log file to be smaller than %d bytes, got %d", maxLogSize, info.Size())
	}
}

func TestSetupLogging_SmallFileNotRotated(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, logFileName)
	if err := os.WriteFile(logPath, []byte("previous run\n"), 0644); err != nil {
		t.Fatal(err)
	}

	_, closeFn, err := setupLogging(config.LoggerConfig{Debug: true, Dir: dir, Level: "info"})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	closeFn()

	entries, _ := os.ReadDir(dir)
	if len(entries) != 1 {
		t.Errorf("Expected only %s, got %d entries", logFileName, len(entries))
	}
}
