package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/lixenwraith/birthday-surprise/config"
)

const (
	logFileName = "birthday.log"
	maxLogSize  = 10 * 1024 * 1024 // 10MB
)

// setupLogging returns a file logger under cfg.Dir when debug is on, a no-op logger otherwise
// The terminal belongs to the UI, so logs never go to stdout or stderr
// The returned close func syncs and closes the log file
func setupLogging(cfg config.LoggerConfig) (*zap.Logger, func(), error) {
	if !cfg.Debug {
		return zap.NewNop(), func() {}, nil
	}

	if err := os.MkdirAll(cfg.Dir, 0755); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}

	logPath := filepath.Join(cfg.Dir, logFileName)
	if err := rotateLog(logPath); err != nil {
		return nil, nil, err
	}

	file, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}

	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	encoderConfig := zap.NewDevelopmentEncoderConfig()
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encoderConfig), zapcore.AddSync(file), level)
	logger := zap.New(core, zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel))

	closeFn := func() {
		_ = logger.Sync()
		_ = file.Close()
	}
	return logger, closeFn, nil
}

// rotateLog moves an oversized log aside with a timestamp suffix
func rotateLog(logPath string) error {
	info, err := os.Stat(logPath)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("stat log file: %w", err)
	}
	if info.Size() <= maxLogSize {
		return nil
	}

	ext := filepath.Ext(logPath)
	rotated := fmt.Sprintf("%s_%s%s", logPath[:len(logPath)-len(ext)], time.Now().Format("20060102_150405"), ext)
	if err := os.Rename(logPath, rotated); err != nil {
		return fmt.Errorf("rotate log file: %w", err)
	}
	return nil
}
