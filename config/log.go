package config

import (
	"log/slog"

	"gopkg.in/natefinch/lumberjack.v2"
)

// InitLogging routes slog output to a rotating file in the data dir so
// terminal output stays reserved for pterm.
func InitLogging() {
	writer := &lumberjack.Logger{
		Filename:   logFilePath,
		MaxSize:    5, // megabytes
		MaxBackups: 3,
	}

	slog.SetDefault(slog.New(slog.NewJSONHandler(writer, nil)))
}
