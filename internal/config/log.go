package config

import (
	"io"
	"log/slog"
)

// SetupLog installs a text slog logger writing to w as the default logger
// and returns it. Invalid levels fall back to info.
func SetupLog(cfg *Config, w io.Writer) *slog.Logger {
	lv, err := cfg.Level()
	if err != nil {
		lv = slog.LevelInfo
	}
	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lv}))
	slog.SetDefault(logger)
	return logger
}
