package app

import (
	"fmt"
	"os"
	"path/filepath"
	"quasar/internal/config"

	log "github.com/sirupsen/logrus"
)

// setupLogging Пишет лог в файл, чтобы не мешать диалогу с игроком в консоли
func setupLogging(cfg config.LogConfig) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(cfg.Path()), 0o755); err != nil {
		return nil, fmt.Errorf("create log folder: %w", err)
	}

	file, err := os.OpenFile(cfg.Path(), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}

	log.SetOutput(file)
	log.SetFormatter(&log.TextFormatter{})
	log.SetLevel(cfg.Level())

	log.Infof("log to file started: %s", cfg.Path())
	return file, nil
}
