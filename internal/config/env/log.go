package env

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"quasar/internal/config"

	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

const (
	logLevelEnvName = "QUASAR_LOG_LEVEL"

	defaultLogPath  = ".l_g/quasar.log"
	defaultLogLevel = "info"
)

// Секция log в config.yaml
type logYAML struct {
	Log struct {
		Path  string `yaml:"path"`
		Level string `yaml:"level"`
	} `yaml:"log"`
}

type logConfig struct {
	path  string
	level log.Level
}

// NewLogConfigFromYAML Читает настройки лога из YAML.
// Нет файла — значения по умолчанию, уровень можно переопределить через QUASAR_LOG_LEVEL.
func NewLogConfigFromYAML(path string) (config.LogConfig, error) {
	var raw logYAML

	data, err := os.ReadFile(filepath.Clean(path))
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("read %s: %w", path, err)
	default:
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	}

	logPath := raw.Log.Path
	if logPath == "" {
		logPath = defaultLogPath
	}

	levelName := raw.Log.Level
	if v, ok := os.LookupEnv(logLevelEnvName); ok && v != "" {
		levelName = v
	}
	if levelName == "" {
		levelName = defaultLogLevel
	}

	level, err := log.ParseLevel(levelName)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", levelName, err)
	}

	return &logConfig{
		path:  logPath,
		level: level,
	}, nil
}

func (cfg *logConfig) Path() string {
	return cfg.path
}

func (cfg *logConfig) Level() log.Level {
	return cfg.level
}
