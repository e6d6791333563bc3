package config

import (
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

func Load(path string) error {
	err := godotenv.Load(path)
	if err != nil {
		return err
	}
	return nil
}

type RNGConfig interface {
	Seed() int64
}

type LogConfig interface {
	Path() string
	Level() log.Level
}
