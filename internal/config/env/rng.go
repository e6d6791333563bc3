package env

import (
	"fmt"
	"os"
	"quasar/internal/config"
	"quasar/pkg/dice"
	"strconv"
)

const (
	seedEnvName = "QUASAR_SEED"
)

type rngConfig struct {
	seed int64
}

// NewRNGConfig Сид генератора из окружения.
// Если сид не задан или равен 0 — берётся случайный.
func NewRNGConfig() (config.RNGConfig, error) {
	var seed int64
	if v, ok := os.LookupEnv(seedEnvName); ok && v != "" {
		parsed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%s has invalid seed %q: %w", seedEnvName, v, err)
		}
		seed = parsed
	}

	if seed == 0 {
		generated, err := dice.NewSeed()
		if err != nil {
			return nil, err
		}
		seed = generated
	}

	return &rngConfig{
		seed: seed,
	}, nil
}

func (cfg *rngConfig) Seed() int64 {
	return cfg.seed
}
