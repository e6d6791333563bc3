package app

import (
	"context"
	"io"
	"os"
	"quasar/internal/config"

	log "github.com/sirupsen/logrus"
)

// Стартовый баланс игрока
const startCredits = 1000

type App struct {
	ServiceProvider *ServiceProvider

	in         io.Reader
	out        io.Writer
	envPath    string
	configPath string
}

func NewApp(in io.Reader, out io.Writer) *App {
	return &App{
		in:         in,
		out:        out,
		envPath:    ".env",
		configPath: "config.yaml",
	}
}

func (s *App) initServiceProvider() {
	s.ServiceProvider = newServiceProvider(s.in, s.out, s.configPath)
}

func (s *App) Run() error {
	envErr := config.Load(s.envPath)
	s.initServiceProvider()

	logFile, err := setupLogging(s.ServiceProvider.LogCfg())
	if err != nil {
		return err
	}
	defer func() {
		log.SetOutput(os.Stderr)
		logFile.Close()
	}()

	if envErr != nil {
		log.Debugf("env file not loaded: %v", envErr)
	}

	// Сид пишем в лог, чтобы партию можно было повторить через QUASAR_SEED
	log.WithField("seed", s.ServiceProvider.RNGCfg().Seed()).Info("rng seeded")

	ctx := context.Background()
	_, err = s.ServiceProvider.SessionService().Play(ctx, startCredits)
	return err
}
