package app

import (
	"io"
	"quasar/internal/config"
	"quasar/internal/config/env"
	"quasar/internal/repository"
	"quasar/internal/repository/stats_repo"
	"quasar/internal/service"
	"quasar/internal/service/bet"
	"quasar/internal/service/round"
	"quasar/internal/service/session"
	"quasar/pkg/console"
	"quasar/pkg/dice"
)

type ServiceProvider struct {
	// Console
	in      io.Reader
	out     io.Writer
	console *console.Console

	// Configs
	configPath string
	rngCfg     config.RNGConfig
	logCfg     config.LogConfig

	// Randomness
	roller *dice.Roller

	// Stats bits
	statsRepo repository.StatsRepository

	// Game bits
	betServ     service.BetService
	roundServ   service.RoundService
	sessionServ service.SessionService
}

func newServiceProvider(in io.Reader, out io.Writer, configPath string) *ServiceProvider {
	return &ServiceProvider{
		in:         in,
		out:        out,
		configPath: configPath,
	}
}

func (sp *ServiceProvider) RNGCfg() config.RNGConfig {
	if sp.rngCfg == nil {
		cfg, err := env.NewRNGConfig()
		if err != nil {
			panic("failed to get rng config: " + err.Error())
		}
		sp.rngCfg = cfg
	}
	return sp.rngCfg
}

func (sp *ServiceProvider) LogCfg() config.LogConfig {
	if sp.logCfg == nil {
		cfg, err := env.NewLogConfigFromYAML(sp.configPath)
		if err != nil {
			panic("failed to get log config: " + err.Error())
		}
		sp.logCfg = cfg
	}
	return sp.logCfg
}

func (sp *ServiceProvider) Console() *console.Console {
	if sp.console == nil {
		sp.console = console.New(sp.in, sp.out)
	}
	return sp.console
}

func (sp *ServiceProvider) Roller() *dice.Roller {
	if sp.roller == nil {
		sp.roller = dice.NewSeededRoller(sp.RNGCfg().Seed())
	}
	return sp.roller
}

func (sp *ServiceProvider) StatsRepository() repository.StatsRepository {
	if sp.statsRepo == nil {
		sp.statsRepo = stats_repo.NewStatsRepository()
	}
	return sp.statsRepo
}

func (sp *ServiceProvider) BetService() service.BetService {
	if sp.betServ == nil {
		sp.betServ = bet.NewBetService(sp.Console())
	}
	return sp.betServ
}

func (sp *ServiceProvider) RoundService() service.RoundService {
	if sp.roundServ == nil {
		sp.roundServ = round.NewRoundService(sp.Console(), sp.Roller())
	}
	return sp.roundServ
}

func (sp *ServiceProvider) SessionService() service.SessionService {
	if sp.sessionServ == nil {
		sp.sessionServ = session.NewSessionService(
			sp.Console(),
			sp.BetService(),
			sp.RoundService(),
			sp.StatsRepository(),
		)
	}
	return sp.sessionServ
}
