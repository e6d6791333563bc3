package session

import (
	"quasar/internal/repository"
	"quasar/internal/service"
)

type serv struct {
	prompter  service.Prompter
	betServ   service.BetService
	roundServ service.RoundService
	statsRepo repository.StatsRepository
}

// NewSessionService Игровой цикл: ставка, раунд, продолжить или забрать кредиты
func NewSessionService(
	prompter service.Prompter,
	betServ service.BetService,
	roundServ service.RoundService,
	statsRepo repository.StatsRepository,
) service.SessionService {
	return &serv{
		prompter:  prompter,
		betServ:   betServ,
		roundServ: roundServ,
		statsRepo: statsRepo,
	}
}
