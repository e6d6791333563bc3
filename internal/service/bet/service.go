package bet

import (
	"quasar/internal/service"
)

type serv struct {
	prompter service.Prompter
}

// NewBetService Приём ставок через prompter
func NewBetService(prompter service.Prompter) service.BetService {
	return &serv{
		prompter: prompter,
	}
}
