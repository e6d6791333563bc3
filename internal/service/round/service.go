package round

import (
	"quasar/internal/service"
)

type serv struct {
	prompter service.Prompter
	roller   service.Roller
}

// NewRoundService Раунд квазара: стартовый бросок и доборы по выбору игрока
func NewRoundService(prompter service.Prompter, roller service.Roller) service.RoundService {
	return &serv{
		prompter: prompter,
		roller:   roller,
	}
}
