package model

// Варианты ответа игрока
const (
	ChoiceSmall    = "a" // добор 4-7
	ChoiceLarge    = "b" // добор 1-8
	ChoiceStop     = "s"
	ChoiceContinue = "c"
	ChoicePayout   = "p"
)

// Outcome Чем закончился раунд
type Outcome int

const (
	OutcomeStopped Outcome = iota
	OutcomeBusted
	OutcomeQuasar
)

func (o Outcome) String() string {
	switch o {
	case OutcomeStopped:
		return "stopped"
	case OutcomeBusted:
		return "busted"
	case OutcomeQuasar:
		return "quasar"
	default:
		return "unknown"
	}
}

// RoundResult Итог одного раунда
type RoundResult struct {
	Bet     int
	Score   int
	Draws   []int // первое значение — стартовый бросок
	Outcome Outcome
	Payout  int // со знаком, минус — проигрыш
}
