package round

import (
	"context"
	"errors"
	"fmt"

	"quasar/internal/model"
	"quasar/pkg/payout"

	log "github.com/sirupsen/logrus"
)

const (
	// Целевой счёт, после него доборов нет
	target = 20

	choicePrompt = "Choose (a) 4-7, (b) 1-8, or (s)top: "
)

// drawRange Диапазон броска, границы включительно
type drawRange struct {
	lo, hi int
}

var (
	startRange = drawRange{lo: 1, hi: 8}

	// Доборы по выбору игрока
	drawRanges = map[string]drawRange{
		model.ChoiceSmall: {lo: 4, hi: 7},
		model.ChoiceLarge: {lo: 1, hi: 8},
	}
)

// Play играет один раунд и возвращает его итог с выплатой
func (s *serv) Play(ctx context.Context, bet int) (*model.RoundResult, error) {
	if bet <= 0 {
		return nil, errors.New("bet must be positive")
	}

	first := s.roll(startRange)
	res := &model.RoundResult{
		Bet:     bet,
		Score:   first,
		Draws:   []int{first},
		Outcome: model.OutcomeStopped,
	}
	s.reportScore(res.Score)

	for res.Score < target {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		choice, err := s.prompter.Choose(choicePrompt, model.ChoiceSmall, model.ChoiceLarge, model.ChoiceStop)
		if err != nil {
			return nil, fmt.Errorf("read choice: %w", err)
		}
		if choice == model.ChoiceStop {
			break
		}

		roll := s.roll(drawRanges[choice])
		res.Draws = append(res.Draws, roll)
		res.Score += roll
		s.reportScore(res.Score)
	}

	// Конец раунда: одно место для всех трёх исходов
	switch {
	case res.Score > target:
		res.Outcome = model.OutcomeBusted
		s.prompter.Say("You busted.")
	case res.Score == target:
		res.Outcome = model.OutcomeQuasar
		s.prompter.Say("Quasar!")
	}

	res.Payout = payout.Calculate(bet, res.Score)
	s.prompter.Say(payout.Describe(res.Payout))

	log.WithFields(log.Fields{
		"bet":     res.Bet,
		"score":   res.Score,
		"draws":   res.Draws,
		"outcome": res.Outcome.String(),
		"payout":  res.Payout,
	}).Info("round finished")

	return res, nil
}

func (s *serv) roll(r drawRange) int {
	return s.roller.Roll(r.lo, r.hi)
}

func (s *serv) reportScore(score int) {
	s.prompter.Sayf("Your score is %d.", score)
}
