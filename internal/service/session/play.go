package session

import (
	"context"
	"errors"
	"fmt"

	"quasar/internal/converter"
	"quasar/internal/model"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

const continuePrompt = "Do you want to (c)ontinue or (p)ayout? "

// Play ведёт игру до разорения или до выплаты по желанию игрока
func (s *serv) Play(ctx context.Context, credits int) (*model.SessionResult, error) {
	if credits <= 0 {
		return nil, errors.New("credits must be positive")
	}

	res := &model.SessionResult{
		ID:           uuid.New(),
		StartCredits: credits,
	}
	logger := log.WithField("session", res.ID.String())
	logger.WithField("credits", credits).Info("session started")

	for {
		s.reportCredits(credits)

		bet, err := s.betServ.Collect(ctx, credits)
		if err != nil {
			return nil, err
		}

		round, err := s.roundServ.Play(ctx, bet)
		if err != nil {
			return nil, err
		}

		// Проигрыш не больше ставки, ставка не больше баланса: баланс не уходит в минус
		credits += round.Payout
		res.Rounds++
		s.statsRepo.UpdateState(converter.ToRoundRecord(*round), credits)
		s.reportCredits(credits)

		if credits <= 0 {
			s.prompter.Say("You went broke.")
			res.Ending = model.EndingBroke
			break
		}

		choice, err := s.prompter.Choose(continuePrompt, model.ChoiceContinue, model.ChoicePayout)
		if err != nil {
			return nil, fmt.Errorf("read continue choice: %w", err)
		}
		if choice == model.ChoicePayout {
			s.prompter.Sayf("You leave with %d credits.", credits)
			res.Ending = model.EndingCashOut
			break
		}
	}

	res.FinalCredits = credits
	log.WithFields(converter.ToSessionFields(*res, s.statsRepo.State())).Info("session finished")

	return res, nil
}

func (s *serv) reportCredits(credits int) {
	s.prompter.Sayf("You have %d credits.", credits)
}
