package bet

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"
)

const betPrompt = "Make a bet: "

// Тексты ошибок выводятся игроку как есть
var (
	ErrNotInteger          = errors.New("The bet must be an integer.")
	ErrNotPositive         = errors.New("The bet must be a positive integer.")
	ErrInsufficientCredits = errors.New("You do not have enough credits for that bet.")
)

// Collect спрашивает ставку, пока она не станет корректной
func (s *serv) Collect(ctx context.Context, credits int) (int, error) {
	for {
		if err := ctx.Err(); err != nil {
			return 0, err
		}

		input, err := s.prompter.Ask(betPrompt)
		if err != nil {
			return 0, fmt.Errorf("read bet: %w", err)
		}

		bet, err := Validate(input, credits)
		if err != nil {
			log.WithFields(log.Fields{"input": input, "credits": credits}).Debug("bet rejected: ", err)
			s.prompter.Say(err.Error())
			continue
		}

		log.WithFields(log.Fields{"bet": bet, "credits": credits}).Info("bet accepted")
		return bet, nil
	}
}

// Validate Проверка ставки: целое, больше нуля, не больше кредитов.
// Число вне диапазона int всё равно целое: плюс — не хватает кредитов, минус — не положительное.
func Validate(input string, credits int) (int, error) {
	bet, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			if bet < 0 {
				return 0, ErrNotPositive
			}
			return 0, ErrInsufficientCredits
		}
		return 0, ErrNotInteger
	}

	if bet <= 0 {
		return 0, ErrNotPositive
	}
	if bet > credits {
		return 0, ErrInsufficientCredits
	}

	return bet, nil
}
