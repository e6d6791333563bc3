package service

import (
	"context"
	"quasar/internal/model"
)

type BetService interface {
	Collect(ctx context.Context, credits int) (int, error)
}

type RoundService interface {
	Play(ctx context.Context, bet int) (*model.RoundResult, error)
}

type SessionService interface {
	Play(ctx context.Context, credits int) (*model.SessionResult, error)
}

// Prompter Текстовый канал с игроком
type Prompter interface {
	Ask(prompt string) (string, error)
	Choose(prompt string, valid ...string) (string, error)
	Say(line string)
	Sayf(format string, args ...any)
}

// Roller Источник случайных бросков в диапазоне [lo, hi]
type Roller interface {
	Roll(lo, hi int) int
}
