package model

import "github.com/google/uuid"

// Ending Как игрок покинул игру
type Ending int

const (
	EndingCashOut Ending = iota
	EndingBroke
)

func (e Ending) String() string {
	switch e {
	case EndingCashOut:
		return "cash_out"
	case EndingBroke:
		return "broke"
	default:
		return "unknown"
	}
}

type SessionResult struct {
	ID           uuid.UUID
	StartCredits int
	FinalCredits int
	Rounds       int
	Ending       Ending
}
