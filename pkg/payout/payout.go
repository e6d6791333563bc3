package payout

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Table Множители выплаты в долях ставки по итоговому счёту.
// Всё, чего нет в таблице (14 и меньше, перебор), — полный проигрыш ставки.
var Table = map[int]decimal.Decimal{
	20: decimal.NewFromInt(1),
	19: decimal.RequireFromString("0.5"),
	18: decimal.RequireFromString("0.25"),
	17: decimal.Zero,
	16: decimal.RequireFromString("-0.5"),
	15: decimal.RequireFromString("-0.75"),
}

// lossMultiplier Множитель для счёта вне таблицы
var lossMultiplier = decimal.NewFromInt(-1)

// Calculate возвращает выигрыш (или проигрыш со знаком минус) для ставки и итогового счёта.
// Дробные суммы округляются до ближайшего целого, половины — к чётному.
func Calculate(bet, score int) int {
	mult, ok := Table[score]
	if !ok {
		mult = lossMultiplier
	}

	amount := decimal.NewFromInt(int64(bet)).Mul(mult).RoundBank(0)
	return int(amount.IntPart())
}

// Describe Строка итога раунда. Нулевая выплата считается выигрышем.
func Describe(amount int) string {
	if amount >= 0 {
		return fmt.Sprintf("You won %d credits.", amount)
	}
	return fmt.Sprintf("You lost %d credits.", -amount)
}
