package payout

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculate_Table(t *testing.T) {
	tests := []struct {
		name  string
		score int
		want  int
	}{
		{"quasar pays the bet", 20, 100},
		{"19 pays half", 19, 50},
		{"18 pays a quarter", 18, 25},
		{"17 breaks even", 17, 0},
		{"16 loses half", 16, -50},
		{"15 loses three quarters", 15, -75},
		{"14 loses everything", 14, -100},
		{"bust loses everything", 21, -100},
		{"deep bust loses everything", 27, -100},
		{"zero loses everything", 0, -100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Calculate(100, tt.score))
		})
	}
}

func TestCalculate_RoundsHalfToEven(t *testing.T) {
	tests := []struct {
		name  string
		bet   int
		score int
		want  int
	}{
		{"1.5 rounds up to 2", 3, 19, 2},
		{"2.5 rounds down to 2", 5, 19, 2},
		{"0.5 rounds down to 0", 2, 18, 0},
		{"1.5 quarter rounds up to 2", 6, 18, 2},
		{"0.25 rounds down to 0", 1, 18, 0},
		{"0.75 rounds up to 1", 3, 18, 1},
		{"-1.5 rounds to -2", 3, 16, -2},
		{"-2.5 rounds to -2", 5, 16, -2},
		{"-1.5 of three quarters rounds to -2", 2, 15, -2},
		{"-0.75 rounds to -1", 1, 15, -1},
		{"-0.5 rounds to 0", 1, 16, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Calculate(tt.bet, tt.score))
		})
	}
}

func TestCalculate_LossNeverExceedsBet(t *testing.T) {
	for bet := 1; bet <= 200; bet++ {
		for score := 0; score <= 30; score++ {
			got := Calculate(bet, score)
			assert.GreaterOrEqual(t, got, -bet, "bet=%d score=%d", bet, score)
			assert.LessOrEqual(t, got, bet, "bet=%d score=%d", bet, score)
		}
	}
}

func TestDescribe(t *testing.T) {
	assert.Equal(t, "You won 50 credits.", Describe(50))
	assert.Equal(t, "You won 0 credits.", Describe(0))
	assert.Equal(t, "You lost 75 credits.", Describe(-75))
}
