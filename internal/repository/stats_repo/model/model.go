package model

// Статистика игры за время работы процесса
type GameState struct {
	TotalRounds int // Сколько всего раундов сыграно
	TotalBet    int // Сумма всех ставок
	TotalNet    int // Сумма всех выплат со знаком

	CurrentRTP float64 // Текущий RTP = (TotalBet+TotalNet)/TotalBet*100

	Quasars int // Раунды ровно на 20
	Busts   int // Переборы
	Stops   int // Остановки ниже 20

	PeakCredits int // Максимум кредитов после раунда

	Window     []RoundRecord // Окно последних раундов
	WindowRTP  float64       // RTP в окне последних раундов
	WindowSize int           // Размер окна
}

// Результат раунда для окна
type RoundRecord struct {
	Bet     int
	Score   int
	Outcome string
	Payout  int
	RTP     float64
}
