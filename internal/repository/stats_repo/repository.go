package stats_repo

import (
	repoModel "quasar/internal/repository/stats_repo/model"
	"sync"

	log "github.com/sirupsen/logrus"
)

const (
	// defaultWindowSize Сколько последних раундов учитывается в RTP окна
	defaultWindowSize = 100

	outcomeQuasar = "quasar"
	outcomeBusted = "busted"
)

// Хранилище статистики в памяти, за пределы процесса не сохраняется
type StateRepo struct {
	mtx   sync.RWMutex
	state repoModel.GameState
}

// NewStatsRepository Конструктор с пустым состоянием
func NewStatsRepository() *StateRepo {
	return &StateRepo{
		state: repoModel.GameState{
			Window:     make([]repoModel.RoundRecord, 0),
			WindowSize: defaultWindowSize,
		},
	}
}

// State Возвращает копию текущего состояния
func (r *StateRepo) State() repoModel.GameState {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	state := r.state
	state.Window = append([]repoModel.RoundRecord(nil), r.state.Window...)
	return state
}

// UpdateState Обновление статистики после раунда.
// credits — баланс игрока после применения выплаты.
func (r *StateRepo) UpdateState(record repoModel.RoundRecord, credits int) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.state.TotalRounds++
	r.state.TotalBet += record.Bet
	r.state.TotalNet += record.Payout
	r.state.CurrentRTP = rtp(r.state.TotalBet, r.state.TotalNet)

	switch record.Outcome {
	case outcomeQuasar:
		r.state.Quasars++
	case outcomeBusted:
		r.state.Busts++
	default:
		r.state.Stops++
	}

	if credits > r.state.PeakCredits {
		r.state.PeakCredits = credits
	}

	// Добавляем раунд в окно
	record.RTP = rtp(record.Bet, record.Payout)
	r.state.Window = append(r.state.Window, record)

	// Поддерживаем размер окна
	if len(r.state.Window) > r.state.WindowSize {
		r.state.Window = r.state.Window[1:]
	}

	var windowBet, windowNet int
	for _, round := range r.state.Window {
		windowBet += round.Bet
		windowNet += round.Payout
	}
	r.state.WindowRTP = rtp(windowBet, windowNet)

	log.WithFields(log.Fields{
		"rounds":     r.state.TotalRounds,
		"rtp":        r.state.CurrentRTP,
		"window_rtp": r.state.WindowRTP,
	}).Debug("stats updated")
}

// rtp Доля возвращённого игроку от ставки, в процентах
func rtp(bet, net int) float64 {
	if bet <= 0 {
		return 0
	}
	return float64(bet+net) / float64(bet) * 100
}
