package converter

import (
	"quasar/internal/model"
	repoModel "quasar/internal/repository/stats_repo/model"

	log "github.com/sirupsen/logrus"
)

func ToRoundRecord(res model.RoundResult) repoModel.RoundRecord {
	return repoModel.RoundRecord{
		Bet:     res.Bet,
		Score:   res.Score,
		Outcome: res.Outcome.String(),
		Payout:  res.Payout,
	}
}

// ToSessionFields Поля лога для итога сессии вместе со статистикой
func ToSessionFields(res model.SessionResult, state repoModel.GameState) log.Fields {
	return log.Fields{
		"session":       res.ID.String(),
		"start_credits": res.StartCredits,
		"final_credits": res.FinalCredits,
		"rounds":        res.Rounds,
		"ending":        res.Ending.String(),
		"total_bet":     state.TotalBet,
		"total_net":     state.TotalNet,
		"rtp":           state.CurrentRTP,
		"window_rtp":    state.WindowRTP,
		"quasars":       state.Quasars,
		"busts":         state.Busts,
		"stops":         state.Stops,
		"peak_credits":  state.PeakCredits,
	}
}
