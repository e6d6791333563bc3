package repository

import (
	repoModel "quasar/internal/repository/stats_repo/model"
)

type StatsRepository interface {
	State() repoModel.GameState
	UpdateState(record repoModel.RoundRecord, credits int)
}
