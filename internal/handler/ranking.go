package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/baedalhero/RaidSync_Go/internal/domain"
	"github.com/baedalhero/RaidSync_Go/internal/repository"
)

// DefaultRankingLimit caps a leaderboard page when no limit is given.
const DefaultRankingLimit = 20

// MaxRankingLimit is the hard ceiling for one leaderboard page.
const MaxRankingLimit = 100

// RankingReader is the read side served to the public leaderboard.
// Satisfied by the caching reader in the ranking package.
type RankingReader interface {
	GetByRaid(ctx context.Context, raidID int64, limit int) ([]domain.RaidRanking, error)
}

// RankingEntryResponse is one public leaderboard row. Rider ids are masked.
type RankingEntryResponse struct {
	Rank        int    `json:"rank"`
	RiderID     string `json:"rider_id"`
	TotalDamage int    `json:"total_damage"`
}

// DailyDamageResponse is one day of raid damage
type DailyDamageResponse struct {
	Date        string `json:"date"`
	TotalDamage int    `json:"total_damage"`
}

// RewardResponse is one issued reward
type RewardResponse struct {
	RiderID           string `json:"rider_id"`
	Rank              *int   `json:"rank,omitempty"`
	RewardType        string `json:"reward_type"`
	RewardDescription string `json:"reward_description"`
}

// RankingHandler serves leaderboard, damage history, and reward reads
type RankingHandler struct {
	rankings   RankingReader
	damageRepo repository.Damage
	rewardRepo repository.Reward
}

// NewRankingHandler creates a new ranking handler
func NewRankingHandler(rankings RankingReader, damageRepo repository.Damage, rewardRepo repository.Reward) *RankingHandler {
	return &RankingHandler{
		rankings:   rankings,
		damageRepo: damageRepo,
		rewardRepo: rewardRepo,
	}
}

func rankingLimit(r *http.Request) int {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return DefaultRankingLimit
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit <= 0 {
		return DefaultRankingLimit
	}
	if limit > MaxRankingLimit {
		return MaxRankingLimit
	}
	return limit
}

// HandleGetRanking returns the raid leaderboard
// @Summary Get raid leaderboard
// @Description Returns ranked riders with masked rider ids
// @Tags rankings
// @Produce json
// @Param raidID path int true "Raid ID"
// @Param limit query int false "Page size (default 20, max 100)"
// @Success 200 {object} DataResponse
// @Router /api/v1/raids/{raidID}/ranking [get]
func (h *RankingHandler) HandleGetRanking(w http.ResponseWriter, r *http.Request) {
	raidID, ok := raidIDParam(r)
	if !ok {
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequestError)
		return
	}

	rankings, err := h.rankings.GetByRaid(r.Context(), raidID, rankingLimit(r))
	if err != nil {
		respondServiceError(w, err)
		return
	}

	responses := make([]RankingEntryResponse, len(rankings))
	for i, entry := range rankings {
		responses[i] = RankingEntryResponse{
			Rank:        entry.Rank,
			RiderID:     domain.MaskRiderID(entry.RiderID),
			TotalDamage: entry.TotalDamage,
		}
	}
	respondJSON(w, http.StatusOK, DataResponse{Data: responses})
}

// HandleGetDamageHistory returns per-day damage totals
// @Summary Get raid damage history
// @Tags rankings
// @Produce json
// @Param raidID path int true "Raid ID"
// @Success 200 {object} DataResponse
// @Router /api/v1/raids/{raidID}/damage-history [get]
func (h *RankingHandler) HandleGetDamageHistory(w http.ResponseWriter, r *http.Request) {
	raidID, ok := raidIDParam(r)
	if !ok {
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequestError)
		return
	}

	history, err := h.damageRepo.DamageHistory(r.Context(), raidID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	responses := make([]DailyDamageResponse, len(history))
	for i, d := range history {
		responses[i] = DailyDamageResponse{
			Date:        d.Date.Format(domain.DateLayout),
			TotalDamage: d.TotalDamage,
		}
	}
	respondJSON(w, http.StatusOK, DataResponse{Data: responses})
}

// HandleGetRewards returns issued rewards for a raid
// @Summary Get raid rewards
// @Tags rankings
// @Produce json
// @Param raidID path int true "Raid ID"
// @Success 200 {object} DataResponse
// @Router /api/v1/raids/{raidID}/rewards [get]
func (h *RankingHandler) HandleGetRewards(w http.ResponseWriter, r *http.Request) {
	raidID, ok := raidIDParam(r)
	if !ok {
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequestError)
		return
	}

	rewards, err := h.rewardRepo.GetByRaid(r.Context(), raidID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	responses := make([]RewardResponse, len(rewards))
	for i, reward := range rewards {
		responses[i] = RewardResponse{
			RiderID:           domain.MaskRiderID(reward.RiderID),
			Rank:              reward.Rank,
			RewardType:        string(reward.RewardType),
			RewardDescription: reward.RewardDescription,
		}
	}
	respondJSON(w, http.StatusOK, DataResponse{Data: responses})
}
