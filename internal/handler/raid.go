package handler

import (
	"encoding/json"
	"net/http"
	"sort"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/baedalhero/RaidSync_Go/internal/domain"
	"github.com/baedalhero/RaidSync_Go/internal/logger"
	"github.com/baedalhero/RaidSync_Go/internal/repository"
)

// RaidResponse is the public view of a boss raid
type RaidResponse struct {
	ID                 int64   `json:"id"`
	District           string  `json:"district"`
	BossName           string  `json:"boss_name"`
	BossType           string  `json:"boss_type"`
	MaxHP              int     `json:"max_hp"`
	CurrentHP          int     `json:"current_hp"`
	HPPercentage       float64 `json:"hp_percentage"`
	ProgressPercentage float64 `json:"progress_percentage"`
	StartDate          string  `json:"start_date"`
	EndDate            string  `json:"end_date"`
	Status             string  `json:"status"`
	BuffMultiplier     float64 `json:"buff_multiplier"`
	DaysRemaining      int     `json:"days_remaining"`
}

// RaidStatsResponse aggregates raid progress for the dashboard
type RaidStatsResponse struct {
	RaidID             int64   `json:"raid_id"`
	Participants       int     `json:"participants"`
	TotalDamage        int     `json:"total_damage"`
	HPPercentage       float64 `json:"hp_percentage"`
	ProgressPercentage float64 `json:"progress_percentage"`
	DaysRemaining      int     `json:"days_remaining"`
}

// JoinRaidRequest is the body of a join action
type JoinRaidRequest struct {
	RiderID   string  `json:"rider_id" validate:"required,riderid"`
	RiderName *string `json:"rider_name,omitempty"`
}

// CreateRaidRequest is the admin body for opening a new raid
type CreateRaidRequest struct {
	District       string  `json:"district" validate:"required"`
	BossName       string  `json:"boss_name" validate:"required"`
	BossType       string  `json:"boss_type" validate:"required,oneof=fire water earth wind"`
	MaxHP          int     `json:"max_hp" validate:"required,gt=0"`
	StartDate      string  `json:"start_date" validate:"required"`
	EndDate        string  `json:"end_date" validate:"required"`
	BuffMultiplier float64 `json:"buff_multiplier" validate:"gte=1"`
}

// RaidHandler serves the raid read and join endpoints
type RaidHandler struct {
	raidRepo        repository.Raid
	participantRepo repository.Participant
	damageRepo      repository.Damage
}

// NewRaidHandler creates a new raid handler
func NewRaidHandler(raidRepo repository.Raid, participantRepo repository.Participant, damageRepo repository.Damage) *RaidHandler {
	return &RaidHandler{
		raidRepo:        raidRepo,
		participantRepo: participantRepo,
		damageRepo:      damageRepo,
	}
}

func toRaidResponse(raid domain.BossRaid, now time.Time) RaidResponse {
	return RaidResponse{
		ID:                 raid.ID,
		District:           raid.District,
		BossName:           raid.BossName,
		BossType:           string(raid.BossType),
		MaxHP:              raid.MaxHP,
		CurrentHP:          raid.CurrentHP,
		HPPercentage:       raid.HPPercentage(),
		ProgressPercentage: raid.ProgressPercentage(),
		StartDate:          raid.StartDate.Format(domain.DateLayout),
		EndDate:            raid.EndDate.Format(domain.DateLayout),
		Status:             string(raid.Status),
		BuffMultiplier:     raid.BuffMultiplier,
		DaysRemaining:      raid.DaysRemaining(now),
	}
}

// raidIDParam extracts and parses the {raidID} URL parameter.
func raidIDParam(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "raidID"), 10, 64)
	return id, err == nil && id > 0
}

// HandleListRaids returns active raids
// @Summary List active raids
// @Description Returns all currently active boss raids
// @Tags raids
// @Produce json
// @Success 200 {object} DataResponse
// @Router /api/v1/raids [get]
func (h *RaidHandler) HandleListRaids(w http.ResponseWriter, r *http.Request) {
	raids, err := h.raidRepo.GetRaidsByStatus(r.Context(), domain.RaidStatusActive)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	sort.Slice(raids, func(i, j int) bool {
		if raids[i].District != raids[j].District {
			return raids[i].District < raids[j].District
		}
		return raids[i].ID < raids[j].ID
	})

	now := time.Now()
	responses := make([]RaidResponse, len(raids))
	for i, raid := range raids {
		responses[i] = toRaidResponse(raid, now)
	}
	respondJSON(w, http.StatusOK, DataResponse{Data: responses})
}

// HandleGetRaid returns one raid
// @Summary Get raid detail
// @Tags raids
// @Produce json
// @Param raidID path int true "Raid ID"
// @Success 200 {object} DataResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/raids/{raidID} [get]
func (h *RaidHandler) HandleGetRaid(w http.ResponseWriter, r *http.Request) {
	raidID, ok := raidIDParam(r)
	if !ok {
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequestError)
		return
	}

	raid, err := h.raidRepo.GetRaidByID(r.Context(), raidID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, DataResponse{Data: toRaidResponse(*raid, time.Now())})
}

// HandleGetRaidStats returns aggregate raid progress
// @Summary Get raid statistics
// @Tags raids
// @Produce json
// @Param raidID path int true "Raid ID"
// @Success 200 {object} DataResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/raids/{raidID}/stats [get]
func (h *RaidHandler) HandleGetRaidStats(w http.ResponseWriter, r *http.Request) {
	raidID, ok := raidIDParam(r)
	if !ok {
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequestError)
		return
	}

	raid, err := h.raidRepo.GetRaidByID(r.Context(), raidID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	participants, err := h.participantRepo.CountByRaid(r.Context(), raidID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	totalDamage, err := h.damageRepo.TotalDamage(r.Context(), raidID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, DataResponse{Data: RaidStatsResponse{
		RaidID:             raid.ID,
		Participants:       participants,
		TotalDamage:        totalDamage,
		HPPercentage:       raid.HPPercentage(),
		ProgressPercentage: raid.ProgressPercentage(),
		DaysRemaining:      raid.DaysRemaining(time.Now()),
	}})
}

// HandleJoinRaid registers a rider into a raid
// @Summary Join a raid
// @Tags raids
// @Accept json
// @Produce json
// @Param raidID path int true "Raid ID"
// @Param request body JoinRaidRequest true "Join request"
// @Success 201 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/v1/raids/{raidID}/join [post]
func (h *RaidHandler) HandleJoinRaid(w http.ResponseWriter, r *http.Request) {
	raidID, ok := raidIDParam(r)
	if !ok {
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequestError)
		return
	}

	var req JoinRaidRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequestError)
		return
	}
	if err := GetValidator().ValidateStruct(req); err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]interface{}{"errors": FormatValidationError(err)})
		return
	}

	raid, err := h.raidRepo.GetRaidByID(r.Context(), raidID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	if raid.Status != domain.RaidStatusActive {
		respondServiceError(w, domain.ErrRaidNotActive)
		return
	}

	participant := &domain.RaidParticipant{RaidID: raidID, RiderID: req.RiderID, RiderName: req.RiderName}
	if err := h.participantRepo.Create(r.Context(), participant); err != nil {
		respondServiceError(w, err)
		return
	}

	logger.FromContext(r.Context()).Info("Rider joined raid", "raidID", raidID, "riderID", domain.MaskRiderID(req.RiderID))
	respondJSON(w, http.StatusCreated, SuccessResponse{Message: "joined"})
}

// HandleCreateRaid opens a new raid (admin)
// @Summary Create a raid
// @Tags raids
// @Accept json
// @Produce json
// @Param request body CreateRaidRequest true "Raid definition"
// @Success 201 {object} DataResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/raids [post]
func (h *RaidHandler) HandleCreateRaid(w http.ResponseWriter, r *http.Request) {
	var req CreateRaidRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequestError)
		return
	}
	if err := GetValidator().ValidateStruct(req); err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]interface{}{"errors": FormatValidationError(err)})
		return
	}

	startDate, err := time.Parse(domain.DateLayout, req.StartDate)
	if err != nil {
		respondError(w, http.StatusBadRequest, "start_date must be YYYY-MM-DD")
		return
	}
	endDate, err := time.Parse(domain.DateLayout, req.EndDate)
	if err != nil {
		respondError(w, http.StatusBadRequest, "end_date must be YYYY-MM-DD")
		return
	}
	if endDate.Before(startDate) {
		respondError(w, http.StatusBadRequest, "end_date must not be before start_date")
		return
	}

	buff := req.BuffMultiplier
	if buff == 0 {
		buff = 1.0
	}

	raid := &domain.BossRaid{
		District:       req.District,
		BossName:       req.BossName,
		BossType:       domain.BossType(req.BossType),
		MaxHP:          req.MaxHP,
		StartDate:      startDate,
		EndDate:        endDate,
		BuffMultiplier: buff,
	}
	if err := h.raidRepo.CreateRaid(r.Context(), raid); err != nil {
		respondServiceError(w, err)
		return
	}

	logger.FromContext(r.Context()).Info("Raid created", "raidID", raid.ID, "district", raid.District)
	respondJSON(w, http.StatusCreated, DataResponse{Data: toRaidResponse(*raid, time.Now())})
}
