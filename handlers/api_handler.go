package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sumacommu/sumatest-sub000/middleware"
	"github.com/sumacommu/sumatest-sub000/services"
)

// APIHandler is the JSON mount of the solo workflow. It exposes the same
// contract as the site routes over the same services.
type APIHandler struct {
	matchmaking *services.MatchmakingService
	setup       *services.SetupService
	users       *services.UserService
}

func NewAPIHandler(matchmaking *services.MatchmakingService, setup *services.SetupService, users *services.UserService) *APIHandler {
	return &APIHandler{
		matchmaking: matchmaking,
		setup:       setup,
		users:       users,
	}
}

type UpdateRoomRequest struct {
	RoomID string `json:"roomId" binding:"required"`
}

type SelectCharacterRequest struct {
	CharacterID string `json:"characterId" binding:"required"`
}

type MiiMovesRequest struct {
	Moves string `json:"moves" binding:"required"`
}

type SelectStageRequest struct {
	StageID string `json:"stageId" binding:"required"`
}

// GetSolo returns the waiting-pool size
// @Summary Solo waiting pool
// @Description Get the number of users currently waiting for a solo match
// @Tags solo
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} map[string]string
// @Router /solo [get]
func (h *APIHandler) GetSolo(c *gin.Context) {
	count, err := h.matchmaking.WaitingCount()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"waitingCount": count})
}

// RequestMatch starts matchmaking for the caller
// @Summary Request a solo match
// @Description Pair with a waiting opponent within the rating band, or join the waiting pool
// @Tags solo
// @Produce json
// @Success 200 {object} models.Match
// @Failure 401 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /solo/match [post]
func (h *APIHandler) RequestMatch(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	user, err := h.users.GetByID(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	match, err := h.matchmaking.RequestMatch(user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, match)
}

// CheckStatus reports the caller's matchmaking state
// @Summary Check solo matchmaking status
// @Description Current state: matched (with opponent data), waiting (with room id), or idle
// @Tags solo
// @Produce json
// @Success 200 {object} services.SoloStatus
// @Failure 401 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /solo/check [get]
func (h *APIHandler) CheckStatus(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	status, err := h.matchmaking.CheckStatus(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, status)
}

// CancelWaiting removes the caller's waiting records
// @Summary Cancel solo matchmaking
// @Description Delete all of the caller's waiting records; safe to repeat
// @Tags solo
// @Produce json
// @Success 200 {object} map[string]bool
// @Failure 401 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /solo/cancel [get]
func (h *APIHandler) CancelWaiting(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	if err := h.matchmaking.CancelWaiting(userID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// UpdateRoom sets the room id on the caller's waiting record
// @Summary Update room id
// @Description Set the shared room id on the caller's waiting record; no-op when not waiting
// @Tags solo
// @Accept json
// @Produce json
// @Param body body handlers.UpdateRoomRequest true "Room id"
// @Success 200 {object} map[string]bool
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /solo/update [post]
func (h *APIHandler) UpdateRoom(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	var req UpdateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.matchmaking.UpdateRoomID(userID, req.RoomID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// GetSetup returns a match with its derived setup state
// @Summary Get setup state
// @Description Match record plus the current step of the setup flow; participants only
// @Tags setup
// @Produce json
// @Param matchId path string true "Match id"
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /solo/setup/{matchId} [get]
func (h *APIHandler) GetSetup(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	match, err := h.setup.GetMatchFor(c.Param("matchId"), userID)
	if err != nil {
		h.setupError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"match": match, "state": match.SetupState()})
}

// SelectCharacter records the character choice
// @Summary Select character
// @Description Persist the character, or move to the Mii detail step without persisting when the Mii Fighter slot is chosen
// @Tags setup
// @Accept json
// @Produce json
// @Param matchId path string true "Match id"
// @Param body body handlers.SelectCharacterRequest true "Character id"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /solo/setup/{matchId} [post]
func (h *APIHandler) SelectCharacter(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	var req SelectCharacterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	match, err := h.setup.SelectCharacter(c.Param("matchId"), userID, req.CharacterID)
	if err != nil {
		h.setupError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"match": match, "state": match.SetupState()})
}

// SetMiiMoves persists the Mii Fighter special-move code
// @Summary Set Mii special moves
// @Description Persist the Mii Fighter character together with its 1-4 digit move code
// @Tags setup
// @Accept json
// @Produce json
// @Param matchId path string true "Match id"
// @Param body body handlers.MiiMovesRequest true "Move code"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /solo/setup/{matchId}/mii [post]
func (h *APIHandler) SetMiiMoves(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	var req MiiMovesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	match, err := h.setup.SetMiiMoves(c.Param("matchId"), userID, req.Moves)
	if err != nil {
		h.setupError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"match": match, "state": match.SetupState()})
}

// SelectStage persists the stage choice
// @Summary Select stage
// @Description Persist the stage and complete the setup flow; requires a character to be set
// @Tags setup
// @Accept json
// @Produce json
// @Param matchId path string true "Match id"
// @Param body body handlers.SelectStageRequest true "Stage id"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /solo/stage/{matchId} [post]
func (h *APIHandler) SelectStage(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	var req SelectStageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	match, err := h.setup.SelectStage(c.Param("matchId"), userID, req.StageID)
	if err != nil {
		h.setupError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"match": match, "state": match.SetupState()})
}

func (h *APIHandler) setupError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrMatchNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "match not found"})
	case errors.Is(err, services.ErrUnknownCharacter),
		errors.Is(err, services.ErrUnknownStage),
		errors.Is(err, services.ErrInvalidMiiMoves),
		errors.Is(err, services.ErrCharacterNotChosen):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrSetupComplete):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
