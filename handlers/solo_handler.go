package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sumacommu/sumatest-sub000/middleware"
	"github.com/sumacommu/sumatest-sub000/models"
	"github.com/sumacommu/sumatest-sub000/services"
)

// SoloHandler is the HTML mount of the solo matchmaking workflow. It stays
// thin: every operation lives in the services layer and is shared with the
// JSON mount.
type SoloHandler struct {
	matchmaking *services.MatchmakingService
	users       *services.UserService
}

func NewSoloHandler(matchmaking *services.MatchmakingService, users *services.UserService) *SoloHandler {
	return &SoloHandler{
		matchmaking: matchmaking,
		users:       users,
	}
}

// Index shows the waiting-pool size and the match-start form.
func (h *SoloHandler) Index(c *gin.Context) {
	count, err := h.matchmaking.WaitingCount()
	if err != nil {
		renderError(c, err)
		return
	}
	c.HTML(http.StatusOK, "solo.html", gin.H{"WaitingCount": count})
}

// Match starts matchmaking: the caller either gets paired with a waiting
// opponent or joins the waiting pool.
func (h *SoloHandler) Match(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	user, err := h.users.GetByID(userID)
	if err != nil {
		renderError(c, err)
		return
	}

	match, err := h.matchmaking.RequestMatch(user)
	if err != nil {
		renderError(c, err)
		return
	}

	if match.Status == models.MatchStatusMatched {
		c.Redirect(http.StatusFound, "/solo/setup/"+match.ID)
		return
	}
	c.Redirect(http.StatusFound, "/solo/check")
}

// Check routes the user to the view for their current state: the matched
// result with opponent display data, the waiting view with the editable room
// id, or back to the solo page when not matchmaking.
func (h *SoloHandler) Check(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	status, err := h.matchmaking.CheckStatus(userID)
	if err != nil {
		renderError(c, err)
		return
	}

	switch status.State {
	case services.StateMatched:
		opponentName := ""
		opponentRating := 0
		if status.Opponent != nil {
			opponentName = status.Opponent.DisplayName
			opponentRating = status.Opponent.SoloRating
		}
		characterName, _ := models.CharacterName(status.Match.Character)
		c.HTML(http.StatusOK, "solo_matched.html", gin.H{
			"Match":          status.Match,
			"OpponentName":   opponentName,
			"OpponentRating": opponentRating,
			"CharacterName":  characterName,
			"State":          status.Match.SetupState(),
		})
	case services.StateWaiting:
		c.HTML(http.StatusOK, "solo_waiting.html", gin.H{"Match": status.Match})
	default:
		c.Redirect(http.StatusFound, "/solo")
	}
}

// Cancel removes the user's waiting records and returns to the solo page.
func (h *SoloHandler) Cancel(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	if err := h.matchmaking.CancelWaiting(userID); err != nil {
		renderError(c, err)
		return
	}
	c.Redirect(http.StatusFound, "/solo")
}

// UpdateRoom sets the room id on the user's waiting record.
func (h *SoloHandler) UpdateRoom(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	if err := h.matchmaking.UpdateRoomID(userID, c.PostForm("roomId")); err != nil {
		renderError(c, err)
		return
	}
	c.Redirect(http.StatusFound, "/solo/check")
}
