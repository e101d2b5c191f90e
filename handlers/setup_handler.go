package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sumacommu/sumatest-sub000/middleware"
	"github.com/sumacommu/sumatest-sub000/models"
	"github.com/sumacommu/sumatest-sub000/services"
)

// SetupHandler is the HTML mount of the post-match setup flow.
type SetupHandler struct {
	setup *services.SetupService
}

func NewSetupHandler(setup *services.SetupService) *SetupHandler {
	return &SetupHandler{
		setup: setup,
	}
}

// ShowSetup renders the character selection form, or forwards to the step the
// match is actually at so any setup link can be resumed.
func (h *SetupHandler) ShowSetup(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)
	matchID := c.Param("matchId")

	match, err := h.setup.GetMatchFor(matchID, userID)
	if err != nil {
		h.renderSetupError(c, err)
		return
	}

	switch match.SetupState() {
	case models.SetupAwaitingCharacter:
		c.HTML(http.StatusOK, "setup.html", gin.H{
			"Match":      match,
			"Characters": models.Characters,
		})
	case models.SetupAwaitingMiiDetail:
		c.HTML(http.StatusOK, "mii.html", gin.H{"Match": match})
	case models.SetupAwaitingStage:
		c.Redirect(http.StatusFound, "/solo/stage/"+match.ID)
	default:
		c.Redirect(http.StatusFound, "/solo/check")
	}
}

// SelectCharacter handles the character form. The Mii Fighter slot renders the
// special-move sub-form without persisting anything yet.
func (h *SetupHandler) SelectCharacter(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)
	matchID := c.Param("matchId")

	match, err := h.setup.SelectCharacter(matchID, userID, c.PostForm("characterId"))
	if err != nil {
		h.renderSetupError(c, err)
		return
	}

	if match.SetupState() == models.SetupAwaitingMiiDetail {
		c.HTML(http.StatusOK, "mii.html", gin.H{"Match": match})
		return
	}
	c.Redirect(http.StatusFound, "/solo/stage/"+match.ID)
}

// SetMiiMoves handles the special-move sub-form.
func (h *SetupHandler) SetMiiMoves(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)
	matchID := c.Param("matchId")

	match, err := h.setup.SetMiiMoves(matchID, userID, c.PostForm("moves"))
	if err != nil {
		h.renderSetupError(c, err)
		return
	}
	c.Redirect(http.StatusFound, "/solo/stage/"+match.ID)
}

// ShowStage renders the stage selection form.
func (h *SetupHandler) ShowStage(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)
	matchID := c.Param("matchId")

	match, err := h.setup.GetMatchFor(matchID, userID)
	if err != nil {
		h.renderSetupError(c, err)
		return
	}

	if match.Character == "" {
		// Stage selection is not reachable before a character is chosen.
		c.Redirect(http.StatusFound, "/solo/setup/"+match.ID)
		return
	}

	c.HTML(http.StatusOK, "stage.html", gin.H{
		"Match":  match,
		"Stages": models.Stages,
	})
}

// SelectStage handles the stage form and completes the flow.
func (h *SetupHandler) SelectStage(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)
	matchID := c.Param("matchId")

	_, err := h.setup.SelectStage(matchID, userID, c.PostForm("stageId"))
	if err != nil {
		if errors.Is(err, services.ErrCharacterNotChosen) {
			c.Redirect(http.StatusFound, "/solo/setup/"+matchID)
			return
		}
		h.renderSetupError(c, err)
		return
	}
	c.Redirect(http.StatusFound, "/solo/check")
}

// renderSetupError keeps the not-found wording uniform: a missing match and an
// unauthorized caller look the same.
func (h *SetupHandler) renderSetupError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrMatchNotFound):
		c.HTML(http.StatusNotFound, "error.html", gin.H{"Message": "match not found"})
	case errors.Is(err, services.ErrSetupComplete):
		// The flow already finished, send the user back to their status page.
		c.Redirect(http.StatusFound, "/solo/check")
	case errors.Is(err, services.ErrUnknownCharacter),
		errors.Is(err, services.ErrUnknownStage),
		errors.Is(err, services.ErrInvalidMiiMoves):
		c.HTML(http.StatusBadRequest, "error.html", gin.H{"Message": err.Error()})
	default:
		renderError(c, err)
	}
}
