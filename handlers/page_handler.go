package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sumacommu/sumatest-sub000/middleware"
	"github.com/sumacommu/sumatest-sub000/services"
)

// PageHandler serves the landing page and the team placeholder.
type PageHandler struct {
	users *services.UserService
}

func NewPageHandler(users *services.UserService) *PageHandler {
	return &PageHandler{
		users: users,
	}
}

// Home shows login for anonymous visitors and the dashboard links once signed
// in.
func (h *PageHandler) Home(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.HTML(http.StatusOK, "index.html", gin.H{})
		return
	}

	user, err := h.users.GetByID(userID)
	if err != nil {
		// Stale session cookie for a deleted account; show the login page.
		c.HTML(http.StatusOK, "index.html", gin.H{})
		return
	}

	c.HTML(http.StatusOK, "index.html", gin.H{"User": user})
}

// Team is the placeholder for the reserved team matchmaking mode.
func (h *PageHandler) Team(c *gin.Context) {
	c.HTML(http.StatusOK, "team.html", gin.H{})
}

// renderError is the generic failure page: the underlying message is shown to
// the user and the request ends there, no retry.
func renderError(c *gin.Context, err error) {
	c.HTML(http.StatusInternalServerError, "error.html", gin.H{"Message": err.Error()})
}
