package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"github.com/sumacommu/sumatest-sub000/middleware"
	"github.com/sumacommu/sumatest-sub000/services"
	"github.com/sumacommu/sumatest-sub000/utils"
)

const (
	stateCookie      = "oauth_state"
	userinfoURL      = "https://www.googleapis.com/oauth2/v2/userinfo"
	stateCookieAge   = 600
	sessionCookieAge = 30 * 24 * 60 * 60
)

// AuthHandler runs the Google authorization-code flow and turns the returned
// profile into a session cookie.
type AuthHandler struct {
	users *services.UserService
	oauth *oauth2.Config
}

func NewAuthHandler(users *services.UserService) *AuthHandler {
	callbackURL := os.Getenv("GOOGLE_CALLBACK_URL")
	if callbackURL == "" {
		callbackURL = "http://localhost:8080/auth/google/callback"
	}

	return &AuthHandler{
		users: users,
		oauth: &oauth2.Config{
			ClientID:     os.Getenv("GOOGLE_CLIENT_ID"),
			ClientSecret: os.Getenv("GOOGLE_CLIENT_SECRET"),
			RedirectURL:  callbackURL,
			Scopes:       []string{"openid", "profile", "email"},
			Endpoint:     google.Endpoint,
		},
	}
}

// Login redirects to Google's authorization endpoint with a fresh CSRF state.
func (h *AuthHandler) Login(c *gin.Context) {
	state, err := utils.RandomToken()
	if err != nil {
		renderError(c, err)
		return
	}

	c.SetCookie(stateCookie, state, stateCookieAge, "/", "", false, true)
	c.Redirect(http.StatusFound, h.oauth.AuthCodeURL(state, oauth2.AccessTypeOnline))
}

// Callback completes the flow: verifies the state, exchanges the code, fetches
// the Google profile, upserts the account and sets the session cookie.
func (h *AuthHandler) Callback(c *gin.Context) {
	wantState, err := c.Cookie(stateCookie)
	if err != nil || wantState == "" || c.Query("state") != wantState {
		c.Redirect(http.StatusFound, "/")
		return
	}
	c.SetCookie(stateCookie, "", -1, "/", "", false, true)

	code := c.Query("code")
	if code == "" {
		c.Redirect(http.StatusFound, "/")
		return
	}

	token, err := h.oauth.Exchange(c.Request.Context(), code)
	if err != nil {
		renderError(c, fmt.Errorf("exchanging OAuth code: %w", err))
		return
	}

	profile, err := h.fetchProfile(c, token)
	if err != nil {
		renderError(c, err)
		return
	}

	user, err := h.users.GetOrCreate(profile)
	if err != nil {
		renderError(c, err)
		return
	}

	session, err := utils.GenerateSessionToken(user.ID)
	if err != nil {
		renderError(c, err)
		return
	}

	c.SetCookie(middleware.SessionCookie, session, sessionCookieAge, "/", "", false, true)
	c.Redirect(http.StatusFound, "/")
}

// Logout clears the session cookie.
func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", false, true)
	c.Redirect(http.StatusFound, "/")
}

func (h *AuthHandler) fetchProfile(c *gin.Context, token *oauth2.Token) (*services.GoogleProfile, error) {
	client := h.oauth.Client(c.Request.Context(), token)

	resp, err := client.Get(userinfoURL)
	if err != nil {
		return nil, fmt.Errorf("fetching Google profile: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("Google userinfo returned status %d", resp.StatusCode)
	}

	var profile services.GoogleProfile
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return nil, fmt.Errorf("decoding Google profile: %w", err)
	}
	if profile.ID == "" {
		return nil, fmt.Errorf("Google returned an empty profile id")
	}
	return &profile, nil
}
