package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sumacommu/sumatest-sub000/utils"
)

const SessionCookie = "session"

// Session resolves the session cookie into the request context. It never
// aborts: anonymous requests simply carry no user_id.
func Session() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(SessionCookie)
		if err == nil && token != "" {
			if userID, err := utils.ParseSessionToken(token); err == nil {
				c.Set("user_id", userID)
			}
		}
		c.Next()
	}
}

// RequireUser guards the site routes: anonymous requests are redirected to the
// landing page.
func RequireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := GetUserID(c); !ok {
			c.Redirect(http.StatusFound, "/")
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireUserJSON guards the API routes: anonymous requests get 401.
func RequireUserJSON() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := GetUserID(c); !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			c.Abort()
			return
		}
		c.Next()
	}
}

func GetUserID(c *gin.Context) (string, bool) {
	value, exists := c.Get("user_id")
	if !exists {
		return "", false
	}
	userID, ok := value.(string)
	if !ok || userID == "" {
		return "", false
	}
	return userID, true
}
