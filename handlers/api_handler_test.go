package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/sumacommu/sumatest-sub000/middleware"
	"github.com/sumacommu/sumatest-sub000/models"
	"github.com/sumacommu/sumatest-sub000/services"
	"github.com/sumacommu/sumatest-sub000/utils"
)

func newTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Match{}))

	userService := services.NewUserService(db)
	matchmakingService := services.NewMatchmakingService(db)
	setupService := services.NewSetupService(db)
	apiHandler := NewAPIHandler(matchmakingService, setupService, userService)

	r := gin.New()
	r.Use(middleware.Session())

	api := r.Group("/api")
	api.Use(middleware.RequireUserJSON())
	{
		api.GET("/solo", apiHandler.GetSolo)
		api.POST("/solo/match", apiHandler.RequestMatch)
		api.GET("/solo/check", apiHandler.CheckStatus)
		api.GET("/solo/cancel", apiHandler.CancelWaiting)
		api.POST("/solo/update", apiHandler.UpdateRoom)
		api.GET("/solo/setup/:matchId", apiHandler.GetSetup)
		api.POST("/solo/setup/:matchId", apiHandler.SelectCharacter)
		api.POST("/solo/setup/:matchId/mii", apiHandler.SetMiiMoves)
		api.POST("/solo/stage/:matchId", apiHandler.SelectStage)
	}

	return r, db
}

func createTestUser(t *testing.T, db *gorm.DB, id string, rating int) *models.User {
	t.Helper()

	user := &models.User{ID: id, DisplayName: id, SoloRating: rating, TeamRating: rating}
	require.NoError(t, db.Create(user).Error)
	return user
}

func sessionCookie(t *testing.T, userID string) *http.Cookie {
	t.Helper()

	token, err := utils.GenerateSessionToken(userID)
	require.NoError(t, err)
	return &http.Cookie{Name: middleware.SessionCookie, Value: token}
}

func doRequest(r *gin.Engine, method, path, body string, cookie *http.Cookie) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if cookie != nil {
		req.AddCookie(cookie)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAPIRequiresSession(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doRequest(r, http.MethodGet, "/api/solo/check", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAPIMatchAndStatusFlow(t *testing.T) {
	r, db := newTestRouter(t)
	createTestUser(t, db, "u-alice", 1500)
	cookie := sessionCookie(t, "u-alice")

	w := doRequest(r, http.MethodPost, "/api/solo/match", "", cookie)
	require.Equal(t, http.StatusOK, w.Code)

	var match models.Match
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &match))
	assert.Equal(t, models.MatchStatusWaiting, match.Status)

	w = doRequest(r, http.MethodGet, "/api/solo/check", "", cookie)
	require.Equal(t, http.StatusOK, w.Code)

	var status services.SoloStatus
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &status))
	assert.Equal(t, services.StateWaiting, status.State)

	w = doRequest(r, http.MethodPost, "/api/solo/update", `{"roomId":"ABCD"}`, cookie)
	require.Equal(t, http.StatusOK, w.Code)

	w = doRequest(r, http.MethodGet, "/api/solo/check", "", cookie)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &status))
	assert.Equal(t, "ABCD", status.Match.RoomID)

	w = doRequest(r, http.MethodGet, "/api/solo/cancel", "", cookie)
	require.Equal(t, http.StatusOK, w.Code)

	w = doRequest(r, http.MethodGet, "/api/solo/check", "", cookie)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &status))
	assert.Equal(t, services.StateIdle, status.State)
}

func TestAPISetupHidesForeignMatches(t *testing.T) {
	r, db := newTestRouter(t)
	createTestUser(t, db, "u-eve", 1500)

	match := &models.Match{
		ID:         uuid.NewString(),
		UserID:     "u-alice",
		OpponentID: "u-bob",
		Type:       models.MatchTypeSolo,
		Status:     models.MatchStatusMatched,
		Timestamp:  time.Now(),
	}
	require.NoError(t, db.Create(match).Error)

	cookie := sessionCookie(t, "u-eve")

	w := doRequest(r, http.MethodGet, "/api/solo/setup/"+match.ID, "", cookie)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doRequest(r, http.MethodPost, "/api/solo/setup/"+match.ID, `{"characterId":"8"}`, cookie)
	assert.Equal(t, http.StatusNotFound, w.Code)

	var stored models.Match
	require.NoError(t, db.First(&stored, "id = ?", match.ID).Error)
	assert.Empty(t, stored.Character)
}

func TestAPISetupFlow(t *testing.T) {
	r, db := newTestRouter(t)
	createTestUser(t, db, "u-alice", 1500)

	match := &models.Match{
		ID:         uuid.NewString(),
		UserID:     "u-alice",
		OpponentID: "u-bob",
		Type:       models.MatchTypeSolo,
		Status:     models.MatchStatusMatched,
		Timestamp:  time.Now(),
	}
	require.NoError(t, db.Create(match).Error)

	cookie := sessionCookie(t, "u-alice")

	w := doRequest(r, http.MethodPost, "/api/solo/setup/"+match.ID, `{"characterId":"54"}`, cookie)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), string(models.SetupAwaitingMiiDetail))

	w = doRequest(r, http.MethodPost, "/api/solo/setup/"+match.ID+"/mii", `{"moves":"1233"}`, cookie)
	require.Equal(t, http.StatusOK, w.Code)

	w = doRequest(r, http.MethodPost, "/api/solo/stage/"+match.ID, `{"stageId":"BattleField"}`, cookie)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), string(models.SetupReady))

	var stored models.Match
	require.NoError(t, db.First(&stored, "id = ?", match.ID).Error)
	assert.Equal(t, models.MiiFighterID, stored.Character)
	assert.Equal(t, "1233", stored.MiiMoves)
	assert.Equal(t, "BattleField", stored.Stage)
}
