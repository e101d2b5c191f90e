package services

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/sumacommu/sumatest-sub000/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	// Skip the default per-write transaction: with a single-connection pool a
	// write would hold the only connection across its callbacks, deadlocking
	// tests whose callbacks open a second session.
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{SkipDefaultTransaction: true})
	require.NoError(t, err)

	// Every connection to an in-memory sqlite database gets its own store, so
	// pin the pool to one connection to keep concurrent callers on one store.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Match{}))
	return db
}

func createUser(t *testing.T, db *gorm.DB, id, name string, rating int) *models.User {
	t.Helper()

	user := &models.User{
		ID:          id,
		DisplayName: name,
		Email:       name + "@example.com",
		SoloRating:  rating,
		TeamRating:  rating,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func createMatchedPair(t *testing.T, db *gorm.DB, userID, opponentID string) *models.Match {
	t.Helper()

	match := &models.Match{
		ID:         uuid.NewString(),
		UserID:     userID,
		OpponentID: opponentID,
		Type:       models.MatchTypeSolo,
		Status:     models.MatchStatusMatched,
		Timestamp:  time.Now(),
	}
	require.NoError(t, db.Create(match).Error)
	return match
}

func reloadMatch(t *testing.T, db *gorm.DB, id string) *models.Match {
	t.Helper()

	var match models.Match
	require.NoError(t, db.First(&match, "id = ?", id).Error)
	return &match
}
