package fixtures

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/sumacommu/sumatest-sub000/models"
)

type Fixtures struct {
	db *gorm.DB
}

func NewFixtures(db *gorm.DB) *Fixtures {
	return &Fixtures{
		db: db,
	}
}

// GenerateTestData seeds a handful of users across the rating range, two
// waiting entries (one with a shared room id) and one completed pairing, so
// every view of the site has something to show.
func (f *Fixtures) GenerateTestData() error {
	users := []models.User{
		{ID: "g-100001", DisplayName: "Taro", Email: "taro@example.com", SoloRating: 1500, TeamRating: 1500},
		{ID: "g-100002", DisplayName: "Hanako", Email: "hanako@example.com", SoloRating: 1600, TeamRating: 1520},
		{ID: "g-100003", DisplayName: "Kenji", Email: "kenji@example.com", SoloRating: 1320, TeamRating: 1500},
		{ID: "g-100004", DisplayName: "Yuki", Email: "yuki@example.com", SoloRating: 1750, TeamRating: 1680},
		{ID: "g-100005", DisplayName: "Satoshi", Email: "satoshi@example.com", SoloRating: 1490, TeamRating: 1400},
		{ID: "g-100006", DisplayName: "Aoi", Email: "aoi@example.com", SoloRating: 2050, TeamRating: 1900},
	}
	for i := range users {
		if err := f.db.Create(&users[i]).Error; err != nil {
			return fmt.Errorf("creating user %s: %w", users[i].DisplayName, err)
		}
	}

	now := time.Now()
	matches := []models.Match{
		{
			ID:        uuid.NewString(),
			UserID:    "g-100003",
			Type:      models.MatchTypeSolo,
			Status:    models.MatchStatusWaiting,
			RoomID:    "KJ3XQ",
			Timestamp: now.Add(-10 * time.Minute),
		},
		{
			ID:        uuid.NewString(),
			UserID:    "g-100006",
			Type:      models.MatchTypeSolo,
			Status:    models.MatchStatusWaiting,
			Timestamp: now.Add(-3 * time.Minute),
		},
		{
			ID:             uuid.NewString(),
			UserID:         "g-100001",
			OpponentID:     "g-100002",
			Type:           models.MatchTypeSolo,
			Status:         models.MatchStatusMatched,
			RoomID:         "ABCD1",
			OpponentRoomID: "EFGH2",
			Character:      "8",
			Stage:          "BattleField",
			Timestamp:      now.Add(-1 * time.Hour),
		},
		{
			ID:             uuid.NewString(),
			UserID:         "g-100002",
			OpponentID:     "g-100001",
			Type:           models.MatchTypeSolo,
			Status:         models.MatchStatusMatched,
			RoomID:         "EFGH2",
			OpponentRoomID: "ABCD1",
			Character:      models.MiiFighterID,
			MiiMoves:       "1233",
			Stage:          "BattleField",
			Timestamp:      now.Add(-1 * time.Hour),
		},
	}
	for i := range matches {
		if err := f.db.Create(&matches[i]).Error; err != nil {
			return fmt.Errorf("creating match for %s: %w", matches[i].UserID, err)
		}
	}

	fmt.Printf("Created %d users and %d matches\n", len(users), len(matches))
	return nil
}

// ClearAllData removes everything the generator creates.
func (f *Fixtures) ClearAllData() error {
	if err := f.db.Where("1 = 1").Delete(&models.Match{}).Error; err != nil {
		return fmt.Errorf("clearing matches: %w", err)
	}
	if err := f.db.Where("1 = 1").Delete(&models.User{}).Error; err != nil {
		return fmt.Errorf("clearing users: %w", err)
	}
	return nil
}
