package services

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/sumacommu/sumatest-sub000/models"
)

// RatingBand is the maximum absolute solo-rating difference between two users
// that are allowed to be paired. The cutoff is hard: there is no widening
// search, a user outside everyone's band stays in the waiting pool.
const RatingBand = 200

type MatchmakingService struct {
	db *gorm.DB
}

func NewMatchmakingService(db *gorm.DB) *MatchmakingService {
	return &MatchmakingService{
		db: db,
	}
}

// SoloStatus is the result of a status check: exactly one of the three states,
// with the relevant match record and, when matched, the opponent's profile.
type SoloStatus struct {
	State    string        `json:"state"` // matched, waiting, idle
	Match    *models.Match `json:"match,omitempty"`
	Opponent *models.User  `json:"opponent,omitempty"`
}

const (
	StateMatched = "matched"
	StateWaiting = "waiting"
	StateIdle    = "idle"
)

// RequestMatch pairs the user with the first waiting opponent within the
// rating band whose room id is already shared, or enqueues the user as a new
// waiting record. The whole read-check-write runs in one transaction and the
// waiting->matched flip is a conditional update checked on RowsAffected, so a
// candidate can only ever be claimed by one concurrent request.
//
// Returns the caller's own record: status matched when a pair was formed
// (opponentRoomId carries the snapshot of the opponent's room id), status
// waiting otherwise.
func (s *MatchmakingService) RequestMatch(user *models.User) (*models.Match, error) {
	var result *models.Match

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var candidates []models.Match
		if err := tx.
			Where("type = ? AND status = ? AND user_id <> ?",
				models.MatchTypeSolo, models.MatchStatusWaiting, user.ID).
			Order("timestamp ASC").
			Find(&candidates).Error; err != nil {
			return err
		}

		for i := range candidates {
			candidate := &candidates[i]

			// A candidate without a shared room id cannot host yet.
			if candidate.RoomID == "" {
				continue
			}

			var owner models.User
			if err := tx.First(&owner, "id = ?", candidate.UserID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					continue
				}
				return err
			}

			if ratingGap(owner.SoloRating, user.SoloRating) > RatingBand {
				continue
			}

			claimed, err := s.claim(tx, candidate.ID, user.ID)
			if err != nil {
				return err
			}
			if !claimed {
				continue
			}

			match := &models.Match{
				ID:             uuid.NewString(),
				UserID:         user.ID,
				OpponentID:     candidate.UserID,
				Type:           models.MatchTypeSolo,
				Status:         models.MatchStatusMatched,
				OpponentRoomID: candidate.RoomID,
				Timestamp:      time.Now(),
			}
			if err := tx.Create(match).Error; err != nil {
				return err
			}
			result = match
			return nil
		}

		// No qualifying opponent: enqueue as waiting with an empty room id.
		match := &models.Match{
			ID:        uuid.NewString(),
			UserID:    user.ID,
			Type:      models.MatchTypeSolo,
			Status:    models.MatchStatusWaiting,
			Timestamp: time.Now(),
		}
		if err := tx.Create(match).Error; err != nil {
			return err
		}
		result = match
		return nil
	})

	if err != nil {
		return nil, err
	}
	return result, nil
}

// claim flips a waiting candidate to matched. The status guard re-checks the
// predicate at write time, so a candidate already taken by a concurrent
// request reports zero rows and the caller moves on.
func (s *MatchmakingService) claim(tx *gorm.DB, candidateID, opponentID string) (bool, error) {
	res := tx.Model(&models.Match{}).
		Where("id = ? AND status = ?", candidateID, models.MatchStatusWaiting).
		Updates(map[string]interface{}{
			"status":      models.MatchStatusMatched,
			"opponent_id": opponentID,
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// CancelWaiting deletes every waiting solo match owned by the user. Zero
// records is a no-op, several records are all removed, so repeated calls are
// safe.
func (s *MatchmakingService) CancelWaiting(userID string) error {
	return s.db.
		Where("type = ? AND status = ? AND user_id = ?",
			models.MatchTypeSolo, models.MatchStatusWaiting, userID).
		Delete(&models.Match{}).Error
}

// CheckStatus reports where the user currently stands: the newest matched
// record with the opponent's profile resolved, else the oldest waiting record,
// else idle.
func (s *MatchmakingService) CheckStatus(userID string) (*SoloStatus, error) {
	var matched models.Match
	err := s.db.
		Where("type = ? AND status = ? AND user_id = ?",
			models.MatchTypeSolo, models.MatchStatusMatched, userID).
		Order("timestamp DESC").
		First(&matched).Error
	if err == nil {
		status := &SoloStatus{State: StateMatched, Match: &matched}
		var opponent models.User
		if err := s.db.First(&opponent, "id = ?", matched.OpponentID).Error; err == nil {
			status.Opponent = &opponent
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		return status, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	var waiting models.Match
	err = s.db.
		Where("type = ? AND status = ? AND user_id = ?",
			models.MatchTypeSolo, models.MatchStatusWaiting, userID).
		Order("timestamp ASC").
		First(&waiting).Error
	if err == nil {
		return &SoloStatus{State: StateWaiting, Match: &waiting}, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	return &SoloStatus{State: StateIdle}, nil
}

// UpdateRoomID sets the room id on the user's first waiting record. No waiting
// record is a no-op. The write carries the same status guard as the claim in
// RequestMatch: a record flipped to matched after the read keeps the room id
// snapshot its opponent saw.
func (s *MatchmakingService) UpdateRoomID(userID, roomID string) error {
	var waiting models.Match
	err := s.db.
		Where("type = ? AND status = ? AND user_id = ?",
			models.MatchTypeSolo, models.MatchStatusWaiting, userID).
		Order("timestamp ASC").
		First(&waiting).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}

	return s.db.Model(&models.Match{}).
		Where("id = ? AND status = ?", waiting.ID, models.MatchStatusWaiting).
		Update("room_id", roomID).Error
}

// WaitingCount is the size of the solo waiting pool.
func (s *MatchmakingService) WaitingCount() (int64, error) {
	var count int64
	err := s.db.Model(&models.Match{}).
		Where("type = ? AND status = ?", models.MatchTypeSolo, models.MatchStatusWaiting).
		Count(&count).Error
	return count, err
}

func ratingGap(a, b int) int {
	if a > b {
		return a - b
	}
	return b - a
}
