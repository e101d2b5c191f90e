package models

import (
	"time"
)

type MatchType string

const (
	MatchTypeSolo MatchType = "solo"
	MatchTypeTeam MatchType = "team" // reserved, not implemented
)

type MatchStatus string

const (
	MatchStatusWaiting MatchStatus = "waiting"
	MatchStatusMatched MatchStatus = "matched"
)

// Match is one matchmaking attempt owned by UserID. A waiting match has no
// opponent; once matched, OpponentID and OpponentRoomID are set exactly once
// (OpponentRoomID is a snapshot taken at pairing time and never refreshed).
// Cancellation deletes the record instead of writing a terminal status.
type Match struct {
	ID             string      `json:"id" gorm:"primaryKey;size:36"`
	UserID         string      `json:"userId" gorm:"column:user_id;size:64;index"`
	OpponentID     string      `json:"opponentId" gorm:"column:opponent_id;size:64"`
	Type           MatchType   `json:"type" gorm:"size:10"`
	Status         MatchStatus `json:"status" gorm:"size:10;index"`
	RoomID         string      `json:"roomId" gorm:"column:room_id;size:32"`
	OpponentRoomID string      `json:"opponentRoomId" gorm:"column:opponent_room_id;size:32"`
	Character      string      `json:"character" gorm:"size:8"`
	MiiMoves       string      `json:"miiMoves" gorm:"column:mii_moves;size:8"`
	Stage          string      `json:"stage" gorm:"size:64"`
	Timestamp      time.Time   `json:"timestamp" gorm:"column:timestamp"`
}

func (Match) TableName() string {
	return "matches"
}

func (m *Match) HasParticipant(userID string) bool {
	return m.UserID == userID || m.OpponentID == userID
}

func (m *Match) OpponentOf(userID string) (string, bool) {
	if m.UserID == userID {
		return m.OpponentID, m.OpponentID != ""
	}
	if m.OpponentID == userID {
		return m.UserID, true
	}
	return "", false
}

// SetupState is the position of a matched record in the post-match setup flow.
// It is not stored; it is re-derived from which presentation fields are set,
// so any setup link can be resumed.
type SetupState string

const (
	SetupAwaitingCharacter SetupState = "awaiting_character"
	SetupAwaitingMiiDetail SetupState = "awaiting_mii_detail"
	SetupAwaitingStage     SetupState = "awaiting_stage"
	SetupReady             SetupState = "ready"
)

func (m *Match) SetupState() SetupState {
	switch {
	case m.Character == "":
		return SetupAwaitingCharacter
	case m.Character == MiiFighterID && m.MiiMoves == "":
		return SetupAwaitingMiiDetail
	case m.Stage == "":
		return SetupAwaitingStage
	default:
		return SetupReady
	}
}
