package models

import (
	"time"
)

// User is an account created on first Google login. The ID is the opaque
// subject identifier returned by Google and never changes.
type User struct {
	ID               string    `json:"id" gorm:"primaryKey;size:64"`
	DisplayName      string    `json:"displayName" gorm:"column:display_name;size:255"`
	Email            string    `json:"email" gorm:"size:255"`
	PhotoURL         string    `json:"photoUrl" gorm:"column:photo_url;size:512"`
	SoloRating       int       `json:"soloRating" gorm:"column:solo_rating;default:1500"`
	TeamRating       int       `json:"teamRating" gorm:"column:team_rating;default:1500"`
	MatchCount       int       `json:"matchCount" gorm:"column:match_count;default:0"`
	ReportCount      int       `json:"reportCount" gorm:"column:report_count;default:0"`
	ValidReportCount int       `json:"validReportCount" gorm:"column:valid_report_count;default:0"`
	Penalty          bool      `json:"penalty" gorm:"default:false"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}

const DefaultRating = 1500
